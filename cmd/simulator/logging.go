package main

import (
	"log"

	"gopkg.in/natefinch/lumberjack.v2"
)

// setupLogging sends the standard logger to a rotating file when path is
// set. The returned func flushes it on exit.
func setupLogging(path string) func() error {
	if path == "" {
		return func() error { return nil }
	}
	lj := &lumberjack.Logger{
		Filename:   path,
		MaxSize:    10, // megabytes
		MaxBackups: 3,
		MaxAge:     28, // days
	}
	log.SetOutput(lj)
	log.SetFlags(log.LstdFlags)
	return lj.Close
}
