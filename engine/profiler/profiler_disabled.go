//go:build !profile

package profiler

import "errors"

// Stubbed no-op versions when the "profile" build tag is not set.

const Enabled = false

var errDisabled = errors.New("profiler: built without the profile tag")

func Init(capacity int)                  {}
func Start(name string) func()           { return func() {} }
func Dump(path string) error             { return errDisabled }
func OpenProfilerGraph() (string, error) { return "", errDisabled }
