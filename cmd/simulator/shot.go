package main

import (
	"fmt"
	"image/png"
	"os"
	"strconv"
	"strings"

	"github.com/hubastard/sprout/engine/display"
	"github.com/hubastard/sprout/engine/geom"
	"github.com/hubastard/sprout/engine/ui"
)

// parsePoint reads "x,y".
func parsePoint(s string) (geom.Point, error) {
	xs, ys, ok := strings.Cut(s, ",")
	if !ok {
		return geom.Point{}, fmt.Errorf("point %q: want x,y", s)
	}
	x, err := strconv.ParseInt(strings.TrimSpace(xs), 10, 32)
	if err != nil {
		return geom.Point{}, fmt.Errorf("point %q: %w", s, err)
	}
	y, err := strconv.ParseInt(strings.TrimSpace(ys), 10, 32)
	if err != nil {
		return geom.Point{}, fmt.Errorf("point %q: %w", s, err)
	}
	return geom.Pt(int32(x), int32(y)), nil
}

// script turns taps into per-frame interactions: each tap is a press frame
// followed by a release frame, and the rest of the frames are idle.
func script(taps []geom.Point, frames int) []ui.Interaction {
	out := make([]ui.Interaction, 0, max(frames, 2*len(taps)))
	for _, p := range taps {
		out = append(out, ui.ClickAt(p), ui.ReleaseAt(p))
	}
	for len(out) < frames {
		out = append(out, ui.NoInteraction())
	}
	return out
}

// shoot runs the scripted frames headless and returns the canvas.
func shoot(s *screen, taps []string, frames int) (*display.Memory, error) {
	var pts []geom.Point
	for _, t := range taps {
		p, err := parsePoint(t)
		if err != nil {
			return nil, err
		}
		pts = append(pts, p)
	}
	for _, i := range script(pts, frames) {
		s.step(i)
	}
	return s.canvas, nil
}

func writePNG(m *display.Memory, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("write png: %w", err)
	}
	if err := png.Encode(f, m); err != nil {
		_ = f.Close()
		return fmt.Errorf("write png: %w", err)
	}
	return f.Close()
}
