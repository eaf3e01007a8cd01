// Package ascii turns decoded stills into glyph frames: a luminance ramp,
// a per-image converter, and an order-preserving parallel batch.
package ascii

import (
	"fmt"
	"sort"

	"github.com/vovakirdan/tui-cinema/internal/core"
)

// DefaultRampName is the preset used when none is configured.
const DefaultRampName = "detailed"

// Built-in ramps, ordered dense-to-sparse so index 0 carries the most ink.
var presets = map[string]string{
	"detailed": "@%#W$9876543210?!abc;:+=-,._ ",
	"classic":  "@%#*+=-:. ",
	"dense":    "$@B%8&WM#*oahkbdpqwmZO0QLCJUYXzcvunxrjft/\\|()1{}[]?-_+~<>i!lI;:,\"^`'. ",
	"blocks":   "█▓▒░ ",
}

// Ramp is an ordered sequence of shading glyphs. Luminance maps linearly
// onto the sequence, index 0 for the darkest sample. Immutable once built.
type Ramp struct {
	name   string
	glyphs []rune
}

// NewRamp builds a ramp from a literal glyph string.
func NewRamp(name, glyphs string) (Ramp, error) {
	rs := []rune(glyphs)
	if len(rs) < 2 {
		return Ramp{}, fmt.Errorf("ascii: ramp %q needs at least 2 glyphs", name)
	}
	return Ramp{name: name, glyphs: rs}, nil
}

// Preset returns a built-in ramp by name.
func Preset(name string) (Ramp, error) {
	glyphs, ok := presets[name]
	if !ok {
		return Ramp{}, fmt.Errorf("ascii: unknown ramp preset %q", name)
	}
	return NewRamp(name, glyphs)
}

// Presets returns the built-in ramp names in alphabetical order.
func Presets() []string {
	names := make([]string, 0, len(presets))
	for name := range presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Name returns the ramp's preset or construction name.
func (r Ramp) Name() string {
	return r.name
}

// Len returns the number of glyphs in the ramp.
func (r Ramp) Len() int {
	return len(r.glyphs)
}

// Glyphs returns the ramp as a string, darkest glyph first.
func (r Ramp) Glyphs() string {
	return string(r.glyphs)
}

// Map returns the glyph for a luminance sample. The index is the floor of
// the sample's position scaled across the ramp; out-of-range samples clamp
// to the ramp ends, so the lookup can never go out of bounds.
func (r Ramp) Map(luminance int) rune {
	idx := luminance * (len(r.glyphs) - 1) / 255
	return r.glyphs[core.Clamp(idx, 0, len(r.glyphs)-1)]
}
