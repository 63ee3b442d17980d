// Package spectrum interpolates colors along named, ordered color stop
// sequences such as the visible-spectrum "roygbiv" palette.
//
// The package never constructs or blends colors itself. An [Interpolator] is
// built around a [Capability] supplied by the renderer, which turns stop
// triples into native colors once at construction time and blends them at
// query time:
//
//	rainbow, err := spectrum.New[color.RGBA](spectrum.RGBA{})
//	if err != nil {
//		log.Fatal(err)
//	}
//	c, _ := rainbow.MapToRoygbiv(0, 19, float64(i))
package spectrum

import (
	"errors"
	"fmt"
	"math"
	"reflect"
	"sort"

	"github.com/phanxgames/move"
)

// Roygbiv is the name of the built-in visible-spectrum palette.
const Roygbiv = "roygbiv"

var (
	// ErrMissingCapability is returned by New when no color capability is
	// supplied, including a typed nil pointer. No colors are built in that case.
	ErrMissingCapability = errors.New("spectrum: color capability not supplied")

	// ErrUnknownSpectrum is returned when a query names a palette that was not
	// registered.
	ErrUnknownSpectrum = errors.New("spectrum: spectrum not found")

	// ErrInvalidPalette is returned by New for palettes with no name, no stops,
	// or a name that is already taken.
	ErrInvalidPalette = errors.New("spectrum: invalid palette")
)

// RGB is a color stop as three 8-bit channels.
type RGB struct {
	R, G, B uint8
}

// Palette is an ordered, named list of color stops.
type Palette struct {
	Name  string
	Stops []RGB
}

// Builtin returns fresh copies of the predefined palettes.
func Builtin() []Palette {
	return []Palette{{
		Name: Roygbiv,
		Stops: []RGB{
			{255, 0, 0},   // red
			{255, 127, 0}, // orange
			{255, 255, 0}, // yellow
			{0, 255, 0},   // green
			{0, 0, 255},   // blue
			{75, 0, 130},  // indigo
			{148, 0, 211}, // violet
		},
	}}
}

// Capability is the renderer-side color support an Interpolator needs.
// New turns a stop triple into a native color; Lerp blends two native colors
// by amt, where 0 yields a and 1 yields b.
type Capability[C any] interface {
	New(r, g, b uint8) C
	Lerp(a, b C, amt float64) C
}

// Interpolator maps progress values onto palettes of native colors. It is
// read-only after New returns.
type Interpolator[C any] struct {
	capability Capability[C]
	palettes   map[string][]C
}

// New builds an Interpolator, converting every stop of every palette with
// capability up front. With no palettes the builtin ones are used.
func New[C any](capability Capability[C], palettes ...Palette) (*Interpolator[C], error) {
	if isNil(capability) {
		return nil, ErrMissingCapability
	}
	if len(palettes) == 0 {
		palettes = Builtin()
	}

	built := make(map[string][]C, len(palettes))
	for _, p := range palettes {
		if p.Name == "" {
			return nil, fmt.Errorf("%w: empty name", ErrInvalidPalette)
		}
		if len(p.Stops) == 0 {
			return nil, fmt.Errorf("%w: %q has no stops", ErrInvalidPalette, p.Name)
		}
		if _, dup := built[p.Name]; dup {
			return nil, fmt.Errorf("%w: duplicate name %q", ErrInvalidPalette, p.Name)
		}
		colors := make([]C, len(p.Stops))
		for i, s := range p.Stops {
			colors[i] = capability.New(s.R, s.G, s.B)
		}
		built[p.Name] = colors
	}

	return &Interpolator[C]{capability: capability, palettes: built}, nil
}

// Map places progress within [start, end] onto the named palette and blends
// the two stops either side of that position.
//
// The position is progress mapped from [start, end] to [0, N-1] and clamped
// to that interval, so values past either end return the first or last stop.
// A degenerate range (start == end) or a NaN position yields the first stop.
func (s *Interpolator[C]) Map(name string, start, end, progress float64) (C, error) {
	colors, ok := s.palettes[name]
	if !ok {
		var zero C
		return zero, fmt.Errorf("%w: %q", ErrUnknownSpectrum, name)
	}

	last := len(colors) - 1
	pos := position(progress, start, end, last)
	left := int(math.Floor(pos))
	right := min(left+1, last)
	amt := pos - float64(left)

	return s.capability.Lerp(colors[left], colors[right], amt), nil
}

// MapToRoygbiv is Map on the builtin roygbiv palette.
func (s *Interpolator[C]) MapToRoygbiv(start, end, progress float64) (C, error) {
	return s.Map(Roygbiv, start, end, progress)
}

// QueryFunc is the shape of MapToRoygbiv.
type QueryFunc[C any] func(start, end, progress float64) (C, error)

// Op returns the spectrum query registered under name or any of its aliases
// (see move.Resolve), e.g. "rainbow" for MapToRoygbiv.
func (s *Interpolator[C]) Op(name string) (QueryFunc[C], error) {
	op, err := move.Resolve(name)
	if err != nil {
		return nil, err
	}
	if op != move.OpMapToRoygbiv {
		return nil, fmt.Errorf("%w: %q is not a spectrum operation", move.ErrUnknownOperation, name)
	}
	return s.MapToRoygbiv, nil
}

// Colors returns a copy of the native colors of the named palette.
func (s *Interpolator[C]) Colors(name string) ([]C, error) {
	colors, ok := s.palettes[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownSpectrum, name)
	}
	out := make([]C, len(colors))
	copy(out, colors)
	return out, nil
}

// Names returns the registered palette names in sorted order.
func (s *Interpolator[C]) Names() []string {
	names := make([]string, 0, len(s.palettes))
	for name := range s.palettes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// isNil reports whether c is a nil interface or wraps a nil pointer, map,
// slice, func, or channel.
func isNil(c any) bool {
	if c == nil {
		return true
	}
	v := reflect.ValueOf(c)
	switch v.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan, reflect.Interface:
		return v.IsNil()
	}
	return false
}

// position maps progress from [start, end] onto [0, last], clamped.
func position(progress, start, end float64, last int) float64 {
	if start == end || last == 0 {
		return 0
	}
	p := (progress - start) / (end - start) * float64(last)
	switch {
	case math.IsNaN(p), p <= 0:
		return 0
	case p >= float64(last):
		return float64(last)
	}
	return p
}
