package move

import (
	"errors"
	"fmt"
	"sort"
)

// Canonical operation names.
const (
	OpBetween      = "between"
	OpBackAndForth = "backAndForth"
	OpOrbit        = "orbit"
	OpFlock        = "flock"
	OpMapToRoygbiv = "mapToRoygbiv"
)

// ErrUnknownOperation is returned when a name is neither a canonical
// operation nor one of its aliases.
var ErrUnknownOperation = errors.New("move: unknown operation")

// aliases maps every short name to its canonical operation. Aliases never
// carry their own implementation.
var aliases = map[string]string{
	"btw":     OpBetween,
	"btwn":    OpBetween,
	"baf":     OpBackAndForth,
	"lol":     OpBackAndForth,
	"around":  OpOrbit,
	"arnd":    OpOrbit,
	"orb":     OpOrbit,
	"rainbow": OpMapToRoygbiv,
}

var canonical = map[string]struct{}{
	OpBetween:      {},
	OpBackAndForth: {},
	OpOrbit:        {},
	OpFlock:        {},
	OpMapToRoygbiv: {},
}

// ScalarFunc is the shape of Between and BackAndForth.
type ScalarFunc func(start, end, progress float64) float64

// PointFunc is the shape of Orbit.
type PointFunc func(x, y, cx, cy, angle float64) Vec2

// Resolve returns the canonical name for name. Canonical names resolve to
// themselves.
func Resolve(name string) (string, error) {
	if _, ok := canonical[name]; ok {
		return name, nil
	}
	if op, ok := aliases[name]; ok {
		return op, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownOperation, name)
}

// Aliases returns the sorted alias names registered for the canonical
// operation op.
func Aliases(op string) []string {
	var out []string
	for alias, target := range aliases {
		if target == op {
			out = append(out, alias)
		}
	}
	sort.Strings(out)
	return out
}

// ScalarOp returns the scalar interpolation registered under name or any of
// its aliases.
func ScalarOp(name string) (ScalarFunc, error) {
	op, err := Resolve(name)
	if err != nil {
		return nil, err
	}
	switch op {
	case OpBetween:
		return Between, nil
	case OpBackAndForth:
		return BackAndForth, nil
	}
	return nil, fmt.Errorf("%w: %q is not a scalar operation", ErrUnknownOperation, name)
}

// PointOp returns the rotation registered under name or any of its aliases.
func PointOp(name string) (PointFunc, error) {
	op, err := Resolve(name)
	if err != nil {
		return nil, err
	}
	if op == OpOrbit {
		return Orbit, nil
	}
	return nil, fmt.Errorf("%w: %q is not a point operation", ErrUnknownOperation, name)
}
