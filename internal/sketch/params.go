package sketch

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/cast"
	"gopkg.in/yaml.v3"

	"github.com/phanxgames/move/spectrum"
)

// Mode selects which demo a Sketch renders.
type Mode string

const (
	ModeOrbit Mode = "orbit" // a single dot orbiting the canvas center
	ModeFlock Mode = "flock" // a chain of followers trailing the pointer
)

// ParseMode maps a case-insensitive demo name to its Mode.
func ParseMode(s string) (Mode, error) {
	m := Mode(strings.ToLower(strings.TrimSpace(s)))
	if m != ModeOrbit && m != ModeFlock {
		return "", fmt.Errorf("%w: unknown mode %q", ErrInvalidParams, s)
	}
	return m, nil
}

// UnmarshalYAML accepts the mode in any letter case.
func (m *Mode) UnmarshalYAML(node *yaml.Node) error {
	var raw string
	if err := node.Decode(&raw); err != nil {
		return err
	}
	parsed, err := ParseMode(raw)
	if err != nil {
		return err
	}
	*m = parsed
	return nil
}

// EnvPrefix is the prefix of environment keys read by ApplyEnv.
const EnvPrefix = "MOVE_"

// ErrInvalidParams is returned by Validate.
var ErrInvalidParams = errors.New("sketch: invalid params")

// Params are the tunable knobs of the orbit and flock demos.
type Params struct {
	// CircleRadius is the diameter passed to the circle drawer, in pixels.
	CircleRadius float64 `yaml:"circle_radius"`
	// FlockNumber is the number of birds in the flock, leader included.
	FlockNumber int `yaml:"flock_number"`
	// FlockSpacing is the per-follower flock distance step.
	FlockSpacing float64 `yaml:"flock_spacing"`
	// BoundingOffset keeps dots this many pixels inside the canvas edges.
	BoundingOffset float64 `yaml:"bounding_offset"`
	// Mode is the active demo.
	Mode Mode `yaml:"mode"`
	// AngleDivisor converts the frame counter to radians (angle = frame / AngleDivisor).
	AngleDivisor float64 `yaml:"angle_divisor"`
	// Palette names the spectrum used for dot colors.
	Palette string `yaml:"palette"`
	// Alpha is the fill alpha of every dot.
	Alpha uint8 `yaml:"alpha"`
	// Jitter randomizes each follower's drift. When false every follower uses
	// the midpoint of its drift range.
	Jitter bool `yaml:"jitter"`
}

// DefaultParams returns the parameters the demos start with.
func DefaultParams() Params {
	return Params{
		CircleRadius:   10,
		FlockNumber:    20,
		FlockSpacing:   1,
		BoundingOffset: 0,
		Mode:           ModeOrbit,
		AngleDivisor:   100,
		Palette:        spectrum.Roygbiv,
		Alpha:          100,
		Jitter:         true,
	}
}

// LoadParams reads YAML parameters from path on top of DefaultParams. An
// empty path returns the defaults.
func LoadParams(path string) (Params, error) {
	p := DefaultParams()
	if path == "" {
		return p, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return p, fmt.Errorf("read params: %w", err)
	}
	if err := yaml.Unmarshal(data, &p); err != nil {
		return p, fmt.Errorf("parse params %s: %w", path, err)
	}
	return p, nil
}

// Environ collects MOVE_* settings from the dotenv file (if it exists) and the
// process environment. Process variables win over the file.
func Environ(dotenv string) (map[string]string, error) {
	env := map[string]string{}
	if dotenv != "" {
		fileEnv, err := godotenv.Read(dotenv)
		switch {
		case err == nil:
			for k, v := range fileEnv {
				env[k] = v
			}
		case !errors.Is(err, os.ErrNotExist):
			return nil, fmt.Errorf("read %s: %w", dotenv, err)
		}
	}
	for _, kv := range os.Environ() {
		k, v, ok := strings.Cut(kv, "=")
		if ok && strings.HasPrefix(k, EnvPrefix) {
			env[k] = v
		}
	}
	return env, nil
}

// ApplyEnv overrides p with the MOVE_* keys present in env. Keys are the
// upper-cased yaml names, e.g. MOVE_FLOCK_NUMBER.
func (p *Params) ApplyEnv(env map[string]string) error {
	for key, raw := range env {
		if !strings.HasPrefix(key, EnvPrefix) {
			continue
		}
		var err error
		switch strings.TrimPrefix(key, EnvPrefix) {
		case "CIRCLE_RADIUS":
			p.CircleRadius, err = cast.ToFloat64E(raw)
		case "FLOCK_NUMBER":
			p.FlockNumber, err = cast.ToIntE(raw)
		case "FLOCK_SPACING":
			p.FlockSpacing, err = cast.ToFloat64E(raw)
		case "BOUNDING_OFFSET":
			p.BoundingOffset, err = cast.ToFloat64E(raw)
		case "MODE":
			p.Mode, err = ParseMode(raw)
		case "ANGLE_DIVISOR":
			p.AngleDivisor, err = cast.ToFloat64E(raw)
		case "PALETTE":
			p.Palette = raw
		case "ALPHA":
			p.Alpha, err = cast.ToUint8E(raw)
		case "JITTER":
			p.Jitter, err = cast.ToBoolE(raw)
		}
		if err != nil {
			return fmt.Errorf("%s: %w", key, err)
		}
	}
	return nil
}

// Validate reports the first parameter that cannot drive a demo.
func (p Params) Validate() error {
	switch {
	case p.CircleRadius <= 0:
		return fmt.Errorf("%w: circle_radius must be positive, got %v", ErrInvalidParams, p.CircleRadius)
	case p.FlockNumber <= 0:
		return fmt.Errorf("%w: flock_number must be positive, got %d", ErrInvalidParams, p.FlockNumber)
	case p.BoundingOffset < 0:
		return fmt.Errorf("%w: bounding_offset must not be negative, got %v", ErrInvalidParams, p.BoundingOffset)
	case p.AngleDivisor == 0:
		return fmt.Errorf("%w: angle_divisor must not be zero", ErrInvalidParams)
	case p.Mode != ModeOrbit && p.Mode != ModeFlock:
		return fmt.Errorf("%w: unknown mode %q", ErrInvalidParams, p.Mode)
	}
	return nil
}
