package move

import (
	"errors"
	"math"
	"sort"
	"testing"

	"github.com/tanema/gween"
)

const epsilon = 1e-9

func assertNear(t *testing.T, name string, got, want float64) {
	t.Helper()
	if math.Abs(got-want) > epsilon {
		t.Errorf("%s = %v, want %v", name, got, want)
	}
}

var allCurves = []string{
	QuadIn, QuadOut, QuadInOut,
	CubicIn, CubicOut, CubicInOut,
	QuartIn, QuartOut, QuartInOut,
	QuintIn, QuintOut, QuintInOut,
	SineIn, SineOut, SineInOut,
	SexticIn, SexticOut, SexticInOut,
}

func TestEasingTableHasEveryCurve(t *testing.T) {
	pace := NewEasingTable()
	if pace.Len() != len(allCurves) {
		t.Fatalf("Len = %d, want %d", pace.Len(), len(allCurves))
	}
	for _, name := range allCurves {
		if _, err := pace.Func(name); err != nil {
			t.Errorf("Func(%q): %v", name, err)
		}
	}
}

func TestEasingTableNamesSortedCopy(t *testing.T) {
	pace := NewEasingTable()
	names := pace.Names()
	if !sort.StringsAreSorted(names) {
		t.Errorf("Names not sorted: %v", names)
	}
	names[0] = "mutated"
	if pace.Names()[0] == "mutated" {
		t.Error("Names must return a copy")
	}
}

func TestEasingUnknownCurve(t *testing.T) {
	pace := NewEasingTable()
	if _, err := pace.Func("bounceOut"); !errors.Is(err, ErrUnknownCurve) {
		t.Errorf("Func(bounceOut) err = %v, want ErrUnknownCurve", err)
	}
	if _, err := pace.Eval("", 0.5); !errors.Is(err, ErrUnknownCurve) {
		t.Errorf("Eval(\"\") err = %v, want ErrUnknownCurve", err)
	}
}

func TestEasingEndpoints(t *testing.T) {
	pace := NewEasingTable()
	for _, name := range allCurves {
		t.Run(name, func(t *testing.T) {
			fn, _ := pace.Func(name)
			assertNear(t, name+"(0)", fn(0), 0)
			assertNear(t, name+"(1)", fn(1), 1)
		})
	}
}

func TestEasingValues(t *testing.T) {
	tests := []struct {
		name    string
		quarter float64 // f(0.25)
		three   float64 // f(0.75)
	}{
		{QuadIn, 0.0625, 0.5625},
		{QuadOut, 0.4375, 0.9375},
		{QuadInOut, 0.125, 0.875},
		{CubicIn, 0.015625, 0.421875},
		{CubicOut, 0.578125, 0.984375},
		{CubicInOut, 0.0625, 0.9375},
		{QuartIn, 0.00390625, 0.31640625},
		{QuartOut, 0.68359375, 0.99609375},
		{QuartInOut, 0.03125, 0.96875},
		{QuintIn, 0.0009765625, 0.2373046875},
		{QuintOut, 0.7626953125, 0.9990234375},
		{QuintInOut, 0.015625, 0.984375},
		{SineIn, 1 - math.Cos(math.Pi/8), 1 - math.Cos(3*math.Pi/8)},
		{SineOut, math.Sin(math.Pi / 8), math.Sin(3 * math.Pi / 8)},
		{SineInOut, 0.5 * (1 - math.Sqrt2/2), 0.5 * (1 + math.Sqrt2/2)},
		{SexticIn, 0.000244140625, 0.177978515625},
		{SexticOut, 0.822021484375, 0.999755859375},
		{SexticInOut, 0.00146484375, 0.9921875},
	}
	pace := NewEasingTable()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := pace.Eval(tt.name, 0.25)
			if err != nil {
				t.Fatal(err)
			}
			assertNear(t, tt.name+"(0.25)", got, tt.quarter)
			got, _ = pace.Eval(tt.name, 0.75)
			assertNear(t, tt.name+"(0.75)", got, tt.three)
		})
	}
}

func TestEasingExtrapolates(t *testing.T) {
	pace := NewEasingTable()
	tests := []struct {
		name string
		t    float64
		want float64
	}{
		{QuadIn, 2, 4},
		{QuadOut, 2, 0},
		{CubicIn, -1, -1},
		{QuadInOut, -1, 2},
		{SexticInOut, 1.5, 1 - 0.5},
	}
	for _, tt := range tests {
		got, _ := pace.Eval(tt.name, tt.t)
		assertNear(t, tt.name, got, tt.want)
	}
}

func TestEasingSexticInOutUsesPow(t *testing.T) {
	fn, _ := NewEasingTable().Func(SexticInOut)
	for _, x := range []float64{0.5, 0.6, 0.9, 0.99} {
		want := 1 - math.Pow(-2*x+2, 6)/2
		if got := fn(x); got != want {
			t.Errorf("sexticInOut(%v) = %v, want exactly %v", x, got, want)
		}
	}
}

func TestEasingDeterministic(t *testing.T) {
	pace := NewEasingTable()
	for _, name := range allCurves {
		fn, _ := pace.Func(name)
		if a, b := fn(0.37), fn(0.37); a != b {
			t.Errorf("%s not deterministic: %v vs %v", name, a, b)
		}
	}
}

func TestEaseFuncTweenDrivesGween(t *testing.T) {
	fn, _ := NewEasingTable().Func(QuadIn)
	tw := gween.New(0, 100, 1, fn.Tween())

	val, done := tw.Update(0.5)
	if done {
		t.Fatal("should not be done at halfway")
	}
	if math.Abs(float64(val)-25) > 0.01 {
		t.Errorf("quadIn tween at 0.5 = %v, want ~25", val)
	}

	val, done = tw.Update(0.5)
	if !done {
		t.Fatal("expected done after full duration")
	}
	if math.Abs(float64(val)-100) > 0.01 {
		t.Errorf("quadIn tween at end = %v, want ~100", val)
	}
}

func TestEaseFuncTweenZeroDuration(t *testing.T) {
	fn, _ := NewEasingTable().Func(CubicOut)
	if got := fn.Tween()(0, 10, 5, 0); got != 15 {
		t.Errorf("zero-duration tween = %v, want 15", got)
	}
}

// Reference values computed with unfused IEEE-754 double arithmetic in the
// reference multiplication order. They must match bit for bit.
func TestEasingBitExact(t *testing.T) {
	inputs := [4]float64{0.1, 0.37, 0.61, 0.9}
	tests := []struct {
		name string
		want [4]float64
	}{
		{QuadInOut, [4]float64{0.020000000000000004, 0.2738, 0.6958000000000002, 0.9800000000000002}},
		{CubicOut, [4]float64{0.2709999999999999, 0.749953, 0.940681, 0.999}},
		{CubicInOut, [4]float64{0.004000000000000001, 0.202612, 0.762724, 0.996}},
		{QuartOut, [4]float64{0.3438999999999999, 0.84247039, 0.97686559, 0.9999}},
		{QuartInOut, [4]float64{0.0008000000000000003, 0.14993288, 0.81492472, 0.9992}},
		{QuintOut, [4]float64{0.4095099999999998, 0.9007563457, 0.9909775801, 0.99999}},
		{QuintInOut, [4]float64{0.00016000000000000007, 0.11095033119999999, 0.8556412816, 0.99984}},
		{SexticOut, [4]float64{0.46855899999999984, 0.937476497791, 0.996481256239, 0.999999}},
	}
	pace := NewEasingTable()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fn, err := pace.Func(tt.name)
			if err != nil {
				t.Fatal(err)
			}
			for i, x := range inputs {
				got := fn(x)
				if math.Float64bits(got) != math.Float64bits(tt.want[i]) {
					t.Errorf("%s(%v) = %v (%#x), want %v (%#x)",
						tt.name, x, got, math.Float64bits(got), tt.want[i], math.Float64bits(tt.want[i]))
				}
			}
		})
	}
}

func TestEasingSineBitExact(t *testing.T) {
	inputs := []float64{0.1, 0.37, 0.61, 0.9}
	pace := NewEasingTable()
	sineIn, _ := pace.Func(SineIn)
	sineInOut, _ := pace.Func(SineInOut)
	for _, x := range inputs {
		arg := float64(math.Pi / 2 * x)
		wantIn := 1 + math.Sin(arg-math.Pi/2)
		if got := sineIn(x); math.Float64bits(got) != math.Float64bits(wantIn) {
			t.Errorf("sineIn(%v) = %v, want %v", x, got, wantIn)
		}
		arg = float64(math.Pi * x)
		wantInOut := 0.5 * (1 + math.Sin(arg-math.Pi/2))
		if got := sineInOut(x); math.Float64bits(got) != math.Float64bits(wantInOut) {
			t.Errorf("sineInOut(%v) = %v, want %v", x, got, wantInOut)
		}
	}
}
