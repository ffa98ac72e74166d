package units

import (
	"errors"
	"math"
	"testing"
)

func relClose(a, b, tol float64) bool {
	if a == b {
		return true
	}
	return math.Abs(a-b) <= tol*math.Max(math.Abs(a), math.Abs(b))
}

func TestRoundTrip(t *testing.T) {
	cases := []struct {
		si, english Unit
		value       float64
	}{
		{KPa, Psia, 8000},
		{Kelvin, Fahrenheit, 568.21},
		{KJPerKg, BTUPerLb, 2758.0},
		{KJPerKgK, BTUPerLbR, 5.7432},
		{M3PerKg, Ft3PerLb, 0.02352},
		{EnergyKJPerKg, EnergyBTUPerLb, 963.1},
	}
	for _, c := range cases {
		eng, err := Convert(c.value, c.si, c.english)
		if err != nil {
			t.Fatalf("%s: %v", c.si.Symbol, err)
		}
		back, err := Convert(eng, c.english, c.si)
		if err != nil {
			t.Fatalf("%s: %v", c.english.Symbol, err)
		}
		if !relClose(back, c.value, 1e-9) {
			t.Errorf("%s round trip: %v -> %v -> %v", c.si.Symbol, c.value, eng, back)
		}
	}
}

func TestKindMismatch(t *testing.T) {
	_, err := Convert(1.0, KJPerKgK, KPa)
	var iue *InvalidUnitError
	if !errors.As(err, &iue) {
		t.Fatalf("expected InvalidUnitError, got %v", err)
	}
	// enthalpy and specific energy share a symbol but not a kind
	if _, err := Convert(1.0, KJPerKg, EnergyKJPerKg); err == nil {
		t.Error("enthalpy to specific energy should be rejected")
	}
}

func TestTemperatureAffine(t *testing.T) {
	f, err := Convert(273.15, Kelvin, Fahrenheit)
	if err != nil {
		t.Fatal(err)
	}
	if !relClose(f, 32.0, 1e-9) {
		t.Errorf("273.15 K = %v °F", f)
	}
	f, _ = Convert(373.15, Kelvin, Fahrenheit)
	if !relClose(f, 212.0, 1e-9) {
		t.Errorf("373.15 K = %v °F", f)
	}
}

func TestPressureFactor(t *testing.T) {
	kpa, err := Convert(100, Psia, KPa)
	if err != nil {
		t.Fatal(err)
	}
	if !relClose(kpa, 689.4757293168361, 1e-12) {
		t.Errorf("100 psia = %v kPa", kpa)
	}
}

func TestEfficiencyPassThrough(t *testing.T) {
	v, err := Convert(0.3708, Fraction, Fraction)
	if err != nil {
		t.Fatal(err)
	}
	if v != 0.3708 {
		t.Errorf("efficiency changed: %v", v)
	}
}

func TestIdentityConversion(t *testing.T) {
	v, err := Convert(123.456, KPa, KPa)
	if err != nil {
		t.Fatal(err)
	}
	if v != 123.456 {
		t.Errorf("identity changed value: %v", v)
	}
}
