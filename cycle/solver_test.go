package cycle

import (
	"errors"
	"math"
	"testing"

	"rankine/model"
	"rankine/steam"
)

func newTestSolver() *Solver {
	return NewSolver(steam.NewTable())
}

func classicBoundary(eff float64) model.CycleBoundary {
	return model.CycleBoundary{
		PHigh:      8000,
		PLow:       8,
		Inlet:      model.InletSpec{Mode: model.QualityMode, Value: 1.0, Set: true},
		TurbineEff: eff,
	}
}

func mustRecompute(t *testing.T, sv *Solver, b model.CycleBoundary) *model.CycleResult {
	t.Helper()
	if err := sv.SetBoundary(b); err != nil {
		t.Fatal(err)
	}
	res, err := sv.Recompute()
	if err != nil {
		t.Fatal(err)
	}
	return res
}

// bitEqual compares floats including NaN (quality outside the dome).
func bitEqual(a, b float64) bool {
	return math.Float64bits(a) == math.Float64bits(b)
}

func sameState(a, b model.StatePoint) bool {
	return bitEqual(a.P, b.P) && bitEqual(a.T, b.T) && bitEqual(a.H, b.H) &&
		bitEqual(a.S, b.S) && bitEqual(a.V, b.V) && bitEqual(a.X, b.X) &&
		a.Superheated == b.Superheated
}

func TestClassicIdealCycle(t *testing.T) {
	sv := newTestSolver()
	res := mustRecompute(t, sv, classicBoundary(1.0))

	// the textbook ideal Rankine example: 8 MPa / 8 kPa, saturated
	// vapor inlet, ideal turbine -> thermal efficiency near 37%
	if res.Efficiency < 0.37 || res.Efficiency > 0.38 {
		t.Errorf("efficiency = %v, want ~0.37", res.Efficiency)
	}
	if res.State1.X != 1.0 {
		t.Errorf("state 1 quality = %v", res.State1.X)
	}
	if res.State3.X != 0.0 {
		t.Errorf("state 3 quality = %v, want exactly 0", res.State3.X)
	}
	if !res.State2.TwoPhase() {
		t.Error("state 2 should be inside the dome for this cycle")
	}
	if res.State2.X <= 0 || res.State2.X >= 1 {
		t.Errorf("state 2 quality = %v", res.State2.X)
	}
	if math.Abs(res.TurbineWork-963.2) > 5 {
		t.Errorf("turbine work = %v, want ~963 kJ/kg", res.TurbineWork)
	}
	if math.Abs(res.PumpWork-8.06) > 0.1 {
		t.Errorf("pump work = %v, want ~8.06 kJ/kg", res.PumpWork)
	}
}

func TestNonIdealTurbine(t *testing.T) {
	sv := newTestSolver()
	ideal := mustRecompute(t, sv, classicBoundary(1.0))
	actual := mustRecompute(t, sv, classicBoundary(0.85))

	if actual.TurbineWork >= ideal.TurbineWork {
		t.Errorf("wt did not drop: %v >= %v", actual.TurbineWork, ideal.TurbineWork)
	}
	if actual.Efficiency >= ideal.Efficiency {
		t.Errorf("eta did not drop: %v >= %v", actual.Efficiency, ideal.Efficiency)
	}
	// pump work and heat added are untouched by the turbine efficiency
	if !bitEqual(actual.PumpWork, ideal.PumpWork) {
		t.Errorf("pump work changed: %v vs %v", actual.PumpWork, ideal.PumpWork)
	}
	if math.Abs(actual.HeatAdded-ideal.HeatAdded) > 1e-9 {
		t.Errorf("heat added changed: %v vs %v", actual.HeatAdded, ideal.HeatAdded)
	}
	if math.Abs(actual.TurbineWork-0.85*ideal.TurbineWork) > 1e-9 {
		t.Errorf("wt = %v, want 0.85*%v", actual.TurbineWork, ideal.TurbineWork)
	}
}

func TestTurbineEfficiencyMonotonic(t *testing.T) {
	sv := newTestSolver()
	prevWt, prevEta := -1.0, -1.0
	for _, eff := range []float64{0.6, 0.7, 0.8, 0.9, 1.0} {
		res := mustRecompute(t, sv, classicBoundary(eff))
		if res.TurbineWork <= prevWt {
			t.Fatalf("eff=%v: wt %v not increasing", eff, res.TurbineWork)
		}
		if res.Efficiency <= prevEta {
			t.Fatalf("eff=%v: eta %v not increasing", eff, res.Efficiency)
		}
		prevWt, prevEta = res.TurbineWork, res.Efficiency
	}
}

func TestEfficiencyBounds(t *testing.T) {
	sv := newTestSolver()
	boundaries := []model.CycleBoundary{
		classicBoundary(1.0),
		classicBoundary(0.7),
		{PHigh: 5000, PLow: 10, Inlet: model.InletSpec{Mode: model.QualityMode, Value: 0.95, Set: true}, TurbineEff: 0.9},
		{PHigh: 2000, PLow: 50, Inlet: model.InletSpec{Mode: model.QualityMode, Value: 1.0, Set: true}, TurbineEff: 0.8},
	}
	for i, b := range boundaries {
		res := mustRecompute(t, sv, b)
		if res.Efficiency <= 0 || res.Efficiency >= 1 {
			t.Errorf("case %d: eta = %v outside (0,1)", i, res.Efficiency)
		}
	}
}

func TestIdempotentRecompute(t *testing.T) {
	sv := newTestSolver()
	first := mustRecompute(t, sv, classicBoundary(0.9))
	second, err := sv.Recompute()
	if err != nil {
		t.Fatal(err)
	}
	if !bitEqual(first.TurbineWork, second.TurbineWork) ||
		!bitEqual(first.PumpWork, second.PumpWork) ||
		!bitEqual(first.HeatAdded, second.HeatAdded) ||
		!bitEqual(first.Efficiency, second.Efficiency) {
		t.Error("derived terms differ between identical recomputes")
	}
	for i, pair := range [][2]model.StatePoint{
		{first.State1, second.State1},
		{first.State2, second.State2},
		{first.State3, second.State3},
		{first.State4, second.State4},
	} {
		if !sameState(pair[0], pair[1]) {
			t.Errorf("state %d differs between identical recomputes", i+1)
		}
	}
}

func TestBoundaryRejection(t *testing.T) {
	sv := newTestSolver()
	good := mustRecompute(t, sv, classicBoundary(1.0))

	err := sv.SetBoundary(model.CycleBoundary{
		PHigh:      8,
		PLow:       8000,
		Inlet:      model.InletSpec{Mode: model.QualityMode, Value: 1.0, Set: true},
		TurbineEff: 1.0,
	})
	var ibe *InvalidBoundaryError
	if !errors.As(err, &ibe) || ibe.Kind != PressureOrdering {
		t.Fatalf("expected PressureOrdering error, got %v", err)
	}
	if sv.Result() != good {
		t.Error("stored result replaced by a rejected boundary")
	}
	if sv.Boundary().PHigh != 8000 {
		t.Error("stored boundary overwritten by a rejected one")
	}
}

func TestBadQualityRejected(t *testing.T) {
	sv := newTestSolver()
	b := classicBoundary(1.0)
	b.Inlet.Value = 1.2
	err := sv.SetBoundary(b)
	var ibe *InvalidBoundaryError
	if !errors.As(err, &ibe) || ibe.Kind != InletSpecification {
		t.Fatalf("expected InletSpecification error, got %v", err)
	}
}

func TestBadTurbineEffRejected(t *testing.T) {
	sv := newTestSolver()
	for _, eff := range []float64{0, -0.5, 1.5} {
		err := sv.SetBoundary(classicBoundary(eff))
		var ibe *InvalidBoundaryError
		if !errors.As(err, &ibe) || ibe.Kind != TurbineEfficiency {
			t.Errorf("eff=%v: expected TurbineEfficiency error, got %v", eff, err)
		}
	}
}

func TestInletModeToggleDiscardsValue(t *testing.T) {
	sv := newTestSolver()
	mustRecompute(t, sv, classicBoundary(1.0))

	sv.SetInletMode(model.TemperatureMode)
	_, err := sv.Recompute()
	var ibe *InvalidBoundaryError
	if !errors.As(err, &ibe) || ibe.Kind != InletSpecification {
		t.Fatalf("stale inlet value survived the mode switch: %v", err)
	}

	// returning to the prior mode must still demand a fresh value
	sv.SetInletMode(model.QualityMode)
	if _, err := sv.Recompute(); err == nil {
		t.Fatal("prior mode's stale value was reused")
	}
}

func TestSuperheatedInlet(t *testing.T) {
	sv := newTestSolver()
	res := mustRecompute(t, sv, model.CycleBoundary{
		PHigh:      8000,
		PLow:       8,
		Inlet:      model.InletSpec{Mode: model.TemperatureMode, Value: 500 + 273.15, Set: true},
		TurbineEff: 1.0,
	})
	if !res.State1.Superheated || res.State1.TwoPhase() {
		t.Error("state 1 should be superheated")
	}
	if math.Abs(res.State1.H-3398.3) > 1e-6 {
		t.Errorf("h1 = %v, want table value 3398.3", res.State1.H)
	}
	// superheat raises the efficiency above the saturated-inlet cycle
	if res.Efficiency < 0.39 || res.Efficiency > 0.41 {
		t.Errorf("eta = %v, want ~0.40", res.Efficiency)
	}
}

func TestInletTemperatureBelowSaturationRejected(t *testing.T) {
	sv := newTestSolver()
	err := sv.SetBoundary(model.CycleBoundary{
		PHigh:      8000,
		PLow:       8,
		Inlet:      model.InletSpec{Mode: model.TemperatureMode, Value: 500, Set: true}, // K, below Tsat 568.21
		TurbineEff: 1.0,
	})
	var ibe *InvalidBoundaryError
	if !errors.As(err, &ibe) || ibe.Kind != InletSpecification {
		t.Fatalf("expected InletSpecification error, got %v", err)
	}
}

func TestEnglishUnitsResult(t *testing.T) {
	sv := newTestSolver()
	si := mustRecompute(t, sv, classicBoundary(1.0))

	sv.SetUnitSystem(model.English)
	if sv.Result() != nil {
		t.Fatal("cached result must be dropped on a unit switch")
	}
	eng, err := sv.Recompute()
	if err != nil {
		t.Fatal(err)
	}
	if eng.Units != model.English {
		t.Fatalf("units = %v", eng.Units)
	}
	if math.Abs(eng.State1.P-8000/6.894757293168361) > 1e-6 {
		t.Errorf("P1 = %v psia", eng.State1.P)
	}
	// efficiency is dimensionless and must survive the system switch
	if math.Abs(eng.Efficiency-si.Efficiency) > 1e-12 {
		t.Errorf("eta changed across unit systems: %v vs %v", eng.Efficiency, si.Efficiency)
	}
	if math.Abs(eng.TurbineWork-si.TurbineWork/2.326) > 1e-9 {
		t.Errorf("wt = %v BTU/lb", eng.TurbineWork)
	}
}

func TestLookupErrorNamesStatePoint(t *testing.T) {
	sv := newTestSolver()
	// PLow below the tabulated floor fails at recompute, naming the
	// state that needed the lookup, and publishes nothing
	err := sv.SetBoundary(model.CycleBoundary{
		PHigh:      8000,
		PLow:       0.5,
		Inlet:      model.InletSpec{Mode: model.QualityMode, Value: 1.0, Set: true},
		TurbineEff: 1.0,
	})
	if err != nil {
		t.Fatal(err)
	}
	_, err = sv.Recompute()
	var ple *PropertyLookupError
	if !errors.As(err, &ple) {
		t.Fatalf("expected PropertyLookupError, got %v", err)
	}
	if ple.State != "turbine exit" {
		t.Errorf("state = %q", ple.State)
	}
	var oor *steam.OutOfRangeError
	if !errors.As(err, &oor) {
		t.Error("table error not wrapped")
	}
	if sv.Result() != nil {
		t.Error("partial result published after lookup failure")
	}
}
