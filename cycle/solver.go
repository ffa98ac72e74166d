package cycle

import (
	"fmt"
	"math"

	log "github.com/sirupsen/logrus"

	"rankine/model"
	"rankine/steam"
	"rankine/units"
)

// 朗肯循环求解器：由边界条件解析四个状态点并推导能量项
// Resolves the four Rankine state points and the derived energy terms
// from a validated cycle boundary.
//
// State numbering follows the usual convention:
//   1 turbine inlet, 2 turbine exit (actual), 3 condenser exit /
//   pump inlet (saturated liquid), 4 pump exit.

type BoundaryErrorKind int

const (
	PressureOrdering BoundaryErrorKind = iota
	InletSpecification
	TurbineEfficiency
)

func (k BoundaryErrorKind) String() string {
	switch k {
	case PressureOrdering:
		return "pressure ordering"
	case InletSpecification:
		return "inlet specification"
	case TurbineEfficiency:
		return "turbine efficiency"
	}
	return "unknown"
}

// InvalidBoundaryError rejects a boundary that violates the cycle
// invariants. The previously stored boundary and result are untouched.
type InvalidBoundaryError struct {
	Kind   BoundaryErrorKind
	Reason string
}

func (e *InvalidBoundaryError) Error() string {
	return fmt.Sprintf("cycle: invalid boundary (%s): %s", e.Kind, e.Reason)
}

// PropertyLookupError wraps a table error with the state point that
// required the lookup. No partial result is published.
type PropertyLookupError struct {
	State string
	Err   error
}

func (e *PropertyLookupError) Error() string {
	return fmt.Sprintf("cycle: property lookup for %s: %v", e.State, e.Err)
}

func (e *PropertyLookupError) Unwrap() error {
	return e.Err
}

// Solver owns the current boundary and the last published result.
// All internal arithmetic is SI; the result is converted wholesale when
// the English system is selected. Single logical thread of control.
type Solver struct {
	table    *steam.Table
	boundary model.CycleBoundary
	sys      model.UnitSystem
	result   *model.CycleResult
}

func NewSolver(table *steam.Table) *Solver {
	return &Solver{table: table, sys: model.SI}
}

// Boundary returns the currently stored boundary.
func (sv *Solver) Boundary() model.CycleBoundary {
	return sv.boundary
}

// UnitSystem returns the active display unit system.
func (sv *Solver) UnitSystem() model.UnitSystem {
	return sv.sys
}

// Result returns the last published result, nil before the first
// successful recompute.
func (sv *Solver) Result() *model.CycleResult {
	return sv.result
}

// SetUnitSystem switches the display unit system and drops the cached
// result so the next recompute reports in the new system.
func (sv *Solver) SetUnitSystem(sys model.UnitSystem) {
	if sys == sv.sys {
		return
	}
	sv.sys = sys
	sv.result = nil
	log.WithFields(log.Fields{"units": sys.String()}).Info("unit system changed")
}

// SetInletMode toggles between quality and temperature specification.
// Switching marks the stored inlet value inert: re-selecting the prior
// mode still requires a fresh value via SetBoundary.
func (sv *Solver) SetInletMode(m model.InletMode) {
	if sv.boundary.Inlet.Mode == m {
		return
	}
	sv.boundary.Inlet = model.InletSpec{Mode: m}
	log.WithFields(log.Fields{"mode": m.String()}).Info("inlet mode changed")
}

// SetBoundary validates and stores a new cycle boundary (SI units).
// On any violation the previous boundary and result are kept intact.
func (sv *Solver) SetBoundary(b model.CycleBoundary) error {
	if b.PLow <= 0 || b.PHigh <= b.PLow {
		return &InvalidBoundaryError{
			Kind:   PressureOrdering,
			Reason: fmt.Sprintf("require PHigh > PLow > 0, got PHigh=%.6g PLow=%.6g kPa", b.PHigh, b.PLow),
		}
	}
	if b.TurbineEff <= 0 || b.TurbineEff > 1 {
		return &InvalidBoundaryError{
			Kind:   TurbineEfficiency,
			Reason: fmt.Sprintf("turbine efficiency must lie in (0,1], got %.6g", b.TurbineEff),
		}
	}
	if !b.Inlet.Set {
		return &InvalidBoundaryError{Kind: InletSpecification, Reason: "turbine inlet value not supplied"}
	}
	switch b.Inlet.Mode {
	case model.QualityMode:
		if b.Inlet.Value < 0 || b.Inlet.Value > 1 {
			return &InvalidBoundaryError{
				Kind:   InletSpecification,
				Reason: fmt.Sprintf("inlet quality must lie in [0,1], got %.6g", b.Inlet.Value),
			}
		}
	case model.TemperatureMode:
		tsat, err := sv.table.SaturationTemp(b.PHigh)
		if err != nil {
			return &PropertyLookupError{State: "turbine inlet", Err: err}
		}
		if b.Inlet.Value <= tsat {
			return &InvalidBoundaryError{
				Kind: InletSpecification,
				Reason: fmt.Sprintf("inlet temperature %.6g K must exceed Tsat %.6g K at %.6g kPa",
					b.Inlet.Value, tsat, b.PHigh),
			}
		}
	}
	sv.boundary = b
	log.WithFields(log.Fields{
		"PHigh":      b.PHigh,
		"PLow":       b.PLow,
		"inletMode":  b.Inlet.Mode.String(),
		"inletValue": b.Inlet.Value,
		"turbineEff": b.TurbineEff,
	}).Info("boundary set")
	return nil
}

// Recompute resolves the four state points and derived terms from the
// stored boundary and publishes a fresh result atomically. On error the
// previous result stays live.
func (sv *Solver) Recompute() (*model.CycleResult, error) {
	b := sv.boundary
	if !b.Inlet.Set {
		return nil, &InvalidBoundaryError{Kind: InletSpecification, Reason: "turbine inlet value not supplied"}
	}

	satH, err := sv.table.SaturationProps(b.PHigh)
	if err != nil {
		return nil, &PropertyLookupError{State: "turbine inlet", Err: err}
	}
	satL, err := sv.table.SaturationProps(b.PLow)
	if err != nil {
		return nil, &PropertyLookupError{State: "turbine exit", Err: err}
	}

	// state 1: saturated mixture at PHigh, or superheated lookup
	var st1 model.StatePoint
	if b.Inlet.Mode == model.QualityMode {
		st1 = mixState(satH, b.Inlet.Value)
	} else {
		h1, s1, v1, err := sv.table.SuperheatedProps(b.PHigh, b.Inlet.Value)
		if err != nil {
			return nil, &PropertyLookupError{State: "turbine inlet", Err: err}
		}
		st1 = model.StatePoint{P: b.PHigh, T: b.Inlet.Value, H: h1, S: s1, V: v1, X: math.NaN(), Superheated: true}
	}

	// isentropic exit 2s at PLow: quality inversion on entropy, with the
	// superheated reverse lookup when the inversion would need x > 1
	x2s := (st1.S - satL.Sf) / (satL.Sg - satL.Sf)
	var h2s float64
	if x2s > 1 {
		t2s, err := sv.table.SuperheatedTempAtEntropy(b.PLow, st1.S)
		if err != nil {
			return nil, &PropertyLookupError{State: "turbine exit (isentropic)", Err: err}
		}
		h2s, _, _, err = sv.table.SuperheatedProps(b.PLow, t2s)
		if err != nil {
			return nil, &PropertyLookupError{State: "turbine exit (isentropic)", Err: err}
		}
	} else {
		if x2s < 0 {
			x2s = 0
		}
		h2s = satL.Hf + x2s*(satL.Hg-satL.Hf)
	}

	// actual exit enthalpy, closed-form efficiency correction
	h2 := st1.H - b.TurbineEff*(st1.H-h2s)

	// state 2 located at (PLow, h2)
	var st2 model.StatePoint
	if h2 <= satL.Hg {
		x2 := (h2 - satL.Hf) / (satL.Hg - satL.Hf)
		st2 = mixState(satL, x2)
	} else {
		t2, err := sv.table.SuperheatedTempAtEnthalpy(b.PLow, h2)
		if err != nil {
			return nil, &PropertyLookupError{State: "turbine exit", Err: err}
		}
		h2x, s2, v2, err := sv.table.SuperheatedProps(b.PLow, t2)
		if err != nil {
			return nil, &PropertyLookupError{State: "turbine exit", Err: err}
		}
		st2 = model.StatePoint{P: b.PLow, T: t2, H: h2x, S: s2, V: v2, X: math.NaN(), Superheated: true}
	}

	// state 3: saturated liquid at PLow
	st3 := mixState(satL, 0)

	// state 4: incompressible-liquid pump work, wp = vf·(PHigh−PLow)
	wp := satL.Vf * (b.PHigh - b.PLow)
	st4 := model.StatePoint{
		P: b.PHigh, T: st3.T, H: st3.H + wp, S: st3.S, V: satL.Vf,
		X: math.NaN(), Superheated: false,
	}

	wt := st1.H - st2.H
	qin := st1.H - st4.H
	res := &model.CycleResult{
		State1:      st1,
		State2:      st2,
		State3:      st3,
		State4:      st4,
		TurbineWork: wt,
		PumpWork:    wp,
		HeatAdded:   qin,
		Efficiency:  (wt - wp) / qin,
		Units:       model.SI,
	}
	if sv.sys == model.English {
		if err := convertResult(res, model.English); err != nil {
			return nil, err
		}
	}
	sv.result = res
	log.WithFields(log.Fields{
		"wt":  res.TurbineWork,
		"wp":  res.PumpWork,
		"qin": res.HeatAdded,
		"eta": res.Efficiency,
	}).Info("cycle recomputed")
	return res, nil
}

// mixState builds a two-phase state from quality weighting of the
// saturated endpoints. Quality is never interpolated independently.
func mixState(sp steam.SatProps, x float64) model.StatePoint {
	return model.StatePoint{
		P: sp.P,
		T: sp.Tsat,
		H: sp.Hf + x*(sp.Hg-sp.Hf),
		S: sp.Sf + x*(sp.Sg-sp.Sf),
		V: sp.Vf + x*(sp.Vg-sp.Vf),
		X: x,
	}
}

// convertResult rewrites every dimensioned field of an SI result into
// the target system. Quality and efficiency are dimensionless.
func convertResult(res *model.CycleResult, sys model.UnitSystem) error {
	states := []*model.StatePoint{&res.State1, &res.State2, &res.State3, &res.State4}
	for _, st := range states {
		var err error
		if st.P, err = units.Convert(st.P, units.KPa, units.PressureUnit(sys)); err != nil {
			return err
		}
		if st.T, err = units.Convert(st.T, units.Kelvin, units.TemperatureUnit(sys)); err != nil {
			return err
		}
		if st.H, err = units.Convert(st.H, units.KJPerKg, units.EnthalpyUnit(sys)); err != nil {
			return err
		}
		if st.S, err = units.Convert(st.S, units.KJPerKgK, units.EntropyUnit(sys)); err != nil {
			return err
		}
		if st.V, err = units.Convert(st.V, units.M3PerKg, units.VolumeUnit(sys)); err != nil {
			return err
		}
	}
	var err error
	if res.TurbineWork, err = units.Convert(res.TurbineWork, units.EnergyKJPerKg, units.EnergyUnit(sys)); err != nil {
		return err
	}
	if res.PumpWork, err = units.Convert(res.PumpWork, units.EnergyKJPerKg, units.EnergyUnit(sys)); err != nil {
		return err
	}
	if res.HeatAdded, err = units.Convert(res.HeatAdded, units.EnergyKJPerKg, units.EnergyUnit(sys)); err != nil {
		return err
	}
	res.Units = sys
	return nil
}
