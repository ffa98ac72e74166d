package model

import (
	"encoding/json"
	"math"
)

// 全局共享的值类型：单位制、循环边界条件、状态点和计算结果
// shared value types: unit system, cycle boundary, state points, results

// UnitSystem selects the display unit family. It is a pure selector:
// values from the two systems are never mixed.
type UnitSystem int

const (
	SI UnitSystem = iota
	English
)

func (u UnitSystem) String() string {
	if u == English {
		return "English"
	}
	return "SI"
}

// InletMode is the two-state toggle for the turbine inlet specification.
type InletMode int

const (
	QualityMode InletMode = iota
	TemperatureMode
)

func (m InletMode) String() string {
	if m == TemperatureMode {
		return "temperature"
	}
	return "quality"
}

// InletSpec carries the turbine inlet value for the active mode.
// Set is false when the value is inert, i.e. after a mode switch the
// previous mode's number may not be reused and a fresh one is required.
type InletSpec struct {
	Mode  InletMode
	Value float64
	Set   bool
}

// CycleBoundary is the full operator-chosen parameter set, in internal
// SI units (kPa for pressures, K for a temperature-mode inlet value).
type CycleBoundary struct {
	PHigh      float64
	PLow       float64
	Inlet      InletSpec
	TurbineEff float64
}

// StatePoint holds one resolved cycle state. Units follow the result's
// unit system: kPa/K/kJ/kg/kJ/(kg·K)/m³/kg in SI, psia/°F/BTU/lb/
// BTU/(lb·R)/ft³/lb in English. X is NaN outside the two-phase region.
type StatePoint struct {
	P           float64
	T           float64
	H           float64
	S           float64
	V           float64
	X           float64
	Superheated bool
}

// TwoPhase reports whether the point carries a defined quality.
func (p StatePoint) TwoPhase() bool {
	return !math.IsNaN(p.X)
}

// statePointJSON mirrors StatePoint on the wire. Quality is null
// outside the two-phase region; JSON cannot carry NaN.
type statePointJSON struct {
	P           float64  `json:"p"`
	T           float64  `json:"t"`
	H           float64  `json:"h"`
	S           float64  `json:"s"`
	V           float64  `json:"v"`
	X           *float64 `json:"x"`
	Superheated bool     `json:"superheated"`
}

func (p StatePoint) MarshalJSON() ([]byte, error) {
	enc := statePointJSON{P: p.P, T: p.T, H: p.H, S: p.S, V: p.V, Superheated: p.Superheated}
	if !math.IsNaN(p.X) {
		enc.X = &p.X
	}
	return json.Marshal(enc)
}

func (p *StatePoint) UnmarshalJSON(data []byte) error {
	var dec statePointJSON
	if err := json.Unmarshal(data, &dec); err != nil {
		return err
	}
	*p = StatePoint{P: dec.P, T: dec.T, H: dec.H, S: dec.S, V: dec.V, X: math.NaN(), Superheated: dec.Superheated}
	if dec.X != nil {
		p.X = *dec.X
	}
	return nil
}

// CycleResult is the derived output of one recompute. It is replaced
// wholesale on every boundary change, never patched.
type CycleResult struct {
	State1 StatePoint // turbine inlet
	State2 StatePoint // turbine exit, actual
	State3 StatePoint // condenser exit / pump inlet
	State4 StatePoint // pump exit

	TurbineWork float64
	PumpWork    float64
	HeatAdded   float64
	Efficiency  float64

	Units UnitSystem
}

// Point is one plot coordinate pair.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// AxisVar names a plottable state property.
type AxisVar int

const (
	AxisT AxisVar = iota
	AxisS
	AxisH
	AxisP
	AxisV
)

func (a AxisVar) String() string {
	switch a {
	case AxisT:
		return "T"
	case AxisS:
		return "s"
	case AxisH:
		return "h"
	case AxisP:
		return "P"
	case AxisV:
		return "v"
	}
	return "?"
}
