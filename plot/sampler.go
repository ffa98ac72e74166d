package plot

import (
	"errors"
	"fmt"
	"math"

	"rankine/model"
	"rankine/steam"
	"rankine/units"
)

// 循环曲线采样：饱和穹顶 + 循环路径，供外部画布渲染
// Samples the saturation dome and the cycle process path as ordered
// (x, y) pairs for the external plot canvas. Fully recomputed on every
// call so the dome can never go stale against a fresh cycle.

// ErrNoResult is returned when sampling is requested before a cycle
// has been computed.
var ErrNoResult = errors.New("plot: no cycle result to sample")

// DomainError reports coordinates dropped because a log scale was
// requested for a non-positive value. The surviving points are still
// returned so the render can proceed without the offenders.
type DomainError struct {
	Axis  string
	Count int
}

func (e *DomainError) Error() string {
	return fmt.Sprintf("plot: %d non-positive %s value(s) dropped under log scaling", e.Count, e.Axis)
}

// Sampler produces plot sequences from a resolved cycle. domeN is the
// per-branch dome resolution.
type Sampler struct {
	table *steam.Table
	domeN int
}

func NewSampler(table *steam.Table, domeN int) *Sampler {
	if domeN < 2 {
		domeN = 100
	}
	return &Sampler{table: table, domeN: domeN}
}

// DomeCount is the number of leading dome points in a sampled sequence
// before any log-scale omissions.
func (s *Sampler) DomeCount() int {
	return 2 * s.domeN
}

// Sample returns the dome boundary followed by the closed cycle trace
// 3→4→bubble(PHigh)→[dew(PHigh)]→1→2→3, in the axis pair requested.
// Values are reported in the result's unit system. With a log flag set,
// non-positive coordinates are omitted and a DomainError returned
// alongside the surviving points.
func (s *Sampler) Sample(res *model.CycleResult, xv, yv model.AxisVar, logX, logY bool) ([]model.Point, error) {
	if res == nil {
		return nil, ErrNoResult
	}
	sys := res.Units

	states, fromTable, err := s.curveStates(res)
	if err != nil {
		return nil, err
	}

	points := make([]model.Point, 0, len(states))
	for i, st := range states {
		p := model.Point{X: axisValue(st, xv), Y: axisValue(st, yv)}
		// dome and bubble/dew anchors come straight from the SI table;
		// the resolved cycle states are already in the result's units
		if sys == model.English && fromTable[i] {
			if p, err = convertPoint(p, xv, yv, sys); err != nil {
				return nil, err
			}
		}
		points = append(points, p)
	}

	if !logX && !logY {
		return points, nil
	}
	out := points[:0]
	dropped := 0
	axis := ""
	for _, p := range points {
		if logX {
			if p.X <= 0 {
				dropped++
				axis = xv.String()
				continue
			}
			p.X = math.Log10(p.X)
		}
		if logY {
			if p.Y <= 0 {
				dropped++
				axis = yv.String()
				continue
			}
			p.Y = math.Log10(p.Y)
		}
		out = append(out, p)
	}
	if dropped > 0 {
		return out, &DomainError{Axis: axis, Count: dropped}
	}
	return out, nil
}

// curveStates assembles the dome branches and the cycle trace as state
// points carrying all five plottable properties. The parallel bool
// slice marks points taken from the SI table rather than the result.
func (s *Sampler) curveStates(res *model.CycleResult) ([]model.StatePoint, []bool, error) {
	pMin, _ := s.table.PressureRange()

	// log-spaced pressure samples up to the critical point
	ratio := steam.CriticalPressure / pMin
	liquid := make([]model.StatePoint, 0, s.domeN)
	vapor := make([]model.StatePoint, 0, s.domeN)
	for i := 0; i < s.domeN; i++ {
		p := pMin * math.Pow(ratio, float64(i)/float64(s.domeN-1))
		sp, err := s.table.SaturationProps(p)
		if err != nil {
			return nil, nil, err
		}
		liquid = append(liquid, satState(sp, false))
		vapor = append(vapor, satState(sp, true))
	}

	// dome: liquid branch ascending in pressure, vapor branch descending
	states := liquid
	for i := len(vapor) - 1; i >= 0; i-- {
		states = append(states, vapor[i])
	}
	fromTable := make([]bool, len(states), len(states)+7)
	for i := range fromTable {
		fromTable[i] = true
	}

	// cycle trace; bubble/dew anchors at PHigh come from the table in SI
	pHighSI := res.State1.P
	if res.Units == model.English {
		var err error
		pHighSI, err = units.Convert(res.State1.P, units.Psia, units.KPa)
		if err != nil {
			return nil, nil, err
		}
	}
	satH, err := s.table.SaturationProps(pHighSI)
	if err != nil {
		return nil, nil, err
	}
	states = append(states, res.State3, res.State4, satState(satH, false))
	fromTable = append(fromTable, false, false, true)
	if res.State1.Superheated {
		states = append(states, satState(satH, true))
		fromTable = append(fromTable, true)
	}
	states = append(states, res.State1, res.State2, res.State3)
	fromTable = append(fromTable, false, false, false)
	return states, fromTable, nil
}

func satState(sp steam.SatProps, vapor bool) model.StatePoint {
	if vapor {
		return model.StatePoint{P: sp.P, T: sp.Tsat, H: sp.Hg, S: sp.Sg, V: sp.Vg, X: 1}
	}
	return model.StatePoint{P: sp.P, T: sp.Tsat, H: sp.Hf, S: sp.Sf, V: sp.Vf, X: 0}
}

func axisValue(st model.StatePoint, v model.AxisVar) float64 {
	switch v {
	case model.AxisT:
		return st.T
	case model.AxisS:
		return st.S
	case model.AxisH:
		return st.H
	case model.AxisP:
		return st.P
	case model.AxisV:
		return st.V
	}
	return math.NaN()
}

func convertPoint(p model.Point, xv, yv model.AxisVar, sys model.UnitSystem) (model.Point, error) {
	x, err := convertAxis(p.X, xv, sys)
	if err != nil {
		return p, err
	}
	y, err := convertAxis(p.Y, yv, sys)
	if err != nil {
		return p, err
	}
	return model.Point{X: x, Y: y}, nil
}

func convertAxis(v float64, av model.AxisVar, sys model.UnitSystem) (float64, error) {
	switch av {
	case model.AxisT:
		return units.Convert(v, units.Kelvin, units.TemperatureUnit(sys))
	case model.AxisS:
		return units.Convert(v, units.KJPerKgK, units.EntropyUnit(sys))
	case model.AxisH:
		return units.Convert(v, units.KJPerKg, units.EnthalpyUnit(sys))
	case model.AxisP:
		return units.Convert(v, units.KPa, units.PressureUnit(sys))
	case model.AxisV:
		return units.Convert(v, units.M3PerKg, units.VolumeUnit(sys))
	}
	return v, nil
}

// Labels returns the axis labels with unit suffixes for the requested
// pair, prefixed with log when the corresponding flag is set.
func Labels(xv, yv model.AxisVar, sys model.UnitSystem, logX, logY bool) (string, string) {
	return label(xv, sys, logX), label(yv, sys, logY)
}

func label(av model.AxisVar, sys model.UnitSystem, logScale bool) string {
	var u units.Unit
	switch av {
	case model.AxisT:
		u = units.TemperatureUnit(sys)
	case model.AxisS:
		u = units.EntropyUnit(sys)
	case model.AxisH:
		u = units.EnthalpyUnit(sys)
	case model.AxisP:
		u = units.PressureUnit(sys)
	case model.AxisV:
		u = units.VolumeUnit(sys)
	}
	l := fmt.Sprintf("%s [%s]", av, u.Symbol)
	if logScale {
		l = "log " + l
	}
	return l
}

// ParseAxisVar maps the UI's axis selection string to an AxisVar.
func ParseAxisVar(s string) (model.AxisVar, error) {
	switch s {
	case "T":
		return model.AxisT, nil
	case "s", "S":
		return model.AxisS, nil
	case "h", "H":
		return model.AxisH, nil
	case "P", "p":
		return model.AxisP, nil
	case "v", "V":
		return model.AxisV, nil
	}
	return 0, fmt.Errorf("plot: unknown axis variable %q", s)
}
