package cycle

import (
	"errors"
	"fmt"

	"rankine/model"
	"rankine/units"
)

// 显示层：为前端标签生成带单位后缀的格式化字符串
// Formatting for the UI labels. Every string carries the unit suffix of
// the active unit system.

// ErrNoResult is returned when display data is requested before the
// first successful recompute.
var ErrNoResult = errors.New("cycle: no result computed yet")

// Display formats the last published result for the UI.
func (sv *Solver) Display() (*model.DisplayData, error) {
	res := sv.result
	if res == nil {
		return nil, ErrNoResult
	}
	sys := res.Units
	return &model.DisplayData{
		State1:      stateDisplay(res.State1, sys),
		State2:      stateDisplay(res.State2, sys),
		State3:      stateDisplay(res.State3, sys),
		State4:      stateDisplay(res.State4, sys),
		TurbineWork: fmt.Sprintf("%.2f %s", res.TurbineWork, units.EnergyUnit(sys).Symbol),
		PumpWork:    fmt.Sprintf("%.2f %s", res.PumpWork, units.EnergyUnit(sys).Symbol),
		HeatAdded:   fmt.Sprintf("%.2f %s", res.HeatAdded, units.EnergyUnit(sys).Symbol),
		Efficiency:  fmt.Sprintf("%.1f%%", res.Efficiency*100),
		Units:       sys.String(),
	}, nil
}

func stateDisplay(st model.StatePoint, sys model.UnitSystem) model.StateDisplay {
	quality := "superheated"
	if st.TwoPhase() {
		quality = fmt.Sprintf("%.4f", st.X)
		if st.X == 0 {
			quality = "saturated liquid"
		}
	}
	return model.StateDisplay{
		Enthalpy:    fmt.Sprintf("%.2f %s", st.H, units.EnthalpyUnit(sys).Symbol),
		Temperature: fmt.Sprintf("%.2f %s", st.T, units.TemperatureUnit(sys).Symbol),
		Pressure:    fmt.Sprintf("%.2f %s", st.P, units.PressureUnit(sys).Symbol),
		Quality:     quality,
	}
}

// SaturationSummary formats the saturation properties at one pressure
// (given in the active unit system) for the P high / P low panels.
func (sv *Solver) SaturationSummary(p float64) (*model.SatSummary, error) {
	sys := sv.sys
	pSI, err := units.Convert(p, units.PressureUnit(sys), units.KPa)
	if err != nil {
		return nil, err
	}
	sp, err := sv.table.SaturationProps(pSI)
	if err != nil {
		return nil, &PropertyLookupError{State: "saturation summary", Err: err}
	}
	tsat, err := units.Convert(sp.Tsat, units.Kelvin, units.TemperatureUnit(sys))
	if err != nil {
		return nil, err
	}
	conv := func(v float64, from, to units.Unit) float64 {
		out, cerr := units.Convert(v, from, to)
		if cerr != nil && err == nil {
			err = cerr
		}
		return out
	}
	hf := conv(sp.Hf, units.KJPerKg, units.EnthalpyUnit(sys))
	hg := conv(sp.Hg, units.KJPerKg, units.EnthalpyUnit(sys))
	sf := conv(sp.Sf, units.KJPerKgK, units.EntropyUnit(sys))
	sg := conv(sp.Sg, units.KJPerKgK, units.EntropyUnit(sys))
	vf := conv(sp.Vf, units.M3PerKg, units.VolumeUnit(sys))
	vg := conv(sp.Vg, units.M3PerKg, units.VolumeUnit(sys))
	if err != nil {
		return nil, err
	}
	return &model.SatSummary{
		Pressure: fmt.Sprintf("%.2f %s", p, units.PressureUnit(sys).Symbol),
		Tsat:     fmt.Sprintf("%.2f %s", tsat, units.TemperatureUnit(sys).Symbol),
		Hf:       fmt.Sprintf("%.2f %s", hf, units.EnthalpyUnit(sys).Symbol),
		Hg:       fmt.Sprintf("%.2f %s", hg, units.EnthalpyUnit(sys).Symbol),
		Sf:       fmt.Sprintf("%.4f %s", sf, units.EntropyUnit(sys).Symbol),
		Sg:       fmt.Sprintf("%.4f %s", sg, units.EntropyUnit(sys).Symbol),
		Vf:       fmt.Sprintf("%.6f %s", vf, units.VolumeUnit(sys).Symbol),
		Vg:       fmt.Sprintf("%.4f %s", vg, units.VolumeUnit(sys).Symbol),
	}, nil
}
