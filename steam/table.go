package steam

import (
	"fmt"
	"sort"
)

// 饱和 / 过热蒸汽物性查询与插值
// Lookup and interpolation over the tabulated water/steam properties.
// Pressures in kPa, temperatures in K on the API (the tables store °C).

const (
	// CriticalPressure is the highest tabulated saturation pressure, kPa.
	CriticalPressure = 22064.0
	// CriticalTemperature in K.
	CriticalTemperature = 373.95 + kelvinOffset

	kelvinOffset = 273.15
)

// SatProps bundles the saturation-line properties at one pressure.
type SatProps struct {
	P    float64 // kPa
	Tsat float64 // K
	Vf   float64
	Vg   float64
	Hf   float64
	Hg   float64
	Sf   float64
	Sg   float64
}

// OutOfRangeError reports a lookup outside the tabulated range.
// Properties are never extrapolated.
type OutOfRangeError struct {
	Quantity string
	Value    float64
	Min      float64
	Max      float64
}

func (e *OutOfRangeError) Error() string {
	return fmt.Sprintf("steam: %s %.6g outside tabulated range [%.6g, %.6g]",
		e.Quantity, e.Value, e.Min, e.Max)
}

type supColumn struct {
	p float64
	t []float64 // K
	v []float64
	h []float64
	s []float64
}

// Table holds the immutable property data. Build it once with NewTable
// and share it read-only across all computations.
type Table struct {
	sat [][8]float64
	sup []supColumn
}

func NewTable() *Table {
	t := &Table{sat: satData}
	for _, col := range supData {
		c := supColumn{p: col.p}
		for _, row := range col.rows {
			c.t = append(c.t, row[0]+kelvinOffset)
			c.v = append(c.v, row[1])
			c.h = append(c.h, row[2])
			c.s = append(c.s, row[3])
		}
		t.sup = append(t.sup, c)
	}
	return t
}

// PressureRange returns the tabulated saturation pressure span, kPa.
func (t *Table) PressureRange() (min, max float64) {
	return t.sat[0][0], t.sat[len(t.sat)-1][0]
}

// SaturationProps interpolates the saturation line at pressure p.
// An exact table hit returns the tabulated row unchanged.
func (t *Table) SaturationProps(p float64) (SatProps, error) {
	min, max := t.PressureRange()
	if p < min || p > max {
		return SatProps{}, &OutOfRangeError{Quantity: "saturation pressure", Value: p, Min: min, Max: max}
	}
	i := sort.Search(len(t.sat), func(i int) bool { return t.sat[i][0] >= p })
	if t.sat[i][0] == p {
		r := t.sat[i]
		return SatProps{P: p, Tsat: r[1] + kelvinOffset, Vf: r[2], Vg: r[3], Hf: r[4], Hg: r[5], Sf: r[6], Sg: r[7]}, nil
	}
	lo, hi := t.sat[i-1], t.sat[i]
	w := (p - lo[0]) / (hi[0] - lo[0])
	return SatProps{
		P:    p,
		Tsat: lerp(lo[1], hi[1], w) + kelvinOffset,
		Vf:   lerp(lo[2], hi[2], w),
		Vg:   lerp(lo[3], hi[3], w),
		Hf:   lerp(lo[4], hi[4], w),
		Hg:   lerp(lo[5], hi[5], w),
		Sf:   lerp(lo[6], hi[6], w),
		Sg:   lerp(lo[7], hi[7], w),
	}, nil
}

// SaturationTemp returns Tsat(p) in K.
func (t *Table) SaturationTemp(p float64) (float64, error) {
	sp, err := t.SaturationProps(p)
	if err != nil {
		return 0, err
	}
	return sp.Tsat, nil
}

// SuperheatedProps interpolates h, s, v at (p, T) in the superheated
// region: linear in temperature within the two bracketing pressure
// columns, then linear in pressure between the column results.
func (t *Table) SuperheatedProps(p, tk float64) (h, s, v float64, err error) {
	lo, hi, w, err := t.supColumns(p)
	if err != nil {
		return 0, 0, 0, err
	}
	hLo, sLo, vLo, err := lo.at(tk)
	if err != nil {
		return 0, 0, 0, err
	}
	if hi == nil {
		return hLo, sLo, vLo, nil
	}
	hHi, sHi, vHi, err := hi.at(tk)
	if err != nil {
		return 0, 0, 0, err
	}
	return lerp(hLo, hHi, w), lerp(sLo, sHi, w), lerp(vLo, vHi, w), nil
}

// SuperheatedTempAtEntropy inverts s(T) at pressure p: the temperature,
// in K, at which the superheated vapor has the requested entropy.
func (t *Table) SuperheatedTempAtEntropy(p, target float64) (float64, error) {
	return t.reverse(p, target, func(c *supColumn) []float64 { return c.s }, "entropy")
}

// SuperheatedTempAtEnthalpy inverts h(T) at pressure p.
func (t *Table) SuperheatedTempAtEnthalpy(p, target float64) (float64, error) {
	return t.reverse(p, target, func(c *supColumn) []float64 { return c.h }, "enthalpy")
}

// reverse performs inverse interpolation along the temperature axis of
// the bracketing pressure columns. Both h and s rise monotonically with
// temperature at fixed pressure.
func (t *Table) reverse(p, target float64, field func(*supColumn) []float64, name string) (float64, error) {
	lo, hi, w, err := t.supColumns(p)
	if err != nil {
		return 0, err
	}
	tLo, err := lo.invert(field(lo), target, name)
	if err != nil {
		return 0, err
	}
	if hi == nil {
		return tLo, nil
	}
	tHi, err := hi.invert(field(hi), target, name)
	if err != nil {
		return 0, err
	}
	return lerp(tLo, tHi, w), nil
}

// supColumns locates the pressure columns bracketing p. On an exact hit
// hi is nil and w is 0.
func (t *Table) supColumns(p float64) (lo, hi *supColumn, w float64, err error) {
	min, max := t.sup[0].p, t.sup[len(t.sup)-1].p
	if p < min || p > max {
		return nil, nil, 0, &OutOfRangeError{Quantity: "superheated pressure", Value: p, Min: min, Max: max}
	}
	i := sort.Search(len(t.sup), func(i int) bool { return t.sup[i].p >= p })
	if t.sup[i].p == p {
		return &t.sup[i], nil, 0, nil
	}
	w = (p - t.sup[i-1].p) / (t.sup[i].p - t.sup[i-1].p)
	return &t.sup[i-1], &t.sup[i], w, nil
}

func (c *supColumn) at(tk float64) (h, s, v float64, err error) {
	n := len(c.t)
	if tk < c.t[0] || tk > c.t[n-1] {
		return 0, 0, 0, &OutOfRangeError{Quantity: fmt.Sprintf("superheated temperature at %.6g kPa", c.p), Value: tk, Min: c.t[0], Max: c.t[n-1]}
	}
	i := sort.Search(n, func(i int) bool { return c.t[i] >= tk })
	if c.t[i] == tk {
		return c.h[i], c.s[i], c.v[i], nil
	}
	w := (tk - c.t[i-1]) / (c.t[i] - c.t[i-1])
	return lerp(c.h[i-1], c.h[i], w), lerp(c.s[i-1], c.s[i], w), lerp(c.v[i-1], c.v[i], w), nil
}

func (c *supColumn) invert(vals []float64, target float64, name string) (float64, error) {
	n := len(vals)
	if target < vals[0] || target > vals[n-1] {
		return 0, &OutOfRangeError{Quantity: fmt.Sprintf("superheated %s at %.6g kPa", name, c.p), Value: target, Min: vals[0], Max: vals[n-1]}
	}
	i := sort.Search(n, func(i int) bool { return vals[i] >= target })
	if vals[i] == target {
		return c.t[i], nil
	}
	w := (target - vals[i-1]) / (vals[i] - vals[i-1])
	return lerp(c.t[i-1], c.t[i], w), nil
}

func lerp(a, b, w float64) float64 {
	return a + w*(b-a)
}
