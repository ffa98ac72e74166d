package units

import (
	"fmt"

	"rankine/model"
)

// SI 与英制单位换算，纯函数，无共享状态
// Conversions between SI and English units. Every unit carries an
// affine map to its kind's SI reference, so conversion is the pure
// composition toSI ∘ fromSI and round-trips exactly.

// Kind groups units that may legally convert to one another.
type Kind int

const (
	Pressure Kind = iota
	Temperature
	Enthalpy
	Entropy
	SpecificVolume
	SpecificEnergy
	Efficiency
)

func (k Kind) String() string {
	switch k {
	case Pressure:
		return "pressure"
	case Temperature:
		return "temperature"
	case Enthalpy:
		return "enthalpy"
	case Entropy:
		return "entropy"
	case SpecificVolume:
		return "specific volume"
	case SpecificEnergy:
		return "specific energy"
	case Efficiency:
		return "efficiency"
	}
	return "unknown"
}

// Unit is one named unit. SI value = v*factor + offset.
type Unit struct {
	Kind   Kind
	Symbol string
	factor float64
	offset float64
}

var (
	KPa  = Unit{Pressure, "kPa", 1, 0}
	Psia = Unit{Pressure, "psia", 6.894757293168361, 0}

	Kelvin     = Unit{Temperature, "K", 1, 0}
	Fahrenheit = Unit{Temperature, "°F", 5.0 / 9.0, 255.37222222222223}

	KJPerKg  = Unit{Enthalpy, "kJ/kg", 1, 0}
	BTUPerLb = Unit{Enthalpy, "BTU/lb", 2.326, 0}

	KJPerKgK  = Unit{Entropy, "kJ/(kg·K)", 1, 0}
	BTUPerLbR = Unit{Entropy, "BTU/(lb·R)", 4.1868, 0}

	M3PerKg  = Unit{SpecificVolume, "m³/kg", 1, 0}
	Ft3PerLb = Unit{SpecificVolume, "ft³/lb", 0.06242796057614461, 0}

	// work and heat terms get their own kind so that wiring an energy
	// label to an enthalpy field is caught as a programming error
	EnergyKJPerKg  = Unit{SpecificEnergy, "kJ/kg", 1, 0}
	EnergyBTUPerLb = Unit{SpecificEnergy, "BTU/lb", 2.326, 0}

	Fraction = Unit{Efficiency, "", 1, 0}
)

// InvalidUnitError marks a conversion between incompatible kinds.
// It indicates broken wiring, not bad user input.
type InvalidUnitError struct {
	From Unit
	To   Unit
}

func (e *InvalidUnitError) Error() string {
	return fmt.Sprintf("units: cannot convert %s (%s) to %s (%s)",
		e.From.Symbol, e.From.Kind, e.To.Symbol, e.To.Kind)
}

// Convert maps v from one unit to another of the same kind.
// Efficiency values pass through unchanged.
func Convert(v float64, from, to Unit) (float64, error) {
	if from.Kind != to.Kind {
		return 0, &InvalidUnitError{From: from, To: to}
	}
	if from == to {
		return v, nil
	}
	si := v*from.factor + from.offset
	return (si - to.offset) / to.factor, nil
}

// per-system unit selectors for display suffixes and axis labels

func PressureUnit(sys model.UnitSystem) Unit {
	if sys == model.English {
		return Psia
	}
	return KPa
}

func TemperatureUnit(sys model.UnitSystem) Unit {
	if sys == model.English {
		return Fahrenheit
	}
	return Kelvin
}

func EnthalpyUnit(sys model.UnitSystem) Unit {
	if sys == model.English {
		return BTUPerLb
	}
	return KJPerKg
}

func EntropyUnit(sys model.UnitSystem) Unit {
	if sys == model.English {
		return BTUPerLbR
	}
	return KJPerKgK
}

func VolumeUnit(sys model.UnitSystem) Unit {
	if sys == model.English {
		return Ft3PerLb
	}
	return M3PerKg
}

func EnergyUnit(sys model.UnitSystem) Unit {
	if sys == model.English {
		return EnergyBTUPerLb
	}
	return EnergyKJPerKg
}
