package units

import (
	"github.com/shopspring/decimal"

	"unitcalc/core/determinism"
	"unitcalc/internal/errors"
)

// Measurement is an immutable value with a compound unit. Every
// operation returns a new Measurement; the shared runtime is read-only.
type Measurement struct {
	value decimal.Decimal
	units Compound
	rt    *Runtime
}

// Value returns the scalar value
func (m Measurement) Value() decimal.Decimal {
	return m.value
}

// Units returns a copy of the compound unit
func (m Measurement) Units() Compound {
	return m.units.Clone()
}

// Dimensionless reports whether the measurement carries no units
func (m Measurement) Dimensionless() bool {
	return m.units.IsEmpty()
}

// String renders "value units", or just the value when dimensionless
func (m Measurement) String() string {
	if m.units.IsEmpty() {
		return m.value.String()
	}
	return m.value.String() + " " + m.units.String()
}

// Add converts other into m's units and sums the values.
// Identical units add directly.
func (m Measurement) Add(other Measurement) (Measurement, error) {
	if m.units.Equal(other.units) {
		return Measurement{value: m.value.Add(other.value), units: m.units.Clone(), rt: m.rt}, nil
	}
	converted, err := other.ConvertToCompound(m.units)
	if err != nil {
		return Measurement{}, err
	}
	return Measurement{value: m.value.Add(converted.value), units: m.units.Clone(), rt: m.rt}, nil
}

// Subtract converts other into m's units and subtracts it
func (m Measurement) Subtract(other Measurement) (Measurement, error) {
	if m.units.Equal(other.units) {
		return Measurement{value: m.value.Sub(other.value), units: m.units.Clone(), rt: m.rt}, nil
	}
	converted, err := other.ConvertToCompound(m.units)
	if err != nil {
		return Measurement{}, err
	}
	return Measurement{value: m.value.Sub(converted.value), units: m.units.Clone(), rt: m.rt}, nil
}

// Multiply returns the product measurement. Units of the same type fold
// into m's unit for that type via their conversion factor, so
// 2 cup * 3 pint is 12 cup^2 rather than a cup*pint hybrid; exponents
// that cancel to zero are removed.
func (m Measurement) Multiply(other Measurement) Measurement {
	value := m.value.Mul(other.value)
	return m.combine(value, other.units, 1)
}

// Divide returns the quotient measurement, folding like-typed units the
// same way Multiply does. A zero divisor is an error, never a panic.
func (m Measurement) Divide(other Measurement) (Measurement, error) {
	if other.value.IsZero() {
		return Measurement{}, errors.DivisionByZero()
	}
	value := m.value.DivRound(other.value, determinism.FactorScale)
	return m.combine(value, other.units, -1), nil
}

// combine merges other's exponents (scaled by sign) into m's units,
// converting each constituent into m's unit of the same type first
func (m Measurement) combine(value decimal.Decimal, other Compound, sign int) Measurement {
	units := m.units.Clone()

	for _, unit2 := range other.Units() {
		exp2 := other[unit2] * sign
		key := unit2
		target := m.sameTypeUnit(unit2)
		if target != "" && target != unit2 {
			if factor, ok := m.rt.factor(unit2, target); ok {
				value = value.Mul(determinism.PowInt(factor, exp2))
				key = target
			}
			// same type but no path (offset scales): keep the hybrid key
		}
		units[key] += exp2
		if units[key] == 0 {
			delete(units, key)
		}
	}

	return Measurement{value: value, units: units, rt: m.rt}
}

// sameTypeUnit finds m's constituent sharing unit2's type, if any
func (m Measurement) sameTypeUnit(unit2 string) string {
	t := m.rt.typeOf(unit2)
	if t == "" {
		return ""
	}
	for _, unit := range m.units.Units() {
		if m.rt.typeOf(unit) == t {
			return unit
		}
	}
	return ""
}

// Exponentiate raises the measurement to an integral power: the value to
// the n-th power and every exponent multiplied by n
func (m Measurement) Exponentiate(n decimal.Decimal) (Measurement, error) {
	if !n.IsInteger() {
		return Measurement{}, errors.NonIntegralExponent(n.String())
	}
	k := int(n.IntPart())

	units := make(Compound, len(m.units))
	for unit, exp := range m.units {
		if exp*k != 0 {
			units[unit] = exp * k
		}
	}
	return Measurement{value: determinism.PowInt(m.value, k), units: units, rt: m.rt}, nil
}

// Negate flips the value's sign
func (m Measurement) Negate() Measurement {
	return Measurement{value: m.value.Neg(), units: m.units.Clone(), rt: m.rt}
}
