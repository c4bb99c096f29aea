package units

import (
	"github.com/shopspring/decimal"

	"unitcalc/core/determinism"
	"unitcalc/internal/errors"
)

// OperandKind tags the two operand shapes
type OperandKind int

const (
	KindScalar OperandKind = iota
	KindQuantity
)

// Operand is a calculator stack value: either a bare number or a
// measurement. Arithmetic dispatches on the two kinds explicitly rather
// than probing types at runtime.
type Operand struct {
	kind     OperandKind
	scalar   decimal.Decimal
	quantity Measurement
}

// Scalar wraps a bare number
func Scalar(v decimal.Decimal) Operand {
	return Operand{kind: KindScalar, scalar: v}
}

// Quantity wraps a measurement
func Quantity(m Measurement) Operand {
	return Operand{kind: KindQuantity, quantity: m}
}

// Kind returns the operand's tag
func (o Operand) Kind() OperandKind {
	return o.kind
}

// Measurement returns the wrapped measurement; valid only for KindQuantity
func (o Operand) Measurement() Measurement {
	return o.quantity
}

// Decimal returns the numeric value regardless of kind
func (o Operand) Decimal() decimal.Decimal {
	if o.kind == KindQuantity {
		return o.quantity.Value()
	}
	return o.scalar
}

// String renders the operand
func (o Operand) String() string {
	if o.kind == KindQuantity {
		return o.quantity.String()
	}
	return o.scalar.String()
}

// Add sums two operands. A scalar beside a quantity shifts the
// quantity's value in its own units.
func (o Operand) Add(other Operand) (Operand, error) {
	switch {
	case o.kind == KindScalar && other.kind == KindScalar:
		return Scalar(o.scalar.Add(other.scalar)), nil
	case o.kind == KindQuantity && other.kind == KindQuantity:
		sum, err := o.quantity.Add(other.quantity)
		if err != nil {
			return Operand{}, err
		}
		return Quantity(sum), nil
	case o.kind == KindQuantity:
		m := o.quantity
		return Quantity(Measurement{value: m.value.Add(other.scalar), units: m.units.Clone(), rt: m.rt}), nil
	default:
		m := other.quantity
		return Quantity(Measurement{value: o.scalar.Add(m.value), units: m.units.Clone(), rt: m.rt}), nil
	}
}

// Subtract subtracts other from o with the same kind rules as Add
func (o Operand) Subtract(other Operand) (Operand, error) {
	switch {
	case o.kind == KindScalar && other.kind == KindScalar:
		return Scalar(o.scalar.Sub(other.scalar)), nil
	case o.kind == KindQuantity && other.kind == KindQuantity:
		diff, err := o.quantity.Subtract(other.quantity)
		if err != nil {
			return Operand{}, err
		}
		return Quantity(diff), nil
	case o.kind == KindQuantity:
		m := o.quantity
		return Quantity(Measurement{value: m.value.Sub(other.scalar), units: m.units.Clone(), rt: m.rt}), nil
	default:
		m := other.quantity
		return Quantity(Measurement{value: o.scalar.Sub(m.value), units: m.units.Clone(), rt: m.rt}), nil
	}
}

// Multiply multiplies two operands. A scalar scales the quantity's value
// without touching its units.
func (o Operand) Multiply(other Operand) (Operand, error) {
	switch {
	case o.kind == KindScalar && other.kind == KindScalar:
		return Scalar(o.scalar.Mul(other.scalar)), nil
	case o.kind == KindQuantity && other.kind == KindQuantity:
		return Quantity(o.quantity.Multiply(other.quantity)), nil
	case o.kind == KindQuantity:
		m := o.quantity
		return Quantity(Measurement{value: m.value.Mul(other.scalar), units: m.units.Clone(), rt: m.rt}), nil
	default:
		m := other.quantity
		return Quantity(Measurement{value: m.value.Mul(o.scalar), units: m.units.Clone(), rt: m.rt}), nil
	}
}

// Divide divides o by other. Dividing a scalar by a quantity inverts the
// quantity's units. A zero divisor is an error, never a panic.
func (o Operand) Divide(other Operand) (Operand, error) {
	if other.Decimal().IsZero() {
		return Operand{}, errors.DivisionByZero()
	}
	switch {
	case o.kind == KindScalar && other.kind == KindScalar:
		return Scalar(o.scalar.DivRound(other.scalar, determinism.FactorScale)), nil
	case o.kind == KindQuantity && other.kind == KindQuantity:
		quotient, err := o.quantity.Divide(other.quantity)
		if err != nil {
			return Operand{}, err
		}
		return Quantity(quotient), nil
	case o.kind == KindQuantity:
		m := o.quantity
		value := m.value.DivRound(other.scalar, determinism.FactorScale)
		return Quantity(Measurement{value: value, units: m.units.Clone(), rt: m.rt}), nil
	default:
		m := other.quantity
		value := o.scalar.DivRound(m.value, determinism.FactorScale)
		return Quantity(Measurement{value: value, units: m.units.Invert(), rt: m.rt}), nil
	}
}

// Exponentiate raises o to the power of other. The exponent must be a
// dimensionless integer.
func (o Operand) Exponentiate(other Operand) (Operand, error) {
	if other.kind == KindQuantity && !other.quantity.Dimensionless() {
		return Operand{}, errors.Newf(errors.TypeIncompatibleUnits,
			"exponent must be dimensionless, got %s", other.quantity.units.String())
	}
	exp := other.Decimal()

	if o.kind == KindScalar {
		if !exp.IsInteger() {
			return Operand{}, errors.NonIntegralExponent(exp.String())
		}
		return Scalar(determinism.PowInt(o.scalar, int(exp.IntPart()))), nil
	}

	raised, err := o.quantity.Exponentiate(exp)
	if err != nil {
		return Operand{}, err
	}
	return Quantity(raised), nil
}
