package discount

import (
	"github.com/cockroachdb/errors"
	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// CalculateAmount maps a rule's value type to a concrete discount amount for
// the given base. The result is always clamped to [0, baseAmount]: a discount
// never exceeds the amount it discounts.
func CalculateAmount(valueType ValueType, value, baseAmount decimal.Decimal) (decimal.Decimal, error) {
	var amount decimal.Decimal

	switch valueType {
	case ValuePercentage:
		amount = baseAmount.Mul(value).Div(hundred)
	case ValueFixedAmount:
		amount = value
	case ValueFixedPrice:
		// "Order total becomes value": the discount is whatever is left above it.
		amount = baseAmount.Sub(value)
	default:
		return decimal.Zero, errors.Newf("unsupported value type: %q", valueType)
	}

	return clamp(amount, baseAmount), nil
}

// Amount computes the rule's discount against baseAmount, applying the
// rule's own maximum-discount cap before the final clamp.
func (r *Rule) Amount(baseAmount decimal.Decimal) (decimal.Decimal, error) {
	amount, err := CalculateAmount(r.ValueType, r.Value, baseAmount)
	if err != nil {
		return decimal.Zero, err
	}
	if r.MaximumDiscountAmount != nil && amount.GreaterThan(*r.MaximumDiscountAmount) {
		amount = *r.MaximumDiscountAmount
	}
	return clamp(amount, baseAmount), nil
}

func clamp(amount, baseAmount decimal.Decimal) decimal.Decimal {
	if amount.IsNegative() {
		return decimal.Zero
	}
	if amount.GreaterThan(baseAmount) {
		return baseAmount
	}
	return amount
}
