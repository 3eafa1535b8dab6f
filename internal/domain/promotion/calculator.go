package promotion

import (
	"github.com/cockroachdb/errors"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"promo-engine/internal/domain/discount"
)

var ErrNoLineRules = errors.New("promotion has no line rules")

// Amount computes the promotion's discount against baseAmount using the
// first line rule only. The base result is capped to the promotion's
// maximum discount, then clamped to [0, baseAmount].
func (r *Rule) Amount(baseAmount decimal.Decimal) (decimal.Decimal, error) {
	line := r.FirstLineRule()
	if line == nil {
		return decimal.Zero, ErrNoLineRules
	}

	amount, err := discount.CalculateAmount(line.DiscountType, line.DiscountValue, baseAmount)
	if err != nil {
		return decimal.Zero, err
	}

	if r.MaximumDiscountAmount != nil && amount.GreaterThan(*r.MaximumDiscountAmount) {
		amount = *r.MaximumDiscountAmount
	}
	if amount.IsNegative() {
		return decimal.Zero, nil
	}
	if amount.GreaterThan(baseAmount) {
		return baseAmount, nil
	}
	return amount, nil
}

// FreeItem describes the product awarded by a FreeProduct or BuyXGetY line.
type FreeItem struct {
	ProductID uuid.UUID
	Quantity  int
}

// FreeProduct resolves the free-item grant of the first line rule, if any.
func (r *Rule) FreeProduct() *FreeItem {
	line := r.FirstLineRule()
	if line == nil || !line.RuleType.GrantsFreeProduct() || line.FreeProductID == nil {
		return nil
	}
	qty := 1
	if line.FreeProductQuantity != nil && *line.FreeProductQuantity > 0 {
		qty = *line.FreeProductQuantity
	}
	return &FreeItem{
		ProductID: *line.FreeProductID,
		Quantity:  qty,
	}
}
