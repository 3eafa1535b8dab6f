package discount

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Eligibility failure reasons. Each check in Evaluate fails with exactly one
// of these so callers can map them to their own error taxonomy.
var (
	ErrInactive              = errors.New("discount is not active")
	ErrNotYetActive          = errors.New("discount is not yet active")
	ErrExpired               = errors.New("discount has expired")
	ErrUsageLimitReached     = errors.New("discount usage limit reached")
	ErrMinimumOrderNotMet    = errors.New("order amount below minimum")
	ErrMinimumQuantityNotMet = errors.New("quantity below minimum")
	ErrCustomerNotEligible   = errors.New("customer not eligible for discount")
	ErrProductNotEligible    = errors.New("no eligible product in order")
	ErrExcludedProduct       = errors.New("order contains an excluded product")
)

// OrderContext carries the order facts a rule is evaluated against.
type OrderContext struct {
	OrderAmount decimal.Decimal
	Quantity    int
	CustomerID  *uuid.UUID
	ProductIDs  []uuid.UUID
	Channel     string
}

// Evaluate runs the eligibility checks in a fixed order and stops at the
// first failure. Category targeting is not evaluated here; see the promotion
// engine's capability flag for the segment/category gap.
func Evaluate(r *Rule, ctx OrderContext, now time.Time) error {
	if !r.IsActive {
		return ErrInactive
	}
	if r.ActiveFrom != nil && now.Before(*r.ActiveFrom) {
		return ErrNotYetActive
	}
	if r.ActiveUntil != nil && now.After(*r.ActiveUntil) {
		return ErrExpired
	}
	if r.IsUsageExhausted() {
		return ErrUsageLimitReached
	}

	if r.MinimumOrderAmount != nil && ctx.OrderAmount.LessThan(*r.MinimumOrderAmount) {
		return ErrMinimumOrderNotMet
	}
	if r.MinimumQuantity != nil && ctx.Quantity < *r.MinimumQuantity {
		return ErrMinimumQuantityNotMet
	}

	if !r.ApplicableCustomerIDs.IsEmpty() {
		if ctx.CustomerID == nil || !r.ApplicableCustomerIDs.Contains(*ctx.CustomerID) {
			return ErrCustomerNotEligible
		}
	}
	if !r.ApplicableProductIDs.IsEmpty() && !r.ApplicableProductIDs.ContainsAny(ctx.ProductIDs) {
		return ErrProductNotEligible
	}
	if !r.ExcludedProductIDs.IsEmpty() && r.ExcludedProductIDs.ContainsAny(ctx.ProductIDs) {
		return ErrExcludedProduct
	}

	return nil
}
