package discount

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Rule is a discount record as loaded from the rule store. The engine treats
// it as read-only; UsageCount is advanced only by the store's atomic
// redemption path.
type Rule struct {
	ID          uuid.UUID
	Code        Code
	Name        string
	Description *string

	Kind      Kind
	ValueType ValueType
	Value     decimal.Decimal

	MinimumOrderAmount    *decimal.Decimal
	MaximumDiscountAmount *decimal.Decimal
	MinimumQuantity       *int

	ApplicableCustomerIDs IDSet
	ApplicableProductIDs  IDSet
	ApplicableCategoryIDs IDSet
	ExcludedProductIDs    IDSet
	ExcludedCategoryIDs   IDSet

	IsStackable bool
	Priority    int

	ActiveFrom  *time.Time
	ActiveUntil *time.Time
	IsActive    bool

	UsageLimit *int
	UsageCount int
}

func (r *Rule) IsWithinWindow(now time.Time) bool {
	if r.ActiveFrom != nil && now.Before(*r.ActiveFrom) {
		return false
	}
	if r.ActiveUntil != nil && now.After(*r.ActiveUntil) {
		return false
	}
	return true
}

func (r *Rule) IsUsageExhausted() bool {
	return r.UsageLimit != nil && r.UsageCount >= *r.UsageLimit
}

// IsValidAt reports whether the rule can be applied at all: active, inside
// its window, and not out of uses.
func (r *Rule) IsValidAt(now time.Time) bool {
	return r.IsActive && r.IsWithinWindow(now) && !r.IsUsageExhausted()
}
