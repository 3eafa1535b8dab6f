package promotion

import (
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"promo-engine/internal/domain/discount"
)

// Rule is a promotion record as loaded from the rule store. Read-only to the
// engine; TotalUsageCount is advanced only by the store's atomic redemption
// path.
type Rule struct {
	ID          uuid.UUID
	Code        discount.Code
	Name        string
	Description *string
	Type        Type
	Status      Status

	LineRules []LineRule

	MinimumOrderAmount    *decimal.Decimal
	MaximumDiscountAmount *decimal.Decimal

	UsageLimit            *int
	UsageLimitPerCustomer *int
	TotalUsageCount       int

	IsStackable bool
	IsExclusive bool
	Priority    int

	TargetCustomerSegments  []string
	TargetProductCategories []string
	ExcludedProducts        discount.IDSet
	ApplicableChannels      []string

	ActiveFrom  time.Time
	ActiveUntil time.Time
	IsActive    bool
}

// LineRule is one calculation step of a promotion. Amount calculation uses
// only the first line (lowest SortOrder); the remaining lines are carried for
// completeness but intentionally unused, matching the sampled behavior.
type LineRule struct {
	ID                   uuid.UUID
	RuleType             RuleType
	Condition            *string
	DiscountType         discount.ValueType
	DiscountValue        decimal.Decimal
	ApplicableProducts   discount.IDSet
	ApplicableCategories discount.IDSet
	MinimumQuantity      *int
	MaximumQuantity      *int
	FreeProductID        *uuid.UUID
	FreeProductQuantity  *int
	SortOrder            int
}

// SortLineRules orders the line rules by SortOrder in place. Repositories
// call this once after loading so FirstLineRule is deterministic.
func (r *Rule) SortLineRules() {
	sort.SliceStable(r.LineRules, func(i, j int) bool {
		return r.LineRules[i].SortOrder < r.LineRules[j].SortOrder
	})
}

// FirstLineRule returns the line used for amount calculation, or nil when
// the promotion has no lines.
func (r *Rule) FirstLineRule() *LineRule {
	if len(r.LineRules) == 0 {
		return nil
	}
	return &r.LineRules[0]
}

func (r *Rule) IsWithinWindow(now time.Time) bool {
	return !now.Before(r.ActiveFrom) && !now.After(r.ActiveUntil)
}

func (r *Rule) IsUsageExhausted() bool {
	return r.UsageLimit != nil && r.TotalUsageCount >= *r.UsageLimit
}

// IsValidAt reports whether the promotion can be applied at all.
func (r *Rule) IsValidAt(now time.Time) bool {
	return r.IsActive && r.Status == StatusActive && r.IsWithinWindow(now) && !r.IsUsageExhausted()
}

// RemainingTotalUses returns how many global redemptions are left, or nil
// when the promotion is unlimited.
func (r *Rule) RemainingTotalUses() *int {
	if r.UsageLimit == nil {
		return nil
	}
	remaining := *r.UsageLimit - r.TotalUsageCount
	if remaining < 0 {
		remaining = 0
	}
	return &remaining
}

// MatchesChannel reports whether the promotion applies on the given sales
// channel. An empty channel list means all channels; comparison is
// case-insensitive.
func (r *Rule) MatchesChannel(channel string) bool {
	if len(r.ApplicableChannels) == 0 || channel == "" {
		return true
	}
	for _, ch := range r.ApplicableChannels {
		if strings.EqualFold(strings.TrimSpace(ch), channel) {
			return true
		}
	}
	return false
}

// HasTargeting reports whether the promotion carries segment or category
// targeting that the engine cannot evaluate yet.
func (r *Rule) HasTargeting() bool {
	return len(r.TargetCustomerSegments) > 0 || len(r.TargetProductCategories) > 0
}
