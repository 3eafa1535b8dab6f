package promotion

import (
	"errors"
	"log/slog"
	"time"

	"promo-engine/internal/domain/discount"
)

var (
	ErrInactive           = errors.New("promotion is not active")
	ErrNotYetActive       = errors.New("promotion is not yet active")
	ErrExpired            = errors.New("promotion has expired")
	ErrUsageLimitReached  = errors.New("promotion usage limit reached")
	ErrMinimumOrderNotMet = errors.New("order amount below promotion minimum")
	ErrExcludedProduct    = errors.New("order contains a product excluded from promotion")
	ErrChannelNotEligible = errors.New("promotion not available on this channel")
	ErrSegmentUnverified  = errors.New("promotion targeting cannot be verified for this order")
)

// Evaluator runs the promotion eligibility checks. Segment and category
// targeting cannot be evaluated yet: with SegmentFilteringSupported unset a
// targeted rule passes and the skipped check is logged so the gap stays
// visible; with it set the rule is rejected, because claiming enforcement
// and then passing unchecked would hide the gap.
type Evaluator struct {
	SegmentFilteringSupported bool
	Logger                    *slog.Logger
}

func NewEvaluator(segmentFilteringSupported bool, logger *slog.Logger) *Evaluator {
	if logger == nil {
		logger = slog.Default()
	}
	return &Evaluator{
		SegmentFilteringSupported: segmentFilteringSupported,
		Logger:                    logger,
	}
}

// Evaluate checks the rule against the order context in a fixed order and
// stops at the first failure.
func (e *Evaluator) Evaluate(r *Rule, ctx discount.OrderContext, now time.Time) error {
	if !r.IsActive || r.Status != StatusActive {
		return ErrInactive
	}
	if now.Before(r.ActiveFrom) {
		return ErrNotYetActive
	}
	if now.After(r.ActiveUntil) {
		return ErrExpired
	}
	if r.IsUsageExhausted() {
		return ErrUsageLimitReached
	}

	if r.MinimumOrderAmount != nil && ctx.OrderAmount.LessThan(*r.MinimumOrderAmount) {
		return ErrMinimumOrderNotMet
	}

	if !r.ExcludedProducts.IsEmpty() && r.ExcludedProducts.ContainsAny(ctx.ProductIDs) {
		return ErrExcludedProduct
	}

	if r.HasTargeting() {
		if e.SegmentFilteringSupported {
			// The order context carries no segment or category membership to
			// check against, so an audience we cannot confirm is rejected.
			return ErrSegmentUnverified
		}
		e.Logger.Debug("segment/category targeting not evaluated, allowing promotion",
			"promotion_id", r.ID,
			"code", r.Code.String(),
		)
	}

	if ctx.Channel != "" && !r.MatchesChannel(ctx.Channel) {
		return ErrChannelNotEligible
	}

	return nil
}
