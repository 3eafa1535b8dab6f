package usecase

import (
	"context"
	"errors"

	"promo-engine/internal/domain/discount"
	"promo-engine/internal/domain/promotion"
	"promo-engine/internal/infra"
	"promo-engine/internal/pkg/errs"
)

// Error class markers. Every expected business failure is marked with exactly
// one of these so the handler layer can map it without knowing the specific
// reason; the specific sentinel stays reachable through errors.Is.
var (
	ErrValidationFailed = errors.New("validation failed")
	ErrNotFound         = errors.New("not found")
	ErrConflict         = errors.New("conflict")
	ErrForbidden        = errors.New("forbidden")
	ErrUnavailable      = errors.New("rule store unavailable")
)

var (
	ErrEmptyCode             = errors.New("code must not be empty")
	ErrInvalidOrderAmount    = errors.New("order amount must be positive")
	ErrCustomerRequired      = errors.New("customer id is required")
	ErrOrderRequired         = errors.New("order id is required")
	ErrDiscountNotFound      = errors.New("discount not found")
	ErrPromotionNotFound     = errors.New("promotion not found")
	ErrNotStackable          = errors.New("discount cannot be combined with others")
	ErrCustomerLimitReached  = errors.New("customer usage limit reached for promotion")
	ErrPromotionLimitReached = errors.New("promotion usage limit reached")
	ErrDiscountLimitReached  = errors.New("discount usage limit reached")
)

// classifyEligibility maps a domain eligibility reason onto the error
// taxonomy: validity and exhaustion are conflicts, threshold misses are
// validation failures, membership misses are forbidden.
func classifyEligibility(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, discount.ErrInactive),
		errors.Is(err, discount.ErrNotYetActive),
		errors.Is(err, discount.ErrExpired),
		errors.Is(err, discount.ErrUsageLimitReached),
		errors.Is(err, promotion.ErrInactive),
		errors.Is(err, promotion.ErrNotYetActive),
		errors.Is(err, promotion.ErrExpired),
		errors.Is(err, promotion.ErrUsageLimitReached):
		return errs.Mark(err, ErrConflict)
	case errors.Is(err, discount.ErrMinimumOrderNotMet),
		errors.Is(err, discount.ErrMinimumQuantityNotMet),
		errors.Is(err, promotion.ErrMinimumOrderNotMet):
		return errs.Mark(err, ErrValidationFailed)
	case errors.Is(err, discount.ErrCustomerNotEligible),
		errors.Is(err, discount.ErrProductNotEligible),
		errors.Is(err, discount.ErrExcludedProduct),
		errors.Is(err, promotion.ErrExcludedProduct),
		errors.Is(err, promotion.ErrChannelNotEligible),
		errors.Is(err, promotion.ErrSegmentUnverified):
		return errs.Mark(err, ErrForbidden)
	default:
		return err
	}
}

// mapStoreErr translates rule-store failures. Timeouts and cancellations are
// retryable Unavailable, never folded into business failures; everything else
// propagates for the 500 path.
func mapStoreErr(err error, notFound error) error {
	switch {
	case err == nil:
		return nil
	case infra.IsKind(err, infra.KindNotFound):
		return errs.Mark(notFound, ErrNotFound)
	case errors.Is(err, context.DeadlineExceeded), errors.Is(err, context.Canceled):
		return errs.Mark(err, ErrUnavailable)
	default:
		return err
	}
}
