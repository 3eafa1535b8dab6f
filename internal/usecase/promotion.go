package usecase

import (
	"context"
	"errors"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"promo-engine/internal/domain/discount"
	"promo-engine/internal/domain/promotion"
	"promo-engine/internal/infra"
	"promo-engine/internal/pkg/clock"
	"promo-engine/internal/pkg/errs"
)

// PromotionUseCase validates promotion codes, discovers applicable
// promotions, and records redemptions in the usage ledger.
type PromotionUseCase interface {
	ValidateSingle(ctx context.Context, code string, in OrderInput) (*PromotionResult, error)
	DiscoverApplicable(ctx context.Context, in OrderInput) ([]PromotionResult, error)
	MarkUsed(ctx context.Context, promotionID, customerID, orderID uuid.UUID, discountApplied decimal.Decimal) error
	CustomerUsageCount(ctx context.Context, promotionID, customerID uuid.UUID) (int, error)
}

type promotionUseCaseImpl struct {
	store        PromotionStore
	ledger       UsageLedger
	uow          UnitOfWork
	evaluator    *promotion.Evaluator
	clock        clock.Clock
	storeTimeout time.Duration
}

func NewPromotionUseCase(
	store PromotionStore,
	ledger UsageLedger,
	uow UnitOfWork,
	evaluator *promotion.Evaluator,
	clk clock.Clock,
	storeTimeout time.Duration,
) PromotionUseCase {
	return &promotionUseCaseImpl{
		store:        store,
		ledger:       ledger,
		uow:          uow,
		evaluator:    evaluator,
		clock:        clk,
		storeTimeout: storeTimeout,
	}
}

func (u *promotionUseCaseImpl) ValidateSingle(ctx context.Context, rawCode string, in OrderInput) (*PromotionResult, error) {
	if err := validateOrderInput(in); err != nil {
		return nil, err
	}

	rule, err := u.resolveByCode(ctx, rawCode)
	if err != nil {
		return nil, err
	}

	if err := u.evaluator.Evaluate(rule, in.toContext(), u.clock.Now()); err != nil {
		return nil, classifyEligibility(err)
	}

	var remainingCustomer *int
	if rule.UsageLimitPerCustomer != nil {
		if in.CustomerID == nil {
			return nil, errs.Mark(ErrCustomerRequired, ErrValidationFailed)
		}
		used, err := u.customerUsage(ctx, rule.ID, *in.CustomerID)
		if err != nil {
			return nil, err
		}
		if used >= *rule.UsageLimitPerCustomer {
			return nil, errs.Mark(ErrCustomerLimitReached, ErrConflict)
		}
		left := *rule.UsageLimitPerCustomer - used
		remainingCustomer = &left
	}

	amount, err := rule.Amount(in.OrderAmount)
	if err != nil {
		return nil, err
	}

	result := newPromotionResult(rule, amount, in.OrderAmount)
	result.RemainingCustomerUses = remainingCustomer
	return &result, nil
}

// DiscoverApplicable returns every active promotion the order qualifies for,
// best first: higher priority wins, larger discount breaks ties. Eligibility
// failures are skipped silently; per-customer limits are not consulted here.
func (u *promotionUseCaseImpl) DiscoverApplicable(ctx context.Context, in OrderInput) ([]PromotionResult, error) {
	if err := validateOrderInput(in); err != nil {
		return nil, err
	}

	sctx, cancel := context.WithTimeout(ctx, u.storeTimeout)
	defer cancel()

	rules, err := u.store.FindActive(sctx)
	if err != nil {
		return nil, mapStoreErr(err, ErrPromotionNotFound)
	}

	now := u.clock.Now()
	results := make([]PromotionResult, 0, len(rules))
	for i := range rules {
		rule := &rules[i]
		if !rule.IsValidAt(now) {
			continue
		}
		if u.evaluator.Evaluate(rule, in.toContext(), now) != nil {
			continue
		}
		amount, err := rule.Amount(in.OrderAmount)
		if err != nil {
			continue
		}
		if amount.IsZero() && rule.FreeProduct() == nil {
			continue
		}
		results = append(results, newPromotionResult(rule, amount, in.OrderAmount))
	}

	sort.SliceStable(results, func(i, j int) bool {
		if results[i].Priority != results[j].Priority {
			return results[i].Priority > results[j].Priority
		}
		return results[i].Amount.GreaterThan(results[j].Amount)
	})
	return results, nil
}

// MarkUsed records a redemption exactly once per (promotion, order). The
// ledger append and the counter increment run in one transaction: the unique
// ledger constraint makes retries of the same order idempotent, and the
// conditional counter update rejects the redemption that would exceed the
// global limit even under concurrent writers.
func (u *promotionUseCaseImpl) MarkUsed(ctx context.Context, promotionID, customerID, orderID uuid.UUID, discountApplied decimal.Decimal) error {
	if customerID == uuid.Nil {
		return errs.Mark(ErrCustomerRequired, ErrValidationFailed)
	}
	if orderID == uuid.Nil {
		return errs.Mark(ErrOrderRequired, ErrValidationFailed)
	}

	err := u.uow.Within(ctx, func(ctx context.Context, tx Tx) error {
		exists, err := tx.Ledger().ExistsForOrder(ctx, promotionID, orderID)
		if err != nil {
			return err
		}
		if exists {
			return nil
		}

		rule, err := u.store.FindByID(ctx, promotionID)
		if err != nil {
			return err
		}

		if rule.UsageLimitPerCustomer != nil {
			used, err := tx.Ledger().CustomerUsageCount(ctx, promotionID, customerID)
			if err != nil {
				return err
			}
			if used >= *rule.UsageLimitPerCustomer {
				return errs.Mark(ErrCustomerLimitReached, ErrConflict)
			}
		}

		entry := promotion.LedgerEntry{
			ID:              uuid.New(),
			PromotionID:     promotionID,
			CustomerID:      customerID,
			OrderID:         orderID,
			DiscountApplied: discountApplied,
			RecordedAt:      u.clock.Now(),
		}
		// A duplicate-key failure here means a concurrent request won the
		// race for the same order. The transaction is already poisoned, so
		// the error propagates to roll it back and the outer layer turns it
		// into the same idempotent success as the pre-check.
		if err := tx.Ledger().Append(ctx, entry); err != nil {
			return err
		}

		return tx.Promotions().IncrementUsage(ctx, promotionID)
	})

	switch {
	case err == nil:
		return nil
	case errors.Is(err, ErrConflict), errors.Is(err, ErrValidationFailed), errors.Is(err, ErrNotFound):
		return err
	case infra.IsKind(err, infra.KindDuplicateKey):
		return nil
	case infra.IsKind(err, infra.KindNotFound):
		return errs.Mark(ErrPromotionNotFound, ErrNotFound)
	case infra.IsKind(err, infra.KindConflict):
		return errs.Mark(ErrPromotionLimitReached, ErrConflict)
	default:
		return mapStoreErr(err, ErrPromotionNotFound)
	}
}

// CustomerUsageCount reports how many times the customer has redeemed the
// promotion. The promotion must exist.
func (u *promotionUseCaseImpl) CustomerUsageCount(ctx context.Context, promotionID, customerID uuid.UUID) (int, error) {
	sctx, cancel := context.WithTimeout(ctx, u.storeTimeout)
	defer cancel()

	if _, err := u.store.FindByID(sctx, promotionID); err != nil {
		return 0, mapStoreErr(err, ErrPromotionNotFound)
	}

	count, err := u.ledger.CustomerUsageCount(sctx, promotionID, customerID)
	if err != nil {
		return 0, mapStoreErr(err, ErrPromotionNotFound)
	}
	return count, nil
}

func (u *promotionUseCaseImpl) resolveByCode(ctx context.Context, rawCode string) (*promotion.Rule, error) {
	code, err := discount.NewCode(rawCode)
	if err != nil {
		return nil, errs.Mark(err, ErrValidationFailed)
	}

	sctx, cancel := context.WithTimeout(ctx, u.storeTimeout)
	defer cancel()

	rule, err := u.store.FindByCode(sctx, code.String())
	if err != nil {
		return nil, mapStoreErr(err, ErrPromotionNotFound)
	}
	return rule, nil
}

func (u *promotionUseCaseImpl) customerUsage(ctx context.Context, promotionID, customerID uuid.UUID) (int, error) {
	sctx, cancel := context.WithTimeout(ctx, u.storeTimeout)
	defer cancel()

	count, err := u.ledger.CustomerUsageCount(sctx, promotionID, customerID)
	if err != nil {
		return 0, mapStoreErr(err, ErrPromotionNotFound)
	}
	return count, nil
}

func newPromotionResult(rule *promotion.Rule, amount, originalAmount decimal.Decimal) PromotionResult {
	var free *FreeProductResult
	if item := rule.FreeProduct(); item != nil {
		free = &FreeProductResult{ProductID: item.ProductID, Quantity: item.Quantity}
	}
	return PromotionResult{
		PromotionID:        rule.ID,
		Code:               rule.Code.String(),
		Name:               rule.Name,
		Type:               rule.Type,
		Amount:             amount,
		EffectiveRate:      effectiveRate(amount, originalAmount),
		RemainingTotalUses: rule.RemainingTotalUses(),
		IsStackable:        rule.IsStackable,
		IsExclusive:        rule.IsExclusive,
		Priority:           rule.Priority,
		FreeProduct:        free,
	}
}
