package usecase

import (
	"context"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"promo-engine/internal/domain/discount"
	"promo-engine/internal/infra"
	"promo-engine/internal/pkg/clock"
	"promo-engine/internal/pkg/errs"
)

// DiscountUseCase validates coupon codes and automatic discounts against an
// order context and records redemptions.
type DiscountUseCase interface {
	ValidateSingle(ctx context.Context, code string, in OrderInput) (*DiscountResult, error)
	ValidateStacked(ctx context.Context, codes []string, in OrderInput) (*StackedDiscountResult, error)
	DiscoverAutomatic(ctx context.Context, in OrderInput) ([]DiscountResult, error)
	MarkUsed(ctx context.Context, discountID uuid.UUID) error
}

type discountUseCaseImpl struct {
	store        DiscountStore
	uow          UnitOfWork
	clock        clock.Clock
	storeTimeout time.Duration
}

func NewDiscountUseCase(store DiscountStore, uow UnitOfWork, clk clock.Clock, storeTimeout time.Duration) DiscountUseCase {
	return &discountUseCaseImpl{
		store:        store,
		uow:          uow,
		clock:        clk,
		storeTimeout: storeTimeout,
	}
}

func (u *discountUseCaseImpl) ValidateSingle(ctx context.Context, code string, in OrderInput) (*DiscountResult, error) {
	if err := validateOrderInput(in); err != nil {
		return nil, err
	}

	rule, err := u.resolveByCode(ctx, code)
	if err != nil {
		return nil, err
	}

	result, err := u.apply(rule, in, in.OrderAmount)
	if err != nil {
		return nil, err
	}
	return result, nil
}

// ValidateStacked processes the codes in caller-supplied order. Each code is
// validated and calculated against the amount remaining after the previous
// discounts, so reordering the list changes the total.
func (u *discountUseCaseImpl) ValidateStacked(ctx context.Context, codes []string, in OrderInput) (*StackedDiscountResult, error) {
	if err := validateOrderInput(in); err != nil {
		return nil, err
	}
	if len(codes) == 0 {
		return nil, errs.Mark(ErrEmptyCode, ErrValidationFailed)
	}

	remaining := in.OrderAmount
	results := make([]DiscountResult, 0, len(codes))

	for i, code := range codes {
		rule, err := u.resolveByCode(ctx, code)
		if err != nil {
			return nil, err
		}

		if i > 0 && !rule.IsStackable {
			return nil, errs.Mark(ErrNotStackable, ErrConflict)
		}

		result, err := u.apply(rule, in, remaining)
		if err != nil {
			return nil, err
		}

		remaining = remaining.Sub(result.Amount)
		results = append(results, *result)
	}

	total := in.OrderAmount.Sub(remaining)
	minPriority := results[0].Priority
	for _, r := range results[1:] {
		if r.Priority < minPriority {
			minPriority = r.Priority
		}
	}

	return &StackedDiscountResult{
		Discounts:     results,
		TotalAmount:   total,
		EffectiveRate: effectiveRate(total, in.OrderAmount),
		Priority:      minPriority,
	}, nil
}

// DiscoverAutomatic returns every automatic discount the order currently
// qualifies for, each calculated against the full original amount: the
// discounts are offered, not yet applied, so no sequential reduction here.
// Rules that fail eligibility or calculation are skipped, not surfaced.
func (u *discountUseCaseImpl) DiscoverAutomatic(ctx context.Context, in OrderInput) ([]DiscountResult, error) {
	if err := validateOrderInput(in); err != nil {
		return nil, err
	}

	sctx, cancel := context.WithTimeout(ctx, u.storeTimeout)
	defer cancel()

	rules, err := u.store.FindByKind(sctx, discount.KindAutomatic)
	if err != nil {
		return nil, mapStoreErr(err, ErrDiscountNotFound)
	}

	now := u.clock.Now()
	results := make([]DiscountResult, 0, len(rules))
	for i := range rules {
		rule := &rules[i]
		if !rule.IsValidAt(now) {
			continue
		}
		if discount.Evaluate(rule, in.toContext(), now) != nil {
			continue
		}
		amount, err := rule.Amount(in.OrderAmount)
		if err != nil {
			continue
		}
		// A zero amount is still an offer: a FixedPrice rule at or above the
		// order amount discounts nothing today but remains applicable.
		results = append(results, newDiscountResult(rule, amount, in.OrderAmount))
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Priority < results[j].Priority
	})
	return results, nil
}

// MarkUsed atomically verifies and advances the discount's usage counter.
// Rules without a usage limit succeed without mutation.
func (u *discountUseCaseImpl) MarkUsed(ctx context.Context, discountID uuid.UUID) error {
	err := u.uow.Within(ctx, func(ctx context.Context, tx Tx) error {
		return tx.Discounts().IncrementUsage(ctx, discountID)
	})
	switch {
	case err == nil:
		return nil
	case infra.IsKind(err, infra.KindNotFound):
		return errs.Mark(ErrDiscountNotFound, ErrNotFound)
	case infra.IsKind(err, infra.KindConflict):
		return errs.Mark(ErrDiscountLimitReached, ErrConflict)
	default:
		return mapStoreErr(err, ErrDiscountNotFound)
	}
}

func (u *discountUseCaseImpl) resolveByCode(ctx context.Context, rawCode string) (*discount.Rule, error) {
	code, err := discount.NewCode(rawCode)
	if err != nil {
		return nil, errs.Mark(err, ErrValidationFailed)
	}

	sctx, cancel := context.WithTimeout(ctx, u.storeTimeout)
	defer cancel()

	rule, err := u.store.FindByCode(sctx, code.String())
	if err != nil {
		return nil, mapStoreErr(err, ErrDiscountNotFound)
	}
	return rule, nil
}

// apply runs eligibility and amount calculation against baseAmount, which is
// the running remaining amount in the stacked path.
func (u *discountUseCaseImpl) apply(rule *discount.Rule, in OrderInput, baseAmount decimal.Decimal) (*DiscountResult, error) {
	evalCtx := in.toContext()
	evalCtx.OrderAmount = baseAmount

	if err := discount.Evaluate(rule, evalCtx, u.clock.Now()); err != nil {
		return nil, classifyEligibility(err)
	}

	amount, err := rule.Amount(baseAmount)
	if err != nil {
		return nil, err
	}

	result := newDiscountResult(rule, amount, in.OrderAmount)
	return &result, nil
}

func newDiscountResult(rule *discount.Rule, amount, originalAmount decimal.Decimal) DiscountResult {
	return DiscountResult{
		DiscountID:    rule.ID,
		Code:          rule.Code.String(),
		Name:          rule.Name,
		Kind:          rule.Kind,
		ValueType:     rule.ValueType,
		Value:         rule.Value,
		Amount:        amount,
		EffectiveRate: effectiveRate(amount, originalAmount),
		IsStackable:   rule.IsStackable,
		Priority:      rule.Priority,
	}
}

func validateOrderInput(in OrderInput) error {
	if !in.OrderAmount.IsPositive() {
		return errs.Mark(ErrInvalidOrderAmount, ErrValidationFailed)
	}
	return nil
}
