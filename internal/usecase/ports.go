package usecase

import (
	"context"

	"github.com/google/uuid"

	"promo-engine/internal/domain/discount"
	"promo-engine/internal/domain/promotion"
)

// DiscountStore is the read side of the discount rule store.
type DiscountStore interface {
	FindByCode(ctx context.Context, code string) (*discount.Rule, error)
	FindByID(ctx context.Context, id uuid.UUID) (*discount.Rule, error)
	FindByKind(ctx context.Context, kind discount.Kind) ([]discount.Rule, error)
}

// PromotionStore is the read side of the promotion rule store.
type PromotionStore interface {
	FindByCode(ctx context.Context, code string) (*promotion.Rule, error)
	FindByID(ctx context.Context, id uuid.UUID) (*promotion.Rule, error)
	FindActive(ctx context.Context) ([]promotion.Rule, error)
}

// UsageLedger is the read side of the redemption ledger.
type UsageLedger interface {
	CustomerUsageCount(ctx context.Context, promotionID, customerID uuid.UUID) (int, error)
	ExistsForOrder(ctx context.Context, promotionID, orderID uuid.UUID) (bool, error)
}

// UnitOfWork runs the redemption write path as a single transaction with
// serialization retry.
type UnitOfWork interface {
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
}

// Tx exposes the transaction-scoped write repositories.
type Tx interface {
	Discounts() DiscountTxRepo
	Promotions() PromotionTxRepo
	Ledger() LedgerTxRepo
}

// DiscountTxRepo mutates discount counters inside a transaction.
// IncrementUsage fails with kind CONFLICT when the usage limit is already
// reached, NOT_FOUND when the rule is gone, and succeeds without mutation
// when the rule has no limit.
type DiscountTxRepo interface {
	IncrementUsage(ctx context.Context, id uuid.UUID) error
}

// PromotionTxRepo mutates promotion counters inside a transaction.
// IncrementUsage always advances the counter; with a limit set it is a
// conditional increment that fails with kind CONFLICT at the limit.
type PromotionTxRepo interface {
	IncrementUsage(ctx context.Context, id uuid.UUID) error
}

// LedgerTxRepo appends redemption records inside a transaction. Append fails
// with kind DUPLICATE_KEY when an entry for (PromotionID, OrderID) already
// exists.
type LedgerTxRepo interface {
	ExistsForOrder(ctx context.Context, promotionID, orderID uuid.UUID) (bool, error)
	CustomerUsageCount(ctx context.Context, promotionID, customerID uuid.UUID) (int, error)
	Append(ctx context.Context, entry promotion.LedgerEntry) error
}
