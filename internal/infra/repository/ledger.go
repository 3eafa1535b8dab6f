package repository

import (
	"context"

	"promo-engine/internal/domain/promotion"
	"promo-engine/internal/infra"

	"github.com/google/uuid"
)

type LedgerRepository struct {
	db DBTX
}

func NewLedgerRepository(db DBTX) *LedgerRepository {
	return &LedgerRepository{db: db}
}

func (r *LedgerRepository) ExistsForOrder(ctx context.Context, promotionID, orderID uuid.UUID) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM promotion_usages WHERE promotion_id = $1 AND order_id = $2)`,
		promotionID, orderID).Scan(&exists)
	if err != nil {
		return false, infra.WrapRepoErr("failed to check ledger for order", err)
	}
	return exists, nil
}

func (r *LedgerRepository) CustomerUsageCount(ctx context.Context, promotionID, customerID uuid.UUID) (int, error) {
	var count int
	err := r.db.QueryRow(ctx,
		`SELECT COUNT(*) FROM promotion_usages WHERE promotion_id = $1 AND customer_id = $2`,
		promotionID, customerID).Scan(&count)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to count customer usage", err)
	}
	return count, nil
}

// Append inserts the redemption record. The unique index on
// (promotion_id, order_id) turns a concurrent double-submit into
// DUPLICATE_KEY instead of a second row.
func (r *LedgerRepository) Append(ctx context.Context, entry promotion.LedgerEntry) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO promotion_usages (id, promotion_id, customer_id, order_id, discount_applied, recorded_at)
		 VALUES ($1, $2, $3, $4, $5, $6)`,
		entry.ID, entry.PromotionID, entry.CustomerID, entry.OrderID,
		entry.DiscountApplied.String(), entry.RecordedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return infra.WrapRepoErr("redemption already recorded for order", err, infra.KindDuplicateKey)
		}
		return infra.WrapRepoErr("failed to append ledger entry", err)
	}
	return nil
}
