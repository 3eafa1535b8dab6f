package promotion

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// LedgerEntry records one redemption of a promotion on one order. The store
// enforces at most one entry per (PromotionID, OrderID); that uniqueness is
// what makes redemption idempotent.
type LedgerEntry struct {
	ID              uuid.UUID
	PromotionID     uuid.UUID
	CustomerID      uuid.UUID
	OrderID         uuid.UUID
	DiscountApplied decimal.Decimal
	RecordedAt      time.Time
}
