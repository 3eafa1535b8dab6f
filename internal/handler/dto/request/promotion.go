package request

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ValidatePromotionRequest validates one promotion code against an order.
type ValidatePromotionRequest struct {
	Code  string       `json:"code" binding:"required,min=3,max=50"`
	Order OrderContext `json:"order" binding:"required"`
}

// ApplicablePromotionsRequest asks for every promotion the order qualifies
// for, best first.
type ApplicablePromotionsRequest struct {
	Order OrderContext `json:"order" binding:"required"`
}

// RedeemPromotionRequest records one redemption. Resubmitting the same
// orderId is safe; the ledger keeps a single entry per promotion and order.
type RedeemPromotionRequest struct {
	CustomerID      uuid.UUID       `json:"customerId" binding:"required"`
	OrderID         uuid.UUID       `json:"orderId" binding:"required"`
	DiscountApplied decimal.Decimal `json:"discountApplied"`
}
