package usecase

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"promo-engine/internal/domain/discount"
	"promo-engine/internal/domain/promotion"
)

// OrderInput is the caller-supplied order context for validation and
// discovery operations.
type OrderInput struct {
	OrderAmount decimal.Decimal
	Quantity    int
	CustomerID  *uuid.UUID
	ProductIDs  []uuid.UUID
	Channel     string
}

func (in OrderInput) toContext() discount.OrderContext {
	return discount.OrderContext{
		OrderAmount: in.OrderAmount,
		Quantity:    in.Quantity,
		CustomerID:  in.CustomerID,
		ProductIDs:  in.ProductIDs,
		Channel:     in.Channel,
	}
}

// DiscountResult is a validated, server-computed discount application.
type DiscountResult struct {
	DiscountID    uuid.UUID
	Code          string
	Name          string
	Kind          discount.Kind
	ValueType     discount.ValueType
	Value         decimal.Decimal
	Amount        decimal.Decimal
	EffectiveRate decimal.Decimal
	IsStackable   bool
	Priority      int
}

// StackedDiscountResult aggregates a sequentially reduced discount chain.
type StackedDiscountResult struct {
	Discounts     []DiscountResult
	TotalAmount   decimal.Decimal
	EffectiveRate decimal.Decimal
	Priority      int
}

// FreeProductResult is the item grant of a FreeProduct or BuyXGetY
// promotion line.
type FreeProductResult struct {
	ProductID uuid.UUID
	Quantity  int
}

// PromotionResult is a validated, server-computed promotion application.
type PromotionResult struct {
	PromotionID           uuid.UUID
	Code                  string
	Name                  string
	Type                  promotion.Type
	Amount                decimal.Decimal
	EffectiveRate         decimal.Decimal
	RemainingTotalUses    *int
	RemainingCustomerUses *int
	IsStackable           bool
	IsExclusive           bool
	Priority              int
	FreeProduct           *FreeProductResult
}

// effectiveRate returns amount as a percentage of base, to two decimal
// places. Callers guarantee base > 0.
func effectiveRate(amount, base decimal.Decimal) decimal.Decimal {
	return amount.Div(base).Mul(decimal.NewFromInt(100)).Round(2)
}
