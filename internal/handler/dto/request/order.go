package request

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"promo-engine/internal/usecase"
)

// OrderContext is the order snapshot every validation and discovery request
// carries.
type OrderContext struct {
	OrderAmount decimal.Decimal `json:"orderAmount" binding:"required"`
	Quantity    int             `json:"quantity" binding:"omitempty,min=0"`
	CustomerID  *uuid.UUID      `json:"customerId,omitempty"`
	ProductIDs  []uuid.UUID     `json:"productIds,omitempty"`
	Channel     string          `json:"channel,omitempty" binding:"omitempty,max=50"`
}

func (o OrderContext) ToInput() usecase.OrderInput {
	return usecase.OrderInput{
		OrderAmount: o.OrderAmount,
		Quantity:    o.Quantity,
		CustomerID:  o.CustomerID,
		ProductIDs:  o.ProductIDs,
		Channel:     o.Channel,
	}
}
