package response

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"promo-engine/internal/usecase"
)

type DiscountResponse struct {
	DiscountID    uuid.UUID       `json:"discountId"`
	Code          string          `json:"code"`
	Name          string          `json:"name"`
	Kind          string          `json:"kind"`
	ValueType     string          `json:"valueType"`
	Value         decimal.Decimal `json:"value"`
	Amount        decimal.Decimal `json:"amount"`
	EffectiveRate decimal.Decimal `json:"effectiveRate"`
	IsStackable   bool            `json:"isStackable"`
	Priority      int             `json:"priority"`
}

type StackedDiscountResponse struct {
	Discounts     []DiscountResponse `json:"discounts"`
	TotalAmount   decimal.Decimal    `json:"totalAmount"`
	EffectiveRate decimal.Decimal    `json:"effectiveRate"`
	Priority      int                `json:"priority"`
}

type DiscountListResponse struct {
	Discounts []DiscountResponse `json:"discounts"`
}

func NewDiscountResponse(r *usecase.DiscountResult) DiscountResponse {
	return DiscountResponse{
		DiscountID:    r.DiscountID,
		Code:          r.Code,
		Name:          r.Name,
		Kind:          r.Kind.String(),
		ValueType:     r.ValueType.String(),
		Value:         r.Value,
		Amount:        r.Amount,
		EffectiveRate: r.EffectiveRate,
		IsStackable:   r.IsStackable,
		Priority:      r.Priority,
	}
}

func NewStackedDiscountResponse(r *usecase.StackedDiscountResult) StackedDiscountResponse {
	discounts := make([]DiscountResponse, 0, len(r.Discounts))
	for i := range r.Discounts {
		discounts = append(discounts, NewDiscountResponse(&r.Discounts[i]))
	}
	return StackedDiscountResponse{
		Discounts:     discounts,
		TotalAmount:   r.TotalAmount,
		EffectiveRate: r.EffectiveRate,
		Priority:      r.Priority,
	}
}

func NewDiscountListResponse(results []usecase.DiscountResult) DiscountListResponse {
	discounts := make([]DiscountResponse, 0, len(results))
	for i := range results {
		discounts = append(discounts, NewDiscountResponse(&results[i]))
	}
	return DiscountListResponse{Discounts: discounts}
}
