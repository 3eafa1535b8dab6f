package response

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"promo-engine/internal/usecase"
)

type FreeProductResponse struct {
	ProductID uuid.UUID `json:"productId"`
	Quantity  int       `json:"quantity"`
}

type PromotionResponse struct {
	PromotionID           uuid.UUID            `json:"promotionId"`
	Code                  string               `json:"code"`
	Name                  string               `json:"name"`
	Type                  string               `json:"type"`
	Amount                decimal.Decimal      `json:"amount"`
	EffectiveRate         decimal.Decimal      `json:"effectiveRate"`
	RemainingTotalUses    *int                 `json:"remainingTotalUses,omitempty"`
	RemainingCustomerUses *int                 `json:"remainingCustomerUses,omitempty"`
	IsStackable           bool                 `json:"isStackable"`
	IsExclusive           bool                 `json:"isExclusive"`
	Priority              int                  `json:"priority"`
	FreeProduct           *FreeProductResponse `json:"freeProduct,omitempty"`
}

type PromotionListResponse struct {
	Promotions []PromotionResponse `json:"promotions"`
}

type RedemptionResponse struct {
	PromotionID uuid.UUID `json:"promotionId"`
	OrderID     uuid.UUID `json:"orderId"`
	Recorded    bool      `json:"recorded"`
}

type CustomerUsageResponse struct {
	PromotionID uuid.UUID `json:"promotionId"`
	CustomerID  uuid.UUID `json:"customerId"`
	UsageCount  int       `json:"usageCount"`
}

func NewPromotionResponse(r *usecase.PromotionResult) PromotionResponse {
	resp := PromotionResponse{
		PromotionID:           r.PromotionID,
		Code:                  r.Code,
		Name:                  r.Name,
		Type:                  string(r.Type),
		Amount:                r.Amount,
		EffectiveRate:         r.EffectiveRate,
		RemainingTotalUses:    r.RemainingTotalUses,
		RemainingCustomerUses: r.RemainingCustomerUses,
		IsStackable:           r.IsStackable,
		IsExclusive:           r.IsExclusive,
		Priority:              r.Priority,
	}
	if r.FreeProduct != nil {
		resp.FreeProduct = &FreeProductResponse{
			ProductID: r.FreeProduct.ProductID,
			Quantity:  r.FreeProduct.Quantity,
		}
	}
	return resp
}

func NewPromotionListResponse(results []usecase.PromotionResult) PromotionListResponse {
	promotions := make([]PromotionResponse, 0, len(results))
	for i := range results {
		promotions = append(promotions, NewPromotionResponse(&results[i]))
	}
	return PromotionListResponse{Promotions: promotions}
}
