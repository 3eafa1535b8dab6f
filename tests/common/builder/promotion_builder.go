//go:build unit || e2e

package builder

import (
	"time"

	domdiscount "promo-engine/internal/domain/discount"
	dompromotion "promo-engine/internal/domain/promotion"
	reqdto "promo-engine/internal/handler/dto/request"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type PromotionBuilder struct {
	ID                    uuid.UUID
	Code                  string
	Name                  string
	Type                  dompromotion.Type
	Status                dompromotion.Status
	LineRules             []dompromotion.LineRule
	MinimumOrderAmount    *decimal.Decimal
	MaximumDiscountAmount *decimal.Decimal
	UsageLimit            *int
	UsageLimitPerCustomer *int
	TotalUsageCount       int
	IsStackable           bool
	IsExclusive           bool
	Priority              int
	ExcludedProducts      domdiscount.IDSet
	ApplicableChannels    []string
	ActiveFrom            time.Time
	ActiveUntil           time.Time
	IsActive              bool
}

func NewPromotionBuilder() *PromotionBuilder {
	now := time.Now()
	return &PromotionBuilder{
		ID:     uuid.New(),
		Code:   "SUMMER20",
		Name:   "Summer sale",
		Type:   dompromotion.TypePercentage,
		Status: dompromotion.StatusActive,
		LineRules: []dompromotion.LineRule{
			{
				ID:            uuid.New(),
				RuleType:      dompromotion.RuleMinimumPurchase,
				DiscountType:  domdiscount.ValuePercentage,
				DiscountValue: decimal.NewFromInt(20),
				SortOrder:     0,
			},
		},
		Priority:    1,
		ActiveFrom:  now.Add(-24 * time.Hour),
		ActiveUntil: now.Add(24 * time.Hour),
		IsActive:    true,
	}
}

func (b *PromotionBuilder) With(mutate func(*PromotionBuilder)) *PromotionBuilder {
	mutate(b)
	return b
}

func (b *PromotionBuilder) WithStatus(status dompromotion.Status) *PromotionBuilder {
	b.Status = status
	return b
}

func (b *PromotionBuilder) WithUsage(limit, count int) *PromotionBuilder {
	b.UsageLimit = &limit
	b.TotalUsageCount = count
	return b
}

func (b *PromotionBuilder) WithPerCustomerLimit(limit int) *PromotionBuilder {
	b.UsageLimitPerCustomer = &limit
	return b
}

func (b *PromotionBuilder) WithLine(line dompromotion.LineRule) *PromotionBuilder {
	b.LineRules = append(b.LineRules, line)
	return b
}

func (b *PromotionBuilder) WithFreeProductLine(productID uuid.UUID, qty int) *PromotionBuilder {
	b.LineRules = []dompromotion.LineRule{
		{
			ID:                  uuid.New(),
			RuleType:            dompromotion.RuleFreeProduct,
			DiscountType:        domdiscount.ValueFixedAmount,
			DiscountValue:       decimal.Zero,
			FreeProductID:       &productID,
			FreeProductQuantity: &qty,
			SortOrder:           0,
		},
	}
	return b
}

func (b *PromotionBuilder) BuildDomain() *dompromotion.Rule {
	return &dompromotion.Rule{
		ID:                    b.ID,
		Code:                  domdiscount.Code(b.Code),
		Name:                  b.Name,
		Type:                  b.Type,
		Status:                b.Status,
		LineRules:             b.LineRules,
		MinimumOrderAmount:    b.MinimumOrderAmount,
		MaximumDiscountAmount: b.MaximumDiscountAmount,
		UsageLimit:            b.UsageLimit,
		UsageLimitPerCustomer: b.UsageLimitPerCustomer,
		TotalUsageCount:       b.TotalUsageCount,
		IsStackable:           b.IsStackable,
		IsExclusive:           b.IsExclusive,
		Priority:              b.Priority,
		ExcludedProducts:      b.ExcludedProducts,
		ApplicableChannels:    b.ApplicableChannels,
		ActiveFrom:            b.ActiveFrom,
		ActiveUntil:           b.ActiveUntil,
		IsActive:              b.IsActive,
	}
}

func (b *PromotionBuilder) BuildValidateRequestDTO(amount int64) reqdto.ValidatePromotionRequest {
	return reqdto.ValidatePromotionRequest{
		Code: b.Code,
		Order: reqdto.OrderContext{
			OrderAmount: decimal.NewFromInt(amount),
			Quantity:    1,
		},
	}
}

func (b *PromotionBuilder) BuildRedeemRequestDTO() reqdto.RedeemPromotionRequest {
	return reqdto.RedeemPromotionRequest{
		CustomerID:      uuid.New(),
		OrderID:         uuid.New(),
		DiscountApplied: decimal.NewFromInt(20),
	}
}
