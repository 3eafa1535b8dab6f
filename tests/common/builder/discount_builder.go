//go:build unit || e2e

package builder

import (
	"time"

	domdiscount "promo-engine/internal/domain/discount"
	reqdto "promo-engine/internal/handler/dto/request"
	"promo-engine/internal/usecase"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type DiscountBuilder struct {
	ID                    uuid.UUID
	Code                  string
	Name                  string
	Kind                  domdiscount.Kind
	ValueType             domdiscount.ValueType
	Value                 decimal.Decimal
	MinimumOrderAmount    *decimal.Decimal
	MaximumDiscountAmount *decimal.Decimal
	MinimumQuantity       *int
	ApplicableCustomerIDs domdiscount.IDSet
	ApplicableProductIDs  domdiscount.IDSet
	ExcludedProductIDs    domdiscount.IDSet
	IsStackable           bool
	Priority              int
	ActiveFrom            *time.Time
	ActiveUntil           *time.Time
	IsActive              bool
	UsageLimit            *int
	UsageCount            int
}

func NewDiscountBuilder() *DiscountBuilder {
	return &DiscountBuilder{
		ID:          uuid.New(),
		Code:        "SAVE10",
		Name:        "10 percent off",
		Kind:        domdiscount.KindCoupon,
		ValueType:   domdiscount.ValuePercentage,
		Value:       decimal.NewFromInt(10),
		IsStackable: true,
		Priority:    1,
		IsActive:    true,
	}
}

func (b *DiscountBuilder) With(mutate func(*DiscountBuilder)) *DiscountBuilder {
	mutate(b)
	return b
}

func (b *DiscountBuilder) WithValue(vt domdiscount.ValueType, value int64) *DiscountBuilder {
	b.ValueType = vt
	b.Value = decimal.NewFromInt(value)
	return b
}

func (b *DiscountBuilder) WithUsage(limit, count int) *DiscountBuilder {
	b.UsageLimit = &limit
	b.UsageCount = count
	return b
}

func (b *DiscountBuilder) WithWindow(from, until time.Time) *DiscountBuilder {
	b.ActiveFrom = &from
	b.ActiveUntil = &until
	return b
}

func (b *DiscountBuilder) WithMinimumOrder(amount int64) *DiscountBuilder {
	min := decimal.NewFromInt(amount)
	b.MinimumOrderAmount = &min
	return b
}

func (b *DiscountBuilder) WithMaximumDiscount(amount int64) *DiscountBuilder {
	max := decimal.NewFromInt(amount)
	b.MaximumDiscountAmount = &max
	return b
}

func (b *DiscountBuilder) BuildDomain() *domdiscount.Rule {
	return &domdiscount.Rule{
		ID:                    b.ID,
		Code:                  domdiscount.Code(b.Code),
		Name:                  b.Name,
		Kind:                  b.Kind,
		ValueType:             b.ValueType,
		Value:                 b.Value,
		MinimumOrderAmount:    b.MinimumOrderAmount,
		MaximumDiscountAmount: b.MaximumDiscountAmount,
		MinimumQuantity:       b.MinimumQuantity,
		ApplicableCustomerIDs: b.ApplicableCustomerIDs,
		ApplicableProductIDs:  b.ApplicableProductIDs,
		ExcludedProductIDs:    b.ExcludedProductIDs,
		IsStackable:           b.IsStackable,
		Priority:              b.Priority,
		ActiveFrom:            b.ActiveFrom,
		ActiveUntil:           b.ActiveUntil,
		IsActive:              b.IsActive,
		UsageLimit:            b.UsageLimit,
		UsageCount:            b.UsageCount,
	}
}

func (b *DiscountBuilder) BuildOrderInput(amount int64) usecase.OrderInput {
	return usecase.OrderInput{
		OrderAmount: decimal.NewFromInt(amount),
		Quantity:    1,
	}
}

func (b *DiscountBuilder) BuildValidateRequestDTO(amount int64) reqdto.ValidateDiscountRequest {
	return reqdto.ValidateDiscountRequest{
		Code: b.Code,
		Order: reqdto.OrderContext{
			OrderAmount: decimal.NewFromInt(amount),
			Quantity:    1,
		},
	}
}
