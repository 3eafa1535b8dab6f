//go:build unit

package promotion_test

import (
	"testing"

	"promo-engine/internal/domain/discount"
	"promo-engine/internal/domain/promotion"
	"promo-engine/tests/common/builder"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dec(v int64) decimal.Decimal {
	return decimal.NewFromInt(v)
}

func TestPromotionAmount(t *testing.T) {
	t.Run("uses the first line rule", func(t *testing.T) {
		rule := builder.NewPromotionBuilder().BuildDomain()

		got, err := rule.Amount(dec(100))
		require.NoError(t, err)
		assert.True(t, dec(20).Equal(got), "expected 20, got %s", got)
	})

	t.Run("later lines are ignored", func(t *testing.T) {
		rule := builder.NewPromotionBuilder().
			WithLine(promotion.LineRule{
				ID:            uuid.New(),
				RuleType:      promotion.RuleMinimumPurchase,
				DiscountType:  discount.ValueFixedAmount,
				DiscountValue: dec(99),
				SortOrder:     5,
			}).
			BuildDomain()
		rule.SortLineRules()

		got, err := rule.Amount(dec(100))
		require.NoError(t, err)
		assert.True(t, dec(20).Equal(got))
	})

	t.Run("sorting picks the lowest sort order", func(t *testing.T) {
		rule := builder.NewPromotionBuilder().
			With(func(b *builder.PromotionBuilder) {
				b.LineRules = []promotion.LineRule{
					{ID: uuid.New(), RuleType: promotion.RuleMinimumPurchase, DiscountType: discount.ValueFixedAmount, DiscountValue: dec(50), SortOrder: 2},
					{ID: uuid.New(), RuleType: promotion.RuleMinimumPurchase, DiscountType: discount.ValueFixedAmount, DiscountValue: dec(10), SortOrder: 1},
				}
			}).
			BuildDomain()
		rule.SortLineRules()

		got, err := rule.Amount(dec(100))
		require.NoError(t, err)
		assert.True(t, dec(10).Equal(got))
	})

	t.Run("maximum discount caps the line result", func(t *testing.T) {
		rule := builder.NewPromotionBuilder().
			With(func(b *builder.PromotionBuilder) {
				limit := dec(15)
				b.MaximumDiscountAmount = &limit
			}).
			BuildDomain()

		got, err := rule.Amount(dec(100))
		require.NoError(t, err)
		assert.True(t, dec(15).Equal(got))
	})

	t.Run("no line rules is an error", func(t *testing.T) {
		rule := builder.NewPromotionBuilder().
			With(func(b *builder.PromotionBuilder) { b.LineRules = nil }).
			BuildDomain()

		_, err := rule.Amount(dec(100))
		assert.ErrorIs(t, err, promotion.ErrNoLineRules)
	})
}

func TestFreeProduct(t *testing.T) {
	productID := uuid.New()

	t.Run("free product line grants the item", func(t *testing.T) {
		rule := builder.NewPromotionBuilder().WithFreeProductLine(productID, 2).BuildDomain()

		item := rule.FreeProduct()
		require.NotNil(t, item)
		assert.Equal(t, productID, item.ProductID)
		assert.Equal(t, 2, item.Quantity)
	})

	t.Run("quantity defaults to one", func(t *testing.T) {
		rule := builder.NewPromotionBuilder().WithFreeProductLine(productID, 2).BuildDomain()
		rule.LineRules[0].FreeProductQuantity = nil

		item := rule.FreeProduct()
		require.NotNil(t, item)
		assert.Equal(t, 1, item.Quantity)
	})

	t.Run("plain line grants nothing", func(t *testing.T) {
		rule := builder.NewPromotionBuilder().BuildDomain()
		assert.Nil(t, rule.FreeProduct())
	})

	t.Run("free product type without product id grants nothing", func(t *testing.T) {
		rule := builder.NewPromotionBuilder().WithFreeProductLine(productID, 1).BuildDomain()
		rule.LineRules[0].FreeProductID = nil
		assert.Nil(t, rule.FreeProduct())
	})
}
