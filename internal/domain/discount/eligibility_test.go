//go:build unit

package discount_test

import (
	"testing"
	"time"

	"promo-engine/internal/domain/discount"
	"promo-engine/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEvaluate(t *testing.T) {
	now := time.Date(2026, 6, 15, 12, 0, 0, 0, time.UTC)

	orderCtx := func(amount int64) discount.OrderContext {
		return discount.OrderContext{
			OrderAmount: dec(amount),
			Quantity:    1,
		}
	}

	t.Run("valid rule passes", func(t *testing.T) {
		rule := builder.NewDiscountBuilder().BuildDomain()
		require.NoError(t, discount.Evaluate(rule, orderCtx(100), now))
	})

	cases := []struct {
		name   string
		mutate func(*builder.DiscountBuilder)
		ctx    discount.OrderContext
		errIs  error
	}{
		{
			name:   "inactive rule",
			mutate: func(b *builder.DiscountBuilder) { b.IsActive = false },
			ctx:    orderCtx(100),
			errIs:  discount.ErrInactive,
		},
		{
			name: "window not yet open",
			mutate: func(b *builder.DiscountBuilder) {
				b.WithWindow(now.Add(time.Hour), now.Add(48*time.Hour))
			},
			ctx:   orderCtx(100),
			errIs: discount.ErrNotYetActive,
		},
		{
			name: "window already closed",
			mutate: func(b *builder.DiscountBuilder) {
				b.WithWindow(now.Add(-48*time.Hour), now.Add(-time.Hour))
			},
			ctx:   orderCtx(100),
			errIs: discount.ErrExpired,
		},
		{
			name:   "usage exhausted",
			mutate: func(b *builder.DiscountBuilder) { b.WithUsage(5, 5) },
			ctx:    orderCtx(100),
			errIs:  discount.ErrUsageLimitReached,
		},
		{
			name:   "below minimum order",
			mutate: func(b *builder.DiscountBuilder) { b.WithMinimumOrder(200) },
			ctx:    orderCtx(100),
			errIs:  discount.ErrMinimumOrderNotMet,
		},
		{
			name: "minimum order boundary passes",
			mutate: func(b *builder.DiscountBuilder) {
				b.WithMinimumOrder(100)
			},
			ctx: orderCtx(100),
		},
		{
			name: "below minimum quantity",
			mutate: func(b *builder.DiscountBuilder) {
				q := 3
				b.MinimumQuantity = &q
			},
			ctx:   orderCtx(100),
			errIs: discount.ErrMinimumQuantityNotMet,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			b := builder.NewDiscountBuilder()
			tc.mutate(b)
			err := discount.Evaluate(b.BuildDomain(), tc.ctx, now)
			if tc.errIs == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tc.errIs)
			}
		})
	}

	t.Run("customer allowlist", func(t *testing.T) {
		allowed := uuid.New()
		rule := builder.NewDiscountBuilder().
			With(func(b *builder.DiscountBuilder) {
				b.ApplicableCustomerIDs = discount.NewIDSet(allowed)
			}).
			BuildDomain()

		t.Run("anonymous order is rejected", func(t *testing.T) {
			err := discount.Evaluate(rule, orderCtx(100), now)
			assert.ErrorIs(t, err, discount.ErrCustomerNotEligible)
		})

		t.Run("other customer is rejected", func(t *testing.T) {
			other := uuid.New()
			ctx := orderCtx(100)
			ctx.CustomerID = &other
			err := discount.Evaluate(rule, ctx, now)
			assert.ErrorIs(t, err, discount.ErrCustomerNotEligible)
		})

		t.Run("allowed customer passes", func(t *testing.T) {
			ctx := orderCtx(100)
			ctx.CustomerID = &allowed
			assert.NoError(t, discount.Evaluate(rule, ctx, now))
		})
	})

	t.Run("product targeting", func(t *testing.T) {
		target := uuid.New()
		excluded := uuid.New()
		rule := builder.NewDiscountBuilder().
			With(func(b *builder.DiscountBuilder) {
				b.ApplicableProductIDs = discount.NewIDSet(target)
				b.ExcludedProductIDs = discount.NewIDSet(excluded)
			}).
			BuildDomain()

		t.Run("no targeted product in order", func(t *testing.T) {
			ctx := orderCtx(100)
			ctx.ProductIDs = []uuid.UUID{uuid.New()}
			err := discount.Evaluate(rule, ctx, now)
			assert.ErrorIs(t, err, discount.ErrProductNotEligible)
		})

		t.Run("targeted product passes", func(t *testing.T) {
			ctx := orderCtx(100)
			ctx.ProductIDs = []uuid.UUID{target}
			assert.NoError(t, discount.Evaluate(rule, ctx, now))
		})

		t.Run("exclusion wins over inclusion", func(t *testing.T) {
			ctx := orderCtx(100)
			ctx.ProductIDs = []uuid.UUID{target, excluded}
			err := discount.Evaluate(rule, ctx, now)
			assert.ErrorIs(t, err, discount.ErrExcludedProduct)
		})
	})
}

func TestIsValidAt(t *testing.T) {
	now := time.Date(2026, 6, 15, 12, 0, 0, 0, time.UTC)

	t.Run("open-ended window is always valid", func(t *testing.T) {
		rule := builder.NewDiscountBuilder().BuildDomain()
		assert.True(t, rule.IsValidAt(now))
	})

	t.Run("exhausted rule is invalid", func(t *testing.T) {
		rule := builder.NewDiscountBuilder().WithUsage(3, 3).BuildDomain()
		assert.False(t, rule.IsValidAt(now))
	})

	t.Run("over-consumed counter stays invalid", func(t *testing.T) {
		rule := builder.NewDiscountBuilder().WithUsage(3, 7).BuildDomain()
		assert.False(t, rule.IsValidAt(now))
	})
}
