//go:build unit

package promotion_test

import (
	"log/slog"
	"testing"
	"time"

	"promo-engine/internal/domain/discount"
	"promo-engine/internal/domain/promotion"
	"promo-engine/tests/common/builder"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEvaluatorEvaluate(t *testing.T) {
	now := time.Now()
	evaluator := promotion.NewEvaluator(false, slog.Default())

	orderCtx := func(amount int64) discount.OrderContext {
		return discount.OrderContext{
			OrderAmount: decimal.NewFromInt(amount),
			Quantity:    1,
		}
	}

	t.Run("active promotion passes", func(t *testing.T) {
		rule := builder.NewPromotionBuilder().BuildDomain()
		require.NoError(t, evaluator.Evaluate(rule, orderCtx(100), now))
	})

	t.Run("status gating", func(t *testing.T) {
		for _, status := range []promotion.Status{
			promotion.StatusDraft,
			promotion.StatusPaused,
			promotion.StatusExpired,
			promotion.StatusCancelled,
		} {
			t.Run(string(status), func(t *testing.T) {
				rule := builder.NewPromotionBuilder().WithStatus(status).BuildDomain()
				err := evaluator.Evaluate(rule, orderCtx(100), now)
				assert.ErrorIs(t, err, promotion.ErrInactive)
			})
		}
	})

	t.Run("inactive flag overrides active status", func(t *testing.T) {
		rule := builder.NewPromotionBuilder().
			With(func(b *builder.PromotionBuilder) { b.IsActive = false }).
			BuildDomain()
		err := evaluator.Evaluate(rule, orderCtx(100), now)
		assert.ErrorIs(t, err, promotion.ErrInactive)
	})

	t.Run("window checks", func(t *testing.T) {
		rule := builder.NewPromotionBuilder().
			With(func(b *builder.PromotionBuilder) {
				b.ActiveFrom = now.Add(time.Hour)
				b.ActiveUntil = now.Add(2 * time.Hour)
			}).
			BuildDomain()
		assert.ErrorIs(t, evaluator.Evaluate(rule, orderCtx(100), now), promotion.ErrNotYetActive)

		rule.ActiveFrom = now.Add(-2 * time.Hour)
		rule.ActiveUntil = now.Add(-time.Hour)
		assert.ErrorIs(t, evaluator.Evaluate(rule, orderCtx(100), now), promotion.ErrExpired)
	})

	t.Run("usage limit reached", func(t *testing.T) {
		rule := builder.NewPromotionBuilder().WithUsage(10, 10).BuildDomain()
		err := evaluator.Evaluate(rule, orderCtx(100), now)
		assert.ErrorIs(t, err, promotion.ErrUsageLimitReached)
	})

	t.Run("minimum order", func(t *testing.T) {
		rule := builder.NewPromotionBuilder().
			With(func(b *builder.PromotionBuilder) {
				min := decimal.NewFromInt(50)
				b.MinimumOrderAmount = &min
			}).
			BuildDomain()

		assert.ErrorIs(t, evaluator.Evaluate(rule, orderCtx(49), now), promotion.ErrMinimumOrderNotMet)
		assert.NoError(t, evaluator.Evaluate(rule, orderCtx(50), now))
	})

	t.Run("excluded product rejects the order", func(t *testing.T) {
		excluded := uuid.New()
		rule := builder.NewPromotionBuilder().
			With(func(b *builder.PromotionBuilder) {
				b.ExcludedProducts = discount.NewIDSet(excluded)
			}).
			BuildDomain()

		ctx := orderCtx(100)
		ctx.ProductIDs = []uuid.UUID{excluded}
		assert.ErrorIs(t, evaluator.Evaluate(rule, ctx, now), promotion.ErrExcludedProduct)

		ctx.ProductIDs = []uuid.UUID{uuid.New()}
		assert.NoError(t, evaluator.Evaluate(rule, ctx, now))
	})

	t.Run("segment targeting passes while unsupported", func(t *testing.T) {
		rule := builder.NewPromotionBuilder().BuildDomain()
		rule.TargetCustomerSegments = []string{"vip"}

		assert.NoError(t, evaluator.Evaluate(rule, orderCtx(100), now))
	})

	t.Run("segment targeting rejects when filtering is enabled", func(t *testing.T) {
		strict := promotion.NewEvaluator(true, nil)

		targeted := builder.NewPromotionBuilder().BuildDomain()
		targeted.TargetCustomerSegments = []string{"vip"}
		assert.ErrorIs(t, strict.Evaluate(targeted, orderCtx(100), now), promotion.ErrSegmentUnverified)

		byCategory := builder.NewPromotionBuilder().BuildDomain()
		byCategory.TargetProductCategories = []string{"books"}
		assert.ErrorIs(t, strict.Evaluate(byCategory, orderCtx(100), now), promotion.ErrSegmentUnverified)

		untargeted := builder.NewPromotionBuilder().BuildDomain()
		assert.NoError(t, strict.Evaluate(untargeted, orderCtx(100), now), "rules without targeting are unaffected")
	})

	t.Run("channel matching", func(t *testing.T) {
		rule := builder.NewPromotionBuilder().
			With(func(b *builder.PromotionBuilder) {
				b.ApplicableChannels = []string{"Web", "Mobile"}
			}).
			BuildDomain()

		ctx := orderCtx(100)

		ctx.Channel = "web"
		assert.NoError(t, evaluator.Evaluate(rule, ctx, now), "channel match is case-insensitive")

		ctx.Channel = "pos"
		assert.ErrorIs(t, evaluator.Evaluate(rule, ctx, now), promotion.ErrChannelNotEligible)

		ctx.Channel = ""
		assert.NoError(t, evaluator.Evaluate(rule, ctx, now), "unspecified channel is not filtered")
	})
}

func TestRemainingTotalUses(t *testing.T) {
	t.Run("unlimited promotion has no remaining count", func(t *testing.T) {
		rule := builder.NewPromotionBuilder().BuildDomain()
		assert.Nil(t, rule.RemainingTotalUses())
	})

	t.Run("remaining is limit minus count", func(t *testing.T) {
		rule := builder.NewPromotionBuilder().WithUsage(10, 3).BuildDomain()
		remaining := rule.RemainingTotalUses()
		require.NotNil(t, remaining)
		assert.Equal(t, 7, *remaining)
	})

	t.Run("remaining never goes negative", func(t *testing.T) {
		rule := builder.NewPromotionBuilder().WithUsage(3, 9).BuildDomain()
		remaining := rule.RemainingTotalUses()
		require.NotNil(t, remaining)
		assert.Equal(t, 0, *remaining)
	})
}
