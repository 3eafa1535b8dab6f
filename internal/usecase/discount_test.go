//go:build unit

package usecase_test

import (
	"context"
	"testing"
	"time"

	"promo-engine/internal/domain/discount"
	"promo-engine/internal/infra"
	"promo-engine/internal/pkg/clock"
	"promo-engine/internal/usecase"
	"promo-engine/tests/common/builder"
	storemock "promo-engine/tests/mock/store"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type DiscountUseCaseTestSuite struct {
	suite.Suite
	mockCtrl  *gomock.Controller
	mockStore *storemock.MockDiscountStore
	mockUoW   *storemock.MockUnitOfWork
	mockTx    *storemock.MockTx
	mockRepo  *storemock.MockDiscountTxRepo
	clock     *clock.MockClock
	uc        usecase.DiscountUseCase
}

func (s *DiscountUseCaseTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockStore = storemock.NewMockDiscountStore(s.mockCtrl)
	s.mockUoW = storemock.NewMockUnitOfWork(s.mockCtrl)
	s.mockTx = storemock.NewMockTx(s.mockCtrl)
	s.mockRepo = storemock.NewMockDiscountTxRepo(s.mockCtrl)
	s.clock = clock.NewMockClock(time.Date(2026, 6, 15, 12, 0, 0, 0, time.UTC))
	s.uc = usecase.NewDiscountUseCase(s.mockStore, s.mockUoW, s.clock, time.Second)
}

func (s *DiscountUseCaseTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestDiscountUseCaseSuite(t *testing.T) {
	suite.Run(t, new(DiscountUseCaseTestSuite))
}

func (s *DiscountUseCaseTestSuite) expectWithin() {
	s.mockUoW.EXPECT().Within(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, fn func(context.Context, usecase.Tx) error) error {
			return fn(ctx, s.mockTx)
		})
	s.mockTx.EXPECT().Discounts().Return(s.mockRepo).AnyTimes()
}

func orderInput(amount int64) usecase.OrderInput {
	return usecase.OrderInput{
		OrderAmount: decimal.NewFromInt(amount),
		Quantity:    1,
	}
}

func (s *DiscountUseCaseTestSuite) TestValidateSingle() {
	s.Run("computes amount and effective rate", func() {
		rule := builder.NewDiscountBuilder().BuildDomain()
		s.mockStore.EXPECT().FindByCode(gomock.Any(), "SAVE10").Return(rule, nil)

		result, err := s.uc.ValidateSingle(context.Background(), "SAVE10", orderInput(200))
		s.Require().NoError(err)
		s.Equal(rule.ID, result.DiscountID)
		s.True(decimal.NewFromInt(20).Equal(result.Amount), "amount %s", result.Amount)
		s.True(decimal.NewFromInt(10).Equal(result.EffectiveRate), "rate %s", result.EffectiveRate)
	})

	s.Run("normalizes the code before lookup", func() {
		rule := builder.NewDiscountBuilder().BuildDomain()
		s.mockStore.EXPECT().FindByCode(gomock.Any(), "SAVE10").Return(rule, nil)

		_, err := s.uc.ValidateSingle(context.Background(), "  save10 ", orderInput(100))
		s.Require().NoError(err)
	})

	s.Run("malformed code fails validation without lookup", func() {
		_, err := s.uc.ValidateSingle(context.Background(), "!!", orderInput(100))
		s.ErrorIs(err, usecase.ErrValidationFailed)
		s.ErrorIs(err, discount.ErrInvalidCode)
	})

	s.Run("unknown code is not found", func() {
		s.mockStore.EXPECT().FindByCode(gomock.Any(), "NOPE99").
			Return(nil, infra.WrapRepoErr("discount not found", nil, infra.KindNotFound))

		_, err := s.uc.ValidateSingle(context.Background(), "NOPE99", orderInput(100))
		s.ErrorIs(err, usecase.ErrNotFound)
		s.ErrorIs(err, usecase.ErrDiscountNotFound)
	})

	s.Run("non-positive order amount fails validation", func() {
		_, err := s.uc.ValidateSingle(context.Background(), "SAVE10", orderInput(0))
		s.ErrorIs(err, usecase.ErrValidationFailed)
		s.ErrorIs(err, usecase.ErrInvalidOrderAmount)
	})

	s.Run("expired discount conflicts", func() {
		now := s.clock.Now()
		rule := builder.NewDiscountBuilder().
			WithWindow(now.Add(-48*time.Hour), now.Add(-time.Hour)).
			BuildDomain()
		s.mockStore.EXPECT().FindByCode(gomock.Any(), "SAVE10").Return(rule, nil)

		_, err := s.uc.ValidateSingle(context.Background(), "SAVE10", orderInput(100))
		s.ErrorIs(err, usecase.ErrConflict)
		s.ErrorIs(err, discount.ErrExpired)
	})

	s.Run("customer mismatch is forbidden", func() {
		rule := builder.NewDiscountBuilder().
			With(func(b *builder.DiscountBuilder) {
				b.ApplicableCustomerIDs = discount.NewIDSet(uuid.New())
			}).
			BuildDomain()
		s.mockStore.EXPECT().FindByCode(gomock.Any(), "SAVE10").Return(rule, nil)

		_, err := s.uc.ValidateSingle(context.Background(), "SAVE10", orderInput(100))
		s.ErrorIs(err, usecase.ErrForbidden)
		s.ErrorIs(err, discount.ErrCustomerNotEligible)
	})
}

func (s *DiscountUseCaseTestSuite) TestValidateStacked() {
	s.Run("each discount reduces the base for the next", func() {
		first := builder.NewDiscountBuilder().BuildDomain()
		second := builder.NewDiscountBuilder().
			With(func(b *builder.DiscountBuilder) { b.Code = "EXTRA10" }).
			BuildDomain()
		s.mockStore.EXPECT().FindByCode(gomock.Any(), "SAVE10").Return(first, nil)
		s.mockStore.EXPECT().FindByCode(gomock.Any(), "EXTRA10").Return(second, nil)

		result, err := s.uc.ValidateStacked(context.Background(), []string{"SAVE10", "EXTRA10"}, orderInput(100))
		s.Require().NoError(err)
		s.Require().Len(result.Discounts, 2)
		s.True(decimal.NewFromInt(10).Equal(result.Discounts[0].Amount))
		s.True(decimal.NewFromInt(9).Equal(result.Discounts[1].Amount), "second discount applies to 90, got %s", result.Discounts[1].Amount)
		s.True(decimal.NewFromInt(19).Equal(result.TotalAmount), "total %s", result.TotalAmount)
	})

	s.Run("minimum order is checked against the reduced amount", func() {
		first := builder.NewDiscountBuilder().BuildDomain()
		second := builder.NewDiscountBuilder().
			With(func(b *builder.DiscountBuilder) { b.Code = "BIG5" }).
			WithMinimumOrder(95).
			BuildDomain()
		s.mockStore.EXPECT().FindByCode(gomock.Any(), "SAVE10").Return(first, nil)
		s.mockStore.EXPECT().FindByCode(gomock.Any(), "BIG5").Return(second, nil)

		_, err := s.uc.ValidateStacked(context.Background(), []string{"SAVE10", "BIG5"}, orderInput(100))
		s.ErrorIs(err, usecase.ErrValidationFailed)
		s.ErrorIs(err, discount.ErrMinimumOrderNotMet)
	})

	s.Run("non-stackable discount after the first conflicts", func() {
		first := builder.NewDiscountBuilder().BuildDomain()
		second := builder.NewDiscountBuilder().
			With(func(b *builder.DiscountBuilder) {
				b.Code = "SOLO20"
				b.IsStackable = false
			}).
			BuildDomain()
		s.mockStore.EXPECT().FindByCode(gomock.Any(), "SAVE10").Return(first, nil)
		s.mockStore.EXPECT().FindByCode(gomock.Any(), "SOLO20").Return(second, nil)

		_, err := s.uc.ValidateStacked(context.Background(), []string{"SAVE10", "SOLO20"}, orderInput(100))
		s.ErrorIs(err, usecase.ErrConflict)
		s.ErrorIs(err, usecase.ErrNotStackable)
	})

	s.Run("non-stackable discount alone is allowed", func() {
		only := builder.NewDiscountBuilder().
			With(func(b *builder.DiscountBuilder) { b.IsStackable = false }).
			BuildDomain()
		s.mockStore.EXPECT().FindByCode(gomock.Any(), "SAVE10").Return(only, nil)

		result, err := s.uc.ValidateStacked(context.Background(), []string{"SAVE10"}, orderInput(100))
		s.Require().NoError(err)
		s.True(decimal.NewFromInt(10).Equal(result.TotalAmount))
	})

	s.Run("empty code list fails validation", func() {
		_, err := s.uc.ValidateStacked(context.Background(), nil, orderInput(100))
		s.ErrorIs(err, usecase.ErrValidationFailed)
		s.ErrorIs(err, usecase.ErrEmptyCode)
	})
}

func (s *DiscountUseCaseTestSuite) TestDiscoverAutomatic() {
	s.Run("returns eligible discounts sorted by priority", func() {
		now := s.clock.Now()
		low := builder.NewDiscountBuilder().
			With(func(b *builder.DiscountBuilder) {
				b.Kind = discount.KindAutomatic
				b.Priority = 5
			}).
			BuildDomain()
		high := builder.NewDiscountBuilder().
			With(func(b *builder.DiscountBuilder) {
				b.Code = "FIRST5"
				b.Kind = discount.KindAutomatic
				b.Priority = 1
			}).
			BuildDomain()
		expired := builder.NewDiscountBuilder().
			With(func(b *builder.DiscountBuilder) {
				b.Code = "GONE10"
				b.Kind = discount.KindAutomatic
			}).
			WithWindow(now.Add(-48*time.Hour), now.Add(-time.Hour)).
			BuildDomain()
		tooSmall := builder.NewDiscountBuilder().
			With(func(b *builder.DiscountBuilder) {
				b.Code = "RICH10"
				b.Kind = discount.KindAutomatic
			}).
			WithMinimumOrder(1000).
			BuildDomain()

		s.mockStore.EXPECT().FindByKind(gomock.Any(), discount.KindAutomatic).
			Return([]discount.Rule{*low, *expired, *high, *tooSmall}, nil)

		results, err := s.uc.DiscoverAutomatic(context.Background(), orderInput(100))
		s.Require().NoError(err)
		s.Require().Len(results, 2)
		s.Equal("FIRST5", results[0].Code)
		s.Equal("SAVE10", results[1].Code)
	})

	s.Run("zero-amount fixed price rule is still offered", func() {
		freebie := builder.NewDiscountBuilder().
			With(func(b *builder.DiscountBuilder) {
				b.Code = "PAYMAX150"
				b.Kind = discount.KindAutomatic
			}).
			WithValue(discount.ValueFixedPrice, 150).
			BuildDomain()

		s.mockStore.EXPECT().FindByKind(gomock.Any(), discount.KindAutomatic).
			Return([]discount.Rule{*freebie}, nil)

		results, err := s.uc.DiscoverAutomatic(context.Background(), orderInput(100))
		s.Require().NoError(err)
		s.Require().Len(results, 1)
		s.Equal("PAYMAX150", results[0].Code)
		s.True(results[0].Amount.IsZero())
	})

	s.Run("empty store yields empty list", func() {
		s.mockStore.EXPECT().FindByKind(gomock.Any(), discount.KindAutomatic).Return(nil, nil)

		results, err := s.uc.DiscoverAutomatic(context.Background(), orderInput(100))
		s.Require().NoError(err)
		s.Empty(results)
	})
}

func (s *DiscountUseCaseTestSuite) TestMarkUsed() {
	id := uuid.New()

	s.Run("increments inside the transaction", func() {
		s.expectWithin()
		s.mockRepo.EXPECT().IncrementUsage(gomock.Any(), id).Return(nil)

		s.NoError(s.uc.MarkUsed(context.Background(), id))
	})

	s.Run("limit reached maps to conflict", func() {
		s.expectWithin()
		s.mockRepo.EXPECT().IncrementUsage(gomock.Any(), id).
			Return(infra.WrapRepoErr("discount usage limit reached", nil, infra.KindConflict))

		err := s.uc.MarkUsed(context.Background(), id)
		s.ErrorIs(err, usecase.ErrConflict)
		s.ErrorIs(err, usecase.ErrDiscountLimitReached)
	})

	s.Run("missing discount maps to not found", func() {
		s.expectWithin()
		s.mockRepo.EXPECT().IncrementUsage(gomock.Any(), id).
			Return(infra.WrapRepoErr("discount not found", nil, infra.KindNotFound))

		err := s.uc.MarkUsed(context.Background(), id)
		s.ErrorIs(err, usecase.ErrNotFound)
		s.ErrorIs(err, usecase.ErrDiscountNotFound)
	})
}
