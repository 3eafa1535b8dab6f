package components

import (
	"log/slog"

	"promo-engine/internal/domain/promotion"
	"promo-engine/internal/pkg/clock"
	"promo-engine/internal/pkg/config"
	"promo-engine/internal/usecase"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	fx.Provide(
		clock.NewRealClock,
		NewPromotionEvaluator,
		NewDiscountUseCase,
		NewPromotionUseCase,
	),
)

func NewPromotionEvaluator(cfg config.Config, logger *slog.Logger) *promotion.Evaluator {
	return promotion.NewEvaluator(cfg.Engine.SegmentFilteringSupported, logger)
}

func NewDiscountUseCase(
	store usecase.DiscountStore,
	unitOfWork usecase.UnitOfWork,
	clk clock.Clock,
	cfg config.Config,
) usecase.DiscountUseCase {
	return usecase.NewDiscountUseCase(store, unitOfWork, clk, cfg.Engine.StoreTimeout)
}

func NewPromotionUseCase(
	store usecase.PromotionStore,
	ledger usecase.UsageLedger,
	unitOfWork usecase.UnitOfWork,
	evaluator *promotion.Evaluator,
	clk clock.Clock,
	cfg config.Config,
) usecase.PromotionUseCase {
	return usecase.NewPromotionUseCase(store, ledger, unitOfWork, evaluator, clk, cfg.Engine.StoreTimeout)
}
