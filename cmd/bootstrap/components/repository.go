package components

import (
	"promo-engine/internal/infra/repository"
	"promo-engine/internal/infra/uow"
	"promo-engine/internal/usecase"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var RepositoryModule = fx.Module("repository",
	fx.Provide(
		NewDBTX,
		uow.NewPostgresUoW,
		fx.Annotate(
			repository.NewDiscountRepository,
			fx.As(new(usecase.DiscountStore)),
		),
		fx.Annotate(
			repository.NewPromotionRepository,
			fx.As(new(usecase.PromotionStore)),
		),
		fx.Annotate(
			repository.NewLedgerRepository,
			fx.As(new(usecase.UsageLedger)),
		),
	),
)

func NewDBTX(pool *pgxpool.Pool) repository.DBTX {
	return pool
}
