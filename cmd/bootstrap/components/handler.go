package components

import (
	"promo-engine/internal/handler"
	"promo-engine/internal/handler/api"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewDiscountHandler,
		api.NewPromotionHandler,
	),
	fx.Invoke(handler.NewRouter),
)
