package journeyfx

import (
	"go.uber.org/fx"

	"urbanscribe/internal/config"
	"urbanscribe/internal/services"
)

var Module = fx.Provide(provideJourneyService)

func provideJourneyService(cfg *config.Config) services.JourneyServiceInterface {
	return services.NewJourneyService(cfg.Journey.Delay())
}
