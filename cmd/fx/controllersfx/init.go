package controllersfx

import (
	"go.uber.org/fx"

	"urbanscribe/internal/api/controllers"
	"urbanscribe/internal/config"
)

var Module = fx.Options(
	fx.Provide(controllers.NewJourneyController),
	fx.Provide(controllers.NewUploadController),
	fx.Provide(providePingController),
)

func providePingController(cfg *config.Config) *controllers.PingController {
	return controllers.NewPingController(cfg.Ping.Message)
}
