package uploadfx

import (
	"go.uber.org/fx"

	"urbanscribe/internal/config"
	"urbanscribe/internal/services"
)

var Module = fx.Provide(provideUploadService)

func provideUploadService(cfg *config.Config) services.UploadServiceInterface {
	return services.NewUploadService(cfg.Upload.Delay(), cfg.Upload.MaxSizeBytes)
}
