package configfx

import (
	"go.uber.org/fx"

	"urbanscribe/internal/config"
)

var Module = fx.Provide(config.Load)
