package config_fx

import (
	"go.uber.org/fx"

	"fooding/internal/config"
)

var Module = fx.Provide(config.Load)
