package fdc_fx

import (
	"go.uber.org/fx"

	"fooding/internal/config"
	"fooding/internal/fdc"
)

var Module = fx.Provide(provideSearcher)

func provideSearcher(cfg config.Config) fdc.Searcher {
	return fdc.NewClient(cfg.FDC.BaseURL, cfg.FDC.APIKey)
}
