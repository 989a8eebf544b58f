package render

import (
	"log/slog"

	"go.uber.org/fx"

	"github.com/chiranperera/inner-most/internal/config"
	"github.com/chiranperera/inner-most/internal/content"
	"github.com/chiranperera/inner-most/internal/tokens"
	"github.com/chiranperera/inner-most/pkg/logger"
)

var Module = fx.Module("render",
	fx.Provide(
		tokens.Default,
		ProvidePages,
		ProvideCache,
	),
)

// ProvidePages builds the page set from loaded content and configuration.
func ProvidePages(cfg *config.Config, site *content.Site, tok tokens.Tokens) (*Pages, error) {
	return NewPages(site, tok, cfg.Site.BaseURL, cfg.Site.TailwindCDN)
}

func ProvideCache(cfg *config.Config, log *slog.Logger) (*Cache, error) {
	c, err := NewCache(cfg.Render.CacheSize)
	if err != nil {
		return nil, err
	}
	log.With(logger.Scope("render")).Info("render cache ready",
		slog.Bool("enabled", c.Enabled()),
		slog.Int("size", cfg.Render.CacheSize),
	)
	return c, nil
}
