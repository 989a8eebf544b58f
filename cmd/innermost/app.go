package main

import (
	"log/slog"

	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"

	"github.com/chiranperera/inner-most/internal/config"
	"github.com/chiranperera/inner-most/internal/content"
	"github.com/chiranperera/inner-most/internal/handlers"
	"github.com/chiranperera/inner-most/internal/metrics"
	"github.com/chiranperera/inner-most/internal/render"
	"github.com/chiranperera/inner-most/internal/server"
	"github.com/chiranperera/inner-most/internal/version"
	"github.com/chiranperera/inner-most/pkg/logger"
)

// siteOptions wire everything needed to build pages, without the HTTP server.
func siteOptions() fx.Option {
	return fx.Options(
		fx.WithLogger(func(log *slog.Logger) fxevent.Logger {
			return &fxevent.SlogLogger{Logger: log}
		}),

		logger.Module,
		config.Module,
		content.Module,
		render.Module,
	)
}

// serverOptions is the full application served over HTTP.
func serverOptions() fx.Option {
	return fx.Options(
		siteOptions(),
		server.Module,
		handlers.Module,
		fx.Invoke(recordBuildInfo),
	)
}

func recordBuildInfo(log *slog.Logger) {
	info := version.Info()
	metrics.BuildInfo.WithLabelValues(info.Version, info.GitCommit).Set(1)
	log.Info("starting", slog.String("version", info.String()))
}
