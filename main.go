package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"

	"cpu-scheduler/api"
	"cpu-scheduler/config"
	"cpu-scheduler/internal/tracing"
	"cpu-scheduler/internal/util"
)

const version = "0.1.0"

func main() {
	cfg := config.GetSchedulerConfig()
	slog.SetDefault(util.BuildLogger(cfg.LogLevel))

	if cfg.TracingEnabled {
		if err := tracing.Init(cfg.ServiceName, version, cfg.TracingOutput); err != nil {
			log.Fatalln(err)
		}
		defer func() { _ = tracing.Shutdown(context.Background()) }()
	}

	app := api.NewApp(api.NewSchedulerHandlerImpl(cfg))
	slog.Info("scheduler api listening", slog.Int("port", cfg.Port))
	if err := app.Listen(fmt.Sprintf(":%d", cfg.Port)); err != nil {
		slog.Error("server stopped", util.ErrAttr(err))
	}
}
