// @title         billnote API
// @version       0.1.0
// @description   Video platform classification and source provenance

package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"billnote/internal/core/locale"
	"billnote/internal/core/platform"
	"billnote/internal/core/rulepack"
	"billnote/internal/modkit/httpkit"
	"billnote/internal/platform/config"
	"billnote/internal/platform/logger"
	phttp "billnote/internal/platform/net/http"
	"billnote/internal/platform/net/middleware"

	"billnote/internal/services/api"
)

func main() {
	logger.Init(logger.FromEnv())
	l := logger.Get()

	// service-scoped config for HTTP etc (BILLNOTE_API_*)
	apiCfg := config.New().Prefix("BILLNOTE_API_")

	var classifier *platform.Classifier
	if path := apiCfg.MayString("RULES_FILE", ""); path != "" {
		pack, err := rulepack.LoadFile(path)
		if err != nil {
			l.Panic().Err(err).Str("path", path).Msg("rules file")
		}
		classifier = platform.New(pack)
		l.Info().Str("path", path).Int("rules", len(pack.Rules)).Msg("loaded rules file")
	}

	// http server (reads BILLNOTE_API_PORT / BILLNOTE_API_ADDR)
	srv := phttp.NewServer(apiCfg)
	srv.Router().Use(middleware.Heartbeat("/ping"))

	api.Mount(srv.Router(), api.Options{
		Config:         apiCfg,
		Logger:         l,
		Service:        "billnote-api",
		Classifier:     classifier,
		EnableSwagger:  apiCfg.MayBool("SWAGGER", true),
		EnableProfiler: apiCfg.MayBool("PROFILER", false),
		Stack: httpkit.StackOptions{
			Timeout: apiCfg.MayDuration("TIMEOUT", 30*time.Second),
			Slow:    apiCfg.MayDuration("SLOW", 500*time.Millisecond),
			Locale:  apiCfg.MayLanguage("LOCALE", locale.Default),
			CORS: middleware.CORSOptions{
				AllowedOrigins: apiCfg.MayCSV("CORS_ORIGINS", nil),
			},
			RateLimit: middleware.RateLimitOptions{
				PerSecond: float64(apiCfg.MayInt("RATE_LIMIT", 0)),
				Burst:     apiCfg.MayInt("RATE_BURST", 0),
			},
		},
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := srv.Run(ctx); err != nil {
		l.Panic().Err(err).Msg("http server stopped")
	}
}
