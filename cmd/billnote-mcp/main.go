// Command billnote-mcp serves the classifier and provenance tools over the
// Model Context Protocol, on stdio or streamable HTTP
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"billnote/internal/core/platform"
	"billnote/internal/core/rulepack"
	"billnote/internal/core/version"
	"billnote/internal/platform/config"
	"billnote/internal/platform/logger"
	phttp "billnote/internal/platform/net/http"
	"billnote/internal/platform/net/middleware"
	"billnote/internal/services/mcp"

	sdk "github.com/modelcontextprotocol/go-sdk/mcp"
)

func main() {
	logger.Init(logger.FromEnv())
	l := logger.Get()

	cfg := config.New().Prefix("BILLNOTE_MCP_")

	var classifier *platform.Classifier
	if path := cfg.MayString("RULES_FILE", ""); path != "" {
		pack, err := rulepack.LoadFile(path)
		if err != nil {
			l.Panic().Err(err).Str("path", path).Msg("rules file")
		}
		classifier = platform.New(pack)
	}

	info := version.Info("billnote-mcp")
	server := mcp.NewServer(mcp.Options{Classifier: classifier, Version: info.Version})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	transport := cfg.MayEnum("TRANSPORT", "stdio", "stdio", "http")
	l.Info().Str("transport", transport).Str("build", info.String()).Msg("mcp server starting")

	switch transport {
	case "http":
		// reads BILLNOTE_MCP_PORT / BILLNOTE_MCP_ADDR
		srv := phttp.NewServer(cfg)
		srv.Router().Use(middleware.Heartbeat("/ping"))
		srv.Router().Handle("/mcp", sdk.NewStreamableHTTPHandler(func(*http.Request) *sdk.Server { return server }, nil))
		if err := srv.Run(ctx); err != nil {
			l.Panic().Err(err).Msg("http server stopped")
		}
	default:
		// stdout carries the protocol; logs stay on stderr
		if err := server.Run(ctx, &sdk.StdioTransport{}); err != nil && ctx.Err() == nil {
			l.Panic().Err(err).Msg("stdio session ended")
		}
	}
}
