package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/qyinm/bites/catalog"
	"github.com/qyinm/bites/logging"
	"github.com/qyinm/bites/mcpsrv"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// stdout carries the protocol; logs go to the file or stderr only.
	logCfg := logging.ConfigFromEnv()
	if logCfg.Stderr == "" {
		logCfg.Stderr = "always"
	}
	log := logging.New("bites-mcp-stdio", logCfg)
	cfg := mcpsrv.LoadConfig()

	source, err := catalog.Load(ctx, cfg.CatalogSource)
	if err != nil {
		log.WithError(err).Fatal("load catalog")
	}

	// A stdio server has a single client, so there is nothing to sweep.
	server := mcpsrv.NewServer(source, nil, "dev", &mcpsrv.ServerOptions{
		EnableAdmin: cfg.EnableAdmin && cfg.APIKey != "",
		APIKey:      cfg.APIKey,
		Logger:      log,
	})

	if err := server.Run(ctx, &mcp.StdioTransport{}); err != nil {
		log.WithError(err).Fatal("stdio mcp server failed")
	}
}
