package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/qyinm/bites/catalog"
	"github.com/qyinm/bites/logging"
	"github.com/qyinm/bites/mcpsrv"
	"github.com/sirupsen/logrus"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logCfg := logging.ConfigFromEnv()
	if logCfg.Stderr == "" {
		logCfg.Stderr = "always"
	}
	log := logging.New("bites-mcp", logCfg)
	cfg := mcpsrv.LoadConfig()

	source, err := catalog.Load(ctx, cfg.CatalogSource)
	if err != nil {
		log.WithError(err).Fatal("load catalog")
	}

	metrics := mcpsrv.NewMetrics()
	store := mcpsrv.NewSessionStore(source, metrics)
	server := mcpsrv.NewServer(source, store, "dev", &mcpsrv.ServerOptions{
		EnableAdmin: cfg.EnableAdmin && cfg.APIKey != "",
		APIKey:      cfg.APIKey,
		Metrics:     metrics,
		Logger:      log,
	})

	mcpHandler := mcpsrv.NewHandler(server, mcpsrv.StreamableOptions(cfg))
	router := mcpsrv.NewRouter(mcpHandler, cfg, metrics, log)

	if cfg.SweepInterval > 0 && cfg.SessionTimeout > 0 {
		go func() {
			ticker := time.NewTicker(cfg.SweepInterval)
			defer ticker.Stop()
			for {
				select {
				case <-ticker.C:
					if n := store.Sweep(cfg.SessionTimeout); n > 0 {
						log.WithField("evicted", n).Debug("idle sessions swept")
					}
				case <-ctx.Done():
					return
				}
			}
		}()
	}

	httpServer := &http.Server{
		Addr:              ":" + strings.TrimSpace(cfg.Port),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      0,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			log.WithError(err).Error("shutdown")
		}
	}()

	log.WithFields(logrus.Fields{
		"addr":  httpServer.Addr,
		"items": source.Len(),
		"admin": cfg.EnableAdmin && cfg.APIKey != "",
	}).Info("bites-mcp listening")
	err = httpServer.ListenAndServe()
	if err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.WithError(err).Fatal("server failed")
	}
}
