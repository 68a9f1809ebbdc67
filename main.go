package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/triply/travelhub/api"
	"github.com/triply/travelhub/bootstrap"
	"github.com/triply/travelhub/config"
	"github.com/triply/travelhub/log"
	"golang.org/x/net/http2"
	"golang.org/x/net/http2/h2c"
)

func main() {
	log.Init()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigChan
		log.Info(context.Background(), "Shutdown signal received. Exiting...")
		cancel()
	}()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf(context.Background(), "Failed to load config: %v", err)
	}

	app, err := bootstrap.Setup(ctx, cfg)
	if err != nil {
		log.Fatalf(context.Background(), "Setup failed: %v", err)
	}

	server := api.NewServer(app.Registry)

	// h2c serves HTTP/2 without TLS for internal deployments
	srv := &http.Server{
		Addr:    ":" + cfg.Server.Port,
		Handler: h2c.NewHandler(server.Router(), &http2.Server{}),
	}

	go func() {
		<-ctx.Done()
		log.Info(context.Background(), "Shutting down server...")
		srv.Shutdown(context.Background())
	}()

	log.Infof(context.Background(), "Starting server on port %s", cfg.Server.Port)
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatalf(context.Background(), "Server failed: %v", err)
	}
}
