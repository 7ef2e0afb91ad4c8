// Package app wires the registry, use case and HTTP delivery together and
// owns the server lifecycle.
package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"

	"github.com/go-chi/httplog/v2"
	"golang.org/x/sync/errgroup"

	delivery "github.com/Vaibhavmishra08/urlshortner/internal/adapter/delivery/http"
	"github.com/Vaibhavmishra08/urlshortner/internal/adapter/repository/memory"
	"github.com/Vaibhavmishra08/urlshortner/internal/config"
	"github.com/Vaibhavmishra08/urlshortner/internal/usecase"
)

// Run starts the HTTP server and blocks until ctx is cancelled or the server
// fails. The registry lives exactly as long as this call: nothing is
// persisted, so stopping the server discards every alias.
func Run(ctx context.Context, cfg *config.Config) error {
	const op = "app.Run"

	logger := httplog.NewLogger("urlshortner", httplog.Options{
		JSON:            cfg.Env == config.EnvProd,
		LogLevel:        slog.LevelInfo,
		Concise:         cfg.Env != config.EnvProd,
		RequestHeaders:  true,
		SourceFieldName: "source",
	})

	registry := memory.NewRegistry()
	uc := usecase.New(registry)
	router := delivery.NewRouter(logger, uc, cfg.BaseURL)

	server := &http.Server{
		Addr:           cfg.HTTPServer.Addr(),
		Handler:        router,
		ReadTimeout:    cfg.HTTPServer.ReadTimeout,
		WriteTimeout:   cfg.HTTPServer.WriteTimeout,
		IdleTimeout:    cfg.HTTPServer.IdleTimeout,
		MaxHeaderBytes: cfg.HTTPServer.MaxHeaderBytes,
		BaseContext: func(_ net.Listener) context.Context {
			return ctx
		},
	}

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		var err error

		switch cfg.Env {
		case config.EnvProd:
			err = server.ListenAndServeTLS(cfg.HTTPServer.CertFile, cfg.HTTPServer.KeyFile)
		default:
			err = server.ListenAndServe()
		}

		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("%s: server error occurred: %w", op, err)
		}

		return nil
	})

	g.Go(func() error {
		<-ctx.Done()

		if err := server.Shutdown(context.Background()); err != nil {
			return fmt.Errorf("%s: failed to shutdown server: %w", op, err)
		}

		return nil
	})

	return g.Wait()
}
