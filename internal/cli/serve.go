package cli

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/SscSPs/finance_manager/internal/handlers"
	"github.com/SscSPs/finance_manager/internal/middleware"
	"github.com/gin-gonic/gin"
	"github.com/google/subcommands"
)

const shutdownTimeout = 5 * time.Second

// NewRouter builds the HTTP engine with logging, recovery and every route.
func NewRouter(app *App) (*gin.Engine, error) {
	if app.Config.IsProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(middleware.StructuredLoggingMiddleware(app.Logger), gin.Recovery())

	if err := r.SetTrustedProxies(nil); err != nil {
		return nil, fmt.Errorf("failed to set trusted proxies: %w", err)
	}
	if err := handlers.RegisterRoutes(r, app.Config, app.Services); err != nil {
		return nil, err
	}
	return r, nil
}

type serveCmd struct {
	app  *App
	addr string
}

func (*serveCmd) Name() string     { return "serve" }
func (*serveCmd) Synopsis() string { return "serve the local JSON API" }
func (*serveCmd) Usage() string {
	return `serve [-addr <host:port>]

  Serves /api/v1 for a local front end until interrupted. Binds to
  HTTP_ADDR (127.0.0.1:8080 by default).
`
}

func (c *serveCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.addr, "addr", "", "listen address, overrides HTTP_ADDR")
}

func (c *serveCmd) Execute(ctx context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	logger := c.app.Logger
	addr := c.app.Config.HTTPAddr
	if c.addr != "" {
		addr = c.addr
	}

	router, err := NewRouter(c.app)
	if err != nil {
		return c.app.fail(err)
	}
	srv := &http.Server{
		Addr:              addr,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		logger.Info("Server starting", slog.String("addr", addr))
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if !errors.Is(err, http.ErrServerClosed) {
			logger.Error("Server failed to run", slog.String("error", err.Error()))
			return c.app.fail(err)
		}
	case <-ctx.Done():
		logger.Info("Shutting down server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Error("Server shutdown failed", slog.String("error", err.Error()))
			return subcommands.ExitFailure
		}
	}
	return subcommands.ExitSuccess
}
