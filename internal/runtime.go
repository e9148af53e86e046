package internal

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/turbohomes/website/pkg/logger"
)

func (cfg *runConfig) server(addr string, h http.Handler) *http.Server {
	if addr == "" {
		addr = ":8080"
	}
	return &http.Server{
		Addr:              addr,
		Handler:           h,
		ReadTimeout:       defaultReadTimeout,
		WriteTimeout:      defaultWriteTimeout,
		IdleTimeout:       defaultIdleTimeout,
		ReadHeaderTimeout: defaultReadHeaderTimeout,
		MaxHeaderBytes:    defaultMaxHeaderBytes,
		ErrorLog:          slog.NewLogLogger(cfg.logger.Handler(), slog.LevelWarn),
	}
}

// serve runs srv until SIGINT, SIGTERM or the base context ends, then drains
// it and runs the shutdown hooks.
func (cfg *runConfig) serve(srv *http.Server) error {
	ctx, cancel := signal.NotifyContext(cfg.baseCtx, os.Interrupt, syscall.SIGTERM)
	defer cancel()

	for _, hook := range cfg.startupHooks {
		if err := hook(ctx); err != nil {
			return fmt.Errorf("startup hook: %w", err)
		}
	}

	ln, err := net.Listen("tcp", srv.Addr)
	if err != nil {
		return err
	}

	errCh := make(chan error, 1)
	go func() {
		defer close(errCh)
		cfg.logger.Info("server starting", slog.String("address", ln.Addr().String()))
		if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}
	return cfg.shutdown(srv)
}

func (cfg *runConfig) shutdown(srv *http.Server) error {
	cfg.logger.Info("shutting down server")
	ctx, cancel := context.WithTimeout(context.Background(), cfg.shutdownTimeout)
	defer cancel()

	errs := []error{srv.Shutdown(ctx)}
	for _, hook := range cfg.shutdownHooks {
		if err := hook(ctx); err != nil {
			cfg.logger.Error("shutdown hook failed", slog.Any("error", err))
			errs = append(errs, err)
		}
	}

	if err := errors.Join(errs...); err != nil {
		cfg.logger.Error("shutdown completed with errors")
		return err
	}
	cfg.logger.Info("shutdown completed")
	return nil
}

func (cfg *runConfig) fill(fallback *slog.Logger) {
	if cfg.logger == nil {
		cfg.logger = fallback
	}
	if cfg.logger == nil {
		cfg.logger = logger.NewNope()
	}
	if cfg.baseCtx == nil {
		cfg.baseCtx = context.Background()
	}
}
