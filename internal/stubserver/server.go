// Package stubserver hosts a local stand-in for the remote quiz source. It
// applies the same two encoding layers the real upstream does, doubled
// backslashes included, so the full decode pipeline can be exercised without
// network access.
package stubserver

import (
	"context"
	"errors"
	"net/http"
	"time"
)

// Config captures the settings for serving quiz fixtures.
type Config struct {
	Addr        string
	FixturePath string
}

// Serve starts an HTTP server hosting the fixture quiz endpoint until the
// context is cancelled.
func Serve(ctx context.Context, cfg Config) error {
	if ctx == nil {
		return errors.New("stubserver: context is nil")
	}
	if cfg.Addr == "" {
		return errors.New("stubserver: addr is required")
	}
	handler, err := NewHandler(cfg)
	if err != nil {
		return err
	}

	server := &http.Server{
		Addr:    cfg.Addr,
		Handler: handler,
	}
	errCh := make(chan error, 1)
	go func() {
		errCh <- server.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = server.Shutdown(shutdownCtx)
		err := <-errCh
		if errors.Is(err, http.ErrServerClosed) || err == nil {
			return nil
		}
		return err
	}
}
