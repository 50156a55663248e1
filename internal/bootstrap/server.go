package bootstrap

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/parthodeb03/Project-Comfy-Go-sub000/api"
	"github.com/parthodeb03/Project-Comfy-Go-sub000/config"
)

type Handlers struct {
	Sessions  *api.SessionHandler
	Resources *api.ResourceHandler
	Bookings  *api.BookingHandler
	Auth      gin.HandlerFunc
}

// Run starts the HTTP server and blocks until the context is canceled or the
// server fails.
func Run(ctx context.Context, cfg *config.Config, h Handlers) error {
	router := gin.Default()

	h.Sessions.Register(router.Group("/sessions"), h.Auth)
	h.Resources.Register(router.Group("/resources"))
	h.Bookings.Register(router.Group("/bookings", h.Auth))

	httpSrv := &http.Server{
		Addr:    cfg.HTTP.Address,
		Handler: router,
	}

	errCh := make(chan error, 1)
	go func() { errCh <- httpSrv.ListenAndServe() }()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := httpSrv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown http server: %w", err)
		}
		return nil
	}
}
