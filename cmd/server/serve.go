package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/mmuslimabdulj/modex/internal/auth"
	"github.com/mmuslimabdulj/modex/internal/config"
	httpHandler "github.com/mmuslimabdulj/modex/internal/delivery/http"
	"github.com/mmuslimabdulj/modex/internal/delivery/ws"
	"github.com/mmuslimabdulj/modex/internal/fixture"
	"github.com/mmuslimabdulj/modex/internal/metrics"
	"github.com/mmuslimabdulj/modex/internal/selector"
	"github.com/spf13/cobra"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the web server (default command)",
	RunE: func(cmd *cobra.Command, args []string) error {
		return serve(cmd.Context(), cfg)
	},
}

func serve(ctx context.Context, cfg *config.Config) error {
	if ctx == nil {
		ctx = context.Background()
	}
	logger := cfg.NewLogger(os.Stderr)

	sources, err := fixture.Load(cfg.FixturesPath)
	if err != nil {
		return err
	}

	// Initialize dependencies
	hub := ws.NewHub(logger)
	sessions := auth.NewSessionStore(cfg.SessionTTL)
	sessions.Subscribe(hub)
	authenticator := auth.NewAuthenticator(sessions, auth.NewLocalProvider(), cfg.SignInTimeout, logger)

	var m *metrics.Metrics
	if cfg.MetricsEnabled {
		m = metrics.New()
		hub.SetGauge(m.SocketConnected)
		authenticator.SetObserver(m)
	}

	handler := httpHandler.NewHandler(httpHandler.Deps{
		Config:        cfg,
		Sessions:      sessions,
		Authenticator: authenticator,
		Selectors:     selector.NewStore(),
		Roster:        sources.Roster,
		Conversations: sources.Conversation,
		Hub:           hub,
		Metrics:       m,
		Logger:        logger,
	})

	hubCtx, stopHub := context.WithCancel(ctx)
	defer stopHub()
	go hub.Run(hubCtx)

	// Create server with timeouts
	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      handler.Routes(),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("modex running", "url", "http://localhost:"+cfg.Port)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	select {
	case <-quit:
	case err := <-errCh:
		if err != nil {
			return err
		}
	}
	logger.Info("shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		return err
	}
	stopHub()
	authenticator.Wait()

	logger.Info("server exited gracefully")
	return nil
}
