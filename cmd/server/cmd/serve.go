package cmd

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/tokoclient/backend/config"
	httpDelivery "github.com/tokoclient/backend/internal/delivery/http"
	"github.com/tokoclient/backend/internal/infrastructure/tokopedia"
	"github.com/tokoclient/backend/internal/render"
	"github.com/tokoclient/backend/internal/usecase"
	"github.com/tokoclient/backend/internal/version"
	"github.com/tokoclient/backend/pkg/logger"
)

const readHeaderTimeout = 10 * time.Second

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP server",
	RunE:  runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	log := logger.New(cfg.Log.Level, cfg.Log.Format)
	build := version.BuildID()

	client := tokopedia.NewClient(tokopedia.ClientConfig{
		Endpoint:  cfg.Upstream.Endpoint,
		UserAgent: cfg.Upstream.UserAgent,
		Timeout:   cfg.Upstream.Timeout,
		RateLimit: cfg.Upstream.RateLimit,
		Burst:     cfg.Upstream.Burst,
	}, log)

	catalog := usecase.NewCatalogService(client, log)
	handler := httpDelivery.NewHandler(catalog, render.NewRenderer(render.Templates()), build, log)
	router := httpDelivery.SetupRouter(cfg, handler, log)

	listener, err := net.Listen("tcp", cfg.Server.Addr())
	if err != nil {
		return fmt.Errorf("binding %s: %w", cfg.Server.Addr(), err)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, version.Description(build))
	fmt.Fprintf(out, "Server started at %s\n", listener.Addr())

	log.Info().
		Str("addr", listener.Addr().String()).
		Str("environment", cfg.Server.Environment).
		Str("upstream", cfg.Upstream.Endpoint).
		Dur("upstream_timeout", cfg.Upstream.Timeout).
		Float64("rate_limit", cfg.Upstream.RateLimit).
		Msg("starting server")

	server := &http.Server{
		Handler:           router,
		ReadHeaderTimeout: readHeaderTimeout,
	}

	serveErr := make(chan error, 1)
	go func() {
		if err := server.Serve(listener); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(quit)

	select {
	case err := <-serveErr:
		if err != nil {
			return fmt.Errorf("serving: %w", err)
		}
		return nil
	case sig := <-quit:
		log.Info().Str("signal", sig.String()).Msg("shutting down server")
	}

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		return fmt.Errorf("shutting down server: %w", err)
	}

	log.Info().Msg("server stopped")
	return nil
}
