package main

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/ironwater12/japanese-learning-app/internal/delivery/httpapi"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the quiz JSON API for the browser front end",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		a, err := newApp(ctx, false)
		if err != nil {
			return err
		}
		defer a.Close()

		if a.cfg.Env == "production" {
			gin.SetMode(gin.ReleaseMode)
		}

		handler := httpapi.NewSessionHandler(a.quiz, a.logger)
		srv := &http.Server{
			Addr:              a.cfg.HTTP.Addr,
			Handler:           httpapi.NewRouter(handler, a.logger, a.cfg.HTTP.AllowOrigins),
			ReadHeaderTimeout: 10 * time.Second,
		}

		errCh := make(chan error, 1)
		go func() {
			a.logger.Info("http server listening", zap.String("addr", srv.Addr))
			if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				errCh <- err
			}
			close(errCh)
		}()

		select {
		case err := <-errCh:
			return err
		case <-ctx.Done():
		}

		a.logger.Info("shutdown signal received")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	},
}
