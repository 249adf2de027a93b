package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"video-summarizer/infrastructure/clients/gemini"
	"video-summarizer/infrastructure/clients/transcript"
	"video-summarizer/infrastructure/configuration"
	"video-summarizer/infrastructure/logger"
	httpHandler "video-summarizer/interfaces/http"
	"video-summarizer/server"
	"video-summarizer/usecase"

	"golang.org/x/sync/errgroup"
)

var httpServer *http.Server

func recoverPanic() {
	if err := recover(); err != nil {
		logger.GetLogger().WithField("error", err).Error("Application panic recovered")
	}
}

func main() {
	defer recoverPanic()
	ctx := context.Background()
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	interrupt := make(chan os.Signal, 1)
	signal.Notify(interrupt, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(interrupt)

	g, ctx := errgroup.WithContext(ctx)

	// Load env from files (non-destructive; OS env still has precedence)
	configuration.LoadEnvFromFile("config.env", ".env")
	for _, envFile := range []string{"config.env", ".env"} {
		if _, err := os.Stat(envFile); err == nil {
			logger.GetLogger().WithField("file", envFile).Info("Loaded environment file")
		}
	}

	app := configuration.C.App

	geminiConfig, err := configuration.GetGeminiConfig()
	if err != nil {
		logger.GetLogger().WithField("error", err).Fatal("Gemini configuration is incomplete")
	}
	transcriptConfig := configuration.GetTranscriptConfig()
	logger.GetLogger().WithFields(map[string]interface{}{
		"model":     geminiConfig.Model,
		"languages": transcriptConfig.Languages,
	}).Info("Loaded summarizer configuration")

	transcriptClient := transcript.NewTranscriptClient(&transcript.Config{})

	summarizer, err := gemini.NewGeminiClient(ctx, &gemini.Config{
		APIKey:     geminiConfig.APIKey,
		Model:      geminiConfig.Model,
		ListModels: geminiConfig.ListModels,
	})
	if err != nil {
		logger.GetLogger().WithField("error", err).Fatal("Gemini client initialization failed")
	}

	summaryUseCase := usecase.NewSummaryUseCase(transcriptClient, summarizer, transcriptConfig.Languages)
	summaryHandler := httpHandler.NewSummaryHandler(summaryUseCase)
	healthHandler := httpHandler.NewHealthHandler()

	router := server.InitiateRouter(summaryHandler, healthHandler)

	port := app.Port
	logger.GetLogger().WithFields(map[string]interface{}{"port": port, "tls": app.TLSEnabled}).Info("Starting application")
	g.Go(func() error {
		httpServer = &http.Server{
			Addr:    fmt.Sprintf(":%d", port),
			Handler: router,
			// Transcript scraping and Gemini calls can be slow; leave the
			// request timeouts unset.
			ReadTimeout:  0,
			WriteTimeout: 0,
		}
		if app.TLSEnabled {
			cert := app.TLSCertFile
			key := app.TLSKeyFile
			if cert == "" || key == "" {
				logger.GetLogger().Error("TLS enabled but cert or key path empty; falling back to HTTP")
				if err := httpServer.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
					return err
				}
				return nil
			}
			logger.GetLogger().WithFields(map[string]interface{}{"cert": cert, "key": key}).Info("Serving HTTPS")
			if err := httpServer.ListenAndServeTLS(cert, key); !errors.Is(err, http.ErrServerClosed) {
				return err
			}
			return nil
		}
		if err := httpServer.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	select {
	case <-interrupt:
		logger.GetLogger().Info("Application shutdown requested")
	case <-ctx.Done():
	}

	cancel()
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	if httpServer != nil {
		_ = httpServer.Shutdown(shutdownCtx)
	}

	err = g.Wait()
	if err != nil {
		logger.GetLogger().WithField("error", err).Error("Server returned an error")
		os.Exit(2)
	}
}
