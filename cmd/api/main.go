package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rikki233752/blink-script-ai-sub000/internal/api"
	"github.com/rikki233752/blink-script-ai-sub000/internal/cache"
	"github.com/rikki233752/blink-script-ai-sub000/internal/comprehensive"
	"github.com/rikki233752/blink-script-ai-sub000/internal/config"
	"github.com/rikki233752/blink-script-ai-sub000/internal/dataset"
	"github.com/rikki233752/blink-script-ai-sub000/internal/logger"
	"github.com/rikki233752/blink-script-ai-sub000/internal/processor"
	"github.com/rikki233752/blink-script-ai-sub000/internal/recording"
	"github.com/rikki233752/blink-script-ai-sub000/internal/transcription"
)

func main() {
	// loads .env before the logger reads ENVIRONMENT and LOG_LEVEL
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "failed to load configuration:", err)
		os.Exit(1)
	}

	log := logger.New()
	log.WithField("service", "call-insights").
		WithField("port", cfg.Port).
		WithField("environment", cfg.Environment).
		Info("starting service")

	var store cache.Cache
	if cfg.RedisURL != "" {
		rc, err := cache.NewRedisCache(cfg.RedisURL, log)
		if err != nil {
			log.WithError(err).Warn("redis unavailable, falling back to in-memory cache")
		} else {
			store = rc
		}
	}
	if store == nil {
		store = cache.NewLocalCache(time.Minute, log)
	}
	defer store.Close()

	if cfg.DatasetPath != "" {
		records, err := dataset.Load(cfg.DatasetPath)
		if err != nil {
			log.WithError(err).WithField("dataset_path", cfg.DatasetPath).Warn("dataset not loaded; /v1/demo will fail")
		} else {
			s := dataset.Summarize(records)
			log.WithField("total_calls", s.TotalCalls).WithField("with_recording", s.WithRecording).Info("dataset summary loaded")
		}
	}

	delay := cfg.TranscribeDelay
	if delay == 0 {
		delay = -1
	}
	proc := processor.New(processor.Options{
		Transcriber: transcription.New(transcription.Options{
			APIKey: cfg.DeepgramAPIKey,
			URL:    cfg.DeepgramURL,
			Model:  cfg.DeepgramModel,
			Mock:   cfg.MockTranscribe,
			Logger: log,
		}),
		Downloader: recording.New(recording.Options{Token: cfg.RingbaAPIToken, Logger: log}),
		Bundle: comprehensive.New(comprehensive.Options{
			GatewayURL: cfg.LLMGatewayURL,
			APIKey:     cfg.LLMAPIKey,
			Model:      cfg.LLMModel,
			Mock:       cfg.MockLLM,
			Logger:     log,
		}),
		Cache:    store,
		CacheTTL: cfg.CacheTTL,
		Delay:    delay,
		Logger:   log,
	})

	h := api.New(api.Options{
		Processor:      proc,
		DatasetPath:    cfg.DatasetPath,
		AllowedOrigins: cfg.AllowedOrigins,
		Logger:         log,
	})

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      h.Router(),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 5 * time.Minute,
		IdleTimeout:  120 * time.Second,
	}

	go func() {
		log.WithField("addr", srv.Addr).Info("listening")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.WithError(err).Fatal("server terminated")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down server")
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.WithError(err).Error("server forced to shutdown")
	}
	log.Info("server stopped")
}
