package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"virtualdoctor/internal/config"
	"virtualdoctor/internal/core"
	"virtualdoctor/internal/dispatch"
	httpserver "virtualdoctor/internal/http"
	"virtualdoctor/internal/llm"
	"virtualdoctor/internal/session"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "config:", err)
		os.Exit(1)
	}

	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil {
		level = zerolog.InfoLevel
	}
	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
		Level(level).
		With().Timestamp().Logger()

	client, err := newClient(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to construct inference client")
	}

	store := session.NewStore()
	orc := core.NewOrchestrator(store, client, log)
	sim := dispatch.NewSimulator(log)

	e := echo.New()
	e.HideBanner = true
	srv := httpserver.NewServer(orc, client, sim, log)
	srv.Register(e)

	go func() {
		addr := ":" + cfg.Port
		log.Info().Str("addr", addr).Str("provider", cfg.LLMProvider).Msg("listening")
		if err := e.Start(addr); err != nil {
			log.Info().Err(err).Msg("server stopped")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("shutdown")
	}
}

func newClient(cfg *config.Config) (llm.Client, error) {
	switch cfg.LLMProvider {
	case "openai":
		return llm.NewOpenAIClient(cfg.OpenAIAPIKey, cfg.OpenAIChatModel, cfg.OpenAIVisionModel)
	default:
		return llm.NewGeminiClient(context.Background(), cfg.GeminiAPIKey,
			cfg.GeminiTextModel, cfg.GeminiMultimodalModel, cfg.GeminiSearchModel)
	}
}
