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

	"github.com/ensaf/contracts-service/internal/assistant"
	"github.com/ensaf/contracts-service/internal/config"
	"github.com/ensaf/contracts-service/internal/excel"
	"github.com/ensaf/contracts-service/internal/extract"
	httphandler "github.com/ensaf/contracts-service/internal/http"
	"github.com/ensaf/contracts-service/internal/knowledge"
	"github.com/ensaf/contracts-service/internal/llm"
	"github.com/ensaf/contracts-service/internal/logger"
	"github.com/ensaf/contracts-service/internal/pdf"
	"github.com/ensaf/contracts-service/internal/service"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	log := logger.New(cfg.Environment)

	kb, err := knowledge.Load(cfg.Assets.KnowledgeBasePath)
	if err != nil {
		log.Warn().Err(err).Str("path", cfg.Assets.KnowledgeBasePath).Msg("knowledge base unavailable, prompts will carry no reference material")
	}

	var pdfGenerator service.PDFGenerator
	if generator, err := pdf.NewGenerator(pdf.NewPathResolver(cfg.Assets.FontDir)); err != nil {
		log.Warn().Err(err).Str("font_dir", cfg.Assets.FontDir).Msg("pdf export disabled")
	} else {
		pdfGenerator = generator
	}

	if cfg.OpenAI.APIKey == "" {
		log.Warn().Msg("OPENAI_API_KEY is empty, explain and review requests will fail")
	}
	completer := llm.NewOpenAIClient(llm.Config{
		APIKey:  cfg.OpenAI.APIKey,
		BaseURL: cfg.OpenAI.BaseURL,
		Model:   cfg.OpenAI.Model,
		Timeout: cfg.OpenAI.Timeout,
	})

	contractService := service.NewContractService(pdfGenerator, excel.NewGenerator())
	assistService := service.NewAssistService(assistant.New(completer, kb, log), extract.NewExtractor())

	handler := httphandler.NewHandler(contractService, assistService, cfg.HTTP.UploadMaxBytes, log)
	router := httphandler.NewRouter(handler, log, cfg.Environment, cfg.HTTP.AllowedOrigins)

	addr := fmt.Sprintf("%s:%d", cfg.HTTP.Host, cfg.HTTP.Port)
	srv := &http.Server{
		Addr:              addr,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       60 * time.Second,
		WriteTimeout:      cfg.OpenAI.Timeout + 30*time.Second,
	}

	go func() {
		log.Info().Str("addr", addr).Msg("starting ensaf service")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error().Err(err).Msg("server stopped")
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info().Msg("shutting down")

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("forced shutdown")
		os.Exit(1)
	}
}
