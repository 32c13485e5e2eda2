// README: Entry point; loads config, wires the provider and journal, starts the HTTP server.
package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"travelplanner/internal/ai"
	"travelplanner/internal/config"
	httptransport "travelplanner/internal/http"
	"travelplanner/internal/infra"
	"travelplanner/internal/journal"
	"travelplanner/internal/planner"
)

func main() {
	config.LoadDotEnv()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var generator ai.Generator
	switch cfg.Provider.Name {
	case ai.ProviderOpenAI:
		p, err := ai.NewOpenAIProvider(cfg.Provider.OpenAIKey, cfg.Provider.OpenAIModel, cfg.Provider.OpenAIURL, nil)
		if err != nil {
			log.Fatalf("openai init: %v", err)
		}
		generator = p
	default:
		p, err := ai.NewGeminiProvider(ctx, cfg.Provider.GeminiKey, cfg.Provider.GeminiModel, cfg.Provider.Temperature)
		if err != nil {
			log.Fatalf("gemini init: %v", err)
		}
		defer p.Close()
		generator = p
	}

	generator = ai.WithRateLimit(generator, cfg.Provider.RPS, cfg.Provider.Burst)

	var recorder planner.Recorder
	if cfg.DB.DSN != "" {
		dbPool, err := infra.NewDB(ctx, cfg.DB.DSN)
		if err != nil {
			log.Fatal(err)
		}
		defer dbPool.Close()
		recorder = journal.NewStore(dbPool)
	} else {
		log.Printf("PLANNER_DB_DSN not set; plan journal disabled")
	}

	handler := httptransport.NewServer(httptransport.ServerDeps{
		Planner:         planner.NewService(generator, recorder),
		ProviderTimeout: cfg.Provider.Timeout,
		CORSOrigins:     cfg.HTTP.CORSOrigins,
	})

	server := &http.Server{
		Addr:              cfg.HTTP.Addr,
		Handler:           handler.Routes(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			log.Printf("shutdown: %v", err)
		}
	}()

	log.Printf("planner api listening on %s (provider=%s)", cfg.HTTP.Addr, cfg.Provider.Name)
	if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Fatal(err)
	}
}
