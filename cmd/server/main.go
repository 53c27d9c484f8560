package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"sladrehank/internal/api"
	"sladrehank/internal/config"
	"sladrehank/internal/engine"
	"sladrehank/internal/insight"
	"sladrehank/internal/models"
	"sladrehank/internal/ssb"
)

func main() {
	cfgFile := flag.String("config", "", "path to config file (optional)")
	flag.Parse()

	cfg, err := config.Load(*cfgFile)
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.CORS())
	e.Use(middleware.Recover())
	e.Use(middleware.Logger())

	client := ssb.NewClientWithBaseURL(cfg.SSBURL, cfg.HTTPTimeout())
	store := engine.NewStore(func(ctx context.Context) ([]models.Record, error) {
		ds, err := client.FetchDataset(ctx)
		if err != nil {
			return nil, err
		}
		return engine.Transform(ds)
	}, cfg.CacheTTL())

	gen := insight.NewGenerator(insight.NewGeminiClient(cfg.GeminiModel))

	h := api.NewHandler(store, gen, cfg.GeminiAPIKey)
	h.RegisterRoutes(e)

	// Warm the cache in the background so the first page load does not
	// wait on SSB. The server is live immediately; a failed warm fetch is
	// retried on the next request.
	go func() {
		log.Println("BACKGROUND: Fetching SSB table 08517...")
		t0 := time.Now()

		ctx, cancel := context.WithTimeout(context.Background(), cfg.HTTPTimeout())
		defer cancel()

		table, err := store.Table(ctx)
		if err != nil {
			log.Printf("BACKGROUND: Warm fetch failed (will retry on request): %v", err)
			return
		}
		log.Printf("BACKGROUND: Loaded %d records in %v.", len(table), time.Since(t0))
	}()

	log.Printf("Server ready on port %d (data loading in background...)", cfg.Port)
	e.Logger.Fatal(e.Start(fmt.Sprintf(":%d", cfg.Port)))
}
