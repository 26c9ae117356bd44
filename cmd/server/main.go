// Package main runs the recommendation service: the scoring engine behind
// an HTTP API, with optional PostgreSQL/ClickHouse persistence.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"campaign-budget-engine/internal/auth"
	"campaign-budget-engine/internal/engine"
	"campaign-budget-engine/internal/httpx"
	"campaign-budget-engine/internal/storage"
	chstore "campaign-budget-engine/internal/storage/clickhouse"
	"campaign-budget-engine/internal/storage/memory"
	"campaign-budget-engine/internal/storage/migrations"
	pgstore "campaign-budget-engine/internal/storage/postgres"
)

// stores holds the three persistence backends. rowStore may be nil when
// no ClickHouse DSN is configured.
type stores struct {
	datasets storage.DatasetStore
	recs     storage.RecommendationStore
	rows     storage.PerformanceRowStore
}

func main() {
	// Load .env file if exists
	_ = godotenv.Load()

	// Parse flags (env vars as defaults)
	addr := flag.String("addr", envOr("ADDR", ":8080"), "HTTP listen address")
	postgresDSN := flag.String("postgres-dsn", os.Getenv("POSTGRES_DSN"), "PostgreSQL connection string")
	clickhouseDSN := flag.String("clickhouse-dsn", os.Getenv("CLICKHOUSE_DSN"), "ClickHouse connection string (optional)")
	jwtSecret := flag.String("jwt-secret", os.Getenv("JWT_SECRET"), "HMAC secret for bearer tokens (empty disables identity)")
	useMemory := flag.Bool("use-memory", false, "Use in-memory storage instead of PostgreSQL/ClickHouse")
	noPersist := flag.Bool("no-persist", false, "Disable persistence entirely (compute-only)")

	flag.Parse()

	// Setup logger
	logger := log.New(os.Stdout, "[server] ", log.LstdFlags|log.Lshortfile)

	if !*useMemory && !*noPersist && *postgresDSN == "" {
		logger.Fatal("--postgres-dsn is required (use --use-memory or --no-persist)")
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	st, cleanup, err := createStores(ctx, *postgresDSN, *clickhouseDSN, *useMemory, *noPersist)
	if err != nil {
		logger.Fatalf("Failed to create stores: %v", err)
	}
	defer cleanup()

	var persister *engine.Persister
	if st != nil {
		persister = engine.NewPersister(st.datasets, st.recs, st.rows, logger)
	}

	resolver := auth.NewResolver(*jwtSecret)
	if *jwtSecret == "" {
		logger.Println("No JWT secret configured; all requests run anonymously without persistence")
	}

	var datasets storage.DatasetStore
	var recs storage.RecommendationStore
	if st != nil {
		datasets = st.datasets
		recs = st.recs
	}
	server := httpx.NewServer(logger, engine.New(), persister, resolver, datasets, recs)

	srv := &http.Server{
		Addr:              *addr,
		Handler:           server.Router(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	// Handle shutdown signals
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		sig := <-sigCh
		logger.Printf("Received signal %v, shutting down...", sig)

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer shutdownCancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Printf("Shutdown error: %v", err)
		}
		cancel()
	}()

	logger.Printf("Listening on %s", *addr)
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logger.Fatalf("Server error: %v", err)
	}

	logger.Println("Shutdown complete")
}

// createStores wires the persistence backends. A nil result means
// persistence is disabled.
func createStores(ctx context.Context, postgresDSN, clickhouseDSN string, useMemory, noPersist bool) (*stores, func(), error) {
	if noPersist {
		return nil, func() {}, nil
	}

	if useMemory {
		return &stores{
			datasets: memory.NewDatasetStore(),
			recs:     memory.NewRecommendationStore(),
			rows:     memory.NewPerformanceRowStore(),
		}, func() {}, nil
	}

	// PostgreSQL
	pool, err := pgstore.NewPool(ctx, postgresDSN)
	if err != nil {
		return nil, nil, fmt.Errorf("connect to postgres: %w", err)
	}
	if err := migrations.RunPostgresMigrations(ctx, pool); err != nil {
		pool.Close()
		return nil, nil, fmt.Errorf("run postgres migrations: %w", err)
	}

	st := &stores{
		datasets: pgstore.NewDatasetStore(pool),
		recs:     pgstore.NewRecommendationStore(pool),
	}
	cleanup := func() { pool.Close() }

	// ClickHouse is optional; without it the raw-row analytics copy is skipped.
	if clickhouseDSN != "" {
		conn, err := migrations.RunClickhouseMigrations(ctx, clickhouseDSN)
		if err != nil {
			pool.Close()
			return nil, nil, fmt.Errorf("run clickhouse migrations: %w", err)
		}
		st.rows = chstore.NewPerformanceRowStore(conn)
		cleanup = func() {
			conn.Close()
			pool.Close()
		}
	}

	return st, cleanup, nil
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
