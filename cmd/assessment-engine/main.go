// cmd/assessment-engine/main.go
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	_ "net/http/pprof"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"assessment-engine/internal/common/config"
	"assessment-engine/internal/common/database"
	"assessment-engine/internal/common/errors"
	"assessment-engine/internal/common/logger"
	"assessment-engine/internal/common/observability"
	"assessment-engine/internal/engine/pipeline"
	"assessment-engine/internal/notify"
	"assessment-engine/internal/search"
	"assessment-engine/internal/service"
	catalogstore "assessment-engine/internal/store/catalog"
	"assessment-engine/internal/store/results"
	"assessment-engine/pkg/catalogfile"
)

const maxBundleBytes = 1 << 20

// retryWithBackoff attempts to execute a function with exponential backoff
func retryWithBackoff(operation func() error, maxRetries int, initialDelay time.Duration, log *zap.Logger, operationName string) error {
	var err error
	delay := initialDelay

	for i := 0; i < maxRetries; i++ {
		err = operation()
		if err == nil {
			return nil
		}

		if i < maxRetries-1 {
			log.Warn(fmt.Sprintf("%s failed, retrying...", operationName),
				zap.Error(err),
				zap.Int("attempt", i+1),
				zap.Int("maxRetries", maxRetries),
				zap.Duration("nextRetryIn", delay),
			)
			time.Sleep(delay)
			delay *= 2 // Exponential backoff
		}
	}

	return fmt.Errorf("%s failed after %d attempts: %w", operationName, maxRetries, err)
}

func main() {
	zapLog := logger.New("info", "console")
	defer zapLog.Sync()

	log := logger.NewZapAdapter(zapLog)

	zapLog.Info("Starting assessment engine...")

	cfg, err := config.Load()
	if err != nil {
		zapLog.Fatal("config load failed", zap.Error(err))
	}

	obs := observability.New(cfg.App.Name, os.Getenv("JAEGER_ENDPOINT"))
	defer obs.Shutdown()

	ctx := context.Background()

	// --- Init PostgreSQL with retry ---
	var pg *database.PostgresClient
	err = retryWithBackoff(func() error {
		var err error
		pg, err = database.NewPostgres(cfg.Database.Postgres)
		if err != nil {
			return err
		}
		return pg.Ping(ctx)
	}, 15, 2*time.Second, zapLog, "PostgreSQL connection")

	if err != nil {
		zapLog.Fatal("postgres failed after retries", zap.Error(err))
	}
	defer pg.Close()
	zapLog.Info("PostgreSQL connected successfully")

	// --- Init Elasticsearch with retry ---
	var esClient *database.ElasticsearchClient
	err = retryWithBackoff(func() error {
		var err error
		esClient, err = database.NewElasticsearch(cfg.Database.Elasticsearch)
		if err != nil {
			return err
		}
		return esClient.Ping()
	}, 15, 2*time.Second, zapLog, "Elasticsearch connection")

	if err != nil {
		zapLog.Fatal("elasticsearch failed after retries", zap.Error(err))
	}
	if err := esClient.EnsureResultIndex(ctx, cfg.Database.Elasticsearch.Index); err != nil {
		zapLog.Fatal("elasticsearch index setup failed", zap.Error(err))
	}
	zapLog.Info("Elasticsearch connected successfully", zap.String("index", cfg.Database.Elasticsearch.Index))

	// --- Init Redis with retry ---
	var redis *database.RedisClient
	err = retryWithBackoff(func() error {
		var err error
		redis, err = database.NewRedis(cfg.Database.Redis)
		if err != nil {
			return err
		}
		return redis.Ping(ctx)
	}, 10, 2*time.Second, zapLog, "Redis connection")

	if err != nil {
		zapLog.Fatal("redis failed after retries", zap.Error(err))
	}
	defer redis.Close()
	zapLog.Info("Redis connected successfully")

	// --- Build the scoring engine ---
	// Bank verification runs inside New; a corrupt static table must stop
	// the process before any session is accepted.
	engine, err := pipeline.New(cfg.Scoring.QuestionLimits, cfg.Scoring.TopRecommendations)
	if err != nil {
		zapLog.Fatal("question bank verification failed", zap.Error(err))
	}
	zapLog.Info("Scoring engine initialized")

	// --- Wire the service ---
	resultStore := results.NewStore(pg.DB, redis.Client, cfg.Scoring.CacheTTL(), log)
	indexer := search.NewIndexer(esClient.Client, cfg.Database.Elasticsearch.Index, log)

	var catalog service.CatalogLoader
	if cfg.Scoring.CatalogFile != "" {
		defs, err := catalogfile.Load(cfg.Scoring.CatalogFile)
		if err != nil {
			zapLog.Fatal("catalog file load failed", zap.Error(err), zap.String("path", cfg.Scoring.CatalogFile))
		}
		catalog = catalogfile.NewStatic(defs)
		zapLog.Info("Career catalog loaded from file", zap.String("path", cfg.Scoring.CatalogFile), zap.Int("careers", len(defs)))
	} else {
		catalog = catalogstore.NewStore(pg.DB, redis.Client, cfg.Scoring.CacheTTL(), log)
	}

	var notifier service.CompletionNotifier
	if cfg.Notifications.Email.Enabled || cfg.Notifications.SMS.Enabled {
		n, err := notify.NewNotifier(cfg.Notifications, log)
		if err != nil {
			zapLog.Fatal("notifier initialization failed", zap.Error(err))
		}
		notifier = n
	}

	svc := service.New(engine, catalog, resultStore, indexer, notifier, obs, log)

	// --- HTTP surface ---
	http.HandleFunc("/v1/assessments", handleScore(svc, log))
	http.HandleFunc("/v1/assessments/", handleGetResult(resultStore, log))
	http.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(map[string]string{
			"status": "healthy",
			"time":   time.Now().Format(time.RFC3339),
		})
	})
	http.HandleFunc("/ready", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(map[string]string{
			"status": "ready",
			"time":   time.Now().Format(time.RFC3339),
		})
	})
	http.Handle("/metrics", promhttp.Handler())

	srv := &http.Server{Addr: cfg.HTTP.Address}
	go func() {
		zapLog.Info("HTTP server listening", zap.String("address", cfg.HTTP.Address))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			zapLog.Fatal("HTTP server failed", zap.Error(err))
		}
	}()

	// --- Graceful Shutdown ---
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	<-sigCh

	zapLog.Info("Shutdown signal received, stopping...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		zapLog.Error("HTTP server shutdown failed", zap.Error(err))
	}

	zapLog.Info("Assessment engine stopped gracefully")
}

// handleScore accepts one bundle per request and returns the full result.
func handleScore(svc *service.Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			writeError(w, http.StatusMethodNotAllowed, "METHOD_NOT_ALLOWED", "use POST")
			return
		}

		raw, err := io.ReadAll(io.LimitReader(r.Body, maxBundleBytes))
		if err != nil {
			writeError(w, http.StatusBadRequest, "READ_FAILED", err.Error())
			return
		}

		recipient := notify.Recipient{
			Email: r.Header.Get("X-Notify-Email"),
			Phone: r.Header.Get("X-Notify-Phone"),
		}

		result, err := svc.ScoreRaw(r.Context(), raw, recipient)
		if err != nil {
			status := http.StatusBadRequest
			if errors.IsRetryable(err) {
				status = http.StatusServiceUnavailable
			}
			writeError(w, status, string(errors.CodeOf(err)), err.Error())
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		if err := json.NewEncoder(w).Encode(result); err != nil {
			log.Error("response encoding failed", map[string]interface{}{"error": err.Error()})
		}
	}
}

// handleGetResult serves a previously scored session's result.
func handleGetResult(store *results.Store, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			writeError(w, http.StatusMethodNotAllowed, "METHOD_NOT_ALLOWED", "use GET")
			return
		}

		sessionID := strings.TrimPrefix(r.URL.Path, "/v1/assessments/")
		if sessionID == "" || strings.Contains(sessionID, "/") {
			writeError(w, http.StatusBadRequest, "BAD_SESSION_ID", "expected /v1/assessments/{sessionId}")
			return
		}

		result, err := store.GetBySession(r.Context(), sessionID)
		if err != nil {
			if errors.CodeOf(err) == errors.ErrCodeResultNotFound {
				writeError(w, http.StatusNotFound, string(errors.ErrCodeResultNotFound), "no result for session")
				return
			}
			writeError(w, http.StatusInternalServerError, string(errors.CodeOf(err)), err.Error())
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		if err := json.NewEncoder(w).Encode(result); err != nil {
			log.Error("response encoding failed", map[string]interface{}{"error": err.Error()})
		}
	}
}

func writeError(w http.ResponseWriter, status int, code, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]string{
		"errorCode": code,
		"message":   message,
	})
}
