// cmd/worker-manager/main.go
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/camunda/zeebe/clients/go/v8/pkg/worker"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	awsclients "tribunal-workers/internal/common/aws"
	"tribunal-workers/internal/common/camunda"
	"tribunal-workers/internal/common/config"
	"tribunal-workers/internal/common/database"
	"tribunal-workers/internal/common/logger"
	"tribunal-workers/internal/common/observability"
	"tribunal-workers/internal/decisionnotice"
	"tribunal-workers/internal/decisionnotice/answers"
	"tribunal-workers/internal/workers"
	"tribunal-workers/pkg/registry"

	// Decision notice workers (3)
	dme "tribunal-workers/internal/workers/decision-notice/decision-notice-mid-event"
	pdn "tribunal-workers/internal/workers/decision-notice/preview-decision-notice"
	vdn "tribunal-workers/internal/workers/decision-notice/validate-decision-notice"

	// Data access workers (2)
	ido "tribunal-workers/internal/workers/data-access/index-decision-outcome"
	rdo "tribunal-workers/internal/workers/data-access/record-decision-outcome"

	// Communication workers (1)
	ncd "tribunal-workers/internal/workers/communication/notify-catalog-defect"
)

// storeRetry is the backoff used while the stores come up alongside the
// workers.
var storeRetry = &camunda.RetryConfig{
	MaxRetries: 15,
	BaseDelay:  2 * time.Second,
	MaxDelay:   30 * time.Second,
}

func main() {
	bootLog := logger.New("info", "console")
	defer bootLog.Sync()

	cfg, err := config.Load()
	if err != nil {
		bootLog.Fatal("config load failed", zap.Error(err))
	}

	zapLog := logger.New(cfg.Logging.Level, cfg.Logging.Format)
	defer zapLog.Sync()
	log := logger.NewZapAdapter(zapLog).WithFields(map[string]interface{}{
		"service": cfg.App.Name,
		"version": cfg.App.Version,
	})
	log.Info("starting worker manager", map[string]interface{}{"environment": cfg.App.Environment})

	obs := observability.New("worker-manager", log)
	defer obs.Shutdown()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// --- Zeebe ---
	zeebe, err := camunda.Connect(ctx, camunda.ConfigFrom(cfg.Camunda), log)
	if err != nil {
		zapLog.Fatal("zeebe connection failed", zap.Error(err))
	}
	defer zeebe.Close()

	// --- Stores ---
	pg, err := database.NewPostgres(cfg.Database.Postgres)
	if err != nil {
		zapLog.Fatal("postgres client failed", zap.Error(err))
	}
	defer pg.Close()
	if err := camunda.WithBackoff(ctx, storeRetry, log, "postgres connection", pg.Ping); err != nil {
		zapLog.Fatal("postgres unavailable", zap.Error(err))
	}
	if err := database.MigrateAuditTable(ctx, pg.DB, cfg.DecisionNotice.AuditTable); err != nil {
		zapLog.Fatal("audit table migration failed", zap.Error(err))
	}

	esClient, err := database.NewElasticsearch(cfg.Database.Elasticsearch)
	if err != nil {
		zapLog.Fatal("elasticsearch client failed", zap.Error(err))
	}
	if err := camunda.WithBackoff(ctx, storeRetry, log, "elasticsearch connection", esClient.Ping); err != nil {
		zapLog.Fatal("elasticsearch unavailable", zap.Error(err))
	}
	if err := database.EnsureIndex(ctx, esClient.Client, cfg.DecisionNotice.OutcomeIndex, database.OutcomeIndexMapping); err != nil {
		zapLog.Fatal("outcome index setup failed", zap.Error(err))
	}

	redisClient, err := database.NewRedis(cfg.Database.Redis)
	if err != nil {
		zapLog.Fatal("redis client failed", zap.Error(err))
	}
	defer redisClient.Close()
	if err := camunda.WithBackoff(ctx, storeRetry, log, "redis connection", redisClient.Ping); err != nil {
		zapLog.Fatal("redis unavailable", zap.Error(err))
	}
	guard := database.NewGuard(redisClient.Client, "decision-outcome", config.GetDuration(cfg.DecisionNotice.AuditGuardTTL))
	log.Info("stores connected", nil)

	// --- AWS ---
	awsCfg, err := awsclients.LoadConfig(ctx, cfg.Alerts.Region)
	if err != nil {
		zapLog.Fatal("aws config failed", zap.Error(err))
	}

	// --- Rule engine ---
	engine, err := buildEngine(cfg.DecisionNotice)
	if err != nil {
		zapLog.Fatal("rule engine failed", zap.Error(err))
	}

	checkRegistry(cfg.Registry.Path, log)

	// --- Workers ---
	client := zeebe.GetClient()
	start := func(taskType string, handler camunda.JobHandler) worker.JobWorker {
		return camunda.StartWorker(client, taskType, config.GetWorkerConfig(cfg, taskType), handler, log)
	}
	timeout := func(taskType string) time.Duration {
		return config.GetDuration(config.GetWorkerConfig(cfg, taskType).Timeout)
	}

	notifyCfg := ncd.ConfigFrom(cfg.Alerts)
	notifyCfg.Timeout = timeout(ncd.TaskType)
	if err := notifyCfg.Validate(); err != nil {
		zapLog.Fatal("catalog defect alerts misconfigured", zap.Error(err))
	}

	recordCfg := rdo.LoadConfig(cfg.DecisionNotice.AuditTable)
	recordCfg.Timeout = timeout(rdo.TaskType)
	indexCfg := ido.LoadConfig(cfg.DecisionNotice.OutcomeIndex)
	indexCfg.Timeout = timeout(ido.TaskType)

	jobWorkers := []worker.JobWorker{
		start(dme.TaskType, dme.NewHandler(&dme.Config{Timeout: timeout(dme.TaskType)}, engine, obs, log)),
		start(vdn.TaskType, vdn.NewHandler(&vdn.Config{Timeout: timeout(vdn.TaskType)}, engine, obs, log)),
		start(pdn.TaskType, pdn.NewHandler(&pdn.Config{Timeout: timeout(pdn.TaskType)}, engine, obs, log)),
		start(rdo.TaskType, rdo.NewHandler(recordCfg, pg.DB, guard, log)),
		start(ido.TaskType, ido.NewHandler(indexCfg, esClient.Client, log)),
		start(ncd.TaskType, ncd.NewHandler(notifyCfg, ncd.ServiceDependencies{
			SNS:    awsclients.NewSNSClient(awsCfg),
			SES:    awsclients.NewSESClient(awsCfg),
			Logger: log,
		})),
	}
	log.Info("workers registered", map[string]interface{}{"count": len(jobWorkers)})

	// --- Health & Metrics Server ---
	server := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.App.HTTPPort),
		Handler:           routes(zeebe, pg, esClient, redisClient),
		ReadHeaderTimeout: 5 * time.Second,
	}
	go func() {
		log.Info("health/metrics server listening", map[string]interface{}{"addr": server.Addr})
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("health/metrics server failed", map[string]interface{}{"error": err.Error()})
		}
	}()

	// --- Graceful Shutdown ---
	<-ctx.Done()
	log.Info("shutdown signal received, stopping workers", nil)

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	camunda.StopWorkers(jobWorkers)
	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error("health/metrics server shutdown failed", map[string]interface{}{"error": err.Error()})
	}
	log.Info("worker manager stopped", nil)
}

// buildEngine enables the configured benefit catalogs.
func buildEngine(cfg config.DecisionNoticeConfig) (*decisionnotice.Engine, error) {
	benefits := make([]answers.Benefit, 0, len(cfg.Benefits))
	for _, name := range cfg.Benefits {
		b, ok := answers.ParseBenefit(strings.ToUpper(name))
		if !ok {
			return nil, fmt.Errorf("unsupported benefit %q", name)
		}
		benefits = append(benefits, b)
	}
	return decisionnotice.NewEngine(decisionnotice.WithBenefits(benefits...))
}

// checkRegistry warns when the activity catalogue has drifted from the
// registered workers. A missing catalogue does not stop the manager.
func checkRegistry(path string, log logger.Logger) {
	reg, err := registry.LoadRegistry(path)
	if err != nil {
		log.Warn("activity registry unavailable", map[string]interface{}{"path": path, "error": err.Error()})
		return
	}
	if err := workers.CheckRegistry(reg); err != nil {
		log.Warn("activity registry out of date, run registry-updater sync", map[string]interface{}{
			"path":  path,
			"error": err.Error(),
		})
	}
}

type pinger interface {
	Ping(ctx context.Context) error
}

func routes(zeebe *camunda.Client, pg, es, redis pinger) http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		writeStatus(w, http.StatusOK, map[string]string{
			"status": "healthy",
			"time":   time.Now().Format(time.RFC3339),
		})
	})
	mux.HandleFunc("/ready", func(w http.ResponseWriter, r *http.Request) {
		checks := map[string]string{}
		status := http.StatusOK
		ping := func(name string, check func(context.Context) error) {
			if err := check(r.Context()); err != nil {
				checks[name] = err.Error()
				status = http.StatusServiceUnavailable
				return
			}
			checks[name] = "ok"
		}
		ping("zeebe", zeebe.HealthCheck)
		ping("postgres", pg.Ping)
		ping("elasticsearch", es.Ping)
		ping("redis", redis.Ping)

		checks["status"] = "ready"
		if status != http.StatusOK {
			checks["status"] = "not ready"
		}
		writeStatus(w, status, checks)
	})
	mux.Handle("/metrics", promhttp.Handler())
	return mux
}

func writeStatus(w http.ResponseWriter, status int, body map[string]string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}
