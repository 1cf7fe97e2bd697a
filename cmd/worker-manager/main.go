// cmd/worker-manager/main.go
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	_ "net/http/pprof"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/camunda/zeebe/clients/go/v8/pkg/entities"
	"github.com/camunda/zeebe/clients/go/v8/pkg/worker"
	"github.com/camunda/zeebe/clients/go/v8/pkg/zbc"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"internmatch/internal/common/aws"
	"internmatch/internal/common/config"
	"internmatch/internal/common/database"
	"internmatch/internal/common/logger"
	"internmatch/internal/common/observability"
	"internmatch/internal/engine/dispatch"
	"internmatch/internal/stores"
	"internmatch/pkg/registry"

	ce "internmatch/internal/workers/matching/check-eligibility"
	sp "internmatch/internal/workers/matching/score-posting"
	dn "internmatch/internal/workers/notification/dispatch-notifications"
)

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
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config load failed: %v\n", err)
		os.Exit(1)
	}

	zapLog := logger.New(cfg.Logging.Level, cfg.Logging.Format)
	defer zapLog.Sync()

	log := logger.NewZapAdapter(zapLog)

	zapLog.Info("Starting worker manager...")

	obs := observability.New("worker-manager")
	defer obs.Shutdown()

	ctx := context.Background()

	// --- Init Zeebe Client with retry ---
	var zeebeClient zbc.Client
	err = retryWithBackoff(func() error {
		var err error
		zeebeClient, err = zbc.NewClient(&zbc.ClientConfig{
			GatewayAddress:         cfg.Camunda.BrokerAddress,
			UsePlaintextConnection: true,
		})
		return err
	}, 10, 2*time.Second, zapLog, "Zeebe client initialization")

	if err != nil {
		zapLog.Fatal("zeebe client failed after retries", zap.Error(err))
	}
	zapLog.Info("Zeebe client connected successfully")

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
		return esClient.Ping(ctx)
	}, 15, 2*time.Second, zapLog, "Elasticsearch connection")

	if err != nil {
		zapLog.Fatal("elasticsearch failed after retries", zap.Error(err))
	}
	zapLog.Info("Elasticsearch connected successfully")

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

	// --- Init Stores ---
	cacheTTL := time.Duration(cfg.Matching.ProfileCacheTTL) * time.Second
	candidateStore := stores.NewCandidateStore(pg.DB, redis.Client, cacheTTL, log)
	postingStore := stores.NewPostingStore(pg.DB, log)
	searchStore := stores.NewSearchStore(esClient.Client, esClient.PostingIndex, log)

	// --- Init Outbound Transports ---
	var mailer dispatch.Mailer
	if cfg.Notifications.Email.Enabled {
		sesMailer, err := aws.NewSESMailer(ctx, cfg.Notifications.AWS.Region, cfg.Notifications.Email.FromEmail)
		if err != nil {
			zapLog.Fatal("failed to create SES mailer", zap.Error(err))
		}
		mailer = sesMailer
	} else {
		mailer = noopMailer{log: log}
	}

	var publisher dn.SummaryPublisher
	if cfg.Notifications.SNS.Enabled {
		snsPublisher, err := aws.NewSNSPublisher(ctx, cfg.Notifications.AWS.Region, cfg.Notifications.SNS.TopicARN)
		if err != nil {
			zapLog.Fatal("failed to create SNS publisher", zap.Error(err))
		}
		publisher = snsPublisher
	}

	dispatcher := dispatch.New(mailer, dispatch.Config{
		MinScore:      cfg.Matching.MinScore,
		MaxRecipients: cfg.Matching.MaxRecipients,
		ScoreWorkers:  cfg.Matching.ScoreWorkers,
		SendDelay:     config.GetDuration(cfg.Notifications.SendDelayMs),
	}, log)

	// --- Load Task Registry ---
	reg, err := registry.LoadRegistry("configs/task-registry.json")
	if err != nil {
		zapLog.Fatal("failed to load task registry", zap.Error(err))
	}
	for _, taskType := range []string{sp.TaskType, ce.TaskType, dn.TaskType} {
		if _, err := reg.FindTask(taskType); err != nil {
			zapLog.Fatal("task registry is missing a worker definition", zap.Error(err))
		}
	}
	dnTask, _ := reg.FindTask(dn.TaskType)
	zapLog.Info("Task registry loaded", zap.String("version", reg.Version), zap.Int("tasks", len(reg.Tasks)))

	// --- Register Workers ---
	if wcfg := config.GetWorkerConfig(cfg, sp.TaskType); wcfg.Enabled {
		handler := sp.NewHandler(
			&sp.Config{
				MaxMatches: cfg.Matching.MaxMatches,
				Timeout:    config.GetDuration(wcfg.Timeout),
			},
			candidateStore, searchStore, log,
		)
		startWorker(zeebeClient, sp.TaskType, wcfg, handler.Handle, zapLog)
	}

	if wcfg := config.GetWorkerConfig(cfg, ce.TaskType); wcfg.Enabled {
		handler := ce.NewHandler(
			&ce.Config{
				Timeout: config.GetDuration(wcfg.Timeout),
			},
			candidateStore, postingStore, log,
		)
		startWorker(zeebeClient, ce.TaskType, wcfg, handler.Handle, zapLog)
	}

	if wcfg := config.GetWorkerConfig(cfg, dn.TaskType); wcfg.Enabled {
		handler := dn.NewHandler(
			&dn.Config{
				MinScore:    cfg.Matching.MinScore,
				SNSEnabled:  cfg.Notifications.SNS.Enabled,
				InputSchema: dnTask.InputSchema,
				Timeout:     config.GetDuration(cfg.Notifications.BatchTimeoutMs),
			},
			postingStore, candidateStore, dispatcher, publisher, log,
		)
		startWorker(zeebeClient, dn.TaskType, wcfg, handler.Handle, zapLog)
	}

	zapLog.Info("All workers registered successfully")

	// --- Health & Metrics Server ---
	go func() {
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
		zapLog.Info("Health/Metrics server listening on :8080")
		if err := http.ListenAndServe(":8080", nil); err != nil {
			zapLog.Error("Health/Metrics server failed", zap.Error(err))
		}
	}()

	// --- Graceful Shutdown ---
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	<-sigCh

	zapLog.Info("Shutdown signal received, stopping workers...")

	if err := zeebeClient.Close(); err != nil {
		zapLog.Error("Error closing Zeebe client", zap.Error(err))
	}

	zapLog.Info("Worker manager stopped gracefully")
}

// noopMailer logs instead of sending, used when email delivery is disabled.
type noopMailer struct {
	log logger.Logger
}

func (m noopMailer) Send(_ context.Context, to, subject, _, _ string) error {
	m.log.Info("email delivery disabled, skipping send", map[string]interface{}{
		"to":      to,
		"subject": subject,
	})
	return nil
}

func startWorker(client zbc.Client, taskType string, wcfg config.WorkerConfig, handlerFunc func(worker.JobClient, entities.Job), log *zap.Logger) {
	if !wcfg.Enabled {
		log.Info("worker disabled", zap.String("taskType", taskType))
		return
	}

	client.NewJobWorker().
		JobType(taskType).
		Handler(handlerFunc).
		MaxJobsActive(wcfg.MaxJobsActive).
		Timeout(time.Duration(wcfg.Timeout) * time.Millisecond).
		Open()

	log.Info("worker started",
		zap.String("taskType", taskType),
		zap.Int("maxJobsActive", wcfg.MaxJobsActive),
		zap.Int("timeout_ms", wcfg.Timeout),
	)
}
