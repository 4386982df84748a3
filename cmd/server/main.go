// Package main is the entry point of the dashboard API server.
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

	"bizops-dashboard/internal/config"
	"bizops-dashboard/internal/events"
	"bizops-dashboard/internal/pipeline"
	"bizops-dashboard/internal/realtime"
	"bizops-dashboard/internal/repository"
	"bizops-dashboard/internal/router"
	"bizops-dashboard/internal/seed"
	"bizops-dashboard/internal/service"
	"bizops-dashboard/pkg/database"
	"bizops-dashboard/pkg/es"
	"bizops-dashboard/pkg/kafka"
	"bizops-dashboard/pkg/llm"
	"bizops-dashboard/pkg/log"
	"bizops-dashboard/pkg/storage"
	"bizops-dashboard/pkg/tika"
	"bizops-dashboard/pkg/token"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

func main() {
	// 1. Configuration
	configPath := "./configs/config.yaml"
	if p := os.Getenv("BIZOPS_CONFIG"); p != "" {
		configPath = p
	}
	config.Init(configPath)
	cfg := config.Conf

	// 2. Logger
	log.Init(cfg.Log.Level, cfg.Log.Format, cfg.Log.OutputPath)
	defer log.Sync()
	log.Info("logger initialised")

	// 3. Database and Redis
	database.Init(cfg.Database)
	database.InitRedis(cfg.Database.Redis)
	store := repository.NewStore(database.DB)
	if cfg.Database.AutoMigrate {
		if err := store.AutoMigrate(context.Background()); err != nil {
			log.Fatal("auto migration failed", err)
		}
	}

	// Background work lives until shutdown starts.
	appCtx, stopApp := context.WithCancel(context.Background())
	defer stopApp()

	// 4. Optional integrations
	deps := service.DocumentDeps{}
	var extractor pipeline.TextExtractor
	var search service.SearchIndex
	var objects storage.ObjectStore

	if cfg.MinIO.Endpoint != "" {
		minioStore, err := storage.NewMinIO(appCtx, cfg.MinIO)
		if err != nil {
			log.Errorf("MinIO unavailable, attachments disabled: %v", err)
		} else {
			objects = minioStore
			deps.Objects = minioStore
		}
	}
	if cfg.Elasticsearch.Addresses != "" {
		esClient, err := es.New(cfg.Elasticsearch)
		if err != nil {
			log.Errorf("Elasticsearch unavailable, search disabled: %v", err)
		} else {
			search = esClient
			deps.Search = esClient
		}
	}
	if cfg.Tika.ServerURL != "" {
		extractor = tika.NewClient(cfg.Tika)
	}
	if cfg.LLM.APIKey != "" {
		deps.LLM = llm.NewClient(cfg.LLM)
	}

	// 5. Event fan-out: Kafka topic, WebSocket clients and the dashboard cache
	hub := realtime.NewHub()
	cache := repository.NewCacheRepository(database.RDB)
	sinks := events.Multi{hub, service.NewCacheInvalidator(cache)}

	var producer *kafka.Producer
	if len(kafka.Brokers(cfg.Kafka)) > 0 {
		producer = kafka.NewProducer(cfg.Kafka)
		sinks = append(sinks, events.NewKafkaPublisher(producer))
	}

	// 6. Services
	crud := service.NewCRUD(store, sinks)
	licenses := service.NewLicenseResolver(store)
	licenses.Guard(crud.UserLicenseAssignments)

	processor := pipeline.NewProcessor(crud, objects, extractor, search)
	attempts := kafka.NewAttemptCounter(database.RDB)
	var inline *pipeline.InlineProducer
	if producer != nil {
		deps.Tasks = producer
		go kafka.StartConsumer(appCtx, cfg.Kafka, processor, attempts)
	} else {
		inline = pipeline.NewInlineProducer(appCtx, processor, attempts)
		deps.Tasks = inline
	}

	jwtManager := token.NewJWTManager(cfg.JWT.Secret, cfg.JWT.AccessTokenExpireHours, cfg.JWT.RefreshTokenExpireDays)
	authService := service.NewAuthService(cfg.Auth, jwtManager, repository.NewTokenBlacklist(database.RDB))

	// 7. Demo data
	if cfg.Seed.OnStartup {
		if _, err := seed.Run(appCtx, store); err != nil {
			log.Error("seeding failed", err)
		}
	}

	// 8. HTTP engine
	if cfg.Server.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	} else {
		gin.SetMode(cfg.Server.Mode)
	}
	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	engine := router.New(router.Deps{
		CRUD:        crud,
		Dashboard:   service.NewDashboardService(store, cache, cfg.Dashboard.CacheTTL),
		Licensing:   service.NewLicensingService(store),
		Security:    service.NewSecurityService(store),
		ITIL:        service.NewITILService(store),
		Retail:      service.NewRetailService(crud),
		Documents:   service.NewDocumentService(store, crud, sinks, deps),
		Licenses:    licenses,
		Auth:        authService,
		Health:      service.NewHealthService(store, database.RDB),
		Hub:         hub,
		Registry:    registry,
		AuthEnabled: cfg.Auth.Enabled,
	})

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%s", cfg.Server.Port),
		Handler:           engine,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.Infof("server listening on %s", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("HTTP server failed: %v", err)
		}
	}()

	// 9. Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("shutdown signal received, stopping server")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Errorf("HTTP server shutdown failed: %v", err)
	}

	stopApp()
	if inline != nil {
		inline.Wait()
	}
	if producer != nil {
		if err := producer.Close(); err != nil {
			log.Errorf("failed to close Kafka producer: %v", err)
		}
	}
	if database.RDB != nil {
		_ = database.RDB.Close()
	}
	log.Info("server stopped")
}
