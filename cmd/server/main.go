package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	_ "orgassess/docs"
	"orgassess/internal/cache"
	"orgassess/internal/config"
	"orgassess/internal/metrics"
	"orgassess/internal/repository"
	"orgassess/internal/scoring"
	"orgassess/internal/service"
	"orgassess/internal/transport/rest"
	"orgassess/internal/transport/ws"
)

// @title Organizational Assessment API
// @version 1.0
// @description Scores organizational diagnostics across six indices.
// @host localhost:8080
// @BasePath /v1
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	log.Println("started")
	ctx := context.Background()

	cfg := config.Load()
	for _, key := range config.UsingDefault("MONGO_URI", "REDIS_URI", "JWT_SECRET") {
		log.Printf("Warning: %s not set, using default", key)
	}
	log.Printf("Scoring algorithms v%s", scoring.AlgorithmVersion)

	// MongoDB connection
	mongoClient, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.MongoURI))
	if err != nil {
		log.Fatal("Failed to connect to MongoDB:", err)
	}
	defer mongoClient.Disconnect(ctx)

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := mongoClient.Ping(pingCtx, nil); err != nil {
		log.Fatal("Failed to ping MongoDB:", err)
	}
	log.Println("Connected to MongoDB")

	db := mongoClient.Database(cfg.MongoDB)
	if err := repository.EnsureIndexes(ctx, db); err != nil {
		log.Fatal("Failed to create indexes:", err)
	}

	// Redis connection
	rdb := redis.NewClient(&redis.Options{
		Addr: cfg.RedisAddr,
	})
	defer rdb.Close()

	if _, err := rdb.Ping(ctx).Result(); err != nil {
		log.Fatal("Failed to ping Redis:", err)
	}
	log.Println("Connected to Redis")

	wsHub := ws.NewHub()
	log.Println("WebSocket hub started")

	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	assessmentRepo := repository.NewAssessmentRepo(db)
	results := cache.NewResultCache(rdb, cfg.ResultCacheTTL)
	benchmarks := cache.NewBenchmarkCache(rdb)

	authSvc := service.NewAuthService(cfg.AnalystUsername, cfg.AnalystPassword, cfg.JWTSecret)
	assessmentSvc := service.NewAssessmentService(assessmentRepo, results, benchmarks, scoring.NewSuite(), metrics.New(registry))
	reportSvc := service.NewReportService(assessmentSvc, benchmarks)

	// wsHub implements service.Broadcaster
	assessmentSvc.SetBroadcaster(wsHub)

	router := rest.NewRouter(&rest.Container{
		AuthService:       authSvc,
		AssessmentService: assessmentSvc,
		ReportService:     reportSvc,
		WSHub:             wsHub,
		Gatherer:          registry,
		AllowedOrigins:    cfg.CORSAllowOrigins,
	})

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	go func() {
		log.Printf("Server starting on :%s", cfg.Port)
		log.Printf("Analyst auth: username=%s", cfg.AnalystUsername)
		log.Println("Endpoints:")
		log.Println("  POST /v1/auth/login")
		log.Println("  POST/GET /v1/assessments")
		log.Println("  GET  /v1/assessments/{id}")
		log.Println("  GET  /v1/assessments/{id}/benchmark")
		log.Println("  POST /v1/analyze")
		log.Println("  GET  /v1/tiers, /v1/tiers/{tier}")
		log.Println("  WS   /v1/ws/orgs/{orgId}")
		log.Println("  GET  /metrics, /swagger/doc.json")

		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("ListenAndServe:", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatal("Server forced to shutdown:", err)
	}

	log.Println("Server exited")
}
