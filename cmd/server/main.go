package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"remedyai/internal/cache"
	"remedyai/internal/config"
	"remedyai/internal/repository"
	"remedyai/internal/service"
	"remedyai/internal/transport/rest"
	"remedyai/internal/transport/ws"
)

func main() {
	log.Println("started")
	ctx := context.Background()

	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment")
	}

	cfg := config.Load()

	// Load AI config and log model settings
	aiConfig := config.DefaultAIConfig()
	log.Printf("Advisory config:")
	log.Printf("  Model:    %s", aiConfig.ChatModel)
	log.Printf("  Timeout:  %dms", aiConfig.TimeoutMS)
	if aiConfig.IsEnabled() {
		log.Println("  API Key:  configured")
	} else {
		log.Println("  API Key:  NOT SET (every survey will resolve via fallback)")
	}

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

	// Redis connection
	rdb := redis.NewClient(&redis.Options{
		Addr: cfg.RedisAddr,
	})
	defer rdb.Close()

	if _, err := rdb.Ping(ctx).Result(); err != nil {
		log.Fatal("Failed to ping Redis:", err)
	}
	log.Println("Connected to Redis")

	// Initialize WebSocket hub
	wsHub := ws.NewHub()
	log.Println("WebSocket hub started")

	// Initialize repositories and caches
	recordRepo := repository.NewRecordRepo(db)
	sessionCache := cache.NewSessionCache(rdb)

	// Initialize services
	surveySvc := service.NewSurveyService(sessionCache)
	advisorySvc := service.NewAdvisoryService(aiConfig)
	hospitalSvc := service.NewHospitalService()
	resultSvc := service.NewResultService(sessionCache, recordRepo, advisorySvc)

	// Inject notifier (wsHub implements service.Notifier)
	resultSvc.SetNotifier(wsHub)

	// Create router with container
	container := &rest.Container{
		SurveyService:   surveySvc,
		ResultService:   resultSvc,
		HospitalService: hospitalSvc,
		RecordRepo:      recordRepo,
		WSHub:           wsHub,
	}

	router := rest.NewRouter(container)

	// Start server
	srv := &http.Server{
		Addr:    ":" + cfg.HTTPPort,
		Handler: router,
	}

	go func() {
		log.Printf("Server starting on :%s", cfg.HTTPPort)
		log.Println("Endpoints:")
		log.Println("  POST /v1/sessions")
		log.Println("  GET  /v1/sessions/{id}/question")
		log.Println("  POST /v1/sessions/{id}/select")
		log.Println("  POST /v1/sessions/{id}/advance")
		log.Println("  GET  /v1/sessions/{id}/result")
		log.Println("  GET  /v1/hospitals")
		log.Println("  GET  /v1/hospitals/nearby")
		log.Println("  GET  /v1/records")
		log.Println("  WS   /v1/ws/sessions/{id}")

		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("ListenAndServe:", err)
		}
	}()

	// Wait for interrupt
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
