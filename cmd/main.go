package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/pgx/v5"
	_ "github.com/golang-migrate/migrate/v4/source/file"

	"github.com/JuanC-01/ProyectoLineaB/internal/config"
	v1 "github.com/JuanC-01/ProyectoLineaB/internal/handler/http/v1"
	"github.com/JuanC-01/ProyectoLineaB/internal/repository"
	"github.com/JuanC-01/ProyectoLineaB/internal/service"
	"github.com/JuanC-01/ProyectoLineaB/internal/webhook"
	"github.com/JuanC-01/ProyectoLineaB/pkg/logger"
	"github.com/JuanC-01/ProyectoLineaB/pkg/postgres"
	redisclient "github.com/JuanC-01/ProyectoLineaB/pkg/redis"
	"github.com/sirupsen/logrus"

	_ "github.com/JuanC-01/ProyectoLineaB/docs"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// @title Hospitales Bogotá API
// @version 1.0
// @description API de análisis espacial incidente-hospital: buffers, rutas sobre la malla vial y registro de incidentes.
// @host localhost:3000
// @BasePath /api/v1
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name X-API-Key
func runMigrations(cfg *config.Config, log *logrus.Logger) error {
	log.Info("Running database migrations...")

	migrationURL := cfg.DatabaseURL
	if !strings.HasPrefix(migrationURL, "pgx5://") {
		migrationURL = strings.Replace(migrationURL, "postgres://", "pgx5://", 1)
	}

	m, err := migrate.New(
		"file://migrations",
		migrationURL,
	)
	if err != nil {
		return fmt.Errorf("could not create migrate instance: %w", err)
	}

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	log.Info("Database migrations applied successfully")
	return nil
}

func main() {
	// Carga de configuración
	cfg, err := config.LoadConfig()
	if err != nil {
		logrus.Fatalf("Failed to load config: %v", err)
	}

	// Inicialización del logger
	log := logger.New(cfg.LogLevel)

	// Contexto para el apagado ordenado
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Migraciones de la tabla de incidentes. Las capas de referencia
	// (hospitales, localidades, malla vial) son de propiedad externa y
	// las migraciones no las tocan.
	if err := runMigrations(cfg, log); err != nil {
		log.Fatalf("Failed to run database migrations: %v", err)
	}

	// Conexión a PostgreSQL/PostGIS
	dbpool, err := postgres.NewPostgresDB(ctx, cfg)
	if err != nil {
		log.Fatalf("Failed to connect to PostgreSQL: %v", err)
	}
	defer dbpool.Close()
	log.Info("Successfully connected to PostgreSQL")

	// Cliente de Redis
	redisClient, err := redisclient.NewRedisClient(ctx, cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)
	if err != nil {
		log.Fatalf("Failed to connect to Redis: %v", err)
	}
	defer redisClient.Close()
	log.Info("Successfully connected to Redis")

	// Publicador y worker de webhooks de registro
	webhookPublisher := webhook.NewRedisWebhookPublisher(redisClient)
	webhookWorker := webhook.NewWebhookWorker(redisClient, log, cfg)
	webhookWorker.Start(ctx)

	// Repositorios
	analysisRepo := repository.NewAnalysisRepository(dbpool)
	incidentRepo := repository.NewIncidentRepository(dbpool, redisClient, cfg.CacheTTL)
	hospitalRepo := repository.NewHospitalRepository(dbpool, redisClient, cfg.CacheTTL)
	networkRepo := repository.NewNetworkRepository(dbpool)

	// La malla vial es referencia estática: se carga una sola vez al arrancar
	log.Info("Loading road network graph...")
	roadGraph, err := networkRepo.LoadGraph(ctx)
	if err != nil {
		log.Fatalf("Failed to load road network graph: %v", err)
	}
	log.WithFields(logrus.Fields{
		"vertices": roadGraph.VertexCount(),
		"tramos":   roadGraph.EdgeCount(),
	}).Info("Road network graph loaded")

	// Servicios
	analysisService := service.NewAnalysisService(analysisRepo, roadGraph, log)
	incidentService := service.NewIncidentService(incidentRepo, log, webhookPublisher)
	hospitalService := service.NewHospitalService(hospitalRepo, log)

	// Handler HTTP
	handler := v1.NewHandler(analysisService, incidentService, hospitalService, log, cfg)

	// Router de Gin
	router := gin.Default()
	api := router.Group("/api/v1")
	handler.RegisterRoutes(api)

	// Swagger UI
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Servidor HTTP
	serverAddr := fmt.Sprintf(":%s", cfg.HTTPPort)

	srv := &http.Server{
		Addr:    serverAddr,
		Handler: router,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Error starting HTTP server: %v", err)
		}
	}()
	log.Infof("HTTP server started on port %s", cfg.HTTPPort)

	// Apagado ordenado
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Received shutdown signal, shutting down server...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	log.Info("Server gracefully stopped")
}
