package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"

	"festProApi/internal/config"
	mediausecase "festProApi/internal/modules/media/application/usecase"
	mediainfra "festProApi/internal/modules/media/infrastructure"
	mediatransport "festProApi/internal/modules/media/interface"
	menuusecase "festProApi/internal/modules/menu/application/usecase"
	menuinfra "festProApi/internal/modules/menu/infrastructure"
	menutransport "festProApi/internal/modules/menu/interface"
	realtimeinfra "festProApi/internal/modules/realtime/infrastructure"
	realtimetransport "festProApi/internal/modules/realtime/interface"
	restaurantusecase "festProApi/internal/modules/restaurant/application/usecase"
	restaurantinfra "festProApi/internal/modules/restaurant/infrastructure"
	restauranttransport "festProApi/internal/modules/restaurant/interface"
	"festProApi/internal/platform/broker"
	"festProApi/internal/platform/events"
	"festProApi/internal/platform/storage"
	"festProApi/internal/shared/auth"
	"festProApi/internal/shared/httputil"
	"festProApi/internal/shared/logging"
)

type healthResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

func main() {
	// Attempt to load variables from .env so local runs honour configuration tweaks.
	if err := godotenv.Overload(); err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			fmt.Fprintf(os.Stderr, ".env load warning: %v\n", err)
		}
	}
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config load error: %v\n", err)
		os.Exit(1)
	}

	logFile, logger, err := setupLogging(cfg.Logging)
	if err != nil {
		fmt.Fprintf(os.Stderr, "logging setup error: %v\n", err)
		os.Exit(1)
	}
	defer logFile.Close()
	slog.SetDefault(logger)
	slog.Info("logging initialized", slog.String("directory", cfg.Logging.Directory), slog.String("level", cfg.Logging.Level), slog.String("format", cfg.Logging.Format))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	client, db, err := storage.Connect(ctx, cfg.Mongo.URI, cfg.Mongo.Database, cfg.Mongo.Timeout)
	if err != nil {
		slog.Error("document store unavailable", slog.Any("error", err))
		os.Exit(1)
	}
	defer func() {
		if err := client.Disconnect(context.Background()); err != nil {
			slog.Warn("document store disconnect error", slog.Any("error", err))
		}
	}()

	// Change events fan out to Kafka and to connected dashboards. Either leg
	// may be absent.
	hub := realtimeinfra.NewHub()
	kafkaPublisher := broker.NewKafkaPublisher(cfg.Kafka.Brokers, cfg.Kafka.Topic)
	publishers := events.Fanout{hub}
	if kafkaPublisher != nil {
		publishers = append(publishers, kafkaPublisher)
		defer kafkaPublisher.Close()
		slog.Info("kafka publishing enabled", slog.Any("brokers", cfg.Kafka.Brokers), slog.String("topic", cfg.Kafka.Topic))
	}

	menuUC := menuusecase.NewMenuUseCase(
		menuinfra.NewMenuMongoRepository(db),
		menuinfra.NewCategoryPhotoCatalog(),
		publishers,
	)
	restaurantUC := restaurantusecase.NewRestaurantUseCase(
		restaurantinfra.NewRestaurantMongoRepository(db),
		publishers,
	)

	if !cfg.AssetsConfigured() {
		slog.Warn("asset host account not configured, uploads will fail")
	}
	uploadUC := mediausecase.NewUploadUseCase(mediainfra.NewCloudinaryClient(mediainfra.CloudinaryConfig{
		BaseURL:        cfg.Assets.BaseURL,
		CloudName:      cfg.Assets.CloudName,
		APIKey:         cfg.Assets.APIKey,
		APISecret:      cfg.Assets.APISecret,
		Folder:         cfg.Assets.Folder,
		Transformation: cfg.Assets.Transformation,
		Timeout:        cfg.Assets.Timeout,
	}, nil))

	// Mutating routes are guarded only when a JWT secret is configured.
	var guard echo.MiddlewareFunc
	if cfg.Security.JWTSecret != "" {
		guard = auth.RequireToken(auth.NewJWTValidator(cfg.Security.JWTSecret))
		slog.Info("write routes require a bearer token")
	}

	e := echo.New()
	e.HideBanner = true
	e.Logger.SetOutput(log.Writer())
	e.Use(httputil.CORSWithAllowList(cfg.CORS.AllowedOrigins))

	api := e.Group("/api")
	api.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, healthResponse{Status: "OK", Message: "API opérationnelle"})
	})
	menutransport.NewMenuHandler(menuUC).Register(api, guard)
	restauranttransport.NewRestaurantHandler(restaurantUC).Register(api, guard)
	mediatransport.NewMediaHandler(uploadUC).Register(api, guard)
	e.GET("/ws/updates", realtimetransport.NewUpdatesHandler(hub))

	go func() {
		if err := e.Start(":" + cfg.Server.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("http server stopped", slog.Any("error", err))
		}
	}()
	slog.Info("server started", slog.String("port", cfg.Server.Port), slog.Any("allowedOrigins", cfg.CORS.AllowedOrigins))

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop
	slog.Info("shutting down")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		slog.Warn("http shutdown error", slog.Any("error", err))
		e.Close()
	}
}

func setupLogging(cfg config.LoggingConfig) (*os.File, *slog.Logger, error) {
	dir := cfg.Directory
	if dir == "" {
		dir = "./logs"
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, nil, fmt.Errorf("create log dir: %w", err)
	}
	fileName := filepath.Join(dir, time.Now().UTC().Format("2006-01-02")+".log")
	file, err := os.OpenFile(fileName, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}

	writer := io.MultiWriter(os.Stdout, file)
	logger := logging.New(writer, logging.Config{
		Level:     cfg.Level,
		Format:    cfg.Format,
		AddSource: true,
	})
	log.SetOutput(writer)
	log.SetFlags(0)
	log.SetPrefix("")

	return file, logger, nil
}
