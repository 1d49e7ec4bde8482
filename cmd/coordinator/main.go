package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/aimafia/coordinator/internal/common/clock"
	"github.com/aimafia/coordinator/internal/common/keymutex"
	"github.com/aimafia/coordinator/internal/common/uuid"
	"github.com/aimafia/coordinator/internal/config"
	"github.com/aimafia/coordinator/internal/handlers/api"
	"github.com/aimafia/coordinator/internal/notify"
	roomRepo "github.com/aimafia/coordinator/internal/repositories/room"
	userRepo "github.com/aimafia/coordinator/internal/repositories/user"
	gameService "github.com/aimafia/coordinator/internal/services/game"
	roomService "github.com/aimafia/coordinator/internal/services/room"
	syncService "github.com/aimafia/coordinator/internal/services/sync"
	"github.com/aimafia/coordinator/internal/shuffle"
)

func main() {
	// .env is optional; the environment wins either way
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		fallback := zerolog.New(os.Stderr)
		fallback.Fatal().Err(err).Msg("failed to load configuration")
	}

	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil {
		level = zerolog.InfoLevel
	}
	logger := zerolog.New(os.Stdout).Level(level).With().Timestamp().Logger()

	redisClient := redis.NewClient(&redis.Options{
		Addr:            cfg.RedisAddr,
		Password:        cfg.RedisPassword,
		DB:              cfg.RedisDB,
		MaxRetries:      3,
		MinRetryBackoff: 8 * time.Millisecond,
		MaxRetryBackoff: 512 * time.Millisecond,
	})

	rooms, err := roomRepo.NewRedis(&roomRepo.Config{RedisClient: redisClient})
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to create room repository")
	}
	users, err := userRepo.NewRedis(&userRepo.Config{RedisClient: redisClient})
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to create user repository")
	}

	roomLocks := keymutex.New()

	roomSvc, err := roomService.New(&roomService.Config{
		RoomSize:  cfg.RoomSize,
		RoomRepo:  rooms,
		UserRepo:  users,
		RoomLocks: roomLocks,
		Shuffler:  shuffle.New(&shuffle.Config{}),
		Clock:     &clock.DefaultClock{},
		UUID:      uuid.New(),
	})
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to create room service")
	}

	gameSvc, err := gameService.New(&gameService.Config{
		RoomRepo:  rooms,
		UserRepo:  users,
		RoomLocks: roomLocks,
		Clock:     &clock.DefaultClock{},
	})
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to create game service")
	}

	notifier, err := notify.NewWebhook(&notify.WebhookConfig{
		BaseURL: cfg.CallbackBaseURL,
	})
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to create notifier")
	}

	syncSvc, err := syncService.New(&syncService.Config{
		RoomSize:     cfg.RoomSize,
		PollInterval: cfg.PollInterval,
		PollTTL:      cfg.PollTTL,
		RoomRepo:     rooms,
		Notifier:     notifier,
		Logger:       logger,
	})
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to create sync service")
	}

	handler, err := api.New(&api.Config{
		RoomService: roomSvc,
		GameService: gameSvc,
		SyncService: syncSvc,
		Logger:      logger,
	})
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to create gateway")
	}

	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.Recovery())
	handler.RegisterRoutes(router)

	server := &http.Server{
		Addr:    cfg.ListenAddr,
		Handler: router,
	}

	go func() {
		logger.Info().Str("addr", cfg.ListenAddr).Msg("coordinator listening")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal().Err(err).Msg("server stopped")
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop

	logger.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error().Err(err).Msg("failed to shut down cleanly")
	}

	syncSvc.Stop()
	if err := redisClient.Close(); err != nil {
		logger.Error().Err(err).Msg("failed to close redis client")
	}
}
