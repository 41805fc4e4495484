package main

import (
	"context"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/jmoiron/sqlx"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"

	"gitlab.com/codeclass-2026.net/internal/adapter/crypto"
	"gitlab.com/codeclass-2026.net/internal/adapter/gemini"
	"gitlab.com/codeclass-2026.net/internal/adapter/jsonstore"
	"gitlab.com/codeclass-2026.net/internal/adapter/postgres/coderepository"
	"gitlab.com/codeclass-2026.net/internal/adapter/postgres/roomrepository"
	"gitlab.com/codeclass-2026.net/internal/adapter/postgres/userrepository"
	"gitlab.com/codeclass-2026.net/internal/adapter/redis/ratelimit"
	"gitlab.com/codeclass-2026.net/internal/config"
	"gitlab.com/codeclass-2026.net/internal/core/ports/secondary"
	auth2 "gitlab.com/codeclass-2026.net/internal/core/services/auth"
	grading2 "gitlab.com/codeclass-2026.net/internal/core/services/grading"
	hint2 "gitlab.com/codeclass-2026.net/internal/core/services/hint"
	room2 "gitlab.com/codeclass-2026.net/internal/core/services/room"
	logger2 "gitlab.com/codeclass-2026.net/internal/global/logger"
	http2 "gitlab.com/codeclass-2026.net/internal/http"
	"gitlab.com/codeclass-2026.net/internal/ws"
)

func main() {
	// .env is optional; real deployments set the environment directly.
	_ = godotenv.Load()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	logger2.Info("Starting classroom service")

	logger := logger2.Logger

	sysCfg := config.NewSystemConfig()

	// SECONDARY PORTS
	roomStore, userPort, codeStore := setupStores(sysCfg)

	var limiter secondary.SubmissionLimiter
	if sysCfg.RedisConfig.Url != "" && sysCfg.SandboxConfig.SubmitRateLimit > 0 {
		redisClient := redis.NewClient(&redis.Options{
			Addr:     sysCfg.RedisConfig.Url,
			Password: sysCfg.RedisConfig.Password,
			DB:       sysCfg.RedisConfig.DB,
		})
		limiter = ratelimit.NewSubmissionLimiter(redisClient, sysCfg.SandboxConfig.SubmitRateLimit, logger)
	} else {
		logger.Info("Submission rate limiting disabled")
	}

	var generator secondary.TextGenerator
	if sysCfg.GeminiConfig.APIKey != "" {
		generator = gemini.NewClient(sysCfg.GeminiConfig, logger)
	} else {
		logger.Info("GEMINI_API_KEY not set, hints and problem generation disabled")
	}

	// primary ports
	jwtProvider := crypto.NewJWTService(sysCfg.JwtConfig)

	// services
	adminEmails := splitList(os.Getenv("ADMIN_EMAILS"))
	ggAuth := auth2.NewGoogleAuthService(userPort, jwtProvider, logger)
	localAuth := auth2.NewLocalAuthService(userPort, jwtProvider, adminEmails, logger)
	roomSvc := room2.NewRoomService(roomStore, codeStore, userPort, logger)
	gradingSvc := grading2.NewGradingService(roomStore, limiter, sysCfg.SandboxConfig.Timeout, logger)
	hintSvc := hint2.NewHintService(generator, logger)

	serviceProvider := http2.NewServiceProvider(roomSvc, gradingSvc, hintSvc, jwtProvider, ggAuth, localAuth)

	// server
	hub := ws.NewHub(logger)
	httpServer := http2.NewServer(sysCfg.ServerConfig.Port, sysCfg.ServerConfig.ServiceName, *serviceProvider, sysCfg.GGAuthConfig, hub, logger)
	if err := httpServer.Init(); err != nil {
		panic(err)
	}

	ctxBg := context.Background()
	httpServer.Start(ctxBg)

	<-quit
	logger.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(ctxBg, 5*time.Second)
	defer cancel()
	httpServer.Stop(ctx)

	logger.Info("successfully shutdown server")
}

// setupStores selects the persistence driver. The JSON file store is the
// default; STORE_DRIVER=postgres switches to the database-backed ports.
func setupStores(sysCfg *config.AppConfig) (secondary.RoomStore, secondary.UserPort, secondary.CodeStore) {
	logger := logger2.Logger

	switch sysCfg.StoreConfig.Driver {
	case config.StoreDriverPostgres:
		db, err := sqlx.Connect("postgres", sysCfg.StoreConfig.PostgresURL)
		if err != nil {
			logger.Error("Failed to connect to postgres", "error", err)
			panic(err)
		}
		return roomrepository.New(db, logger), userrepository.New(db, logger), coderepository.New(db, logger)
	case config.StoreDriverJSON:
		store, err := jsonstore.New(sysCfg.StoreConfig.DataDir, logger)
		if err != nil {
			logger.Error("Failed to open json store", "dir", sysCfg.StoreConfig.DataDir, "error", err)
			panic(err)
		}
		return store, store, store
	default:
		logger.Error("Unknown store driver", "driver", sysCfg.StoreConfig.Driver)
		panic("unknown STORE_DRIVER: " + sysCfg.StoreConfig.Driver)
	}
}

func splitList(raw string) []string {
	if raw == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
