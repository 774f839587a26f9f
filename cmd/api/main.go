package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/redis/go-redis/v9"

	"campus-task-assistant/config"
	_ "campus-task-assistant/docs" // Swagger docs
	"campus-task-assistant/internal/database"
	"campus-task-assistant/internal/httpserver"
	"campus-task-assistant/internal/ratelimit"
	taskHTTP "campus-task-assistant/internal/task/delivery/http"
	taskRepo "campus-task-assistant/internal/task/repository/sqlite"
	"campus-task-assistant/internal/task/usecase"
	"campus-task-assistant/pkg/gcalendar"
	"campus-task-assistant/pkg/llmprovider"
	"campus-task-assistant/pkg/log"
)

// @title       Campus Task Assistant API
// @description Natural-language task capture: LLM-backed task extraction and rule-based due-date resolution.
// @version     1
// @host        localhost:8080
// @schemes     http
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		os.Exit(1)
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting Campus Task Assistant...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)

	// 3. Storage
	db, err := database.Open(cfg.Storage.SQLitePath)
	if err != nil {
		logger.Errorf(ctx, "Failed to open database: %v", err)
		return
	}
	defer db.Close()
	checks := map[string]httpserver.Pinger{"sqlite": db}

	// 4. Rate limiting
	var rdb redis.Cmdable
	if cfg.RateLimit.Enabled && cfg.RateLimit.Strategy == config.RateLimitRedis {
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		defer client.Close()
		rdb = client
		checks["redis"] = redisPinger{client}
	}
	limiter, err := ratelimit.New(cfg.RateLimit, rdb)
	if err != nil {
		logger.Errorf(ctx, "Failed to initialize rate limiter: %v", err)
		return
	}
	if limiter == nil {
		logger.Warn(ctx, "Rate limiting disabled")
	} else {
		logger.Infof(ctx, "Rate limiting: %s, %d per %s", cfg.RateLimit.Strategy, cfg.RateLimit.Limit, cfg.RateLimit.Window)
	}

	// 5. LLM providers
	providers, err := llmprovider.InitializeProviders(ctx, &cfg.LLM, logger)
	if err != nil {
		logger.Errorf(ctx, "Failed to initialize LLM providers: %v", err)
		return
	}
	managerCfg, err := llmprovider.NewManagerConfig(&cfg.LLM)
	if err != nil {
		logger.Errorf(ctx, "Invalid LLM manager config: %v", err)
		return
	}
	llm := llmprovider.NewManager(providers, managerCfg, logger)
	logger.Infof(ctx, "LLM: %s (%s), %d provider(s)", llm.Name(), llm.Model(), len(providers))

	// 6. Google Calendar (optional)
	var calendar usecase.Calendar
	if cfg.GoogleCalendar.Enabled {
		client, calErr := gcalendar.New(ctx, gcalendar.Config{
			CredentialsPath: cfg.GoogleCalendar.CredentialsPath,
			TokenPath:       cfg.GoogleCalendar.TokenPath,
		})
		if calErr != nil {
			logger.Warnf(ctx, "Google Calendar not available (optional): %v", calErr)
		} else {
			calendar = client
			logger.Info(ctx, "Google Calendar initialized")
		}
	}

	// 7. Task domain
	repo := taskRepo.New(db, logger)
	taskUC := usecase.New(logger, llm, repo, limiter, calendar, usecase.Config{
		DefaultTimezone: cfg.Parser.DefaultTimezone,
		Temperature:     cfg.Parser.Temperature,
		MaxTokens:       cfg.Parser.MaxTokens,
		CalendarID:      cfg.GoogleCalendar.CalendarID,
	})

	// 8. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:          logger,
		Port:            cfg.HTTPServer.Port,
		Mode:            cfg.HTTPServer.Mode,
		Environment:     cfg.Environment.Name,
		ShutdownTimeout: cfg.HTTPServer.ShutdownTimeout,
		Checks:          checks,
		TaskHandler:     taskHTTP.New(logger, taskUC),
	})
	if err != nil {
		logger.Errorf(ctx, "Failed to initialize HTTP server: %v", err)
		return
	}

	// 9. Run
	if err := httpServer.Run(ctx); err != nil {
		logger.Errorf(ctx, "Failed to run server: %v", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}

type redisPinger struct {
	rdb *redis.Client
}

func (p redisPinger) PingContext(ctx context.Context) error {
	return p.rdb.Ping(ctx).Err()
}
