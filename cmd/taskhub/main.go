package main

import (
	"log/slog"
	"net/http"
	"os"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"

	"github.com/nols-dev/taskhub"
	"github.com/nols-dev/taskhub/httpapi"
	"github.com/nols-dev/taskhub/internal/rate"
	"github.com/nols-dev/taskhub/jwt"
	"github.com/nols-dev/taskhub/password"
)

func main() {
	_ = godotenv.Load()

	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))

	cfg, err := taskhub.ParseConfig()
	if err != nil {
		logger.Error("load config", "err", err)
		os.Exit(1)
	}

	hasher, err := password.NewArgon2(password.DefaultConfig())
	if err != nil {
		logger.Error("init hasher", "err", err)
		os.Exit(1)
	}

	tokens, err := jwt.NewManager(jwt.Config{
		Secret:    []byte(cfg.JWTSecret),
		AccessTTL: cfg.JWTTTL,
		Issuer:    "taskhub",
	})
	if err != nil {
		logger.Error("init token manager", "err", err)
		os.Exit(1)
	}

	var limiter *rate.Limiter
	if cfg.RedisAddr != "" {
		client := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
		limiter = rate.New(client, rate.Config{
			EnableIPThrottle: cfg.LoginIPThrottle,
			MaxAttempts:      cfg.LoginMaxAttempts,
			Cooldown:         cfg.LoginCooldown,
		})
		logger.Info("login rate limiter enabled", "redis", cfg.RedisAddr)
	}

	metrics := taskhub.NewMetrics()
	todos := taskhub.NewTodoStore()
	users := taskhub.NewUserStore()
	accounts := taskhub.NewAccounts(users, hasher, limiter, metrics)

	srv := httpapi.New(todos, accounts, tokens, metrics, logger)

	logger.Info("listening", "addr", cfg.Addr)
	if err := http.ListenAndServe(cfg.Addr, srv.Handler(cfg.CORSOrigins)); err != nil {
		logger.Error("server stopped", "err", err)
		os.Exit(1)
	}
}
