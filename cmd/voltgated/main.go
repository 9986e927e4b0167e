package main

import (
	"time"

	"voltgate/internal/config"
	"voltgate/internal/domain"
	"voltgate/internal/infra/db"
	httpinfra "voltgate/internal/infra/http"
	"voltgate/internal/infra/ratelimit"
	"voltgate/internal/infra/sessions"
	"voltgate/internal/logging"
	"voltgate/internal/usecase"

	"github.com/redis/go-redis/v9"
)

func main() {
	cfg := config.FromEnv()
	logger := logging.New(cfg.LogLevel)

	store, err := db.NewStore(cfg)
	if err != nil {
		logger.WithError(err).Fatal("failed to init store")
	}
	if store.DB != nil {
		if err := store.Migrate(); err != nil {
			logger.WithError(err).Fatal("failed to migrate")
		}
	}

	var (
		sessionStore usecase.SessionStore
		limiter      domain.RateLimiter
	)
	if cfg.RedisAddr != "" {
		redisSessions, err := sessions.NewRedisStore(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
		if err != nil {
			logger.WithError(err).Fatal("failed to init session store")
		}
		sessionStore = redisSessions

		client := redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
		redisLimiter, err := ratelimit.NewRedisLimiter(client, nil)
		if err != nil {
			logger.WithError(err).Fatal("failed to init rate limiter")
		}
		limiter = redisLimiter
	} else {
		// Single-process fallback: sessions do not survive a restart.
		logger.Warn("REDIS_ADDR not set, using in-memory sessions")
		sessionStore = sessions.NewMemoryStore(time.Now)
		limiter = ratelimit.NewMemoryLimiter(time.Now)
	}

	srv := httpinfra.NewServer(cfg, store, sessionStore, limiter, logger)
	logger.WithField("addr", cfg.HTTPAddr).Info("starting server")
	if err := srv.Run(); err != nil {
		logger.WithError(err).Fatal("server exited")
	}
}
