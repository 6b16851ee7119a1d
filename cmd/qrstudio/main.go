package main

import (
	"context"
	"os"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/dmitrymomot/qrstudio/modules/builder"
	"github.com/dmitrymomot/qrstudio/pkg/config"
	"github.com/dmitrymomot/qrstudio/pkg/httpserver"
	"github.com/dmitrymomot/qrstudio/pkg/logger"
	"github.com/dmitrymomot/qrstudio/pkg/prefs"
	"github.com/dmitrymomot/qrstudio/pkg/redis"
)

type appConfig struct {
	Log        logger.Config
	HTTP       httpserver.Config
	Redis      redis.Config
	PrefsRedis bool `env:"PREFS_REDIS" envDefault:"true"` // PrefsRedis switches theme persistence between Redis and in-process memory.
}

func main() {
	var cfg appConfig
	config.MustLoad(&cfg)

	log := logger.NewFromConfig(cfg.Log, logger.WithAttr(logger.Component("qrstudio")))
	logger.SetAsDefault(log)

	ctx := context.Background()

	var store prefs.Store = prefs.NewMemoryStore()
	var healthchecks []func(context.Context) error
	if cfg.PrefsRedis {
		client, err := redis.Connect(ctx, cfg.Redis)
		if err != nil {
			log.Warn("redis unavailable, theme preference will not survive restarts", logger.Error(err))
		} else {
			defer func() { _ = client.Close() }()
			store = prefs.NewRedisStore(client)
			healthchecks = append(healthchecks, redis.Healthcheck(client))
		}
	}

	svc := builder.New(store, builder.WithLogger(log))
	defer svc.Close()

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Get("/health", httpserver.HealthCheckHandler(log, healthchecks...))
	r.Mount("/", svc.Handle())

	srv := httpserver.NewFromConfig(cfg.HTTP, httpserver.WithLogger(log))
	if err := srv.Run(ctx, r); err != nil {
		log.Error("server exited with error", logger.Error(err))
		os.Exit(1)
	}
}
