package bootstrap

import (
	"context"
	"log/slog"

	"nagoyameshi/internal/infra/session"
	"nagoyameshi/internal/pkg/config"
	"nagoyameshi/internal/usecase/commands"

	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

var SessionModule = fx.Module("session",
	fx.Provide(
		NewRedisClient,
		fx.Annotate(
			session.NewRevocationStore,
			fx.As(new(commands.TokenRevoker)),
		),
	),
)

func NewRedisClient(lc fx.Lifecycle, cfg config.Config) *redis.Client {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})

	lc.Append(fx.Hook{
		// an unreachable redis only disables revocation checks, so it is not fatal
		OnStart: func(ctx context.Context) error {
			if err := client.Ping(ctx).Err(); err != nil {
				slog.Warn("redis unreachable at startup", "addr", cfg.Redis.Addr, "error", err.Error())
			}
			return nil
		},
		OnStop: func(_ context.Context) error {
			return client.Close()
		},
	})

	return client
}
