package bootstrap

import (
	"context"
	"log/slog"

	"nagoyameshi/internal/infra/billing"
	"nagoyameshi/internal/infra/metrics"
	"nagoyameshi/internal/infra/storage"
	"nagoyameshi/internal/pkg/config"
	"nagoyameshi/internal/usecase/commands"

	"github.com/aws/aws-sdk-go-v2/service/s3"
	"go.uber.org/fx"
)

var MetricsModule = fx.Module("metrics",
	fx.Provide(
		metrics.NewRegistry,
	),
)

var BillingModule = fx.Module("billing",
	fx.Provide(
		fx.Annotate(
			NewBillingGateway,
			fx.As(new(commands.BillingGateway)),
		),
	),
)

var StorageModule = fx.Module("storage",
	fx.Provide(
		NewS3Client,
		fx.Annotate(
			NewImageStore,
			fx.As(new(commands.ImageStore)),
		),
	),
)

func NewBillingGateway(cfg config.Config, m *metrics.Registry, logger *slog.Logger) *billing.StripeGateway {
	return billing.NewStripeGateway(cfg.Billing, m, logger)
}

func NewS3Client(cfg config.Config) (*s3.Client, error) {
	return storage.NewS3Client(context.Background(), cfg.Storage)
}

func NewImageStore(client *s3.Client, cfg config.Config) *storage.S3ImageStore {
	return storage.NewS3ImageStore(client, cfg.Storage)
}
