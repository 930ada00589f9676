package billing

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"nagoyameshi/internal/infra/metrics"
	"nagoyameshi/internal/pkg/config"
	"nagoyameshi/internal/pkg/errs"
	"nagoyameshi/internal/usecase/commands"

	"github.com/google/uuid"
	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/client"
	"golang.org/x/time/rate"
)

// StripeGateway implements commands.BillingGateway. Calls are single-attempt
// and share one process-wide token bucket.
type StripeGateway struct {
	api     *client.API
	limiter *rate.Limiter
	metrics *metrics.Registry
}

var _ commands.BillingGateway = (*StripeGateway)(nil)

func NewStripeGateway(cfg config.BillingConfig, m *metrics.Registry, logger *slog.Logger) *StripeGateway {
	backendCfg := &stripe.BackendConfig{
		HTTPClient:        &http.Client{Timeout: 20 * time.Second},
		MaxNetworkRetries: stripe.Int64(0),
		LeveledLogger:     &slogLeveledLogger{logger: logger.With("component", "stripe")},
	}
	if cfg.APIBaseURL != "" {
		backendCfg.URL = stripe.String(cfg.APIBaseURL)
	}

	rps := cfg.RatePerSec
	if rps <= 0 {
		rps = 20
	}
	burst := cfg.Burst
	if burst <= 0 {
		burst = 1
	}

	return &StripeGateway{
		api:     client.New(cfg.SecretKey, stripe.NewBackendsWithConfig(backendCfg)),
		limiter: rate.NewLimiter(rate.Limit(rps), burst),
		metrics: m,
	}
}

func (g *StripeGateway) CreateCustomer(ctx context.Context, email, name string) (string, error) {
	var id string
	err := g.call(ctx, "create_customer", func() error {
		params := &stripe.CustomerParams{
			Params: stripe.Params{Context: ctx},
			Email:  stripe.String(email),
			Name:   stripe.String(name),
		}
		params.SetIdempotencyKey(uuid.NewString())
		c, err := g.api.Customers.New(params)
		if err != nil {
			return err
		}
		id = c.ID
		return nil
	})
	return id, err
}

func (g *StripeGateway) AttachPaymentMethod(ctx context.Context, customerID, paymentMethodID string) error {
	return g.call(ctx, "attach_payment_method", func() error {
		_, err := g.api.PaymentMethods.Attach(paymentMethodID, &stripe.PaymentMethodAttachParams{
			Params:   stripe.Params{Context: ctx},
			Customer: stripe.String(customerID),
		})
		return err
	})
}

func (g *StripeGateway) SetDefaultPaymentMethod(ctx context.Context, customerID, paymentMethodID string) error {
	return g.call(ctx, "set_default_payment_method", func() error {
		_, err := g.api.Customers.Update(customerID, &stripe.CustomerParams{
			Params: stripe.Params{Context: ctx},
			InvoiceSettings: &stripe.CustomerInvoiceSettingsParams{
				DefaultPaymentMethod: stripe.String(paymentMethodID),
			},
		})
		return err
	})
}

func (g *StripeGateway) CreateSubscription(ctx context.Context, customerID, priceID string) (string, error) {
	var id string
	err := g.call(ctx, "create_subscription", func() error {
		params := &stripe.SubscriptionParams{
			Params:   stripe.Params{Context: ctx},
			Customer: stripe.String(customerID),
			Items: []*stripe.SubscriptionItemsParams{
				{Price: stripe.String(priceID)},
			},
		}
		params.SetIdempotencyKey(uuid.NewString())
		s, err := g.api.Subscriptions.New(params)
		if err != nil {
			return err
		}
		id = s.ID
		return nil
	})
	return id, err
}

func (g *StripeGateway) ListActiveSubscriptions(ctx context.Context, customerID string) ([]string, error) {
	var ids []string
	err := g.call(ctx, "list_active_subscriptions", func() error {
		it := g.api.Subscriptions.List(&stripe.SubscriptionListParams{
			ListParams: stripe.ListParams{Context: ctx},
			Customer:   stripe.String(customerID),
			Status:     stripe.String(string(stripe.SubscriptionStatusActive)),
		})
		for it.Next() {
			ids = append(ids, it.Subscription().ID)
		}
		return it.Err()
	})
	return ids, err
}

func (g *StripeGateway) CancelSubscription(ctx context.Context, subscriptionID string) error {
	return g.call(ctx, "cancel_subscription", func() error {
		_, err := g.api.Subscriptions.Cancel(subscriptionID, &stripe.SubscriptionCancelParams{
			Params: stripe.Params{Context: ctx},
		})
		return err
	})
}

func (g *StripeGateway) DefaultPaymentMethod(ctx context.Context, customerID string) (*commands.PaymentMethodSummary, error) {
	var out *commands.PaymentMethodSummary
	err := g.call(ctx, "get_default_payment_method", func() error {
		params := &stripe.CustomerParams{Params: stripe.Params{Context: ctx}}
		params.AddExpand("invoice_settings.default_payment_method")
		c, err := g.api.Customers.Get(customerID, params)
		if err != nil {
			return err
		}
		if c.InvoiceSettings == nil || c.InvoiceSettings.DefaultPaymentMethod == nil {
			return nil
		}
		pm := c.InvoiceSettings.DefaultPaymentMethod
		out = &commands.PaymentMethodSummary{ID: pm.ID}
		if pm.Card != nil {
			out.Brand = string(pm.Card.Brand)
			out.Last4 = pm.Card.Last4
			out.ExpMonth = pm.Card.ExpMonth
			out.ExpYear = pm.Card.ExpYear
		}
		return nil
	})
	return out, err
}

func (g *StripeGateway) DetachPaymentMethod(ctx context.Context, paymentMethodID string) error {
	return g.call(ctx, "detach_payment_method", func() error {
		_, err := g.api.PaymentMethods.Detach(paymentMethodID, &stripe.PaymentMethodDetachParams{
			Params: stripe.Params{Context: ctx},
		})
		return err
	})
}

// call waits for the limiter, runs fn once and records the outcome.
func (g *StripeGateway) call(ctx context.Context, op string, fn func() error) error {
	if err := g.limiter.Wait(ctx); err != nil {
		return errs.Wrapf(err, "billing %s throttled", op)
	}

	start := time.Now()
	err := fn()
	if g.metrics != nil {
		g.metrics.ObserveBilling(op, err, time.Since(start))
	}
	if err != nil {
		return errs.Wrapf(err, "billing %s", op)
	}
	return nil
}

type slogLeveledLogger struct {
	logger *slog.Logger
}

func (l *slogLeveledLogger) Debugf(format string, v ...any) {
	l.logger.Debug(fmt.Sprintf(format, v...))
}

func (l *slogLeveledLogger) Infof(format string, v ...any) {
	l.logger.Debug(fmt.Sprintf(format, v...))
}

func (l *slogLeveledLogger) Warnf(format string, v ...any) {
	l.logger.Warn(fmt.Sprintf(format, v...))
}

func (l *slogLeveledLogger) Errorf(format string, v ...any) {
	l.logger.Error(fmt.Sprintf(format, v...))
}
