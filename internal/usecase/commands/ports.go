//go:generate mockgen -source=ports.go -destination=../../../tests/mock/commands/ports_mock.go -package=commandsmock

package commands

import (
	"context"
	"io"
	"time"

	"nagoyameshi/internal/domain/user"
	"nagoyameshi/internal/pkg/jwt"
)

// BillingGateway is the payment provider as the subscription flow needs it.
type BillingGateway interface {
	CreateCustomer(ctx context.Context, email, name string) (string, error)
	AttachPaymentMethod(ctx context.Context, customerID, paymentMethodID string) error
	SetDefaultPaymentMethod(ctx context.Context, customerID, paymentMethodID string) error
	CreateSubscription(ctx context.Context, customerID, priceID string) (string, error)
	ListActiveSubscriptions(ctx context.Context, customerID string) ([]string, error)
	CancelSubscription(ctx context.Context, subscriptionID string) error
	// DefaultPaymentMethod returns nil when the customer has none.
	DefaultPaymentMethod(ctx context.Context, customerID string) (*PaymentMethodSummary, error)
	DetachPaymentMethod(ctx context.Context, paymentMethodID string) error
}

type PaymentMethodSummary struct {
	ID       string
	Brand    string
	Last4    string
	ExpMonth int64
	ExpYear  int64
}

// ImageStore persists an uploaded image and returns the stable name to store.
type ImageStore interface {
	Save(ctx context.Context, originalFilename, contentType string, body io.Reader) (string, error)
}

type TokenRevoker interface {
	Revoke(ctx context.Context, tokenID string, until time.Time) error
	IsRevoked(ctx context.Context, tokenID string) (bool, error)
	// RevokeIssuedBefore retires every access token of the user issued before cutoff.
	RevokeIssuedBefore(ctx context.Context, userID int64, cutoff, until time.Time) error
	IssuedBeforeCutoff(ctx context.Context, userID int64, issuedAt time.Time) (bool, error)
}

type TokenIssuer interface {
	GenerateTokenPair(userID int64, role user.Role) (jwt.TokenPair, error)
	ValidateTyped(token string, typ jwt.TokenType) (*jwt.Claims, error)
}
