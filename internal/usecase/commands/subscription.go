//go:generate mockgen -source=subscription.go -destination=../../../tests/mock/commands/subscription_mock.go -package=commandsmock

package commands

import (
	"context"
	"log/slog"

	"nagoyameshi/internal/domain/user"
	"nagoyameshi/internal/pkg/clock"
	"nagoyameshi/internal/pkg/errs"
	"nagoyameshi/internal/pkg/jwt"
	"nagoyameshi/internal/usecase/shared"
)

type SubscriptionCommands interface {
	// Subscribe upgrades a free member once every billing step succeeded.
	Subscribe(ctx context.Context, actor shared.Actor, paymentMethodID string) (*jwt.TokenPair, error)
	UpdatePaymentMethod(ctx context.Context, actor shared.Actor, paymentMethodID string) error
	// Cancel downgrades only after the provider side is fully torn down.
	Cancel(ctx context.Context, actor shared.Actor) (*jwt.TokenPair, error)
	PaymentMethod(ctx context.Context, actor shared.Actor) (*PaymentMethodSummary, error)
}

type subscriptionUseCaseImpl struct {
	uow     shared.UnitOfWork
	billing BillingGateway
	tokens  TokenIssuer
	revoker TokenRevoker
	clock   clock.Clock
	priceID string
}

func NewSubscriptionUseCase(
	uow shared.UnitOfWork,
	billing BillingGateway,
	tokens TokenIssuer,
	revoker TokenRevoker,
	clk clock.Clock,
	priceID string,
) SubscriptionCommands {
	return &subscriptionUseCaseImpl{
		uow:     uow,
		billing: billing,
		tokens:  tokens,
		revoker: revoker,
		clock:   clk,
		priceID: priceID,
	}
}

func (uc *subscriptionUseCaseImpl) Subscribe(ctx context.Context, actor shared.Actor, paymentMethodID string) (*jwt.TokenPair, error) {
	if paymentMethodID == "" {
		return nil, errs.NewValidationError("payment_method_id", "payment method is required")
	}

	u, err := uc.uow.CommandReads().UserByID(ctx, actor.UserID)
	if err != nil {
		return nil, notFoundAs(err, ErrUserNotFound)
	}
	if u.Role() != user.RoleFreeMember {
		return nil, ErrSubscriptionState
	}

	customerID, err := uc.ensureCustomer(ctx, u)
	if err != nil {
		return nil, err
	}

	if err := uc.billing.AttachPaymentMethod(ctx, customerID, paymentMethodID); err != nil {
		return nil, uc.billingFailed(err, "attach payment method", actor)
	}
	if err := uc.billing.SetDefaultPaymentMethod(ctx, customerID, paymentMethodID); err != nil {
		return nil, uc.billingFailed(err, "set default payment method", actor)
	}
	subscriptionID, err := uc.billing.CreateSubscription(ctx, customerID, uc.priceID)
	if err != nil {
		return nil, uc.billingFailed(err, "create subscription", actor)
	}

	if err := uc.changeRole(ctx, actor.UserID, user.RolePaidMember); err != nil {
		slog.Error("subscription created but role upgrade failed",
			"user_id", actor.UserID, "subscription_id", subscriptionID, "error", err.Error())
		return nil, err
	}

	slog.Info("user subscribed", "user_id", actor.UserID, "subscription_id", subscriptionID)
	return uc.reissue(ctx, actor, user.RolePaidMember)
}

func (uc *subscriptionUseCaseImpl) UpdatePaymentMethod(ctx context.Context, actor shared.Actor, paymentMethodID string) error {
	if paymentMethodID == "" {
		return errs.NewValidationError("payment_method_id", "payment method is required")
	}

	customerID, err := uc.customerOf(ctx, actor)
	if err != nil {
		return err
	}

	current, err := uc.billing.DefaultPaymentMethod(ctx, customerID)
	if err != nil {
		return uc.billingFailed(err, "read default payment method", actor)
	}
	if err := uc.billing.AttachPaymentMethod(ctx, customerID, paymentMethodID); err != nil {
		return uc.billingFailed(err, "attach payment method", actor)
	}
	if err := uc.billing.SetDefaultPaymentMethod(ctx, customerID, paymentMethodID); err != nil {
		return uc.billingFailed(err, "set default payment method", actor)
	}
	if current != nil && current.ID != paymentMethodID {
		if err := uc.billing.DetachPaymentMethod(ctx, current.ID); err != nil {
			return uc.billingFailed(err, "detach previous payment method", actor)
		}
	}

	slog.Info("payment method updated", "user_id", actor.UserID)
	return nil
}

func (uc *subscriptionUseCaseImpl) Cancel(ctx context.Context, actor shared.Actor) (*jwt.TokenPair, error) {
	customerID, err := uc.customerOf(ctx, actor)
	if err != nil {
		return nil, err
	}

	subscriptionIDs, err := uc.billing.ListActiveSubscriptions(ctx, customerID)
	if err != nil {
		return nil, uc.billingFailed(err, "list subscriptions", actor)
	}
	for _, id := range subscriptionIDs {
		if err := uc.billing.CancelSubscription(ctx, id); err != nil {
			return nil, uc.billingFailed(err, "cancel subscription", actor)
		}
	}

	pm, err := uc.billing.DefaultPaymentMethod(ctx, customerID)
	if err != nil {
		return nil, uc.billingFailed(err, "read default payment method", actor)
	}
	if pm != nil {
		if err := uc.billing.DetachPaymentMethod(ctx, pm.ID); err != nil {
			return nil, uc.billingFailed(err, "detach payment method", actor)
		}
	}

	if err := uc.changeRole(ctx, actor.UserID, user.RoleFreeMember); err != nil {
		return nil, err
	}

	slog.Info("subscription canceled", "user_id", actor.UserID, "canceled", len(subscriptionIDs))
	return uc.reissue(ctx, actor, user.RoleFreeMember)
}

func (uc *subscriptionUseCaseImpl) PaymentMethod(ctx context.Context, actor shared.Actor) (*PaymentMethodSummary, error) {
	customerID, err := uc.customerOf(ctx, actor)
	if err != nil {
		return nil, err
	}
	pm, err := uc.billing.DefaultPaymentMethod(ctx, customerID)
	if err != nil {
		return nil, uc.billingFailed(err, "read default payment method", actor)
	}
	return pm, nil
}

// ensureCustomer persists a new customer id in its own transaction so a
// retried signup reuses it even when a later billing step fails.
func (uc *subscriptionUseCaseImpl) ensureCustomer(ctx context.Context, u *user.User) (string, error) {
	if id := u.BillingCustomerID(); id != nil && *id != "" {
		return *id, nil
	}

	customerID, err := uc.billing.CreateCustomer(ctx, u.Email().Value(), u.Name())
	if err != nil {
		return "", uc.billingFailed(err, "create customer", shared.Actor{UserID: u.ID()})
	}

	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Users().SetBillingCustomerID(ctx, u.ID(), customerID)
	})
	if err != nil {
		return "", errs.Wrap(err, "persist billing customer id")
	}
	return customerID, nil
}

func (uc *subscriptionUseCaseImpl) customerOf(ctx context.Context, actor shared.Actor) (string, error) {
	u, err := uc.uow.CommandReads().UserByID(ctx, actor.UserID)
	if err != nil {
		return "", notFoundAs(err, ErrUserNotFound)
	}
	id := u.BillingCustomerID()
	if id == nil || *id == "" {
		return "", ErrSubscriptionState
	}
	return *id, nil
}

func (uc *subscriptionUseCaseImpl) changeRole(ctx context.Context, userID int64, role user.Role) error {
	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return notFoundAs(tx.Users().UpdateRole(ctx, userID, role), ErrUserNotFound)
	})
}

// reissue hands out tokens for the new role and retires the presented one
// along with every other access token the user holds under the old role.
func (uc *subscriptionUseCaseImpl) reissue(ctx context.Context, actor shared.Actor, role user.Role) (*jwt.TokenPair, error) {
	cutoff := uc.clock.Now()
	pair, err := uc.tokens.GenerateTokenPair(actor.UserID, role)
	if err != nil {
		return nil, errs.Mark(err, ErrTokenGeneration)
	}
	// older access tokens all expire before the new one does
	if err := uc.revoker.RevokeIssuedBefore(ctx, actor.UserID, cutoff, pair.AccessExpiresAt); err != nil {
		slog.Warn("failed to retire pre-change sessions", "user_id", actor.UserID, "error", err.Error())
	}
	if actor.TokenID != "" {
		if err := uc.revoker.Revoke(ctx, actor.TokenID, actor.TokenExpiresAt); err != nil {
			slog.Warn("failed to revoke pre-change token", "user_id", actor.UserID, "error", err.Error())
		}
	}
	return &pair, nil
}

func (uc *subscriptionUseCaseImpl) billingFailed(err error, step string, actor shared.Actor) error {
	slog.Error("billing step failed", "step", step, "user_id", actor.UserID, "error", err.Error())
	return errs.Mark(errs.Wrap(err, step), ErrBillingFailed)
}
