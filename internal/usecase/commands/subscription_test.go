//go:build unit

package commands_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"nagoyameshi/internal/domain/user"
	"nagoyameshi/internal/pkg/clock"
	"nagoyameshi/internal/pkg/errs"
	"nagoyameshi/internal/pkg/jwt"
	"nagoyameshi/internal/usecase/commands"
	"nagoyameshi/internal/usecase/shared"
	"nagoyameshi/tests/common/builder"
	commandsmock "nagoyameshi/tests/mock/commands"
	sharedmock "nagoyameshi/tests/mock/shared"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

const testPriceID = "price_test"

type SubscriptionUseCaseTestSuite struct {
	suite.Suite
	ctrl    *gomock.Controller
	uow     *sharedmock.MockUnitOfWork
	tx      *sharedmock.MockTx
	reads   *sharedmock.MockCommandReads
	users   *sharedmock.MockUserRepository
	billing *commandsmock.MockBillingGateway
	tokens  *commandsmock.MockTokenIssuer
	revoker *commandsmock.MockTokenRevoker
	uc      commands.SubscriptionCommands
	actor   shared.Actor
	now     time.Time
}

func (s *SubscriptionUseCaseTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.uow = sharedmock.NewMockUnitOfWork(s.ctrl)
	s.tx = sharedmock.NewMockTx(s.ctrl)
	s.reads = sharedmock.NewMockCommandReads(s.ctrl)
	s.users = sharedmock.NewMockUserRepository(s.ctrl)
	s.billing = commandsmock.NewMockBillingGateway(s.ctrl)
	s.tokens = commandsmock.NewMockTokenIssuer(s.ctrl)
	s.revoker = commandsmock.NewMockTokenRevoker(s.ctrl)

	s.uow.EXPECT().CommandReads().Return(s.reads).AnyTimes()
	s.tx.EXPECT().Users().Return(s.users).AnyTimes()

	s.now = time.Date(2024, 4, 1, 12, 0, 0, 0, time.UTC)
	clk := clock.NewFixedClock(s.now)
	s.uc = commands.NewSubscriptionUseCase(s.uow, s.billing, s.tokens, s.revoker, clk, testPriceID)
	s.actor = shared.Actor{
		UserID:         1,
		Role:           user.RoleFreeMember,
		TokenID:        "jti-old",
		TokenExpiresAt: clk.Now().Add(15 * time.Minute),
	}
}

func (s *SubscriptionUseCaseTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestSubscriptionUseCaseSuite(t *testing.T) {
	suite.Run(t, new(SubscriptionUseCaseTestSuite))
}

// runTx makes Within execute its callback against the mocked Tx.
func (s *SubscriptionUseCaseTestSuite) runTx() *gomock.Call {
	return s.uow.EXPECT().Within(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, fn func(context.Context, shared.Tx) error) error {
			return fn(ctx, s.tx)
		})
}

func (s *SubscriptionUseCaseTestSuite) loadUser(b *builder.UserBuilder) {
	u, err := b.BuildPersisted()
	s.Require().NoError(err)
	s.reads.EXPECT().UserByID(gomock.Any(), u.ID()).Return(u, nil)
}

func (s *SubscriptionUseCaseTestSuite) TestSubscribe() {
	ctx := context.Background()
	pair := jwt.TokenPair{AccessToken: "access-paid", RefreshToken: "refresh-paid", AccessExpiresAt: s.now.Add(15 * time.Minute)}

	s.Run("success: new customer, role upgraded, old token revoked", func() {
		s.loadUser(builder.NewUserBuilder())
		gomock.InOrder(
			s.billing.EXPECT().CreateCustomer(ctx, "test@example.com", "名古屋 太郎").Return("cus_1", nil),
			s.runTx(),
			s.users.EXPECT().SetBillingCustomerID(ctx, int64(1), "cus_1").Return(nil),
			s.billing.EXPECT().AttachPaymentMethod(ctx, "cus_1", "pm_1").Return(nil),
			s.billing.EXPECT().SetDefaultPaymentMethod(ctx, "cus_1", "pm_1").Return(nil),
			s.billing.EXPECT().CreateSubscription(ctx, "cus_1", testPriceID).Return("sub_1", nil),
			s.runTx(),
			s.users.EXPECT().UpdateRole(ctx, int64(1), user.RolePaidMember).Return(nil),
			s.tokens.EXPECT().GenerateTokenPair(int64(1), user.RolePaidMember).Return(pair, nil),
			s.revoker.EXPECT().RevokeIssuedBefore(ctx, int64(1), s.now, pair.AccessExpiresAt).Return(nil),
			s.revoker.EXPECT().Revoke(ctx, "jti-old", s.actor.TokenExpiresAt).Return(nil),
		)

		got, err := s.uc.Subscribe(ctx, s.actor, "pm_1")

		s.Require().NoError(err)
		s.Equal(pair, *got)
	})

	s.Run("stored customer id is reused", func() {
		s.loadUser(builder.NewUserBuilder().WithBillingCustomer("cus_saved"))
		s.billing.EXPECT().CreateCustomer(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)
		s.billing.EXPECT().AttachPaymentMethod(ctx, "cus_saved", "pm_1").Return(nil)
		s.billing.EXPECT().SetDefaultPaymentMethod(ctx, "cus_saved", "pm_1").Return(nil)
		s.billing.EXPECT().CreateSubscription(ctx, "cus_saved", testPriceID).Return("sub_2", nil)
		s.runTx()
		s.users.EXPECT().UpdateRole(ctx, int64(1), user.RolePaidMember).Return(nil)
		s.tokens.EXPECT().GenerateTokenPair(int64(1), user.RolePaidMember).Return(pair, nil)
		s.revoker.EXPECT().RevokeIssuedBefore(ctx, int64(1), s.now, gomock.Any()).Return(nil)
		s.revoker.EXPECT().Revoke(ctx, "jti-old", gomock.Any()).Return(nil)

		_, err := s.uc.Subscribe(ctx, s.actor, "pm_1")
		s.Require().NoError(err)
	})

	s.Run("provider failure leaves the role unchanged", func() {
		s.loadUser(builder.NewUserBuilder().WithBillingCustomer("cus_saved"))
		s.billing.EXPECT().AttachPaymentMethod(ctx, "cus_saved", "pm_bad").Return(errors.New("card declined"))
		s.users.EXPECT().UpdateRole(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)
		s.tokens.EXPECT().GenerateTokenPair(gomock.Any(), gomock.Any()).Times(0)

		got, err := s.uc.Subscribe(ctx, s.actor, "pm_bad")

		s.Nil(got)
		s.True(errs.Is(err, commands.ErrBillingFailed))
	})

	s.Run("paid members cannot subscribe twice", func() {
		s.loadUser(builder.NewUserBuilder().WithRole(user.RolePaidMember).WithBillingCustomer("cus_saved"))

		_, err := s.uc.Subscribe(ctx, s.actor, "pm_1")
		s.True(errs.Is(err, commands.ErrSubscriptionState))
	})

	s.Run("blank payment method is a validation error", func() {
		_, err := s.uc.Subscribe(ctx, s.actor, "")

		ve, ok := errs.AsValidation(err)
		s.Require().True(ok)
		s.Contains(ve.Fields, "payment_method_id")
	})
}

func (s *SubscriptionUseCaseTestSuite) TestCancel() {
	ctx := context.Background()
	paid := shared.Actor{UserID: 1, Role: user.RolePaidMember, TokenID: "jti-paid"}
	pair := jwt.TokenPair{AccessToken: "access-free", RefreshToken: "refresh-free", AccessExpiresAt: s.now.Add(15 * time.Minute)}

	s.Run("success: provider torn down before the role reverts", func() {
		s.loadUser(builder.NewUserBuilder().WithRole(user.RolePaidMember).WithBillingCustomer("cus_1"))
		gomock.InOrder(
			s.billing.EXPECT().ListActiveSubscriptions(ctx, "cus_1").Return([]string{"sub_1", "sub_2"}, nil),
			s.billing.EXPECT().CancelSubscription(ctx, "sub_1").Return(nil),
			s.billing.EXPECT().CancelSubscription(ctx, "sub_2").Return(nil),
			s.billing.EXPECT().DefaultPaymentMethod(ctx, "cus_1").Return(&commands.PaymentMethodSummary{ID: "pm_1"}, nil),
			s.billing.EXPECT().DetachPaymentMethod(ctx, "pm_1").Return(nil),
			s.runTx(),
			s.users.EXPECT().UpdateRole(ctx, int64(1), user.RoleFreeMember).Return(nil),
			s.tokens.EXPECT().GenerateTokenPair(int64(1), user.RoleFreeMember).Return(pair, nil),
			// every other session still holding a paid token is retired too
			s.revoker.EXPECT().RevokeIssuedBefore(ctx, int64(1), s.now, pair.AccessExpiresAt).Return(nil),
			s.revoker.EXPECT().Revoke(ctx, "jti-paid", gomock.Any()).Return(nil),
		)

		got, err := s.uc.Cancel(ctx, paid)

		s.Require().NoError(err)
		s.Equal("access-free", got.AccessToken)
	})

	s.Run("cutoff store outage does not fail the downgrade", func() {
		s.loadUser(builder.NewUserBuilder().WithRole(user.RolePaidMember).WithBillingCustomer("cus_1"))
		s.billing.EXPECT().ListActiveSubscriptions(ctx, "cus_1").Return(nil, nil)
		s.billing.EXPECT().DefaultPaymentMethod(ctx, "cus_1").Return(nil, nil)
		s.runTx()
		s.users.EXPECT().UpdateRole(ctx, int64(1), user.RoleFreeMember).Return(nil)
		s.tokens.EXPECT().GenerateTokenPair(int64(1), user.RoleFreeMember).Return(pair, nil)
		s.revoker.EXPECT().RevokeIssuedBefore(ctx, int64(1), s.now, gomock.Any()).Return(errors.New("redis down"))
		s.revoker.EXPECT().Revoke(ctx, "jti-paid", gomock.Any()).Return(nil)

		got, err := s.uc.Cancel(ctx, paid)

		s.Require().NoError(err)
		s.Equal("access-free", got.AccessToken)
	})

	s.Run("cancel failure keeps the paid role", func() {
		s.loadUser(builder.NewUserBuilder().WithRole(user.RolePaidMember).WithBillingCustomer("cus_1"))
		s.billing.EXPECT().ListActiveSubscriptions(ctx, "cus_1").Return([]string{"sub_1"}, nil)
		s.billing.EXPECT().CancelSubscription(ctx, "sub_1").Return(errors.New("timeout"))
		s.users.EXPECT().UpdateRole(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

		_, err := s.uc.Cancel(ctx, paid)
		s.True(errs.Is(err, commands.ErrBillingFailed))
	})

	s.Run("detach failure keeps the paid role", func() {
		s.loadUser(builder.NewUserBuilder().WithRole(user.RolePaidMember).WithBillingCustomer("cus_1"))
		s.billing.EXPECT().ListActiveSubscriptions(ctx, "cus_1").Return(nil, nil)
		s.billing.EXPECT().DefaultPaymentMethod(ctx, "cus_1").Return(&commands.PaymentMethodSummary{ID: "pm_1"}, nil)
		s.billing.EXPECT().DetachPaymentMethod(ctx, "pm_1").Return(errors.New("timeout"))
		s.users.EXPECT().UpdateRole(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

		_, err := s.uc.Cancel(ctx, paid)
		s.True(errs.Is(err, commands.ErrBillingFailed))
	})

	s.Run("no customer on record", func() {
		s.loadUser(builder.NewUserBuilder().WithRole(user.RolePaidMember))

		_, err := s.uc.Cancel(ctx, paid)
		s.True(errs.Is(err, commands.ErrSubscriptionState))
	})
}

func (s *SubscriptionUseCaseTestSuite) TestUpdatePaymentMethod() {
	ctx := context.Background()
	paid := shared.Actor{UserID: 1, Role: user.RolePaidMember}

	s.Run("previous card is detached after the new one becomes default", func() {
		s.loadUser(builder.NewUserBuilder().WithRole(user.RolePaidMember).WithBillingCustomer("cus_1"))
		gomock.InOrder(
			s.billing.EXPECT().DefaultPaymentMethod(ctx, "cus_1").Return(&commands.PaymentMethodSummary{ID: "pm_old"}, nil),
			s.billing.EXPECT().AttachPaymentMethod(ctx, "cus_1", "pm_new").Return(nil),
			s.billing.EXPECT().SetDefaultPaymentMethod(ctx, "cus_1", "pm_new").Return(nil),
			s.billing.EXPECT().DetachPaymentMethod(ctx, "pm_old").Return(nil),
		)

		s.Require().NoError(s.uc.UpdatePaymentMethod(ctx, paid, "pm_new"))
	})

	s.Run("same card is not detached", func() {
		s.loadUser(builder.NewUserBuilder().WithRole(user.RolePaidMember).WithBillingCustomer("cus_1"))
		s.billing.EXPECT().DefaultPaymentMethod(ctx, "cus_1").Return(&commands.PaymentMethodSummary{ID: "pm_1"}, nil)
		s.billing.EXPECT().AttachPaymentMethod(ctx, "cus_1", "pm_1").Return(nil)
		s.billing.EXPECT().SetDefaultPaymentMethod(ctx, "cus_1", "pm_1").Return(nil)
		s.billing.EXPECT().DetachPaymentMethod(gomock.Any(), gomock.Any()).Times(0)

		s.Require().NoError(s.uc.UpdatePaymentMethod(ctx, paid, "pm_1"))
	})
}
