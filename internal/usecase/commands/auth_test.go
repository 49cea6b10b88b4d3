//go:build unit

package commands_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"leather-sandals-store/internal/domain/user"
	reqdto "leather-sandals-store/internal/handler/dto/request"
	"leather-sandals-store/internal/infra"
	"leather-sandals-store/internal/infra/pgquery"
	"leather-sandals-store/internal/pkg/clock"
	"leather-sandals-store/internal/pkg/errs"
	"leather-sandals-store/internal/pkg/jwt"
	"leather-sandals-store/internal/pkg/password"
	"leather-sandals-store/internal/usecase/commands"
	"leather-sandals-store/internal/usecase/shared"
	"leather-sandals-store/tests/common/builder"
	queriesmock "leather-sandals-store/tests/mock/queries"
	sharedmock "leather-sandals-store/tests/mock/shared"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type authDeps struct {
	uow       *sharedmock.MockUnitOfWork
	tx        *sharedmock.MockTx
	users     *sharedmock.MockUserRepository
	readStore *queriesmock.MockUserReadStore
	jwt       *jwt.Service
	cmds      commands.AuthCommands
}

func newAuthDeps(t *testing.T) *authDeps {
	ctrl := gomock.NewController(t)
	d := &authDeps{
		uow:       sharedmock.NewMockUnitOfWork(ctrl),
		tx:        sharedmock.NewMockTx(ctrl),
		users:     sharedmock.NewMockUserRepository(ctrl),
		readStore: queriesmock.NewMockUserReadStore(ctrl),
		jwt:       jwt.NewService("unit-test-secret-key-32-bytes-long!", 15*time.Minute, 24*time.Hour),
	}
	d.uow.EXPECT().Within(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, fn func(context.Context, shared.Tx) error) error {
			return fn(ctx, d.tx)
		}).AnyTimes()
	d.tx.EXPECT().DB().Return(nil).AnyTimes()
	d.tx.EXPECT().Users().Return(d.users).AnyTimes()

	clk := clock.NewMockClock(time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC))
	d.cmds = commands.NewAuthCommands(d.uow, d.readStore, d.jwt, clk, discardLogger())
	return d
}

func TestLogin(t *testing.T) {
	hash, err := password.HashPassword("correct-password")
	require.NoError(t, err)

	t.Run("issues tokens and records the login", func(t *testing.T) {
		d := newAuthDeps(t)
		view := builder.NewUserBuilder().BuildReadModel()
		d.readStore.EXPECT().FindByEmail(gomock.Any(), "test@example.com").Return(view, hash, nil)
		d.users.EXPECT().UpdateLastLogin(gomock.Any(), gomock.Any(), view.ID).Return(nil)

		result, err := d.cmds.Login(context.Background(), reqdto.LoginRequest{Email: "test@example.com", Password: "correct-password"})

		require.NoError(t, err)
		assert.Equal(t, view, result.User)
		claims, err := d.jwt.ValidateToken(result.TokenPair.AccessToken)
		require.NoError(t, err)
		assert.Equal(t, view.ID, claims.UserID)
		assert.Equal(t, jwt.TokenTypeAccess, claims.TokenType)
	})

	t.Run("last login failure does not fail the login", func(t *testing.T) {
		d := newAuthDeps(t)
		view := builder.NewUserBuilder().BuildReadModel()
		d.readStore.EXPECT().FindByEmail(gomock.Any(), gomock.Any()).Return(view, hash, nil)
		d.users.EXPECT().UpdateLastLogin(gomock.Any(), gomock.Any(), view.ID).Return(errors.New("connection reset"))

		result, err := d.cmds.Login(context.Background(), reqdto.LoginRequest{Email: "test@example.com", Password: "correct-password"})

		require.NoError(t, err)
		assert.NotEmpty(t, result.TokenPair.RefreshToken)
	})

	t.Run("wrong password and unknown email look the same", func(t *testing.T) {
		d := newAuthDeps(t)
		view := builder.NewUserBuilder().BuildReadModel()
		d.readStore.EXPECT().FindByEmail(gomock.Any(), "test@example.com").Return(view, hash, nil)
		d.readStore.EXPECT().FindByEmail(gomock.Any(), "nobody@example.com").
			Return(nil, "", infra.RepositoryError{Kind: infra.KindNotFound})

		_, wrongPw := d.cmds.Login(context.Background(), reqdto.LoginRequest{Email: "test@example.com", Password: "wrong-password"})
		_, unknown := d.cmds.Login(context.Background(), reqdto.LoginRequest{Email: "nobody@example.com", Password: "whatever-pass"})

		assert.ErrorIs(t, wrongPw, commands.ErrInvalidCredentials)
		assert.ErrorIs(t, unknown, commands.ErrInvalidCredentials)
	})

	t.Run("inactive user", func(t *testing.T) {
		d := newAuthDeps(t)
		view := builder.NewUserBuilder().AsInactive().BuildReadModel()
		d.readStore.EXPECT().FindByEmail(gomock.Any(), gomock.Any()).Return(view, hash, nil)

		_, err := d.cmds.Login(context.Background(), reqdto.LoginRequest{Email: "test@example.com", Password: "correct-password"})

		assert.ErrorIs(t, err, commands.ErrUserInactive)
	})

	t.Run("malformed email", func(t *testing.T) {
		d := newAuthDeps(t)

		_, err := d.cmds.Login(context.Background(), reqdto.LoginRequest{Email: "not-an-email", Password: "correct-password"})

		assert.True(t, errs.Is(err, commands.ErrAuthenticationFailed))
	})
}

func TestRefreshToken(t *testing.T) {
	t.Run("picks up the current role", func(t *testing.T) {
		d := newAuthDeps(t)
		view := builder.NewUserBuilder().AsAdmin().BuildReadModel()
		refresh, err := d.jwt.GenerateRefreshToken(view.ID, user.RoleCustomer)
		require.NoError(t, err)
		d.readStore.EXPECT().FindByID(gomock.Any(), view.ID).Return(view, nil)

		pair, err := d.cmds.RefreshToken(context.Background(), refresh)

		require.NoError(t, err)
		claims, err := d.jwt.ValidateToken(pair.AccessToken)
		require.NoError(t, err)
		assert.Equal(t, user.RoleAdmin.String(), claims.Role)
	})

	t.Run("rejects access tokens", func(t *testing.T) {
		d := newAuthDeps(t)
		access, err := d.jwt.GenerateAccessToken(builder.NewUserBuilder().ID, user.RoleCustomer)
		require.NoError(t, err)

		_, err = d.cmds.RefreshToken(context.Background(), access)

		assert.ErrorIs(t, err, commands.ErrTokenValidation)
	})

	t.Run("rejects garbage", func(t *testing.T) {
		d := newAuthDeps(t)

		_, err := d.cmds.RefreshToken(context.Background(), "not.a.jwt")

		assert.True(t, errs.Is(err, commands.ErrTokenValidation))
	})

	t.Run("deactivated user", func(t *testing.T) {
		d := newAuthDeps(t)
		view := builder.NewUserBuilder().AsInactive().BuildReadModel()
		refresh, err := d.jwt.GenerateRefreshToken(view.ID, user.RoleCustomer)
		require.NoError(t, err)
		d.readStore.EXPECT().FindByID(gomock.Any(), view.ID).Return(view, nil)

		_, err = d.cmds.RefreshToken(context.Background(), refresh)

		assert.ErrorIs(t, err, commands.ErrUserInactive)
	})
}

func TestRegister(t *testing.T) {
	req := reqdto.RegisterRequest{Email: "Yeni@Example.com", Password: "sandalet-2025", FullName: "Deniz Kaya"}

	t.Run("creates a customer", func(t *testing.T) {
		d := newAuthDeps(t)
		id := builder.NewUserBuilder().ID
		d.users.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ pgquery.DBTX, u *user.User) (uuid.UUID, error) {
				assert.Equal(t, user.RoleCustomer, u.Role())
				assert.NoError(t, password.ComparePassword(u.PasswordHash(), "sandalet-2025"))
				return id, nil
			})

		view, err := d.cmds.Register(context.Background(), req)

		require.NoError(t, err)
		assert.Equal(t, id, view.ID)
		assert.Equal(t, "customer", view.Role)
		assert.True(t, view.IsActive)
	})

	t.Run("duplicate email", func(t *testing.T) {
		d := newAuthDeps(t)
		d.users.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(builder.NewUserBuilder().ID, infra.RepositoryError{Kind: infra.KindDuplicateKey})

		_, err := d.cmds.Register(context.Background(), req)

		assert.ErrorIs(t, err, commands.ErrEmailTaken)
	})

	t.Run("short password", func(t *testing.T) {
		d := newAuthDeps(t)

		bad := req
		bad.Password = "short"
		_, err := d.cmds.Register(context.Background(), bad)

		assert.True(t, errs.Is(err, commands.ErrInvalidRegistration))
	})
}
