package services

import (
	"context"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yigit/jobsearch/internal/app/models"
	"github.com/yigit/jobsearch/internal/app/models/dto"
	"github.com/yigit/jobsearch/internal/mocks"
	"github.com/yigit/jobsearch/internal/pkg/apperrors"
	"github.com/yigit/jobsearch/internal/pkg/auth"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"
)

func init() {
	auth.BcryptCost = bcrypt.MinCost
}

type authServiceDeps struct {
	users     *mocks.MockUserStore
	tokens    *mocks.MockRefreshTokenStore
	apiTokens *mocks.MockAPITokenStore
	jwt       *auth.JWTService
	svc       AuthService
}

func newAuthServiceDeps(t *testing.T) authServiceDeps {
	ctrl := gomock.NewController(t)
	d := authServiceDeps{
		users:     mocks.NewMockUserStore(ctrl),
		tokens:    mocks.NewMockRefreshTokenStore(ctrl),
		apiTokens: mocks.NewMockAPITokenStore(ctrl),
		jwt: auth.NewJWTService(auth.JWTConfig{
			SecretKey:       "test-secret",
			AccessTokenExp:  5 * time.Minute,
			RefreshTokenExp: time.Hour,
			TokenIssuer:     "jobsearch-test",
		}),
	}
	d.svc = NewAuthService(d.users, d.tokens, d.apiTokens, d.jwt, zerolog.Nop())
	return d
}

func hashedUser(t *testing.T, id int64, email, password string) *models.User {
	hash, err := auth.HashPassword(password)
	require.NoError(t, err)
	return &models.User{ID: id, Email: email, Password: hash, IsActive: true}
}

func TestRegister_HashesPasswordAndNormalizesEmail(t *testing.T) {
	d := newAuthServiceDeps(t)
	ctx := context.Background()

	d.users.EXPECT().Create(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, u *models.User) error {
		u.ID = 7
		return nil
	})

	user, err := d.svc.Register(ctx, &dto.RegisterRequest{Email: "Jane@Example.COM", Password: "s3cret-pass"})
	require.NoError(t, err)
	assert.Equal(t, "Jane@example.com", user.Email)
	assert.NotEqual(t, "s3cret-pass", user.Password)
	assert.True(t, auth.CheckPassword(user.Password, "s3cret-pass"))
	assert.False(t, user.IsStaff)
}

func TestRegister_DuplicateEmail(t *testing.T) {
	d := newAuthServiceDeps(t)
	ctx := context.Background()

	d.users.EXPECT().Create(ctx, gomock.Any()).
		Return(apperrors.NewValidationError("email", "user with this email already exists."))

	_, err := d.svc.Register(ctx, &dto.RegisterRequest{Email: "jane@example.com", Password: "s3cret-pass"})
	require.ErrorIs(t, err, apperrors.ErrValidationFailed)
	assert.Equal(t, "email", apperrors.FieldOf(err))
}

func TestCreateSuperuser(t *testing.T) {
	d := newAuthServiceDeps(t)
	ctx := context.Background()

	d.users.EXPECT().Create(ctx, gomock.Any()).Return(nil)

	user, err := d.svc.CreateSuperuser(ctx, "admin@example.com", "adminpass1")
	require.NoError(t, err)
	assert.True(t, user.IsStaff)
	assert.True(t, user.IsSuperuser)

	_, err = d.svc.CreateSuperuser(ctx, "admin@example.com", "short")
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
}

func TestObtainAPIToken(t *testing.T) {
	d := newAuthServiceDeps(t)
	ctx := context.Background()
	user := hashedUser(t, 3, "jane@example.com", "s3cret-pass")

	d.users.EXPECT().GetByEmail(ctx, "jane@example.com").Return(user, nil)
	d.users.EXPECT().UpdateLastLogin(ctx, int64(3)).Return(nil)
	d.apiTokens.EXPECT().GetOrCreate(ctx, int64(3), gomock.Any()).Return("existing-key", nil)

	key, err := d.svc.ObtainAPIToken(ctx, &dto.LoginRequest{Email: "jane@example.com", Password: "s3cret-pass"})
	require.NoError(t, err)
	assert.Equal(t, "existing-key", key)
}

func TestObtainAPIToken_BadCredentials(t *testing.T) {
	d := newAuthServiceDeps(t)
	ctx := context.Background()
	user := hashedUser(t, 3, "jane@example.com", "s3cret-pass")
	inactive := hashedUser(t, 4, "old@example.com", "s3cret-pass")
	inactive.IsActive = false

	d.users.EXPECT().GetByEmail(ctx, "jane@example.com").Return(user, nil)
	d.users.EXPECT().GetByEmail(ctx, "nobody@example.com").Return(nil, apperrors.NewResourceNotFoundError("User not found."))
	d.users.EXPECT().GetByEmail(ctx, "old@example.com").Return(inactive, nil)

	for _, req := range []*dto.LoginRequest{
		{Email: "jane@example.com", Password: "wrong-pass"},
		{Email: "nobody@example.com", Password: "s3cret-pass"},
		{Email: "old@example.com", Password: "s3cret-pass"},
	} {
		_, err := d.svc.ObtainAPIToken(ctx, req)
		require.ErrorIs(t, err, apperrors.ErrInvalidCredentials, req.Email)
		assert.Equal(t, invalidCredentialsMessage, err.Error())
	}
}

func TestLoginAndRefresh_RotatesToken(t *testing.T) {
	d := newAuthServiceDeps(t)
	ctx := context.Background()
	user := hashedUser(t, 3, "jane@example.com", "s3cret-pass")

	var stored string
	d.users.EXPECT().GetByEmail(ctx, "jane@example.com").Return(user, nil)
	d.users.EXPECT().UpdateLastLogin(ctx, int64(3)).Return(nil)
	d.tokens.EXPECT().CreateToken(ctx, gomock.Any(), int64(3), gomock.Any()).
		DoAndReturn(func(_ context.Context, token string, _ int64, _ time.Time) error {
			stored = token
			return nil
		})

	pair, err := d.svc.Login(ctx, &dto.LoginRequest{Email: "jane@example.com", Password: "s3cret-pass"})
	require.NoError(t, err)
	assert.Equal(t, "Bearer", pair.TokenType)
	assert.Equal(t, stored, pair.RefreshToken)

	d.tokens.EXPECT().GetUserIDByToken(ctx, stored).Return(int64(3), nil)
	d.users.EXPECT().GetByID(ctx, int64(3)).Return(user, nil)
	d.tokens.EXPECT().RotateToken(ctx, stored, gomock.Not(stored), int64(3), gomock.Any()).Return(nil)

	refreshed, err := d.svc.RefreshToken(ctx, stored)
	require.NoError(t, err)
	assert.NotEqual(t, stored, refreshed.RefreshToken)
}

func TestAuthenticateAccessToken(t *testing.T) {
	d := newAuthServiceDeps(t)
	ctx := context.Background()
	user := &models.User{ID: 3, Email: "jane@example.com", IsActive: true}

	pair, err := d.jwt.GenerateTokenPair(user)
	require.NoError(t, err)

	d.users.EXPECT().GetByID(ctx, int64(3)).Return(user, nil)
	got, err := d.svc.AuthenticateAccessToken(ctx, pair.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, user.ID, got.ID)

	_, err = d.svc.AuthenticateAccessToken(ctx, "not-a-jwt")
	assert.ErrorIs(t, err, apperrors.ErrTokenInvalid)
}

func TestAuthenticateAPIToken_InactiveUser(t *testing.T) {
	d := newAuthServiceDeps(t)
	ctx := context.Background()

	d.apiTokens.EXPECT().GetUserIDByKey(ctx, "key").Return(int64(3), nil)
	d.users.EXPECT().GetByID(ctx, int64(3)).Return(&models.User{ID: 3, IsActive: false}, nil)

	_, err := d.svc.AuthenticateAPIToken(ctx, "key")
	assert.ErrorIs(t, err, apperrors.ErrAccountDisabled)
}
