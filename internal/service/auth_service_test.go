package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"golang.org/x/crypto/bcrypt"

	"sidehustle/internal/auth"
	"sidehustle/internal/config"
	apperrors "sidehustle/internal/errors"
	"sidehustle/internal/model"
	"sidehustle/internal/repository"
)

const testSecret = "test-secret"

func hashPassword(t *testing.T, password string) string {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	return string(hash)
}

type authFixture struct {
	svc        AuthService
	admins     *MockAdminRepository
	tokenStore *MockTokenStore
	jwt        *auth.JWTService
}

func newAuthFixture(t *testing.T) *authFixture {
	t.Helper()
	admins := new(MockAdminRepository)
	tokenStore := new(MockTokenStore)
	jwtService := auth.NewJWTService(testSecret, time.Hour)

	admin := config.AdminCredential{Email: "admin@example.com", PasswordHash: hashPassword(t, "admin-pass")}
	svc, err := NewAuthService(admin, admins, jwtService, tokenStore, time.Second)
	require.NoError(t, err)

	return &authFixture{svc: svc, admins: admins, tokenStore: tokenStore, jwt: jwtService}
}

func TestAuthService_Authenticate(t *testing.T) {
	ctx := context.Background()

	t.Run("configured admin", func(t *testing.T) {
		f := newAuthFixture(t)

		p, err := f.svc.Authenticate(ctx, "admin@example.com", "admin-pass")
		require.NoError(t, err)
		assert.Equal(t, &model.Principal{UserID: AdminUserID, Email: "admin@example.com", Role: model.RoleAdmin}, p)
		f.admins.AssertNotCalled(t, "FindByEmail", mock.Anything, mock.Anything)
	})

	t.Run("stored identity", func(t *testing.T) {
		f := newAuthFixture(t)
		oid := primitive.NewObjectID()
		f.admins.On("FindByEmail", mock.Anything, "editor@example.com").Return(&model.AdminUser{
			ObjectID:     oid,
			Email:        "editor@example.com",
			PasswordHash: hashPassword(t, "editor-pass"),
			Role:         model.RoleEditor,
		}, nil)
		f.admins.On("UpdateLastLogin", mock.Anything, "editor@example.com", mock.AnythingOfType("time.Time")).Return(nil)

		p, err := f.svc.Authenticate(ctx, "editor@example.com", "editor-pass")
		require.NoError(t, err)
		assert.Equal(t, oid.Hex(), p.UserID)
		assert.Equal(t, model.RoleEditor, p.Role)
		f.admins.AssertExpectations(t)
	})

	t.Run("unknown stored role becomes editor", func(t *testing.T) {
		f := newAuthFixture(t)
		f.admins.On("FindByEmail", mock.Anything, "x@example.com").Return(&model.AdminUser{
			Email:        "x@example.com",
			PasswordHash: hashPassword(t, "pw"),
			Role:         "superuser",
		}, nil)
		f.admins.On("UpdateLastLogin", mock.Anything, mock.Anything, mock.Anything).Return(nil)

		p, err := f.svc.Authenticate(ctx, "x@example.com", "pw")
		require.NoError(t, err)
		assert.Equal(t, model.RoleEditor, p.Role)
		assert.False(t, p.IsAdmin())
	})

	t.Run("last login failure does not block login", func(t *testing.T) {
		f := newAuthFixture(t)
		f.admins.On("FindByEmail", mock.Anything, "root@example.com").Return(&model.AdminUser{
			Email:        "root@example.com",
			PasswordHash: hashPassword(t, "pw"),
			Role:         model.RoleAdmin,
		}, nil)
		f.admins.On("UpdateLastLogin", mock.Anything, mock.Anything, mock.Anything).Return(errors.New("write concern"))

		p, err := f.svc.Authenticate(ctx, "root@example.com", "pw")
		require.NoError(t, err)
		assert.True(t, p.IsAdmin())
	})
}

func TestAuthService_AuthenticateFailuresAreIndistinguishable(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name     string
		email    string
		password string
		setup    func(f *authFixture)
	}{
		{
			name:     "configured admin with wrong password",
			email:    "admin@example.com",
			password: "nope",
			setup: func(f *authFixture) {
				f.admins.On("FindByEmail", mock.Anything, "admin@example.com").Return(nil, repository.ErrNoMatch)
			},
		},
		{
			name:     "unknown email",
			email:    "ghost@example.com",
			password: "whatever",
			setup: func(f *authFixture) {
				f.admins.On("FindByEmail", mock.Anything, "ghost@example.com").Return(nil, repository.ErrNoMatch)
			},
		},
		{
			name:     "stored identity with wrong password",
			email:    "editor@example.com",
			password: "nope",
			setup: func(f *authFixture) {
				f.admins.On("FindByEmail", mock.Anything, "editor@example.com").Return(&model.AdminUser{
					Email:        "editor@example.com",
					PasswordHash: hashPassword(t, "editor-pass"),
					Role:         model.RoleEditor,
				}, nil)
			},
		},
		{
			name:     "store unavailable",
			email:    "editor@example.com",
			password: "editor-pass",
			setup: func(f *authFixture) {
				f.admins.On("FindByEmail", mock.Anything, "editor@example.com").Return(nil, errStoreDown)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newAuthFixture(t)
			tt.setup(f)

			p, err := f.svc.Authenticate(ctx, tt.email, tt.password)
			assert.Nil(t, p)
			assert.Equal(t, apperrors.ErrInvalidCredentials, err)
			f.admins.AssertNotCalled(t, "UpdateLastLogin", mock.Anything, mock.Anything, mock.Anything)
		})
	}
}

func TestAuthService_Login(t *testing.T) {
	f := newAuthFixture(t)

	token, p, err := f.svc.Login(context.Background(), "admin@example.com", "admin-pass")
	require.NoError(t, err)
	require.NotEmpty(t, token)
	assert.Equal(t, AdminUserID, p.UserID)

	claims, err := f.jwt.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, *p, claims.Principal())
	assert.NotEmpty(t, claims.ID)
}

func TestAuthService_LoginFailureIssuesNoToken(t *testing.T) {
	f := newAuthFixture(t)
	f.admins.On("FindByEmail", mock.Anything, mock.Anything).Return(nil, repository.ErrNoMatch)

	token, p, err := f.svc.Login(context.Background(), "ghost@example.com", "x")
	assert.Empty(t, token)
	assert.Nil(t, p)
	assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)
}

func TestAuthService_VerifyToken(t *testing.T) {
	ctx := context.Background()
	principal := model.Principal{UserID: AdminUserID, Email: "admin@example.com", Role: model.RoleAdmin}

	t.Run("valid", func(t *testing.T) {
		f := newAuthFixture(t)
		token, err := f.jwt.GenerateToken(principal)
		require.NoError(t, err)
		f.tokenStore.On("IsRevoked", mock.Anything, mock.AnythingOfType("string")).Return(false, nil)

		claims, err := f.svc.VerifyToken(ctx, token)
		require.NoError(t, err)
		assert.Equal(t, principal, claims.Principal())
	})

	t.Run("revoked", func(t *testing.T) {
		f := newAuthFixture(t)
		token, err := f.jwt.GenerateToken(principal)
		require.NoError(t, err)
		f.tokenStore.On("IsRevoked", mock.Anything, mock.Anything).Return(true, nil)

		claims, err := f.svc.VerifyToken(ctx, token)
		assert.Nil(t, claims)
		assert.ErrorIs(t, err, apperrors.ErrInvalidToken)
	})

	t.Run("signed with another secret", func(t *testing.T) {
		f := newAuthFixture(t)
		token, err := auth.NewJWTService("other", time.Hour).GenerateToken(principal)
		require.NoError(t, err)

		_, err = f.svc.VerifyToken(ctx, token)
		assert.ErrorIs(t, err, apperrors.ErrInvalidToken)
		f.tokenStore.AssertNotCalled(t, "IsRevoked", mock.Anything, mock.Anything)
	})

	t.Run("garbage", func(t *testing.T) {
		f := newAuthFixture(t)

		_, err := f.svc.VerifyToken(ctx, "not.a.token")
		assert.ErrorIs(t, err, apperrors.ErrInvalidToken)
	})
}

func TestAuthService_Logout(t *testing.T) {
	ctx := context.Background()
	principal := model.Principal{UserID: "u1", Email: "editor@example.com", Role: model.RoleEditor}

	t.Run("revokes the token id for its remaining lifetime", func(t *testing.T) {
		f := newAuthFixture(t)
		token, err := f.jwt.GenerateToken(principal)
		require.NoError(t, err)
		claims, err := f.jwt.ValidateToken(token)
		require.NoError(t, err)

		f.tokenStore.On("Revoke", mock.Anything, claims.ID, mock.MatchedBy(func(ttl time.Duration) bool {
			return ttl > 0 && ttl <= time.Hour
		})).Return(nil)

		got, err := f.svc.Logout(ctx, token)
		require.NoError(t, err)
		assert.Equal(t, &principal, got)
		f.tokenStore.AssertExpectations(t)
	})

	t.Run("empty or invalid token is a no-op", func(t *testing.T) {
		f := newAuthFixture(t)

		for _, token := range []string{"", "garbage"} {
			got, err := f.svc.Logout(ctx, token)
			assert.NoError(t, err)
			assert.Nil(t, got)
		}
		f.tokenStore.AssertNotCalled(t, "Revoke", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("revocation failure propagates", func(t *testing.T) {
		f := newAuthFixture(t)
		token, err := f.jwt.GenerateToken(principal)
		require.NoError(t, err)
		f.tokenStore.On("Revoke", mock.Anything, mock.Anything, mock.Anything).Return(errors.New("redis down"))

		got, err := f.svc.Logout(ctx, token)
		assert.Nil(t, got)
		assert.Error(t, err)
	})
}
