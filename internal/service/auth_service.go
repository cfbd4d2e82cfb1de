package service

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"
	"golang.org/x/crypto/bcrypt"

	"sidehustle/internal/auth"
	"sidehustle/internal/config"
	apperrors "sidehustle/internal/errors"
	"sidehustle/internal/model"
	"sidehustle/internal/repository"
)

// AdminUserID identifies the environment-configured administrator in tokens.
const AdminUserID = "admin-001"

// AuthService handles authentication operations.
type AuthService interface {
	Authenticate(ctx context.Context, email, password string) (*model.Principal, error)
	Login(ctx context.Context, email, password string) (token string, principal *model.Principal, err error)
	VerifyToken(ctx context.Context, token string) (*auth.Claims, error)
	Logout(ctx context.Context, token string) (*model.Principal, error)
}

type authService struct {
	admin      config.AdminCredential
	admins     repository.AdminRepository
	jwtService *auth.JWTService
	tokenStore auth.TokenStoreInterface
	dummyHash  []byte
	timeout    time.Duration
	now        func() time.Time
}

// NewAuthService creates a new authentication service.
func NewAuthService(
	admin config.AdminCredential,
	admins repository.AdminRepository,
	jwtService *auth.JWTService,
	tokenStore auth.TokenStoreInterface,
	timeout time.Duration,
) (AuthService, error) {
	// Compared against on unknown emails so every failure costs one bcrypt run.
	seed := make([]byte, 16)
	if _, err := rand.Read(seed); err != nil {
		return nil, fmt.Errorf("dummy hash seed: %w", err)
	}
	dummy, err := bcrypt.GenerateFromPassword([]byte(hex.EncodeToString(seed)), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("dummy hash: %w", err)
	}
	if timeout <= 0 {
		timeout = DefaultStoreTimeout
	}

	return &authService{
		admin:      admin,
		admins:     admins,
		jwtService: jwtService,
		tokenStore: tokenStore,
		dummyHash:  dummy,
		timeout:    timeout,
		now:        time.Now,
	}, nil
}

// Authenticate checks the configured administrator first, then stored identities.
// Every failure is reported as ErrInvalidCredentials.
func (s *authService) Authenticate(ctx context.Context, email, password string) (*model.Principal, error) {
	if s.admin.Enabled() && email == s.admin.Email {
		if bcrypt.CompareHashAndPassword([]byte(s.admin.PasswordHash), []byte(password)) == nil {
			return &model.Principal{UserID: AdminUserID, Email: s.admin.Email, Role: model.RoleAdmin}, nil
		}
	}

	storeCtx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	user, err := s.admins.FindByEmail(storeCtx, email)
	if err != nil {
		if !errors.Is(err, repository.ErrNoMatch) {
			log.Ctx(ctx).Error().Err(err).Msg("admin lookup failed")
		}
		_ = bcrypt.CompareHashAndPassword(s.dummyHash, []byte(password))
		return nil, apperrors.ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, apperrors.ErrInvalidCredentials
	}

	if err := s.admins.UpdateLastLogin(storeCtx, user.Email, s.now().UTC()); err != nil {
		log.Ctx(ctx).Warn().Err(err).Str("email", user.Email).Msg("update last login failed")
	}

	role := user.Role
	if role != model.RoleAdmin {
		role = model.RoleEditor
	}
	return &model.Principal{UserID: user.ObjectID.Hex(), Email: user.Email, Role: role}, nil
}

// Login authenticates and issues a signed token.
func (s *authService) Login(ctx context.Context, email, password string) (string, *model.Principal, error) {
	principal, err := s.Authenticate(ctx, email, password)
	if err != nil {
		return "", nil, err
	}

	token, err := s.jwtService.GenerateToken(*principal)
	if err != nil {
		return "", nil, fmt.Errorf("generate token: %w", err)
	}
	return token, principal, nil
}

// VerifyToken returns the claims of a valid, unrevoked token or ErrInvalidToken.
func (s *authService) VerifyToken(ctx context.Context, token string) (*auth.Claims, error) {
	claims, err := s.jwtService.ValidateToken(token)
	if err != nil {
		return nil, apperrors.ErrInvalidToken
	}

	revoked, err := s.tokenStore.IsRevoked(ctx, claims.ID)
	if err != nil || revoked {
		return nil, apperrors.ErrInvalidToken
	}
	return claims, nil
}

// Logout revokes token until it expires. Invalid or empty tokens need no revocation.
func (s *authService) Logout(ctx context.Context, token string) (*model.Principal, error) {
	if token == "" {
		return nil, nil
	}
	claims, err := s.jwtService.ValidateToken(token)
	if err != nil {
		return nil, nil
	}

	if err := s.tokenStore.Revoke(ctx, claims.ID, claims.TTL(s.now())); err != nil {
		return nil, fmt.Errorf("revoke token: %w", err)
	}
	principal := claims.Principal()
	return &principal, nil
}
