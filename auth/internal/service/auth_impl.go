package service

import (
	"context"
	"fmt"
	"time"

	"storefront/auth/internal/config"
	"storefront/shared/authutils"
	"storefront/shared/models"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Compile-time check to ensure authServiceImpl implements AuthService
var _ AuthService = (*authServiceImpl)(nil)

// authServiceImpl implements the AuthService interface.
// It keeps no state besides read-only configuration, so it is safe for concurrent use.
type authServiceImpl struct {
	cfg      *config.Config
	verifier *authutils.JWTVerifier
	logger   *zap.Logger
	now      func() time.Time
}

// Option customizes authServiceImpl.
type Option func(*authServiceImpl)

// WithClock overrides the time source used for iat/nbf/exp.
func WithClock(now func() time.Time) Option {
	return func(s *authServiceImpl) { s.now = now }
}

// NewAuthService creates a new instance of authServiceImpl.
func NewAuthService(cfg *config.Config, logger *zap.Logger, opts ...Option) (AuthService, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	verifier, err := authutils.NewJWTVerifier(cfg.JWTSecret, cfg.JWTIssuer, cfg.JWTAudience, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create token verifier: %w", err)
	}
	s := &authServiceImpl{
		cfg:      cfg,
		verifier: verifier,
		logger:   logger.Named("AuthService"),
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// GenerateToken issues an HS256 token for username, which is embedded exactly as given.
// Nothing is persisted.
func (s *authServiceImpl) GenerateToken(ctx context.Context, username string) (*models.TokenResponse, error) {
	if username == "" {
		s.logger.Warn("Token requested without username")
		return nil, models.NewValidationError("Username is required")
	}

	issuedAt := s.now().UTC()
	expiresAt := issuedAt.Add(s.cfg.TokenTTL)

	claims := &models.Claims{
		Name:   models.StringPtr(username),
		NameID: models.StringPtr(uuid.NewString()),
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			Subject:   username,
			Issuer:    s.cfg.JWTIssuer,
			Audience:  jwt.ClaimStrings{s.cfg.JWTAudience},
			IssuedAt:  jwt.NewNumericDate(issuedAt),
			NotBefore: jwt.NewNumericDate(issuedAt),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(s.cfg.JWTSecret))
	if err != nil {
		s.logger.Error("Failed to sign token", zap.Error(err), zap.String("username", username))
		return nil, fmt.Errorf("failed to sign token: %w", err)
	}

	s.logger.Info("Token issued",
		zap.String("username", username),
		zap.String("jti", claims.ID),
		zap.Time("expiresAt", claims.ExpiresAt.Time),
	)
	return &models.TokenResponse{
		Token:     signed,
		ExpiresAt: claims.ExpiresAt.Time.UTC(),
		Username:  username,
	}, nil
}

// VerifyToken delegates to the shared verifier so every service checks tokens the same way.
func (s *authServiceImpl) VerifyToken(ctx context.Context, tokenString string) (*models.Claims, error) {
	return s.verifier.VerifyToken(ctx, tokenString)
}
