package service_test

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"storefront/auth/internal/config"
	"storefront/auth/internal/service"
	"storefront/shared/models"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func testConfig() *config.Config {
	return &config.Config{
		JWTSecret:   "TestSecretKeyThatIsLongEnoughForHS256Algorithm12345",
		JWTIssuer:   "TestAuthService",
		JWTAudience: "TestMicroservicesApp",
		TokenTTL:    time.Hour,
		ServiceName: "AuthService",
	}
}

func newService(t *testing.T, opts ...service.Option) service.AuthService {
	t.Helper()
	svc, err := service.NewAuthService(testConfig(), zap.NewNop(), opts...)
	require.NoError(t, err)
	return svc
}

func TestNewAuthService_RejectsShortSecret(t *testing.T) {
	cfg := testConfig()
	cfg.JWTSecret = "too-short"
	_, err := service.NewAuthService(cfg, zap.NewNop())
	assert.Error(t, err)
}

func TestGenerateToken_WithValidUsername(t *testing.T) {
	svc := newService(t)
	before := time.Now().Add(-time.Second)

	for _, username := range []string{"testuser", "alice", "user with spaces", "юзер"} {
		t.Run(username, func(t *testing.T) {
			resp, err := svc.GenerateToken(context.Background(), username)
			require.NoError(t, err)
			require.NotNil(t, resp)

			assert.Equal(t, username, resp.Username)
			// JWT состоит из header.payload.signature
			assert.Len(t, strings.Split(resp.Token, "."), 3)
			assert.True(t, resp.ExpiresAt.After(before.Add(59*time.Minute)), "expiry should be about one hour ahead")
			assert.True(t, resp.ExpiresAt.Before(time.Now().Add(time.Hour+time.Second)))

			claims, err := svc.VerifyToken(context.Background(), resp.Token)
			require.NoError(t, err)
			require.NotNil(t, claims.Name)
			require.NotNil(t, claims.NameID)
			assert.Equal(t, username, *claims.Name)
			assert.Equal(t, username, claims.Subject)
			assert.NotEmpty(t, *claims.NameID)
			assert.NotEmpty(t, claims.ID)
			assert.Equal(t, "TestAuthService", claims.Issuer)
			assert.Equal(t, jwt.ClaimStrings{"TestMicroservicesApp"}, claims.Audience)
			assert.True(t, claims.ExpiresAt.Time.After(claims.IssuedAt.Time))
			assert.True(t, resp.ExpiresAt.Equal(claims.ExpiresAt.Time))
		})
	}
}

func TestGenerateToken_FreshIdentifiersPerToken(t *testing.T) {
	svc := newService(t)
	ctx := context.Background()

	first, err := svc.GenerateToken(ctx, "testuser")
	require.NoError(t, err)
	second, err := svc.GenerateToken(ctx, "testuser")
	require.NoError(t, err)

	c1, err := svc.VerifyToken(ctx, first.Token)
	require.NoError(t, err)
	c2, err := svc.VerifyToken(ctx, second.Token)
	require.NoError(t, err)

	assert.NotEqual(t, c1.ID, c2.ID)
	assert.NotEqual(t, *c1.NameID, *c2.NameID)
}

func TestGenerateToken_EmptyUsername(t *testing.T) {
	svc := newService(t)

	resp, err := svc.GenerateToken(context.Background(), "")
	assert.Nil(t, resp)
	require.Error(t, err)
	assert.True(t, errors.Is(err, models.ErrValidation))
	assert.Equal(t, "Username is required", err.Error())
}

func TestGenerateToken_UsernameKeptVerbatim(t *testing.T) {
	svc := newService(t)

	for _, username := range []string{" alice ", "   ", "\tbob"} {
		resp, err := svc.GenerateToken(context.Background(), username)
		require.NoError(t, err)
		assert.Equal(t, username, resp.Username)

		claims, err := svc.VerifyToken(context.Background(), resp.Token)
		require.NoError(t, err)
		require.NotNil(t, claims.Name)
		assert.Equal(t, username, *claims.Name)
		assert.Equal(t, username, claims.Subject)
	}
}

func TestVerifyToken_Expired(t *testing.T) {
	past := time.Now().Add(-2 * time.Hour)
	issuer := newService(t, service.WithClock(func() time.Time { return past }))

	resp, err := issuer.GenerateToken(context.Background(), "testuser")
	require.NoError(t, err)

	_, err = newService(t).VerifyToken(context.Background(), resp.Token)
	assert.True(t, errors.Is(err, models.ErrTokenExpired))
}

func TestVerifyToken_DifferentKey(t *testing.T) {
	resp, err := newService(t).GenerateToken(context.Background(), "testuser")
	require.NoError(t, err)

	cfg := testConfig()
	cfg.JWTSecret = "AnotherSecretKeyThatIsLongEnoughForHS256Algorithm"
	other, err := service.NewAuthService(cfg, zap.NewNop())
	require.NoError(t, err)

	_, err = other.VerifyToken(context.Background(), resp.Token)
	assert.True(t, errors.Is(err, models.ErrTokenInvalid))
}
