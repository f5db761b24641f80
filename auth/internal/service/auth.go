package service

import (
	"context"

	"storefront/shared/models"
)

// AuthService defines the interface for token issuance and verification.
type AuthService interface {
	// GenerateToken issues a signed bearer token for username.
	GenerateToken(ctx context.Context, username string) (*models.TokenResponse, error)
	// VerifyToken checks signature, expiry, issuer and audience and returns the claims.
	VerifyToken(ctx context.Context, tokenString string) (*models.Claims, error)
}
