package service

import (
	"fmt"

	"github.com/golang-jwt/jwt/v5"

	"github.com/noah-isme/sma-publisher-api/internal/models"
	"github.com/noah-isme/sma-publisher-api/pkg/config"
	appErrors "github.com/noah-isme/sma-publisher-api/pkg/errors"
)

// TokenService validates gateway access tokens. Tokens are issued by the
// identity collaborator; this service never mints them.
type TokenService struct {
	secret string
}

// NewTokenService constructs the service.
func NewTokenService(cfg config.JWTConfig) *TokenService {
	return &TokenService{secret: cfg.Secret}
}

// ValidateToken parses and validates an access token returning the claims.
func (s *TokenService) ValidateToken(tokenString string) (*models.JWTClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &models.JWTClaims{}, func(token *jwt.Token) (interface{}, error) {
		if token.Method != jwt.SigningMethodHS256 {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(s.secret), nil
	})
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrUnauthorized.Code, appErrors.ErrUnauthorized.Status, "invalid token")
	}

	claims, ok := token.Claims.(*models.JWTClaims)
	if !ok || !token.Valid {
		return nil, appErrors.Clone(appErrors.ErrUnauthorized, "invalid token claims")
	}

	return claims, nil
}
