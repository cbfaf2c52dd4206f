package models

import "github.com/golang-jwt/jwt/v5"

// JWTClaims represents the JWT payload for gateway access tokens. Tokens are
// issued by the identity collaborator; this service only validates them.
type JWTClaims struct {
	UserID   string   `json:"user_id"`
	Role     UserRole `json:"role"`
	Email    string   `json:"email"`
	FullName string   `json:"full_name"`
	jwt.RegisteredClaims
}
