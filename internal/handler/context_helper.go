package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/noah-isme/sma-publisher-api/internal/middleware"
	"github.com/noah-isme/sma-publisher-api/internal/models"
)

// currentClaims extracts the authenticated user's claims from the context.
func currentClaims(c *gin.Context) *models.JWTClaims {
	if v, exists := c.Get(middleware.ContextUserKey); exists {
		if claims, ok := v.(*models.JWTClaims); ok {
			return claims
		}
	}
	return nil
}
