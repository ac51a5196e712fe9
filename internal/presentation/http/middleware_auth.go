package http

import (
	"net/http"
	"strings"

	appaccount "github.com/aromahub/perfumeshop/internal/application/account"
	domain "github.com/aromahub/perfumeshop/internal/domain/account"
	"github.com/gin-gonic/gin"
)

const claimsKey = "tokenClaims"

// BearerAuth verifies the Authorization bearer token and attaches the decoded
// claims to the request. Missing token and invalid token are distinct
// failures (401 vs 403), matching the issuing service's contract.
func BearerAuth(svc *appaccount.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		parts := strings.SplitN(header, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") || parts[1] == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Token required"})
			return
		}

		claims, err := svc.VerifyToken(parts[1])
		if err != nil {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"message": "Invalid token"})
			return
		}

		c.Set(claimsKey, claims)
		c.Next()
	}
}

func claimsFrom(c *gin.Context) (*domain.TokenClaims, bool) {
	v, ok := c.Get(claimsKey)
	if !ok {
		return nil, false
	}
	claims, ok := v.(*domain.TokenClaims)
	return claims, ok
}
