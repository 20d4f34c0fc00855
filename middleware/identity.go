package middleware

import (
	"net/http"
	"strings"

	"lexconnect/models"
	"lexconnect/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// JWTIdentityMiddleware resolves the bearer token into a models.Identity stored on the context.
// With optional set, requests without a token continue anonymously; an invalid token is
// always rejected.
func JWTIdentityMiddleware(optional bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			if optional {
				c.Next()
				return
			}
			utils.JSONError(c, http.StatusUnauthorized, "Missing Authorization header", "")
			c.Abort()
			return
		}
		if !strings.HasPrefix(authHeader, "Bearer ") {
			utils.JSONError(c, http.StatusUnauthorized, "Invalid Authorization header", "expected a Bearer token")
			c.Abort()
			return
		}
		tokenString := strings.TrimPrefix(authHeader, "Bearer ")

		sub, role, err := utils.ExtractClaims(tokenString)
		if err != nil {
			zap.L().Debug("Token rejected", zap.String("ip", getClientIP(c)), zap.Error(err))
			utils.JSONError(c, http.StatusUnauthorized, "Invalid token", "")
			c.Abort()
			return
		}
		if role == "" {
			role = models.RoleClient
		}

		c.Set(utils.IdentityContextKey, models.Identity{UserID: sub, Role: role})
		c.Next()
	}
}

// GetIdentity returns the acting identity, or the zero Identity for anonymous requests.
func GetIdentity(c *gin.Context) models.Identity {
	if v, ok := c.Get(utils.IdentityContextKey); ok {
		if identity, ok := v.(models.Identity); ok {
			return identity
		}
	}
	return models.Identity{}
}

// RequireRole rejects identities whose role is not listed. It must follow JWTIdentityMiddleware.
func RequireRole(roles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		identity := GetIdentity(c)
		for _, r := range roles {
			if identity.Role == r {
				c.Next()
				return
			}
		}
		utils.JSONError(c, http.StatusForbidden, "Access denied", "role "+identity.Role+" is not allowed")
		c.Abort()
	}
}
