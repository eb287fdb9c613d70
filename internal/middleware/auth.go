package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	jwtsvc "dancestudio/internal/pkg/jwt"
)

// JWTAuth validates the Bearer token and stores the owner's user id in
// the request context. Every dashboard query downstream is scoped to
// that id. Browsers cannot set headers on websocket upgrades, so a
// ?token= query parameter is accepted as a fallback.
func JWTAuth(jwt *jwtsvc.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenStr := ""

		if h := c.GetHeader("Authorization"); h != "" {
			if !strings.HasPrefix(h, "Bearer ") {
				abortUnauthorized(c, "Invalid Authorization header")
				return
			}
			tokenStr = strings.TrimSpace(strings.TrimPrefix(h, "Bearer "))
		} else {
			tokenStr = strings.TrimSpace(c.Query("token"))
		}

		if tokenStr == "" {
			abortUnauthorized(c, "Missing credentials")
			return
		}

		claims, err := jwt.ValidateToken(tokenStr)
		if err != nil {
			abortUnauthorized(c, "Invalid token")
			return
		}

		c.Set("user_id", claims.UserID)

		c.Next()
	}
}

func abortUnauthorized(c *gin.Context, message string) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
		"success": false,
		"error": gin.H{
			"code":    "UNAUTHORIZED",
			"message": message,
		},
	})
}
