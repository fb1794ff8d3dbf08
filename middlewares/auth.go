package middlewares

import (
	"fmt"
	"strings"

	"github.com/danish-manzoor/ecommerce-store-sub001/configs"
	"github.com/danish-manzoor/ecommerce-store-sub001/pkg/resp"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

func parseToken(c *gin.Context) (uint, string, bool) {
	h := c.GetHeader("Authorization")
	if h == "" || !strings.HasPrefix(h, "Bearer ") {
		return 0, "", false
	}
	tokenStr := strings.TrimPrefix(h, "Bearer ")

	cfg := configs.LoadConfig()
	token, err := jwt.Parse(tokenStr, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method")
		}
		return []byte(cfg.JWTSecret), nil
	})
	if err != nil || !token.Valid {
		return 0, "", false
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return 0, "", false
	}

	var role string
	if v, ok := claims["role"].(string); ok {
		role = v
	}
	var userID uint
	switch v := claims["userId"].(type) {
	case float64:
		userID = uint(v)
	case int:
		userID = uint(v)
	case int64:
		userID = uint(v)
	case uint:
		userID = v
	}
	return userID, role, userID != 0
}

// AuthMiddleware rejects requests without a valid token and, when roles are
// given, without one of those roles.
func AuthMiddleware(requiredRoles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, role, ok := parseToken(c)
		if !ok {
			resp.Unauthorized(c, "missing or invalid token")
			c.Abort()
			return
		}

		c.Set("userId", userID)
		c.Set("role", role)

		if len(requiredRoles) > 0 {
			allowed := false
			for _, r := range requiredRoles {
				if role == r {
					allowed = true
					break
				}
			}
			if !allowed {
				resp.Forbidden(c, "forbidden")
				c.Abort()
				return
			}
		}

		c.Next()
	}
}

// OptionalAuth sets userId/role when a valid token is present but lets
// anonymous requests through. Cart and wishlist routes use it: without a
// user, the cookie-backed store serves the request.
func OptionalAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		if userID, role, ok := parseToken(c); ok {
			c.Set("userId", userID)
			c.Set("role", role)
		}
		c.Next()
	}
}
