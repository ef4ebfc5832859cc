package middleware

import (
	"errors"
	"strings"

	"github.com/gin-gonic/gin"

	"mocksocial/models"
	"mocksocial/utils"
)

const (
	userIDKey = "user_id"

	AccessTokenCookie  = "accessToken"
	RefreshTokenCookie = "refreshToken"
)

// UserLookup resolves the subject of an access token.
type UserLookup interface {
	GetUserByID(id string) (models.UserResponse, error)
}

// AuthMiddleware accepts an access token from the Authorization header or
// the accessToken cookie. The token subject must be an existing user.
func AuthMiddleware(tokens *utils.TokenManager, users UserLookup) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, ok := accessToken(c)
		if !ok {
			utils.Unauthorized(c, "Missing authentication")
			return
		}

		claims, err := tokens.ParseAccessToken(token)
		if err != nil {
			if errors.Is(err, utils.ErrTokenExpired) {
				utils.Unauthorized(c, "Access token expired")
				return
			}
			utils.Unauthorized(c, "Invalid access token")
			return
		}

		if _, err := users.GetUserByID(claims.UserID()); err != nil {
			utils.Unauthorized(c, "Invalid access token")
			return
		}

		c.Set(userIDKey, claims.UserID())
		c.Next()
	}
}

func accessToken(c *gin.Context) (string, bool) {
	if authHeader := c.GetHeader("Authorization"); authHeader != "" {
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" || parts[1] == "" {
			return "", false
		}
		return parts[1], true
	}

	if cookie, err := c.Cookie(AccessTokenCookie); err == nil && cookie != "" {
		return cookie, true
	}

	return "", false
}

// BearerToken returns the token of a "Bearer" Authorization header.
func BearerToken(c *gin.Context) string {
	parts := strings.SplitN(c.GetHeader("Authorization"), " ", 2)
	if len(parts) != 2 || parts[0] != "Bearer" {
		return ""
	}
	return parts[1]
}

func GetUserID(c *gin.Context) string {
	return c.GetString(userIDKey)
}
