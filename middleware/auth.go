package middleware

import (
	"errors"
	"strings"

	"github.com/shopco/storefront/config"
	"github.com/shopco/storefront/models"
	"github.com/shopco/storefront/utils"

	"github.com/gin-gonic/gin"
)

var errNoSession = errors.New("no session")

// sessionUserFromRequest resolves the session user from the request headers.
// Any failure, expired token included, is treated as "no session" - there is
// no transient-error path and no retry.
func sessionUserFromRequest(c *gin.Context) (models.User, error) {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" {
		return models.User{}, errNoSession
	}

	tokenString := strings.TrimPrefix(authHeader, "Bearer ")
	if tokenString == authHeader {
		return models.User{}, errNoSession
	}

	userID, err := utils.ValidateToken(tokenString)
	if err != nil {
		return models.User{}, errNoSession
	}

	var user models.User
	if err := config.DB.First(&user, userID).Error; err != nil {
		return models.User{}, errNoSession
	}

	return user, nil
}

// AuthMiddleware resolves the session and puts the user into the gin context.
// API callers without a valid session get a 401 envelope.
func AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		user, err := sessionUserFromRequest(c)
		if err != nil {
			utils.LogError("Session resolution failed for %s %s", c.Request.Method, c.Request.URL.Path)
			utils.Unauthorized(c, "Please login for access")
			c.Abort()
			return
		}

		if user.IsBlocked {
			utils.LogError("Blocked user attempted access: %d", user.ID)
			utils.Forbidden(c, "Account is blocked")
			c.Abort()
			return
		}

		c.Set("user", user)
		utils.LogDebug("User %d authenticated", user.ID)
		c.Next()
	}
}
