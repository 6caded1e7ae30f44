package middleware

import (
	"net/http"
	"strings"

	"github.com/shopco/storefront/models"
	"github.com/shopco/storefront/utils"

	"github.com/gin-gonic/gin"
)

// RoleHeader carries the resolved role to downstream handlers so they do not
// have to re-resolve the session.
const RoleHeader = "X-User-Role"

// DefaultRole is assumed when a session carries no role. Missing role means
// ordinary user, not an error.
const DefaultRole = "user"

const (
	signInPath       = "/sign-in"
	unauthorizedPath = "/unauthorized"
)

// RoutePermission maps a path prefix to the roles allowed under it.
type RoutePermission struct {
	Prefix string
	Roles  []string
}

// RoutePermissions is the ordered route table. The first matching prefix
// wins, so order is significant: keep more specific prefixes before their
// parents. Paths matching no entry are allowed for any authenticated user.
var RoutePermissions = []RoutePermission{
	{Prefix: "/v1/admin", Roles: []string{"admin"}},
	{Prefix: "/admin", Roles: []string{"admin"}},
}

// RouteAuthorizer gates requests by role against the static route table.
func RouteAuthorizer() gin.HandlerFunc {
	return RouteAuthorizerWithTable(RoutePermissions)
}

// RouteAuthorizerWithTable is RouteAuthorizer with an explicit table.
func RouteAuthorizerWithTable(table []RoutePermission) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := contextUser(c)
		if !ok {
			resolved, err := sessionUserFromRequest(c)
			if err != nil {
				c.Redirect(http.StatusSeeOther, signInPath)
				c.Abort()
				return
			}
			user = resolved
			c.Set("user", user)
		}

		role := user.Role
		if role == "" {
			role = DefaultRole
		}

		path := c.Request.URL.Path
		for _, perm := range table {
			if strings.HasPrefix(path, perm.Prefix) {
				if !roleAllowed(perm.Roles, role) {
					utils.LogError("Role %q denied for %s", role, path)
					c.Redirect(http.StatusSeeOther, unauthorizedPath)
					c.Abort()
					return
				}
				break
			}
		}

		c.Request.Header.Set(RoleHeader, role)
		c.Writer.Header().Set(RoleHeader, role)
		c.Set("role", role)
		c.Next()
	}
}

func contextUser(c *gin.Context) (models.User, bool) {
	val, exists := c.Get("user")
	if !exists {
		return models.User{}, false
	}
	user, ok := val.(models.User)
	return user, ok
}

func roleAllowed(allowed []string, role string) bool {
	for _, r := range allowed {
		if r == role {
			return true
		}
	}
	return false
}
