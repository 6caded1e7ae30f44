package middleware_test

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/shopco/storefront/config"
	"github.com/shopco/storefront/middleware"
	"github.com/shopco/storefront/models"
	"github.com/shopco/storefront/utils"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	os.Setenv("JWT_SECRET", "test-secret")
	os.Exit(m.Run())
}

func setupTestDB(t *testing.T) {
	t.Helper()

	dsn := fmt.Sprintf("file:mw_%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, config.MigrateSchema(db))

	config.DB = db
}

func createUser(t *testing.T, email, role string) models.User {
	t.Helper()

	user := models.User{Name: "Auth Test", Email: email, Password: "x", Role: role}
	require.NoError(t, config.DB.Create(&user).Error)
	return user
}

// newAuthorizedRouter mounts the authorizer over a catch-all handler that
// echoes the role header the authorizer injected into the request.
func newAuthorizedRouter(table []middleware.RoutePermission) *gin.Engine {
	router := gin.New()
	router.Use(middleware.RouteAuthorizerWithTable(table))
	router.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"forwarded_role": c.Request.Header.Get(middleware.RoleHeader)})
	})
	return router
}

func get(router *gin.Engine, path, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest("GET", path, nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestAuthorizerRedirectsWithoutSession(t *testing.T) {
	setupTestDB(t)
	router := newAuthorizedRouter(middleware.RoutePermissions)

	w := get(router, "/v1/profile", "")
	assert.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, "/sign-in", w.Header().Get("Location"))
}

func TestAuthorizerRedirectsInvalidToken(t *testing.T) {
	setupTestDB(t)
	router := newAuthorizedRouter(middleware.RoutePermissions)

	// Resolver failure is treated the same as no session - no error path
	w := get(router, "/v1/profile", "not-a-real-token")
	assert.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, "/sign-in", w.Header().Get("Location"))
}

func TestAuthorizerDeniesUserOnAdminPrefix(t *testing.T) {
	setupTestDB(t)
	user := createUser(t, "plain@example.com", "user")
	token, err := utils.GenerateToken(&user)
	require.NoError(t, err)

	router := newAuthorizedRouter(middleware.RoutePermissions)

	w := get(router, "/v1/admin/users", token)
	assert.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, "/unauthorized", w.Header().Get("Location"))
}

func TestAuthorizerAllowsAdminOnAdminPrefix(t *testing.T) {
	setupTestDB(t)
	admin := createUser(t, "admin@example.com", "admin")
	token, err := utils.GenerateToken(&admin)
	require.NoError(t, err)

	router := newAuthorizedRouter(middleware.RoutePermissions)

	w := get(router, "/v1/admin/users", token)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "admin", w.Header().Get(middleware.RoleHeader))
	assert.Contains(t, w.Body.String(), `"forwarded_role":"admin"`)
}

func TestAuthorizerFailOpenForUnlistedPaths(t *testing.T) {
	setupTestDB(t)
	user := createUser(t, "unlisted@example.com", "user")
	token, err := utils.GenerateToken(&user)
	require.NoError(t, err)

	router := newAuthorizedRouter(middleware.RoutePermissions)

	// Only listed prefixes are protected; everything else is allowed for
	// any authenticated session.
	w := get(router, "/unlisted/path", token)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"forwarded_role":"user"`)
}

func TestAuthorizerDefaultsMissingRoleToUser(t *testing.T) {
	setupTestDB(t)
	user := createUser(t, "roleless@example.com", "user")
	// Blank the role after insert so the column default does not mask the
	// fallback.
	require.NoError(t, config.DB.Model(&user).Update("role", "").Error)
	user.Role = ""
	token, err := utils.GenerateToken(&user)
	require.NoError(t, err)

	router := newAuthorizedRouter(middleware.RoutePermissions)

	w := get(router, "/anything", token)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "user", w.Header().Get(middleware.RoleHeader))

	w = get(router, "/v1/admin/users", token)
	assert.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, "/unauthorized", w.Header().Get("Location"))
}

func TestAuthorizerFirstPrefixMatchWins(t *testing.T) {
	setupTestDB(t)
	user := createUser(t, "ordering@example.com", "user")
	token, err := utils.GenerateToken(&user)
	require.NoError(t, err)

	// Table order is significant: the broad /api entry shadows the
	// stricter /api/admin entry below it. This documents the current
	// first-match behavior, not most-specific-match.
	table := []middleware.RoutePermission{
		{Prefix: "/api", Roles: []string{"user", "admin"}},
		{Prefix: "/api/admin", Roles: []string{"admin"}},
	}
	router := newAuthorizedRouter(table)

	w := get(router, "/api/admin/secrets", token)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestAuthMiddlewareReturns401(t *testing.T) {
	setupTestDB(t)

	router := gin.New()
	router.Use(middleware.AuthMiddleware())
	router.GET("/me", func(c *gin.Context) { c.Status(http.StatusOK) })

	w := get(router, "/me", "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = get(router, "/me", "garbage")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthMiddlewareBlockedUser(t *testing.T) {
	setupTestDB(t)
	user := createUser(t, "blocked-mw@example.com", "user")
	require.NoError(t, config.DB.Model(&user).Update("is_blocked", true).Error)
	token, err := utils.GenerateToken(&user)
	require.NoError(t, err)

	router := gin.New()
	router.Use(middleware.AuthMiddleware())
	router.GET("/me", func(c *gin.Context) { c.Status(http.StatusOK) })

	w := get(router, "/me", token)
	assert.Equal(t, http.StatusForbidden, w.Code)
}
