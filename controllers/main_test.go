package controllers_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/shopco/storefront/config"
	"github.com/shopco/storefront/models"
	"github.com/shopco/storefront/routes"
	"github.com/shopco/storefront/utils"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	os.Setenv("JWT_SECRET", "test-secret")
	os.Exit(m.Run())
}

// setupTestDB points config.DB at a fresh in-memory database for one test.
func setupTestDB(t *testing.T) {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, config.MigrateSchema(db))

	config.DB = db
}

func createTestUser(t *testing.T, email, role string) models.User {
	t.Helper()

	hashed, err := utils.HashPassword("Password1")
	require.NoError(t, err)

	user := models.User{
		Name:     "Test User",
		Email:    email,
		Password: hashed,
		Role:     role,
	}
	require.NoError(t, config.DB.Create(&user).Error)
	return user
}

func tokenFor(t *testing.T, user models.User) string {
	t.Helper()

	token, err := utils.GenerateToken(&user)
	require.NoError(t, err)
	return token
}

type testRequest struct {
	method string
	path   string
	body   interface{}
	token  string
}

func doRequest(t *testing.T, router *gin.Engine, req testRequest) *httptest.ResponseRecorder {
	t.Helper()

	var body []byte
	if req.body != nil {
		var err error
		body, err = json.Marshal(req.body)
		require.NoError(t, err)
	}

	httpReq, err := http.NewRequest(req.method, req.path, bytes.NewBuffer(body))
	require.NoError(t, err)
	httpReq.Header.Set("Content-Type", "application/json")
	if req.token != "" {
		httpReq.Header.Set("Authorization", "Bearer "+req.token)
	}

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httpReq)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()

	var parsed map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &parsed))
	return parsed
}

func newTestRouter() *gin.Engine {
	return routes.SetupRouter()
}
