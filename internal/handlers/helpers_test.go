package handlers_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/bcrservices/car-rental-api/internal/auth"
	"github.com/bcrservices/car-rental-api/internal/config"
	dbpkg "github.com/bcrservices/car-rental-api/internal/db"
	"github.com/bcrservices/car-rental-api/internal/models"
	"github.com/bcrservices/car-rental-api/internal/routes"
)

func newTestServer(t *testing.T) (*gin.Engine, *gorm.DB, *config.Config) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	gdb, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	sqlDB, err := gdb.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, dbpkg.Migrate(gdb))

	cfg := &config.Config{
		JWTSecret:  "test-secret",
		TokenTTL:   time.Hour,
		BcryptCost: bcrypt.MinCost,
	}

	r := gin.New()
	routes.RegisterRoutes(r, gdb, cfg)

	return r, gdb, cfg
}

// createUser provisions a user directly in the store, the way fixtures are
// seeded out of band, and returns a freshly issued token.
func createUser(t *testing.T, gdb *gorm.DB, cfg *config.Config, name, email, password, roleName string) (models.User, string) {
	t.Helper()

	var role models.Role
	require.NoError(t, gdb.Where("name = ?", roleName).First(&role).Error)

	hasher := auth.NewHasher(cfg.BcryptCost)
	digest, err := hasher.Hash(password)
	require.NoError(t, err)

	user := models.User{
		Name:         name,
		Email:        email,
		PasswordHash: digest,
		RoleID:       role.ID,
	}
	require.NoError(t, gdb.Create(&user).Error)

	token, err := auth.NewTokenService(cfg.JWTSecret, cfg.TokenTTL).Issue(&user, &role)
	require.NoError(t, err)

	return user, token
}

func doJSON(t *testing.T, r http.Handler, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(b)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder, dest any) {
	t.Helper()
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), dest))
}

type errorBody struct {
	Error struct {
		Name    string          `json:"name"`
		Message string          `json:"message"`
		Details json.RawMessage `json:"details"`
	} `json:"error"`
}

type requestDetails struct {
	Method string `json:"method"`
	URL    string `json:"url"`
}
