package handler

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"novitatravel/internal/app/config"
	"novitatravel/internal/app/middleware"
	"novitatravel/internal/app/repository"
	"novitatravel/internal/app/storage"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// setupTestAPI wires the REST API against an in-memory SQLite database
// with the bootstrap admin created.
func setupTestAPI(t *testing.T) (*gin.Engine, *APIHandler) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	repo, err := repository.NewWithDB(db)
	require.NoError(t, err)

	cfg := &config.Config{
		ServiceHost:   "localhost",
		ServicePort:   8080,
		PublicBaseURL: "http://localhost:8080",
		JWT: config.JWTConfig{
			Secret:        "test-secret",
			ExpiresIn:     24 * time.Hour,
			SigningMethod: jwt.SigningMethodHS256,
		},
		Upload: config.UploadConfig{
			Dir:     t.TempDir(),
			MaxSize: 5 << 20,
		},
		Admin: config.AdminConfig{
			Email:    "admin@novitatravel.com",
			Password: "admin123",
		},
	}

	store, err := storage.NewDiskStorage(cfg.Upload.Dir, cfg.Upload.MaxSize)
	require.NoError(t, err)

	require.NoError(t, repo.EnsureAdmin(cfg.Admin.Email, cfg.Admin.Password))

	h := NewAPIHandler(repo, store, cfg)
	router := gin.New()
	h.RegisterRoutes(router, middleware.NewAuthMiddleware(cfg))

	return router, h
}

// doRequest performs one request against the test router. A non-nil body
// is sent as JSON; a non-empty token goes into the Authorization header.
func doRequest(t *testing.T, router *gin.Engine, method, path string, body interface{}, token string) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

// loginToken logs the bootstrap admin in and returns the issued JWT.
func loginToken(t *testing.T, router *gin.Engine) string {
	t.Helper()

	rec := doRequest(t, router, http.MethodPost, "/api/auth/login", map[string]string{
		"email":    "admin@novitatravel.com",
		"password": "admin123",
	}, "")
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var response struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
	require.NotEmpty(t, response.Token)
	return response.Token
}

func decodeJSON(t *testing.T, rec *httptest.ResponseRecorder, out interface{}) {
	t.Helper()
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), out))
}
