package app

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"sync"
	"testing"
	"time"

	"wematch_backend/internal/config"
	"wematch_backend/internal/database"
	"wematch_backend/internal/models"
	"wematch_backend/internal/services"
	"wematch_backend/pkg/contextkeys"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// TestServer - роутер приложения поверх тестовой БД. Каждый тест работает в своей транзакции.
type TestServer struct {
	Router    *gin.Engine
	DB        *gorm.DB
	Services  *services.ServiceContainer
	ImagesDir string
}

var (
	globalTestServer *TestServer
	serverOnce       sync.Once
	serverErr        error
)

// GetTestServer возвращает общий сервер (создает при первом вызове).
// Без TEST_DATABASE_URL тест пропускается.
func GetTestServer(t *testing.T) *TestServer {
	t.Helper()
	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("TEST_DATABASE_URL не задан, пропускаем интеграционный тест")
	}

	serverOnce.Do(func() {
		globalTestServer, serverErr = newTestServer(dsn)
	})
	require.NoError(t, serverErr, "Не удалось поднять тестовый сервер")
	return globalTestServer
}

func newTestServer(dsn string) (*TestServer, error) {
	imagesDir, err := os.MkdirTemp("", "wematch-images-*")
	if err != nil {
		return nil, err
	}

	cfg := &config.Config{}
	cfg.Server.Env = "test"
	cfg.Server.CORSOrigins = []string{"*"}
	cfg.Database.DSN = dsn
	cfg.Database.MaxOpenConns = 10
	cfg.Database.MaxIdleConns = 2
	cfg.Database.ConnMaxLifetimeMin = 5
	cfg.JWT.Secret = "integration-secret"
	cfg.JWT.TTL = 15
	cfg.Storage.Type = "local"
	cfg.Storage.BasePath = imagesDir
	cfg.Storage.BaseURL = "/images"
	cfg.Upload.MaxSize = 1 << 20
	cfg.Upload.AllowedTypes = []string{"image/jpeg", "image/png", "image/webp"}
	cfg.Upload.ImageQuality = 80
	cfg.Upload.MaxDimension = 256
	cfg.Upload.MaxPixels = 4_000_000

	db, err := database.Open(cfg)
	if err != nil {
		return nil, fmt.Errorf("open: %w", err)
	}
	if err := database.Migrate(db); err != nil {
		return nil, fmt.Errorf("migrate: %w", err)
	}

	router, container, err := SetupRouter(cfg, db)
	if err != nil {
		return nil, err
	}
	return &TestServer{Router: router, DB: db, Services: container, ImagesDir: imagesDir}, nil
}

// BeginTransaction открывает транзакцию, которая откатится по окончании теста
func (ts *TestServer) BeginTransaction(t *testing.T) *gorm.DB {
	t.Helper()
	tx := ts.DB.Begin()
	require.NoError(t, tx.Error, "Не удалось открыть транзакцию")
	t.Cleanup(func() { tx.Rollback() })
	return tx
}

// SendRequest отправляет JSON-запрос. Транзакция передается через контекст и подхватывается DBMiddleware.
func (ts *TestServer) SendRequest(t *testing.T, tx *gorm.DB, method, path, token string, body interface{}) (*http.Response, string) {
	t.Helper()

	var reqBody io.Reader
	if body != nil {
		jsonBody, err := json.Marshal(body)
		require.NoError(t, err, "Ошибка кодирования JSON для запроса")
		reqBody = bytes.NewReader(jsonBody)
	}

	req := httptest.NewRequest(method, path, reqBody)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	return ts.Do(t, tx, req, token)
}

// Do выполняет готовый запрос (например, multipart)
func (ts *TestServer) Do(t *testing.T, tx *gorm.DB, req *http.Request, token string) (*http.Response, string) {
	t.Helper()
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	if tx != nil {
		req = req.WithContext(context.WithValue(req.Context(), contextkeys.DBContextKey, tx))
	}

	w := httptest.NewRecorder()
	ts.Router.ServeHTTP(w, req)
	res := w.Result()
	return res, w.Body.String()
}

// uniqueEmail - email, не пересекающийся между параллельными тестами
func uniqueEmail(prefix string) string {
	return fmt.Sprintf("%s_%d@test.com", prefix, time.Now().UnixNano())
}

// RegisterAndLogin регистрирует пользователя через API и возвращает токен и ID
func (ts *TestServer) RegisterAndLogin(t *testing.T, tx *gorm.DB, role models.UserRole) (string, string) {
	t.Helper()
	email := uniqueEmail(string(role))
	password := "password123"

	res, body := ts.SendRequest(t, tx, http.MethodPost, "/api/v1/auth/register", "", map[string]interface{}{
		"email":     email,
		"password":  password,
		"firstName": "Test",
		"lastName":  "User",
		"role":      role,
	})
	require.Equal(t, http.StatusCreated, res.StatusCode, "Регистрация должна пройти. Ответ: "+body)

	return ts.Login(t, tx, email, password)
}

// CreateAdmin создает SUPER_ADMIN напрямую через сервис (регистрация такой роли запрещена)
func (ts *TestServer) CreateAdmin(t *testing.T, tx *gorm.DB) (string, string) {
	t.Helper()
	email := uniqueEmail("admin")
	created, err := ts.Services.UserService.EnsureAdmin(context.Background(), tx, email, "password123", "Root", "Admin")
	require.NoError(t, err)
	require.True(t, created)
	return ts.Login(t, tx, email, "password123")
}

func (ts *TestServer) Login(t *testing.T, tx *gorm.DB, email, password string) (string, string) {
	t.Helper()
	res, body := ts.SendRequest(t, tx, http.MethodPost, "/api/v1/auth/login", "", map[string]interface{}{
		"email":    email,
		"password": password,
	})
	require.Equal(t, http.StatusOK, res.StatusCode, "Логин должен быть успешным. Ответ: "+body)

	var login struct {
		AccessToken string `json:"accessToken"`
		User        struct {
			ID string `json:"id"`
		} `json:"user"`
	}
	require.NoError(t, json.Unmarshal([]byte(body), &login))
	require.NotEmpty(t, login.AccessToken, "Токен не должен быть пустым")
	return login.AccessToken, login.User.ID
}

func decodeJSON[T any](t *testing.T, body string) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal([]byte(body), &v), body)
	return v
}
