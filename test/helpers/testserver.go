package helpers

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"sync"
	"testing"

	"adsense_backend/internal/app"
	"adsense_backend/internal/config"
	"adsense_backend/internal/database"

	"gorm.io/gorm"
)

var (
	poolOnce sync.Once
	pool     *gorm.DB
	poolErr  error
)

// TestServer - httptest-сервер поверх одной транзакции БД.
// Каждый тест получает свой сервер и свою транзакцию: роллбэк в конце
// убирает все следы, тесты не видят данных друг друга и могут идти
// параллельно.
type TestServer struct {
	Server *httptest.Server
	DB     *gorm.DB // транзакция этого теста
}

// NewTestServer подключается к тестовой БД (DATABASE_URL), прогоняет
// миграции один раз на пакет и поднимает сервер поверх новой транзакции.
// Без DATABASE_URL тест пропускается: юнит-тесты БД не требуют.
func NewTestServer(t *testing.T) *TestServer {
	t.Helper()

	if os.Getenv("DATABASE_URL") == "" {
		t.Skip("DATABASE_URL is not set, skipping integration test")
	}
	if os.Getenv("JWT_SECRET") == "" {
		os.Setenv("JWT_SECRET", "integration-test-secret")
	}

	poolOnce.Do(func() {
		config.LoadConfig()

		pool, poolErr = database.Connect()
		if poolErr != nil {
			return
		}
		poolErr = database.AutoMigrate(pool)
	})
	if poolErr != nil {
		t.Fatalf("Не удалось подготовить тестовую БД: %v", poolErr)
	}

	tx := pool.Begin()
	if tx.Error != nil {
		t.Fatalf("Не удалось открыть транзакцию: %v", tx.Error)
	}

	router := app.SetupRouter(config.GetConfig(), tx)
	server := httptest.NewServer(router)

	t.Cleanup(func() {
		server.Close()
		tx.Rollback()
	})

	return &TestServer{
		Server: server,
		DB:     tx,
	}
}

// SendRequest выполняет запрос к тестовому серверу и возвращает
// ответ вместе с прочитанным телом.
func (ts *TestServer) SendRequest(t *testing.T, method, path, token string, body interface{}) (*http.Response, string) {
	t.Helper()

	url := ts.Server.URL + path

	var reqBody io.Reader
	if body != nil {
		jsonBody, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("Ошибка кодирования JSON для запроса: %v", err)
		}
		reqBody = bytes.NewBuffer(jsonBody)
	}

	req, err := http.NewRequest(method, url, reqBody)
	if err != nil {
		t.Fatalf("Ошибка создания HTTP-запроса: %v", err)
	}

	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	res, err := ts.Server.Client().Do(req)
	if err != nil {
		t.Fatalf("Ошибка отправки HTTP-запроса: %v", err)
	}
	defer res.Body.Close()

	resBodyBytes, err := io.ReadAll(res.Body)
	if err != nil {
		t.Fatalf("Ошибка чтения тела ответа: %v", err)
	}

	return res, string(resBodyBytes)
}
