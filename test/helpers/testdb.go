package helpers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"testing"
	"time"

	"adsense_backend/internal/models"

	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// CreateUser создает пользователя напрямую в транзакции.
// Сырой пароль в PasswordHash хешируется на месте.
func CreateUser(t *testing.T, db *gorm.DB, user *models.User) error {
	t.Helper()

	if user.PasswordHash != "" && !strings.HasPrefix(user.PasswordHash, "$2a$") {
		hashed, err := bcrypt.GenerateFromPassword([]byte(user.PasswordHash), bcrypt.DefaultCost)
		if err != nil {
			t.Fatalf("Не удалось хешировать пароль: %v", err)
		}
		user.PasswordHash = string(hashed)
	}
	if user.ContactInfo == "" {
		user.ContactInfo = "+7 700 000 0000"
	}

	return db.Create(user).Error
}

// CreateAndLoginUser создает пользователя и логинит его через API
func CreateAndLoginUser(t *testing.T, ts *TestServer, name, email, password string, role models.UserRole) (string, *models.User) {
	t.Helper()

	user := &models.User{
		Name:         name,
		Email:        email,
		PasswordHash: password,
		Role:         role,
	}
	if role == models.UserRoleInfluencer && user.Categories == nil {
		user.Categories = datatypes.JSON(`["Fashion"]`)
	}
	err := CreateUser(t, ts.DB, user)
	assert.NoError(t, err, "Создание тестового пользователя не должно вызывать ошибку")

	loginBody := map[string]interface{}{
		"email":    email,
		"password": password,
	}
	res, bodyStr := ts.SendRequest(t, http.MethodPost, "/api/users/login", "", loginBody)
	assert.Equal(t, http.StatusOK, res.StatusCode, "Логин должен быть успешным. Ответ: "+bodyStr)

	var loginResponse struct {
		Token string `json:"token"`
	}
	err = json.Unmarshal([]byte(bodyStr), &loginResponse)
	assert.NoError(t, err, "Не удалось распарсить JSON")
	assert.NotEmpty(t, loginResponse.Token, "Токен не должен быть пустым")

	return loginResponse.Token, user
}

// CreateAndLoginCompany создает компанию с уникальным email
func CreateAndLoginCompany(t *testing.T, ts *TestServer) (string, *models.User) {
	t.Helper()

	email := fmt.Sprintf("company_%d@test.com", time.Now().UnixNano())
	return CreateAndLoginUser(t, ts, "Test Company", email, "password123", models.UserRoleCompany)
}

// CreateAndLoginInfluencer создает инфлюенсера с заданными категориями
func CreateAndLoginInfluencer(t *testing.T, ts *TestServer, categories ...string) (string, *models.User) {
	t.Helper()

	if len(categories) == 0 {
		categories = []string{"Fashion"}
	}
	categoriesJSON, err := json.Marshal(categories)
	assert.NoError(t, err)

	email := fmt.Sprintf("influencer_%d@test.com", time.Now().UnixNano())
	user := &models.User{
		Name:         "Test Influencer",
		Email:        email,
		PasswordHash: "password123",
		Role:         models.UserRoleInfluencer,
		Categories:   datatypes.JSON(categoriesJSON),
		SocialMedia:  datatypes.JSON(`[{"platform":"Instagram","followers":10000}]`),
	}
	err = CreateUser(t, ts.DB, user)
	assert.NoError(t, err, "Создание тестового инфлюенсера не должно вызывать ошибку")

	loginBody := map[string]interface{}{
		"email":    email,
		"password": "password123",
	}
	res, bodyStr := ts.SendRequest(t, http.MethodPost, "/api/users/login", "", loginBody)
	assert.Equal(t, http.StatusOK, res.StatusCode, "Логин должен быть успешным. Ответ: "+bodyStr)

	var loginResponse struct {
		Token string `json:"token"`
	}
	err = json.Unmarshal([]byte(bodyStr), &loginResponse)
	assert.NoError(t, err)

	return loginResponse.Token, user
}

// CreateAd создает объявление напрямую в транзакции
func CreateAd(t *testing.T, db *gorm.DB, companyID, title, category string) *models.Ad {
	t.Helper()

	ad := &models.Ad{
		Title:       title,
		Description: "Test description",
		Budget:      500,
		Category:    category,
		CompanyID:   companyID,
		Status:      models.AdStatusPending,
	}
	if err := db.Create(ad).Error; err != nil {
		t.Fatalf("Не удалось создать тестовое объявление: %v", err)
	}
	return ad
}
