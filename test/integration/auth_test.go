package integration_test

import (
	"encoding/json"
	"net/http"
	"testing"

	"adsense_backend/internal/models"
	"adsense_backend/test/helpers"

	"github.com/stretchr/testify/assert"
)

// TestSignup_Company - регистрация компании возвращает токен и пользователя
func TestSignup_Company(t *testing.T) {
	t.Parallel()

	ts := helpers.NewTestServer(t)

	signupBody := map[string]interface{}{
		"role":        "company",
		"name":        "Acme Corp",
		"email":       "acme@test.com",
		"password":    "password123",
		"contactInfo": "+7 777 123 4567",
		"industry":    "Retail",
		"companySize": "50-100",
		"website":     "https://acme.example",
	}

	res, bodyStr := ts.SendRequest(t, "POST", "/api/users/signup", "", signupBody)

	assert.Equal(t, http.StatusCreated, res.StatusCode, "Ответ: "+bodyStr)

	var resp struct {
		Token string `json:"token"`
		User  struct {
			ID       string `json:"id"`
			Role     string `json:"role"`
			Email    string `json:"email"`
			Industry string `json:"industry"`
		} `json:"user"`
	}
	assert.NoError(t, json.Unmarshal([]byte(bodyStr), &resp))
	assert.NotEmpty(t, resp.Token)
	assert.NotEmpty(t, resp.User.ID)
	assert.Equal(t, "company", resp.User.Role)
	assert.Equal(t, "acme@test.com", resp.User.Email)
	assert.Equal(t, "Retail", resp.User.Industry)

	// Пароль не должен утекать ни в каком виде
	assert.NotContains(t, bodyStr, "password")
	assert.NotContains(t, bodyStr, "$2a$")
}

// TestSignup_Influencer - ролевые поля инфлюенсера сохраняются
func TestSignup_Influencer(t *testing.T) {
	t.Parallel()

	ts := helpers.NewTestServer(t)

	signupBody := map[string]interface{}{
		"role":        "influencer",
		"name":        "Dana Blogger",
		"email":       "dana@test.com",
		"password":    "password123",
		"contactInfo": "+7 777 765 4321",
		"socialMedia": []map[string]interface{}{
			{"platform": "Instagram", "followers": 120000},
			{"platform": "TikTok", "followers": 45000},
		},
		"categories": []string{"Fashion", "Travel"},
	}

	res, bodyStr := ts.SendRequest(t, "POST", "/api/users/signup", "", signupBody)

	assert.Equal(t, http.StatusCreated, res.StatusCode, "Ответ: "+bodyStr)
	assert.Contains(t, bodyStr, "Instagram")
	assert.Contains(t, bodyStr, "Fashion")
	assert.NotContains(t, bodyStr, "password")
}

// TestSignup_DuplicateEmail - повторная регистрация отвечает 400
func TestSignup_DuplicateEmail(t *testing.T) {
	t.Parallel()

	ts := helpers.NewTestServer(t)

	err := helpers.CreateUser(t, ts.DB, &models.User{
		Name:         "User One",
		Email:        "duplicate@test.com",
		PasswordHash: "pass123",
		Role:         models.UserRoleCompany,
	})
	assert.NoError(t, err)

	duplicateBody := map[string]interface{}{
		"role":        "company",
		"name":        "User Two",
		"email":       "duplicate@test.com",
		"password":    "password123",
		"contactInfo": "+7 777 000 0000",
	}
	res, bodyStr := ts.SendRequest(t, "POST", "/api/users/signup", "", duplicateBody)

	assert.Equal(t, http.StatusBadRequest, res.StatusCode)
	assert.Contains(t, bodyStr, "User already exists")
}

// TestSignup_InvalidCategory - категория вне enum отклоняется валидатором
func TestSignup_InvalidCategory(t *testing.T) {
	t.Parallel()

	ts := helpers.NewTestServer(t)

	signupBody := map[string]interface{}{
		"role":        "influencer",
		"name":        "Bad Category",
		"email":       "badcat@test.com",
		"password":    "password123",
		"contactInfo": "+7 777 111 1111",
		"categories":  []string{"Gardening"},
	}
	res, _ := ts.SendRequest(t, "POST", "/api/users/signup", "", signupBody)

	assert.Equal(t, http.StatusBadRequest, res.StatusCode)
}

// TestLogin_Success - логин выдает свежий токен
func TestLogin_Success(t *testing.T) {
	t.Parallel()

	ts := helpers.NewTestServer(t)

	token, user := helpers.CreateAndLoginCompany(t, ts)
	assert.NotEmpty(t, token)
	assert.NotEmpty(t, user.ID)
}

// TestLogin_BadPassword - неверный пароль отвечает 400, не раскрывая деталей
func TestLogin_BadPassword(t *testing.T) {
	t.Parallel()

	ts := helpers.NewTestServer(t)

	err := helpers.CreateUser(t, ts.DB, &models.User{
		Name:         "Login User",
		Email:        "login@test.com",
		PasswordHash: "correct-password",
		Role:         models.UserRoleCompany,
	})
	assert.NoError(t, err)

	res, bodyStr := ts.SendRequest(t, "POST", "/api/users/login", "", map[string]interface{}{
		"email":    "login@test.com",
		"password": "wrong-password",
	})

	assert.Equal(t, http.StatusBadRequest, res.StatusCode)
	assert.Contains(t, bodyStr, "Invalid credentials")
}

// TestLogin_UnknownEmail - несуществующий email дает тот же ответ,
// что и неверный пароль
func TestLogin_UnknownEmail(t *testing.T) {
	t.Parallel()

	ts := helpers.NewTestServer(t)

	res, bodyStr := ts.SendRequest(t, "POST", "/api/users/login", "", map[string]interface{}{
		"email":    "nobody@test.com",
		"password": "whatever123",
	})

	assert.Equal(t, http.StatusBadRequest, res.StatusCode)
	assert.Contains(t, bodyStr, "Invalid credentials")
}
