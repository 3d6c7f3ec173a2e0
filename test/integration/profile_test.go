package integration_test

import (
	"encoding/json"
	"net/http"
	"testing"

	"adsense_backend/test/helpers"

	"github.com/stretchr/testify/assert"
)

// TestGetProfile_Success - профиль возвращается без пароля
func TestGetProfile_Success(t *testing.T) {
	t.Parallel()

	ts := helpers.NewTestServer(t)
	token, user := helpers.CreateAndLoginCompany(t, ts)

	res, bodyStr := ts.SendRequest(t, "GET", "/api/users/profile", token, nil)

	assert.Equal(t, http.StatusOK, res.StatusCode)
	assert.Contains(t, bodyStr, user.Email)
	assert.Contains(t, bodyStr, user.Name)
	assert.NotContains(t, bodyStr, "password")
	assert.NotContains(t, bodyStr, "$2a$")
}

// TestGetProfile_NoToken - без токена отвечаем 401
func TestGetProfile_NoToken(t *testing.T) {
	t.Parallel()

	ts := helpers.NewTestServer(t)

	res, bodyStr := ts.SendRequest(t, "GET", "/api/users/profile", "", nil)

	assert.Equal(t, http.StatusUnauthorized, res.StatusCode)
	assert.Contains(t, bodyStr, "No token provided")
}

// TestGetProfile_GarbageToken - мусорный токен отвечает 401
func TestGetProfile_GarbageToken(t *testing.T) {
	t.Parallel()

	ts := helpers.NewTestServer(t)

	res, bodyStr := ts.SendRequest(t, "GET", "/api/users/profile", "not-a-jwt", nil)

	assert.Equal(t, http.StatusUnauthorized, res.StatusCode)
	assert.Contains(t, bodyStr, "Invalid token")
}

// TestUpdateProfile_Partial - обновляются только переданные поля
func TestUpdateProfile_Partial(t *testing.T) {
	t.Parallel()

	ts := helpers.NewTestServer(t)
	token, user := helpers.CreateAndLoginCompany(t, ts)

	res, bodyStr := ts.SendRequest(t, "PUT", "/api/users/profile", token, map[string]interface{}{
		"description": "We sell umbrellas",
	})

	assert.Equal(t, http.StatusOK, res.StatusCode)

	var resp struct {
		Name        string `json:"name"`
		Email       string `json:"email"`
		Description string `json:"description"`
	}
	assert.NoError(t, json.Unmarshal([]byte(bodyStr), &resp))
	assert.Equal(t, "We sell umbrellas", resp.Description)
	// Непереданные поля не затерты
	assert.Equal(t, user.Name, resp.Name)
	assert.Equal(t, user.Email, resp.Email)
}

// TestUpdateProfile_RoleFieldsIgnoredForOtherRole - компания не может
// получить поля инфлюенсера через обновление профиля
func TestUpdateProfile_RoleFieldsIgnoredForOtherRole(t *testing.T) {
	t.Parallel()

	ts := helpers.NewTestServer(t)
	token, _ := helpers.CreateAndLoginCompany(t, ts)

	res, bodyStr := ts.SendRequest(t, "PUT", "/api/users/profile", token, map[string]interface{}{
		"categories": []string{"Fashion"},
		"industry":   "Logistics",
	})

	assert.Equal(t, http.StatusOK, res.StatusCode)

	var resp struct {
		Industry   string   `json:"industry"`
		Categories []string `json:"categories"`
	}
	assert.NoError(t, json.Unmarshal([]byte(bodyStr), &resp))
	assert.Equal(t, "Logistics", resp.Industry)
	// Ролевое поле чужой роли молча отброшено
	assert.Empty(t, resp.Categories)
}

// TestDiscoverInfluencers - поиск по имени, категориям и подписчикам
func TestDiscoverInfluencers(t *testing.T) {
	t.Parallel()

	ts := helpers.NewTestServer(t)
	companyToken, _ := helpers.CreateAndLoginCompany(t, ts)

	_, fashionInf := helpers.CreateAndLoginInfluencer(t, ts, "Fashion")
	_, techInf := helpers.CreateAndLoginInfluencer(t, ts, "Tech")

	// Фильтр по категории
	res, bodyStr := ts.SendRequest(t, "GET", "/api/users/influencers?categories=Fashion", companyToken, nil)
	assert.Equal(t, http.StatusOK, res.StatusCode)
	assert.Contains(t, bodyStr, fashionInf.Email)
	assert.NotContains(t, bodyStr, techInf.Email)

	// Фильтр по минимуму подписчиков: у тестовых инфлюенсеров 10000
	res, bodyStr = ts.SendRequest(t, "GET", "/api/users/influencers?minFollowers=20000", companyToken, nil)
	assert.Equal(t, http.StatusOK, res.StatusCode)
	assert.NotContains(t, bodyStr, fashionInf.Email)
	assert.NotContains(t, bodyStr, techInf.Email)

	// Без фильтров возвращаются оба
	res, bodyStr = ts.SendRequest(t, "GET", "/api/users/influencers", companyToken, nil)
	assert.Equal(t, http.StatusOK, res.StatusCode)
	assert.Contains(t, bodyStr, fashionInf.Email)
	assert.Contains(t, bodyStr, techInf.Email)
}

// TestDiscoverInfluencers_CommaJoinedCategories - клиент шлет категории
// одной строкой через запятую; она должна разбираться в список,
// а не отклоняться валидатором
func TestDiscoverInfluencers_CommaJoinedCategories(t *testing.T) {
	t.Parallel()

	ts := helpers.NewTestServer(t)
	companyToken, _ := helpers.CreateAndLoginCompany(t, ts)

	_, fashionInf := helpers.CreateAndLoginInfluencer(t, ts, "Fashion")
	_, techInf := helpers.CreateAndLoginInfluencer(t, ts, "Tech")
	_, foodInf := helpers.CreateAndLoginInfluencer(t, ts, "Food")

	res, bodyStr := ts.SendRequest(t, "GET", "/api/users/influencers?categories=Fashion,Tech", companyToken, nil)

	assert.Equal(t, http.StatusOK, res.StatusCode, "Ответ: "+bodyStr)
	assert.Contains(t, bodyStr, fashionInf.Email)
	assert.Contains(t, bodyStr, techInf.Email)
	assert.NotContains(t, bodyStr, foodInf.Email)

	// Неизвестная категория внутри списка все еще отклоняется
	res, _ = ts.SendRequest(t, "GET", "/api/users/influencers?categories=Fashion,Gardening", companyToken, nil)
	assert.Equal(t, http.StatusBadRequest, res.StatusCode)
}
