package integration_test

import (
	"encoding/json"
	"fmt"
	"net/http"
	"testing"

	"adsense_backend/internal/models"
	"adsense_backend/test/helpers"

	"github.com/stretchr/testify/assert"
)

// TestAdLifecycle - полный путь: компания создает объявление,
// инфлюенсер видит его, принимает, компания получает уведомление,
// из ленты pending объявление исчезает
func TestAdLifecycle(t *testing.T) {
	t.Parallel()

	ts := helpers.NewTestServer(t)
	companyToken, _ := helpers.CreateAndLoginCompany(t, ts)
	influencerToken, influencer := helpers.CreateAndLoginInfluencer(t, ts, "Fashion")

	// Компания создает объявление
	res, bodyStr := ts.SendRequest(t, "POST", "/api/ads", companyToken, map[string]interface{}{
		"title":       "Summer Promo",
		"description": "Promote our summer collection",
		"budget":      500,
		"category":    "Fashion",
	})
	assert.Equal(t, http.StatusCreated, res.StatusCode, "Ответ: "+bodyStr)

	var created struct {
		ID     string `json:"id"`
		Status string `json:"status"`
	}
	assert.NoError(t, json.Unmarshal([]byte(bodyStr), &created))
	assert.Equal(t, "pending", created.Status)

	// Инфлюенсер с категорией Fashion видит его в ленте
	res, bodyStr = ts.SendRequest(t, "GET", "/api/ads", influencerToken, nil)
	assert.Equal(t, http.StatusOK, res.StatusCode)
	assert.Contains(t, bodyStr, "Summer Promo")

	// Инфлюенсер принимает
	res, bodyStr = ts.SendRequest(t, "POST", "/api/ads/"+created.ID+"/accept", influencerToken, nil)
	assert.Equal(t, http.StatusOK, res.StatusCode, "Ответ: "+bodyStr)
	assert.Contains(t, bodyStr, "Ad accepted successfully")

	// Компания получает уведомление с названием и именем инфлюенсера
	res, bodyStr = ts.SendRequest(t, "GET", "/api/users/notifications", companyToken, nil)
	assert.Equal(t, http.StatusOK, res.StatusCode)
	assert.Contains(t, bodyStr, "Summer Promo")
	assert.Contains(t, bodyStr, influencer.Name)

	// Из ленты pending объявление исчезло
	res, bodyStr = ts.SendRequest(t, "GET", "/api/ads", influencerToken, nil)
	assert.Equal(t, http.StatusOK, res.StatusCode)
	assert.NotContains(t, bodyStr, "Summer Promo")

	// Зато появилось в списке принятых
	res, bodyStr = ts.SendRequest(t, "GET", "/api/ads/accepted", influencerToken, nil)
	assert.Equal(t, http.StatusOK, res.StatusCode)
	assert.Contains(t, bodyStr, "Summer Promo")
}

// TestAdFeed_FiltersByCategory - инфлюенсер видит только свои категории
func TestAdFeed_FiltersByCategory(t *testing.T) {
	t.Parallel()

	ts := helpers.NewTestServer(t)
	_, company := helpers.CreateAndLoginCompany(t, ts)
	influencerToken, _ := helpers.CreateAndLoginInfluencer(t, ts, "Tech")

	helpers.CreateAd(t, ts.DB, company.ID, "Gadget Review", "Tech")
	helpers.CreateAd(t, ts.DB, company.ID, "Dress Campaign", "Fashion")

	res, bodyStr := ts.SendRequest(t, "GET", "/api/ads", influencerToken, nil)

	assert.Equal(t, http.StatusOK, res.StatusCode)
	assert.Contains(t, bodyStr, "Gadget Review")
	assert.NotContains(t, bodyStr, "Dress Campaign")
}

// TestAdFeed_EmptyWithoutCategories - инфлюенсер без категорий
// получает пустую ленту, а не все объявления
func TestAdFeed_EmptyWithoutCategories(t *testing.T) {
	t.Parallel()

	ts := helpers.NewTestServer(t)
	_, company := helpers.CreateAndLoginCompany(t, ts)
	helpers.CreateAd(t, ts.DB, company.ID, "Orphan Ad", "Food")

	email := fmt.Sprintf("nocat_%s@test.com", company.ID[:8])
	influencerToken, _ := helpers.CreateAndLoginUser(t, ts, "No Categories", email, "password123", models.UserRoleInfluencer)
	// Сбрасываем категории, проставленные хелпером
	assert.NoError(t, ts.DB.Model(&models.User{}).Where("email = ?", email).Update("categories", nil).Error)

	res, bodyStr := ts.SendRequest(t, "GET", "/api/ads", influencerToken, nil)

	assert.Equal(t, http.StatusOK, res.StatusCode)
	assert.NotContains(t, bodyStr, "Orphan Ad")
}

// TestAcceptAd_SecondDecisionRejected - статус меняется ровно один раз;
// acceptedBy первого победителя не перетирается
func TestAcceptAd_SecondDecisionRejected(t *testing.T) {
	t.Parallel()

	ts := helpers.NewTestServer(t)
	_, company := helpers.CreateAndLoginCompany(t, ts)
	firstToken, firstInf := helpers.CreateAndLoginInfluencer(t, ts, "Travel")
	secondToken, _ := helpers.CreateAndLoginInfluencer(t, ts, "Travel")

	ad := helpers.CreateAd(t, ts.DB, company.ID, "Trip Blog", "Travel")

	res, _ := ts.SendRequest(t, "POST", "/api/ads/"+ad.ID+"/accept", firstToken, nil)
	assert.Equal(t, http.StatusOK, res.StatusCode)

	// Второй accept проигрывает
	res, bodyStr := ts.SendRequest(t, "POST", "/api/ads/"+ad.ID+"/accept", secondToken, nil)
	assert.Equal(t, http.StatusBadRequest, res.StatusCode)
	assert.Contains(t, bodyStr, "Ad is already accepted or rejected")

	// Reject после accept тоже проигрывает
	res, bodyStr = ts.SendRequest(t, "POST", "/api/ads/"+ad.ID+"/reject", secondToken, nil)
	assert.Equal(t, http.StatusBadRequest, res.StatusCode)
	assert.Contains(t, bodyStr, "Ad is already accepted or rejected")

	// acceptedBy остался за первым
	var stored models.Ad
	assert.NoError(t, ts.DB.First(&stored, "id = ?", ad.ID).Error)
	assert.Equal(t, models.AdStatusAccepted, stored.Status)
	if assert.NotNil(t, stored.AcceptedBy) {
		assert.Equal(t, firstInf.ID, *stored.AcceptedBy)
	}
}

// TestRejectAd - отказ переводит в rejected и шлет уведомление
func TestRejectAd(t *testing.T) {
	t.Parallel()

	ts := helpers.NewTestServer(t)
	companyToken, company := helpers.CreateAndLoginCompany(t, ts)
	influencerToken, influencer := helpers.CreateAndLoginInfluencer(t, ts, "Food")

	ad := helpers.CreateAd(t, ts.DB, company.ID, "Tasting Menu", "Food")

	res, bodyStr := ts.SendRequest(t, "POST", "/api/ads/"+ad.ID+"/reject", influencerToken, nil)
	assert.Equal(t, http.StatusOK, res.StatusCode)
	assert.Contains(t, bodyStr, "Ad rejected successfully")

	var stored models.Ad
	assert.NoError(t, ts.DB.First(&stored, "id = ?", ad.ID).Error)
	assert.Equal(t, models.AdStatusRejected, stored.Status)
	assert.Nil(t, stored.AcceptedBy)

	// Ровно одно уведомление об отказе
	var count int64
	assert.NoError(t, ts.DB.Model(&models.Notification{}).
		Where("user_id = ?", company.ID).Count(&count).Error)
	assert.Equal(t, int64(1), count)

	res, bodyStr = ts.SendRequest(t, "GET", "/api/users/notifications", companyToken, nil)
	assert.Equal(t, http.StatusOK, res.StatusCode)
	assert.Contains(t, bodyStr, "rejected")
	assert.Contains(t, bodyStr, influencer.Name)
}

// TestSubmitProof - proof пишется один раз и только принявшим
func TestSubmitProof(t *testing.T) {
	t.Parallel()

	ts := helpers.NewTestServer(t)
	_, company := helpers.CreateAndLoginCompany(t, ts)
	acceptorToken, _ := helpers.CreateAndLoginInfluencer(t, ts, "Fitness")
	otherToken, _ := helpers.CreateAndLoginInfluencer(t, ts, "Fitness")

	ad := helpers.CreateAd(t, ts.DB, company.ID, "Gym Challenge", "Fitness")

	res, _ := ts.SendRequest(t, "POST", "/api/ads/"+ad.ID+"/accept", acceptorToken, nil)
	assert.Equal(t, http.StatusOK, res.StatusCode)

	// Чужой инфлюенсер не может прислать proof
	res, bodyStr := ts.SendRequest(t, "POST", "/api/ads/"+ad.ID+"/submit-proof", otherToken, map[string]interface{}{
		"link": "https://instagram.com/p/fake",
	})
	assert.Equal(t, http.StatusForbidden, res.StatusCode, "Ответ: "+bodyStr)

	// Принявший может
	res, bodyStr = ts.SendRequest(t, "POST", "/api/ads/"+ad.ID+"/submit-proof", acceptorToken, map[string]interface{}{
		"link":        "https://instagram.com/p/real",
		"description": "Story + post",
	})
	assert.Equal(t, http.StatusOK, res.StatusCode, "Ответ: "+bodyStr)
	assert.Contains(t, bodyStr, "Proof submitted successfully")

	// Повторная отправка - 400, первый proof не перетирается
	res, bodyStr = ts.SendRequest(t, "POST", "/api/ads/"+ad.ID+"/submit-proof", acceptorToken, map[string]interface{}{
		"link": "https://instagram.com/p/second",
	})
	assert.Equal(t, http.StatusBadRequest, res.StatusCode)
	assert.Contains(t, bodyStr, "Proof has already been submitted")

	var stored models.Ad
	assert.NoError(t, ts.DB.First(&stored, "id = ?", ad.ID).Error)
	assert.Equal(t, "https://instagram.com/p/real", stored.Proof.Link)
	assert.NotNil(t, stored.Proof.SubmittedAt)
}

// TestMyAds - компания видит свои объявления с именем принявшего
func TestMyAds(t *testing.T) {
	t.Parallel()

	ts := helpers.NewTestServer(t)
	companyToken, company := helpers.CreateAndLoginCompany(t, ts)
	influencerToken, influencer := helpers.CreateAndLoginInfluencer(t, ts, "Tech")

	ad := helpers.CreateAd(t, ts.DB, company.ID, "Laptop Unboxing", "Tech")

	res, _ := ts.SendRequest(t, "POST", "/api/ads/"+ad.ID+"/accept", influencerToken, nil)
	assert.Equal(t, http.StatusOK, res.StatusCode)

	res, bodyStr := ts.SendRequest(t, "GET", "/api/ads/my-ads", companyToken, nil)
	assert.Equal(t, http.StatusOK, res.StatusCode)
	assert.Contains(t, bodyStr, "Laptop Unboxing")
	assert.Contains(t, bodyStr, influencer.Name)
}

// TestDeleteAd - удаление доступно только владельцу
func TestDeleteAd(t *testing.T) {
	t.Parallel()

	ts := helpers.NewTestServer(t)
	ownerToken, owner := helpers.CreateAndLoginCompany(t, ts)
	strangerToken, _ := helpers.CreateAndLoginCompany(t, ts)

	ad := helpers.CreateAd(t, ts.DB, owner.ID, "Doomed Ad", "Travel")

	// Чужая компания получает 403, объявление на месте
	res, bodyStr := ts.SendRequest(t, "DELETE", "/api/ads/"+ad.ID, strangerToken, nil)
	assert.Equal(t, http.StatusForbidden, res.StatusCode)
	assert.Contains(t, bodyStr, "not authorized to delete")

	var count int64
	assert.NoError(t, ts.DB.Model(&models.Ad{}).Where("id = ?", ad.ID).Count(&count).Error)
	assert.Equal(t, int64(1), count)

	// Владелец удаляет
	res, bodyStr = ts.SendRequest(t, "DELETE", "/api/ads/"+ad.ID, ownerToken, nil)
	assert.Equal(t, http.StatusOK, res.StatusCode)
	assert.Contains(t, bodyStr, "Ad deleted successfully")

	assert.NoError(t, ts.DB.Model(&models.Ad{}).Where("id = ?", ad.ID).Count(&count).Error)
	assert.Equal(t, int64(0), count)
}

// TestAdRoutes_RoleGuards - ролевые ограничения маршрутов
func TestAdRoutes_RoleGuards(t *testing.T) {
	t.Parallel()

	ts := helpers.NewTestServer(t)
	companyToken, _ := helpers.CreateAndLoginCompany(t, ts)
	influencerToken, _ := helpers.CreateAndLoginInfluencer(t, ts)

	// Инфлюенсер не может создать объявление
	res, _ := ts.SendRequest(t, "POST", "/api/ads", influencerToken, map[string]interface{}{
		"title":       "Sneaky Ad",
		"description": "Should not exist",
		"budget":      100,
		"category":    "Tech",
	})
	assert.Equal(t, http.StatusForbidden, res.StatusCode)

	// Компания не может читать ленту инфлюенсера
	res, _ = ts.SendRequest(t, "GET", "/api/ads", companyToken, nil)
	assert.Equal(t, http.StatusForbidden, res.StatusCode)

	// И не может принимать объявления
	res, _ = ts.SendRequest(t, "POST", "/api/ads/some-id/accept", companyToken, nil)
	assert.Equal(t, http.StatusForbidden, res.StatusCode)
}

// TestCreateAd_Validation - бюджет и категория проверяются на границе
func TestCreateAd_Validation(t *testing.T) {
	t.Parallel()

	ts := helpers.NewTestServer(t)
	companyToken, _ := helpers.CreateAndLoginCompany(t, ts)

	// Отрицательный бюджет
	res, _ := ts.SendRequest(t, "POST", "/api/ads", companyToken, map[string]interface{}{
		"title":       "Bad Budget",
		"description": "x",
		"budget":      -5,
		"category":    "Tech",
	})
	assert.Equal(t, http.StatusBadRequest, res.StatusCode)

	// Категория вне enum
	res, _ = ts.SendRequest(t, "POST", "/api/ads", companyToken, map[string]interface{}{
		"title":       "Bad Category",
		"description": "x",
		"budget":      100,
		"category":    "Gardening",
	})
	assert.Equal(t, http.StatusBadRequest, res.StatusCode)

	// Нулевой бюджет допустим
	res, _ = ts.SendRequest(t, "POST", "/api/ads", companyToken, map[string]interface{}{
		"title":       "Zero Budget",
		"description": "x",
		"budget":      0,
		"category":    "Tech",
	})
	assert.Equal(t, http.StatusCreated, res.StatusCode)
}
