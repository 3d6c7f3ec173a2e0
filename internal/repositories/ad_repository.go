package repositories

import (
	"errors"
	"time"

	"adsense_backend/internal/models"

	"gorm.io/gorm"
)

var (
	ErrAdNotFound = errors.New("ad not found")
)

type AdRepository interface {
	Create(db *gorm.DB, ad *models.Ad) error
	FindByID(db *gorm.DB, id string) (*models.Ad, error)
	FindPendingByCategories(db *gorm.DB, categories []string) ([]models.Ad, error)
	FindByCompany(db *gorm.DB, companyID string) ([]models.Ad, error)
	FindAcceptedBy(db *gorm.DB, influencerID string) ([]models.Ad, error)
	UpdateStatusIfPending(db *gorm.DB, adID string, status models.AdStatus, acceptedBy *string) (bool, error)
	SubmitProof(db *gorm.DB, adID string, proof models.AdProof) (bool, error)
	Delete(db *gorm.DB, adID string) error
}

type AdRepositoryImpl struct{}

func NewAdRepository() AdRepository {
	return &AdRepositoryImpl{}
}

func (r *AdRepositoryImpl) Create(db *gorm.DB, ad *models.Ad) error {
	return db.Create(ad).Error
}

func (r *AdRepositoryImpl) FindByID(db *gorm.DB, id string) (*models.Ad, error) {
	var ad models.Ad
	err := db.First(&ad, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAdNotFound
		}
		return nil, err
	}
	return &ad, nil
}

func (r *AdRepositoryImpl) FindPendingByCategories(db *gorm.DB, categories []string) ([]models.Ad, error) {
	ads := []models.Ad{}
	if len(categories) == 0 {
		return ads, nil
	}
	err := db.
		Where("status = ? AND category IN ?", models.AdStatusPending, categories).
		Order("created_at DESC").
		Find(&ads).Error
	return ads, err
}

func (r *AdRepositoryImpl) FindByCompany(db *gorm.DB, companyID string) ([]models.Ad, error) {
	ads := []models.Ad{}
	err := db.
		Where("company_id = ?", companyID).
		Order("created_at DESC").
		Find(&ads).Error
	return ads, err
}

func (r *AdRepositoryImpl) FindAcceptedBy(db *gorm.DB, influencerID string) ([]models.Ad, error) {
	ads := []models.Ad{}
	err := db.
		Where("accepted_by = ? AND status = ?", influencerID, models.AdStatusAccepted).
		Order("created_at DESC").
		Find(&ads).Error
	return ads, err
}

// UpdateStatusIfPending выполняет условный переход статуса:
// запись меняется только если она все еще pending. Возвращает false,
// если кто-то успел раньше (или статус уже терминален) - это закрывает
// гонку конкурирующих accept/reject одним UPDATE ... WHERE status='pending'.
func (r *AdRepositoryImpl) UpdateStatusIfPending(db *gorm.DB, adID string, status models.AdStatus, acceptedBy *string) (bool, error) {
	updates := map[string]interface{}{
		"status": status,
	}
	if acceptedBy != nil {
		updates["accepted_by"] = *acceptedBy
	}

	result := db.Model(&models.Ad{}).
		Where("id = ? AND status = ?", adID, models.AdStatusPending).
		Updates(updates)
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

// SubmitProof пишет proof только если его еще не было (write-once
// гарантируется условием proof_submitted_at IS NULL)
func (r *AdRepositoryImpl) SubmitProof(db *gorm.DB, adID string, proof models.AdProof) (bool, error) {
	now := time.Now()
	result := db.Model(&models.Ad{}).
		Where("id = ? AND proof_submitted_at IS NULL", adID).
		Updates(map[string]interface{}{
			"proof_link":         proof.Link,
			"proof_description":  proof.Description,
			"proof_submitted_at": now,
		})
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

func (r *AdRepositoryImpl) Delete(db *gorm.DB, adID string) error {
	return db.Delete(&models.Ad{}, "id = ?", adID).Error
}
