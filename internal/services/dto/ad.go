package dto

import (
	"time"

	"adsense_backend/internal/models"
)

// CreateAdRequest - создание объявления компанией.
// Бюджет и категория проверяются явно на границе, а не схемой БД.
type CreateAdRequest struct {
	Title       string   `json:"title" validate:"required"`
	Description string   `json:"description" validate:"required"`
	Budget      *float64 `json:"budget" validate:"required,gte=0"`
	Category    string   `json:"category" validate:"required,is-ad-category"`
}

// SubmitProofRequest - доказательство выполнения принятого объявления
type SubmitProofRequest struct {
	Link        string `json:"link" validate:"required"`
	Description string `json:"description,omitempty"`
}

// AdResponse - объявление, обогащенное именами сторон:
// для инфлюенсера - именем компании, для компании - именем принявшего.
type AdResponse struct {
	ID             string          `json:"id"`
	Title          string          `json:"title"`
	Description    string          `json:"description"`
	Budget         float64         `json:"budget"`
	Category       string          `json:"category"`
	CompanyID      string          `json:"companyId"`
	CompanyName    string          `json:"companyName,omitempty"`
	Status         models.AdStatus `json:"status"`
	AcceptedBy     *string         `json:"acceptedBy,omitempty"`
	AcceptedByName string          `json:"acceptedByName,omitempty"`
	Proof          models.AdProof  `json:"proof"`
	CreatedAt      time.Time       `json:"createdAt"`
}
