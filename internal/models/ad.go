package models

import "time"

// AdProof - доказательство выполнения (ссылка на размещенный контент).
// Write-once: после установки SubmittedAt запись не меняется.
type AdProof struct {
	Link        string     `json:"link,omitempty"`
	Description string     `json:"description,omitempty"`
	SubmittedAt *time.Time `json:"submittedAt,omitempty"`
}

// Submitted сообщает, был ли proof уже отправлен
func (p AdProof) Submitted() bool {
	return p.SubmittedAt != nil
}

type Ad struct {
	BaseModel
	Title       string   `gorm:"not null" json:"title"`
	Description string   `gorm:"not null" json:"description"`
	Budget      float64  `gorm:"not null" json:"budget"`
	Category    string   `gorm:"type:varchar(30);not null;index" json:"category"`
	CompanyID   string   `gorm:"type:uuid;not null;index" json:"companyId"`
	Status      AdStatus `gorm:"type:varchar(20);not null;default:'pending';index" json:"status"`
	// AcceptedBy устанавливается тогда и только тогда, когда Status == accepted
	AcceptedBy *string `gorm:"type:uuid" json:"acceptedBy,omitempty"`
	Proof      AdProof `gorm:"embedded;embeddedPrefix:proof_" json:"proof"`
}
