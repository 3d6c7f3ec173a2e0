package models

import "gorm.io/datatypes"

// Notification - append-only запись о смене состояния объявления.
type Notification struct {
	BaseModel
	UserID  string `gorm:"type:uuid;not null;index" json:"-"`
	Message string `gorm:"not null" json:"message"`
	// Data хранит структурную ссылку {"ad_id": ..., "event": ...} для
	// отладки. Дедупликация при accept намеренно остается по подстроке
	// Message (см. DESIGN.md).
	Data datatypes.JSON `gorm:"type:jsonb" json:"-"`
}
