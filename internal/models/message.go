package models

// Message - личное сообщение между двумя пользователями.
// Неизменяемо после создания: нет ни update, ни delete.
// "Диалог" нигде не хранится - он выводится на чтении как множество
// контрагентов по всем сообщениям пользователя.
type Message struct {
	BaseModel
	SenderID   string `gorm:"type:uuid;not null;index" json:"sender"`
	ReceiverID string `gorm:"type:uuid;not null;index" json:"receiver"`
	Content    string `gorm:"not null" json:"content"`
}
