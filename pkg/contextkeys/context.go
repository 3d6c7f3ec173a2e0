package contextkeys

// Кастомный тип, чтобы избежать коллизий ключей в context
type contextKey string

// DBContextKey - ключ, по которому в context хранится *gorm.DB
// (пул соединений или транзакция в тестах)
const DBContextKey = contextKey("db")
