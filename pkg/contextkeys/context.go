package contextkeys

// Используем кастомный тип, чтобы избежать коллизий ключей в context
type contextKey string

// DBContextKey - ключ, по которому в context хранится *gorm.DB (пул или транзакция)
const DBContextKey = contextKey("db")
