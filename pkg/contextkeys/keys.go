package contextkeys

// Используем кастомный тип, чтобы избежать коллизий
type contextKey string

const (
	// DBContextKey - ключ, по которому хранится *gorm.DB в gin.Context
	DBContextKey = contextKey("db")

	// PrincipalContextKey - ключ для access.Principal текущего запроса
	PrincipalContextKey = contextKey("principal")
)
