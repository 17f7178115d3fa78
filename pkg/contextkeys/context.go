package contextkeys

// Custom key type to avoid collisions with other context values.
type contextKey string

// DBContextKey is the key under which the request-scoped *gorm.DB handle
// (connection pool or transaction) is stored.
const DBContextKey = contextKey("db")

// ProfileContextKey is the key under which the resolved caller profile is
// stored. A missing or nil value means the caller is anonymous.
const ProfileContextKey = contextKey("profile")
