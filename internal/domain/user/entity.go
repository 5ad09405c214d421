package user

// User represents a user entity in the system.
// Records are append-only: once stored they are never updated or deleted.
type User struct {
	ID    int64  // ID is assigned sequentially by the store, starting at 1
	Name  string // Name is the trimmed, HTML-escaped display name
	Email string // Email is the trimmed, lowercased address
}
