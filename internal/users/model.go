package users

// User is a registered identity. Created at registration, immutable
// thereafter, never deleted.
type User struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
}
