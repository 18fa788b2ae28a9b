package domain

// User represents an authenticated session. Presence of a persisted User is
// the sole gate for protected commands; this is not a security boundary.
type User struct {
	Username string `json:"username"`
	Email    string `json:"email"`
}
