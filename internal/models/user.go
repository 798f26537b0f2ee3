package models

// UserDB represents a user record in the credentials database
type UserDB struct {
	Username     string `json:"username" db:"username"` // Primary key
	DisplayName  string `json:"name" db:"name"`         // Full name shown after login
	PasswordHash string `json:"-" db:"password_hash"`   // bcrypt hash
}

// User is the identity returned by a successful authentication.
type User struct {
	Username    string `json:"username"`
	DisplayName string `json:"display_name"`
}
