package domain

// User is the profile record created lazily on a user's first authenticated
// access, keyed by the opaque user id from the auth layer.
type User struct {
	Name        string   `json:"name"`
	AddressList []string `json:"address_list"`
}

// Credential backs the register/login surface. It is keyed by lowercased
// email and carries the opaque user id embedded in issued tokens.
type Credential struct {
	UserID       string `json:"user_id"`
	Email        string `json:"email"`
	PasswordHash string `json:"password_hash"`
}
