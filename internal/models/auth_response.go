package models

// UserInfo is the public view of a user. The password hash is never
// part of it.
type UserInfo struct {
	ID    int    `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// AuthResponse represents the response after successful registration
// or login.
type AuthResponse struct {
	Message string   `json:"message"`
	User    UserInfo `json:"user"`
	Token   string   `json:"token"`
}
