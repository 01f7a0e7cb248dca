package models

// User is the authenticated user record kept in the session store.
type User struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
}

// LoginRequest is the request body for logging in.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Name     string `json:"name"`
}

// LoginResponse is returned after a successful login.
type LoginResponse struct {
	User  User   `json:"user"`
	Token string `json:"token"`
}
