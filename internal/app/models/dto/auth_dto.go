package dto

// RegisterRequest is the body of POST /register
type RegisterRequest struct {
	FullName string `json:"fullname" binding:"required" example:"Maria Santos"`
	Username string `json:"username" binding:"required" example:"msantos"`
	Password string `json:"password" binding:"required" example:"s3cret123"`
	Role     string `json:"role" example:"registrar"` // whitelisted server-side, defaults to student
}

// LoginRequest is the body of POST /login
type LoginRequest struct {
	Username string `json:"username" binding:"required" example:"msantos"`
	Password string `json:"password" binding:"required" example:"s3cret123"`
}

// GoogleLoginRequest is the body of POST /google-login
type GoogleLoginRequest struct {
	Token string `json:"token" binding:"required"` // Google ID token from the browser sign-in flow
}

// AuthResponse answers a successful login. The token is a server-issued
// session JWT; the client presents it as a bearer token instead of keeping
// a role string in local storage.
type AuthResponse struct {
	Success  bool   `json:"success"`
	FullName string `json:"fullname"`
	Role     string `json:"role"`
	Token    string `json:"token"`
	Message  string `json:"message,omitempty"`
}

// SessionResponse answers GET /me with the authenticated session state
type SessionResponse struct {
	UserID   int64  `json:"userId"`
	FullName string `json:"fullname"`
	Role     string `json:"role"`
}
