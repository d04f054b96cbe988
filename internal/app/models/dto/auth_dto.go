package dto

// RegisterRequest represents a student self-registration request
type RegisterRequest struct {
	StudentID string  `json:"studentId" binding:"required,alphanum,min=4,max=20"`
	Name      string  `json:"name" binding:"required"`
	Email     string  `json:"email" binding:"required,email"`
	Password  string  `json:"password" binding:"required,min=6"`
	CGPA      float64 `json:"cgpa" binding:"required,gte=0,lte=10"`
	Branch    string  `json:"branch" binding:"required"`
}

// LoginRequest represents student login credentials
type LoginRequest struct {
	StudentID string `json:"studentId" binding:"required"`
	Password  string `json:"password" binding:"required"`
}

// AdminLoginRequest represents placement staff login credentials
type AdminLoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// ResetPasswordRequest resets a forgotten password by student ID
type ResetPasswordRequest struct {
	StudentID   string `json:"studentId" binding:"required"`
	NewPassword string `json:"newPassword" binding:"required,min=6"`
}

// TokenResponse represents JWT token information
type TokenResponse struct {
	AccessToken string `json:"accessToken"`
	TokenType   string `json:"tokenType" example:"Bearer"`
	ExpiresIn   int    `json:"expiresIn"`
}

// AuthResponse represents successful authentication response
type AuthResponse struct {
	Token TokenResponse `json:"token"`
	User  interface{}   `json:"user"`
}
