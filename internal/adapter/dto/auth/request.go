package auth

// SignupRequest represents the request to register a new account
type SignupRequest struct {
	LoginID  string `json:"loginId" validate:"required,min=3,max=100,login_id"`
	Password string `json:"password" validate:"required,min=4,max=72"`
	Name     string `json:"name" validate:"required,min=1,max=255"`
	Email    string `json:"email" validate:"required,email"`
}

// LoginRequest represents the request to authenticate
type LoginRequest struct {
	LoginID  string `json:"loginId" validate:"required"`
	Password string `json:"password" validate:"required"`
}
