package auth

// SignupResponse confirms a completed registration
type SignupResponse struct {
	Message string `json:"message"`
}

// TokenResponse represents the authentication response with the issued token
type TokenResponse struct {
	AccessToken string `json:"accessToken"`
	LoginID     string `json:"loginId"`
	Name        string `json:"name"`
}
