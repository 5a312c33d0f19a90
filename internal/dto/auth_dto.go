package dto

// RegisterDTO for creating an account.
type RegisterDTO struct {
	Email     string  `json:"email" binding:"required,email"`
	Password  string  `json:"password" binding:"required,min=8,max=72"`
	FirstName *string `json:"first_name,omitempty" binding:"omitempty,max=100"`
	LastName  *string `json:"last_name,omitempty" binding:"omitempty,max=100"`
}

// LoginDTO for exchanging credentials for a token.
type LoginDTO struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// TokenResponse returns the signed access token.
type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	ExpiresIn   int64  `json:"expires_in"`
}
