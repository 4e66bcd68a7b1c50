package dto

// TokenReq represents the form body for the /token endpoint.
// The field names follow the OAuth2 password grant, so the email travels in
// the username field.
type TokenReq struct {
	Username string `form:"username" binding:"required"`
	Password string `form:"password" binding:"required"`
}

// TokenRes represents the response for a successful login.
type TokenRes struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}
