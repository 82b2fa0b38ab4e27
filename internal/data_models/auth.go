package dto

type AuthTokenRequest struct {
	Username string `json:"username" form:"username"`
	Password string `json:"password" form:"password"`
}

type AuthTokenResponse struct {
	Token string `json:"token"`
}
