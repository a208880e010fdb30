package auth

type RegisterRequest struct {
	Address  string `json:"address"`
	Name     string `json:"name"`
	Password string `json:"password"`
}

type LoginRequest struct {
	Address  string `json:"address"`
	Password string `json:"password"`
}

type TokenResponse struct {
	AccessToken string `json:"access_token"`
}
