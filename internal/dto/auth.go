package dto

type DriverCreateRequest struct {
	Name     string `json:"name"`
	Phone    string `json:"phone"`
	Email    string `json:"email,omitempty"`
	Password string `json:"password"`
	IsAdmin  bool   `json:"is_admin"`
}

type DriverLoginRequest struct {
	Phone    string `json:"phone"`
	Password string `json:"password"`
}

type DriverUpdateRequest struct {
	Name     string `json:"name,omitempty"`
	Phone    string `json:"phone,omitempty"`
	Email    string `json:"email,omitempty"`
	Password string `json:"password,omitempty"`
}

type DriverResponse struct {
	DriverID uint   `json:"driver_id"`
	Name     string `json:"name"`
	Phone    string `json:"phone"`
	Email    string `json:"email,omitempty"`
	IsActive bool   `json:"is_active"`
	IsAdmin  bool   `json:"is_admin"`
}

type TokenResponse struct {
	AccessToken string         `json:"access_token"`
	TokenType   string         `json:"token_type"`
	Driver      DriverResponse `json:"driver"`
}
