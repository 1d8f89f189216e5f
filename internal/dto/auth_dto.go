package dto

type RegisterRequest struct {
	Email           string `json:"email"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirm_password"`
	Tier            string `json:"tier"`
	IsAdmin         bool   `json:"is_admin"`
	AdminSecret     string `json:"admin_secret"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type APIKeyResponse struct {
	APIKey  string `json:"api_key"`
	Message string `json:"message,omitempty"`
}

type UserInfoResponse struct {
	Email   string `json:"email"`
	Tier    string `json:"tier"`
	IsAdmin bool   `json:"is_admin"`
}

type ErrorResponse struct {
	Error   bool   `json:"error"`
	Message string `json:"message"`
}

type HealthResponse struct {
	Status    string `json:"status"`
	Timestamp string `json:"timestamp"`
	DB        string `json:"db"`
}
