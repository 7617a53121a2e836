package session

type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type LoginResponse struct {
	Token string `json:"token"`
}

type CurrentSessionResponse struct {
	Subject string `json:"subject"`
	Role    string `json:"role"`
}
