package dto

// LoginRequest representa a requisição de login
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// LoginResponse representa a resposta de um login bem sucedido
type LoginResponse struct {
	Message string `json:"message"`
	Token   string `json:"token"`
	Role    string `json:"role"`
}

// RegisterAdminRequest representa a requisição de bootstrap do
// primeiro admin
type RegisterAdminRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8,max=72"`
}

// RegisterAdminResponse representa a resposta do bootstrap
type RegisterAdminResponse struct {
	Message string `json:"message"`
	UserID  string `json:"userId"`
}
