package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/vitrinecms/backend/internal/handlers/dto"
	"github.com/vitrinecms/backend/internal/services"
)

// AuthHandler lida com requisições HTTP de autenticação
type AuthHandler struct {
	authService *services.AuthService
}

// NewAuthHandler cria um novo AuthHandler
func NewAuthHandler(authService *services.AuthService) *AuthHandler {
	return &AuthHandler{
		authService: authService,
	}
}

// Login autentica um usuário e retorna um token válido por 8 horas
//
//	@Summary	Login
//	@Tags		auth
//	@Accept		json
//	@Produce	json
//	@Param		credentials	body		dto.LoginRequest	true	"Credenciais"
//	@Success	200			{object}	dto.LoginResponse
//	@Failure	401			{object}	dto.ErrorResponse
//	@Router		/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "email and password are required"})
		return
	}

	result, err := h.authService.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.LoginResponse{
		Message: "login successful",
		Token:   result.Token,
		Role:    string(result.Role),
	})
}

// RegisterInitialAdmin cria o primeiro admin. Só funciona enquanto
// nenhum usuário existir; depois do bootstrap responde 409.
//
//	@Summary	Bootstrap do primeiro admin
//	@Tags		auth
//	@Accept		json
//	@Produce	json
//	@Param		credentials	body		dto.RegisterAdminRequest	true	"Credenciais"
//	@Success	201			{object}	dto.RegisterAdminResponse
//	@Failure	409			{object}	dto.ErrorResponse
//	@Router		/admin/register-initial-admin [post]
func (h *AuthHandler) RegisterInitialAdmin(c *gin.Context) {
	var req dto.RegisterAdminRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "email and password are required"})
		return
	}

	userID, err := h.authService.RegisterInitialAdmin(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.RegisterAdminResponse{
		Message: "admin user registered successfully",
		UserID:  userID,
	})
}
