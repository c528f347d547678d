package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/vitrinecms/backend/internal/handlers/dto"
	"github.com/vitrinecms/backend/internal/services"
)

// UserHandler lida com requisições HTTP de administração de usuários
type UserHandler struct {
	userService *services.UserService
}

// NewUserHandler cria um novo UserHandler
func NewUserHandler(userService *services.UserService) *UserHandler {
	return &UserHandler{
		userService: userService,
	}
}

// ListUsers lista usuários (o hash de senha nunca aparece na resposta)
//
//	@Summary	Lista usuários
//	@Tags		users
//	@Produce	json
//	@Security	BearerAuth
//	@Success	200	{array}	dto.UserResponse
//	@Router		/admin/users [get]
func (h *UserHandler) ListUsers(c *gin.Context) {
	users, err := h.userService.ListUsers(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToUserResponses(users))
}

// CreateUser cria um novo usuário
//
//	@Summary	Cria usuário
//	@Tags		users
//	@Accept		json
//	@Produce	json
//	@Security	BearerAuth
//	@Param		user	body		dto.CreateUserRequest	true	"Usuário"
//	@Success	201		{object}	dto.CreateUserResponse
//	@Failure	409		{object}	dto.ErrorResponse
//	@Router		/admin/users [post]
func (h *UserHandler) CreateUser(c *gin.Context) {
	var req dto.CreateUserRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "email, password and role are required"})
		return
	}

	userID, err := h.userService.CreateUser(c.Request.Context(), services.CreateUserInput{
		Email:    req.Email,
		Password: req.Password,
		Role:     req.Role,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.CreateUserResponse{
		Message: "user created successfully",
		UserID:  userID,
	})
}

// UpdateUser aplica um update parcial em um usuário
//
//	@Summary	Atualiza usuário
//	@Tags		users
//	@Accept		json
//	@Produce	json
//	@Security	BearerAuth
//	@Param		id		path		string					true	"ID do usuário"
//	@Param		user	body		dto.UpdateUserRequest	true	"Campos a alterar"
//	@Success	200		{object}	dto.MessageResponse
//	@Router		/admin/users/{id} [put]
func (h *UserHandler) UpdateUser(c *gin.Context) {
	id := c.Param("id")

	var req dto.UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid request body"})
		return
	}

	err := h.userService.UpdateUser(c.Request.Context(), id, services.UpdateUserInput{
		Email:    req.Email,
		Password: req.Password,
		Role:     req.Role,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.MessageResponse{Message: "user updated successfully"})
}

// DeleteUser remove um usuário
//
//	@Summary	Remove usuário
//	@Tags		users
//	@Produce	json
//	@Security	BearerAuth
//	@Param		id	path		string	true	"ID do usuário"
//	@Success	200	{object}	dto.MessageResponse
//	@Router		/admin/users/{id} [delete]
func (h *UserHandler) DeleteUser(c *gin.Context) {
	id := c.Param("id")

	if err := h.userService.DeleteUser(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.MessageResponse{Message: "user deleted successfully"})
}
