package http

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/vitrinecms/backend/internal/handlers/dto"
	"github.com/vitrinecms/backend/internal/services"
)

// LanguageHandler lida com requisições HTTP de configuração de idiomas
type LanguageHandler struct {
	languageService *services.LanguageService
}

// NewLanguageHandler cria um novo LanguageHandler
func NewLanguageHandler(languageService *services.LanguageService) *LanguageHandler {
	return &LanguageHandler{
		languageService: languageService,
	}
}

// languageID converte o path param :id para o surrogate numérico
func languageID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid language id"})
		return 0, false
	}
	return id, true
}

// ListLanguages lista todos os idiomas configurados
//
//	@Summary	Lista idiomas
//	@Tags		languages
//	@Produce	json
//	@Success	200	{array}	dto.LanguageResponse
//	@Router		/languages [get]
func (h *LanguageHandler) ListLanguages(c *gin.Context) {
	languages, err := h.languageService.ListLanguages(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToLanguageResponses(languages))
}

// CreateLanguage cria um novo idioma
//
//	@Summary	Cria idioma
//	@Tags		languages
//	@Accept		json
//	@Produce	json
//	@Security	BearerAuth
//	@Param		language	body		dto.CreateLanguageRequest	true	"Idioma"
//	@Success	201			{object}	dto.LanguageResponse
//	@Failure	409			{object}	dto.ErrorResponse
//	@Router		/admin/languages [post]
func (h *LanguageHandler) CreateLanguage(c *gin.Context) {
	var req dto.CreateLanguageRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "language code and name are required"})
		return
	}

	language, err := h.languageService.CreateLanguage(c.Request.Context(), services.CreateLanguageInput{
		Code:     req.Code,
		Name:     req.Name,
		IsActive: req.IsActive,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToLanguageResponse(language))
}

// UpdateLanguage aplica um update parcial em um idioma
//
//	@Summary	Atualiza idioma
//	@Tags		languages
//	@Accept		json
//	@Produce	json
//	@Security	BearerAuth
//	@Param		id			path		int							true	"ID do idioma"
//	@Param		language	body		dto.UpdateLanguageRequest	true	"Campos a alterar"
//	@Success	200			{object}	dto.MessageResponse
//	@Router		/admin/languages/{id} [put]
func (h *LanguageHandler) UpdateLanguage(c *gin.Context) {
	id, ok := languageID(c)
	if !ok {
		return
	}

	var req dto.UpdateLanguageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid request body"})
		return
	}

	err := h.languageService.UpdateLanguage(c.Request.Context(), id, services.UpdateLanguageInput{
		Name:     req.Name,
		IsActive: req.IsActive,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.MessageResponse{Message: "language updated successfully"})
}

// DeleteLanguage remove um idioma; traduções dependentes caem por
// cascata, produtos e artigos ficam intactos
//
//	@Summary	Remove idioma
//	@Tags		languages
//	@Produce	json
//	@Security	BearerAuth
//	@Param		id	path		int	true	"ID do idioma"
//	@Success	200	{object}	dto.MessageResponse
//	@Router		/admin/languages/{id} [delete]
func (h *LanguageHandler) DeleteLanguage(c *gin.Context) {
	id, ok := languageID(c)
	if !ok {
		return
	}

	if err := h.languageService.DeleteLanguage(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.MessageResponse{Message: "language deleted successfully"})
}
