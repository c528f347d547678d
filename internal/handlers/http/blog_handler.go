package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/vitrinecms/backend/internal/domain/errors"
	"github.com/vitrinecms/backend/internal/handlers/dto"
	"github.com/vitrinecms/backend/internal/handlers/middleware"
	"github.com/vitrinecms/backend/internal/services"
)

// BlogHandler lida com requisições HTTP do blog multilíngue
type BlogHandler struct {
	blogService *services.BlogService
}

// NewBlogHandler cria um novo BlogHandler
func NewBlogHandler(blogService *services.BlogService) *BlogHandler {
	return &BlogHandler{
		blogService: blogService,
	}
}

// ListPosts lista artigos publicados, mais recentes primeiro
//
//	@Summary	Lista artigos publicados
//	@Tags		blog
//	@Produce	json
//	@Param		lang	query	string	false	"Código do idioma (default en)"
//	@Success	200		{array}	dto.LocalizedBlogPostResponse
//	@Failure	404		{object}	dto.ErrorResponse
//	@Router		/blog [get]
func (h *BlogHandler) ListPosts(c *gin.Context) {
	posts, err := h.blogService.ListPosts(c.Request.Context(), langQuery(c))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToLocalizedBlogPostResponses(posts))
}

// GetPostBySlug busca um artigo publicado pelo slug da tradução
//
//	@Summary	Busca artigo por slug
//	@Tags		blog
//	@Produce	json
//	@Param		slug	path		string	true	"Slug da tradução"
//	@Param		lang	query		string	false	"Código do idioma (default en)"
//	@Success	200		{object}	dto.LocalizedBlogPostResponse
//	@Failure	404		{object}	dto.ErrorResponse
//	@Router		/blog/{slug} [get]
func (h *BlogHandler) GetPostBySlug(c *gin.Context) {
	post, err := h.blogService.GetPostBySlug(c.Request.Context(), c.Param("slug"), langQuery(c))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToLocalizedBlogPostResponse(post))
}

// CreatePost cria um artigo. O author id vem da identidade
// autenticada, nunca do formulário.
//
//	@Summary	Cria artigo
//	@Tags		blog
//	@Accept		mpfd
//	@Produce	json
//	@Security	BearerAuth
//	@Param		is_published	formData	string	false	"true para publicar"
//	@Param		image			formData	file	false	"Imagem principal"
//	@Success	201				{object}	dto.CreateBlogPostResponse
//	@Router		/admin/blog [post]
func (h *BlogHandler) CreatePost(c *gin.Context) {
	identity, ok := middleware.IdentityFromContext(c)
	if !ok {
		respondError(c, errors.ErrUnauthenticated)
		return
	}

	input, err := dto.ParseCreateBlogPostForm(c, identity.UserID)
	if err != nil {
		respondError(c, err)
		return
	}

	result, err := h.blogService.CreatePost(c.Request.Context(), input)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.CreateBlogPostResponse{
		Message:  "blog post created successfully",
		PostID:   result.PostID,
		ImageURL: result.ImageURL,
	})
}

// UpdatePost aplica um update parcial em um artigo
//
//	@Summary	Atualiza artigo
//	@Tags		blog
//	@Accept		mpfd
//	@Produce	json
//	@Security	BearerAuth
//	@Param		id	path		string	true	"ID do artigo"
//	@Success	200	{object}	dto.MessageResponse
//	@Router		/admin/blog/{id} [put]
func (h *BlogHandler) UpdatePost(c *gin.Context) {
	input, err := dto.ParseUpdateBlogPostForm(c)
	if err != nil {
		respondError(c, err)
		return
	}

	if err := h.blogService.UpdatePost(c.Request.Context(), c.Param("id"), input); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.MessageResponse{Message: "blog post updated successfully"})
}

// DeletePost remove um artigo e a imagem associada
//
//	@Summary	Remove artigo
//	@Tags		blog
//	@Produce	json
//	@Security	BearerAuth
//	@Param		id	path		string	true	"ID do artigo"
//	@Success	200	{object}	dto.MessageResponse
//	@Router		/admin/blog/{id} [delete]
func (h *BlogHandler) DeletePost(c *gin.Context) {
	if err := h.blogService.DeletePost(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.MessageResponse{Message: "blog post deleted successfully"})
}
