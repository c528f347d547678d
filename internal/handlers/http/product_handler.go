package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/vitrinecms/backend/internal/handlers/dto"
	"github.com/vitrinecms/backend/internal/services"
)

// ProductHandler lida com requisições HTTP do catálogo de produtos
type ProductHandler struct {
	productService *services.ProductService
}

// NewProductHandler cria um novo ProductHandler
func NewProductHandler(productService *services.ProductService) *ProductHandler {
	return &ProductHandler{
		productService: productService,
	}
}

// ListProducts lista produtos com a tradução do idioma pedido em ?lang
//
//	@Summary	Lista produtos
//	@Tags		products
//	@Produce	json
//	@Param		lang	query	string	false	"Código do idioma (default en)"
//	@Success	200		{array}	dto.LocalizedProductResponse
//	@Failure	404		{object}	dto.ErrorResponse
//	@Router		/products [get]
func (h *ProductHandler) ListProducts(c *gin.Context) {
	products, err := h.productService.ListProducts(c.Request.Context(), langQuery(c))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToLocalizedProductResponses(products))
}

// GetProduct busca um produto por ID
//
//	@Summary	Busca produto por ID
//	@Tags		products
//	@Produce	json
//	@Param		id		path		string	true	"ID do produto"
//	@Param		lang	query		string	false	"Código do idioma (default en)"
//	@Success	200		{object}	dto.LocalizedProductResponse
//	@Failure	404		{object}	dto.ErrorResponse
//	@Router		/products/{id} [get]
func (h *ProductHandler) GetProduct(c *gin.Context) {
	product, err := h.productService.GetProduct(c.Request.Context(), c.Param("id"), langQuery(c))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToLocalizedProductResponse(product))
}

// CreateProduct cria um produto a partir de multipart form
// (campos de tradução sufixados pelo código do idioma)
//
//	@Summary	Cria produto
//	@Tags		products
//	@Accept		mpfd
//	@Produce	json
//	@Security	BearerAuth
//	@Param		sku		formData	string	true	"SKU"
//	@Param		price	formData	number	true	"Preço"
//	@Param		image	formData	file	false	"Imagem principal"
//	@Success	201		{object}	dto.CreateProductResponse
//	@Router		/admin/products [post]
func (h *ProductHandler) CreateProduct(c *gin.Context) {
	input, err := dto.ParseCreateProductForm(c)
	if err != nil {
		respondError(c, err)
		return
	}

	result, err := h.productService.CreateProduct(c.Request.Context(), input)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.CreateProductResponse{
		Message:   "product created successfully",
		ProductID: result.ProductID,
		ImageURL:  result.ImageURL,
	})
}

// UpdateProduct aplica um update parcial em um produto
//
//	@Summary	Atualiza produto
//	@Tags		products
//	@Accept		mpfd
//	@Produce	json
//	@Security	BearerAuth
//	@Param		id	path		string	true	"ID do produto"
//	@Success	200	{object}	dto.MessageResponse
//	@Router		/admin/products/{id} [put]
func (h *ProductHandler) UpdateProduct(c *gin.Context) {
	input, err := dto.ParseUpdateProductForm(c)
	if err != nil {
		respondError(c, err)
		return
	}

	if err := h.productService.UpdateProduct(c.Request.Context(), c.Param("id"), input); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.MessageResponse{Message: "product updated successfully"})
}

// DeleteProduct remove um produto e a imagem associada
//
//	@Summary	Remove produto
//	@Tags		products
//	@Produce	json
//	@Security	BearerAuth
//	@Param		id	path		string	true	"ID do produto"
//	@Success	200	{object}	dto.MessageResponse
//	@Router		/admin/products/{id} [delete]
func (h *ProductHandler) DeleteProduct(c *gin.Context) {
	if err := h.productService.DeleteProduct(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.MessageResponse{Message: "product deleted successfully"})
}
