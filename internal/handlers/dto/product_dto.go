package dto

import "github.com/vitrinecms/backend/internal/domain/entities"

// LocalizedProductResponse representa um produto com a tradução do
// idioma solicitado
type LocalizedProductResponse struct {
	ID           string  `json:"id"`
	SKU          string  `json:"sku"`
	Price        float64 `json:"price"`
	MainImageURL string  `json:"main_image_url"`
	Category     string  `json:"category"`
	Status       string  `json:"status"`
	Name         string  `json:"name"`
	Description  string  `json:"description"`
	Slug         string  `json:"slug"`
}

// CreateProductResponse representa a resposta de criação de produto
type CreateProductResponse struct {
	Message   string `json:"message"`
	ProductID string `json:"productId"`
	ImageURL  string `json:"imageUrl,omitempty"`
}

// ToLocalizedProductResponse converte o modelo de leitura para a resposta
func ToLocalizedProductResponse(product *entities.LocalizedProduct) LocalizedProductResponse {
	return LocalizedProductResponse{
		ID:           product.ID,
		SKU:          product.SKU,
		Price:        product.Price,
		MainImageURL: product.MainImageURL,
		Category:     product.Category,
		Status:       product.Status,
		Name:         product.Name,
		Description:  product.Description,
		Slug:         product.Slug,
	}
}

// ToLocalizedProductResponses converte uma lista de produtos localizados
func ToLocalizedProductResponses(products []*entities.LocalizedProduct) []LocalizedProductResponse {
	responses := make([]LocalizedProductResponse, len(products))
	for i, product := range products {
		responses[i] = ToLocalizedProductResponse(product)
	}
	return responses
}
