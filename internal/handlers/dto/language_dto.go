package dto

import "github.com/vitrinecms/backend/internal/domain/entities"

// CreateLanguageRequest representa a requisição para criar um idioma
type CreateLanguageRequest struct {
	Code     string `json:"code" binding:"required,min=2,max=10"`
	Name     string `json:"name" binding:"required"`
	IsActive bool   `json:"is_active"`
}

// UpdateLanguageRequest representa um update parcial de idioma
type UpdateLanguageRequest struct {
	Name     *string `json:"name"`
	IsActive *bool   `json:"is_active"`
}

// LanguageResponse representa a resposta de um idioma
type LanguageResponse struct {
	ID       int64  `json:"id"`
	Code     string `json:"code"`
	Name     string `json:"name"`
	IsActive bool   `json:"is_active"`
}

// ToLanguageResponse converte uma entidade Language para LanguageResponse
func ToLanguageResponse(language *entities.Language) LanguageResponse {
	return LanguageResponse{
		ID:       language.ID,
		Code:     language.Code,
		Name:     language.Name,
		IsActive: language.IsActive,
	}
}

// ToLanguageResponses converte uma lista de entidades Language
func ToLanguageResponses(languages []*entities.Language) []LanguageResponse {
	responses := make([]LanguageResponse, len(languages))
	for i, language := range languages {
		responses[i] = ToLanguageResponse(language)
	}
	return responses
}
