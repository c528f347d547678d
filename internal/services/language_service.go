package services

import (
	"context"

	"github.com/vitrinecms/backend/internal/domain/entities"
	"github.com/vitrinecms/backend/internal/domain/errors"
	"github.com/vitrinecms/backend/internal/domain/ports"
	"github.com/vitrinecms/backend/internal/domain/repositories"
)

// LanguageService contém a lógica de negócio para idiomas
type LanguageService struct {
	languageRepo repositories.LanguageRepository
	logger       ports.Logger
}

// NewLanguageService cria um novo LanguageService
func NewLanguageService(languageRepo repositories.LanguageRepository, logger ports.Logger) *LanguageService {
	return &LanguageService{
		languageRepo: languageRepo,
		logger:       logger,
	}
}

// CreateLanguageInput representa os dados para criar um idioma
type CreateLanguageInput struct {
	Code     string
	Name     string
	IsActive bool
}

// UpdateLanguageInput representa um update parcial de idioma
type UpdateLanguageInput struct {
	Name     *string
	IsActive *bool
}

// ListLanguages lista todos os idiomas configurados
func (s *LanguageService) ListLanguages(ctx context.Context) ([]*entities.Language, error) {
	return s.languageRepo.List(ctx)
}

// CreateLanguage cria um novo idioma; código duplicado é conflito
func (s *LanguageService) CreateLanguage(ctx context.Context, input CreateLanguageInput) (*entities.Language, error) {
	existing, err := s.languageRepo.FindByCode(ctx, input.Code)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, errors.ErrCodeAlreadyExists
	}

	language := &entities.Language{
		Code:     input.Code,
		Name:     input.Name,
		IsActive: input.IsActive,
	}

	if err := s.languageRepo.Create(ctx, language); err != nil {
		return nil, err
	}

	s.logger.Info("language created", "code", input.Code)

	return language, nil
}

// UpdateLanguage aplica um update parcial
func (s *LanguageService) UpdateLanguage(ctx context.Context, id int64, input UpdateLanguageInput) error {
	fields := map[string]any{}

	if input.Name != nil {
		fields["name"] = *input.Name
	}
	if input.IsActive != nil {
		fields["is_active"] = *input.IsActive
	}

	if len(fields) == 0 {
		return errors.NewValidation("no update data provided")
	}

	return s.languageRepo.UpdateFields(ctx, id, fields)
}

// DeleteLanguage remove um idioma. As traduções que o referenciam
// caem por cascata no banco; produtos e artigos ficam intactos.
func (s *LanguageService) DeleteLanguage(ctx context.Context, id int64) error {
	if err := s.languageRepo.Delete(ctx, id); err != nil {
		return err
	}
	s.logger.Info("language deleted", "language_id", id)
	return nil
}
