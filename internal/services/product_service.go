package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/vitrinecms/backend/internal/domain/entities"
	"github.com/vitrinecms/backend/internal/domain/errors"
	"github.com/vitrinecms/backend/internal/domain/ports"
	"github.com/vitrinecms/backend/internal/domain/repositories"
)

// ProductService contém a lógica de negócio para o catálogo de produtos
type ProductService struct {
	productRepo  repositories.ProductRepository
	languageRepo repositories.LanguageRepository
	blobs        ports.BlobStore
	logger       ports.Logger
}

// NewProductService cria um novo ProductService
func NewProductService(
	productRepo repositories.ProductRepository,
	languageRepo repositories.LanguageRepository,
	blobs ports.BlobStore,
	logger ports.Logger,
) *ProductService {
	return &ProductService{
		productRepo:  productRepo,
		languageRepo: languageRepo,
		blobs:        blobs,
		logger:       logger,
	}
}

// ProductTranslationInput são os campos de tradução de um produto
// em um idioma, como vieram do formulário
type ProductTranslationInput struct {
	Name        string
	Description string
	Slug        string
}

// CreateProductInput representa os dados para criar um produto.
// Translations é indexado por código de idioma; códigos que não
// correspondem a um idioma ativo são ignorados.
type CreateProductInput struct {
	SKU          string
	Price        float64
	Category     string
	Status       string
	Image        *ImageUpload
	Translations map[string]ProductTranslationInput
}

// UpdateProductInput representa um update parcial de produto.
// DeleteImage tem precedência sobre um novo upload.
type UpdateProductInput struct {
	Price        *float64
	Category     *string
	Status       *string
	Image        *ImageUpload
	DeleteImage  bool
	Translations map[string]ProductTranslationInput
}

// CreateProductResult é o resultado de uma criação bem sucedida
type CreateProductResult struct {
	ProductID string
	ImageURL  string
}

// resolveLanguage converte um código de idioma no registro correspondente.
// Código desconhecido é erro do cliente (404), nunca fallback silencioso.
func (s *ProductService) resolveLanguage(ctx context.Context, code string) (*entities.Language, error) {
	language, err := s.languageRepo.FindByCode(ctx, code)
	if err != nil {
		return nil, err
	}
	if language == nil {
		return nil, errors.NewNotFound(fmt.Sprintf("language code '%s' not found", code))
	}
	return language, nil
}

// ListProducts lista produtos com a tradução do idioma solicitado
func (s *ProductService) ListProducts(ctx context.Context, langCode string) ([]*entities.LocalizedProduct, error) {
	language, err := s.resolveLanguage(ctx, langCode)
	if err != nil {
		return nil, err
	}
	return s.productRepo.ListLocalized(ctx, language.ID)
}

// GetProduct busca um produto por ID com a tradução do idioma solicitado
func (s *ProductService) GetProduct(ctx context.Context, id, langCode string) (*entities.LocalizedProduct, error) {
	language, err := s.resolveLanguage(ctx, langCode)
	if err != nil {
		return nil, err
	}

	product, err := s.productRepo.FindLocalizedByID(ctx, id, language.ID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, errors.ErrProductNotFound
	}
	return product, nil
}

// CreateProduct cria o produto e uma tradução por idioma ativo que
// tenha nome preenchido. As escritas não são atômicas: uma falha no
// meio deixa o que já foi gravado (limitação documentada).
func (s *ProductService) CreateProduct(ctx context.Context, input CreateProductInput) (*CreateProductResult, error) {
	if input.SKU == "" {
		return nil, errors.NewValidation("sku and price are required")
	}

	productID := uuid.NewString()
	imageURL := ""

	if input.Image != nil {
		key := blobKey(productID, input.Image.Filename)
		if err := s.blobs.Put(ctx, key, input.Image.Data, input.Image.ContentType); err != nil {
			return nil, err
		}
		imageURL = s.blobs.PublicURL(key)
	}

	product := &entities.Product{
		ID:           productID,
		SKU:          input.SKU,
		Price:        input.Price,
		MainImageURL: imageURL,
		Category:     input.Category,
		Status:       input.Status,
	}

	if err := s.productRepo.Create(ctx, product); err != nil {
		return nil, err
	}

	activeLanguages, err := s.languageRepo.ListActive(ctx)
	if err != nil {
		return nil, err
	}

	for _, lang := range activeLanguages {
		tr, ok := input.Translations[lang.Code]
		if !ok || tr.Name == "" {
			// Tradução é opcional por idioma: localização incremental
			continue
		}

		slug := tr.Slug
		if slug == "" {
			slug = fmt.Sprintf("%s-%s", input.SKU, lang.Code)
		}

		translation := &entities.ProductTranslation{
			ProductID:   productID,
			LanguageID:  lang.ID,
			Name:        tr.Name,
			Description: tr.Description,
			Slug:        slug,
		}
		if err := s.productRepo.UpsertTranslation(ctx, translation); err != nil {
			return nil, err
		}
	}

	s.logger.Info("product created", "product_id", productID, "sku", input.SKU)

	return &CreateProductResult{ProductID: productID, ImageURL: imageURL}, nil
}

// UpdateProduct aplica um update parcial nos campos escalares e faz
// upsert de tradução por (produto, idioma): se qualquer um dos três
// campos veio no formulário, a linha inteira é sobrescrita com os
// valores recebidos (não há merge campo a campo).
func (s *ProductService) UpdateProduct(ctx context.Context, id string, input UpdateProductInput) error {
	fields := map[string]any{}

	if input.DeleteImage {
		// delete_image vence sobre upload novo e sobre a imagem atual
		product, err := s.productRepo.FindByID(ctx, id)
		if err != nil {
			return err
		}
		if product != nil && product.MainImageURL != "" {
			if err := s.blobs.Delete(ctx, blobKeyFromURL(product.MainImageURL)); err != nil {
				return err
			}
		}
		fields["main_image_url"] = ""
	} else if input.Image != nil {
		key := blobKey(id, input.Image.Filename)
		if err := s.blobs.Put(ctx, key, input.Image.Data, input.Image.ContentType); err != nil {
			return err
		}
		fields["main_image_url"] = s.blobs.PublicURL(key)
	}

	if input.Price != nil {
		fields["price"] = *input.Price
	}
	if input.Category != nil {
		fields["category"] = *input.Category
	}
	if input.Status != nil {
		fields["status"] = *input.Status
	}

	// Sem campo escalar alterado, nenhum UPDATE é emitido (evita
	// write vazio e bump de updated_at)
	if len(fields) > 0 {
		if err := s.productRepo.UpdateFields(ctx, id, fields); err != nil {
			return err
		}
	}

	activeLanguages, err := s.languageRepo.ListActive(ctx)
	if err != nil {
		return err
	}

	for _, lang := range activeLanguages {
		tr, ok := input.Translations[lang.Code]
		if !ok {
			continue
		}
		if tr.Name == "" && tr.Description == "" && tr.Slug == "" {
			continue
		}

		translation := &entities.ProductTranslation{
			ProductID:   id,
			LanguageID:  lang.ID,
			Name:        tr.Name,
			Description: tr.Description,
			Slug:        tr.Slug,
		}
		if err := s.productRepo.UpsertTranslation(ctx, translation); err != nil {
			return err
		}
	}

	s.logger.Info("product updated", "product_id", id)

	return nil
}

// DeleteProduct remove o blob da imagem (se houver) e a linha do
// produto; as traduções caem por cascata de foreign key
func (s *ProductService) DeleteProduct(ctx context.Context, id string) error {
	product, err := s.productRepo.FindByID(ctx, id)
	if err != nil {
		return err
	}

	if product != nil && product.MainImageURL != "" {
		if err := s.blobs.Delete(ctx, blobKeyFromURL(product.MainImageURL)); err != nil {
			return err
		}
	}

	if err := s.productRepo.Delete(ctx, id); err != nil {
		return err
	}

	s.logger.Info("product deleted", "product_id", id)

	return nil
}
