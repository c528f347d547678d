package repositories

import (
	"context"

	"github.com/vitrinecms/backend/internal/domain/entities"
)

// ProductRepository define a interface para persistência de produtos
// e suas traduções
type ProductRepository interface {
	Create(ctx context.Context, product *entities.Product) error
	// FindByID retorna apenas os campos escalares, sem join de tradução
	FindByID(ctx context.Context, id string) (*entities.Product, error)
	UpdateFields(ctx context.Context, id string, fields map[string]any) error
	Delete(ctx context.Context, id string) error

	// ListLocalized retorna produtos unidos à tradução do idioma
	// (inner join: produto sem tradução no idioma fica de fora)
	ListLocalized(ctx context.Context, languageID int64) ([]*entities.LocalizedProduct, error)
	FindLocalizedByID(ctx context.Context, id string, languageID int64) (*entities.LocalizedProduct, error)

	// UpsertTranslation insere ou sobrescreve a linha inteira em caso
	// de conflito em (product_id, language_id)
	UpsertTranslation(ctx context.Context, translation *entities.ProductTranslation) error
}
