package repositories

import (
	"context"

	"github.com/vitrinecms/backend/internal/domain/entities"
)

// LanguageRepository define a interface para persistência de idiomas
type LanguageRepository interface {
	Create(ctx context.Context, language *entities.Language) error
	FindByID(ctx context.Context, id int64) (*entities.Language, error)
	FindByCode(ctx context.Context, code string) (*entities.Language, error)
	UpdateFields(ctx context.Context, id int64, fields map[string]any) error
	// Delete remove o idioma; as traduções dependentes caem por
	// cascata de foreign key no banco, não por deletes explícitos
	Delete(ctx context.Context, id int64) error
	List(ctx context.Context) ([]*entities.Language, error)
	ListActive(ctx context.Context) ([]*entities.Language, error)
}
