package repositories

import (
	"context"

	"github.com/vitrinecms/backend/internal/domain/entities"
)

// UserRepository define a interface para persistência de usuários
type UserRepository interface {
	Create(ctx context.Context, user *entities.User) error
	FindByID(ctx context.Context, id string) (*entities.User, error)
	FindByEmail(ctx context.Context, email string) (*entities.User, error)
	// UpdateFields aplica um update parcial: apenas as colunas presentes
	// no mapa entram no SET
	UpdateFields(ctx context.Context, id string, fields map[string]any) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context) ([]*entities.User, error)
	Count(ctx context.Context) (int64, error)
}
