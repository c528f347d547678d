package repositories

import (
	"context"

	"github.com/vitrinecms/backend/internal/domain/entities"
)

// BlogPostRepository define a interface para persistência de artigos
// do blog e suas traduções
type BlogPostRepository interface {
	Create(ctx context.Context, post *entities.BlogPost) error
	FindByID(ctx context.Context, id string) (*entities.BlogPost, error)
	UpdateFields(ctx context.Context, id string, fields map[string]any) error
	Delete(ctx context.Context, id string) error

	// ListPublishedLocalized retorna apenas artigos publicados, unidos
	// à tradução do idioma, ordenados por published_at desc
	ListPublishedLocalized(ctx context.Context, languageID int64) ([]*entities.LocalizedBlogPost, error)
	// FindPublishedBySlug busca por slug da tradução; artigo não
	// publicado é invisível mesmo com o slug exato
	FindPublishedBySlug(ctx context.Context, slug string, languageID int64) (*entities.LocalizedBlogPost, error)

	UpsertTranslation(ctx context.Context, translation *entities.BlogPostTranslation) error
}
