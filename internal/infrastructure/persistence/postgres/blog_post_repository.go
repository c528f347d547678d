package postgres

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/vitrinecms/backend/internal/domain/entities"
	"github.com/vitrinecms/backend/internal/domain/repositories"
)

// BlogPostRepository implementa repositories.BlogPostRepository
type BlogPostRepository struct {
	db *gorm.DB
}

// NewBlogPostRepository cria um novo BlogPostRepository
func NewBlogPostRepository(db *gorm.DB) repositories.BlogPostRepository {
	return &BlogPostRepository{db: db}
}

// localizedBlogPostRow recebe o resultado do join artigo + tradução +
// email do autor
type localizedBlogPostRow struct {
	ID           string
	AuthorID     *string
	AuthorEmail  *string
	MainImageURL string
	PublishedAt  time.Time
	IsPublished  bool
	Title        string
	Content      string
	Slug         string
}

func (r *BlogPostRepository) Create(ctx context.Context, post *entities.BlogPost) error {
	model := &BlogPostModel{
		ID:           post.ID,
		AuthorID:     post.AuthorID,
		MainImageURL: post.MainImageURL,
		PublishedAt:  post.PublishedAt,
		IsPublished:  post.IsPublished,
	}

	db := dbFromContext(ctx, r.db)
	if err := db.WithContext(ctx).Create(model).Error; err != nil {
		return err
	}

	post.CreatedAt = model.CreatedAt
	post.UpdatedAt = model.UpdatedAt
	return nil
}

func (r *BlogPostRepository) FindByID(ctx context.Context, id string) (*entities.BlogPost, error) {
	var model BlogPostModel

	db := dbFromContext(ctx, r.db)
	if err := db.WithContext(ctx).Where("id = ?", id).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &entities.BlogPost{
		ID:           model.ID,
		AuthorID:     model.AuthorID,
		MainImageURL: model.MainImageURL,
		PublishedAt:  model.PublishedAt,
		IsPublished:  model.IsPublished,
		CreatedAt:    model.CreatedAt,
		UpdatedAt:    model.UpdatedAt,
	}, nil
}

func (r *BlogPostRepository) UpdateFields(ctx context.Context, id string, fields map[string]any) error {
	db := dbFromContext(ctx, r.db)
	return db.WithContext(ctx).Model(&BlogPostModel{}).Where("id = ?", id).Updates(fields).Error
}

// Delete remove o artigo; as traduções caem por ON DELETE CASCADE
func (r *BlogPostRepository) Delete(ctx context.Context, id string) error {
	db := dbFromContext(ctx, r.db)
	return db.WithContext(ctx).Where("id = ?", id).Delete(&BlogPostModel{}).Error
}

// ListPublishedLocalized une artigos publicados às traduções do idioma,
// mais recentes primeiro. Left join em users: artigo sem autor continua
// visível.
func (r *BlogPostRepository) ListPublishedLocalized(ctx context.Context, languageID int64) ([]*entities.LocalizedBlogPost, error) {
	var rows []*localizedBlogPostRow

	db := dbFromContext(ctx, r.db)
	err := db.WithContext(ctx).
		Table("blog_posts bp").
		Select("bp.id, bp.author_id, bp.main_image_url, bp.published_at, bp.is_published, bpt.title, bpt.content, bpt.slug, u.email AS author_email").
		Joins("JOIN blog_post_translations bpt ON bpt.blog_post_id = bp.id").
		Joins("LEFT JOIN users u ON u.id = bp.author_id").
		Where("bpt.language_id = ? AND bp.is_published = ?", languageID, true).
		Order("bp.published_at DESC").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	posts := make([]*entities.LocalizedBlogPost, 0, len(rows))
	for _, row := range rows {
		posts = append(posts, r.toLocalized(row))
	}
	return posts, nil
}

// FindPublishedBySlug busca pelo slug da tradução; artigo não
// publicado não é encontrado nem com o slug exato
func (r *BlogPostRepository) FindPublishedBySlug(ctx context.Context, slug string, languageID int64) (*entities.LocalizedBlogPost, error) {
	var rows []*localizedBlogPostRow

	db := dbFromContext(ctx, r.db)
	err := db.WithContext(ctx).
		Table("blog_posts bp").
		Select("bp.id, bp.author_id, bp.main_image_url, bp.published_at, bp.is_published, bpt.title, bpt.content, bpt.slug, u.email AS author_email").
		Joins("JOIN blog_post_translations bpt ON bpt.blog_post_id = bp.id").
		Joins("LEFT JOIN users u ON u.id = bp.author_id").
		Where("bpt.slug = ? AND bpt.language_id = ? AND bp.is_published = ?", slug, languageID, true).
		Limit(1).
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, nil
	}

	return r.toLocalized(rows[0]), nil
}

func (r *BlogPostRepository) UpsertTranslation(ctx context.Context, translation *entities.BlogPostTranslation) error {
	model := &BlogPostTranslationModel{
		BlogPostID: translation.BlogPostID,
		LanguageID: translation.LanguageID,
		Title:      translation.Title,
		Content:    translation.Content,
		Slug:       translation.Slug,
	}

	db := dbFromContext(ctx, r.db)
	return db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "blog_post_id"}, {Name: "language_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"title", "content", "slug"}),
	}).Create(model).Error
}

func (r *BlogPostRepository) toLocalized(row *localizedBlogPostRow) *entities.LocalizedBlogPost {
	return &entities.LocalizedBlogPost{
		ID:           row.ID,
		AuthorID:     row.AuthorID,
		AuthorEmail:  row.AuthorEmail,
		MainImageURL: row.MainImageURL,
		PublishedAt:  row.PublishedAt,
		IsPublished:  row.IsPublished,
		Title:        row.Title,
		Content:      row.Content,
		Slug:         row.Slug,
	}
}
