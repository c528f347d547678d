package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/vitrinecms/backend/internal/domain/entities"
	"github.com/vitrinecms/backend/internal/domain/errors"
	"github.com/vitrinecms/backend/internal/domain/ports"
	"github.com/vitrinecms/backend/internal/domain/repositories"
)

// BlogService contém a lógica de negócio para o blog multilíngue
type BlogService struct {
	blogRepo     repositories.BlogPostRepository
	languageRepo repositories.LanguageRepository
	blobs        ports.BlobStore
	logger       ports.Logger
}

// NewBlogService cria um novo BlogService
func NewBlogService(
	blogRepo repositories.BlogPostRepository,
	languageRepo repositories.LanguageRepository,
	blobs ports.BlobStore,
	logger ports.Logger,
) *BlogService {
	return &BlogService{
		blogRepo:     blogRepo,
		languageRepo: languageRepo,
		blobs:        blobs,
		logger:       logger,
	}
}

// BlogTranslationInput são os campos de tradução de um artigo em um idioma
type BlogTranslationInput struct {
	Title   string
	Content string
	Slug    string
}

// CreateBlogPostInput representa os dados para criar um artigo.
// AuthorID vem da identidade autenticada, montado pela camada de
// rota — nunca do corpo da requisição.
type CreateBlogPostInput struct {
	AuthorID     string
	IsPublished  bool
	Image        *ImageUpload
	Translations map[string]BlogTranslationInput
}

// UpdateBlogPostInput representa um update parcial de artigo
type UpdateBlogPostInput struct {
	IsPublished  *bool
	Image        *ImageUpload
	DeleteImage  bool
	Translations map[string]BlogTranslationInput
}

// CreateBlogPostResult é o resultado de uma criação bem sucedida
type CreateBlogPostResult struct {
	PostID   string
	ImageURL string
}

func (s *BlogService) resolveLanguage(ctx context.Context, code string) (*entities.Language, error) {
	language, err := s.languageRepo.FindByCode(ctx, code)
	if err != nil {
		return nil, err
	}
	if language == nil {
		return nil, errors.NewNotFound(fmt.Sprintf("language code '%s' not found", code))
	}
	return language, nil
}

// ListPosts lista artigos publicados com a tradução do idioma
// solicitado, mais recentes primeiro
func (s *BlogService) ListPosts(ctx context.Context, langCode string) ([]*entities.LocalizedBlogPost, error) {
	language, err := s.resolveLanguage(ctx, langCode)
	if err != nil {
		return nil, err
	}
	return s.blogRepo.ListPublishedLocalized(ctx, language.ID)
}

// GetPostBySlug busca um artigo publicado pelo slug da tradução.
// Artigo não publicado é invisível mesmo com o slug exato.
func (s *BlogService) GetPostBySlug(ctx context.Context, slug, langCode string) (*entities.LocalizedBlogPost, error) {
	language, err := s.resolveLanguage(ctx, langCode)
	if err != nil {
		return nil, err
	}

	post, err := s.blogRepo.FindPublishedBySlug(ctx, slug, language.ID)
	if err != nil {
		return nil, err
	}
	if post == nil {
		return nil, errors.ErrBlogPostNotFound
	}
	return post, nil
}

// CreatePost cria o artigo e uma tradução por idioma ativo que tenha
// título preenchido. Mesma não-atomicidade documentada do catálogo.
func (s *BlogService) CreatePost(ctx context.Context, input CreateBlogPostInput) (*CreateBlogPostResult, error) {
	if input.AuthorID == "" {
		return nil, errors.NewValidation("author id is required")
	}

	postID := uuid.NewString()
	imageURL := ""

	if input.Image != nil {
		key := blobKey(postID, input.Image.Filename)
		if err := s.blobs.Put(ctx, key, input.Image.Data, input.Image.ContentType); err != nil {
			return nil, err
		}
		imageURL = s.blobs.PublicURL(key)
	}

	authorID := input.AuthorID
	post := &entities.BlogPost{
		ID:           postID,
		AuthorID:     &authorID,
		MainImageURL: imageURL,
		PublishedAt:  time.Now().UTC(),
		IsPublished:  input.IsPublished,
	}

	if err := s.blogRepo.Create(ctx, post); err != nil {
		return nil, err
	}

	activeLanguages, err := s.languageRepo.ListActive(ctx)
	if err != nil {
		return nil, err
	}

	for _, lang := range activeLanguages {
		tr, ok := input.Translations[lang.Code]
		if !ok || tr.Title == "" {
			continue
		}

		slug := tr.Slug
		if slug == "" {
			slug = fmt.Sprintf("%s-%s", slugify(tr.Title), lang.Code)
		}

		translation := &entities.BlogPostTranslation{
			BlogPostID: postID,
			LanguageID: lang.ID,
			Title:      tr.Title,
			Content:    tr.Content,
			Slug:       slug,
		}
		if err := s.blogRepo.UpsertTranslation(ctx, translation); err != nil {
			return nil, err
		}
	}

	s.logger.Info("blog post created", "post_id", postID, "author_id", input.AuthorID)

	return &CreateBlogPostResult{PostID: postID, ImageURL: imageURL}, nil
}

// UpdatePost aplica um update parcial; upsert de tradução sobrescreve
// a linha inteira quando qualquer campo veio no formulário
func (s *BlogService) UpdatePost(ctx context.Context, id string, input UpdateBlogPostInput) error {
	fields := map[string]any{}

	if input.DeleteImage {
		post, err := s.blogRepo.FindByID(ctx, id)
		if err != nil {
			return err
		}
		if post != nil && post.MainImageURL != "" {
			if err := s.blobs.Delete(ctx, blobKeyFromURL(post.MainImageURL)); err != nil {
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

	if input.IsPublished != nil {
		fields["is_published"] = *input.IsPublished
	}

	if len(fields) > 0 {
		if err := s.blogRepo.UpdateFields(ctx, id, fields); err != nil {
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
		if tr.Title == "" && tr.Content == "" && tr.Slug == "" {
			continue
		}

		translation := &entities.BlogPostTranslation{
			BlogPostID: id,
			LanguageID: lang.ID,
			Title:      tr.Title,
			Content:    tr.Content,
			Slug:       tr.Slug,
		}
		if err := s.blogRepo.UpsertTranslation(ctx, translation); err != nil {
			return err
		}
	}

	s.logger.Info("blog post updated", "post_id", id)

	return nil
}

// DeletePost remove o blob da imagem (se houver) e a linha do artigo;
// as traduções caem por cascata de foreign key
func (s *BlogService) DeletePost(ctx context.Context, id string) error {
	post, err := s.blogRepo.FindByID(ctx, id)
	if err != nil {
		return err
	}

	if post != nil && post.MainImageURL != "" {
		if err := s.blobs.Delete(ctx, blobKeyFromURL(post.MainImageURL)); err != nil {
			return err
		}
	}

	if err := s.blogRepo.Delete(ctx, id); err != nil {
		return err
	}

	s.logger.Info("blog post deleted", "post_id", id)

	return nil
}
