package dto

import (
	"time"

	"github.com/vitrinecms/backend/internal/domain/entities"
)

// LocalizedBlogPostResponse representa um artigo com a tradução do
// idioma solicitado
type LocalizedBlogPostResponse struct {
	ID           string    `json:"id"`
	AuthorID     *string   `json:"author_id"`
	AuthorEmail  *string   `json:"author_email"`
	MainImageURL string    `json:"main_image_url"`
	PublishedAt  time.Time `json:"published_at"`
	IsPublished  bool      `json:"is_published"`
	Title        string    `json:"title"`
	Content      string    `json:"content"`
	Slug         string    `json:"slug"`
}

// CreateBlogPostResponse representa a resposta de criação de artigo
type CreateBlogPostResponse struct {
	Message  string `json:"message"`
	PostID   string `json:"postId"`
	ImageURL string `json:"imageUrl,omitempty"`
}

// ToLocalizedBlogPostResponse converte o modelo de leitura para a resposta
func ToLocalizedBlogPostResponse(post *entities.LocalizedBlogPost) LocalizedBlogPostResponse {
	return LocalizedBlogPostResponse{
		ID:           post.ID,
		AuthorID:     post.AuthorID,
		AuthorEmail:  post.AuthorEmail,
		MainImageURL: post.MainImageURL,
		PublishedAt:  post.PublishedAt,
		IsPublished:  post.IsPublished,
		Title:        post.Title,
		Content:      post.Content,
		Slug:         post.Slug,
	}
}

// ToLocalizedBlogPostResponses converte uma lista de artigos localizados
func ToLocalizedBlogPostResponses(posts []*entities.LocalizedBlogPost) []LocalizedBlogPostResponse {
	responses := make([]LocalizedBlogPostResponse, len(posts))
	for i, post := range posts {
		responses[i] = ToLocalizedBlogPostResponse(post)
	}
	return responses
}
