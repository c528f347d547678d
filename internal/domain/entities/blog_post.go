package entities

import "time"

// BlogPost representa um artigo do blog (campos escalares,
// independentes de idioma)
type BlogPost struct {
	ID           string
	AuthorID     *string // referência fraca: fica nula se o autor for removido
	MainImageURL string
	PublishedAt  time.Time
	IsPublished  bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// BlogPostTranslation é a tradução de um artigo em um idioma.
// Invariante: no máximo uma linha por (BlogPostID, LanguageID).
type BlogPostTranslation struct {
	BlogPostID string
	LanguageID int64
	Title      string
	Content    string
	Slug       string
}

// LocalizedBlogPost é o modelo de leitura: artigo unido à sua
// tradução no idioma solicitado, com o email do autor
type LocalizedBlogPost struct {
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
