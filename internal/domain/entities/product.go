package entities

import "time"

// Product representa um produto do catálogo (campos escalares,
// independentes de idioma)
type Product struct {
	ID           string
	SKU          string
	Price        float64
	MainImageURL string
	Category     string
	Status       string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// ProductTranslation é a tradução de um produto em um idioma.
// Invariante: no máximo uma linha por (ProductID, LanguageID).
type ProductTranslation struct {
	ProductID   string
	LanguageID  int64
	Name        string
	Description string
	Slug        string
}

// LocalizedProduct é o modelo de leitura: produto unido à sua
// tradução no idioma solicitado
type LocalizedProduct struct {
	ID           string
	SKU          string
	Price        float64
	MainImageURL string
	Category     string
	Status       string
	Name         string
	Description  string
	Slug         string
}
