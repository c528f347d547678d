package entities

// Language representa um idioma configurado para traduções
type Language struct {
	ID       int64
	Code     string
	Name     string
	IsActive bool
}
