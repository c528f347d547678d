package postgres

import "time"

// UserModel é o model GORM para usuários
type UserModel struct {
	ID           string `gorm:"type:uuid;primaryKey"`
	Email        string `gorm:"type:varchar(255);uniqueIndex;not null"`
	PasswordHash string `gorm:"type:varchar(255);not null"`
	Role         string `gorm:"type:varchar(50);not null;index"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func (UserModel) TableName() string {
	return "users"
}

// LanguageModel é o model GORM para idiomas
type LanguageModel struct {
	ID       int64  `gorm:"primaryKey;autoIncrement"`
	Code     string `gorm:"type:varchar(10);uniqueIndex;not null"`
	Name     string `gorm:"type:varchar(100);not null"`
	IsActive bool   `gorm:"not null;default:true"`
}

func (LanguageModel) TableName() string {
	return "languages"
}

// ProductModel é o model GORM para produtos
type ProductModel struct {
	ID           string  `gorm:"type:uuid;primaryKey"`
	SKU          string  `gorm:"column:sku;type:varchar(100);not null"`
	Price        float64 `gorm:"type:numeric(12,2);not null"`
	MainImageURL string  `gorm:"type:varchar(500)"`
	Category     string  `gorm:"type:varchar(100)"`
	Status       string  `gorm:"type:varchar(50)"`
	CreatedAt    time.Time
	UpdatedAt    time.Time

	Translations []ProductTranslationModel `gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE"`
}

func (ProductModel) TableName() string {
	return "products"
}

// ProductTranslationModel é o model GORM para traduções de produto.
// Chave primária composta garante no máximo uma linha por
// (product_id, language_id).
type ProductTranslationModel struct {
	ProductID   string `gorm:"type:uuid;primaryKey"`
	LanguageID  int64  `gorm:"primaryKey"`
	Name        string `gorm:"type:varchar(255);not null"`
	Description string `gorm:"type:text"`
	Slug        string `gorm:"type:varchar(255);index"`

	Language LanguageModel `gorm:"foreignKey:LanguageID;constraint:OnDelete:CASCADE"`
}

func (ProductTranslationModel) TableName() string {
	return "product_translations"
}

// BlogPostModel é o model GORM para artigos do blog
type BlogPostModel struct {
	ID           string  `gorm:"type:uuid;primaryKey"`
	AuthorID     *string `gorm:"type:uuid;index"`
	MainImageURL string  `gorm:"type:varchar(500)"`
	PublishedAt  time.Time
	IsPublished  bool `gorm:"not null;default:false;index"`
	CreatedAt    time.Time
	UpdatedAt    time.Time

	// Referência fraca: remover o autor não remove o artigo
	Author       *UserModel                 `gorm:"foreignKey:AuthorID;constraint:OnDelete:SET NULL"`
	Translations []BlogPostTranslationModel `gorm:"foreignKey:BlogPostID;constraint:OnDelete:CASCADE"`
}

func (BlogPostModel) TableName() string {
	return "blog_posts"
}

// BlogPostTranslationModel é o model GORM para traduções de artigo
type BlogPostTranslationModel struct {
	BlogPostID string `gorm:"type:uuid;primaryKey"`
	LanguageID int64  `gorm:"primaryKey"`
	Title      string `gorm:"type:varchar(255);not null"`
	Content    string `gorm:"type:text"`
	Slug       string `gorm:"type:varchar(255);index"`

	Language LanguageModel `gorm:"foreignKey:LanguageID;constraint:OnDelete:CASCADE"`
}

func (BlogPostTranslationModel) TableName() string {
	return "blog_post_translations"
}
