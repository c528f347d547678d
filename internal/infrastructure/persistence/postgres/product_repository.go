package postgres

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/vitrinecms/backend/internal/domain/entities"
	"github.com/vitrinecms/backend/internal/domain/repositories"
)

// ProductRepository implementa repositories.ProductRepository
type ProductRepository struct {
	db *gorm.DB
}

// NewProductRepository cria um novo ProductRepository
func NewProductRepository(db *gorm.DB) repositories.ProductRepository {
	return &ProductRepository{db: db}
}

// localizedProductRow recebe o resultado do join produto + tradução
type localizedProductRow struct {
	ID           string
	SKU          string `gorm:"column:sku"`
	Price        float64
	MainImageURL string
	Category     string
	Status       string
	Name         string
	Description  string
	Slug         string
}

func (r *ProductRepository) Create(ctx context.Context, product *entities.Product) error {
	model := &ProductModel{
		ID:           product.ID,
		SKU:          product.SKU,
		Price:        product.Price,
		MainImageURL: product.MainImageURL,
		Category:     product.Category,
		Status:       product.Status,
	}

	db := dbFromContext(ctx, r.db)
	if err := db.WithContext(ctx).Create(model).Error; err != nil {
		return err
	}

	product.CreatedAt = model.CreatedAt
	product.UpdatedAt = model.UpdatedAt
	return nil
}

func (r *ProductRepository) FindByID(ctx context.Context, id string) (*entities.Product, error) {
	var model ProductModel

	db := dbFromContext(ctx, r.db)
	if err := db.WithContext(ctx).Where("id = ?", id).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &entities.Product{
		ID:           model.ID,
		SKU:          model.SKU,
		Price:        model.Price,
		MainImageURL: model.MainImageURL,
		Category:     model.Category,
		Status:       model.Status,
		CreatedAt:    model.CreatedAt,
		UpdatedAt:    model.UpdatedAt,
	}, nil
}

func (r *ProductRepository) UpdateFields(ctx context.Context, id string, fields map[string]any) error {
	db := dbFromContext(ctx, r.db)
	return db.WithContext(ctx).Model(&ProductModel{}).Where("id = ?", id).Updates(fields).Error
}

// Delete remove o produto; as traduções caem por ON DELETE CASCADE
func (r *ProductRepository) Delete(ctx context.Context, id string) error {
	db := dbFromContext(ctx, r.db)
	return db.WithContext(ctx).Where("id = ?", id).Delete(&ProductModel{}).Error
}

// ListLocalized une produtos às traduções do idioma via inner join:
// produto sem tradução nesse idioma não aparece
func (r *ProductRepository) ListLocalized(ctx context.Context, languageID int64) ([]*entities.LocalizedProduct, error) {
	var rows []*localizedProductRow

	db := dbFromContext(ctx, r.db)
	err := db.WithContext(ctx).
		Table("products p").
		Select("p.id, p.sku, p.price, p.main_image_url, p.category, p.status, pt.name, pt.description, pt.slug").
		Joins("JOIN product_translations pt ON pt.product_id = p.id").
		Where("pt.language_id = ?", languageID).
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	products := make([]*entities.LocalizedProduct, 0, len(rows))
	for _, row := range rows {
		products = append(products, r.toLocalized(row))
	}
	return products, nil
}

func (r *ProductRepository) FindLocalizedByID(ctx context.Context, id string, languageID int64) (*entities.LocalizedProduct, error) {
	var rows []*localizedProductRow

	db := dbFromContext(ctx, r.db)
	err := db.WithContext(ctx).
		Table("products p").
		Select("p.id, p.sku, p.price, p.main_image_url, p.category, p.status, pt.name, pt.description, pt.slug").
		Joins("JOIN product_translations pt ON pt.product_id = p.id").
		Where("p.id = ? AND pt.language_id = ?", id, languageID).
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

// UpsertTranslation insere a tradução ou, em conflito de
// (product_id, language_id), sobrescreve a linha inteira
func (r *ProductRepository) UpsertTranslation(ctx context.Context, translation *entities.ProductTranslation) error {
	model := &ProductTranslationModel{
		ProductID:   translation.ProductID,
		LanguageID:  translation.LanguageID,
		Name:        translation.Name,
		Description: translation.Description,
		Slug:        translation.Slug,
	}

	db := dbFromContext(ctx, r.db)
	return db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "product_id"}, {Name: "language_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"name", "description", "slug"}),
	}).Create(model).Error
}

func (r *ProductRepository) toLocalized(row *localizedProductRow) *entities.LocalizedProduct {
	return &entities.LocalizedProduct{
		ID:           row.ID,
		SKU:          row.SKU,
		Price:        row.Price,
		MainImageURL: row.MainImageURL,
		Category:     row.Category,
		Status:       row.Status,
		Name:         row.Name,
		Description:  row.Description,
		Slug:         row.Slug,
	}
}
