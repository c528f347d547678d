package postgres

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/vitrinecms/backend/internal/domain/entities"
	"github.com/vitrinecms/backend/internal/domain/repositories"
)

// LanguageRepository implementa repositories.LanguageRepository
type LanguageRepository struct {
	db *gorm.DB
}

// NewLanguageRepository cria um novo LanguageRepository
func NewLanguageRepository(db *gorm.DB) repositories.LanguageRepository {
	return &LanguageRepository{db: db}
}

func (r *LanguageRepository) Create(ctx context.Context, language *entities.Language) error {
	model := &LanguageModel{
		Code:     language.Code,
		Name:     language.Name,
		IsActive: language.IsActive,
	}

	db := dbFromContext(ctx, r.db)
	if err := db.WithContext(ctx).Create(model).Error; err != nil {
		return err
	}

	language.ID = model.ID
	return nil
}

func (r *LanguageRepository) FindByID(ctx context.Context, id int64) (*entities.Language, error) {
	var model LanguageModel

	db := dbFromContext(ctx, r.db)
	if err := db.WithContext(ctx).Where("id = ?", id).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return r.toEntity(&model), nil
}

func (r *LanguageRepository) FindByCode(ctx context.Context, code string) (*entities.Language, error) {
	var model LanguageModel

	db := dbFromContext(ctx, r.db)
	if err := db.WithContext(ctx).Where("code = ?", code).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return r.toEntity(&model), nil
}

func (r *LanguageRepository) UpdateFields(ctx context.Context, id int64, fields map[string]any) error {
	db := dbFromContext(ctx, r.db)
	return db.WithContext(ctx).Model(&LanguageModel{}).Where("id = ?", id).Updates(fields).Error
}

// Delete remove o idioma; o banco remove as traduções dependentes
// via ON DELETE CASCADE
func (r *LanguageRepository) Delete(ctx context.Context, id int64) error {
	db := dbFromContext(ctx, r.db)
	return db.WithContext(ctx).Where("id = ?", id).Delete(&LanguageModel{}).Error
}

func (r *LanguageRepository) List(ctx context.Context) ([]*entities.Language, error) {
	var models []*LanguageModel

	db := dbFromContext(ctx, r.db)
	if err := db.WithContext(ctx).Order("id").Find(&models).Error; err != nil {
		return nil, err
	}

	return r.toEntities(models), nil
}

func (r *LanguageRepository) ListActive(ctx context.Context) ([]*entities.Language, error) {
	var models []*LanguageModel

	db := dbFromContext(ctx, r.db)
	if err := db.WithContext(ctx).Where("is_active = ?", true).Order("id").Find(&models).Error; err != nil {
		return nil, err
	}

	return r.toEntities(models), nil
}

func (r *LanguageRepository) toEntity(model *LanguageModel) *entities.Language {
	return &entities.Language{
		ID:       model.ID,
		Code:     model.Code,
		Name:     model.Name,
		IsActive: model.IsActive,
	}
}

func (r *LanguageRepository) toEntities(models []*LanguageModel) []*entities.Language {
	languages := make([]*entities.Language, 0, len(models))
	for _, model := range models {
		languages = append(languages, r.toEntity(model))
	}
	return languages
}
