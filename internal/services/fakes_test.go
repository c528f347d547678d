package services

import (
	"context"

	"github.com/vitrinecms/backend/internal/domain/entities"
	"github.com/vitrinecms/backend/internal/domain/ports"
)

// Fakes em memória para os testes dos services. Implementam as
// interfaces de repositório com o comportamento mínimo que os services
// observam; nada de SQL aqui.

type noopLogger struct{}

func (noopLogger) Info(msg string, args ...any)  {}
func (noopLogger) Error(msg string, args ...any) {}
func (noopLogger) Debug(msg string, args ...any) {}
func (noopLogger) Warn(msg string, args ...any)  {}
func (l noopLogger) With(args ...any) ports.Logger {
	return l
}

type fakeUnitOfWork struct{}

func (fakeUnitOfWork) Begin(ctx context.Context) (context.Context, error) { return ctx, nil }
func (fakeUnitOfWork) Commit(ctx context.Context) error                   { return nil }
func (fakeUnitOfWork) Rollback(ctx context.Context) error                 { return nil }
func (fakeUnitOfWork) WithTransaction(ctx context.Context, fn func(context.Context) error) error {
	return fn(ctx)
}

type fakeBlobStore struct {
	objects map[string][]byte
	deleted []string
}

func newFakeBlobStore() *fakeBlobStore {
	return &fakeBlobStore{objects: map[string][]byte{}}
}

func (s *fakeBlobStore) Put(ctx context.Context, key string, data []byte, contentType string) error {
	s.objects[key] = data
	return nil
}

func (s *fakeBlobStore) Delete(ctx context.Context, key string) error {
	delete(s.objects, key)
	s.deleted = append(s.deleted, key)
	return nil
}

func (s *fakeBlobStore) PublicURL(key string) string {
	return "https://cdn.test/" + key
}

type fakeUserRepo struct {
	users map[string]*entities.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: map[string]*entities.User{}}
}

func (r *fakeUserRepo) Create(ctx context.Context, user *entities.User) error {
	r.users[user.ID] = user
	return nil
}

func (r *fakeUserRepo) FindByID(ctx context.Context, id string) (*entities.User, error) {
	return r.users[id], nil
}

func (r *fakeUserRepo) FindByEmail(ctx context.Context, email string) (*entities.User, error) {
	for _, u := range r.users {
		if u.Email.String() == email {
			return u, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) UpdateFields(ctx context.Context, id string, fields map[string]any) error {
	return nil
}

func (r *fakeUserRepo) Delete(ctx context.Context, id string) error {
	delete(r.users, id)
	return nil
}

func (r *fakeUserRepo) List(ctx context.Context) ([]*entities.User, error) {
	var users []*entities.User
	for _, u := range r.users {
		users = append(users, u)
	}
	return users, nil
}

func (r *fakeUserRepo) Count(ctx context.Context) (int64, error) {
	return int64(len(r.users)), nil
}

type fakeLanguageRepo struct {
	languages map[int64]*entities.Language
	nextID    int64
}

func newFakeLanguageRepo() *fakeLanguageRepo {
	return &fakeLanguageRepo{languages: map[int64]*entities.Language{}, nextID: 1}
}

func (r *fakeLanguageRepo) add(code, name string, active bool) *entities.Language {
	lang := &entities.Language{ID: r.nextID, Code: code, Name: name, IsActive: active}
	r.languages[lang.ID] = lang
	r.nextID++
	return lang
}

func (r *fakeLanguageRepo) Create(ctx context.Context, language *entities.Language) error {
	language.ID = r.nextID
	r.languages[language.ID] = language
	r.nextID++
	return nil
}

func (r *fakeLanguageRepo) FindByID(ctx context.Context, id int64) (*entities.Language, error) {
	return r.languages[id], nil
}

func (r *fakeLanguageRepo) FindByCode(ctx context.Context, code string) (*entities.Language, error) {
	for _, l := range r.languages {
		if l.Code == code {
			return l, nil
		}
	}
	return nil, nil
}

func (r *fakeLanguageRepo) UpdateFields(ctx context.Context, id int64, fields map[string]any) error {
	return nil
}

func (r *fakeLanguageRepo) Delete(ctx context.Context, id int64) error {
	delete(r.languages, id)
	return nil
}

func (r *fakeLanguageRepo) List(ctx context.Context) ([]*entities.Language, error) {
	var langs []*entities.Language
	for _, l := range r.languages {
		langs = append(langs, l)
	}
	return langs, nil
}

func (r *fakeLanguageRepo) ListActive(ctx context.Context) ([]*entities.Language, error) {
	var langs []*entities.Language
	for _, l := range r.languages {
		if l.IsActive {
			langs = append(langs, l)
		}
	}
	return langs, nil
}

type translationKey struct {
	parentID   string
	languageID int64
}

type fakeProductRepo struct {
	products     map[string]*entities.Product
	translations map[translationKey]*entities.ProductTranslation
	updateCalls  []map[string]any
}

func newFakeProductRepo() *fakeProductRepo {
	return &fakeProductRepo{
		products:     map[string]*entities.Product{},
		translations: map[translationKey]*entities.ProductTranslation{},
	}
}

func (r *fakeProductRepo) Create(ctx context.Context, product *entities.Product) error {
	r.products[product.ID] = product
	return nil
}

func (r *fakeProductRepo) FindByID(ctx context.Context, id string) (*entities.Product, error) {
	return r.products[id], nil
}

func (r *fakeProductRepo) UpdateFields(ctx context.Context, id string, fields map[string]any) error {
	r.updateCalls = append(r.updateCalls, fields)
	if url, ok := fields["main_image_url"]; ok {
		if p := r.products[id]; p != nil {
			p.MainImageURL = url.(string)
		}
	}
	return nil
}

func (r *fakeProductRepo) Delete(ctx context.Context, id string) error {
	delete(r.products, id)
	return nil
}

func (r *fakeProductRepo) ListLocalized(ctx context.Context, languageID int64) ([]*entities.LocalizedProduct, error) {
	var result []*entities.LocalizedProduct
	for key, tr := range r.translations {
		if key.languageID != languageID {
			continue
		}
		p := r.products[key.parentID]
		if p == nil {
			continue
		}
		result = append(result, &entities.LocalizedProduct{
			ID:          p.ID,
			SKU:         p.SKU,
			Price:       p.Price,
			Name:        tr.Name,
			Description: tr.Description,
			Slug:        tr.Slug,
		})
	}
	return result, nil
}

func (r *fakeProductRepo) FindLocalizedByID(ctx context.Context, id string, languageID int64) (*entities.LocalizedProduct, error) {
	tr := r.translations[translationKey{parentID: id, languageID: languageID}]
	p := r.products[id]
	if tr == nil || p == nil {
		return nil, nil
	}
	return &entities.LocalizedProduct{
		ID:          p.ID,
		SKU:         p.SKU,
		Price:       p.Price,
		Name:        tr.Name,
		Description: tr.Description,
		Slug:        tr.Slug,
	}, nil
}

func (r *fakeProductRepo) UpsertTranslation(ctx context.Context, translation *entities.ProductTranslation) error {
	key := translationKey{parentID: translation.ProductID, languageID: translation.LanguageID}
	r.translations[key] = translation
	return nil
}

type fakeBlogRepo struct {
	posts        map[string]*entities.BlogPost
	translations map[translationKey]*entities.BlogPostTranslation
	updateCalls  []map[string]any
}

func newFakeBlogRepo() *fakeBlogRepo {
	return &fakeBlogRepo{
		posts:        map[string]*entities.BlogPost{},
		translations: map[translationKey]*entities.BlogPostTranslation{},
	}
}

func (r *fakeBlogRepo) Create(ctx context.Context, post *entities.BlogPost) error {
	r.posts[post.ID] = post
	return nil
}

func (r *fakeBlogRepo) FindByID(ctx context.Context, id string) (*entities.BlogPost, error) {
	return r.posts[id], nil
}

func (r *fakeBlogRepo) UpdateFields(ctx context.Context, id string, fields map[string]any) error {
	r.updateCalls = append(r.updateCalls, fields)
	p := r.posts[id]
	if p == nil {
		return nil
	}
	if url, ok := fields["main_image_url"]; ok {
		p.MainImageURL = url.(string)
	}
	if published, ok := fields["is_published"]; ok {
		p.IsPublished = published.(bool)
	}
	return nil
}

func (r *fakeBlogRepo) Delete(ctx context.Context, id string) error {
	delete(r.posts, id)
	return nil
}

func (r *fakeBlogRepo) localized(post *entities.BlogPost, tr *entities.BlogPostTranslation) *entities.LocalizedBlogPost {
	return &entities.LocalizedBlogPost{
		ID:          post.ID,
		AuthorID:    post.AuthorID,
		PublishedAt: post.PublishedAt,
		IsPublished: post.IsPublished,
		Title:       tr.Title,
		Content:     tr.Content,
		Slug:        tr.Slug,
	}
}

func (r *fakeBlogRepo) ListPublishedLocalized(ctx context.Context, languageID int64) ([]*entities.LocalizedBlogPost, error) {
	var result []*entities.LocalizedBlogPost
	for key, tr := range r.translations {
		if key.languageID != languageID {
			continue
		}
		p := r.posts[key.parentID]
		if p == nil || !p.IsPublished {
			continue
		}
		result = append(result, r.localized(p, tr))
	}
	return result, nil
}

func (r *fakeBlogRepo) FindPublishedBySlug(ctx context.Context, slug string, languageID int64) (*entities.LocalizedBlogPost, error) {
	for key, tr := range r.translations {
		if key.languageID != languageID || tr.Slug != slug {
			continue
		}
		p := r.posts[key.parentID]
		if p == nil || !p.IsPublished {
			continue
		}
		return r.localized(p, tr), nil
	}
	return nil, nil
}

func (r *fakeBlogRepo) UpsertTranslation(ctx context.Context, translation *entities.BlogPostTranslation) error {
	key := translationKey{parentID: translation.BlogPostID, languageID: translation.LanguageID}
	r.translations[key] = translation
	return nil
}
