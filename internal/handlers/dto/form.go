package dto

import (
	"io"
	"mime/multipart"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/vitrinecms/backend/internal/domain/errors"
	"github.com/vitrinecms/backend/internal/services"
)

// Os endpoints de escrita de produtos e blog recebem multipart form
// (para suportar anexo de imagem). Campos de tradução vêm sufixados
// pelo código do idioma: name_en, description_pt, slug_en, title_fr...
// Este arquivo monta os command objects dos services a partir do form;
// o handler nunca repassa a requisição crua para baixo.

// formValue distingue "campo ausente" de "campo vazio": ausência
// significa "não alterar" nos updates parciais
func formValue(form *multipart.Form, key string) (string, bool) {
	values, ok := form.Value[key]
	if !ok || len(values) == 0 {
		return "", false
	}
	return values[0], true
}

// readImage carrega o arquivo "image" do form, se presente
func readImage(c *gin.Context) (*services.ImageUpload, error) {
	fileHeader, err := c.FormFile("image")
	if err != nil {
		// Sem arquivo não é erro: imagem é opcional
		return nil, nil
	}

	file, err := fileHeader.Open()
	if err != nil {
		return nil, errors.NewValidation("could not read uploaded image")
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		return nil, errors.NewValidation("could not read uploaded image")
	}

	return &services.ImageUpload{
		Filename:    fileHeader.Filename,
		ContentType: fileHeader.Header.Get("Content-Type"),
		Data:        data,
	}, nil
}

// productTranslations coleta os campos name_/description_/slug_
// agrupados por código de idioma
func productTranslations(form *multipart.Form) map[string]services.ProductTranslationInput {
	translations := map[string]services.ProductTranslationInput{}

	for key, values := range form.Value {
		if len(values) == 0 {
			continue
		}
		value := values[0]

		var code string
		var assign func(*services.ProductTranslationInput)
		switch {
		case strings.HasPrefix(key, "name_"):
			code = strings.TrimPrefix(key, "name_")
			assign = func(t *services.ProductTranslationInput) { t.Name = value }
		case strings.HasPrefix(key, "description_"):
			code = strings.TrimPrefix(key, "description_")
			assign = func(t *services.ProductTranslationInput) { t.Description = value }
		case strings.HasPrefix(key, "slug_"):
			code = strings.TrimPrefix(key, "slug_")
			assign = func(t *services.ProductTranslationInput) { t.Slug = value }
		default:
			continue
		}

		t := translations[code]
		assign(&t)
		translations[code] = t
	}

	return translations
}

// blogTranslations coleta os campos title_/content_/slug_ agrupados
// por código de idioma
func blogTranslations(form *multipart.Form) map[string]services.BlogTranslationInput {
	translations := map[string]services.BlogTranslationInput{}

	for key, values := range form.Value {
		if len(values) == 0 {
			continue
		}
		value := values[0]

		var code string
		var assign func(*services.BlogTranslationInput)
		switch {
		case strings.HasPrefix(key, "title_"):
			code = strings.TrimPrefix(key, "title_")
			assign = func(t *services.BlogTranslationInput) { t.Title = value }
		case strings.HasPrefix(key, "content_"):
			code = strings.TrimPrefix(key, "content_")
			assign = func(t *services.BlogTranslationInput) { t.Content = value }
		case strings.HasPrefix(key, "slug_"):
			code = strings.TrimPrefix(key, "slug_")
			assign = func(t *services.BlogTranslationInput) { t.Slug = value }
		default:
			continue
		}

		t := translations[code]
		assign(&t)
		translations[code] = t
	}

	return translations
}

// ParseCreateProductForm monta o command de criação de produto
func ParseCreateProductForm(c *gin.Context) (services.CreateProductInput, error) {
	var input services.CreateProductInput

	form, err := c.MultipartForm()
	if err != nil {
		return input, errors.NewValidation("expected multipart form data")
	}

	sku, _ := formValue(form, "sku")
	priceStr, hasPrice := formValue(form, "price")
	if sku == "" || !hasPrice {
		return input, errors.NewValidation("sku and price are required")
	}

	price, err := strconv.ParseFloat(priceStr, 64)
	if err != nil {
		return input, errors.NewValidation("price must be a number")
	}

	image, err := readImage(c)
	if err != nil {
		return input, err
	}

	category, _ := formValue(form, "category")
	status, _ := formValue(form, "status")

	input = services.CreateProductInput{
		SKU:          sku,
		Price:        price,
		Category:     category,
		Status:       status,
		Image:        image,
		Translations: productTranslations(form),
	}
	return input, nil
}

// ParseUpdateProductForm monta o command de update parcial de produto
func ParseUpdateProductForm(c *gin.Context) (services.UpdateProductInput, error) {
	var input services.UpdateProductInput

	form, err := c.MultipartForm()
	if err != nil {
		return input, errors.NewValidation("expected multipart form data")
	}

	if priceStr, ok := formValue(form, "price"); ok {
		price, err := strconv.ParseFloat(priceStr, 64)
		if err != nil {
			return input, errors.NewValidation("price must be a number")
		}
		input.Price = &price
	}
	if category, ok := formValue(form, "category"); ok {
		input.Category = &category
	}
	if status, ok := formValue(form, "status"); ok {
		input.Status = &status
	}

	deleteImage, _ := formValue(form, "delete_image")
	input.DeleteImage = deleteImage == "true"

	image, err := readImage(c)
	if err != nil {
		return input, err
	}
	input.Image = image
	input.Translations = productTranslations(form)

	return input, nil
}

// ParseCreateBlogPostForm monta o command de criação de artigo.
// O author id vem da identidade autenticada, injetado pelo handler —
// nunca do corpo da requisição.
func ParseCreateBlogPostForm(c *gin.Context, authorID string) (services.CreateBlogPostInput, error) {
	var input services.CreateBlogPostInput

	form, err := c.MultipartForm()
	if err != nil {
		return input, errors.NewValidation("expected multipart form data")
	}

	isPublished, _ := formValue(form, "is_published")

	image, err := readImage(c)
	if err != nil {
		return input, err
	}

	input = services.CreateBlogPostInput{
		AuthorID:     authorID,
		IsPublished:  isPublished == "true",
		Image:        image,
		Translations: blogTranslations(form),
	}
	return input, nil
}

// ParseUpdateBlogPostForm monta o command de update parcial de artigo
func ParseUpdateBlogPostForm(c *gin.Context) (services.UpdateBlogPostInput, error) {
	var input services.UpdateBlogPostInput

	form, err := c.MultipartForm()
	if err != nil {
		return input, errors.NewValidation("expected multipart form data")
	}

	if isPublishedStr, ok := formValue(form, "is_published"); ok {
		isPublished := isPublishedStr == "true"
		input.IsPublished = &isPublished
	}

	deleteImage, _ := formValue(form, "delete_image")
	input.DeleteImage = deleteImage == "true"

	image, err := readImage(c)
	if err != nil {
		return input, err
	}
	input.Image = image
	input.Translations = blogTranslations(form)

	return input, nil
}
