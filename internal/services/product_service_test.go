package services

import (
	"context"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/vitrinecms/backend/internal/domain/entities"
	"github.com/vitrinecms/backend/internal/domain/errors"
)

var _ = Describe("ProductService", func() {
	var (
		ctx          context.Context
		productRepo  *fakeProductRepo
		languageRepo *fakeLanguageRepo
		blobs        *fakeBlobStore
		svc          *ProductService

		en *entities.Language
		pt *entities.Language
	)

	BeforeEach(func() {
		ctx = context.Background()
		productRepo = newFakeProductRepo()
		languageRepo = newFakeLanguageRepo()
		blobs = newFakeBlobStore()
		svc = NewProductService(productRepo, languageRepo, blobs, noopLogger{})

		en = languageRepo.add("en", "English", true)
		pt = languageRepo.add("pt", "Português", true)
	})

	Describe("CreateProduct", func() {
		It("exige sku", func() {
			_, err := svc.CreateProduct(ctx, CreateProductInput{Price: 10})
			Expect(err).To(HaveOccurred())
			Expect(errors.KindOf(err)).To(Equal(errors.KindValidation))
		})

		It("cria traduções apenas para idiomas ativos com nome preenchido", func() {
			languageRepo.add("fr", "Français", false)

			result, err := svc.CreateProduct(ctx, CreateProductInput{
				SKU:   "SKU-1",
				Price: 99.9,
				Translations: map[string]ProductTranslationInput{
					"en": {Name: "Lamp", Description: "A lamp"},
					"pt": {Description: "Sem nome, deve ser pulado"},
					"fr": {Name: "Lampe"},
				},
			})
			Expect(err).NotTo(HaveOccurred())

			enKey := translationKey{parentID: result.ProductID, languageID: en.ID}
			Expect(productRepo.translations).To(HaveKey(enKey))
			Expect(productRepo.translations).To(HaveLen(1))
		})

		It("gera slug padrão sku-código quando o formulário não traz slug", func() {
			result, err := svc.CreateProduct(ctx, CreateProductInput{
				SKU:   "SKU-1",
				Price: 99.9,
				Translations: map[string]ProductTranslationInput{
					"en": {Name: "Lamp"},
					"pt": {Name: "Luminária", Slug: "luminaria-custom"},
				},
			})
			Expect(err).NotTo(HaveOccurred())

			enTr := productRepo.translations[translationKey{parentID: result.ProductID, languageID: en.ID}]
			Expect(enTr.Slug).To(Equal("SKU-1-en"))

			ptTr := productRepo.translations[translationKey{parentID: result.ProductID, languageID: pt.ID}]
			Expect(ptTr.Slug).To(Equal("luminaria-custom"))
		})

		It("grava a imagem sob a chave id_arquivo e guarda a URL pública", func() {
			result, err := svc.CreateProduct(ctx, CreateProductInput{
				SKU:   "SKU-1",
				Price: 10,
				Image: &ImageUpload{Filename: "photo.jpg", ContentType: "image/jpeg", Data: []byte("img")},
			})
			Expect(err).NotTo(HaveOccurred())

			key := result.ProductID + "_photo.jpg"
			Expect(blobs.objects).To(HaveKey(key))
			Expect(result.ImageURL).To(Equal("https://cdn.test/" + key))
			Expect(productRepo.products[result.ProductID].MainImageURL).To(Equal(result.ImageURL))
		})
	})

	Describe("GetProduct", func() {
		It("rejeita código de idioma desconhecido com not found", func() {
			_, err := svc.GetProduct(ctx, "p1", "xx")
			Expect(err).To(HaveOccurred())
			Expect(errors.KindOf(err)).To(Equal(errors.KindNotFound))
			Expect(err.Error()).To(ContainSubstring("language code 'xx' not found"))
		})

		It("retorna not found quando não há tradução no idioma", func() {
			productRepo.products["p1"] = &entities.Product{ID: "p1", SKU: "SKU-1"}

			_, err := svc.GetProduct(ctx, "p1", "en")
			Expect(err).To(MatchError(errors.ErrProductNotFound))
		})
	})

	Describe("UpdateProduct", func() {
		BeforeEach(func() {
			productRepo.products["p1"] = &entities.Product{
				ID:           "p1",
				SKU:          "SKU-1",
				MainImageURL: "https://cdn.test/p1_old.jpg",
			}
			blobs.objects["p1_old.jpg"] = []byte("old")
		})

		It("delete_image remove o blob e limpa a URL, mesmo com upload novo", func() {
			err := svc.UpdateProduct(ctx, "p1", UpdateProductInput{
				DeleteImage: true,
				Image:       &ImageUpload{Filename: "new.jpg", Data: []byte("new")},
			})
			Expect(err).NotTo(HaveOccurred())

			Expect(blobs.deleted).To(ContainElement("p1_old.jpg"))
			Expect(blobs.objects).NotTo(HaveKey("p1_new.jpg"))
			Expect(productRepo.products["p1"].MainImageURL).To(BeEmpty())
		})

		It("upload novo substitui a URL da imagem", func() {
			err := svc.UpdateProduct(ctx, "p1", UpdateProductInput{
				Image: &ImageUpload{Filename: "new.jpg", Data: []byte("new")},
			})
			Expect(err).NotTo(HaveOccurred())

			Expect(blobs.objects).To(HaveKey("p1_new.jpg"))
			Expect(productRepo.products["p1"].MainImageURL).To(Equal("https://cdn.test/p1_new.jpg"))
		})

		It("não emite UPDATE quando nenhum campo escalar mudou", func() {
			err := svc.UpdateProduct(ctx, "p1", UpdateProductInput{
				Translations: map[string]ProductTranslationInput{
					"en": {Name: "Lamp"},
				},
			})
			Expect(err).NotTo(HaveOccurred())
			Expect(productRepo.updateCalls).To(BeEmpty())
		})

		It("sobrescreve a linha inteira da tradução quando qualquer campo veio", func() {
			productRepo.translations[translationKey{parentID: "p1", languageID: en.ID}] = &entities.ProductTranslation{
				ProductID:   "p1",
				LanguageID:  en.ID,
				Name:        "Old name",
				Description: "Old description",
				Slug:        "old-slug",
			}

			err := svc.UpdateProduct(ctx, "p1", UpdateProductInput{
				Translations: map[string]ProductTranslationInput{
					"en": {Name: "New name"},
				},
			})
			Expect(err).NotTo(HaveOccurred())

			tr := productRepo.translations[translationKey{parentID: "p1", languageID: en.ID}]
			Expect(tr.Name).To(Equal("New name"))
			Expect(tr.Description).To(BeEmpty())
			Expect(tr.Slug).To(BeEmpty())
		})

		It("ignora tradução com os três campos vazios", func() {
			err := svc.UpdateProduct(ctx, "p1", UpdateProductInput{
				Translations: map[string]ProductTranslationInput{
					"en": {},
				},
			})
			Expect(err).NotTo(HaveOccurred())
			Expect(productRepo.translations).To(BeEmpty())
		})
	})

	Describe("DeleteProduct", func() {
		It("remove o blob da imagem antes da linha", func() {
			productRepo.products["p1"] = &entities.Product{
				ID:           "p1",
				MainImageURL: "https://cdn.test/p1_photo.jpg",
			}
			blobs.objects["p1_photo.jpg"] = []byte("img")

			Expect(svc.DeleteProduct(ctx, "p1")).To(Succeed())
			Expect(blobs.deleted).To(ContainElement("p1_photo.jpg"))
			Expect(productRepo.products).NotTo(HaveKey("p1"))
		})

		It("funciona sem imagem associada", func() {
			productRepo.products["p1"] = &entities.Product{ID: "p1"}

			Expect(svc.DeleteProduct(ctx, "p1")).To(Succeed())
			Expect(blobs.deleted).To(BeEmpty())
		})
	})
})
