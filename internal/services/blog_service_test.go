package services

import (
	"context"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/vitrinecms/backend/internal/domain/entities"
	"github.com/vitrinecms/backend/internal/domain/errors"
)

var _ = Describe("BlogService", func() {
	var (
		ctx          context.Context
		blogRepo     *fakeBlogRepo
		languageRepo *fakeLanguageRepo
		blobs        *fakeBlobStore
		svc          *BlogService

		en *entities.Language
	)

	BeforeEach(func() {
		ctx = context.Background()
		blogRepo = newFakeBlogRepo()
		languageRepo = newFakeLanguageRepo()
		blobs = newFakeBlobStore()
		svc = NewBlogService(blogRepo, languageRepo, blobs, noopLogger{})

		en = languageRepo.add("en", "English", true)
	})

	seedPost := func(id, slug string, published bool) {
		authorID := "author-1"
		blogRepo.posts[id] = &entities.BlogPost{
			ID:          id,
			AuthorID:    &authorID,
			PublishedAt: time.Now().UTC(),
			IsPublished: published,
		}
		blogRepo.translations[translationKey{parentID: id, languageID: en.ID}] = &entities.BlogPostTranslation{
			BlogPostID: id,
			LanguageID: en.ID,
			Title:      "Title " + id,
			Slug:       slug,
		}
	}

	Describe("CreatePost", func() {
		It("exige author id", func() {
			_, err := svc.CreatePost(ctx, CreateBlogPostInput{})
			Expect(err).To(HaveOccurred())
			Expect(errors.KindOf(err)).To(Equal(errors.KindValidation))
		})

		It("guarda o author id recebido da identidade autenticada", func() {
			result, err := svc.CreatePost(ctx, CreateBlogPostInput{AuthorID: "author-1"})
			Expect(err).NotTo(HaveOccurred())

			post := blogRepo.posts[result.PostID]
			Expect(post.AuthorID).NotTo(BeNil())
			Expect(*post.AuthorID).To(Equal("author-1"))
		})

		It("gera slug padrão a partir do título quando o formulário não traz slug", func() {
			result, err := svc.CreatePost(ctx, CreateBlogPostInput{
				AuthorID: "author-1",
				Translations: map[string]BlogTranslationInput{
					"en": {Title: "My First Post"},
				},
			})
			Expect(err).NotTo(HaveOccurred())

			tr := blogRepo.translations[translationKey{parentID: result.PostID, languageID: en.ID}]
			Expect(tr.Slug).To(Equal("my-first-post-en"))
		})

		It("pula tradução sem título", func() {
			result, err := svc.CreatePost(ctx, CreateBlogPostInput{
				AuthorID: "author-1",
				Translations: map[string]BlogTranslationInput{
					"en": {Content: "Body without title"},
				},
			})
			Expect(err).NotTo(HaveOccurred())

			key := translationKey{parentID: result.PostID, languageID: en.ID}
			Expect(blogRepo.translations).NotTo(HaveKey(key))
		})
	})

	Describe("ListPosts", func() {
		It("lista apenas artigos publicados", func() {
			seedPost("b1", "published-post", true)
			seedPost("b2", "draft-post", false)

			posts, err := svc.ListPosts(ctx, "en")
			Expect(err).NotTo(HaveOccurred())
			Expect(posts).To(HaveLen(1))
			Expect(posts[0].Slug).To(Equal("published-post"))
		})

		It("rejeita código de idioma desconhecido", func() {
			_, err := svc.ListPosts(ctx, "xx")
			Expect(err).To(HaveOccurred())
			Expect(errors.KindOf(err)).To(Equal(errors.KindNotFound))
		})
	})

	Describe("GetPostBySlug", func() {
		It("não revela rascunho mesmo com o slug exato", func() {
			seedPost("b1", "draft-post", false)

			_, err := svc.GetPostBySlug(ctx, "draft-post", "en")
			Expect(err).To(MatchError(errors.ErrBlogPostNotFound))
		})

		It("retorna o artigo publicado pelo slug", func() {
			seedPost("b1", "published-post", true)

			post, err := svc.GetPostBySlug(ctx, "published-post", "en")
			Expect(err).NotTo(HaveOccurred())
			Expect(post.ID).To(Equal("b1"))
		})
	})

	Describe("UpdatePost", func() {
		It("altera o flag de publicação", func() {
			seedPost("b1", "post", false)

			published := true
			err := svc.UpdatePost(ctx, "b1", UpdateBlogPostInput{IsPublished: &published})
			Expect(err).NotTo(HaveOccurred())
			Expect(blogRepo.posts["b1"].IsPublished).To(BeTrue())
		})

		It("delete_image remove o blob e limpa a URL", func() {
			authorID := "author-1"
			blogRepo.posts["b1"] = &entities.BlogPost{
				ID:           "b1",
				AuthorID:     &authorID,
				MainImageURL: "https://cdn.test/b1_cover.jpg",
			}
			blobs.objects["b1_cover.jpg"] = []byte("img")

			err := svc.UpdatePost(ctx, "b1", UpdateBlogPostInput{DeleteImage: true})
			Expect(err).NotTo(HaveOccurred())
			Expect(blobs.deleted).To(ContainElement("b1_cover.jpg"))
			Expect(blogRepo.posts["b1"].MainImageURL).To(BeEmpty())
		})
	})

	Describe("DeletePost", func() {
		It("remove o blob da imagem e a linha do artigo", func() {
			seedPost("b1", "post", true)
			blogRepo.posts["b1"].MainImageURL = "https://cdn.test/b1_cover.jpg"
			blobs.objects["b1_cover.jpg"] = []byte("img")

			Expect(svc.DeletePost(ctx, "b1")).To(Succeed())
			Expect(blobs.deleted).To(ContainElement("b1_cover.jpg"))
			Expect(blogRepo.posts).NotTo(HaveKey("b1"))
		})
	})
})
