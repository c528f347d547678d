package services

import (
	"context"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"golang.org/x/crypto/bcrypt"

	"github.com/vitrinecms/backend/internal/domain/errors"
)

var _ = Describe("UserService", func() {
	var (
		ctx      context.Context
		userRepo *fakeUserRepo
		svc      *UserService
	)

	BeforeEach(func() {
		ctx = context.Background()
		userRepo = newFakeUserRepo()
		svc = NewUserService(userRepo, noopLogger{})
	})

	Describe("CreateUser", func() {
		It("cria o usuário com senha hasheada", func() {
			userID, err := svc.CreateUser(ctx, CreateUserInput{
				Email:    "Editor@Example.com",
				Password: "secret123",
				Role:     "editor",
			})
			Expect(err).NotTo(HaveOccurred())

			user := userRepo.users[userID]
			Expect(user).NotTo(BeNil())
			// Email normalizado para minúsculas
			Expect(user.Email.String()).To(Equal("editor@example.com"))
			Expect(bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("secret123"))).To(Succeed())
		})

		It("rejeita role desconhecido", func() {
			_, err := svc.CreateUser(ctx, CreateUserInput{
				Email:    "user@example.com",
				Password: "secret123",
				Role:     "superuser",
			})
			Expect(err).To(HaveOccurred())
			Expect(errors.KindOf(err)).To(Equal(errors.KindValidation))
		})

		It("rejeita email inválido", func() {
			_, err := svc.CreateUser(ctx, CreateUserInput{
				Email:    "not-an-email",
				Password: "secret123",
				Role:     "editor",
			})
			Expect(err).To(HaveOccurred())
			Expect(errors.KindOf(err)).To(Equal(errors.KindValidation))
		})

		It("recusa email duplicado com conflito", func() {
			_, err := svc.CreateUser(ctx, CreateUserInput{
				Email:    "user@example.com",
				Password: "secret123",
				Role:     "editor",
			})
			Expect(err).NotTo(HaveOccurred())

			_, err = svc.CreateUser(ctx, CreateUserInput{
				Email:    "user@example.com",
				Password: "other",
				Role:     "admin",
			})
			Expect(err).To(MatchError(errors.ErrEmailAlreadyExists))
		})
	})

	Describe("UpdateUser", func() {
		It("rejeita update sem nenhum campo", func() {
			err := svc.UpdateUser(ctx, "u1", UpdateUserInput{})
			Expect(err).To(HaveOccurred())
			Expect(errors.KindOf(err)).To(Equal(errors.KindValidation))
		})

		It("rejeita role inválido", func() {
			role := "superuser"
			err := svc.UpdateUser(ctx, "u1", UpdateUserInput{Role: &role})
			Expect(err).To(HaveOccurred())
			Expect(errors.KindOf(err)).To(Equal(errors.KindValidation))
		})
	})

	Describe("DeleteUser", func() {
		It("remove o usuário", func() {
			_, err := svc.CreateUser(ctx, CreateUserInput{
				Email:    "user@example.com",
				Password: "secret123",
				Role:     "editor",
			})
			Expect(err).NotTo(HaveOccurred())

			var id string
			for k := range userRepo.users {
				id = k
			}

			Expect(svc.DeleteUser(ctx, id)).To(Succeed())
			Expect(userRepo.users).To(BeEmpty())
		})
	})
})

var _ = Describe("LanguageService", func() {
	var (
		ctx          context.Context
		languageRepo *fakeLanguageRepo
		svc          *LanguageService
	)

	BeforeEach(func() {
		ctx = context.Background()
		languageRepo = newFakeLanguageRepo()
		svc = NewLanguageService(languageRepo, noopLogger{})
	})

	Describe("CreateLanguage", func() {
		It("cria o idioma", func() {
			language, err := svc.CreateLanguage(ctx, CreateLanguageInput{
				Code:     "pt",
				Name:     "Português",
				IsActive: true,
			})
			Expect(err).NotTo(HaveOccurred())
			Expect(language.ID).NotTo(BeZero())
		})

		It("recusa código duplicado com conflito", func() {
			languageRepo.add("pt", "Português", true)

			_, err := svc.CreateLanguage(ctx, CreateLanguageInput{Code: "pt", Name: "Portuguese"})
			Expect(err).To(MatchError(errors.ErrCodeAlreadyExists))
		})
	})

	Describe("UpdateLanguage", func() {
		It("rejeita update sem nenhum campo", func() {
			err := svc.UpdateLanguage(ctx, 1, UpdateLanguageInput{})
			Expect(err).To(HaveOccurred())
			Expect(errors.KindOf(err)).To(Equal(errors.KindValidation))
		})
	})

	Describe("DeleteLanguage", func() {
		It("remove o idioma", func() {
			lang := languageRepo.add("pt", "Português", true)

			Expect(svc.DeleteLanguage(ctx, lang.ID)).To(Succeed())
			Expect(languageRepo.languages).To(BeEmpty())
		})
	})
})
