package services

import (
	"context"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"golang.org/x/crypto/bcrypt"

	"github.com/vitrinecms/backend/internal/domain/entities"
	"github.com/vitrinecms/backend/internal/domain/errors"
	"github.com/vitrinecms/backend/internal/domain/valueobjects"
)

type stubTokens struct{}

func (stubTokens) Issue(identity entities.Identity) (string, error) {
	return "token-for-" + identity.UserID, nil
}

func (stubTokens) Verify(token string) (entities.Identity, error) {
	return entities.Identity{}, errors.ErrInvalidToken
}

var _ = Describe("AuthService", func() {
	var (
		ctx      context.Context
		userRepo *fakeUserRepo
		svc      *AuthService
	)

	BeforeEach(func() {
		ctx = context.Background()
		userRepo = newFakeUserRepo()
		svc = NewAuthService(userRepo, stubTokens{}, fakeUnitOfWork{}, noopLogger{})
	})

	seedUser := func(id, email, password string, role entities.Role) {
		hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
		Expect(err).NotTo(HaveOccurred())
		emailVO, err := valueobjects.NewEmail(email)
		Expect(err).NotTo(HaveOccurred())
		userRepo.users[id] = &entities.User{
			ID:           id,
			Email:        emailVO,
			PasswordHash: string(hash),
			Role:         role,
		}
	}

	Describe("Login", func() {
		BeforeEach(func() {
			seedUser("u1", "admin@example.com", "secret123", entities.RoleAdmin)
		})

		It("emite token e retorna o role com credenciais válidas", func() {
			result, err := svc.Login(ctx, "admin@example.com", "secret123")
			Expect(err).NotTo(HaveOccurred())
			Expect(result.Token).To(Equal("token-for-u1"))
			Expect(result.Role).To(Equal(entities.RoleAdmin))
		})

		It("retorna a mesma mensagem genérica para senha errada", func() {
			_, err := svc.Login(ctx, "admin@example.com", "wrong")
			Expect(err).To(MatchError(errors.ErrInvalidCredentials))
		})

		It("retorna a mesma mensagem genérica para email inexistente", func() {
			_, err := svc.Login(ctx, "ghost@example.com", "secret123")
			Expect(err).To(MatchError(errors.ErrInvalidCredentials))
		})
	})

	Describe("RegisterInitialAdmin", func() {
		It("cria o primeiro usuário com role admin", func() {
			userID, err := svc.RegisterInitialAdmin(ctx, "boot@example.com", "secret123")
			Expect(err).NotTo(HaveOccurred())
			Expect(userID).NotTo(BeEmpty())

			user := userRepo.users[userID]
			Expect(user).NotTo(BeNil())
			Expect(user.Role).To(Equal(entities.RoleAdmin))
			Expect(user.Email.String()).To(Equal("boot@example.com"))
			Expect(user.PasswordHash).NotTo(Equal("secret123"))
		})

		It("recusa com conflito quando qualquer usuário já existe", func() {
			seedUser("u1", "editor@example.com", "pw", entities.RoleEditor)

			_, err := svc.RegisterInitialAdmin(ctx, "boot@example.com", "secret123")
			Expect(err).To(HaveOccurred())
			Expect(errors.KindOf(err)).To(Equal(errors.KindConflict))
		})

		It("rejeita email inválido", func() {
			_, err := svc.RegisterInitialAdmin(ctx, "not-an-email", "secret123")
			Expect(err).To(HaveOccurred())
			Expect(errors.KindOf(err)).To(Equal(errors.KindValidation))
		})
	})
})
