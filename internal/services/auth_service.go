package services

import (
	"context"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/vitrinecms/backend/internal/domain/entities"
	"github.com/vitrinecms/backend/internal/domain/errors"
	"github.com/vitrinecms/backend/internal/domain/ports"
	"github.com/vitrinecms/backend/internal/domain/repositories"
	"github.com/vitrinecms/backend/internal/domain/valueobjects"
)

// AuthService contém a lógica de autenticação
type AuthService struct {
	userRepo repositories.UserRepository
	tokens   ports.TokenService
	uow      ports.UnitOfWork
	logger   ports.Logger
}

// NewAuthService cria um novo AuthService
func NewAuthService(
	userRepo repositories.UserRepository,
	tokens ports.TokenService,
	uow ports.UnitOfWork,
	logger ports.Logger,
) *AuthService {
	return &AuthService{
		userRepo: userRepo,
		tokens:   tokens,
		uow:      uow,
		logger:   logger,
	}
}

// LoginResult é o resultado de um login bem sucedido
type LoginResult struct {
	Token string
	Role  entities.Role
}

// Login valida as credenciais e emite um token assinado.
// A mensagem de falha é sempre a mesma: não revela se o email
// existe ou se a senha está errada.
func (s *AuthService) Login(ctx context.Context, email, password string) (*LoginResult, error) {
	user, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, errors.ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, errors.ErrInvalidCredentials
	}

	token, err := s.tokens.Issue(entities.Identity{
		UserID: user.ID,
		Email:  user.Email.String(),
		Role:   user.Role,
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("user logged in", "user_id", user.ID, "role", string(user.Role))

	return &LoginResult{Token: token, Role: user.Role}, nil
}

// RegisterInitialAdmin cria o primeiro usuário admin do sistema.
// A rota deixa de funcionar assim que qualquer usuário existir:
// bootstrap é uma operação de uso único.
func (s *AuthService) RegisterInitialAdmin(ctx context.Context, email, password string) (string, error) {
	emailVO, err := valueobjects.NewEmail(email)
	if err != nil {
		return "", errors.NewValidation("invalid email format")
	}

	var userID string

	err = s.uow.WithTransaction(ctx, func(txCtx context.Context) error {
		count, err := s.userRepo.Count(txCtx)
		if err != nil {
			return err
		}
		if count > 0 {
			return errors.NewConflict("initial admin already registered")
		}

		hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
		if err != nil {
			return err
		}

		user := &entities.User{
			ID:           uuid.NewString(),
			Email:        emailVO,
			PasswordHash: string(hash),
			Role:         entities.RoleAdmin,
		}

		if err := s.userRepo.Create(txCtx, user); err != nil {
			return err
		}

		userID = user.ID
		return nil
	})
	if err != nil {
		return "", err
	}

	s.logger.Info("initial admin registered", "user_id", userID)

	return userID, nil
}
