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

// UserService contém a lógica de negócio para usuários
type UserService struct {
	userRepo repositories.UserRepository
	logger   ports.Logger
}

// NewUserService cria um novo UserService
func NewUserService(userRepo repositories.UserRepository, logger ports.Logger) *UserService {
	return &UserService{
		userRepo: userRepo,
		logger:   logger,
	}
}

// CreateUserInput representa os dados para criar um usuário
type CreateUserInput struct {
	Email    string
	Password string
	Role     string
}

// UpdateUserInput representa um update parcial: campo nulo
// significa "não alterar"
type UpdateUserInput struct {
	Email    *string
	Password *string
	Role     *string
}

// ListUsers lista todos os usuários (o hash de senha nunca sai daqui
// para a resposta; o DTO não o expõe)
func (s *UserService) ListUsers(ctx context.Context) ([]*entities.User, error) {
	return s.userRepo.List(ctx)
}

// CreateUser cria um novo usuário
func (s *UserService) CreateUser(ctx context.Context, input CreateUserInput) (string, error) {
	emailVO, err := valueobjects.NewEmail(input.Email)
	if err != nil {
		return "", errors.NewValidation("invalid email format")
	}

	role := entities.Role(input.Role)
	if !role.Valid() {
		return "", errors.NewValidation("role must be 'admin' or 'editor'")
	}

	// Validar se email já existe
	existing, err := s.userRepo.FindByEmail(ctx, emailVO.String())
	if err != nil {
		return "", err
	}
	if existing != nil {
		return "", errors.ErrEmailAlreadyExists
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}

	user := &entities.User{
		ID:           uuid.NewString(),
		Email:        emailVO,
		PasswordHash: string(hash),
		Role:         role,
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		return "", err
	}

	s.logger.Info("user created", "user_id", user.ID, "role", input.Role)

	return user.ID, nil
}

// UpdateUser aplica um update parcial; senha é re-hasheada quando fornecida
func (s *UserService) UpdateUser(ctx context.Context, id string, input UpdateUserInput) error {
	fields := map[string]any{}

	if input.Email != nil {
		emailVO, err := valueobjects.NewEmail(*input.Email)
		if err != nil {
			return errors.NewValidation("invalid email format")
		}
		fields["email"] = emailVO.String()
	}

	if input.Password != nil {
		hash, err := bcrypt.GenerateFromPassword([]byte(*input.Password), bcrypt.DefaultCost)
		if err != nil {
			return err
		}
		fields["password_hash"] = string(hash)
	}

	if input.Role != nil {
		if !entities.Role(*input.Role).Valid() {
			return errors.NewValidation("role must be 'admin' or 'editor'")
		}
		fields["role"] = *input.Role
	}

	if len(fields) == 0 {
		return errors.NewValidation("no update data provided")
	}

	return s.userRepo.UpdateFields(ctx, id, fields)
}

// DeleteUser remove um usuário (hard delete). Artigos do autor não são
// removidos: author_id vira NULL via foreign key.
func (s *UserService) DeleteUser(ctx context.Context, id string) error {
	if err := s.userRepo.Delete(ctx, id); err != nil {
		return err
	}
	s.logger.Info("user deleted", "user_id", id)
	return nil
}
