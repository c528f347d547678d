package token

import (
	stderrors "errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/vitrinecms/backend/internal/domain/entities"
	"github.com/vitrinecms/backend/internal/domain/errors"
	"github.com/vitrinecms/backend/internal/domain/ports"
)

// TokenTTL é a validade de uma asserção de identidade
const TokenTTL = 8 * time.Hour

// JWTService implementa ports.TokenService com HMAC-SHA256
type JWTService struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

// NewJWTService cria um novo JWTService. Secret vazio é erro fatal
// de configuração e deve ser barrado no boot.
func NewJWTService(secret string) (ports.TokenService, error) {
	if secret == "" {
		return nil, fmt.Errorf("jwt secret is not configured")
	}
	return &JWTService{
		secret: []byte(secret),
		ttl:    TokenTTL,
		now:    time.Now,
	}, nil
}

// Issue emite um token assinado com as claims da identidade
func (s *JWTService) Issue(identity entities.Identity) (string, error) {
	now := s.now()

	claims := jwt.MapClaims{
		"userId": identity.UserID,
		"email":  identity.Email,
		"role":   string(identity.Role),
		"iat":    now.Unix(),
		"exp":    now.Add(s.ttl).Unix(),
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString(s.secret)
}

// Verify valida assinatura e expiração. Token expirado e token
// malformado caem na mesma classe de erro (401), com mensagens
// distintas.
func (s *JWTService) Verify(tokenString string) (entities.Identity, error) {
	t, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return s.secret, nil
	}, jwt.WithTimeFunc(s.now))
	if err != nil {
		if stderrors.Is(err, jwt.ErrTokenExpired) {
			return entities.Identity{}, errors.ErrTokenExpired
		}
		return entities.Identity{}, errors.ErrInvalidToken
	}
	if !t.Valid {
		return entities.Identity{}, errors.ErrInvalidToken
	}

	claims, ok := t.Claims.(jwt.MapClaims)
	if !ok {
		return entities.Identity{}, errors.ErrInvalidToken
	}

	userID, _ := claims["userId"].(string)
	email, _ := claims["email"].(string)
	role, _ := claims["role"].(string)
	if userID == "" || role == "" {
		return entities.Identity{}, errors.ErrInvalidToken
	}

	return entities.Identity{
		UserID: userID,
		Email:  email,
		Role:   entities.Role(role),
	}, nil
}
