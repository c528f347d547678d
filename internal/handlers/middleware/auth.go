package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/vitrinecms/backend/internal/domain/entities"
	"github.com/vitrinecms/backend/internal/domain/errors"
	"github.com/vitrinecms/backend/internal/domain/ports"
	"github.com/vitrinecms/backend/internal/handlers/dto"
)

// IdentityContextKey é a chave usada para armazenar a identidade
// autenticada no contexto do Gin
const IdentityContextKey = "identity"

// AuthMiddleware valida asserções de identidade nas rotas privilegiadas.
// São dois checks independentes e componíveis: Authenticate (401) e
// RequireRole (403); ambos abortam a cadeia na primeira falha.
type AuthMiddleware struct {
	tokens ports.TokenService
}

// NewAuthMiddleware cria um novo AuthMiddleware
func NewAuthMiddleware(tokens ports.TokenService) *AuthMiddleware {
	return &AuthMiddleware{tokens: tokens}
}

// Authenticate valida o header Authorization e anexa a identidade ao
// contexto da requisição. Header ausente, malformado, token inválido
// ou expirado: 401.
func (m *AuthMiddleware) Authenticate() gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" || !strings.HasPrefix(header, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.ErrorResponse{Error: errors.ErrMissingToken.Message})
			return
		}

		identity, err := m.tokens.Verify(strings.TrimPrefix(header, "Bearer "))
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.ErrorResponse{Error: err.Error()})
			return
		}

		c.Set(IdentityContextKey, identity)
		c.Next()
	}
}

// RequireRole exige que a identidade autenticada cubra o role pedido.
// Sem identidade no contexto falha fechado com 401 — nunca assume que
// Authenticate rodou antes.
func RequireRole(required entities.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		identity, ok := IdentityFromContext(c)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.ErrorResponse{Error: errors.ErrUnauthenticated.Message})
			return
		}

		if !identity.Role.Covers(required) {
			c.AbortWithStatusJSON(http.StatusForbidden, dto.ErrorResponse{Error: errors.ErrForbidden.Message})
			return
		}

		c.Next()
	}
}

// IdentityFromContext recupera a identidade anexada por Authenticate
func IdentityFromContext(c *gin.Context) (entities.Identity, bool) {
	v, ok := c.Get(IdentityContextKey)
	if !ok {
		return entities.Identity{}, false
	}

	identity, ok := v.(entities.Identity)
	return identity, ok
}
