package ports

import "github.com/vitrinecms/backend/internal/domain/entities"

// TokenService emite e verifica asserções de identidade assinadas.
// As asserções nunca são persistidas: a expiração é autocontida.
type TokenService interface {
	// Issue emite um token assinado para a identidade informada
	Issue(identity entities.Identity) (string, error)
	// Verify valida assinatura e expiração, retornando a identidade.
	// Token expirado e token malformado retornam a mesma classe de erro.
	Verify(token string) (entities.Identity, error)
}
