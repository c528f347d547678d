package errors

import "errors"

// Kind classifica um erro de domínio. O handler HTTP traduz cada
// Kind para um status code; a mensagem vai no corpo como {"error": ...}.
type Kind int

const (
	KindValidation Kind = iota // 400
	KindNotFound               // 404
	KindConflict               // 409
	KindUnauthorized           // 401
	KindForbidden              // 403
	KindInternal               // 500
)

// DomainError representa um erro de domínio com contexto adicional
type DomainError struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *DomainError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *DomainError) Unwrap() error {
	return e.Err
}

// KindOf extrai o Kind de um erro; erros desconhecidos são internos
func KindOf(err error) Kind {
	var de *DomainError
	if errors.As(err, &de) {
		return de.Kind
	}
	return KindInternal
}

func NewValidation(msg string) *DomainError {
	return &DomainError{Kind: KindValidation, Message: msg}
}

func NewNotFound(msg string) *DomainError {
	return &DomainError{Kind: KindNotFound, Message: msg}
}

func NewConflict(msg string) *DomainError {
	return &DomainError{Kind: KindConflict, Message: msg}
}

func NewUnauthorized(msg string) *DomainError {
	return &DomainError{Kind: KindUnauthorized, Message: msg}
}

func NewForbidden(msg string) *DomainError {
	return &DomainError{Kind: KindForbidden, Message: msg}
}

// Business errors
var (
	// Mensagem genérica: não distingue "senha errada" de "usuário inexistente"
	ErrInvalidCredentials = NewUnauthorized("invalid credentials")
	ErrUserNotFound       = NewNotFound("user not found")
	ErrEmailAlreadyExists = NewConflict("a user with this email already exists")
	ErrCodeAlreadyExists  = NewConflict("language code already exists")
	ErrProductNotFound    = NewNotFound("product not found")
	ErrBlogPostNotFound   = NewNotFound("blog post not found")
	ErrLanguageNotFound   = NewNotFound("language not found")
	ErrInvalidToken       = NewUnauthorized("invalid or expired token")
	ErrTokenExpired       = NewUnauthorized("token has expired")
	ErrMissingToken       = NewUnauthorized("authentication token missing or malformed")
	ErrForbidden          = NewForbidden("access denied: insufficient role")
	ErrUnauthenticated    = NewUnauthorized("authentication required")
)
