package entities

// Role representa o papel de um usuário no sistema
type Role string

const (
	RoleAdmin  Role = "admin"
	RoleEditor Role = "editor"
)

// Valid verifica se o role é um dos valores conhecidos
func (r Role) Valid() bool {
	return r == RoleAdmin || r == RoleEditor
}

// Covers verifica se o role satisfaz o role exigido.
// Admin é superconjunto: passa em qualquer verificação.
func (r Role) Covers(required Role) bool {
	if r == RoleAdmin {
		return true
	}
	return r == required
}
