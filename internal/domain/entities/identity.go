package entities

// Identity é a asserção de identidade extraída de um token verificado.
// Efêmera: vive apenas durante a requisição, nunca é persistida.
type Identity struct {
	UserID string
	Email  string
	Role   Role
}
