package ports

import "context"

// BlobStore define a interface para o armazenamento de objetos
// (imagens enviadas por upload), endereçados por nome
type BlobStore interface {
	Put(ctx context.Context, key string, data []byte, contentType string) error
	Delete(ctx context.Context, key string) error
	// PublicURL deriva a URL pública de um objeto a partir da chave
	PublicURL(key string) string
}
