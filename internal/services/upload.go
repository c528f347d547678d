package services

import "strings"

// ImageUpload carrega o conteúdo de uma imagem enviada via multipart
type ImageUpload struct {
	Filename    string
	ContentType string
	Data        []byte
}

// blobKey deriva o nome do objeto no blob store: {id}_{arquivo original}
func blobKey(parentID, filename string) string {
	return parentID + "_" + filename
}

// blobKeyFromURL extrai o nome do objeto a partir da URL pública
// (último segmento do path)
func blobKeyFromURL(url string) string {
	if idx := strings.LastIndex(url, "/"); idx != -1 {
		return url[idx+1:]
	}
	return url
}

// slugify gera um slug a partir de um texto: minúsculas, espaços
// viram hífen
func slugify(text string) string {
	slug := strings.ToLower(strings.TrimSpace(text))
	return strings.Join(strings.Fields(slug), "-")
}
