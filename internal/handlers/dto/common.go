package dto

// ErrorResponse é o corpo de toda resposta de erro: {"error": "..."}.
// O status HTTP comunica a categoria; a mensagem é legível para humanos.
type ErrorResponse struct {
	Error string `json:"error"`
}

// MessageResponse é o corpo de operações sem payload de retorno
type MessageResponse struct {
	Message string `json:"message"`
}
