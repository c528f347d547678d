package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/vitrinecms/backend/internal/domain/errors"
	"github.com/vitrinecms/backend/internal/handlers/dto"
)

// respondError traduz um erro de domínio para o status HTTP da sua
// categoria, com corpo {"error": "..."}. Erro desconhecido vira 500.
func respondError(c *gin.Context, err error) {
	status := http.StatusInternalServerError

	switch errors.KindOf(err) {
	case errors.KindValidation:
		status = http.StatusBadRequest
	case errors.KindNotFound:
		status = http.StatusNotFound
	case errors.KindConflict:
		status = http.StatusConflict
	case errors.KindUnauthorized:
		status = http.StatusUnauthorized
	case errors.KindForbidden:
		status = http.StatusForbidden
	}

	c.JSON(status, dto.ErrorResponse{Error: err.Error()})
}

// langQuery lê o parâmetro ?lang=, com fallback fixo "en".
// Código desconhecido é rejeitado com 404 mais adiante, nunca
// silenciosamente trocado pelo default.
func langQuery(c *gin.Context) string {
	return c.DefaultQuery("lang", "en")
}
