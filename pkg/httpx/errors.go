package httpx

import (
	"context"
	"errors"
	"net/http"

	"github.com/Gunvolt24/pokedex/internal/domain"
	"github.com/gin-gonic/gin"
)

// StatusFromError — HTTP-статус для доменной ошибки.
func StatusFromError(err error) int {
	switch {
	case err == nil:
		return http.StatusOK
	case errors.Is(err, domain.ErrEmptyQuery), errors.Is(err, ErrBadParam):
		return http.StatusBadRequest
	case errors.Is(err, domain.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrUnavailable):
		return http.StatusServiceUnavailable
	case errors.Is(err, context.DeadlineExceeded):
		return http.StatusGatewayTimeout
	default:
		return http.StatusInternalServerError
	}
}

// AbortWithError отвечает JSON {"error": ...}; текст внутренних ошибок наружу не отдаём.
func AbortWithError(c *gin.Context, err error) {
	status := StatusFromError(err)
	msg := http.StatusText(status)
	if status < http.StatusInternalServerError || status == http.StatusServiceUnavailable {
		msg = err.Error()
	}
	c.AbortWithStatusJSON(status, gin.H{"error": msg})
}
