package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"industrial-catalog/internal/catalog"
	"industrial-catalog/internal/metrics"
	"industrial-catalog/internal/repository"
)

const statusClientClosedRequest = 499

// ErrorResponse es el cuerpo de todas las respuestas de error
type ErrorResponse struct {
	Error string `json:"error"`
}

// respondError traduce los errores del dominio a códigos HTTP
func respondError(c *gin.Context, logger *zap.Logger, entity string, err error) {
	var validationErr *catalog.ValidationError
	switch {
	case errors.Is(err, context.Canceled):
		// el cliente cerró la conexión; los repositorios lo envuelven en LoadError
		c.AbortWithStatus(statusClientClosedRequest)
	case errors.As(err, &validationErr):
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: validationErr.Error()})
	case repository.IsNotFound(err):
		c.JSON(http.StatusNotFound, ErrorResponse{Error: err.Error()})
	case repository.IsLoadError(err):
		metrics.LoadFailures.WithLabelValues(entity).Inc()
		logger.Error("load failed", zap.String("entity", entity), zap.Error(err))
		c.JSON(http.StatusServiceUnavailable, ErrorResponse{Error: "failed to load " + entity})
	default:
		logger.Error("request failed", zap.String("entity", entity), zap.Error(err))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal error"})
	}
}
