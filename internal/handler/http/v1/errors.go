package v1

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/tiqn/dispatch_engine/internal/service"
)

// respondError переводит ошибку сервиса в HTTP-ответ, notFound - текст для 404
func respondError(c *gin.Context, log *logrus.Entry, err error, notFound string) {
	switch {
	case errors.Is(err, service.ErrNotFound):
		log.WithError(err).Warn("Entity not found")
		c.JSON(http.StatusNotFound, gin.H{"error": notFound})
	case errors.Is(err, service.ErrInvalidState):
		log.WithError(err).Warn("Invalid state transition")
		c.JSON(http.StatusConflict, gin.H{"error": "operation not allowed in current state"})
	case errors.Is(err, service.ErrInvalidArgument):
		log.WithError(err).Warn("Invalid argument")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid argument"})
	default:
		log.WithError(err).Error("Service call failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}

// parseID читает UUID из параметра пути, при ошибке отвечает 400
func parseID(c *gin.Context, name, message string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": message})
		return uuid.Nil, false
	}
	return id, true
}
