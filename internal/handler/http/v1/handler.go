package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/sirupsen/logrus"
	"github.com/tiqn/dispatch_engine/internal/config"
	"github.com/tiqn/dispatch_engine/internal/events"
	"github.com/tiqn/dispatch_engine/internal/service"
)

// Services - сервисы, которые обслуживает HTTP-слой
type Services struct {
	Incidents   service.IncidentService
	Assignments service.AssignmentService
	Rescuers    service.RescuerService
	Dispatch    service.DispatchService
	Patients    service.PatientService
}

type Handler struct {
	incidentService   service.IncidentService
	assignmentService service.AssignmentService
	rescuerService    service.RescuerService
	dispatchService   service.DispatchService
	patientService    service.PatientService
	subscriber        events.Subscriber
	logger            *logrus.Logger
	validate          *validator.Validate
	cfg               *config.Config
}

func NewHandler(services Services, subscriber events.Subscriber, logger *logrus.Logger, cfg *config.Config) *Handler {
	return &Handler{
		incidentService:   services.Incidents,
		assignmentService: services.Assignments,
		rescuerService:    services.Rescuers,
		dispatchService:   services.Dispatch,
		patientService:    services.Patients,
		subscriber:        subscriber,
		logger:            logger,
		validate:          validator.New(),
		cfg:               cfg,
	}
}

// bindJSON разбирает и валидирует тело запроса, при ошибке отвечает 400
func (h *Handler) bindJSON(c *gin.Context, log *logrus.Entry, dst any) bool {
	if err := c.ShouldBindJSON(dst); err != nil {
		log.WithError(err).Warn("Failed to bind JSON")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return false
	}

	if err := h.validate.Struct(dst); err != nil {
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return false
	}
	return true
}

// @Summary Get application health status
// @Description Get health status of the application
// @Tags System
// @Accept json
// @Produce json
// @Success 200 {object} map[string]string "Status OK"
// @Router /system/health [get]
func (h *Handler) healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
