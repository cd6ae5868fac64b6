package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// @Summary Get dispatch console state
// @Tags Dispatch
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} models.DispatchState
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /dispatch/state [get]
func (h *Handler) getDispatchState(c *gin.Context) {
	log := h.logger.WithField("method", "getDispatchState")

	state, err := h.dispatchService.Get(c.Request.Context())
	if err != nil {
		respondError(c, log, err, "dispatch state not found")
		return
	}
	c.JSON(http.StatusOK, state)
}

// @Summary Set the active dispatcher
// @Tags Dispatch
// @Accept json
// @Security ApiKeyAuth
// @Param body body SetDispatcherRequest true "Dispatcher"
// @Success 204 "No Content"
// @Failure 400 {object} map[string]string "Invalid request body or validation error"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /dispatch/dispatcher [put]
func (h *Handler) setActiveDispatcher(c *gin.Context) {
	log := h.logger.WithField("method", "setActiveDispatcher")

	var input SetDispatcherRequest
	if !h.bindJSON(c, log, &input) {
		return
	}

	if err := h.dispatchService.SetActiveDispatcher(c.Request.Context(), input.DispatcherID); err != nil {
		respondError(c, log, err, "dispatch state not found")
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Set or clear the active incident
// @Tags Dispatch
// @Accept json
// @Security ApiKeyAuth
// @Param body body SetActiveIncidentRequest true "Incident, null clears"
// @Success 204 "No Content"
// @Failure 400 {object} map[string]string "Invalid request body or validation error"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /dispatch/incident [put]
func (h *Handler) setActiveIncident(c *gin.Context) {
	log := h.logger.WithField("method", "setActiveIncident")

	var input SetActiveIncidentRequest
	if !h.bindJSON(c, log, &input) {
		return
	}

	var incidentID *uuid.UUID
	if input.IncidentID != nil {
		id := uuid.MustParse(*input.IncidentID)
		incidentID = &id
	}

	if err := h.dispatchService.SetActiveIncident(c.Request.Context(), incidentID); err != nil {
		respondError(c, log, err, "dispatch state not found")
		return
	}
	c.Status(http.StatusNoContent)
}
