package v1

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// @Summary Get recent incidents
// @Description Get the most recently created incidents, newest first. Requires API key.
// @Tags Incidents
// @Produce json
// @Security ApiKeyAuth
// @Param limit query int false "Maximum number of incidents (1-100)" default(10)
// @Success 200 {array} models.Incident
// @Failure 400 {object} map[string]string "Invalid limit"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /incidents [get]
func (h *Handler) listIncidents(c *gin.Context) {
	log := h.logger.WithField("method", "listIncidents")

	limit, err := strconv.Atoi(c.DefaultQuery("limit", "0"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid limit"})
		return
	}

	incidents, err := h.incidentService.ListRecent(c.Request.Context(), limit)
	if err != nil {
		respondError(c, log, err, "incident not found")
		return
	}
	c.JSON(http.StatusOK, incidents)
}

// @Summary Get incident by ID
// @Description Get a single incident by its ID. Requires API key.
// @Tags Incidents
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Incident ID"
// @Success 200 {object} models.Incident
// @Failure 400 {object} map[string]string "Invalid incident ID"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Incident not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /incidents/{id} [get]
func (h *Handler) getIncident(c *gin.Context) {
	id, ok := parseID(c, "id", "invalid incident ID")
	if !ok {
		return
	}
	log := h.logger.WithField("method", "getIncident").WithField("id", id)

	incident, err := h.incidentService.GetByID(c.Request.Context(), id)
	if err != nil {
		respondError(c, log, err, "incident not found")
		return
	}
	c.JSON(http.StatusOK, incident)
}

// @Summary Create or merge the incident of a call session
// @Description Creates the incident for the session or merges the provided fields into it. Fields that are not sent keep their stored values. The incident becomes the active incident of the dispatch console. Requires API key.
// @Tags Sessions
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param sessionId path string true "Call session ID"
// @Param incident body SessionIncidentRequest true "Partial incident"
// @Success 200 {object} UpsertIncidentResponse
// @Failure 400 {object} map[string]string "Invalid request body or validation error"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /sessions/{sessionId}/incident [put]
func (h *Handler) upsertSessionIncident(c *gin.Context) {
	sessionID := c.Param("sessionId")
	log := h.logger.WithFields(logrus.Fields{"method": "upsertSessionIncident", "session_id": sessionID})

	var input SessionIncidentRequest
	if !h.bindJSON(c, log, &input) {
		return
	}

	ctx := c.Request.Context()
	id, err := h.incidentService.UpsertBySession(ctx, sessionID, input.toPatch())
	if err != nil {
		respondError(c, log, err, "incident not found")
		return
	}

	if err := h.dispatchService.SetActiveIncident(ctx, &id); err != nil {
		log.WithError(err).Warn("Failed to mark incident as active")
	}

	c.JSON(http.StatusOK, UpsertIncidentResponse{IncidentID: id})
}

// @Summary Get the incident of a call session
// @Description Existence probe for the incident of a session. Requires API key.
// @Tags Sessions
// @Produce json
// @Security ApiKeyAuth
// @Param sessionId path string true "Call session ID"
// @Success 200 {object} SessionIncidentResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} SessionIncidentResponse "No incident for the session"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /sessions/{sessionId}/incident [get]
func (h *Handler) getSessionIncident(c *gin.Context) {
	sessionID := c.Param("sessionId")
	log := h.logger.WithFields(logrus.Fields{"method": "getSessionIncident", "session_id": sessionID})

	incident, err := h.incidentService.GetBySession(c.Request.Context(), sessionID)
	if err != nil {
		respondError(c, log, err, "incident not found")
		return
	}
	if incident == nil {
		c.JSON(http.StatusNotFound, SessionIncidentResponse{Found: false})
		return
	}
	c.JSON(http.StatusOK, SessionIncidentResponse{Found: true, Incident: incident})
}

// @Summary Set coordinates of a session incident
// @Tags Sessions
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param sessionId path string true "Call session ID"
// @Param coordinates body CoordinatesRequest true "Coordinates"
// @Success 200 {object} UpsertIncidentResponse
// @Failure 400 {object} map[string]string "Invalid request body or validation error"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Incident not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /sessions/{sessionId}/coordinates [put]
func (h *Handler) setSessionCoordinates(c *gin.Context) {
	sessionID := c.Param("sessionId")
	log := h.logger.WithFields(logrus.Fields{"method": "setSessionCoordinates", "session_id": sessionID})

	var input CoordinatesRequest
	if !h.bindJSON(c, log, &input) {
		return
	}

	id, err := h.incidentService.SetCoordinates(c.Request.Context(), sessionID, input.toModel())
	if err != nil {
		respondError(c, log, err, "incident not found")
		return
	}
	c.JSON(http.StatusOK, UpsertIncidentResponse{IncidentID: id})
}
