package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// @Summary List rescuers
// @Tags Rescuers
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {array} models.Rescuer
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /rescuers [get]
func (h *Handler) listRescuers(c *gin.Context) {
	log := h.logger.WithField("method", "listRescuers")

	rescuers, err := h.rescuerService.GetAllRescuers(c.Request.Context())
	if err != nil {
		respondError(c, log, err, "rescuer not found")
		return
	}
	c.JSON(http.StatusOK, rescuers)
}

// @Summary Register a rescuer
// @Tags Rescuers
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param rescuer body RegisterRescuerRequest true "Rescuer"
// @Success 201 {object} models.Rescuer
// @Failure 400 {object} map[string]string "Invalid request body or validation error"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /rescuers [post]
func (h *Handler) registerRescuer(c *gin.Context) {
	log := h.logger.WithField("method", "registerRescuer")

	var input RegisterRescuerRequest
	if !h.bindJSON(c, log, &input) {
		return
	}

	rescuer := input.toModel()
	if err := h.rescuerService.RegisterRescuer(c.Request.Context(), rescuer); err != nil {
		respondError(c, log, err, "rescuer not found")
		return
	}
	c.JSON(http.StatusCreated, rescuer)
}

// @Summary Get rescuer details
// @Tags Rescuers
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Rescuer ID"
// @Success 200 {object} models.Rescuer
// @Failure 400 {object} map[string]string "Invalid rescuer ID"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Rescuer not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /rescuers/{id} [get]
func (h *Handler) getRescuer(c *gin.Context) {
	id, ok := parseID(c, "id", "invalid rescuer ID")
	if !ok {
		return
	}
	log := h.logger.WithField("method", "getRescuer").WithField("rescuer_id", id)

	rescuer, err := h.rescuerService.GetRescuerDetails(c.Request.Context(), id)
	if err != nil {
		respondError(c, log, err, "rescuer not found")
		return
	}
	c.JSON(http.StatusOK, rescuer)
}

// @Summary Update rescuer location
// @Tags Rescuers
// @Accept json
// @Security ApiKeyAuth
// @Param id path string true "Rescuer ID"
// @Param location body CoordinatesRequest true "Current location"
// @Success 204 "No Content"
// @Failure 400 {object} map[string]string "Invalid rescuer ID or request body"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Rescuer not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /rescuers/{id}/location [put]
func (h *Handler) updateRescuerLocation(c *gin.Context) {
	id, ok := parseID(c, "id", "invalid rescuer ID")
	if !ok {
		return
	}
	log := h.logger.WithField("method", "updateRescuerLocation").WithField("rescuer_id", id)

	var input CoordinatesRequest
	if !h.bindJSON(c, log, &input) {
		return
	}

	loc := input.toModel()
	if err := h.rescuerService.UpdateLocation(c.Request.Context(), id, loc.Lat, loc.Lng); err != nil {
		respondError(c, log, err, "rescuer not found")
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Get the active assignment of a rescuer
// @Tags Rescuers
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Rescuer ID"
// @Success 200 {object} models.OfferView
// @Failure 400 {object} map[string]string "Invalid rescuer ID"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "No active assignment"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /rescuers/{id}/active-assignment [get]
func (h *Handler) getActiveAssignment(c *gin.Context) {
	id, ok := parseID(c, "id", "invalid rescuer ID")
	if !ok {
		return
	}
	log := h.logger.WithField("method", "getActiveAssignment").WithField("rescuer_id", id)

	view, err := h.rescuerService.GetActiveAssignmentForRescuer(c.Request.Context(), id)
	if err != nil {
		respondError(c, log, err, "active assignment not found")
		return
	}
	if view == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "active assignment not found"})
		return
	}
	c.JSON(http.StatusOK, view)
}

// @Summary Rank available incidents for a rescuer
// @Description Pending offers sorted by estimated arrival time from the rescuer's location. Requires API key.
// @Tags Rescuers
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Rescuer ID"
// @Success 200 {array} models.RankedOffer
// @Failure 400 {object} map[string]string "Invalid rescuer ID"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Rescuer not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /rescuers/{id}/available-incidents [get]
func (h *Handler) rankAvailableIncidents(c *gin.Context) {
	id, ok := parseID(c, "id", "invalid rescuer ID")
	if !ok {
		return
	}
	log := h.logger.WithField("method", "rankAvailableIncidents").WithField("rescuer_id", id)

	ranked, err := h.rescuerService.RankAvailableIncidents(c.Request.Context(), id)
	if err != nil {
		respondError(c, log, err, "rescuer not found")
		return
	}
	c.JSON(http.StatusOK, ranked)
}
