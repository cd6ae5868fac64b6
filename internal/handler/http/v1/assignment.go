package v1

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/tiqn/dispatch_engine/internal/models"
	"github.com/tiqn/dispatch_engine/internal/service"
)

// @Summary Offer an incident to rescuers
// @Description Creates a pending assignment for the incident. Requires API key.
// @Tags Assignments
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Incident ID"
// @Success 201 {object} CreateAssignmentResponse
// @Failure 400 {object} map[string]string "Invalid incident ID"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Incident not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /incidents/{id}/assignments [post]
func (h *Handler) createAssignment(c *gin.Context) {
	incidentID, ok := parseID(c, "id", "invalid incident ID")
	if !ok {
		return
	}
	log := h.logger.WithField("method", "createAssignment").WithField("incident_id", incidentID)

	id, err := h.assignmentService.CreatePendingAssignment(c.Request.Context(), incidentID)
	if err != nil {
		respondError(c, log, err, "incident not found")
		return
	}
	c.JSON(http.StatusCreated, CreateAssignmentResponse{AssignmentID: id})
}

// @Summary Get the latest assignment of an incident
// @Tags Assignments
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Incident ID"
// @Success 200 {object} AssignmentResponse
// @Failure 400 {object} map[string]string "Invalid incident ID"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "No assignment for the incident"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /incidents/{id}/assignment [get]
func (h *Handler) getIncidentAssignment(c *gin.Context) {
	incidentID, ok := parseID(c, "id", "invalid incident ID")
	if !ok {
		return
	}
	log := h.logger.WithField("method", "getIncidentAssignment").WithField("incident_id", incidentID)

	assignment, err := h.assignmentService.GetByIncident(c.Request.Context(), incidentID)
	if err != nil {
		respondError(c, log, err, "assignment not found")
		return
	}
	if assignment == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "assignment not found"})
		return
	}
	c.JSON(http.StatusOK, ModelToAssignmentResponse(assignment))
}

// @Summary Accept an offered incident
// @Description The first rescuer to accept a pending assignment wins. Requires API key.
// @Tags Assignments
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Assignment ID"
// @Param body body AcceptAssignmentRequest true "Accepting rescuer"
// @Success 200 {object} AssignmentResponse
// @Failure 400 {object} map[string]string "Invalid assignment ID or request body"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Assignment or rescuer not found"
// @Failure 409 {object} map[string]string "Offer no longer available"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /assignments/{id}/accept [post]
func (h *Handler) acceptAssignment(c *gin.Context) {
	id, ok := parseID(c, "id", "invalid assignment ID")
	if !ok {
		return
	}
	log := h.logger.WithField("method", "acceptAssignment").WithField("assignment_id", id)

	var input AcceptAssignmentRequest
	if !h.bindJSON(c, log, &input) {
		return
	}

	assignment, err := h.assignmentService.AcceptIncident(c.Request.Context(), id, uuid.MustParse(input.RescuerID))
	if err != nil {
		if errors.Is(err, service.ErrInvalidState) {
			log.WithError(err).Info("Offer already taken")
			c.JSON(http.StatusConflict, gin.H{"error": "offer no longer available"})
			return
		}
		respondError(c, log, err, "assignment or rescuer not found")
		return
	}
	c.JSON(http.StatusOK, ModelToAssignmentResponse(assignment))
}

// runTransition - общий обработчик reject/cancel/complete
func (h *Handler) runTransition(c *gin.Context, method string, fn func(context.Context, uuid.UUID) (*models.Assignment, error)) {
	id, ok := parseID(c, "id", "invalid assignment ID")
	if !ok {
		return
	}
	log := h.logger.WithField("method", method).WithField("assignment_id", id)

	assignment, err := fn(c.Request.Context(), id)
	if err != nil {
		respondError(c, log, err, "assignment not found")
		return
	}
	c.JSON(http.StatusOK, ModelToAssignmentResponse(assignment))
}

// @Summary Reject an offered incident
// @Tags Assignments
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Assignment ID"
// @Success 200 {object} AssignmentResponse
// @Failure 400 {object} map[string]string "Invalid assignment ID"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Assignment not found"
// @Failure 409 {object} map[string]string "Assignment is not pending"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /assignments/{id}/reject [post]
func (h *Handler) rejectAssignment(c *gin.Context) {
	h.runTransition(c, "rejectAssignment", h.assignmentService.RejectIncident)
}

// @Summary Withdraw an offered incident
// @Tags Assignments
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Assignment ID"
// @Success 200 {object} AssignmentResponse
// @Failure 400 {object} map[string]string "Invalid assignment ID"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Assignment not found"
// @Failure 409 {object} map[string]string "Assignment is not pending"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /assignments/{id}/cancel [post]
func (h *Handler) cancelAssignment(c *gin.Context) {
	h.runTransition(c, "cancelAssignment", h.assignmentService.CancelAssignment)
}

// @Summary Complete an accepted incident
// @Description Closes the assignment and the incident and updates the rescuer statistics. Requires API key.
// @Tags Assignments
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Assignment ID"
// @Success 200 {object} AssignmentResponse
// @Failure 400 {object} map[string]string "Invalid assignment ID"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Assignment not found"
// @Failure 409 {object} map[string]string "Assignment is not accepted"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /assignments/{id}/complete [post]
func (h *Handler) completeAssignment(c *gin.Context) {
	h.runTransition(c, "completeAssignment", h.assignmentService.CompleteIncident)
}

// @Summary List pending offers
// @Description All pending assignments with their incidents, newest offer first. Requires API key.
// @Tags Assignments
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {array} models.OfferView
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /assignments/pending [get]
func (h *Handler) listPendingAssignments(c *gin.Context) {
	log := h.logger.WithField("method", "listPendingAssignments")

	views, err := h.rescuerService.GetAvailableIncidents(c.Request.Context())
	if err != nil {
		respondError(c, log, err, "assignment not found")
		return
	}
	c.JSON(http.StatusOK, views)
}
