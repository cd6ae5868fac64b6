package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// @Summary Create a known patient record
// @Tags Patients
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param patient body CreatePatientRequest true "Patient"
// @Success 201 {object} models.Patient
// @Failure 400 {object} map[string]string "Invalid request body or validation error"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /patients [post]
func (h *Handler) createPatient(c *gin.Context) {
	log := h.logger.WithField("method", "createPatient")

	var input CreatePatientRequest
	if !h.bindJSON(c, log, &input) {
		return
	}

	patient := input.toModel()
	if err := h.patientService.CreatePatient(c.Request.Context(), patient); err != nil {
		respondError(c, log, err, "patient not found")
		return
	}
	c.JSON(http.StatusCreated, patient)
}

// @Summary Get a known patient record
// @Tags Patients
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Patient ID"
// @Success 200 {object} models.Patient
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Patient not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /patients/{id} [get]
func (h *Handler) getPatient(c *gin.Context) {
	id := c.Param("id")
	log := h.logger.WithField("method", "getPatient").WithField("patient_id", id)

	patient, err := h.patientService.GetPatient(c.Request.Context(), id)
	if err != nil {
		respondError(c, log, err, "patient not found")
		return
	}
	c.JSON(http.StatusOK, patient)
}
