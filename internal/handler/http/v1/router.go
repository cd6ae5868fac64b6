package v1

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes регистрирует все маршруты API v1
func (h *Handler) RegisterRoutes(api *gin.RouterGroup) {
	// Маршрут Health-check открыт без ключа
	api.GET("/system/health", h.healthCheck)

	secured := api.Group("", APIKeyAuthMiddleware(h.cfg, h.logger))

	incidents := secured.Group("/incidents")
	{
		incidents.GET("", h.listIncidents)
		incidents.GET("/:id", h.getIncident)
		incidents.POST("/:id/assignments", h.createAssignment)
		incidents.GET("/:id/assignment", h.getIncidentAssignment)
	}

	// Инциденты звонков адресуются идентификатором сессии
	sessions := secured.Group("/sessions/:sessionId")
	{
		sessions.PUT("/incident", h.upsertSessionIncident)
		sessions.GET("/incident", h.getSessionIncident)
		sessions.PUT("/coordinates", h.setSessionCoordinates)
	}

	assignments := secured.Group("/assignments")
	{
		assignments.GET("/pending", h.listPendingAssignments)
		assignments.POST("/:id/accept", h.acceptAssignment)
		assignments.POST("/:id/reject", h.rejectAssignment)
		assignments.POST("/:id/cancel", h.cancelAssignment)
		assignments.POST("/:id/complete", h.completeAssignment)
	}

	rescuers := secured.Group("/rescuers")
	{
		rescuers.GET("", h.listRescuers)
		rescuers.POST("", h.registerRescuer)
		rescuers.GET("/:id", h.getRescuer)
		rescuers.PUT("/:id/location", h.updateRescuerLocation)
		rescuers.GET("/:id/active-assignment", h.getActiveAssignment)
		rescuers.GET("/:id/available-incidents", h.rankAvailableIncidents)
	}

	dispatch := secured.Group("/dispatch")
	{
		dispatch.GET("/state", h.getDispatchState)
		dispatch.PUT("/dispatcher", h.setActiveDispatcher)
		dispatch.PUT("/incident", h.setActiveIncident)
	}

	patients := secured.Group("/patients")
	{
		patients.POST("", h.createPatient)
		patients.GET("/:id", h.getPatient)
	}

	secured.GET("/stream", h.streamEvents)
}
