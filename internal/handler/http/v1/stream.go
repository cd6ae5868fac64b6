package v1

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

const streamWriteTimeout = 10 * time.Second

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin:     func(r *http.Request) bool { return true },
}

// @Summary Stream change events
// @Description Upgrades to a websocket and sends a JSON change event for every committed mutation of the selected entities. Requires API key.
// @Tags Stream
// @Security ApiKeyAuth
// @Param entities query string false "Comma-separated entities (incident, assignment, rescuer, dispatch_state)"
// @Success 101 "Switching Protocols"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /stream [get]
func (h *Handler) streamEvents(c *gin.Context) {
	log := h.logger.WithField("method", "streamEvents")
	entities := parseEntities(c.Query("entities"))

	ctx, cancel := context.WithCancel(c.Request.Context())
	defer cancel()

	ch, err := h.subscriber.Subscribe(ctx, entities...)
	if err != nil {
		log.WithError(err).Error("Failed to subscribe to change events")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.WithError(err).Warn("Websocket upgrade failed")
		return
	}
	defer conn.Close()
	log.WithField("entities", entities).Debug("Stream client connected")

	// Чтение нужно только для обработки close-фреймов клиента
	go func() {
		defer cancel()
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()

	for event := range ch {
		_ = conn.SetWriteDeadline(time.Now().Add(streamWriteTimeout))
		if err := conn.WriteJSON(event); err != nil {
			log.WithError(err).Debug("Stream client gone")
			return
		}
	}
}

func parseEntities(raw string) []string {
	var entities []string
	for _, e := range strings.Split(raw, ",") {
		if e = strings.TrimSpace(e); e != "" {
			entities = append(entities, e)
		}
	}
	return entities
}
