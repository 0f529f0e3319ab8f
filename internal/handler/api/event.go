package api

import (
	"errors"
	"net/http"

	resdto "tickethub/internal/handler/dto/response"
	"tickethub/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type EventHandler struct {
	eventQuery queries.EventQuery
}

func NewEventHandler(eventQuery queries.EventQuery) *EventHandler {
	return &EventHandler{
		eventQuery: eventQuery,
	}
}

// @Summary Get event
// @Description Get an event with current seat availability
// @Tags events
// @Produce json
// @Param id path string true "Event ID"
// @Success 200 {object} resdto.EventResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /events/{id} [get]
func (h *EventHandler) GetEvent(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid event ID format",
		})
		return
	}

	view, err := h.eventQuery.GetEvent(c.Request.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, queries.ErrEventNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Event not found",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromEventView(view))
}
