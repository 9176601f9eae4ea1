package api

import (
	"errors"
	"net/http"

	resdto "eventtix/internal/handler/dto/response"
	"eventtix/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type EventHandler struct {
	availabilityQueries queries.AvailabilityQueries
	statsQueries        queries.StatsQueries
}

func NewEventHandler(
	availabilityQueries queries.AvailabilityQueries,
	statsQueries queries.StatsQueries,
) *EventHandler {
	return &EventHandler{
		availabilityQueries: availabilityQueries,
		statsQueries:        statsQueries,
	}
}

// @Summary Get availability
// @Description Aggregate capacity ledger for an event or one of its ticket types
// @Tags events
// @Produce json
// @Param id path string true "Event ID"
// @Param ticketTypeId query string false "Ticket type ID"
// @Success 200 {object} resdto.AvailabilityResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /events/{id}/availability [get]
func (h *EventHandler) GetAvailability(c *gin.Context) {
	eventID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid event ID format",
		})
		return
	}

	var ticketTypeID *uuid.UUID
	if raw := c.Query("ticketTypeId"); raw != "" {
		id, parseErr := uuid.Parse(raw)
		if parseErr != nil {
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Invalid ticket type ID format",
			})
			return
		}
		ticketTypeID = &id
	}

	view, err := h.availabilityQueries.GetAvailability(c.Request.Context(), eventID, ticketTypeID)
	if err != nil {
		switch {
		case errors.Is(err, queries.ErrEventNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Event not found",
			})
		case errors.Is(err, queries.ErrTicketTypeNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Ticket type not found for event",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromAvailabilityView(view))
}

// @Summary Get event stats
// @Description Best-effort engagement counters for an event
// @Tags events
// @Produce json
// @Param id path string true "Event ID"
// @Success 200 {object} resdto.EventStatsResponse
// @Failure 400 {object} map[string]string
// @Router /events/{id}/stats [get]
func (h *EventHandler) GetStats(c *gin.Context) {
	eventID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid event ID format",
		})
		return
	}

	view, err := h.statsQueries.GetEventStats(c.Request.Context(), eventID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, resdto.FromEventStatsView(view))
}
