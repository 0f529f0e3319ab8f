package api

import (
	"errors"
	"net/http"

	resdto "tickethub/internal/handler/dto/response"
	"tickethub/internal/handler/middleware"
	"tickethub/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type ReservationHandler struct {
	reservationQuery queries.ReservationQuery
}

func NewReservationHandler(reservationQuery queries.ReservationQuery) *ReservationHandler {
	return &ReservationHandler{
		reservationQuery: reservationQuery,
	}
}

// @Summary Get reservation status
// @Description Get a reservation by its external reference, with tickets once confirmed
// @Tags reservations
// @Produce json
// @Security BearerAuth
// @Param reference path string true "External reference"
// @Success 200 {object} resdto.ReservationResponse
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /reservations/{reference} [get]
func (h *ReservationHandler) GetReservation(c *gin.Context) {
	buyerID, ok := middleware.GetBuyerID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	reference := c.Param("reference")

	detail, err := h.reservationQuery.GetByReference(c.Request.Context(), reference, buyerID)
	if err != nil {
		switch {
		case errors.Is(err, queries.ErrReservationNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Reservation not found",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromReservationDetail(detail))
}
