package api

import (
	"errors"
	"net/http"

	reqdto "tickethub/internal/handler/dto/request"
	resdto "tickethub/internal/handler/dto/response"
	"tickethub/internal/handler/middleware"
	"tickethub/internal/usecase/commands"

	"tickethub/internal/gateway"

	"github.com/gin-gonic/gin"
)

type PurchaseHandler struct {
	purchaseUseCase commands.PurchaseUsecase
}

func NewPurchaseHandler(purchaseUseCase commands.PurchaseUsecase) *PurchaseHandler {
	return &PurchaseHandler{
		purchaseUseCase: purchaseUseCase,
	}
}

// @Summary Begin purchase
// @Description Reserve seats and register payment intent for an event
// @Tags purchases
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreatePurchaseRequest true "Purchase request"
// @Success 201 {object} resdto.PurchaseResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Failure 503 {object} map[string]string
// @Router /purchases [post]
func (h *PurchaseHandler) CreatePurchase(c *gin.Context) {
	buyerID, ok := middleware.GetBuyerID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	var req reqdto.CreatePurchaseRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	input := commands.PurchaseInput{
		BuyerID:   buyerID,
		EventID:   req.EventID,
		Reference: req.GetReference(),
		Attendees: req.ToAttendeeInputs(),
	}

	result, err := h.purchaseUseCase.BeginPurchase(c.Request.Context(), input)
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrEventNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Event not found",
			})
		case errors.Is(err, commands.ErrValidationFailed):
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error": "Purchase request failed validation",
			})
		case errors.Is(err, commands.ErrSoldOut):
			c.JSON(http.StatusConflict, gin.H{
				"error": "Not enough seats available",
			})
		case errors.Is(err, commands.ErrDuplicateRequest):
			c.JSON(http.StatusConflict, gin.H{
				"error": "Reference already used by another purchase",
			})
		case errors.Is(err, gateway.ErrGatewayUnavailable):
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"error": "Payment gateway unavailable, try again later",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusCreated, resdto.FromPurchaseResult(result))
}
