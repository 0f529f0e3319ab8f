package api

import (
	"errors"
	"io"
	"net/http"

	"tickethub/internal/gateway"
	"tickethub/internal/usecase/commands"

	"github.com/gin-gonic/gin"
)

// maxCallbackBody caps provider callback payloads; legitimate ones are small.
const maxCallbackBody = 64 << 10

type CallbackHandler struct {
	callbackUseCase commands.CallbackUsecase
}

func NewCallbackHandler(callbackUseCase commands.CallbackUsecase) *CallbackHandler {
	return &CallbackHandler{
		callbackUseCase: callbackUseCase,
	}
}

// @Summary Payment callback
// @Description Receive a signed payment confirmation from the gateway
// @Tags payments
// @Accept json
// @Produce json
// @Success 200 {object} map[string]string
// @Failure 400 {object} map[string]string
// @Router /payments/callback [post]
func (h *CallbackHandler) HandleCallback(c *gin.Context) {
	raw, err := io.ReadAll(io.LimitReader(c.Request.Body, maxCallbackBody))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Could not read callback body",
		})
		return
	}

	if err := h.callbackUseCase.HandleCallback(c.Request.Context(), raw); err != nil {
		if errors.Is(err, gateway.ErrInvalidCallback) {
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Invalid callback",
			})
			return
		}
		// Internal failures get a 5xx so the provider redelivers; every apply
		// path is idempotent, so redelivery is safe.
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
