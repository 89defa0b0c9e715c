package v1

import (
	"log"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/voyago/concierge/internal/domain"
)

// Chat handles one chat turn.
// POST /chat
func (h *Handler) Chat(c echo.Context) error {
	var req domain.ChatRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid request body"})
	}
	if req.Message == "" {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "message is required"})
	}

	sessionID := h.sessionID(c)

	reply, err := h.service.ProcessTurn(c.Request().Context(), sessionID, req.Message)
	if err != nil {
		log.Printf("ERROR: chat turn for session %s: %v", sessionID, err)
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}

	return c.JSON(http.StatusOK, domain.ChatResponse{Response: reply})
}
