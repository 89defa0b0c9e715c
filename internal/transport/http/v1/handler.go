// Package v1 provides the HTTP handlers for the concierge.
package v1

import (
	"net/http"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/voyago/concierge/internal/service"
)

const sessionCookieName = "session_id"

// Handler handles HTTP requests.
type Handler struct {
	service   *service.Service
	staticDir string
}

// NewHandler creates a new handler.
func NewHandler(svc *service.Service, staticDir string) *Handler {
	return &Handler{
		service:   svc,
		staticDir: staticDir,
	}
}

// RegisterRoutes registers routes with the echo server.
func (h *Handler) RegisterRoutes(e *echo.Echo) {
	e.GET("/", h.Index)
	e.Static("/static", h.staticDir)
	e.POST("/chat", h.Chat)
	e.GET("/health", h.Health)
}

// Index serves the chat page and bootstraps the visitor's session.
func (h *Handler) Index(c echo.Context) error {
	sessionID := h.sessionID(c)
	if err := h.service.EnsureSession(c.Request().Context(), sessionID); err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.File(filepath.Join(h.staticDir, "index.html"))
}

// Health returns health status.
func (h *Handler) Health(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{
		"status":  "healthy",
		"version": "0.1.0",
	})
}

// sessionID returns the visitor's session ID, minting a new cookie when none
// is present.
func (h *Handler) sessionID(c echo.Context) string {
	if ck, err := c.Cookie(sessionCookieName); err == nil && ck.Value != "" {
		return ck.Value
	}
	id := uuid.New().String()
	c.SetCookie(&http.Cookie{
		Name:     sessionCookieName,
		Value:    id,
		Path:     "/",
		HttpOnly: true,
	})
	return id
}
