package handlers

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/daily-grace-api/internal/devotional"
	"github.com/daily-grace-api/internal/models"
	"github.com/daily-grace-api/internal/session"
)

// DevotionalHandler handles daily devotional content endpoints
type DevotionalHandler struct {
	service     *devotional.Service
	preferences *session.PreferenceStore
}

// NewDevotionalHandler creates a new devotional handler
func NewDevotionalHandler(service *devotional.Service, preferences *session.PreferenceStore) *DevotionalHandler {
	return &DevotionalHandler{
		service:     service,
		preferences: preferences,
	}
}

// Daily handles GET /devotional - generates today's content bundle using
// the session's saved preferences.
func (h *DevotionalHandler) Daily(c echo.Context) error {
	ctx := c.Request().Context()

	prefs := h.preferences.Load(ctx)
	result := h.service.Daily(ctx, prefs)

	now := time.Now()
	return c.JSON(http.StatusOK, models.DevotionalResponse{
		ContentRecord: result.Record,
		Source:        string(result.Source),
		Weekday:       now.Format("Monday"),
		Date:          now.Format("2006-01-02"),
	})
}

// RegisterRoutes registers devotional routes
func (h *DevotionalHandler) RegisterRoutes(g *echo.Group) {
	g.GET("/devotional", h.Daily)
}
