package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/daily-grace-api/internal/models"
	"github.com/daily-grace-api/internal/session"
)

// PreferencesHandler handles preference endpoints
type PreferencesHandler struct {
	preferences *session.PreferenceStore
}

// NewPreferencesHandler creates a new preferences handler
func NewPreferencesHandler(preferences *session.PreferenceStore) *PreferencesHandler {
	return &PreferencesHandler{
		preferences: preferences,
	}
}

// Get handles GET /preferences - returns the session's saved preferences,
// all-empty when nothing has been saved yet.
func (h *PreferencesHandler) Get(c echo.Context) error {
	prefs := h.preferences.Load(c.Request().Context())
	return c.JSON(http.StatusOK, prefs)
}

// Save handles PUT /preferences - fully replaces the session's preferences.
// Free-text denomination and bible version values are accepted as-is.
func (h *PreferencesHandler) Save(c echo.Context) error {
	var prefs models.Preferences
	if err := c.Bind(&prefs); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request body")
	}

	if err := h.preferences.Save(c.Request().Context(), prefs); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to save preferences")
	}

	return c.JSON(http.StatusOK, prefs)
}

// Options handles GET /preferences/options - the fixed choice lists for the
// preference controls.
func (h *PreferencesHandler) Options(c echo.Context) error {
	return c.JSON(http.StatusOK, models.PreferenceOptionsResponse{
		Denominations: models.Denominations,
		BibleVersions: models.BibleVersions,
		Themes:        models.Themes,
	})
}

// RegisterRoutes registers preference routes
func (h *PreferencesHandler) RegisterRoutes(g *echo.Group) {
	g.GET("/preferences", h.Get)
	g.PUT("/preferences", h.Save)
	g.GET("/preferences/options", h.Options)
}
