package handlers_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/daily-grace-api/internal/devotional"
	"github.com/daily-grace-api/internal/handlers"
	"github.com/daily-grace-api/internal/logger"
	"github.com/daily-grace-api/internal/middleware"
	"github.com/daily-grace-api/internal/session"
)

// stubGenerator returns a canned response or error for every call and
// remembers the last prompt it saw.
type stubGenerator struct {
	response   string
	err        error
	calls      int
	lastPrompt string
}

func (s *stubGenerator) Generate(ctx context.Context, prompt string) (string, error) {
	s.calls++
	s.lastPrompt = prompt
	if s.err != nil {
		return "", s.err
	}
	return s.response, nil
}

type testEnv struct {
	server    *echo.Echo
	generator *stubGenerator
}

// newTestEnv wires the full handler stack the way cmd/api does, with the
// Gemini client replaced by a stub.
func newTestEnv(t *testing.T, gen *stubGenerator) *testEnv {
	t.Helper()

	e := echo.New()
	sessions := session.NewManager(time.Hour)
	e.Use(middleware.SessionMiddleware(sessions))

	preferences := session.NewPreferenceStore(sessions)
	svc := devotional.NewService(gen, logger.NewNopLogger())

	api := e.Group("/api/v1")
	handlers.NewHealthHandler().RegisterRoutes(api)
	handlers.NewDevotionalHandler(svc, preferences).RegisterRoutes(api)
	handlers.NewPreferencesHandler(preferences).RegisterRoutes(api)

	return &testEnv{server: e, generator: gen}
}

// do issues a request through the full middleware chain. A non-nil cookie is
// attached so tests can act within one session.
func (env *testEnv) do(method, path, body string, cookie *http.Cookie) (*httptest.ResponseRecorder, *http.Cookie) {
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	if cookie != nil {
		req.AddCookie(cookie)
	}

	rec := httptest.NewRecorder()
	env.server.ServeHTTP(rec, req)

	for _, c := range rec.Result().Cookies() {
		if c.Name == "session" {
			return rec, c
		}
	}
	return rec, cookie
}
