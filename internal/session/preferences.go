// Package session holds the session-scoped preference store. Preferences
// live only in the SCS session (in-memory store) and are discarded when the
// session expires; nothing is persisted across sessions or devices.
package session

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/alexedwards/scs/v2"

	"github.com/daily-grace-api/internal/models"
)

const preferencesKey = "preferences"

// NewManager creates an SCS session manager with the default in-memory
// store and the given lifetime.
func NewManager(lifetime time.Duration) *scs.SessionManager {
	sm := scs.New()
	sm.Lifetime = lifetime
	sm.Cookie.HttpOnly = true
	sm.Cookie.SameSite = http.SameSiteLaxMode
	return sm
}

// PreferenceStore reads and writes the session's saved Preferences.
type PreferenceStore struct {
	sessions *scs.SessionManager
}

// NewPreferenceStore creates a preference store bound to a session manager.
func NewPreferenceStore(sessions *scs.SessionManager) *PreferenceStore {
	return &PreferenceStore{sessions: sessions}
}

// Load returns the current session's preferences, or the zero value when
// none have been saved yet. The context must carry session data loaded by
// the session middleware.
func (s *PreferenceStore) Load(ctx context.Context) models.Preferences {
	data := s.sessions.GetBytes(ctx, preferencesKey)
	if len(data) == 0 {
		return models.Preferences{}
	}

	var prefs models.Preferences
	if err := json.Unmarshal(data, &prefs); err != nil {
		return models.Preferences{}
	}
	return prefs
}

// Save replaces the session's preferences with the given value. There are
// no merge semantics: the prior value is fully overwritten.
func (s *PreferenceStore) Save(ctx context.Context, prefs models.Preferences) error {
	data, err := json.Marshal(prefs)
	if err != nil {
		return err
	}
	s.sessions.Put(ctx, preferencesKey, data)
	return nil
}
