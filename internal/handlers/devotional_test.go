package handlers_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/daily-grace-api/internal/models"
)

const generatedJSON = `{"daily_verse":"John 3:16","daily_devotional":"God loves","prayer_guide":"Thank you","religious_insight":"Grace"}`

func TestDevotional_Generated(t *testing.T) {
	env := newTestEnv(t, &stubGenerator{response: "```json\n" + generatedJSON + "\n```"})

	rec, _ := env.do("GET", "/api/v1/devotional", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp models.DevotionalResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))

	assert.Equal(t, "generated", resp.Source)
	assert.Equal(t, "John 3:16", resp.DailyVerse)
	assert.Equal(t, "God loves", resp.DailyDevotional)
	assert.Equal(t, "Thank you", resp.PrayerGuide)
	assert.Equal(t, "Grace", resp.ReligiousInsight)
	assert.Equal(t, time.Now().Format("2006-01-02"), resp.Date)
	assert.Equal(t, time.Now().Format("Monday"), resp.Weekday)
}

func TestDevotional_APIFailureServesFallback(t *testing.T) {
	env := newTestEnv(t, &stubGenerator{err: errors.New("auth failed")})

	rec, _ := env.do("GET", "/api/v1/devotional", "", nil)

	// Upstream failures never surface as HTTP errors; the page still gets
	// a full record.
	require.Equal(t, http.StatusOK, rec.Code)

	var resp models.DevotionalResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))

	assert.Equal(t, "fallback", resp.Source)
	assert.NotEmpty(t, resp.DailyVerse)
	assert.NotEmpty(t, resp.DailyDevotional)
	assert.NotEmpty(t, resp.PrayerGuide)
	assert.Contains(t, resp.ReligiousInsight, time.Now().Format("Monday"))
}

func TestDevotional_MalformedResponseServesFallback(t *testing.T) {
	env := newTestEnv(t, &stubGenerator{response: "Blessings to you!"})

	rec, _ := env.do("GET", "/api/v1/devotional", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp models.DevotionalResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Equal(t, "fallback", resp.Source)
}

func TestDevotional_OneGenerationCallPerRequest(t *testing.T) {
	gen := &stubGenerator{response: generatedJSON}
	env := newTestEnv(t, gen)

	env.do("GET", "/api/v1/devotional", "", nil)
	env.do("GET", "/api/v1/devotional", "", nil)

	assert.Equal(t, 2, gen.calls)
}

func TestHealth(t *testing.T) {
	env := newTestEnv(t, &stubGenerator{response: generatedJSON})

	rec, _ := env.do("GET", "/api/v1/health", "", nil)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"healthy"}`, rec.Body.String())
}
