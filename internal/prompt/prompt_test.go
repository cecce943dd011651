package prompt

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/daily-grace-api/internal/models"
)

var testNow = time.Date(2026, time.August, 29, 9, 0, 0, 0, time.UTC) // a Saturday

func TestBuild_EmptyPreferences(t *testing.T) {
	got := Build(testNow, models.Preferences{})

	assert.Contains(t, got, "general Christian audience")
	assert.Contains(t, got, "Saturday")
	assert.Contains(t, got, "2026-08-29")
}

func TestBuild_FullPreferences(t *testing.T) {
	prefs := models.Preferences{
		Denomination: "Baptist",
		BibleVersion: "King James Version (KJV)",
		Themes:       []string{"Strength", "Hope", "Gratitude"},
	}

	got := Build(testNow, prefs)

	assert.Contains(t, got, "a Baptist Christian")
	assert.Contains(t, got, "King James Version (KJV)")
	assert.Contains(t, got, "Strength, Hope, Gratitude")
	assert.Contains(t, got, "Saturday")
	assert.Contains(t, got, "2026-08-29")
}

func TestBuild_PartialPreferencesDefaultsUnsetFields(t *testing.T) {
	got := Build(testNow, models.Preferences{Denomination: "Orthodox"})

	assert.Contains(t, got, "a Orthodox Christian")
	assert.Contains(t, got, "a standard Bible version")
	assert.Contains(t, got, "general spirituality")
}

func TestBuild_FreeTextPassedThroughVerbatim(t *testing.T) {
	prefs := models.Preferences{Denomination: "Coptic Orthodox (Alexandria)"}

	got := Build(testNow, prefs)

	assert.Contains(t, got, "Coptic Orthodox (Alexandria)")
}

func TestBuild_WeekdayTracksDate(t *testing.T) {
	sunday := time.Date(2026, time.August, 30, 9, 0, 0, 0, time.UTC)

	got := Build(sunday, models.Preferences{})

	assert.Contains(t, got, "Sunday")
	assert.NotContains(t, got, "Saturday")
}

func TestSystemInstruction_DescribesResponseShape(t *testing.T) {
	sys := SystemInstruction()

	for _, key := range []string{"daily_verse", "daily_devotional", "prayer_guide", "religious_insight"} {
		assert.Contains(t, sys, key)
	}
	assert.True(t, strings.Contains(sys, "valid JSON object"))
}
