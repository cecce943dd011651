package devotional

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/daily-grace-api/internal/models"
)

// Source identifies where a devotional record came from.
type Source string

const (
	SourceGenerated Source = "generated"
	SourceFallback  Source = "fallback"
)

// FallbackReason classifies why the static fallback was served. Reasons are
// logged internally; the user-visible behavior is identical for all of them.
type FallbackReason string

const (
	ReasonNone         FallbackReason = ""
	ReasonAPIError     FallbackReason = "api_error"
	ReasonDecodeError  FallbackReason = "decode_error"
	ReasonMissingField FallbackReason = "missing_field"
)

// Result carries a fully-populated ContentRecord together with its origin,
// so callers can distinguish real content from default content.
type Result struct {
	Record models.ContentRecord
	Source Source
	Reason FallbackReason
}

// Parse normalizes a raw model response into a Result. It trims whitespace,
// strips an optional triple-backtick fence (with an optional json language
// tag), and decodes the remainder as a four-field record. Any decode error
// or missing field yields the static fallback; Parse never returns an error.
func Parse(raw string, now time.Time) Result {
	text := stripFences(strings.TrimSpace(raw))

	var record models.ContentRecord
	if err := json.Unmarshal([]byte(text), &record); err != nil {
		return Fallback(now, ReasonDecodeError)
	}

	if record.DailyVerse == "" || record.DailyDevotional == "" ||
		record.PrayerGuide == "" || record.ReligiousInsight == "" {
		return Fallback(now, ReasonMissingField)
	}

	return Result{Record: record, Source: SourceGenerated}
}

// Fallback returns the static record with the current weekday and date
// embedded in the insight field.
func Fallback(now time.Time, reason FallbackReason) Result {
	return Result{
		Record: models.ContentRecord{
			DailyVerse:      "Proverbs 3:5-6 - Trust in the Lord with all your heart and lean not on your own understanding.",
			DailyDevotional: "In times of uncertainty, remember that faith is your anchor. Reflect on God's unwavering love and guidance.",
			PrayerGuide:     "Heavenly Father, guide my steps and fill my heart with your peace today.",
			ReligiousInsight: fmt.Sprintf(
				"Today is %s, %s. We are reminded of the significance of steadfast faith in navigating life's challenges.",
				now.Format("Monday"), now.Format("2006-01-02"),
			),
		},
		Source: SourceFallback,
		Reason: reason,
	}
}

func stripFences(text string) string {
	if strings.HasPrefix(text, "```json") {
		text = strings.TrimPrefix(text, "```json")
	} else if strings.HasPrefix(text, "```") {
		text = strings.TrimPrefix(text, "```")
	}
	text = strings.TrimSuffix(strings.TrimSpace(text), "```")
	return strings.TrimSpace(text)
}
