package models

// ContentRecord is the four-field devotional content unit generated for a
// single page load. It is transient and never persisted.
type ContentRecord struct {
	DailyVerse       string `json:"daily_verse"`
	DailyDevotional  string `json:"daily_devotional"`
	PrayerGuide      string `json:"prayer_guide"`
	ReligiousInsight string `json:"religious_insight"`
}

// Preferences holds the user's saved personalization choices for the
// current session. A save fully replaces the prior value.
type Preferences struct {
	Denomination string   `json:"denomination"`
	BibleVersion string   `json:"bible_version"`
	Themes       []string `json:"themes"`
}

// IsZero reports whether no preference field has been set.
func (p Preferences) IsZero() bool {
	return p.Denomination == "" && p.BibleVersion == "" && len(p.Themes) == 0
}

// DevotionalResponse is the response for the daily devotional endpoint.
type DevotionalResponse struct {
	ContentRecord
	Source  string `json:"source"`
	Weekday string `json:"weekday"`
	Date    string `json:"date"`
}

// PreferenceOptionsResponse lists the fixed choices offered by the UI.
// "Other" free text is accepted for denomination and bible version.
type PreferenceOptionsResponse struct {
	Denominations []string `json:"denominations"`
	BibleVersions []string `json:"bible_versions"`
	Themes        []string `json:"themes"`
}

// Denominations is the fixed denomination list offered by the UI.
var Denominations = []string{
	"Catholic", "Baptist", "Methodist", "Lutheran",
	"Presbyterian", "Pentecostal", "Non-denominational",
	"Orthodox", "Anglican",
}

// BibleVersions is the fixed Bible translation list offered by the UI.
var BibleVersions = []string{
	"New International Version (NIV)",
	"King James Version (KJV)",
	"English Standard Version (ESV)",
	"New Living Translation (NLT)",
	"New American Standard Bible (NASB)",
	"The Message (MSG)",
}

// Themes is the fixed spiritual theme list offered by the UI.
var Themes = []string{
	"Strength", "Gratitude", "Forgiveness", "Love", "Hope",
	"Peace", "Courage", "Wisdom", "Joy", "Patience",
	"Humility", "Compassion", "Faith", "Mindfulness",
	"Purpose", "Healing", "Unity", "Growth",
	"Generosity", "Resilience",
}
