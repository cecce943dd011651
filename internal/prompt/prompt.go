// Package prompt assembles the instruction strings sent to the generative
// model: a fixed system instruction describing the required JSON shape, and
// a per-request prompt built from the current date and session preferences.
package prompt

import (
	"bytes"
	_ "embed"
	"strings"
	"text/template"
	"time"

	"github.com/daily-grace-api/internal/models"
)

//go:embed system.tmpl
var systemInstruction string

//go:embed generic.tmpl
var genericTemplate string

//go:embed personalized.tmpl
var personalizedTemplate string

var (
	genericTmpl      = template.Must(template.New("generic").Parse(genericTemplate))
	personalizedTmpl = template.Must(template.New("personalized").Parse(personalizedTemplate))
)

// Defaults substituted for unset preference fields.
const (
	defaultDenomination = "general"
	defaultBibleVersion = "a standard Bible version"
	defaultThemes       = "general spirituality"
)

// SystemInstruction returns the fixed system-level instruction describing
// the required response shape and content constraints.
func SystemInstruction() string {
	return systemInstruction
}

// promptData holds the variables available in the prompt templates.
type promptData struct {
	Weekday      string
	Date         string
	Denomination string
	BibleVersion string
	Themes       string
}

// Build renders the per-request prompt. Preferences with no fields set
// produce the generic prompt; otherwise the personalized prompt is used,
// with unset fields defaulting to generic wording. Free-text preference
// values are passed through verbatim.
func Build(now time.Time, prefs models.Preferences) string {
	data := promptData{
		Weekday:      now.Format("Monday"),
		Date:         now.Format("2006-01-02"),
		Denomination: defaultDenomination,
		BibleVersion: defaultBibleVersion,
		Themes:       defaultThemes,
	}

	if prefs.IsZero() {
		return render(genericTmpl, data)
	}

	if prefs.Denomination != "" {
		data.Denomination = prefs.Denomination
	}
	if prefs.BibleVersion != "" {
		data.BibleVersion = prefs.BibleVersion
	}
	if len(prefs.Themes) > 0 {
		data.Themes = strings.Join(prefs.Themes, ", ")
	}
	return render(personalizedTmpl, data)
}

func render(tmpl *template.Template, data promptData) string {
	var buf bytes.Buffer
	// The templates are parsed at init and reference only promptData
	// fields, so execution cannot fail.
	_ = tmpl.Execute(&buf, data)
	return strings.TrimSpace(buf.String())
}
