// Package web holds the embedded static assets for the Daily Grace page.
package web

import "embed"

// StaticFS contains the single-page UI and its assets.
//
//go:embed static
var StaticFS embed.FS
