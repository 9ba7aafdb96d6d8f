// Package views holds the embedded HTML templates for the dashboard.
package views

import "embed"

//go:embed *.html
var FS embed.FS
