// Package web embeds the single-page frontend served at the site root.
package web

import "embed"

//go:embed templates static
var FS embed.FS
