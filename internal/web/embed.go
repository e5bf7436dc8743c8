package web

import "embed"

// templatesFS holds the server-rendered page.
//
//go:embed templates/*.html
var templatesFS embed.FS
