// Package templates embeds the built-in trip template documents. A template
// is a complete document in the persisted JSON shape; applying one replaces
// the current document wholesale (after the usual migration pass).
package templates

import "embed"

// FS holds all *.json template files embedded at compile time.
//
//go:embed *.json
var FS embed.FS
