// Package locales embeds the message catalogues served by the API and CLI.
package locales

import "embed"

// FS holds en.yaml and zh-TW.yaml at its root.
//
//go:embed *.yaml
var FS embed.FS
