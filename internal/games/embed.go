// Package games provides the embedded game catalog the launcher offers and
// utilities for loading and searching it.
package games

import "embed"

// catalogFS embeds the JSON catalog from this directory at build time.
//
//go:embed *.json
var catalogFS embed.FS
