// Package dictionaries embeds the site's per-locale message files.
package dictionaries

import "embed"

// FS holds one "<locale>.yaml" file per supported locale at its root.
//
//go:embed *.yaml
var FS embed.FS
