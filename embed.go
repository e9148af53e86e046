package website

import "embed"

// Assets holds the files served under /static/.
//
//go:embed static
var Assets embed.FS

// AssetsDir is the directory inside Assets that maps to /static/.
const AssetsDir = "static"
