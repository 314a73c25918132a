package cipherkit

import (
	_ "embed"
)

// Version is the release version of cipherkit.
//
//go:embed VERSION
var Version string
