package libcat

import _ "embed"

// Version is the release version of libcat, read from the VERSION file.
//
//go:embed VERSION
var Version string
