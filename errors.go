package adblockgo

import (
	"github.com/adblockgo/adblockgo/dataformat"
)

// Re-exported format errors so callers deciding between "fall back to
// re-parsing rule text" and "report corruption" only import this package.
var (
	// ErrUnrecognizedFormat reports input that is not a serialized engine
	// blob (bad magic or unsupported version byte).
	ErrUnrecognizedFormat = dataformat.ErrUnrecognizedFormat

	// ErrUnsupportedVersion reports a blob written by a schema revision
	// this reader does not understand.
	ErrUnsupportedVersion = dataformat.ErrUnsupportedVersion
)
