package export

import "errors"

// ErrUnsupportedFormat is returned for a download format the formatter set
// does not cover.
var ErrUnsupportedFormat = errors.New("unsupported export format")
