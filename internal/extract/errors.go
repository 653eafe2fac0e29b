package extract

import "errors"

var (
	// ErrUnsupportedFormat indicates a mime type the adapter does not handle.
	ErrUnsupportedFormat = errors.New("unsupported format")

	// ErrCorruptDocument indicates the underlying decoder failed on the payload.
	ErrCorruptDocument = errors.New("corrupt document")
)
