package locale

import "errors"

var (
	ErrEmpty       = errors.New("locale: empty locale")
	ErrUnsupported = errors.New("locale: unsupported locale")
	ErrMissing     = errors.New("locale: missing value for locale")
)
