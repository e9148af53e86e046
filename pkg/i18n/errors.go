package i18n

import "errors"

var (
	ErrUnsupportedLocale = errors.New("i18n: unsupported locale")
	ErrInvalidFile       = errors.New("i18n: invalid dictionary file")
	ErrEmptyDictionary   = errors.New("i18n: empty dictionary")
)
