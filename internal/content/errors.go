package content

import "errors"

var (
	ErrInvalidSlug   = errors.New("content: invalid slug")
	ErrDuplicateSlug = errors.New("content: duplicate slug")
	ErrReservedSlug  = errors.New("content: reserved slug")
	ErrEmptyField    = errors.New("content: empty field")
	ErrInvalidPost   = errors.New("content: invalid post")
)
