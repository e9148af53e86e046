package redis

import "errors"

var (
	ErrNoURL       = errors.New("redis: url is required")
	ErrInvalidURL  = errors.New("redis: invalid url")
	ErrUnreachable = errors.New("redis: server unreachable")
	ErrNotReady    = errors.New("redis: not ready")
)
