package export

import "errors"

var (
	ErrUnexpectedStatus = errors.New("export: unexpected status")
	ErrNoDir            = errors.New("export: output directory is required")
)
