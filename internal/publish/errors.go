package publish

import "errors"

var (
	ErrNoDir      = errors.New("publish: export directory is required")
	ErrEmptyDir   = errors.New("publish: export directory has no files")
	ErrNoUploader = errors.New("publish: uploader is required")
)
