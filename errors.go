package website

import "errors"

var (
	ErrNilConfig       = errors.New("website: config is required")
	ErrNoUploader      = errors.New("website: no uploader configured")
	ErrScheduleWithout = errors.New("website: REBUILD_SCHEDULE needs S3 settings")
)
