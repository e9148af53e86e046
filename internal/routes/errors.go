package routes

import "errors"

var (
	ErrSlugConflict  = errors.New("routes: slug conflict")
	ErrDuplicatePath = errors.New("routes: duplicate path")
)
