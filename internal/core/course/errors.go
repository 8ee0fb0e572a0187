package course

import "errors"

var (
	ErrCourseNotFound   = errors.New("course: not found")
	ErrInvalidID        = errors.New("course: invalid id")
	ErrInvalidTitle     = errors.New("course: invalid title")
	ErrInvalidLevel     = errors.New("course: level must be between 1 and 5")
	ErrInvalidDuration  = errors.New("course: duration must be at least one week")
	ErrInvalidPageSize  = errors.New("course: invalid page size")
	ErrInvalidPageToken = errors.New("course: invalid page token")
)
