package domain

import "errors"

var (
	ErrRecordNotFound       = errors.New("record not found")
	ErrEditConflict         = errors.New("edit conflict")
	ErrDuplicateUsername    = errors.New("username is already taken")
	ErrDuplicateEmail       = errors.New("email is already registered")
	ErrParentRatingMismatch = errors.New("parent rating belongs to a different movie")
)
