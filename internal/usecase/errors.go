package usecase

import "errors"

var (
	ErrInvalidData      = errors.New("invalid data")
	ErrBookmarkNotFound = errors.New("bookmark not found")
)
