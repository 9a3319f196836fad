package service

import "errors"

var (
	// ErrMissingField возвращается когда обязательное поле пустое или отсутствует
	ErrMissingField = errors.New("field is required")
	// ErrInvalidURL возвращается когда url не является абсолютным URI
	ErrInvalidURL = errors.New("invalid URL")
	// ErrInvalidRating возвращается когда rating не целое число из диапазона [1, 5]
	ErrInvalidRating = errors.New("rating must be an integer between 1 and 5")

	// ErrMaxRetriesExceeded возвращается когда не удалось сгенерировать уникальный id
	// после максимального количества попыток
	ErrMaxRetriesExceeded = errors.New("max retries exceeded for id generation")
)
