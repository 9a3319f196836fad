package service

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/avc-dev/bookmarks/internal/model"
)

const (
	MinRating = 1
	MaxRating = 5
)

// ValidateBookmark проверяет тело запроса на создание закладки за один проход.
// Возвращает разобранный rating либо первую найденную ошибку.
func ValidateBookmark(req model.CreateBookmarkRequest) (int, error) {
	if err := checkRequired(req); err != nil {
		return 0, err
	}

	if err := ValidateURL(req.URL); err != nil {
		return 0, err
	}

	return ParseRating(req.Rating.String())
}

// checkRequired проверяет наличие полей в порядке title, url, description, rating
func checkRequired(req model.CreateBookmarkRequest) error {
	fields := []struct {
		name  string
		value string
	}{
		{"title", req.Title},
		{"url", req.URL},
		{"description", req.Description},
		{"rating", req.Rating.String()},
	}

	// Пустая строка считается отсутствующим значением, строка из пробелов нет
	for _, f := range fields {
		// Нулевой rating считается отсутствующим
		if f.value == "" || (f.name == "rating" && f.value == "0") {
			return fmt.Errorf("%s: %w", f.name, ErrMissingField)
		}
	}

	return nil
}

// ValidateURL проверяет что строка является абсолютным URI со схемой и хостом
func ValidateURL(raw string) error {
	parsedURL, err := url.Parse(raw)
	if err != nil || parsedURL.Scheme == "" || parsedURL.Host == "" {
		return fmt.Errorf("%q: %w", raw, ErrInvalidURL)
	}
	return nil
}

// ParseRating разбирает rating как десятичное целое и проверяет диапазон
func ParseRating(raw string) (int, error) {
	rating, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return 0, fmt.Errorf("%q: %w", raw, ErrInvalidRating)
	}

	if rating < MinRating || rating > MaxRating {
		return 0, fmt.Errorf("%d: %w", rating, ErrInvalidRating)
	}

	return rating, nil
}
