package model

import (
	"encoding/json"
	"errors"
	"fmt"
)

// ErrRatingNotNumber возвращается когда rating в JSON передан не числом
var ErrRatingNotNumber = errors.New("rating must be a JSON number")

// Bookmark представляет сохранённую закладку
type Bookmark struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	URL         string `json:"url"`
	Description string `json:"description"`
	Rating      int    `json:"rating"`
}

// CreateBookmarkRequest представляет тело запроса на создание закладки
type CreateBookmarkRequest struct {
	Title       string `json:"title"`
	URL         string `json:"url"`
	Description string `json:"description"`
	Rating      Rating `json:"rating"`
}

// Rating хранит числовой литерал из JSON как есть, чтобы валидатор
// мог отличить целое число от дробного
type Rating string

func (r Rating) String() string {
	return string(r)
}

// UnmarshalJSON принимает только JSON-число; строки, bool и объекты отклоняются.
// null оставляет значение пустым.
func (r *Rating) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		return nil
	}
	if len(data) == 0 || data[0] == '"' {
		return fmt.Errorf("%s: %w", data, ErrRatingNotNumber)
	}

	var number json.Number
	if err := json.Unmarshal(data, &number); err != nil {
		return fmt.Errorf("%s: %w", data, ErrRatingNotNumber)
	}

	*r = Rating(number)
	return nil
}
