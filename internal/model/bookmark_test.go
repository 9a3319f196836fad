package model

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRating_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name     string
		body     string
		expected Rating
	}{
		{name: "Integer", body: `{"rating":4}`, expected: "4"},
		{name: "Fraction kept as literal", body: `{"rating":4.5}`, expected: "4.5"},
		{name: "Negative", body: `{"rating":-1}`, expected: "-1"},
		{name: "Null", body: `{"rating":null}`, expected: ""},
		{name: "Absent", body: `{}`, expected: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var req CreateBookmarkRequest

			err := json.Unmarshal([]byte(tt.body), &req)

			require.NoError(t, err)
			assert.Equal(t, tt.expected, req.Rating)
		})
	}
}

func TestRating_UnmarshalJSON_NotNumber(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{name: "Numeric string", body: `{"rating":"4"}`},
		{name: "Word", body: `{"rating":"four"}`},
		{name: "Empty string", body: `{"rating":""}`},
		{name: "Boolean", body: `{"rating":true}`},
		{name: "Array", body: `{"rating":[4]}`},
		{name: "Object", body: `{"rating":{"value":4}}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var req CreateBookmarkRequest

			err := json.Unmarshal([]byte(tt.body), &req)

			require.ErrorIs(t, err, ErrRatingNotNumber)
		})
	}
}
