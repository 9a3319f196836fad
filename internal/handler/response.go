package handler

import (
	"encoding/json"
	"net/http"

	"go.uber.org/zap"
)

const (
	msgInvalidData      = "Invalid data"
	msgBookmarkNotFound = "Bookmark not found"
	msgNotFound         = "Not found"
)

// writeJSON пишет ответ в формате JSON с указанным статусом
func writeJSON(w http.ResponseWriter, logger *zap.Logger, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Error("failed to encode response", zap.Error(err))
	}
}

// writeText пишет текстовый ответ без завершающего перевода строки
func writeText(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(status)
	w.Write([]byte(message))
}
