package handler

import "net/http"

// ListBookmarks обрабатывает GET /bookmarks
func (h *Handler) ListBookmarks(w http.ResponseWriter, req *http.Request) {
	writeJSON(w, h.logger, http.StatusOK, h.usecase.ListBookmarks())
}
