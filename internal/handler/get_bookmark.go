package handler

import (
	"errors"
	"net/http"

	"github.com/avc-dev/bookmarks/internal/usecase"
	"github.com/go-chi/chi/v5"
)

// GetBookmark обрабатывает GET /bookmarks/{id}
func (h *Handler) GetBookmark(w http.ResponseWriter, req *http.Request) {
	id := chi.URLParam(req, "id")

	bookmark, err := h.usecase.GetBookmark(id)
	if err != nil {
		if errors.Is(err, usecase.ErrBookmarkNotFound) {
			writeText(w, http.StatusNotFound, msgBookmarkNotFound)
			return
		}

		h.responder.Respond(w, req, err)
		return
	}

	writeJSON(w, h.logger, http.StatusOK, bookmark)
}
