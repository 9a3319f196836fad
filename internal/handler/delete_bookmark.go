package handler

import (
	"errors"
	"net/http"

	"github.com/avc-dev/bookmarks/internal/usecase"
	"github.com/go-chi/chi/v5"
)

// DeleteBookmark обрабатывает DELETE /bookmarks/{id}
func (h *Handler) DeleteBookmark(w http.ResponseWriter, req *http.Request) {
	id := chi.URLParam(req, "id")

	err := h.usecase.DeleteBookmark(id)
	if err != nil {
		if errors.Is(err, usecase.ErrBookmarkNotFound) {
			writeText(w, http.StatusNotFound, msgNotFound)
			return
		}

		h.responder.Respond(w, req, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
