package handler

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/url"

	"github.com/avc-dev/bookmarks/internal/model"
	"github.com/avc-dev/bookmarks/internal/usecase"
	"go.uber.org/zap"
)

// maxBodySize ограничивает размер тела запроса на создание
const maxBodySize = 1 << 20

var errTrailingData = errors.New("unexpected data after JSON object")

// CreateBookmark обрабатывает POST /bookmarks
func (h *Handler) CreateBookmark(w http.ResponseWriter, req *http.Request) {
	request, err := decodeCreateRequest(http.MaxBytesReader(w, req.Body, maxBodySize))
	if err != nil {
		h.logger.Error("failed to decode JSON request",
			zap.Error(err),
			zap.String("remote_addr", req.RemoteAddr),
		)
		writeText(w, http.StatusBadRequest, msgInvalidData)
		return
	}

	bookmark, err := h.usecase.CreateBookmark(request)
	if err != nil {
		if errors.Is(err, usecase.ErrInvalidData) {
			writeText(w, http.StatusBadRequest, msgInvalidData)
			return
		}

		h.responder.Respond(w, req, err)
		return
	}

	w.Header().Set("Location", "/bookmarks/"+url.PathEscape(bookmark.ID))
	writeJSON(w, h.logger, http.StatusCreated, bookmark)
}

// decodeCreateRequest читает из тела ровно один JSON объект
func decodeCreateRequest(body io.Reader) (model.CreateBookmarkRequest, error) {
	var request model.CreateBookmarkRequest

	decoder := json.NewDecoder(body)
	if err := decoder.Decode(&request); err != nil {
		return model.CreateBookmarkRequest{}, err
	}

	if err := decoder.Decode(&struct{}{}); !errors.Is(err, io.EOF) {
		return model.CreateBookmarkRequest{}, errTrailingData
	}

	return request, nil
}
