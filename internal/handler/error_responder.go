package handler

import (
	"fmt"
	"net/http"
	"runtime/debug"

	"go.uber.org/zap"
)

const msgServerError = "server error"

type opaqueError struct {
	Message string `json:"message"`
}

// opaqueErrorBody отдаётся в production и не раскрывает деталей
type opaqueErrorBody struct {
	Error opaqueError `json:"error"`
}

type errorDetail struct {
	Message string `json:"message"`
	Detail  string `json:"detail"`
	Stack   string `json:"stack,omitempty"`
}

// verboseErrorBody отдаётся вне production для отладки
type verboseErrorBody struct {
	Message string      `json:"message"`
	Error   errorDetail `json:"error"`
}

// ErrorResponder превращает необработанные ошибки в ответ 500.
// Форма тела зависит от режима, переданного в конструктор.
type ErrorResponder struct {
	production bool
	logger     *zap.Logger
}

// NewErrorResponder создает новый ErrorResponder
func NewErrorResponder(production bool, logger *zap.Logger) *ErrorResponder {
	return &ErrorResponder{
		production: production,
		logger:     logger,
	}
}

// Respond отвечает 500 на ошибку, не обработанную обработчиком
func (e *ErrorResponder) Respond(w http.ResponseWriter, req *http.Request, err error) {
	e.respond(w, req, err, nil)
}

// Recover возвращает миддлвар, который перехватывает панику в обработчиках
// и отвечает через Respond
func (e *ErrorResponder) Recover(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		defer func() {
			rec := recover()
			if rec == nil {
				return
			}
			// net/http использует ErrAbortHandler для обрыва соединения
			if rec == http.ErrAbortHandler {
				panic(rec)
			}

			e.respond(w, req, panicError(rec), debug.Stack())
		}()

		next.ServeHTTP(w, req)
	})
}

func (e *ErrorResponder) respond(w http.ResponseWriter, req *http.Request, err error, stack []byte) {
	fields := []zap.Field{
		zap.Error(err),
		zap.String("method", req.Method),
		zap.String("path", req.URL.Path),
	}
	if stack != nil {
		fields = append(fields, zap.ByteString("stack", stack))
	}
	e.logger.Error("Unhandled error", fields...)

	if e.production {
		writeJSON(w, e.logger, http.StatusInternalServerError, opaqueErrorBody{
			Error: opaqueError{Message: msgServerError},
		})
		return
	}

	writeJSON(w, e.logger, http.StatusInternalServerError, verboseErrorBody{
		Message: err.Error(),
		Error: errorDetail{
			Message: err.Error(),
			Detail:  fmt.Sprintf("%+v", err),
			Stack:   string(stack),
		},
	})
}

func panicError(rec any) error {
	if err, ok := rec.(error); ok {
		return fmt.Errorf("panic: %w", err)
	}
	return fmt.Errorf("panic: %v", rec)
}
