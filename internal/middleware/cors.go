package middleware

import (
	"net/http"
	"strings"
)

var corsAllowedMethods = strings.Join([]string{
	http.MethodGet,
	http.MethodHead,
	http.MethodPut,
	http.MethodPatch,
	http.MethodPost,
	http.MethodDelete,
}, ",")

// CORS разрешает запросы с любого origin.
// Preflight-запросы завершаются здесь с 204, до проверки токена.
func CORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")

		if r.Method != http.MethodOptions || r.Header.Get("Access-Control-Request-Method") == "" {
			next.ServeHTTP(w, r)
			return
		}

		w.Header().Set("Access-Control-Allow-Methods", corsAllowedMethods)
		if headers := r.Header.Get("Access-Control-Request-Headers"); headers != "" {
			w.Header().Set("Access-Control-Allow-Headers", headers)
			w.Header().Add("Vary", "Access-Control-Request-Headers")
		}
		w.Header().Set("Content-Length", "0")
		w.WriteHeader(http.StatusNoContent)
	})
}
