// Package middleware содержит HTTP middleware сервиса
package middleware

import (
	"crypto/subtle"
	"net/http"

	"github.com/kalicatt/boat-booking-saas-sub003/internal/api/handlers"
)

// AdminKeyHeader заголовок с ключом админского доступа
const AdminKeyHeader = "X-Admin-Key"

// AdminAuth проверяет ключ админского доступа на защищённых маршрутах
func AdminAuth(apiKey string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			key := r.Header.Get(AdminKeyHeader)
			if subtle.ConstantTimeCompare([]byte(key), []byte(apiKey)) != 1 {
				handlers.RespondError(w, http.StatusUnauthorized, "unauthorized")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
