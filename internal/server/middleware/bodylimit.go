// Ограничение размера тела запроса
package middleware

import "net/http"

// BodyLimit ограничивает тело запроса maxBytes байтами (server.max_body_bytes).
// Чтение сверх лимита обрывается, json.Decode в хендлере вернёт ошибку
// и запрос завершится как bad json. При maxBytes <= 0 лимита нет.
func BodyLimit(maxBytes int64) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if maxBytes > 0 && r.Body != nil {
				r.Body = http.MaxBytesReader(w, r.Body, maxBytes)
			}
			next.ServeHTTP(w, r)
		})
	}
}
