package middleware

import "net/http"

// MaxBodySize caps request bodies at maxBytes. Every payload this API accepts
// is a small JSON object, so the cap can be tight.
func MaxBodySize(maxBytes int64) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			r.Body = http.MaxBytesReader(w, r.Body, maxBytes)
			next.ServeHTTP(w, r)
		})
	}
}
