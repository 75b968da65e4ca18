package middleware

import (
	"net/http"

	"sala-cine/pkg/utils"

	"github.com/google/uuid"
)

// RequestID middleware assigns a uuid to every request and echoes it
// back in the X-Request-ID header
func RequestID() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			requestID := r.Header.Get("X-Request-ID")
			if requestID == "" {
				requestID = uuid.NewString()
			}

			ctx := utils.SetRequestIDContext(r.Context(), requestID)
			w.Header().Set("X-Request-ID", requestID)

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
