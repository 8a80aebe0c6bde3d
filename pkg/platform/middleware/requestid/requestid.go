// Package requestid propagates or assigns the X-Request-ID header.
package requestid

import (
	"net/http"

	"github.com/google/uuid"

	"eutestdata/pkg/requestcontext"
)

// Header is echoed on every response.
const Header = "X-Request-ID"

const maxLen = 128

// Middleware reuses a caller-supplied request ID when it is short enough,
// otherwise it assigns a random UUID.
func Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get(Header)
		if id == "" || len(id) > maxLen {
			id = uuid.NewString()
		}
		w.Header().Set(Header, id)
		next.ServeHTTP(w, r.WithContext(requestcontext.WithRequestID(r.Context(), id)))
	})
}
