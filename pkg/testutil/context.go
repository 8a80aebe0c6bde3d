package testutil

import (
	"net/http"
	"time"

	"eutestdata/pkg/requestcontext"
)

// WithRequest stamps req with the values the middleware chain would set.
func WithRequest(req *http.Request, requestID string, now time.Time) *http.Request {
	ctx := requestcontext.WithRequestID(req.Context(), requestID)
	ctx = requestcontext.WithTime(ctx, now)
	return req.WithContext(ctx)
}
