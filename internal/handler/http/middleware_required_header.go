package http

import (
	"fmt"
	"net/http"

	"github.com/octopus-msa/service02/internal/logger"
)

// requireHeader rejects requests that do not carry the named header with
// 400 Bad Request before the route handler runs. An empty value counts as
// present.
func requireHeader(name string) func(next http.Handler) http.Handler {
	canonical := http.CanonicalHeaderKey(name)

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if _, ok := r.Header[canonical]; !ok {
				err := fmt.Errorf("%w: '%s'", ErrMissingRequestHeader, name)
				logger.FromRequest(r).Warn().Err(err).Str("uri", r.RequestURI).Send()
				writeError(w, r, statusFromError(err), err.Error())
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
