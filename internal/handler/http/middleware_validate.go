package http

import (
	"bytes"
	"io"
	"net/http"
	"strings"

	"github.com/MKhiriev/go-secret-vault/internal/logger"
	"github.com/MKhiriev/go-secret-vault/internal/service"
	"github.com/MKhiriev/go-secret-vault/internal/validators"
)

// validate is an HTTP middleware factory that checks the request body against
// the given validator before the handler runs.
//
// The body is read fully and then restored on the request, so downstream
// handlers can decode it again. Outcomes:
//   - unreadable or non-JSON body → 400 "Invalid JSON was passed";
//   - one or more shape violations → 422 with ALL messages joined by ", ";
//   - valid body → pass through.
//
// Validation runs before the token check by design: a client with no token
// still learns everything wrong with its payload in one round trip.
func (h *Handler) validate(validator validators.Validator) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			log := logger.FromRequest(r)

			body, err := io.ReadAll(r.Body)
			if err != nil {
				log.Debug().Err(err).Msg("failed to read request body")
				writeError(w, r, service.ErrInvalidRequestBody)
				return
			}
			r.Body = io.NopCloser(bytes.NewReader(body))

			violations, err := validator.Validate(body)
			if err != nil {
				log.Debug().Err(err).Msg("Invalid JSON was passed")
				writeError(w, r, service.ErrInvalidRequestBody)
				return
			}

			if len(violations) > 0 {
				writeError(w, r, service.NewError(service.KindUnprocessableEntity, strings.Join(violations, ", ")))
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
