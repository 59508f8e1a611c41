package http

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-secret-vault/internal/validators"
)

func executeValidate(h *Handler, validator validators.Validator, body string, next http.Handler) *httptest.ResponseRecorder {
	middleware := h.validate(validator)(next)
	req := httptest.NewRequest(http.MethodPost, "/test", strings.NewReader(body))
	req = injectNopLogger(req)
	rr := httptest.NewRecorder()
	middleware.ServeHTTP(rr, req)
	return rr
}

func TestValidate_Middleware_TableTest(t *testing.T) {
	h := newTestHandler(nil)
	v := validators.NewValidators()

	tests := []struct {
		name           string
		validator      validators.Validator
		body           string
		expectedStatus int
		expectedBody   string
		nextCalled     bool
	}{
		{
			name:           "malformed JSON → 400",
			validator:      v.Credential,
			body:           `{"title": `,
			expectedStatus: http.StatusBadRequest,
			expectedBody:   "Invalid JSON was passed",
		},
		{
			name:           "missing fields → 422 with every violation",
			validator:      v.Credential,
			body:           `{"title": "github"}`,
			expectedStatus: http.StatusUnprocessableEntity,
			expectedBody:   "Url is required, Username is required, Password is required",
		},
		{
			name:           "blank field → 422",
			validator:      v.Note,
			body:           `{"title": "   ", "text": "hello"}`,
			expectedStatus: http.StatusUnprocessableEntity,
			expectedBody:   "Title can not be empty",
		},
		{
			name:           "valid body → next called",
			validator:      v.Note,
			body:           `{"title": "groceries", "text": "milk, eggs"}`,
			expectedStatus: http.StatusOK,
			nextCalled:     true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			nextCalled := false
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				nextCalled = true
				w.WriteHeader(http.StatusOK)
			})

			rr := executeValidate(h, tt.validator, tt.body, next)

			assert.Equal(t, tt.expectedStatus, rr.Code)
			assert.Equal(t, tt.nextCalled, nextCalled)
			if tt.expectedBody != "" {
				assert.Contains(t, rr.Body.String(), tt.expectedBody)
			}
		})
	}
}

// ---- Тело запроса восстанавливается для следующего обработчика ----

func TestValidate_BodyIsRestoredForNextHandler(t *testing.T) {
	h := newTestHandler(nil)
	v := validators.NewValidators()

	const body = `{"title": "groceries", "text": "milk, eggs"}`

	var seenBody string
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		raw, err := io.ReadAll(r.Body)
		require.NoError(t, err)
		seenBody = string(raw)
		w.WriteHeader(http.StatusOK)
	})

	rr := executeValidate(h, v.Note, body, next)

	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, body, seenBody)
}
