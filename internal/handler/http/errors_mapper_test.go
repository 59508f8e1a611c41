package http

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/MKhiriev/go-secret-vault/internal/service"
)

func TestWriteError_TableTest(t *testing.T) {
	tests := []struct {
		name           string
		err            error
		expectedStatus int
		expectedBody   string
	}{
		{
			name:           "conflict kind → 409",
			err:            service.ErrEmailAlreadyInUse,
			expectedStatus: http.StatusConflict,
			expectedBody:   "This email is already in use. Please choose a new email for registration",
		},
		{
			name:           "unauthorized kind → 401",
			err:            service.ErrIncorrectCredentials,
			expectedStatus: http.StatusUnauthorized,
			expectedBody:   "Incorrect email and/or password",
		},
		{
			name:           "forbidden kind → 403",
			err:            service.ErrPermissionDenied,
			expectedStatus: http.StatusForbidden,
			expectedBody:   "You don't have permission to perform this action",
		},
		{
			name:           "not found kind → 404",
			err:            service.NewError(service.KindNotFound, "Note doesn't exist"),
			expectedStatus: http.StatusNotFound,
			expectedBody:   "Note doesn't exist",
		},
		{
			name:           "bad request kind → 400",
			err:            service.ErrInvalidRecordID,
			expectedStatus: http.StatusBadRequest,
			expectedBody:   "Invalid id was passed",
		},
		{
			name:           "unprocessable entity kind → 422",
			err:            service.NewError(service.KindUnprocessableEntity, "Title is required"),
			expectedStatus: http.StatusUnprocessableEntity,
			expectedBody:   "Title is required",
		},
		{
			name:           "untagged error → 500 with raw message",
			err:            errors.New("pq: connection refused"),
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   "pq: connection refused",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/test", nil)
			req = injectNopLogger(req)
			rr := httptest.NewRecorder()

			writeError(rr, req, tt.err)

			assert.Equal(t, tt.expectedStatus, rr.Code)
			assert.Contains(t, rr.Body.String(), tt.expectedBody)
			assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))
		})
	}
}
