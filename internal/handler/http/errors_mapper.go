package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-secret-vault/internal/logger"
	"github.com/MKhiriev/go-secret-vault/internal/service"
	"github.com/MKhiriev/go-secret-vault/internal/utils"
	"github.com/MKhiriev/go-secret-vault/models"
)

var kindStatusMap = map[service.ErrorKind]int{
	service.KindBadRequest:          http.StatusBadRequest,
	service.KindUnauthorized:        http.StatusUnauthorized,
	service.KindForbidden:           http.StatusForbidden,
	service.KindNotFound:            http.StatusNotFound,
	service.KindConflict:            http.StatusConflict,
	service.KindUnprocessableEntity: http.StatusUnprocessableEntity,
}

// writeError translates a service failure into an HTTP response.
//
// Kind-tagged errors map to their status with the client-facing message as
// the body. Untagged errors become 500 with the raw error message — blunt,
// but this is an internal service and the messages speed up debugging.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	log := logger.FromRequest(r)

	var serviceErr *service.Error
	if errors.As(err, &serviceErr) {
		status, ok := kindStatusMap[serviceErr.Kind]
		if !ok {
			status = http.StatusInternalServerError
		}
		log.Debug().Err(err).Int("status", status).Msg("request failed")
		utils.WriteJSON(w, models.MessageResponse{Message: serviceErr.Message}, status)
		return
	}

	log.Err(err).Msg("request failed with unclassified error")
	utils.WriteJSON(w, models.MessageResponse{Message: err.Error()}, http.StatusInternalServerError)
}
