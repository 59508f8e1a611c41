// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/go-secret-vault/internal/logger"
	"github.com/MKhiriev/go-secret-vault/internal/service"
	"github.com/MKhiriev/go-secret-vault/internal/utils"
	"github.com/MKhiriev/go-secret-vault/models"
)

// resourceHandler serves the five uniform endpoints of one vault record kind.
// The HTTP surface is identical for credentials, cards, notes and wifi
// networks; only the payload type, the display name and the backing service
// differ, so one generic handler covers all four mounts.
type resourceHandler[T any] struct {
	// name is the capitalized display name used in response messages,
	// e.g. "Credential created successfully".
	name    string
	service service.ResourceService[T]
}

func newResourceHandler[T any](name string, svc service.ResourceService[T]) *resourceHandler[T] {
	return &resourceHandler[T]{name: name, service: svc}
}

func (rh *resourceHandler[T]) create(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		log.Error().Msg("user id is absent from request context")
		writeError(w, r, service.ErrTokenNotSent)
		return
	}

	var record T
	if err := json.NewDecoder(r.Body).Decode(&record); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		writeError(w, r, service.ErrInvalidRequestBody)
		return
	}

	if err := rh.service.Create(ctx, userID, record); err != nil {
		log.Err(err).Int64("user_id", userID).Msg("record creation failed")
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.MessageResponse{Message: fmt.Sprintf("%s created successfully", rh.name)}, http.StatusCreated)
}

func (rh *resourceHandler[T]) list(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		log.Error().Msg("user id is absent from request context")
		writeError(w, r, service.ErrTokenNotSent)
		return
	}

	records, err := rh.service.ListByOwner(ctx, userID)
	if err != nil {
		log.Err(err).Int64("user_id", userID).Msg("record listing failed")
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, records, http.StatusOK)
}

func (rh *resourceHandler[T]) getByID(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		log.Error().Msg("user id is absent from request context")
		writeError(w, r, service.ErrTokenNotSent)
		return
	}

	recordID, err := parseRecordID(r)
	if err != nil {
		log.Err(err).Msg("Invalid id was passed")
		writeError(w, r, service.ErrInvalidRecordID)
		return
	}

	record, err := rh.service.GetByID(ctx, userID, recordID)
	if err != nil {
		log.Err(err).Int64("user_id", userID).Int64("record_id", recordID).Msg("record retrieval failed")
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, record, http.StatusOK)
}

func (rh *resourceHandler[T]) update(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		log.Error().Msg("user id is absent from request context")
		writeError(w, r, service.ErrTokenNotSent)
		return
	}

	recordID, err := parseRecordID(r)
	if err != nil {
		log.Err(err).Msg("Invalid id was passed")
		writeError(w, r, service.ErrInvalidRecordID)
		return
	}

	var record T
	if err := json.NewDecoder(r.Body).Decode(&record); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		writeError(w, r, service.ErrInvalidRequestBody)
		return
	}

	if err := rh.service.Update(ctx, userID, recordID, record); err != nil {
		log.Err(err).Int64("user_id", userID).Int64("record_id", recordID).Msg("record update failed")
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.MessageResponse{Message: fmt.Sprintf("%s updated successfully", rh.name)}, http.StatusOK)
}

func (rh *resourceHandler[T]) delete(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		log.Error().Msg("user id is absent from request context")
		writeError(w, r, service.ErrTokenNotSent)
		return
	}

	recordID, err := parseRecordID(r)
	if err != nil {
		log.Err(err).Msg("Invalid id was passed")
		writeError(w, r, service.ErrInvalidRecordID)
		return
	}

	if err := rh.service.Delete(ctx, userID, recordID); err != nil {
		log.Err(err).Int64("user_id", userID).Int64("record_id", recordID).Msg("record deletion failed")
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.MessageResponse{Message: fmt.Sprintf("%s deleted successfully", rh.name)}, http.StatusOK)
}

// parseRecordID extracts the {id} route parameter as a positive int64.
func parseRecordID(r *http.Request) (int64, error) {
	rawID := chi.URLParam(r, "id")
	recordID, err := strconv.ParseInt(rawID, 10, 64)
	if err != nil {
		return 0, err
	}
	if recordID <= 0 {
		return 0, fmt.Errorf("record id must be positive, got %d", recordID)
	}
	return recordID, nil
}
