package http

import (
	"encoding/json"
	"net/http"

	"github.com/MKhiriev/go-secret-vault/internal/logger"
	"github.com/MKhiriev/go-secret-vault/internal/service"
	"github.com/MKhiriev/go-secret-vault/internal/utils"
	"github.com/MKhiriev/go-secret-vault/models"
)

func (h *Handler) signUp(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var user models.User
	if err := json.NewDecoder(r.Body).Decode(&user); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		writeError(w, r, service.ErrInvalidRequestBody)
		return
	}

	if err := h.services.AuthService.Register(ctx, user.Email, user.Password); err != nil {
		log.Err(err).Str("email", user.Email).Msg("user registration failed")
		writeError(w, r, err)
		return
	}

	log.Debug().Str("email", user.Email).Msg("user successfully registered")

	utils.WriteJSON(w, models.MessageResponse{Message: "User created successfully"}, http.StatusCreated)
}

func (h *Handler) signIn(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var user models.User
	if err := json.NewDecoder(r.Body).Decode(&user); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		writeError(w, r, service.ErrInvalidRequestBody)
		return
	}

	token, err := h.services.AuthService.Login(ctx, user.Email, user.Password)
	if err != nil {
		log.Err(err).Str("email", user.Email).Msg("user login failed")
		writeError(w, r, err)
		return
	}

	log.Debug().Int64("id", token.UserID).Msg("user successfully logged in")

	utils.WriteJSON(w, models.SignInResponse{
		Token:   token.String(),
		Message: "Authentication Success",
	}, http.StatusOK)
}
