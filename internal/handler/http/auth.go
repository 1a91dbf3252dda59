package http

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/MKhiriev/go-pii-keeper/internal/logger"
	"github.com/MKhiriev/go-pii-keeper/internal/utils"
	"github.com/MKhiriev/go-pii-keeper/models"
)

const invalidJSONMessage = "Invalid JSON was passed"

func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var credentials models.Credentials
	if err := json.NewDecoder(r.Body).Decode(&credentials); err != nil {
		log.Err(err).Msg(invalidJSONMessage)
		utils.WriteError(w, invalidJSONMessage, http.StatusBadRequest)
		return
	}

	result, err := h.users.Register(ctx, credentials)
	if err != nil {
		status := writeError(w, err)
		log.Err(err).Int("status", status).Msg("user registration failed")
		return
	}

	h.issueToken(w, r, result)
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var credentials models.Credentials
	if err := json.NewDecoder(r.Body).Decode(&credentials); err != nil {
		log.Err(err).Msg(invalidJSONMessage)
		utils.WriteError(w, invalidJSONMessage, http.StatusBadRequest)
		return
	}

	result, err := h.users.Login(ctx, credentials)
	if err != nil {
		status := writeError(w, err)
		log.Err(err).Int("status", status).Msg("user login failed")
		return
	}

	log.Debug().Int64("user_id", result.User.UserID).Str("session_id", result.Session.ID).Msg("user successfully logged in")

	h.issueToken(w, r, result)
}

// issueToken signs a token for the new session and returns it in the
// Authorization header.
func (h *Handler) issueToken(w http.ResponseWriter, r *http.Request, result models.AuthResult) {
	log := logger.FromRequest(r)

	token, err := h.users.CreateToken(r.Context(), result)
	if err != nil {
		log.Err(err).Msg("creation of token failed")
		writeError(w, err)
		return
	}

	w.Header().Set("Authorization", fmt.Sprintf("Bearer %s", token.SignedString))
	w.WriteHeader(http.StatusOK)
}

func (h *Handler) emailExists(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	email := r.URL.Query().Get("email")
	if email == "" {
		utils.WriteError(w, "query parameter `email` is required", http.StatusBadRequest)
		return
	}

	exists, err := h.users.EmailExists(r.Context(), email)
	if err != nil {
		status := writeError(w, err)
		log.Err(err).Int("status", status).Msg("email check failed")
		return
	}

	utils.WriteJSON(w, models.EmailExists{Exists: exists}, http.StatusOK)
}

func (h *Handler) logout(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	_, sessionID, err := sessionFromRequest(r)
	if err != nil {
		log.Err(err).Send()
		writeError(w, err)
		return
	}

	if err = h.users.Logout(r.Context(), sessionID); err != nil {
		status := writeError(w, err)
		log.Err(err).Int("status", status).Msg("logout failed")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) changePassword(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	userID, sessionID, err := sessionFromRequest(r)
	if err != nil {
		log.Err(err).Send()
		writeError(w, err)
		return
	}

	var change models.PasswordChange
	if err = json.NewDecoder(r.Body).Decode(&change); err != nil {
		log.Err(err).Msg(invalidJSONMessage)
		utils.WriteError(w, invalidJSONMessage, http.StatusBadRequest)
		return
	}

	if err = h.users.ChangePassword(r.Context(), userID, sessionID, change); err != nil {
		status := writeError(w, err)
		log.Err(err).Int("status", status).Msg("password change failed")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
