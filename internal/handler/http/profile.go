package http

import (
	"encoding/json"
	"net/http"

	"github.com/MKhiriev/go-pii-keeper/internal/logger"
	"github.com/MKhiriev/go-pii-keeper/internal/utils"
	"github.com/MKhiriev/go-pii-keeper/models"
)

func (h *Handler) getProfile(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	userID, sessionID, err := sessionFromRequest(r)
	if err != nil {
		log.Err(err).Send()
		writeError(w, err)
		return
	}

	profile, err := h.profiles.GetProfile(r.Context(), userID, sessionID)
	if err != nil {
		status := writeError(w, err)
		log.Err(err).Int("status", status).Msg("reading profile failed")
		return
	}

	utils.WriteJSON(w, profile, http.StatusOK)
}

func (h *Handler) updateProfile(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	userID, sessionID, err := sessionFromRequest(r)
	if err != nil {
		log.Err(err).Send()
		writeError(w, err)
		return
	}

	var update models.ProfileUpdate
	if err = json.NewDecoder(r.Body).Decode(&update); err != nil {
		log.Err(err).Msg(invalidJSONMessage)
		utils.WriteError(w, invalidJSONMessage, http.StatusBadRequest)
		return
	}

	profile, err := h.profiles.UpdateProfile(r.Context(), userID, sessionID, update)
	if err != nil {
		status := writeError(w, err)
		log.Err(err).Int("status", status).Msg("updating profile failed")
		return
	}

	utils.WriteJSON(w, profile, http.StatusOK)
}
