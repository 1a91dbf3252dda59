package http

import (
	"encoding/json"
	"net/http"

	"github.com/MKhiriev/go-pii-keeper/internal/logger"
	"github.com/MKhiriev/go-pii-keeper/internal/utils"
	"github.com/MKhiriev/go-pii-keeper/models"
)

func (h *Handler) createContact(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	userID, sessionID, err := sessionFromRequest(r)
	if err != nil {
		log.Err(err).Send()
		writeError(w, err)
		return
	}

	var contact models.NewContact
	if err = json.NewDecoder(r.Body).Decode(&contact); err != nil {
		log.Err(err).Msg(invalidJSONMessage)
		utils.WriteError(w, invalidJSONMessage, http.StatusBadRequest)
		return
	}

	view, err := h.contacts.CreateContact(r.Context(), userID, sessionID, contact)
	if err != nil {
		status := writeError(w, err)
		log.Err(err).Int("status", status).Msg("creating contact failed")
		return
	}

	utils.WriteJSON(w, view, http.StatusCreated)
}

func (h *Handler) listContacts(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	userID, sessionID, err := sessionFromRequest(r)
	if err != nil {
		log.Err(err).Send()
		writeError(w, err)
		return
	}

	views, err := h.contacts.ListContacts(r.Context(), userID, sessionID)
	if err != nil {
		status := writeError(w, err)
		log.Err(err).Int("status", status).Msg("listing contacts failed")
		return
	}

	writeContacts(w, views)
}

func (h *Handler) searchContacts(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	userID, sessionID, err := sessionFromRequest(r)
	if err != nil {
		log.Err(err).Send()
		writeError(w, err)
		return
	}

	email := r.URL.Query().Get("email")
	if email == "" {
		utils.WriteError(w, "query parameter `email` is required", http.StatusBadRequest)
		return
	}

	views, err := h.contacts.SearchContactsByEmail(r.Context(), userID, sessionID, email)
	if err != nil {
		status := writeError(w, err)
		log.Err(err).Int("status", status).Msg("searching contacts failed")
		return
	}

	writeContacts(w, views)
}

// writeContacts always renders a JSON array, never null.
func writeContacts(w http.ResponseWriter, views []models.ContactView) {
	if views == nil {
		views = []models.ContactView{}
	}
	utils.WriteJSON(w, views, http.StatusOK)
}
