package api

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/precious1994-dev/APP-PORT/errs"
	"github.com/precious1994-dev/APP-PORT/models"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

type contactRepo interface {
	FindAll() ([]*models.Contact, error)
	FindByID(id uuid.UUID) (*models.Contact, error)
	Replace(contact *models.Contact) error
	Update(contact *models.Contact) error
	Delete(id uuid.UUID) error
}

type contactHandler struct {
	responder   Responder
	logger      zerolog.Logger
	contactRepo contactRepo
}

func newContactHandler(contactRepo contactRepo) contactHandler {
	logger := log.With().Str("handlerName", "contactHandler").Logger()

	return contactHandler{
		responder:   NewResponder(logger),
		logger:      logger,
		contactRepo: contactRepo,
	}
}

func (h contactHandler) getAllContacts() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		contacts, err := h.contactRepo.FindAll()
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find contacts", "Contact", err))
			return
		}

		if contacts == nil {
			contacts = []*models.Contact{}
		}
		h.responder.WriteJSON(w, contacts)
	}
}

func (h contactHandler) getContact() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		contactID, err := uuid.Parse(chi.URLParam(r, "contactID"))
		if err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError("invalid contactID"))
			return
		}

		contact, err := h.contactRepo.FindByID(contactID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find contact", "Contact", err))
			return
		}

		h.responder.WriteJSON(w, contact)
	}
}

// createContact replaces the whole contact collection with the submitted
// record.
func (h contactHandler) createContact() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var contact models.Contact
		if err := json.NewDecoder(r.Body).Decode(&contact); err != nil {
			h.logger.Error().Err(err).Msg("Failed to decode contact request body")
			h.responder.WriteError(w, errs.NewBadRequestError("malformed request body"))
			return
		}

		if err := contact.Validate(); err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError(err.Error()))
			return
		}

		contact.ID = uuid.New()
		if err := h.contactRepo.Replace(&contact); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("create contact", "Contact", err))
			return
		}

		h.responder.WriteJSON(w, contact)
	}
}

func (h contactHandler) updateContact() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		contactID, err := uuid.Parse(chi.URLParam(r, "contactID"))
		if err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError("invalid contactID"))
			return
		}

		existing, err := h.contactRepo.FindByID(contactID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find contact", "Contact", err))
			return
		}

		var contact models.Contact
		if err := json.NewDecoder(r.Body).Decode(&contact); err != nil {
			h.logger.Error().Err(err).Msg("Failed to decode contact request body")
			h.responder.WriteError(w, errs.NewBadRequestError("malformed request body"))
			return
		}

		if err := contact.Validate(); err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError(err.Error()))
			return
		}

		contact.ID = contactID
		contact.CreatedAt = existing.CreatedAt
		if err := h.contactRepo.Update(&contact); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("update contact", "Contact", err))
			return
		}

		h.responder.WriteJSON(w, contact)
	}
}

func (h contactHandler) deleteContact() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		contactID, err := uuid.Parse(chi.URLParam(r, "contactID"))
		if err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError("invalid contactID"))
			return
		}

		if _, err := h.contactRepo.FindByID(contactID); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find contact", "Contact", err))
			return
		}

		if err := h.contactRepo.Delete(contactID); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("delete contact", "Contact", err))
			return
		}

		h.responder.WriteJSON(w, map[string]string{
			"message": "Contact deleted successfully",
		})
	}
}
