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

type aboutRepo interface {
	FindAll() ([]*models.About, error)
	FindByID(id uuid.UUID) (*models.About, error)
	Replace(about *models.About) error
	Update(about *models.About) error
	Delete(id uuid.UUID) error
}

type aboutHandler struct {
	responder Responder
	logger    zerolog.Logger
	aboutRepo aboutRepo
}

func newAboutHandler(aboutRepo aboutRepo) aboutHandler {
	logger := log.With().Str("handlerName", "aboutHandler").Logger()

	return aboutHandler{
		responder: NewResponder(logger),
		logger:    logger,
		aboutRepo: aboutRepo,
	}
}

func (h aboutHandler) getAllAbouts() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		abouts, err := h.aboutRepo.FindAll()
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find abouts", "About", err))
			return
		}

		if abouts == nil {
			abouts = []*models.About{}
		}
		h.responder.WriteJSON(w, abouts)
	}
}

func (h aboutHandler) getAbout() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		aboutID, err := uuid.Parse(chi.URLParam(r, "aboutID"))
		if err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError("invalid aboutID"))
			return
		}

		about, err := h.aboutRepo.FindByID(aboutID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find about", "About", err))
			return
		}

		h.responder.WriteJSON(w, about)
	}
}

// createAbout replaces the whole about collection with the submitted record.
func (h aboutHandler) createAbout() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var about models.About
		if err := json.NewDecoder(r.Body).Decode(&about); err != nil {
			h.logger.Error().Err(err).Msg("Failed to decode about request body")
			h.responder.WriteError(w, errs.NewBadRequestError("malformed request body"))
			return
		}

		if err := about.Validate(); err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError(err.Error()))
			return
		}

		about.ID = uuid.New()
		if err := h.aboutRepo.Replace(&about); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("create about", "About", err))
			return
		}

		h.responder.WriteJSON(w, about)
	}
}

func (h aboutHandler) updateAbout() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		aboutID, err := uuid.Parse(chi.URLParam(r, "aboutID"))
		if err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError("invalid aboutID"))
			return
		}

		existing, err := h.aboutRepo.FindByID(aboutID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find about", "About", err))
			return
		}

		var about models.About
		if err := json.NewDecoder(r.Body).Decode(&about); err != nil {
			h.logger.Error().Err(err).Msg("Failed to decode about request body")
			h.responder.WriteError(w, errs.NewBadRequestError("malformed request body"))
			return
		}

		if err := about.Validate(); err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError(err.Error()))
			return
		}

		about.ID = aboutID
		about.CreatedAt = existing.CreatedAt
		if err := h.aboutRepo.Update(&about); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("update about", "About", err))
			return
		}

		h.responder.WriteJSON(w, about)
	}
}

func (h aboutHandler) deleteAbout() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		aboutID, err := uuid.Parse(chi.URLParam(r, "aboutID"))
		if err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError("invalid aboutID"))
			return
		}

		if _, err := h.aboutRepo.FindByID(aboutID); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find about", "About", err))
			return
		}

		if err := h.aboutRepo.Delete(aboutID); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("delete about", "About", err))
			return
		}

		h.responder.WriteJSON(w, map[string]string{
			"message": "About deleted successfully",
		})
	}
}
