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

// experienceRepo is the repository surface the experience handler consumes.
// FindAll returns records sorted ascending by their display order.
type experienceRepo interface {
	FindAll() ([]*models.Experience, error)
	FindByID(id uuid.UUID) (*models.Experience, error)
	Count() (int64, error)
	Add(experience *models.Experience) error
	Update(experience *models.Experience) error
	Delete(id uuid.UUID) error
}

type experienceHandler struct {
	responder      Responder
	logger         zerolog.Logger
	experienceRepo experienceRepo
}

func newExperienceHandler(experienceRepo experienceRepo) experienceHandler {
	logger := log.With().Str("handlerName", "experienceHandler").Logger()

	return experienceHandler{
		responder:      NewResponder(logger),
		logger:         logger,
		experienceRepo: experienceRepo,
	}
}

func (h experienceHandler) getAllExperiences() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		experiences, err := h.experienceRepo.FindAll()
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find experiences", "Experience", err))
			return
		}

		if experiences == nil {
			experiences = []*models.Experience{}
		}
		h.responder.WriteJSON(w, experiences)
	}
}

func (h experienceHandler) getExperience() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		experienceID, err := uuid.Parse(chi.URLParam(r, "experienceID"))
		if err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError("invalid experienceID"))
			return
		}

		experience, err := h.experienceRepo.FindByID(experienceID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find experience", "Experience", err))
			return
		}

		h.responder.WriteJSON(w, experience)
	}
}

// countExperiences reports collection cardinality for the admin dashboard.
func (h experienceHandler) countExperiences() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		count, err := h.experienceRepo.Count()
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("count experiences", "Experience", err))
			return
		}

		h.responder.WriteJSON(w, map[string]int64{"count": count})
	}
}

func (h experienceHandler) createExperience() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var experience models.Experience
		if err := json.NewDecoder(r.Body).Decode(&experience); err != nil {
			h.logger.Error().Err(err).Msg("Failed to decode experience request body")
			h.responder.WriteError(w, errs.NewBadRequestError("malformed request body"))
			return
		}

		if err := experience.Validate(); err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError(err.Error()))
			return
		}

		experience.ID = uuid.New()
		if err := h.experienceRepo.Add(&experience); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("create experience", "Experience", err))
			return
		}

		h.responder.WriteJSON(w, experience)
	}
}

func (h experienceHandler) updateExperience() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		experienceID, err := uuid.Parse(chi.URLParam(r, "experienceID"))
		if err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError("invalid experienceID"))
			return
		}

		existing, err := h.experienceRepo.FindByID(experienceID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find experience", "Experience", err))
			return
		}

		var experience models.Experience
		if err := json.NewDecoder(r.Body).Decode(&experience); err != nil {
			h.logger.Error().Err(err).Msg("Failed to decode experience request body")
			h.responder.WriteError(w, errs.NewBadRequestError("malformed request body"))
			return
		}

		if err := experience.Validate(); err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError(err.Error()))
			return
		}

		experience.ID = experienceID
		experience.CreatedAt = existing.CreatedAt
		if err := h.experienceRepo.Update(&experience); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("update experience", "Experience", err))
			return
		}

		h.responder.WriteJSON(w, experience)
	}
}

func (h experienceHandler) deleteExperience() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		experienceID, err := uuid.Parse(chi.URLParam(r, "experienceID"))
		if err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError("invalid experienceID"))
			return
		}

		if _, err := h.experienceRepo.FindByID(experienceID); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find experience", "Experience", err))
			return
		}

		if err := h.experienceRepo.Delete(experienceID); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("delete experience", "Experience", err))
			return
		}

		h.responder.WriteJSON(w, map[string]string{
			"message": "Experience deleted successfully",
		})
	}
}
