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

// heroRepo is the repository surface the hero handler consumes. Replace
// enforces the singleton rule: one live record, previous ones removed.
type heroRepo interface {
	FindAll() ([]*models.Hero, error)
	FindByID(id uuid.UUID) (*models.Hero, error)
	Replace(hero *models.Hero) error
	Update(hero *models.Hero) error
	Delete(id uuid.UUID) error
}

type heroHandler struct {
	responder Responder
	logger    zerolog.Logger
	heroRepo  heroRepo
}

func newHeroHandler(heroRepo heroRepo) heroHandler {
	logger := log.With().Str("handlerName", "heroHandler").Logger()

	return heroHandler{
		responder: NewResponder(logger),
		logger:    logger,
		heroRepo:  heroRepo,
	}
}

// getAllHeroes returns the hero collection: zero or one record.
func (h heroHandler) getAllHeroes() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		heroes, err := h.heroRepo.FindAll()
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find heroes", "Hero", err))
			return
		}

		if heroes == nil {
			heroes = []*models.Hero{}
		}
		h.responder.WriteJSON(w, heroes)
	}
}

func (h heroHandler) getHero() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		heroID, err := uuid.Parse(chi.URLParam(r, "heroID"))
		if err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError("invalid heroID"))
			return
		}

		hero, err := h.heroRepo.FindByID(heroID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find hero", "Hero", err))
			return
		}

		h.responder.WriteJSON(w, hero)
	}
}

// createHero replaces the whole hero collection with the submitted record.
// The admin form never submits an id for singleton kinds; the replacement
// runs in one store transaction.
func (h heroHandler) createHero() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var hero models.Hero
		if err := json.NewDecoder(r.Body).Decode(&hero); err != nil {
			h.logger.Error().Err(err).Msg("Failed to decode hero request body")
			h.responder.WriteError(w, errs.NewBadRequestError("malformed request body"))
			return
		}

		if err := hero.Validate(); err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError(err.Error()))
			return
		}

		hero.ID = uuid.New()
		if err := h.heroRepo.Replace(&hero); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("create hero", "Hero", err))
			return
		}

		h.responder.WriteJSON(w, hero)
	}
}

func (h heroHandler) updateHero() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		heroID, err := uuid.Parse(chi.URLParam(r, "heroID"))
		if err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError("invalid heroID"))
			return
		}

		existing, err := h.heroRepo.FindByID(heroID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find hero", "Hero", err))
			return
		}

		var hero models.Hero
		if err := json.NewDecoder(r.Body).Decode(&hero); err != nil {
			h.logger.Error().Err(err).Msg("Failed to decode hero request body")
			h.responder.WriteError(w, errs.NewBadRequestError("malformed request body"))
			return
		}

		if err := hero.Validate(); err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError(err.Error()))
			return
		}

		hero.ID = heroID
		hero.CreatedAt = existing.CreatedAt
		if err := h.heroRepo.Update(&hero); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("update hero", "Hero", err))
			return
		}

		h.responder.WriteJSON(w, hero)
	}
}

func (h heroHandler) deleteHero() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		heroID, err := uuid.Parse(chi.URLParam(r, "heroID"))
		if err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError("invalid heroID"))
			return
		}

		if _, err := h.heroRepo.FindByID(heroID); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find hero", "Hero", err))
			return
		}

		if err := h.heroRepo.Delete(heroID); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("delete hero", "Hero", err))
			return
		}

		h.responder.WriteJSON(w, map[string]string{
			"message": "Hero deleted successfully",
		})
	}
}
