package api

import (
	"errors"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/precious1994-dev/APP-PORT/auth"
	"github.com/precious1994-dev/APP-PORT/config"
	"github.com/precious1994-dev/APP-PORT/errs"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

const stateCookie = "oauth_state"

type authHandler struct {
	responder     Responder
	logger        zerolog.Logger
	sessions      *auth.Service
	adminPath     string
	secureCookies bool
}

func newAuthHandler(sessions *auth.Service, c map[string]string) authHandler {
	logger := log.With().Str("handlerName", "authHandler").Logger()

	return authHandler{
		responder:     NewResponder(logger),
		logger:        logger,
		sessions:      sessions,
		adminPath:     config.GetString(c, "ADMIN_PATH", "/admin"),
		secureCookies: config.GetString(c, "COOKIE_SECURE", "true") == "true",
	}
}

// login starts the authorization-code flow: pin a random state in a short
// lived cookie and send the browser to the provider.
func (h authHandler) login() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		state := uuid.NewString()

		http.SetCookie(w, &http.Cookie{
			Name:     stateCookie,
			Value:    state,
			Path:     "/",
			MaxAge:   int(10 * time.Minute / time.Second),
			HttpOnly: true,
			Secure:   h.secureCookies,
			SameSite: http.SameSiteLaxMode,
		})

		http.Redirect(w, r, h.sessions.AuthCodeURL(state), http.StatusFound)
	}
}

// callback finishes the flow. The allow-list runs before any session is
// issued: a confirmed identity that is not allow-listed is bounced back to
// the login page with AccessDenied and no cookie is set.
func (h authHandler) callback() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		clearCookie(w, stateCookie, h.secureCookies)

		if errParam := r.URL.Query().Get("error"); errParam != "" {
			h.redirectWithError(w, r, errParam)
			return
		}

		state := r.URL.Query().Get("state")
		cookie, err := r.Cookie(stateCookie)
		if err != nil || state == "" || cookie.Value != state {
			h.redirectWithError(w, r, "OAuthStateMismatch")
			return
		}

		code := r.URL.Query().Get("code")
		if code == "" {
			h.redirectWithError(w, r, "OAuthCallback")
			return
		}

		token, err := h.sessions.Exchange(r.Context(), code)
		if err != nil {
			h.logger.Error().Err(err).Msg("OAuth code exchange failed")
			h.redirectWithError(w, r, "OAuthCallback")
			return
		}

		user, err := h.sessions.FetchUser(r.Context(), token)
		if err != nil {
			h.logger.Error().Err(err).Msg("Failed to fetch provider profile")
			h.redirectWithError(w, r, "OAuthCallback")
			return
		}

		if err := h.sessions.Authorize(user.Login); err != nil {
			if errors.Is(err, auth.ErrAccessDenied) {
				h.logger.Warn().Str("login", user.Login).Msg("Sign-in rejected: not on allow-list")
				h.redirectWithError(w, r, "AccessDenied")
				return
			}
			h.logger.Error().Err(err).Msg("Authorization check failed")
			h.redirectWithError(w, r, "OAuthCallback")
			return
		}

		session, err := h.sessions.IssueSession(user)
		if err != nil {
			h.logger.Error().Err(err).Msg("Failed to issue session")
			h.redirectWithError(w, r, "OAuthCallback")
			return
		}

		http.SetCookie(w, &http.Cookie{
			Name:     auth.SessionCookie,
			Value:    session,
			Path:     "/",
			MaxAge:   int(24 * time.Hour / time.Second),
			HttpOnly: true,
			Secure:   h.secureCookies,
			SameSite: http.SameSiteLaxMode,
		})

		http.Redirect(w, r, h.adminPath+"/dashboard", http.StatusFound)
	}
}

func (h authHandler) logout() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		clearCookie(w, auth.SessionCookie, h.secureCookies)
		h.responder.WriteJSON(w, map[string]string{
			"message": "Signed out successfully",
		})
	}
}

// session lets the admin UI bootstrap: the current user, or 401.
func (h authHandler) session() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		token := sessionToken(r)
		if token == "" {
			h.responder.WriteError(w, errs.NewUnauthorizedError("Unauthorized"))
			return
		}

		claims, err := h.sessions.VerifySession(token)
		if err != nil {
			h.responder.WriteError(w, errs.NewUnauthorizedError("Unauthorized"))
			return
		}

		h.responder.WriteJSON(w, map[string]any{
			"user": map[string]string{
				"login":     claims.Login,
				"name":      claims.Name,
				"avatarUrl": claims.AvatarURL,
			},
		})
	}
}

func (h authHandler) redirectWithError(w http.ResponseWriter, r *http.Request, code string) {
	http.Redirect(w, r, h.adminPath+"?error="+code, http.StatusFound)
}

func clearCookie(w http.ResponseWriter, name string, secure bool) {
	http.SetCookie(w, &http.Cookie{
		Name:     name,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   secure,
		SameSite: http.SameSiteLaxMode,
	})
}
