package auth

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/precious1994-dev/APP-PORT/config"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/github"
)

// ErrAccessDenied is returned when an identity is confirmed by the provider
// but its handle is not on the operator allow-list. No session exists at
// that point and none is created.
var ErrAccessDenied = errors.New("access denied")

const (
	// SessionCookie carries the signed admin session token.
	SessionCookie = "portfolio_session"

	sessionTTL = 24 * time.Hour
)

// GitHubUser is the slice of the provider profile the admin panel needs.
type GitHubUser struct {
	Login     string `json:"login"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	AvatarURL string `json:"avatar_url"`
}

// SessionClaims is the JWT payload of an admin session.
type SessionClaims struct {
	Login     string `json:"login"`
	Name      string `json:"name,omitempty"`
	AvatarURL string `json:"avatarUrl,omitempty"`
	jwt.RegisteredClaims
}

// Service implements the sign-in flow: OAuth authorization-code exchange
// against GitHub, an allow-list predicate evaluated before any session is
// issued, and signed session tokens.
type Service struct {
	oauth      *oauth2.Config
	allowed    map[string]struct{}
	signingKey []byte
	apiBase    string
}

func NewService(c map[string]string) (*Service, error) {
	clientID := config.GetString(c, "GITHUB_ID", "")
	clientSecret := config.GetString(c, "GITHUB_SECRET", "")
	if clientID == "" || clientSecret == "" {
		return nil, errors.New("GITHUB_ID and GITHUB_SECRET must be set")
	}

	secret := config.GetString(c, "SESSION_SECRET", "")
	if secret == "" {
		return nil, errors.New("SESSION_SECRET must be set")
	}

	allowed := make(map[string]struct{})
	for _, login := range config.GetStrings(c, "ALLOWED_GITHUB_USERS") {
		allowed[login] = struct{}{}
	}

	publicURL := config.GetString(c, "PUBLIC_URL", "http://localhost:8080")

	// The provider endpoints default to GitHub but stay configurable, so a
	// different authorization-code provider can be swapped in without code
	// changes.
	endpoint := oauth2.Endpoint{
		AuthURL:  config.GetString(c, "GITHUB_AUTHORIZE_URL", github.Endpoint.AuthURL),
		TokenURL: config.GetString(c, "GITHUB_TOKEN_URL", github.Endpoint.TokenURL),
	}

	return &Service{
		oauth: &oauth2.Config{
			ClientID:     clientID,
			ClientSecret: clientSecret,
			Endpoint:     endpoint,
			RedirectURL:  publicURL + "/api/auth/callback",
			Scopes:       []string{"read:user"},
		},
		allowed:    allowed,
		signingKey: []byte(secret),
		apiBase:    config.GetString(c, "GITHUB_API_URL", "https://api.github.com"),
	}, nil
}

// AuthCodeURL returns the provider authorize URL for the given state.
func (s *Service) AuthCodeURL(state string) string {
	return s.oauth.AuthCodeURL(state)
}

// Exchange trades the authorization code for an access token.
func (s *Service) Exchange(ctx context.Context, code string) (*oauth2.Token, error) {
	return s.oauth.Exchange(ctx, code)
}

// FetchUser loads the authenticated user's profile from the provider.
func (s *Service) FetchUser(ctx context.Context, token *oauth2.Token) (*GitHubUser, error) {
	client := s.oauth.Client(ctx, token)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.apiBase+"/user", nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/vnd.github+json")

	resp, err := client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("provider returned status %d", resp.StatusCode)
	}

	var user GitHubUser
	if err := json.NewDecoder(resp.Body).Decode(&user); err != nil {
		return nil, err
	}
	if user.Login == "" {
		return nil, errors.New("provider profile has no login")
	}
	return &user, nil
}

// Authorize applies the allow-list predicate. It runs at authentication
// time: a disallowed account fails sign-in entirely instead of getting a
// session with no admin rights.
func (s *Service) Authorize(login string) error {
	if _, ok := s.allowed[login]; !ok {
		return ErrAccessDenied
	}
	return nil
}

// IssueSession signs a session token for an allow-listed user.
func (s *Service) IssueSession(user *GitHubUser) (string, error) {
	now := time.Now()
	claims := SessionClaims{
		Login:     user.Login,
		Name:      user.Name,
		AvatarURL: user.AvatarURL,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.Login,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(sessionTTL)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.signingKey)
}

// VerifySession parses and validates a session token.
func (s *Service) VerifySession(tokenString string) (*SessionClaims, error) {
	claims := &SessionClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return s.signingKey, nil
	})
	if err != nil {
		return nil, err
	}
	if !token.Valid {
		return nil, errors.New("invalid session token")
	}
	return claims, nil
}
