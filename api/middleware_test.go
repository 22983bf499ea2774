package api

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/precious1994-dev/APP-PORT/auth"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testSessions(t *testing.T) *auth.Service {
	t.Helper()

	sessions, err := auth.NewService(map[string]string{
		"GITHUB_ID":            "client-id",
		"GITHUB_SECRET":        "client-secret",
		"SESSION_SECRET":       "test-signing-secret",
		"ALLOWED_GITHUB_USERS": "alice",
	})
	require.NoError(t, err)
	return sessions
}

func sessionFor(t *testing.T, sessions *auth.Service, login string) string {
	t.Helper()

	token, err := sessions.IssueSession(&auth.GitHubUser{Login: login})
	require.NoError(t, err)
	return token
}

func TestAuthenticateRejectsMissingSession(t *testing.T) {
	middleware := newAuthMiddleware(testSessions(t))

	handlerCalled := false
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		handlerCalled = true
	})

	rec := httptest.NewRecorder()
	middleware.authenticate(next).ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/hero", nil))

	require.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.JSONEq(t, `{"error":"Unauthorized"}`, rec.Body.String())
	assert.False(t, handlerCalled)
}

func TestAuthenticateRejectsInvalidToken(t *testing.T) {
	middleware := newAuthMiddleware(testSessions(t))

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler must not run")
	})

	req := httptest.NewRequest(http.MethodPost, "/hero", nil)
	req.AddCookie(&http.Cookie{Name: auth.SessionCookie, Value: "garbage"})

	rec := httptest.NewRecorder()
	middleware.authenticate(next).ServeHTTP(rec, req)

	require.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthenticateAcceptsSessionCookie(t *testing.T) {
	sessions := testSessions(t)
	middleware := newAuthMiddleware(sessions)

	var gotLogin string
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		claims, ok := SessionFromContext(r.Context())
		require.True(t, ok)
		gotLogin = claims.Login
	})

	req := httptest.NewRequest(http.MethodPost, "/hero", nil)
	req.AddCookie(&http.Cookie{Name: auth.SessionCookie, Value: sessionFor(t, sessions, "alice")})

	rec := httptest.NewRecorder()
	middleware.authenticate(next).ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "alice", gotLogin)
}

func TestAuthenticateAcceptsBearerToken(t *testing.T) {
	sessions := testSessions(t)
	middleware := newAuthMiddleware(sessions)

	handlerCalled := false
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		handlerCalled = true
	})

	req := httptest.NewRequest(http.MethodPost, "/hero", nil)
	req.Header.Set("Authorization", "Bearer "+sessionFor(t, sessions, "alice"))

	rec := httptest.NewRecorder()
	middleware.authenticate(next).ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, handlerCalled)
}
