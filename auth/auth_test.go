package auth

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/oauth2"
)

func testConfig() map[string]string {
	return map[string]string{
		"GITHUB_ID":            "client-id",
		"GITHUB_SECRET":        "client-secret",
		"SESSION_SECRET":       "test-signing-secret",
		"ALLOWED_GITHUB_USERS": "alice, bob",
		"PUBLIC_URL":           "https://example.com",
	}
}

func TestNewServiceRequiresCredentials(t *testing.T) {
	c := testConfig()
	delete(c, "GITHUB_ID")
	_, err := NewService(c)
	require.Error(t, err)

	c = testConfig()
	delete(c, "SESSION_SECRET")
	_, err = NewService(c)
	require.Error(t, err)
}

func TestAuthorize(t *testing.T) {
	service, err := NewService(testConfig())
	require.NoError(t, err)

	assert.NoError(t, service.Authorize("alice"))
	assert.NoError(t, service.Authorize("bob"))

	err = service.Authorize("mallory")
	require.ErrorIs(t, err, ErrAccessDenied)
}

func TestAuthorizeEmptyAllowList(t *testing.T) {
	c := testConfig()
	delete(c, "ALLOWED_GITHUB_USERS")
	service, err := NewService(c)
	require.NoError(t, err)

	// nobody signs in when the operator configured no allow-list
	require.ErrorIs(t, service.Authorize("alice"), ErrAccessDenied)
}

func TestAuthCodeURL(t *testing.T) {
	service, err := NewService(testConfig())
	require.NoError(t, err)

	url := service.AuthCodeURL("state-token")
	assert.Contains(t, url, "client_id=client-id")
	assert.Contains(t, url, "state=state-token")
	assert.Contains(t, url, "github.com")
}

func TestSessionRoundtrip(t *testing.T) {
	service, err := NewService(testConfig())
	require.NoError(t, err)

	token, err := service.IssueSession(&GitHubUser{
		Login:     "alice",
		Name:      "Alice",
		AvatarURL: "https://example.com/alice.png",
	})
	require.NoError(t, err)

	claims, err := service.VerifySession(token)
	require.NoError(t, err)
	assert.Equal(t, "alice", claims.Login)
	assert.Equal(t, "Alice", claims.Name)
	assert.Equal(t, "https://example.com/alice.png", claims.AvatarURL)
}

func TestVerifySessionRejectsForeignKey(t *testing.T) {
	service, err := NewService(testConfig())
	require.NoError(t, err)

	other := testConfig()
	other["SESSION_SECRET"] = "a-different-secret"
	otherService, err := NewService(other)
	require.NoError(t, err)

	token, err := otherService.IssueSession(&GitHubUser{Login: "alice"})
	require.NoError(t, err)

	_, err = service.VerifySession(token)
	require.Error(t, err)
}

func TestVerifySessionRejectsGarbage(t *testing.T) {
	service, err := NewService(testConfig())
	require.NoError(t, err)

	_, err = service.VerifySession("not-a-token")
	require.Error(t, err)
}

func TestFetchUser(t *testing.T) {
	provider := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/user" {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		if !strings.Contains(r.Header.Get("Authorization"), "access-token") {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"login":"alice","name":"Alice","avatar_url":"https://example.com/a.png"}`))
	}))
	defer provider.Close()

	c := testConfig()
	c["GITHUB_API_URL"] = provider.URL
	service, err := NewService(c)
	require.NoError(t, err)

	user, err := service.FetchUser(context.Background(), &oauth2.Token{AccessToken: "access-token"})
	require.NoError(t, err)
	assert.Equal(t, "alice", user.Login)
	assert.Equal(t, "Alice", user.Name)
}

func TestFetchUserProviderError(t *testing.T) {
	provider := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer provider.Close()

	c := testConfig()
	c["GITHUB_API_URL"] = provider.URL
	service, err := NewService(c)
	require.NoError(t, err)

	_, err = service.FetchUser(context.Background(), &oauth2.Token{AccessToken: "access-token"})
	require.Error(t, err)
}
