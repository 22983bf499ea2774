package api

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/go-chi/chi/v5"
	"github.com/precious1994-dev/APP-PORT/database"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func routerTestConfig(t *testing.T) map[string]string {
	t.Helper()

	return map[string]string{
		"GITHUB_ID":            "client-id",
		"GITHUB_SECRET":        "client-secret",
		"SESSION_SECRET":       "test-signing-secret",
		"ALLOWED_GITHUB_USERS": "alice",
		"COOKIE_SECURE":        "false",
		"UPLOAD_DIR":           t.TempDir(),
	}
}

func newTestRouter(t *testing.T) (*chi.Mux, sqlmock.Sqlmock) {
	t.Helper()

	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{
		Conn:                 sqlDB,
		PreferSimpleProtocol: true,
	}), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	require.NoError(t, err)

	router, err := newRouter(database.New(db), withConfig(routerTestConfig(t)))
	require.NoError(t, err)
	return router, mock
}

func TestRouterRejectsUnauthenticatedWrite(t *testing.T) {
	router, mock := newTestRouter(t)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/hero", nil))

	require.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.JSONEq(t, `{"error":"Unauthorized"}`, rec.Body.String())
	// the request must be refused before any store access
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRouterServesPublicReads(t *testing.T) {
	router, mock := newTestRouter(t)

	mock.ExpectQuery(`SELECT \* FROM "skills"`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "category", "proficiency"}))

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/skills", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, "[]", rec.Body.String())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRouterCountBehindSession(t *testing.T) {
	router, mock := newTestRouter(t)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/experiences/count", nil))
	require.Equal(t, http.StatusUnauthorized, rec.Code)

	mock.ExpectQuery(`SELECT count\(\*\) FROM "experiences"`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(3))

	sessions := testSessions(t)
	req := httptest.NewRequest(http.MethodGet, "/api/experiences/count", nil)
	req.Header.Set("Authorization", "Bearer "+sessionFor(t, sessions, "alice"))

	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"count":3}`, rec.Body.String())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRouterRequiresAuthCredentials(t *testing.T) {
	sqlDB, _, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{
		Conn:                 sqlDB,
		PreferSimpleProtocol: true,
	}), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	require.NoError(t, err)

	_, err = newRouter(database.New(db), withConfig(map[string]string{
		"SESSION_SECRET": "test-signing-secret",
		"UPLOAD_DIR":     t.TempDir(),
	}))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "GITHUB_ID")
}
