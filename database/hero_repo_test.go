package database

import (
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/precious1994-dev/APP-PORT/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

func testHero() *models.Hero {
	return &models.Hero{
		Title:       "Hi, I'm Jordan",
		Subtitle:    "Product Designer",
		Description: "I build things",
		Phrases:     datatypes.JSONSlice[string]{"designer"},
	}
}

// Replace must run delete and insert in one transaction so a failed insert
// never leaves the collection empty.
func TestHeroRepoReplace(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewHeroRepo(db)

	mock.ExpectBegin()
	mock.ExpectExec(`DELETE FROM "heroes"`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(`INSERT INTO "heroes"`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	require.NoError(t, repo.Replace(testHero()))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestHeroRepoReplaceRollsBackOnInsertFailure(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewHeroRepo(db)

	mock.ExpectBegin()
	mock.ExpectExec(`DELETE FROM "heroes"`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(`INSERT INTO "heroes"`).
		WillReturnError(errors.New("insert failed"))
	mock.ExpectRollback()

	require.Error(t, repo.Replace(testHero()))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestHeroRepoFindAllNewestFirst(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewHeroRepo(db)

	mock.ExpectQuery(`SELECT \* FROM "heroes" ORDER BY created_at DESC`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "title", "subtitle", "description"}).
			AddRow(uuid.New(), "Hi", "Designer", "Things"))

	heroes, err := repo.FindAll()
	require.NoError(t, err)
	require.Len(t, heroes, 1)
	assert.Equal(t, "Hi", heroes[0].Title)
}

func TestHeroRepoFindByIDNotFound(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewHeroRepo(db)

	mock.ExpectQuery(`SELECT \* FROM "heroes" WHERE id =`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	_, err := repo.FindByID(uuid.New())
	require.ErrorIs(t, err, gorm.ErrRecordNotFound)
}
