package errs

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestNewDatabaseErrorRecordNotFound(t *testing.T) {
	err := NewDatabaseError("find hero", "Hero", gorm.ErrRecordNotFound)

	require.Equal(t, http.StatusNotFound, err.StatusCode)
	assert.Equal(t, "Hero not found", err.Error())
	assert.True(t, IsNotFound(err))
}

func TestNewDatabaseErrorWrappedNotFound(t *testing.T) {
	wrapped := fmt.Errorf("query failed: %w", gorm.ErrRecordNotFound)
	err := NewDatabaseError("find skill", "Skill", wrapped)

	assert.Equal(t, http.StatusNotFound, err.StatusCode)
	assert.Equal(t, "Skill not found", err.Error())
}

func TestNewDatabaseErrorDuplicateKey(t *testing.T) {
	err := NewDatabaseError("create project", "Project", errors.New(`duplicate key value violates unique constraint "projects_pkey"`))

	assert.Equal(t, http.StatusConflict, err.StatusCode)
}

func TestNewDatabaseErrorGeneric(t *testing.T) {
	err := NewDatabaseError("find projects", "Project", errors.New("boom"))

	require.Equal(t, http.StatusInternalServerError, err.StatusCode)
	assert.True(t, errors.Is(err, ErrDatabaseQuery))
}

func TestApiErrUnwrap(t *testing.T) {
	err := NewNotFound("Contact")

	assert.True(t, errors.Is(err, ErrNotFound))
	assert.Equal(t, http.StatusNotFound, err.StatusCode)
}
