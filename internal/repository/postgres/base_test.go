package postgres

import (
	"database/sql"
	"errors"
	"testing"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"

	"github.com/jwalitptl/doctor-channel/internal/repository"
)

type rowsResult int64

func (r rowsResult) LastInsertId() (int64, error) { return 0, nil }
func (r rowsResult) RowsAffected() (int64, error) { return int64(r), nil }

func TestMapError(t *testing.T) {
	assert.NoError(t, mapError("op", nil))
	assert.ErrorIs(t, mapError("get doctor", sql.ErrNoRows), repository.ErrNotFound)
	assert.ErrorIs(t, mapError("create user", &pq.Error{Code: uniqueViolation}), repository.ErrDuplicate)

	err := mapError("list doctors", errors.New("connection refused"))
	assert.EqualError(t, err, "failed to list doctors: connection refused")
}

func TestExpectRow(t *testing.T) {
	assert.NoError(t, expectRow("delete", rowsResult(1)))
	assert.ErrorIs(t, expectRow("delete", rowsResult(0)), repository.ErrNotFound)
}

func TestLikeEscaper(t *testing.T) {
	assert.Equal(t, `100\%`, likeEscaper.Replace("100%"))
	assert.Equal(t, `a\_b`, likeEscaper.Replace("a_b"))
	assert.Equal(t, "chicago", likeEscaper.Replace("chicago"))
}
