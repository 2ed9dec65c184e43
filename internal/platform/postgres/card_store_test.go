package postgres

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/brianhe1/smartcards-ai/internal/domain"
)

func newCardStoreWithMock(t *testing.T) (*PostgresCardStore, sqlmock.Sqlmock, func()) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)

	s := NewPostgresCardStore(db, nil)
	return s, mock, func() { _ = db.Close() }
}

func cardColumns() []string {
	return []string{"id", "user_id", "set_name", "front", "back", "created_at"}
}

func TestPostgresCardStore_CreateMany(t *testing.T) {
	s, mock, cleanup := newCardStoreWithMock(t)
	defer cleanup()

	contents := []domain.CardContent{
		{Front: "f1", Back: "b1"},
		{Front: "f2", Back: "b2"},
	}

	for range contents {
		mock.ExpectExec(regexp.QuoteMeta("INSERT INTO flashcards")).
			WithArgs(
				sqlmock.AnyArg(), "user-1", "Biology",
				sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg(),
			).
			WillReturnResult(sqlmock.NewResult(0, 1))
	}

	created, err := s.CreateMany(context.Background(), "user-1", "Biology", contents)
	require.NoError(t, err)
	require.Len(t, created, 2)

	ids := make(map[string]bool)
	for i, card := range created {
		assert.NotEmpty(t, card.ID)
		assert.False(t, ids[card.ID], "ids must be unique")
		ids[card.ID] = true
		assert.Equal(t, "user-1", card.UserID)
		assert.Equal(t, "Biology", card.SetName)
		assert.Equal(t, contents[i], card.Content)
	}

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresCardStore_CreateManyRejectsInvalidContent(t *testing.T) {
	s, _, cleanup := newCardStoreWithMock(t)
	defer cleanup()

	_, err := s.CreateMany(context.Background(), "user-1", "Biology",
		[]domain.CardContent{{Front: "", Back: "b"}})
	assert.ErrorIs(t, err, domain.ErrEmptyCardFront)
}

func TestPostgresCardStore_CreateManyStopsOnInsertError(t *testing.T) {
	s, mock, cleanup := newCardStoreWithMock(t)
	defer cleanup()

	insertErr := errors.New("insert failed")
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO flashcards")).
		WillReturnError(insertErr)

	_, err := s.CreateMany(context.Background(), "user-1", "Biology",
		[]domain.CardContent{{Front: "f1", Back: "b1"}, {Front: "f2", Back: "b2"}})
	assert.Error(t, err)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresCardStore_ListBySet(t *testing.T) {
	s, mock, cleanup := newCardStoreWithMock(t)
	defer cleanup()

	now := time.Now().UTC()
	mock.ExpectQuery(regexp.QuoteMeta("SELECT id, user_id, set_name, front, back, created_at")).
		WithArgs("user-1", "Biology").
		WillReturnRows(sqlmock.NewRows(cardColumns()).
			AddRow("id-1", "user-1", "Biology", "f1", "b1", now).
			AddRow("id-2", "user-1", "Biology", "f2", "b2", now))

	cards, err := s.ListBySet(context.Background(), "user-1", "Biology")
	require.NoError(t, err)
	require.Len(t, cards, 2)
	assert.Equal(t, "id-1", cards[0].ID)
	assert.Equal(t, "f2", cards[1].Content.Front)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresCardStore_ListBySetEmpty(t *testing.T) {
	s, mock, cleanup := newCardStoreWithMock(t)
	defer cleanup()

	mock.ExpectQuery(regexp.QuoteMeta("SELECT id, user_id, set_name, front, back, created_at")).
		WithArgs("user-1", "Empty Set").
		WillReturnRows(sqlmock.NewRows(cardColumns()))

	cards, err := s.ListBySet(context.Background(), "user-1", "Empty Set")
	require.NoError(t, err)
	assert.NotNil(t, cards)
	assert.Empty(t, cards)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresCardStore_DeleteBySet(t *testing.T) {
	s, mock, cleanup := newCardStoreWithMock(t)
	defer cleanup()

	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM flashcards")).
		WithArgs("user-1", "Biology").
		WillReturnResult(sqlmock.NewResult(0, 7))

	deleted, err := s.DeleteBySet(context.Background(), "user-1", "Biology")
	require.NoError(t, err)
	assert.Equal(t, int64(7), deleted)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresCardStore_DeleteBySetZeroRowsIsNotAnError(t *testing.T) {
	s, mock, cleanup := newCardStoreWithMock(t)
	defer cleanup()

	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM flashcards")).
		WithArgs("user-1", "gone").
		WillReturnResult(sqlmock.NewResult(0, 0))

	deleted, err := s.DeleteBySet(context.Background(), "user-1", "gone")
	require.NoError(t, err)
	assert.Equal(t, int64(0), deleted)

	assert.NoError(t, mock.ExpectationsWereMet())
}
