package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/brianhe1/smartcards-ai/internal/domain"
	"github.com/brianhe1/smartcards-ai/internal/mocks"
	"github.com/brianhe1/smartcards-ai/internal/service"
	"github.com/brianhe1/smartcards-ai/internal/store"
)

// setServiceFixture bundles a SetService wired to in-memory stores and a
// sqlmock-backed *sql.DB that drives the transaction boundaries.
type setServiceFixture struct {
	svc     service.SetService
	records *mocks.InMemoryUserRecordStore
	cards   *mocks.InMemoryCardStore
	mock    sqlmock.Sqlmock
	cleanup func()
}

func newSetServiceFixture(t *testing.T) *setServiceFixture {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)

	records := mocks.NewInMemoryUserRecordStore()
	cards := mocks.NewInMemoryCardStore()

	svc, err := service.NewSetService(db, records, cards, nil)
	require.NoError(t, err)

	return &setServiceFixture{
		svc:     svc,
		records: records,
		cards:   cards,
		mock:    mock,
		cleanup: func() { _ = db.Close() },
	}
}

func (f *setServiceFixture) expectCommit() {
	f.mock.ExpectBegin()
	f.mock.ExpectCommit()
}

func (f *setServiceFixture) expectRollback() {
	f.mock.ExpectBegin()
	f.mock.ExpectRollback()
}

func sampleCards() []domain.CardContent {
	return []domain.CardContent{
		{Front: "f1", Back: "b1"},
		{Front: "f2", Back: "b2"},
	}
}

func TestSetService_ListSetsCreatesEmptyRecordOnFirstContact(t *testing.T) {
	f := newSetServiceFixture(t)
	defer f.cleanup()

	sets, err := f.svc.ListSets(context.Background(), "user-1")
	require.NoError(t, err)
	assert.Empty(t, sets)

	// Calling twice never duplicates or loses data
	sets, err = f.svc.ListSets(context.Background(), "user-1")
	require.NoError(t, err)
	assert.Empty(t, sets)
}

func TestSetService_SaveSetThenList(t *testing.T) {
	f := newSetServiceFixture(t)
	defer f.cleanup()
	ctx := context.Background()

	f.expectCommit()
	saved, err := f.svc.SaveSet(ctx, "user-1", "Biology", sampleCards())
	require.NoError(t, err)
	require.Len(t, saved, 2)
	for _, c := range saved {
		assert.NotEmpty(t, c.ID)
		assert.Equal(t, "user-1", c.UserID)
		assert.Equal(t, "Biology", c.SetName)
	}

	sets, err := f.svc.ListSets(ctx, "user-1")
	require.NoError(t, err)
	require.Len(t, sets, 1)
	assert.Equal(t, "Biology", sets[0].Name)

	cards, err := f.svc.GetCards(ctx, "user-1", "Biology")
	require.NoError(t, err)
	assert.Len(t, cards, 2)

	assert.NoError(t, f.mock.ExpectationsWereMet())
}

func TestSetService_SaveSetPreservesDescriptorOrder(t *testing.T) {
	f := newSetServiceFixture(t)
	defer f.cleanup()
	ctx := context.Background()

	names := []string{"zeta", "Alpha", "middle"}
	for _, n := range names {
		f.expectCommit()
		_, err := f.svc.SaveSet(ctx, "user-1", n, sampleCards())
		require.NoError(t, err)
	}

	sets, err := f.svc.ListSets(ctx, "user-1")
	require.NoError(t, err)
	require.Len(t, sets, len(names))
	for i, n := range names {
		assert.Equal(t, n, sets[i].Name, "descriptors keep insertion order")
	}
}

func TestSetService_SaveSetDuplicateName(t *testing.T) {
	f := newSetServiceFixture(t)
	defer f.cleanup()
	ctx := context.Background()

	f.expectCommit()
	_, err := f.svc.SaveSet(ctx, "user-1", "Biology", sampleCards())
	require.NoError(t, err)

	f.expectRollback()
	_, err = f.svc.SaveSet(ctx, "user-1", "Biology", sampleCards())
	assert.ErrorIs(t, err, store.ErrDuplicateName)

	// Nothing was appended or stored by the failed save
	sets, err := f.svc.ListSets(ctx, "user-1")
	require.NoError(t, err)
	assert.Len(t, sets, 1)

	cards, err := f.svc.GetCards(ctx, "user-1", "Biology")
	require.NoError(t, err)
	assert.Len(t, cards, 2)

	assert.NoError(t, f.mock.ExpectationsWereMet())
}

func TestSetService_SaveSetNamesDifferingByCaseAreDistinct(t *testing.T) {
	f := newSetServiceFixture(t)
	defer f.cleanup()
	ctx := context.Background()

	f.expectCommit()
	_, err := f.svc.SaveSet(ctx, "user-1", "Biology", sampleCards())
	require.NoError(t, err)

	f.expectCommit()
	_, err = f.svc.SaveSet(ctx, "user-1", "biology", sampleCards())
	require.NoError(t, err)

	sets, err := f.svc.ListSets(ctx, "user-1")
	require.NoError(t, err)
	assert.Len(t, sets, 2)
}

func TestSetService_SaveSetEmptyName(t *testing.T) {
	f := newSetServiceFixture(t)
	defer f.cleanup()

	_, err := f.svc.SaveSet(context.Background(), "user-1", "", sampleCards())
	assert.ErrorIs(t, err, domain.ErrEmptySetName)
}

func TestSetService_SaveSetInvalidCard(t *testing.T) {
	f := newSetServiceFixture(t)
	defer f.cleanup()

	_, err := f.svc.SaveSet(context.Background(), "user-1", "Biology",
		[]domain.CardContent{{Front: "f", Back: ""}})
	assert.ErrorIs(t, err, domain.ErrEmptyCardBack)
}

func TestSetService_SaveSetRollsBackWhenCardInsertFails(t *testing.T) {
	f := newSetServiceFixture(t)
	defer f.cleanup()
	ctx := context.Background()

	f.cards.CreateManyErr = errors.New("insert failed")
	f.expectRollback()

	_, err := f.svc.SaveSet(ctx, "user-1", "Biology", sampleCards())
	assert.Error(t, err)

	// The descriptor list was not updated
	f.cards.CreateManyErr = nil
	sets, err := f.svc.ListSets(ctx, "user-1")
	require.NoError(t, err)
	assert.Empty(t, sets)

	assert.NoError(t, f.mock.ExpectationsWereMet())
}

func TestSetService_SaveSetVersionConflictSurfaces(t *testing.T) {
	f := newSetServiceFixture(t)
	defer f.cleanup()

	f.records.UpdateErr = store.ErrVersionConflict
	f.expectRollback()

	_, err := f.svc.SaveSet(context.Background(), "user-1", "Biology", sampleCards())
	assert.ErrorIs(t, err, store.ErrVersionConflict)

	assert.NoError(t, f.mock.ExpectationsWereMet())
}

func TestSetService_GetCardsUnknownSetIsEmpty(t *testing.T) {
	f := newSetServiceFixture(t)
	defer f.cleanup()

	cards, err := f.svc.GetCards(context.Background(), "user-1", "never saved")
	require.NoError(t, err)
	assert.Empty(t, cards)
}

func TestSetService_DeleteSet(t *testing.T) {
	f := newSetServiceFixture(t)
	defer f.cleanup()
	ctx := context.Background()

	f.expectCommit()
	_, err := f.svc.SaveSet(ctx, "user-1", "Biology", sampleCards())
	require.NoError(t, err)

	f.expectCommit()
	require.NoError(t, f.svc.DeleteSet(ctx, "user-1", "Biology"))

	sets, err := f.svc.ListSets(ctx, "user-1")
	require.NoError(t, err)
	assert.Empty(t, sets)

	cards, err := f.svc.GetCards(ctx, "user-1", "Biology")
	require.NoError(t, err)
	assert.Empty(t, cards)

	assert.NoError(t, f.mock.ExpectationsWereMet())
}

func TestSetService_DeleteSetIsIdempotentForMissingDescriptor(t *testing.T) {
	f := newSetServiceFixture(t)
	defer f.cleanup()
	ctx := context.Background()

	f.expectCommit()
	_, err := f.svc.SaveSet(ctx, "user-1", "Biology", sampleCards())
	require.NoError(t, err)

	f.expectCommit()
	require.NoError(t, f.svc.DeleteSet(ctx, "user-1", "Biology"))

	// Second delete of the same name succeeds without effect
	f.expectCommit()
	require.NoError(t, f.svc.DeleteSet(ctx, "user-1", "Biology"))

	assert.NoError(t, f.mock.ExpectationsWereMet())
}

func TestSetService_DeleteSetMissingRecord(t *testing.T) {
	f := newSetServiceFixture(t)
	defer f.cleanup()

	f.expectRollback()
	err := f.svc.DeleteSet(context.Background(), "nobody", "Biology")
	assert.ErrorIs(t, err, store.ErrUserRecordMissing)

	assert.NoError(t, f.mock.ExpectationsWereMet())
}

func TestSetService_DeleteSetWrapsUnexpectedErrors(t *testing.T) {
	f := newSetServiceFixture(t)
	defer f.cleanup()
	ctx := context.Background()

	f.expectCommit()
	_, err := f.svc.SaveSet(ctx, "user-1", "Biology", sampleCards())
	require.NoError(t, err)

	f.cards.DeleteErr = errors.New("delete exploded")
	f.expectRollback()

	err = f.svc.DeleteSet(ctx, "user-1", "Biology")
	assert.ErrorIs(t, err, store.ErrDeleteFailed)

	// Rollback means the set is still intact
	f.cards.DeleteErr = nil
	sets, err := f.svc.ListSets(ctx, "user-1")
	require.NoError(t, err)
	assert.Len(t, sets, 1)

	assert.NoError(t, f.mock.ExpectationsWereMet())
}

func TestSetService_DeleteSetOfOneUserLeavesOthersAlone(t *testing.T) {
	f := newSetServiceFixture(t)
	defer f.cleanup()
	ctx := context.Background()

	f.expectCommit()
	_, err := f.svc.SaveSet(ctx, "user-1", "Shared Name", sampleCards())
	require.NoError(t, err)

	f.expectCommit()
	_, err = f.svc.SaveSet(ctx, "user-2", "Shared Name", sampleCards())
	require.NoError(t, err)

	f.expectCommit()
	require.NoError(t, f.svc.DeleteSet(ctx, "user-1", "Shared Name"))

	sets, err := f.svc.ListSets(ctx, "user-2")
	require.NoError(t, err)
	require.Len(t, sets, 1)

	cards, err := f.svc.GetCards(ctx, "user-2", "Shared Name")
	require.NoError(t, err)
	assert.Len(t, cards, 2)
}

func TestNewSetService_NilDependencies(t *testing.T) {
	db, _, err := sqlmock.New()
	require.NoError(t, err)
	defer func() { _ = db.Close() }()

	records := mocks.NewInMemoryUserRecordStore()
	cards := mocks.NewInMemoryCardStore()

	_, err = service.NewSetService(nil, records, cards, nil)
	assert.Error(t, err)

	_, err = service.NewSetService(db, nil, cards, nil)
	assert.Error(t, err)

	_, err = service.NewSetService(db, records, nil, nil)
	assert.Error(t, err)
}
