package postgres

import (
	"context"
	"database/sql"
	"log/slog"
	"time"

	gonanoid "github.com/matoous/go-nanoid/v2"

	"github.com/brianhe1/smartcards-ai/internal/domain"
	"github.com/brianhe1/smartcards-ai/internal/platform/logger"
	"github.com/brianhe1/smartcards-ai/internal/store"
)

// PostgresCardStore implements the store.CardStore interface
// using a PostgreSQL database as the storage backend. Each row is one
// flashcard document in a (user, set) sub-collection.
type PostgresCardStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewPostgresCardStore creates a new PostgreSQL implementation of the
// CardStore interface. It accepts a database connection or transaction that
// should be initialized and managed by the caller.
// If logger is nil, a default logger will be used.
func NewPostgresCardStore(db store.DBTX, logger *slog.Logger) *PostgresCardStore {
	if db == nil {
		panic("db cannot be nil")
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &PostgresCardStore{
		db:     db,
		logger: logger.With(slog.String("component", "card_store")),
	}
}

// Ensure PostgresCardStore implements store.CardStore interface
var _ store.CardStore = (*PostgresCardStore)(nil)

// WithTx implements store.CardStore.WithTx
func (s *PostgresCardStore) WithTx(tx *sql.Tx) store.CardStore {
	return &PostgresCardStore{
		db:     tx,
		logger: s.logger,
	}
}

// CreateMany implements store.CardStore.CreateMany
// Each card gets a freshly assigned opaque id. Run inside the transaction
// that also appends the set's descriptor; the inserts are only atomic as a
// group when the caller wraps them in one.
func (s *PostgresCardStore) CreateMany(
	ctx context.Context,
	userID, setName string,
	cards []domain.CardContent,
) ([]domain.Flashcard, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		INSERT INTO flashcards (id, user_id, set_name, front, back, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`

	created := make([]domain.Flashcard, 0, len(cards))
	for _, content := range cards {
		card := domain.Flashcard{
			UserID:    userID,
			SetName:   setName,
			Content:   content,
			CreatedAt: time.Now().UTC(),
		}
		if err := card.Validate(); err != nil {
			log.Warn("card validation failed during create",
				slog.String("error", err.Error()),
				slog.String("user_id", userID),
				slog.String("set_name", setName))
			return nil, err
		}

		id, err := gonanoid.New()
		if err != nil {
			return nil, err
		}
		card.ID = id

		if _, err := s.db.ExecContext(
			ctx,
			query,
			card.ID,
			card.UserID,
			card.SetName,
			card.Content.Front,
			card.Content.Back,
			card.CreatedAt,
		); err != nil {
			log.Error("failed to insert flashcard",
				slog.String("error", err.Error()),
				slog.String("user_id", userID),
				slog.String("set_name", setName))
			return nil, MapError(err)
		}

		created = append(created, card)
	}

	log.Debug("flashcards inserted",
		slog.String("user_id", userID),
		slog.String("set_name", setName),
		slog.Int("count", len(created)))
	return created, nil
}

// ListBySet implements store.CardStore.ListBySet
// No ORDER BY: retrieval follows the store's default order, matching the
// protocol's contract that input order is not persisted.
func (s *PostgresCardStore) ListBySet(
	ctx context.Context,
	userID, setName string,
) ([]domain.Flashcard, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		SELECT id, user_id, set_name, front, back, created_at
		FROM flashcards
		WHERE user_id = $1 AND set_name = $2
	`

	rows, err := s.db.QueryContext(ctx, query, userID, setName)
	if err != nil {
		log.Error("failed to query flashcards",
			slog.String("error", err.Error()),
			slog.String("user_id", userID),
			slog.String("set_name", setName))
		return nil, MapError(err)
	}
	defer func() {
		if err := rows.Close(); err != nil {
			log.Error("failed to close rows", slog.String("error", err.Error()))
		}
	}()

	var cards []domain.Flashcard
	for rows.Next() {
		var card domain.Flashcard
		if err := rows.Scan(
			&card.ID,
			&card.UserID,
			&card.SetName,
			&card.Content.Front,
			&card.Content.Back,
			&card.CreatedAt,
		); err != nil {
			log.Error("failed to scan flashcard row",
				slog.String("error", err.Error()))
			return nil, err
		}
		cards = append(cards, card)
	}

	if err := rows.Err(); err != nil {
		log.Error("error after scanning rows",
			slog.String("error", err.Error()))
		return nil, MapError(err)
	}

	if cards == nil {
		cards = []domain.Flashcard{}
	}

	return cards, nil
}

// DeleteBySet implements store.CardStore.DeleteBySet
// Deleting zero rows is not an error: an empty sub-collection and a missing
// one look the same.
func (s *PostgresCardStore) DeleteBySet(
	ctx context.Context,
	userID, setName string,
) (int64, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		DELETE FROM flashcards
		WHERE user_id = $1 AND set_name = $2
	`

	result, err := s.db.ExecContext(ctx, query, userID, setName)
	if err != nil {
		log.Error("failed to delete flashcards",
			slog.String("error", err.Error()),
			slog.String("user_id", userID),
			slog.String("set_name", setName))
		return 0, MapError(err)
	}

	deleted, err := result.RowsAffected()
	if err != nil {
		log.Error("failed to get rows affected",
			slog.String("error", err.Error()),
			slog.String("user_id", userID))
		return 0, err
	}

	log.Debug("flashcards deleted",
		slog.String("user_id", userID),
		slog.String("set_name", setName),
		slog.Int64("count", deleted))
	return deleted, nil
}
