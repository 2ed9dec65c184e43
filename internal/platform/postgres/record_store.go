package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/brianhe1/smartcards-ai/internal/domain"
	"github.com/brianhe1/smartcards-ai/internal/platform/logger"
	"github.com/brianhe1/smartcards-ai/internal/store"
)

// PostgresUserRecordStore implements the store.UserRecordStore interface
// using a PostgreSQL database as the storage backend. The descriptor list
// is stored as a JSONB array so insertion order survives round-trips
// verbatim, mirroring the document-store layout it replaces.
type PostgresUserRecordStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewPostgresUserRecordStore creates a new PostgreSQL implementation of the
// UserRecordStore interface. It accepts a database connection or transaction
// that should be initialized and managed by the caller.
// If logger is nil, a default logger will be used.
func NewPostgresUserRecordStore(db store.DBTX, logger *slog.Logger) *PostgresUserRecordStore {
	if db == nil {
		panic("db cannot be nil")
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &PostgresUserRecordStore{
		db:     db,
		logger: logger.With(slog.String("component", "user_record_store")),
	}
}

// Ensure PostgresUserRecordStore implements store.UserRecordStore interface
var _ store.UserRecordStore = (*PostgresUserRecordStore)(nil)

// WithTx implements store.UserRecordStore.WithTx
func (s *PostgresUserRecordStore) WithTx(tx *sql.Tx) store.UserRecordStore {
	return &PostgresUserRecordStore{
		db:     tx,
		logger: s.logger,
	}
}

// Ensure implements store.UserRecordStore.Ensure
// The insert-if-absent and the read are two statements, but ON CONFLICT DO
// NOTHING makes the pair idempotent under concurrent callers: whichever
// insert wins, both read the same record.
func (s *PostgresUserRecordStore) Ensure(ctx context.Context, userID string) (*domain.UserRecord, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	record, err := domain.NewUserRecord(userID)
	if err != nil {
		return nil, err
	}

	query := `
		INSERT INTO user_records (user_id, set_names, version, created_at, updated_at)
		VALUES ($1, '[]'::jsonb, 0, $2, $3)
		ON CONFLICT (user_id) DO NOTHING
	`
	if _, err := s.db.ExecContext(ctx, query, userID, record.CreatedAt, record.UpdatedAt); err != nil {
		log.Error("failed to initialize user record",
			slog.String("error", err.Error()),
			slog.String("user_id", userID))
		return nil, MapError(err)
	}

	got, err := s.Get(ctx, userID)
	if err != nil {
		return nil, err
	}

	log.Debug("user record ensured",
		slog.String("user_id", userID),
		slog.Int("set_count", len(got.Sets)))
	return got, nil
}

// Get implements store.UserRecordStore.Get
// Returns store.ErrUserRecordMissing if no record exists for userID.
func (s *PostgresUserRecordStore) Get(ctx context.Context, userID string) (*domain.UserRecord, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		SELECT user_id, set_names, version, created_at, updated_at
		FROM user_records
		WHERE user_id = $1
	`

	var record domain.UserRecord
	var rawSets []byte

	err := s.db.QueryRowContext(ctx, query, userID).Scan(
		&record.UserID,
		&rawSets,
		&record.Version,
		&record.CreatedAt,
		&record.UpdatedAt,
	)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			log.Debug("user record not found", slog.String("user_id", userID))
			return nil, store.ErrUserRecordMissing
		}
		log.Error("failed to get user record",
			slog.String("error", err.Error()),
			slog.String("user_id", userID))
		return nil, MapError(err)
	}

	if err := json.Unmarshal(rawSets, &record.Sets); err != nil {
		log.Error("failed to decode descriptor list",
			slog.String("error", err.Error()),
			slog.String("user_id", userID))
		return nil, fmt.Errorf("failed to decode descriptor list: %w", err)
	}
	if record.Sets == nil {
		record.Sets = []domain.SetDescriptor{}
	}

	return &record, nil
}

// Update implements store.UserRecordStore.Update
// The write is conditioned on the version the caller read; zero rows
// affected means a concurrent writer committed first.
func (s *PostgresUserRecordStore) Update(ctx context.Context, record *domain.UserRecord) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := record.Validate(); err != nil {
		log.Warn("user record validation failed during update",
			slog.String("error", err.Error()),
			slog.String("user_id", record.UserID))
		return err
	}

	rawSets, err := json.Marshal(record.Sets)
	if err != nil {
		return fmt.Errorf("failed to encode descriptor list: %w", err)
	}

	query := `
		UPDATE user_records
		SET set_names = $1, version = version + 1, updated_at = $2
		WHERE user_id = $3 AND version = $4
	`

	result, err := s.db.ExecContext(
		ctx,
		query,
		rawSets,
		time.Now().UTC(),
		record.UserID,
		record.Version,
	)

	if err != nil {
		log.Error("failed to update user record",
			slog.String("error", err.Error()),
			slog.String("user_id", record.UserID))
		return MapError(err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		log.Error("failed to get rows affected",
			slog.String("error", err.Error()),
			slog.String("user_id", record.UserID))
		return err
	}

	if rowsAffected == 0 {
		log.Warn("user record revision changed under writer",
			slog.String("user_id", record.UserID),
			slog.Int64("expected_version", record.Version))
		return store.ErrVersionConflict
	}

	record.Version++

	log.Debug("user record updated",
		slog.String("user_id", record.UserID),
		slog.Int("set_count", len(record.Sets)),
		slog.Int64("version", record.Version))
	return nil
}
