package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	"github.com/brianhe1/smartcards-ai/internal/domain"
	"github.com/brianhe1/smartcards-ai/internal/platform/logger"
	"github.com/brianhe1/smartcards-ai/internal/store"
)

// SetService provides the flashcard-set operations of the synchronization
// protocol: listing the descriptor index, saving a new set with its cards,
// reading a set's cards, and deleting a set.
type SetService interface {
	// ListSets returns the user's ordered set descriptors, creating an
	// empty record first if the user has none.
	ListSets(ctx context.Context, userID string) ([]domain.SetDescriptor, error)

	// SaveSet persists a named set and its cards atomically: the descriptor
	// append and every card insert commit together or not at all. Returns
	// store.ErrDuplicateName when a descriptor with that exact name already
	// exists.
	SaveSet(ctx context.Context, userID, name string, cards []domain.CardContent) ([]domain.Flashcard, error)

	// GetCards returns every card document in the named set, in the store's
	// default order. An empty slice is a valid result.
	GetCards(ctx context.Context, userID, name string) ([]domain.Flashcard, error)

	// DeleteSet removes the named set's descriptor and all of its card
	// documents in a single transaction. Deleting a name with no descriptor
	// is a no-op; a missing record yields store.ErrUserRecordMissing.
	DeleteSet(ctx context.Context, userID, name string) error
}

// setServiceImpl implements the SetService interface.
type setServiceImpl struct {
	db      *sql.DB
	records store.UserRecordStore
	cards   store.CardStore
	logger  *slog.Logger
}

// Ensure setServiceImpl implements the SetService interface
var _ SetService = (*setServiceImpl)(nil)

// NewSetService creates a new SetService.
// It returns an error if any of the required dependencies are nil.
func NewSetService(
	db *sql.DB,
	records store.UserRecordStore,
	cards store.CardStore,
	logger *slog.Logger,
) (SetService, error) {
	if db == nil {
		return nil, errors.New("db cannot be nil")
	}
	if records == nil {
		return nil, errors.New("records store cannot be nil")
	}
	if cards == nil {
		return nil, errors.New("cards store cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &setServiceImpl{
		db:      db,
		records: records,
		cards:   cards,
		logger:  logger.With(slog.String("component", "set_service")),
	}, nil
}

// ListSets implements SetService.ListSets
func (s *setServiceImpl) ListSets(ctx context.Context, userID string) ([]domain.SetDescriptor, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	record, err := s.records.Ensure(ctx, userID)
	if err != nil {
		log.Error("failed to load user record",
			slog.String("error", err.Error()),
			slog.String("user_id", userID))
		return nil, NewSetServiceError("list_sets", "failed to load user record", err)
	}

	log.Debug("listed flashcard sets",
		slog.String("user_id", userID),
		slog.Int("set_count", len(record.Sets)))
	return record.Sets, nil
}

// SaveSet implements SetService.SaveSet
func (s *setServiceImpl) SaveSet(
	ctx context.Context,
	userID, name string,
	cards []domain.CardContent,
) ([]domain.Flashcard, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if name == "" {
		return nil, NewSetServiceError("save_set", "set name cannot be empty", domain.ErrEmptySetName)
	}
	for _, c := range cards {
		if err := c.Validate(); err != nil {
			return nil, NewSetServiceError("save_set", "invalid card content", err)
		}
	}

	var saved []domain.Flashcard
	err := store.RunInTransaction(
		ctx,
		s.db,
		func(ctx context.Context, tx *sql.Tx) error {
			txRecords := s.records.WithTx(tx)
			txCards := s.cards.WithTx(tx)

			record, err := txRecords.Ensure(ctx, userID)
			if err != nil {
				log.Error("failed to ensure user record in transaction",
					slog.String("error", err.Error()),
					slog.String("user_id", userID))
				return NewSetServiceError("save_set", "failed to load user record", err)
			}

			// The descriptor list is the sole authority on which sets
			// exist; the duplicate check is an exact, case-sensitive match
			// against it.
			if record.HasSet(name) {
				return NewSetServiceError("save_set", "set name already exists", store.ErrDuplicateName)
			}

			saved, err = txCards.CreateMany(ctx, userID, name, cards)
			if err != nil {
				log.Error("failed to create cards in transaction",
					slog.String("error", err.Error()),
					slog.String("user_id", userID),
					slog.String("set_name", name))
				return NewSetServiceError("save_set", "failed to save cards", err)
			}

			record.AppendSet(name)
			if err := txRecords.Update(ctx, record); err != nil {
				log.Error("failed to update user record in transaction",
					slog.String("error", err.Error()),
					slog.String("user_id", userID),
					slog.String("set_name", name))
				return NewSetServiceError("save_set", "failed to update user record", err)
			}

			return nil
		},
	)
	if err != nil {
		return nil, err
	}

	log.Info("saved flashcard set",
		slog.String("user_id", userID),
		slog.String("set_name", name),
		slog.Int("card_count", len(saved)))
	return saved, nil
}

// GetCards implements SetService.GetCards
func (s *setServiceImpl) GetCards(ctx context.Context, userID, name string) ([]domain.Flashcard, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	cards, err := s.cards.ListBySet(ctx, userID, name)
	if err != nil {
		log.Error("failed to list cards",
			slog.String("error", err.Error()),
			slog.String("user_id", userID),
			slog.String("set_name", name))
		return nil, NewSetServiceError("get_cards", "failed to list cards", err)
	}

	log.Debug("listed cards",
		slog.String("user_id", userID),
		slog.String("set_name", name),
		slog.Int("card_count", len(cards)))
	return cards, nil
}

// DeleteSet implements SetService.DeleteSet
// The descriptor removal and the card-document deletes commit in one
// transaction, so a failed delete never leaves a dangling descriptor or
// orphaned cards visible.
func (s *setServiceImpl) DeleteSet(ctx context.Context, userID, name string) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	err := store.RunInTransaction(
		ctx,
		s.db,
		func(ctx context.Context, tx *sql.Tx) error {
			txRecords := s.records.WithTx(tx)
			txCards := s.cards.WithTx(tx)

			record, err := txRecords.Get(ctx, userID)
			if err != nil {
				if errors.Is(err, store.ErrUserRecordMissing) {
					return err
				}
				return NewSetServiceError("delete_set", "failed to load user record", err)
			}

			// Deleting a set whose descriptor is already gone is a no-op;
			// repeated deletes of the same name must not fail.
			if !record.RemoveSet(name) {
				log.Debug("no descriptor to delete",
					slog.String("user_id", userID),
					slog.String("set_name", name))
				return nil
			}

			deleted, err := txCards.DeleteBySet(ctx, userID, name)
			if err != nil {
				log.Error("failed to delete cards in transaction",
					slog.String("error", err.Error()),
					slog.String("user_id", userID),
					slog.String("set_name", name))
				return NewSetServiceError("delete_set", "failed to delete cards", err)
			}

			if err := txRecords.Update(ctx, record); err != nil {
				log.Error("failed to update user record in transaction",
					slog.String("error", err.Error()),
					slog.String("user_id", userID),
					slog.String("set_name", name))
				return NewSetServiceError("delete_set", "failed to update user record", err)
			}

			log.Info("deleted flashcard set",
				slog.String("user_id", userID),
				slog.String("set_name", name),
				slog.Int64("cards_deleted", deleted))
			return nil
		},
	)
	if err != nil {
		// Preserve the protocol sentinels for the API layer; everything
		// else is reported as a failed delete.
		if errors.Is(err, store.ErrUserRecordMissing) ||
			errors.Is(err, store.ErrVersionConflict) ||
			errors.Is(err, store.ErrStoreUnavailable) {
			return err
		}
		return fmt.Errorf("%w: %w", store.ErrDeleteFailed, err)
	}

	return nil
}
