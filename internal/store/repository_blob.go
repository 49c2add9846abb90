package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-shop-front/internal/logger"
)

// blobRepository is the SQLite-backed implementation of [BlobRepository].
// It persists every domain collection as an opaque JSON payload in the
// "blobs" table, one row per storage key.
//
// All methods obtain a context-scoped logger via [logger.FromContext] for
// structured tracing of database interactions.
type blobRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewBlobRepository constructs a [BlobRepository] backed by the provided
// database connection and logger.
func NewBlobRepository(db *DB, logger *logger.Logger) BlobRepository {
	logger.Debug().Msg("creating blob repository")
	return &blobRepository{
		db:     db,
		logger: logger,
	}
}

// Read returns the payload stored under key.
//
// Error handling:
//   - No matching row → [ErrKeyNotFound].
//   - Any other driver-level error → wrapped as [ErrExecutingQuery].
func (r *blobRepository) Read(ctx context.Context, key string) ([]byte, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildReadBlobQuery(key)
	if err != nil {
		log.Err(err).Str("func", "*blobRepository.Read").Msg("error building query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var value []byte
	if err = r.db.QueryRowContext(ctx, query, args...).Scan(&value); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrKeyNotFound
		}
		log.Err(err).Str("func", "*blobRepository.Read").Str("key", key).Msg("error reading blob")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return value, nil
}

// Write upserts the payload under key. The previous value, if any, is
// replaced atomically.
func (r *blobRepository) Write(ctx context.Context, key string, value []byte) error {
	log := logger.FromContext(ctx)

	query, args, err := buildWriteBlobQuery(key, value)
	if err != nil {
		log.Err(err).Str("func", "*blobRepository.Write").Msg("error building query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*blobRepository.Write").Str("key", key).Msg("error writing blob")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		log.Err(err).Str("func", "*blobRepository.Write").Msg("error getting affected rows")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return ErrBlobNotSaved
	}

	return nil
}

// Remove deletes the record stored under key. Deleting an absent key is a
// no-op.
func (r *blobRepository) Remove(ctx context.Context, key string) error {
	log := logger.FromContext(ctx)

	query, args, err := buildRemoveBlobQuery(key)
	if err != nil {
		log.Err(err).Str("func", "*blobRepository.Remove").Msg("error building query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = r.db.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).Str("func", "*blobRepository.Remove").Str("key", key).Msg("error removing blob")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

// Clear deletes every record in the store. Used by the factory-reset flow.
func (r *blobRepository) Clear(ctx context.Context) error {
	log := logger.FromContext(ctx)

	query, args, err := buildClearBlobsQuery()
	if err != nil {
		log.Err(err).Str("func", "*blobRepository.Clear").Msg("error building query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = r.db.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).Str("func", "*blobRepository.Clear").Msg("error clearing blobs")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}
