package repository

import (
	"context"
	"log/slog"
	"time"

	"leather-sandals-store/internal/infra"
	"leather-sandals-store/internal/infra/pgquery"
	"leather-sandals-store/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type IdempotencyWriteQueries interface {
	TryInsertIdempotencyKey(ctx context.Context, db pgquery.DBTX, arg pgquery.TryInsertIdempotencyKeyParams) (int64, error)
	UpdateIdempotencyKeyCompleted(ctx context.Context, db pgquery.DBTX, arg pgquery.UpdateIdempotencyKeyCompletedParams) (int64, error)
	ClaimExpiredIdempotencyKey(ctx context.Context, db pgquery.DBTX, arg pgquery.ClaimExpiredIdempotencyKeyParams) (int64, error)
	ReleaseIdempotencyKey(ctx context.Context, db pgquery.DBTX, key, userID uuid.UUID) error
	DeleteExpiredIdempotencyKeys(ctx context.Context, db pgquery.DBTX) (int64, error)
}

type IdempotencyRepository struct {
	queries IdempotencyWriteQueries
	db      pgquery.DBTX
	logger  *slog.Logger
}

func NewIdempotencyRepository(queries IdempotencyWriteQueries, db pgquery.DBTX, logger *slog.Logger) *IdempotencyRepository {
	return &IdempotencyRepository{
		queries: queries,
		db:      db,
		logger:  logger,
	}
}

// TryInsert reports whether this call created the key.
func (r *IdempotencyRepository) TryInsert(ctx context.Context, tx pgquery.DBTX, key uuid.UUID, userID uuid.UUID, endpoint, requestHash string, expiresAt time.Time) (bool, error) {
	params := pgquery.TryInsertIdempotencyKeyParams{
		Key:         key,
		UserID:      userID,
		Endpoint:    endpoint,
		RequestHash: requestHash,
		ExpiresAt:   pgconv.TimeToPgtype(expiresAt),
	}

	n, err := r.queries.TryInsertIdempotencyKey(ctx, tx, params)
	if err != nil {
		return false, infra.WrapRepoErr(r.logger, infra.KindDBFailure, "failed to try insert idempotency key", err)
	}

	return n == 1, nil
}

func (r *IdempotencyRepository) UpdateStatusCompleted(ctx context.Context, tx pgquery.DBTX, key uuid.UUID, userID uuid.UUID, responseBodyHash string, resultOrderID uuid.UUID) error {
	params := pgquery.UpdateIdempotencyKeyCompletedParams{
		Key:              key,
		UserID:           userID,
		ResponseBodyHash: pgconv.StringToPgtype(responseBodyHash),
		ResultOrderID:    pgconv.UUIDToPgtype(resultOrderID),
	}

	n, err := r.queries.UpdateIdempotencyKeyCompleted(ctx, tx, params)
	if err != nil {
		return infra.WrapRepoErr(r.logger, infra.KindDBFailure, "failed to update idempotency key status", err)
	}
	if n == 0 {
		return infra.WrapRepoErr(r.logger, infra.KindConflict, "idempotency key is no longer processing", nil)
	}

	return nil
}

func (r *IdempotencyRepository) ClaimExpiredIdempotencyKey(ctx context.Context, tx pgquery.DBTX, key, userID uuid.UUID, requestHash string, expiresAt time.Time) (int64, error) {
	n, err := r.queries.ClaimExpiredIdempotencyKey(ctx, tx, pgquery.ClaimExpiredIdempotencyKeyParams{
		Key:         key,
		UserID:      userID,
		RequestHash: requestHash,
		ExpiresAt:   pgconv.TimeToPgtype(expiresAt),
	})
	if err != nil {
		return 0, infra.WrapRepoErr(r.logger, infra.KindDBFailure, "failed to claim expired idempotency key", err)
	}
	return n, nil
}

// Release drops a processing key so the client can retry with it.
func (r *IdempotencyRepository) Release(ctx context.Context, tx pgquery.DBTX, key, userID uuid.UUID) error {
	if err := r.queries.ReleaseIdempotencyKey(ctx, tx, key, userID); err != nil {
		return infra.WrapRepoErr(r.logger, infra.KindDBFailure, "failed to release idempotency key", err)
	}
	return nil
}

func (r *IdempotencyRepository) DeleteExpired(ctx context.Context) (int64, error) {
	count, err := r.queries.DeleteExpiredIdempotencyKeys(ctx, r.db)
	if err != nil {
		return 0, infra.WrapRepoErr(r.logger, infra.KindDBFailure, "failed to delete expired idempotency keys", err)
	}

	return count, nil
}
