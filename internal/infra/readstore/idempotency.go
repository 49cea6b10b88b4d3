package readstore

import (
	"context"
	"log/slog"

	"leather-sandals-store/internal/infra"
	"leather-sandals-store/internal/infra/pgquery"
	"leather-sandals-store/internal/pkg/pgconv"
	"leather-sandals-store/internal/usecase/shared"

	"github.com/google/uuid"
)

type IdempotencyReadQueries interface {
	GetIdempotencyKey(ctx context.Context, db pgquery.DBTX, key, userID uuid.UUID) (pgquery.IdempotencyKeys, error)
}

type IdempotencyReadStore struct {
	queries IdempotencyReadQueries
	db      pgquery.DBTX
	logger  *slog.Logger
}

func NewIdempotencyReadStore(queries IdempotencyReadQueries, db pgquery.DBTX, logger *slog.Logger) *IdempotencyReadStore {
	return &IdempotencyReadStore{
		queries: queries,
		db:      db,
		logger:  logger,
	}
}

// Get returns expired records as well; the caller decides whether to reclaim.
func (r *IdempotencyReadStore) Get(ctx context.Context, key uuid.UUID, userID uuid.UUID) (*shared.IdempotencyRecord, error) {
	row, err := r.queries.GetIdempotencyKey(ctx, r.db, key, userID)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr(r.logger, infra.KindNotFound, "idempotency key not found", err)
		}
		return nil, infra.WrapRepoErr(r.logger, infra.KindDBFailure, "failed to get idempotency key", err)
	}

	return &shared.IdempotencyRecord{
		Key:           row.Key,
		UserID:        row.UserID,
		Status:        row.Status,
		RequestHash:   row.RequestHash,
		ResultOrderID: pgconv.UUIDPtrFromPgtype(row.ResultOrderID),
		ExpiresAt:     pgconv.TimeFromPgtype(row.ExpiresAt),
	}, nil
}
