package pgquery

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type TryInsertIdempotencyKeyParams struct {
	Key         uuid.UUID
	UserID      uuid.UUID
	Endpoint    string
	RequestHash string
	ExpiresAt   pgtype.Timestamptz
}

const tryInsertIdempotencyKey = `
INSERT INTO idempotency_keys (key, user_id, endpoint, request_hash, status, expires_at)
VALUES ($1, $2, $3, $4, 'processing', $5)
ON CONFLICT (key, user_id) DO NOTHING`

func (q *Queries) TryInsertIdempotencyKey(ctx context.Context, db DBTX, arg TryInsertIdempotencyKeyParams) (int64, error) {
	tag, err := db.Exec(ctx, tryInsertIdempotencyKey, arg.Key, arg.UserID, arg.Endpoint, arg.RequestHash, arg.ExpiresAt)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

const getIdempotencyKey = `
SELECT key, user_id, endpoint, request_hash, response_body_hash, status, result_order_id, expires_at, created_at, updated_at
FROM idempotency_keys WHERE key = $1 AND user_id = $2`

func (q *Queries) GetIdempotencyKey(ctx context.Context, db DBTX, key, userID uuid.UUID) (IdempotencyKeys, error) {
	var k IdempotencyKeys
	err := db.QueryRow(ctx, getIdempotencyKey, key, userID).Scan(
		&k.Key, &k.UserID, &k.Endpoint, &k.RequestHash, &k.ResponseBodyHash, &k.Status,
		&k.ResultOrderID, &k.ExpiresAt, &k.CreatedAt, &k.UpdatedAt,
	)
	return k, err
}

type UpdateIdempotencyKeyCompletedParams struct {
	Key              uuid.UUID
	UserID           uuid.UUID
	ResponseBodyHash pgtype.Text
	ResultOrderID    pgtype.UUID
}

const updateIdempotencyKeyCompleted = `
UPDATE idempotency_keys
SET status = 'completed', response_body_hash = $3, result_order_id = $4, updated_at = now()
WHERE key = $1 AND user_id = $2 AND status = 'processing'`

func (q *Queries) UpdateIdempotencyKeyCompleted(ctx context.Context, db DBTX, arg UpdateIdempotencyKeyCompletedParams) (int64, error) {
	tag, err := db.Exec(ctx, updateIdempotencyKeyCompleted, arg.Key, arg.UserID, arg.ResponseBodyHash, arg.ResultOrderID)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

type ClaimExpiredIdempotencyKeyParams struct {
	Key         uuid.UUID
	UserID      uuid.UUID
	RequestHash string
	ExpiresAt   pgtype.Timestamptz
}

const claimExpiredIdempotencyKey = `
UPDATE idempotency_keys
SET status = 'processing', request_hash = $3, response_body_hash = NULL, result_order_id = NULL,
    expires_at = $4, updated_at = now()
WHERE key = $1 AND user_id = $2 AND expires_at < now()`

// ClaimExpiredIdempotencyKey restarts an expired key for a new request.
func (q *Queries) ClaimExpiredIdempotencyKey(ctx context.Context, db DBTX, arg ClaimExpiredIdempotencyKeyParams) (int64, error) {
	tag, err := db.Exec(ctx, claimExpiredIdempotencyKey, arg.Key, arg.UserID, arg.RequestHash, arg.ExpiresAt)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

const releaseIdempotencyKey = `DELETE FROM idempotency_keys WHERE key = $1 AND user_id = $2 AND status = 'processing'`

func (q *Queries) ReleaseIdempotencyKey(ctx context.Context, db DBTX, key, userID uuid.UUID) error {
	_, err := db.Exec(ctx, releaseIdempotencyKey, key, userID)
	return err
}

const deleteExpiredIdempotencyKeys = `DELETE FROM idempotency_keys WHERE expires_at < now()`

func (q *Queries) DeleteExpiredIdempotencyKeys(ctx context.Context, db DBTX) (int64, error) {
	tag, err := db.Exec(ctx, deleteExpiredIdempotencyKeys)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}
