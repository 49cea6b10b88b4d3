package repository

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"leather-sandals-store/internal/infra"
	"leather-sandals-store/internal/infra/pgquery"
	"leather-sandals-store/internal/pkg/errs"

	"github.com/jackc/pgx/v5/pgtype"
)

// Jobs start queued; the mail worker owns every later status.
const jobStatusQueued = "queued"

var errMalformedJobPayload = errs.New("notification payload is not valid JSON")

type NotificationWriteQueries interface {
	CreateNotificationJob(ctx context.Context, db pgquery.DBTX, arg pgquery.CreateNotificationJobParams) error
}

// NotificationRepository enqueues outbound notifications in the same
// transaction as the order that triggers them.
type NotificationRepository struct {
	queries NotificationWriteQueries
	db      pgquery.DBTX
	logger  *slog.Logger
}

func NewNotificationRepository(queries NotificationWriteQueries, db pgquery.DBTX, logger *slog.Logger) *NotificationRepository {
	return &NotificationRepository{queries: queries, db: db, logger: logger}
}

func (r *NotificationRepository) CreateJob(ctx context.Context, tx pgquery.DBTX, kind, topic string, payload []byte, runAt time.Time) error {
	if !json.Valid(payload) {
		return infra.WrapRepoErr(r.logger, infra.KindDBFailure, "rejected "+topic+" job", errMalformedJobPayload)
	}

	err := r.queries.CreateNotificationJob(ctx, tx, pgquery.CreateNotificationJobParams{
		Kind:    kind,
		Topic:   topic,
		Payload: payload,
		RunAt:   pgtype.Timestamptz{Time: runAt.UTC(), Valid: true},
		Status:  jobStatusQueued,
	})
	if err != nil {
		return infra.WrapRepoErr(r.logger, infra.KindDBFailure, "failed to enqueue "+topic+" job", err)
	}
	return nil
}
