package readstore

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"leather-sandals-store/internal/infra"
	"leather-sandals-store/internal/infra/pgquery"
	"leather-sandals-store/internal/pkg/pgconv"
	"leather-sandals-store/internal/usecase/queries"
)

type UserReadQueries interface {
	FindUserByID(ctx context.Context, db pgquery.DBTX, id uuid.UUID) (pgquery.Users, error)
	FindUserByEmail(ctx context.Context, db pgquery.DBTX, email string) (pgquery.Users, error)
}

type UserReadStore struct {
	queries UserReadQueries
	db      pgquery.DBTX
	logger  *slog.Logger
}

func NewUserReadStore(queries UserReadQueries, db pgquery.DBTX, logger *slog.Logger) *UserReadStore {
	return &UserReadStore{
		queries: queries,
		db:      db,
		logger:  logger,
	}
}

func (r *UserReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.AuthorizedUserView, error) {
	row, err := r.queries.FindUserByID(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr(r.logger, infra.KindNotFound, "user not found", err)
		}
		return nil, infra.WrapRepoErr(r.logger, infra.KindDBFailure, "failed to find user by ID", err)
	}

	return toAuthorizedUserView(row), nil
}

// FindByEmail also returns the password hash for credential checks.
func (r *UserReadStore) FindByEmail(ctx context.Context, email string) (*queries.AuthorizedUserView, string, error) {
	row, err := r.queries.FindUserByEmail(ctx, r.db, email)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, "", infra.WrapRepoErr(r.logger, infra.KindNotFound, "user not found", err)
		}
		return nil, "", infra.WrapRepoErr(r.logger, infra.KindDBFailure, "failed to find user by email", err)
	}

	return toAuthorizedUserView(row), row.PasswordHash, nil
}

func toAuthorizedUserView(row pgquery.Users) *queries.AuthorizedUserView {
	return &queries.AuthorizedUserView{
		ID:       row.ID,
		Email:    row.Email,
		FullName: row.FullName,
		Role:     row.Role,
		IsActive: row.IsActive,
	}
}
