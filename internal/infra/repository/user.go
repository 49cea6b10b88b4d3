package repository

import (
	"context"
	"log/slog"

	"leather-sandals-store/internal/domain/user"
	"leather-sandals-store/internal/infra"
	"leather-sandals-store/internal/infra/converter"
	"leather-sandals-store/internal/infra/pgquery"
	"leather-sandals-store/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type UserWriteQueries interface {
	UpdateUserLastLogin(ctx context.Context, db pgquery.DBTX, id uuid.UUID) error
	CreateUser(ctx context.Context, db pgquery.DBTX, arg pgquery.CreateUserParams) (uuid.UUID, error)
}

type UserRepository struct {
	queries UserWriteQueries
	logger  *slog.Logger
}

func NewUserRepository(queries UserWriteQueries, logger *slog.Logger) *UserRepository {
	return &UserRepository{
		queries: queries,
		logger:  logger,
	}
}

func (r *UserRepository) UpdateLastLogin(ctx context.Context, tx pgquery.DBTX, userID uuid.UUID) error {
	err := r.queries.UpdateUserLastLogin(ctx, tx, userID)
	if err != nil {
		return infra.WrapRepoErr(r.logger, infra.KindDBFailure, "failed to update user last login", err)
	}
	return nil
}

func (r *UserRepository) Create(ctx context.Context, tx pgquery.DBTX, u *user.User) (uuid.UUID, error) {
	id, err := r.queries.CreateUser(ctx, tx, converter.UserToCreateParams(u))
	if err != nil {
		if pgconv.IsUniqueViolation(err) {
			return uuid.Nil, infra.WrapRepoErr(r.logger, infra.KindDuplicateKey, "email already registered", err)
		}
		return uuid.Nil, infra.WrapRepoErr(r.logger, infra.KindDBFailure, "failed to create user", err)
	}
	return id, nil
}
