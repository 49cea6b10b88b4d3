//go:build unit

package repository

import (
	"context"
	"testing"

	"leather-sandals-store/internal/infra"
	"leather-sandals-store/internal/infra/pgquery"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type MockProductWriteQueries struct {
	mock.Mock
}

func (m *MockProductWriteQueries) DecrementProductStock(ctx context.Context, db pgquery.DBTX, id uuid.UUID, quantity int32) (int64, error) {
	args := m.Called(ctx, db, id, quantity)
	return args.Get(0).(int64), args.Error(1)
}

func TestReserveStock(t *testing.T) {
	id := uuid.New()

	tests := []struct {
		name     string
		affected int64
		mockErr  error
		wantKind infra.RepositoryErrorKind
	}{
		{name: "reserved", affected: 1},
		{name: "insufficient stock", affected: 0, wantKind: infra.KindConflict},
		{name: "database error", mockErr: assert.AnError, wantKind: infra.KindDBFailure},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q := new(MockProductWriteQueries)
			q.On("DecrementProductStock", mock.Anything, mock.Anything, id, int32(3)).Return(tt.affected, tt.mockErr)

			repo := NewProductRepository(q, stubDB{}, discardLogger())
			err := repo.ReserveStock(context.Background(), stubDB{}, id, 3)

			if tt.wantKind != "" {
				assert.True(t, infra.IsKind(err, tt.wantKind))
			} else {
				assert.NoError(t, err)
			}
			q.AssertExpectations(t)
		})
	}
}
