//go:build unit

package repository

import (
	"context"
	"testing"
	"time"

	"leather-sandals-store/internal/infra"
	"leather-sandals-store/internal/infra/pgquery"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type MockNotificationWriteQueries struct {
	mock.Mock
}

func (m *MockNotificationWriteQueries) CreateNotificationJob(ctx context.Context, db pgquery.DBTX, arg pgquery.CreateNotificationJobParams) error {
	return m.Called(ctx, db, arg).Error(0)
}

func TestCreateJob(t *testing.T) {
	istanbul := time.FixedZone("TRT", 3*60*60)
	runAt := time.Date(2024, 6, 1, 15, 0, 0, 0, istanbul)

	tests := []struct {
		name      string
		payload   []byte
		mockErr   error
		wantCall  bool
		wantError bool
	}{
		{name: "queued in UTC", payload: []byte(`{"orderId":"x"}`), wantCall: true},
		{name: "malformed payload never reaches the database", payload: []byte(`{"orderId":`), wantError: true},
		{name: "database error", payload: []byte(`{}`), mockErr: assert.AnError, wantCall: true, wantError: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q := new(MockNotificationWriteQueries)
			if tt.wantCall {
				q.On("CreateNotificationJob", mock.Anything, mock.Anything, mock.MatchedBy(func(p pgquery.CreateNotificationJobParams) bool {
					return p.Kind == "email" &&
						p.Topic == "order_placed" &&
						p.Status == "queued" &&
						p.RunAt.Valid &&
						p.RunAt.Time.Location() == time.UTC &&
						p.RunAt.Time.Equal(runAt)
				})).Return(tt.mockErr)
			}

			repo := NewNotificationRepository(q, stubDB{}, discardLogger())
			err := repo.CreateJob(context.Background(), stubDB{}, "email", "order_placed", tt.payload, runAt)

			if tt.wantError {
				assert.True(t, infra.IsKind(err, infra.KindDBFailure))
			} else {
				assert.NoError(t, err)
			}
			q.AssertExpectations(t)
		})
	}
}
