//go:build unit

package api_test

import (
	"errors"
	"net/http"
	"testing"

	"leather-sandals-store/internal/handler/api"
	resdto "leather-sandals-store/internal/handler/dto/response"
	"leather-sandals-store/internal/pkg/errs"
	"leather-sandals-store/internal/usecase/queries"
	"leather-sandals-store/tests/common/httptest"
	queriesmock "leather-sandals-store/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestListProducts(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name       string
		setupMock  func(m *queriesmock.MockProductQueries)
		wantStatus int
		wantCount  int
	}{
		{
			name: "success: prices keep two decimals",
			setupMock: func(m *queriesmock.MockProductQueries) {
				m.EXPECT().ListActive(gomock.Any()).Return([]*queries.ProductView{
					{ID: uuid.New(), Slug: "klasik-sandalet", Name: "Klasik Deri Sandalet", Price: decimal.RequireFromString("1499.9"), Stock: 12, IsActive: true},
					{ID: uuid.New(), Slug: "bodrum", Name: "Bodrum Sandalet", Price: decimal.NewFromInt(899), Stock: 3, IsActive: true},
				}, nil)
			},
			wantStatus: http.StatusOK,
			wantCount:  2,
		},
		{
			name: "success: empty catalog is an empty list",
			setupMock: func(m *queriesmock.MockProductQueries) {
				m.EXPECT().ListActive(gomock.Any()).Return(nil, nil)
			},
			wantStatus: http.StatusOK,
			wantCount:  0,
		},
		{
			name: "error: store failure",
			setupMock: func(m *queriesmock.MockProductQueries) {
				m.EXPECT().ListActive(gomock.Any()).Return(nil, errs.Mark(errors.New("timeout"), errs.ErrDatabaseOperationFailed))
			},
			wantStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			mockQueries := queriesmock.NewMockProductQueries(ctrl)
			tt.setupMock(mockQueries)

			router := gin.New()
			router.GET("/products", api.NewProductHandler(mockQueries).ListProducts)

			rec := httptest.PerformRequest(t, router, http.MethodGet, "/products", nil, "")

			if tt.wantStatus != http.StatusOK {
				httptest.AssertErrorResponse(t, rec, tt.wantStatus, "Internal server error")
				return
			}
			var res []resdto.ProductResponse
			httptest.AssertSuccessResponse(t, rec, http.StatusOK, &res)
			require.Len(t, res, tt.wantCount)
			if tt.wantCount > 0 {
				assert.Equal(t, "1499.90", res[0].Price.String())
				assert.Equal(t, "899.00", res[1].Price.String())
			}
		})
	}
}
