package api

import (
	"net/http"

	resdto "leather-sandals-store/internal/handler/dto/response"
	"leather-sandals-store/internal/handler/httperr"
	"leather-sandals-store/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type ProductHandler struct {
	productQueries queries.ProductQueries
}

func NewProductHandler(productQueries queries.ProductQueries) *ProductHandler {
	return &ProductHandler{productQueries: productQueries}
}

// @Summary List products
// @Description Active catalog products with price and stock
// @Tags products
// @Produce json
// @Success 200 {array} resdto.ProductResponse
// @Router /api/products [get]
func (h *ProductHandler) ListProducts(c *gin.Context) {
	views, err := h.productQueries.ListActive(c.Request.Context())
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}

	res, err := resdto.FromProductViews(views)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}
	c.JSON(http.StatusOK, res)
}
