package response

import (
	"encoding/json"

	"leather-sandals-store/internal/usecase/queries"

	"github.com/google/uuid"
)

type ProductResponse struct {
	ID    uuid.UUID   `json:"id"`
	Slug  string      `json:"slug"`
	Name  string      `json:"name"`
	Price json.Number `json:"price"`
	Stock int         `json:"stock"`
}

func FromProductViews(views []*queries.ProductView) ([]ProductResponse, error) {
	res := make([]ProductResponse, 0, len(views))
	if err := copyInto(&res, views); err != nil {
		return nil, err
	}
	return res, nil
}
