package queries

import (
	"context"

	"gorm.io/gorm"
)

// GetProductsQueryHandler retrieves the product catalog from the database.
type GetProductsQueryHandler struct {
	db *gorm.DB
}

// NewGetProductsQueryHandler creates a handler for product catalog queries.
// Requires a GORM database connection for query execution.
func NewGetProductsQueryHandler(db *gorm.DB) GetProductsQueryHandler {
	return GetProductsQueryHandler{db: db}
}

// Handle executes the query to retrieve all products.
// Results are sorted by name for consistent output.
func (h GetProductsQueryHandler) Handle(
	ctx context.Context,
	query GetProductsQuery,
) ([]GetProductsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	products := make([]GetProductsQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			name,
			price
		FROM products
		ORDER BY name, id
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var productResp GetProductsQueryResponse

		err = rows.Scan(
			&productResp.ID,
			&productResp.Name,
			&productResp.Price,
		)
		if err != nil {
			return nil, err
		}

		products = append(products, productResp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return products, nil
}
