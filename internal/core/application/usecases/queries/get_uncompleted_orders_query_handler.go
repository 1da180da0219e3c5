package queries

import (
	"context"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/model/order"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetUncompletedOrdersQueryHandler retrieves in-progress orders from the database.
// Filters out completed orders to provide active workload visibility.
type GetUncompletedOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetUncompletedOrdersQueryHandler creates a handler for in-progress order queries.
// Requires a GORM database connection for query execution.
func NewGetUncompletedOrdersQueryHandler(db *gorm.DB) GetUncompletedOrdersQueryHandler {
	return GetUncompletedOrdersQueryHandler{db: db}
}

// Handle executes the query to retrieve all uncompleted orders.
// Results are sorted by order ID for consistent output.
func (h GetUncompletedOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetUncompletedOrdersQuery,
) ([]GetUncompletedOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	orders := make([]GetUncompletedOrdersQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			order_type,
			status,
			table_id,
			delivery_address
		FROM orders
		WHERE status != ?
		ORDER BY id
	`, order.Completed).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var orderResp GetUncompletedOrdersQueryResponse
		var id uuid.UUID
		var orderType, status int
		var tableID uuid.NullUUID
		var deliveryAddress string

		err = rows.Scan(
			&id,
			&orderType,
			&status,
			&tableID,
			&deliveryAddress,
		)
		if err != nil {
			return nil, err
		}

		orderID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		orderResp.ID = orderID
		orderResp.OrderType = order.Type(orderType)
		orderResp.Status = order.Status(status)
		orderResp.DeliveryAddress = deliveryAddress

		if tableID.Valid {
			tID, tErr := kernel.UUIDFromBytes(tableID.UUID[:])
			if tErr != nil {
				return nil, tErr
			}
			orderResp.TableID = &tID
		}

		orders = append(orders, orderResp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return orders, nil
}
