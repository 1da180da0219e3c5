package http

// Error is the uniform error payload returned by all endpoints.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// CreatedResponse carries the server-generated identifier of a new aggregate.
type CreatedResponse struct {
	ID string `json:"id"`
}

// NewProduct is the request body for creating a product.
type NewProduct struct {
	Name  string `json:"name"`
	Price int64  `json:"price"`
}

// ChangePrice is the request body for product and menu price changes.
type ChangePrice struct {
	Price int64 `json:"price"`
}

// NewMenuGroup is the request body for creating a menu group.
type NewMenuGroup struct {
	Name string `json:"name"`
}

// NewMenu is the request body for creating a menu.
type NewMenu struct {
	Name        string           `json:"name"`
	Price       int64            `json:"price"`
	MenuGroupID string           `json:"menu_group_id"`
	Displayed   bool             `json:"displayed"`
	Products    []NewMenuProduct `json:"products"`
}

// NewMenuProduct is one product line inside a menu creation request.
type NewMenuProduct struct {
	ProductID string `json:"product_id"`
	Quantity  int64  `json:"quantity"`
}

// NewOrderTable is the request body for creating an order table.
type NewOrderTable struct {
	Name string `json:"name"`
}

// OccupyTable is the request body for seating a party at a table.
type OccupyTable struct {
	NumberOfGuests int `json:"number_of_guests"`
}

// NewOrder is the request body for creating an order. OrderTableID is required
// for dine-in orders, DeliveryAddress for delivery orders.
type NewOrder struct {
	OrderType       string         `json:"order_type"`
	OrderLines      []NewOrderLine `json:"order_lines"`
	OrderTableID    string         `json:"order_table_id,omitempty"`
	DeliveryAddress string         `json:"delivery_address,omitempty"`
}

// NewOrderLine is one menu line inside an order creation request. Price is the
// total the customer saw for the line's menu at ordering time.
type NewOrderLine struct {
	MenuID   string `json:"menu_id"`
	Price    int64  `json:"price"`
	Quantity int64  `json:"quantity"`
}

// UncompletedOrder is one row of the uncompleted orders listing.
type UncompletedOrder struct {
	ID              string  `json:"id"`
	OrderType       string  `json:"order_type"`
	Status          string  `json:"status"`
	OrderTableID    *string `json:"order_table_id,omitempty"`
	DeliveryAddress string  `json:"delivery_address,omitempty"`
}
