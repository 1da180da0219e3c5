// Package kitchenriders requests couriers from the KitchenRiders delivery service.
package kitchenriders

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"restaurant/internal/core/domain/model/order"
)

// deliveryRequest is the wire format of a courier dispatch request.
type deliveryRequest struct {
	OrderID         string `json:"order_id"`
	Amount          int64  `json:"amount"`
	DeliveryAddress string `json:"delivery_address"`
}

// Client requests a courier for a delivery order.
type Client struct {
	httpClient *http.Client
	baseURL    string
}

// NewClient creates a client against the KitchenRiders endpoint.
func NewClient(baseURL string, timeout time.Duration) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: timeout},
		baseURL:    strings.TrimSuffix(baseURL, "/"),
	}
}

// Dispatch requests a courier for the order. The order's line item total and
// delivery address are forwarded so the rider service can price the trip.
func (c *Client) Dispatch(ctx context.Context, aggregate *order.Order) error {
	total, err := aggregate.LineItems().Total()
	if err != nil {
		return err
	}

	payload, err := json.Marshal(deliveryRequest{
		OrderID:         aggregate.ID().String(),
		Amount:          total.Amount(),
		DeliveryAddress: aggregate.DeliveryAddress(),
	})
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		c.baseURL+"/deliveries", bytes.NewReader(payload))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("delivery request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return fmt.Errorf("delivery service returned status %d", resp.StatusCode)
	}

	return nil
}
