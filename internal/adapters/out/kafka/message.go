// Package kafka publishes and consumes product price change events.
// Events are keyed by product ID so changes to the same product stay ordered
// within a partition. Consumers treat the payload as a notification only and
// re-read the stored price before acting on it.
package kafka

import "time"

// priceChangedMessage is the wire format of a product price change event.
type priceChangedMessage struct {
	ProductID  string    `json:"product_id"`
	NewPrice   int64     `json:"new_price"`
	OccurredAt time.Time `json:"occurred_at"`
}
