package models

// OrderCreatedEvent is published to Kafka after an order is committed.
type OrderCreatedEvent struct {
	EventID   string  `json:"event_id"`  // Unique event identifier
	OrderID   int64   `json:"order_id"`  // The created order
	UserID    int64   `json:"user_id"`   // The order's owner
	Total     float64 `json:"total"`     // Order total at purchase prices
	Timestamp int64   `json:"timestamp"` // Unix timestamp (seconds) of creation
}
