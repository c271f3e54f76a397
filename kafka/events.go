package kafka

import (
	"time"

	cart "github.com/tair/wastesmart-storefront/internal/cart/domain"
)

// CheckoutCompletedEvent is the message body on TopicCheckoutCompleted
type CheckoutCompletedEvent struct {
	EventID   string      `json:"event_id"`
	EventType string      `json:"event_type"`
	SessionID string      `json:"session_id"`
	UserID    int64       `json:"user_id"`
	OrderIDs  []int64     `json:"order_ids"`
	Lines     []cart.Line `json:"lines"`
	Total     float64     `json:"total"`
	Timestamp time.Time   `json:"timestamp"`
}

// Event types
const (
	EventTypeCheckoutCompleted = "checkout.completed"
)

// Kafka topics
const (
	TopicCheckoutCompleted = "storefront-checkout"
)
