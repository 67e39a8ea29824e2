package events

import (
	"encoding/json"
	"time"
)

// Entity names carried in invalidation messages.
const (
	EntityPeriod      = "period"
	EntityTransaction = "transaction"
)

// InvalidationMessage tells consumers that a user's cached dashboard is
// stale. It carries only identifiers; consumers re-fetch whatever they
// need from the API.
type InvalidationMessage struct {
	Entity    string    `json:"entity"`
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	Timestamp time.Time `json:"timestamp"`
}

// NewInvalidationMessage creates a message for one created record.
func NewInvalidationMessage(entity, id, userID string) *InvalidationMessage {
	return &InvalidationMessage{
		Entity:    entity,
		ID:        id,
		UserID:    userID,
		Timestamp: time.Now(),
	}
}

// ToJSON converts the message to JSON bytes
func (m *InvalidationMessage) ToJSON() ([]byte, error) {
	return json.Marshal(m)
}

// InvalidationMessageFromJSON creates a message from JSON bytes
func InvalidationMessageFromJSON(data []byte) (*InvalidationMessage, error) {
	var msg InvalidationMessage
	if err := json.Unmarshal(data, &msg); err != nil {
		return nil, err
	}
	return &msg, nil
}
