package outbox

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

const (
	StatusPending = "PENDING"
	StatusSent    = "SENT"
)

const EventOrderPlaced = "ORDER_PLACED"

// Event is a row in the transactional outbox. Rows are written in the
// same transaction as the order they describe and relayed to Kafka by
// the worker.
type Event struct {
	ID        uuid.UUID
	EventType string
	Payload   json.RawMessage
	Status    string
	CreatedAt time.Time
}
