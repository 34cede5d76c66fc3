package events

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Topic and event type names for trip lifecycle events.
const (
	TopicTripEvents = "trip.events"

	TripPlanned    = "trip.planned"
	GuideGenerated = "guide.generated"
)

// CloudEvent is the envelope published to Kafka for every event.
type CloudEvent struct {
	ID     string          `json:"id"`
	Source string          `json:"source"`
	Type   string          `json:"type"`
	Time   time.Time       `json:"time"`
	Data   json.RawMessage `json:"data"`
}

// NewCloudEvent wraps data in a CloudEvent envelope.
func NewCloudEvent(source, eventType string, data any) (*CloudEvent, error) {
	payload, err := json.Marshal(data)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal event data: %w", err)
	}
	return &CloudEvent{
		ID:     uuid.NewString(),
		Source: source,
		Type:   eventType,
		Time:   time.Now().UTC(),
		Data:   payload,
	}, nil
}

// ParseData unmarshals the event payload into out.
func (e *CloudEvent) ParseData(out any) error {
	return json.Unmarshal(e.Data, out)
}

// TripPlannedEvent is published after a trip is planned and its artifacts written.
type TripPlannedEvent struct {
	TripID      string    `json:"trip_id"`
	Start       string    `json:"start"`
	End         string    `json:"end"`
	Mode        string    `json:"mode"`
	RoutesFound int       `json:"routes_found"`
	DataFile    string    `json:"data_file"`
	MapFile     string    `json:"map_file"`
	OccurredAt  time.Time `json:"occurred_at"`
}

// GuideGeneratedEvent is published after a travel guide PDF is produced.
type GuideGeneratedEvent struct {
	DataFile   string    `json:"data_file"`
	PDFFile    string    `json:"pdf_file"`
	OccurredAt time.Time `json:"occurred_at"`
}
