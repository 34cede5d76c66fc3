package events

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestCloudEvent_RoundTrip(t *testing.T) {
	evt := TripPlannedEvent{
		TripID:      "abc-123",
		Start:       "Mumbai, Maharashtra, India",
		End:         "Pune, Maharashtra, India",
		Mode:        "DRIVE",
		RoutesFound: 3,
		DataFile:    "data/route_data_abc-123.json",
		MapFile:     "data/routes_map_abc-123.html",
		OccurredAt:  time.Now().UTC().Truncate(time.Second),
	}

	ce, err := NewCloudEvent("service-planner", TripPlanned, evt)
	require.NoError(t, err)
	assert.NotEmpty(t, ce.ID)
	assert.Equal(t, "service-planner", ce.Source)
	assert.Equal(t, TripPlanned, ce.Type)

	var parsed TripPlannedEvent
	require.NoError(t, ce.ParseData(&parsed))
	assert.Equal(t, evt, parsed)
}

func TestPublisher_DisabledWithoutBrokers(t *testing.T) {
	p := NewPublisher(nil, "service-planner", zap.NewNop())

	err := p.Publish(context.Background(), TopicTripEvents, TripPlanned, "key", TripPlannedEvent{})

	assert.NoError(t, err)
	assert.NoError(t, p.Close())
}
