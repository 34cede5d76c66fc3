//go:build integration

package main_test

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	kafkago "github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/require"
	kafkamodule "github.com/testcontainers/testcontainers-go/modules/kafka"
	"go.uber.org/zap"

	"github.com/yatrika/service-planner/internal/application"
	"github.com/yatrika/service-planner/internal/domain/trip"
	"github.com/yatrika/service-planner/internal/events"
	"github.com/yatrika/service-planner/internal/repository"
)

// testInfra holds shared test infrastructure.
type testInfra struct {
	KafkaBrokers []string
	Cleanup      func()
}

// setupKafka starts a Kafka testcontainer and returns its brokers.
func setupKafka(t *testing.T) *testInfra {
	t.Helper()
	ctx := context.Background()

	kafkaContainer, err := kafkamodule.Run(ctx, "confluentinc/confluent-local:7.5.0")
	require.NoError(t, err, "failed to start Kafka container")

	brokers, err := kafkaContainer.Brokers(ctx)
	require.NoError(t, err, "failed to get Kafka brokers")

	return &testInfra{
		KafkaBrokers: brokers,
		Cleanup: func() {
			_ = kafkaContainer.Terminate(context.Background())
		},
	}
}

// stubGeocoder resolves any place to fixed test coordinates.
type stubGeocoder struct{}

func (stubGeocoder) Geocode(_ context.Context, place string) (*trip.Place, error) {
	return &trip.Place{Latitude: 19.076, Longitude: 72.8777, FormattedAddress: place + ", India"}, nil
}

// stubFetcher returns one fixed Default-strategy route.
type stubFetcher struct{}

func (stubFetcher) FetchRoutes(context.Context, string, string, trip.TravelMode) ([]trip.Route, error) {
	return []trip.Route{{
		Summary:        "NH 48",
		DistanceMeters: 148000,
		DurationSecs:   9000,
		DistanceText:   "148 km",
		DurationText:   "2 hours 30 mins",
		Polyline:       "abc",
		Strategy:       "Default",
	}}, nil
}

// stubRenderer produces a minimal map document.
type stubRenderer struct{}

func (stubRenderer) Render(*trip.Place, *trip.Place, []trip.Route) (string, error) {
	return "<html>map</html>", nil
}

// setupPlannerStack wires a planner service publishing to the given brokers.
func setupPlannerStack(t *testing.T, brokers []string, dir string) (*application.PlannerService, *events.Publisher) {
	t.Helper()

	repo, err := repository.NewFileTripRepository(dir)
	require.NoError(t, err)

	publisher := events.NewPublisher(brokers, "service-planner", zap.NewNop())

	svc := application.NewPlannerService(
		stubGeocoder{},
		stubFetcher{},
		trip.NewFlatRateFareStrategy(),
		stubRenderer{},
		repo,
		publisher,
		dir,
		zap.NewNop(),
	)
	return svc, publisher
}

// consumeOneEvent reads messages from the topic until one with the given
// type arrives or the timeout expires.
func consumeOneEvent(t *testing.T, brokers []string, topic, eventType string, timeout time.Duration) *events.CloudEvent {
	t.Helper()

	reader := kafkago.NewReader(kafkago.ReaderConfig{
		Brokers:     brokers,
		Topic:       topic,
		StartOffset: kafkago.FirstOffset,
		MinBytes:    1,
		MaxBytes:    10e6,
	})
	defer func() { _ = reader.Close() }()

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	for {
		msg, err := reader.ReadMessage(ctx)
		require.NoError(t, err, "timed out waiting for %s on %s", eventType, topic)

		var ce events.CloudEvent
		require.NoError(t, json.Unmarshal(msg.Value, &ce))
		if ce.Type == eventType {
			return &ce
		}
	}
}
