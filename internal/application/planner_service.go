package application

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/yatrika/service-planner/internal/domain/apperr"
	"github.com/yatrika/service-planner/internal/domain/trip"
	"github.com/yatrika/service-planner/internal/events"
)

// Geocoder resolves place names to coordinates and formatted addresses.
type Geocoder interface {
	Geocode(ctx context.Context, place string) (*trip.Place, error)
}

// RouteFetcher queries the directions provider across routing strategies.
type RouteFetcher interface {
	FetchRoutes(ctx context.Context, origin, destination string, mode trip.TravelMode) ([]trip.Route, error)
}

// MapRenderer produces the interactive HTML map document for a trip.
type MapRenderer interface {
	Render(origin, destination *trip.Place, routes []trip.Route) (string, error)
}

// EventPublisher publishes trip lifecycle events, best-effort.
type EventPublisher interface {
	Publish(ctx context.Context, topic, eventType, key string, data any) error
}

// PlanTripRequest holds the data needed to plan a trip.
type PlanTripRequest struct {
	StartPoint    string `json:"start_point" binding:"required"`
	EndPoint      string `json:"end_point" binding:"required"`
	TransportMode string `json:"transport_mode"`
}

// PlanTripResult is the outcome of a successful planning call.
type PlanTripResult struct {
	DataFile    string `json:"data_file"`
	MapFile     string `json:"map_file"`
	RoutesFound int    `json:"routes_found"`
}

// PlannerService orchestrates a planning call: geocode both endpoints,
// fetch route strategies, deduplicate and number, annotate fares, render
// the map and persist the trip record.
type PlannerService struct {
	geocoder  Geocoder
	fetcher   RouteFetcher
	fares     trip.FareStrategy
	renderer  MapRenderer
	repo      trip.TripRepository
	publisher EventPublisher
	outputDir string
	logger    *zap.Logger
}

// NewPlannerService creates a new PlannerService. Map HTML artifacts are
// written into outputDir alongside the trip records.
func NewPlannerService(
	geocoder Geocoder,
	fetcher RouteFetcher,
	fares trip.FareStrategy,
	renderer MapRenderer,
	repo trip.TripRepository,
	publisher EventPublisher,
	outputDir string,
	logger *zap.Logger,
) *PlannerService {
	return &PlannerService{
		geocoder:  geocoder,
		fetcher:   fetcher,
		fares:     fares,
		renderer:  renderer,
		repo:      repo,
		publisher: publisher,
		outputDir: outputDir,
		logger:    logger,
	}
}

// PlanTrip runs the full planning sequence and returns the artifact paths
// and route count. Any step failure aborts the call; artifacts already
// written are not cleaned up.
func (s *PlannerService) PlanTrip(ctx context.Context, req PlanTripRequest) (*PlanTripResult, error) {
	if strings.TrimSpace(req.StartPoint) == "" || strings.TrimSpace(req.EndPoint) == "" {
		return nil, apperr.NewValidationError("start point and end point are required")
	}

	mode, err := trip.ParseTravelMode(req.TransportMode)
	if err != nil {
		return nil, err
	}

	// The two endpoints are independent; geocode them concurrently.
	var origin, destination *trip.Place
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		origin, err = s.geocoder.Geocode(gctx, req.StartPoint)
		return err
	})
	g.Go(func() error {
		var err error
		destination, err = s.geocoder.Geocode(gctx, req.EndPoint)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	routes, err := s.fetcher.FetchRoutes(ctx, origin.FormattedAddress, destination.FormattedAddress, mode)
	if err != nil {
		return nil, err
	}

	routes = trip.Renumber(trip.Deduplicate(routes))
	for i := range routes {
		fareInfo := s.fares.Estimate(routes[i].DistanceMeters, mode)
		routes[i].FareInfo = &fareInfo
	}

	// Per-request token keeps concurrent calls from overwriting each
	// other's artifacts.
	token := uuid.NewString()

	mapHTML, err := s.renderer.Render(origin, destination, routes)
	if err != nil {
		return nil, err
	}
	mapFile := filepath.Join(s.outputDir, fmt.Sprintf("routes_map_%s.html", token))
	if err := os.WriteFile(mapFile, []byte(mapHTML), 0o644); err != nil {
		return nil, apperr.NewInternalError("failed to write map file", err)
	}

	record := trip.NewTripRecord(origin.FormattedAddress, destination.FormattedAddress, mode, routes)
	dataFile, err := s.repo.Save(ctx, record, fmt.Sprintf("route_data_%s.json", token))
	if err != nil {
		return nil, err
	}

	s.publishTripPlanned(ctx, token, record, len(routes), dataFile, mapFile)

	s.logger.Info("trip planned",
		zap.String("start", origin.FormattedAddress),
		zap.String("end", destination.FormattedAddress),
		zap.String("mode", mode.String()),
		zap.Int("routes_found", len(routes)),
	)

	return &PlanTripResult{
		DataFile:    dataFile,
		MapFile:     mapFile,
		RoutesFound: len(routes),
	}, nil
}

func (s *PlannerService) publishTripPlanned(ctx context.Context, token string, record trip.TripRecord, count int, dataFile, mapFile string) {
	evt := events.TripPlannedEvent{
		TripID:      token,
		Start:       record.Trip.Start,
		End:         record.Trip.End,
		Mode:        record.Trip.Mode,
		RoutesFound: count,
		DataFile:    dataFile,
		MapFile:     mapFile,
		OccurredAt:  time.Now().UTC(),
	}
	if err := s.publisher.Publish(ctx, events.TopicTripEvents, events.TripPlanned, token, evt); err != nil {
		s.logger.Error("failed to publish trip planned event",
			zap.String("trip_id", token),
			zap.Error(err),
		)
	}
}
