package application

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"go.uber.org/zap"

	"github.com/yatrika/service-planner/internal/domain/apperr"
	"github.com/yatrika/service-planner/internal/domain/trip"
	"github.com/yatrika/service-planner/internal/events"
)

// TextGenerator produces free text from a prompt.
type TextGenerator interface {
	GenerateText(ctx context.Context, prompt string) (string, error)
}

// DocumentWriter paginates raw text into a PDF document.
type DocumentWriter interface {
	WriteDocument(path, title, content string) error
}

const guideTitle = "AI-Generated Travel Insights"

// GuideService turns a persisted trip record into a prose travel guide PDF.
type GuideService struct {
	repo      trip.TripRepository
	generator TextGenerator
	writer    DocumentWriter
	publisher EventPublisher
	guideDir  string
	logger    *zap.Logger
}

// NewGuideService creates a new GuideService writing PDFs into guideDir.
func NewGuideService(
	repo trip.TripRepository,
	generator TextGenerator,
	writer DocumentWriter,
	publisher EventPublisher,
	guideDir string,
	logger *zap.Logger,
) (*GuideService, error) {
	if err := os.MkdirAll(guideDir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create guide directory %s: %w", guideDir, err)
	}
	return &GuideService{
		repo:      repo,
		generator: generator,
		writer:    writer,
		publisher: publisher,
		guideDir:  guideDir,
		logger:    logger,
	}, nil
}

// GenerateGuide reads the trip record at dataFile, asks the text generator
// for a travel guide and writes it as a PDF. Returns the PDF path.
func (s *GuideService) GenerateGuide(ctx context.Context, dataFile string) (string, error) {
	record, err := s.repo.Load(ctx, dataFile)
	if err != nil {
		return "", err
	}
	if len(record.Routes) == 0 {
		return "", apperr.NewValidationError("trip record contains no routes")
	}

	// First by insertion order is the entire main-route selection policy.
	mainRoute := record.Routes[0]
	prompt := buildGuidePrompt(record.Trip, mainRoute)

	text, err := s.generator.GenerateText(ctx, prompt)
	if err != nil {
		return "", err
	}

	pdfPath := filepath.Join(s.guideDir, fmt.Sprintf("Tour_guide_%s.pdf", pathDigest(dataFile)))
	if err := s.writer.WriteDocument(pdfPath, guideTitle, text); err != nil {
		return "", apperr.NewInternalError("failed to generate travel guide PDF", err)
	}

	s.publishGuideGenerated(ctx, dataFile, pdfPath)

	s.logger.Info("travel guide generated",
		zap.String("data_file", dataFile),
		zap.String("pdf_file", pdfPath),
	)
	return pdfPath, nil
}

// ResolveGuidePath maps a requested guide filename (bare or directory
// prefixed) to its location in the guide directory. Returns a not-found
// error if the file does not exist.
func (s *GuideService) ResolveGuidePath(filename string) (string, error) {
	path := filepath.Join(s.guideDir, filepath.Base(filename))
	if _, err := os.Stat(path); err != nil {
		return "", apperr.NewNotFoundError("guide file", filename)
	}
	return path, nil
}

// buildGuidePrompt assembles the travel-guide prompt from the trip metadata
// and the main route.
func buildGuidePrompt(summary trip.TripSummary, mainRoute trip.Route) string {
	fare := mainFareAmount(mainRoute)
	return fmt.Sprintf(`You are an experienced travel guide for India. Create a comprehensive travel guide for a road trip.
The selected route is %s covering %s in %s with estimated fuel cost of Rs %.0f.

Start: %s
End: %s

Please provide:
1. Route Overview
2. Major Stopovers
3. Cultural Highlights
4. Food Recommendations
5. Safety & Travel Tips
6. Seasonal Considerations
7. Budget Breakdown
8. Photography Spots

Make it engaging, structured, and easy to read with short paragraphs.`,
		mainRoute.Strategy, mainRoute.DistanceText, mainRoute.DurationText, fare,
		summary.Start, summary.End)
}

// mainFareAmount picks the fare amount from the route's fare entries,
// preferring the car rate, then the bike rate. Modes without fares yield 0.
func mainFareAmount(r trip.Route) float64 {
	if r.FareInfo == nil {
		return 0
	}
	if fare, ok := r.FareInfo.Fares["personal_car"]; ok {
		return fare.Amount
	}
	if fare, ok := r.FareInfo.Fares["personal_bike"]; ok {
		return fare.Amount
	}
	return 0
}

// pathDigest derives a short stable identifier from the data file path.
func pathDigest(path string) string {
	sum := sha256.Sum256([]byte(path))
	return hex.EncodeToString(sum[:8])
}

func (s *GuideService) publishGuideGenerated(ctx context.Context, dataFile, pdfPath string) {
	evt := events.GuideGeneratedEvent{
		DataFile:   dataFile,
		PDFFile:    pdfPath,
		OccurredAt: time.Now().UTC(),
	}
	if err := s.publisher.Publish(ctx, events.TopicTripEvents, events.GuideGenerated, dataFile, evt); err != nil {
		s.logger.Error("failed to publish guide generated event",
			zap.String("data_file", dataFile),
			zap.Error(err),
		)
	}
}
