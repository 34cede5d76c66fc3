package trip

import "context"

// TripRepository defines the persistence contract for trip records.
// The persisted form never contains polyline data.
type TripRepository interface {
	// Save persists a trip record under the given base filename and
	// returns the path of the written file.
	Save(ctx context.Context, record TripRecord, filename string) (string, error)

	// Load reads a previously persisted trip record.
	Load(ctx context.Context, path string) (*TripRecord, error)
}
