package appointments

import "context"

// Repository is the persistence surface for appointment files.
type Repository interface {
	// LoadAll reads the file at path in order. A missing file yields an
	// empty result, not an error.
	LoadAll(ctx context.Context, path string) ([]Appointment, error)

	// SaveAll overwrites path with the list in order.
	SaveAll(ctx context.Context, list []Appointment, path string) error

	// MergeImport appends every external record not already present in the
	// own set (structural equality on all four fields) and saves the
	// combined set to ownPath. Returns the number of records added.
	MergeImport(ctx context.Context, externalPath, ownPath string) (int, error)
}
