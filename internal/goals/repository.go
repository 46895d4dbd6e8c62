package goals

import "context"

// Repository is the persistence surface for goal files.
type Repository interface {
	// LoadAll reads the file at path in order. A missing file yields an
	// empty result, not an error.
	LoadAll(ctx context.Context, path string) ([]Goal, error)

	// SaveAll overwrites path with the list in order.
	SaveAll(ctx context.Context, list []Goal, path string) error

	// MergeImport appends every external goal whose text is not already
	// present in the own set and saves the combined set to ownPath. Two
	// goals with the same text but different done state are the same goal;
	// the imported one is dropped. Returns the number of records added.
	MergeImport(ctx context.Context, externalPath, ownPath string) (int, error)
}
