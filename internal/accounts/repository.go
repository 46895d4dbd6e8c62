package accounts

import "context"

// Repository is the persistence surface for account records. Implementations
// keep file order stable: LoadAll returns records in insertion order, and
// in-place updates (Rename, UpdatePassword, UpdateRole) do not reorder.
type Repository interface {
	Exists(ctx context.Context, username string) (bool, error)
	Create(ctx context.Context, account Account) error
	FindByName(ctx context.Context, username string) (*Account, error)
	LoadAll(ctx context.Context) ([]Account, error)

	// Delete removes the matching record; deleting an unknown user is a no-op.
	Delete(ctx context.Context, username string) error

	Rename(ctx context.Context, oldName, newName string) error
	UpdatePassword(ctx context.Context, username, passwordHash string) error
	UpdateRole(ctx context.Context, username string, role Role) error
}
