package accounts

import (
	"context"
	"fmt"
	"strings"

	"github.com/lfanzott/schulmanager/internal/common"
	"github.com/lfanzott/schulmanager/internal/csvx"
	"github.com/lfanzott/schulmanager/internal/logging"
)

// FileRepository implements Repository over a single `;`-delimited account
// file. Every mutation is a whole-file load-modify-save held under the
// per-path lock.
type FileRepository struct {
	path   string
	locker *csvx.PathLocker
	log    logging.Logger
}

func NewFileRepository(path string, locker *csvx.PathLocker, log logging.Logger) *FileRepository {
	return &FileRepository{path: path, locker: locker, log: log}
}

func formatAccount(a Account) string {
	return strings.Join([]string{a.Name, string(a.Role), a.PasswordHash}, csvx.Delimiter)
}

// parseAccount splits one account line. Lines with fewer than three fields
// are malformed.
func parseAccount(line string) (Account, error) {
	parts := strings.Split(line, csvx.Delimiter)
	if len(parts) < 3 || parts[0] == "" {
		return Account{}, fmt.Errorf("%w: %q", common.ErrMalformedRecord, line)
	}
	return Account{Name: parts[0], Role: ParseRole(parts[1]), PasswordHash: parts[2]}, nil
}

// loadLocked reads all account records; malformed lines are skipped with a
// warning. Callers must hold the path lock.
func (r *FileRepository) loadLocked(ctx context.Context) ([]Account, error) {
	lines, err := csvx.ReadLines(r.path)
	if err != nil {
		return nil, err
	}

	list := make([]Account, 0, len(lines))
	for _, line := range lines {
		a, err := parseAccount(line)
		if err != nil {
			r.log.Warn(ctx, "skipping malformed account record", "file", r.path, "err", err)
			continue
		}
		list = append(list, a)
	}
	return list, nil
}

func (r *FileRepository) saveLocked(list []Account) error {
	lines := make([]string, 0, len(list))
	for _, a := range list {
		lines = append(lines, formatAccount(a))
	}
	return csvx.WriteLines(r.path, lines)
}

func (r *FileRepository) Exists(ctx context.Context, username string) (bool, error) {
	a, err := r.FindByName(ctx, username)
	if err != nil {
		return false, err
	}
	return a != nil, nil
}

// FindByName returns the first record matching username (case-insensitive),
// or nil when absent.
func (r *FileRepository) FindByName(ctx context.Context, username string) (*Account, error) {
	unlock := r.locker.Lock(r.path)
	defer unlock()

	list, err := r.loadLocked(ctx)
	if err != nil {
		return nil, err
	}
	for i := range list {
		if strings.EqualFold(list[i].Name, username) {
			return &list[i], nil
		}
	}
	return nil, nil
}

// Create appends a new record. The caller is responsible for uniqueness
// checks; Create itself refuses only a duplicate it can see.
func (r *FileRepository) Create(ctx context.Context, account Account) error {
	unlock := r.locker.Lock(r.path)
	defer unlock()

	list, err := r.loadLocked(ctx)
	if err != nil {
		return err
	}
	for _, a := range list {
		if strings.EqualFold(a.Name, account.Name) {
			return fmt.Errorf("user %q: %w", account.Name, common.ErrAlreadyExists)
		}
	}

	if err := csvx.AppendLine(r.path, formatAccount(account)); err != nil {
		return err
	}
	r.log.Info(ctx, "account created", "user", account.Name, "role", account.Role)
	return nil
}

func (r *FileRepository) LoadAll(ctx context.Context) ([]Account, error) {
	unlock := r.locker.Lock(r.path)
	defer unlock()
	return r.loadLocked(ctx)
}

func (r *FileRepository) Delete(ctx context.Context, username string) error {
	unlock := r.locker.Lock(r.path)
	defer unlock()

	list, err := r.loadLocked(ctx)
	if err != nil {
		return err
	}

	kept := list[:0]
	for _, a := range list {
		if !strings.EqualFold(a.Name, username) {
			kept = append(kept, a)
		}
	}
	if len(kept) == len(list) {
		// deleting an unknown user is a no-op
		return nil
	}

	if err := r.saveLocked(kept); err != nil {
		return err
	}
	r.log.Info(ctx, "account deleted", "user", username)
	return nil
}

// Rename updates the first matching record's username in place, preserving
// role and hash.
func (r *FileRepository) Rename(ctx context.Context, oldName, newName string) error {
	return r.updateFirst(ctx, oldName, "rename", func(a *Account) {
		a.Name = newName
	})
}

func (r *FileRepository) UpdatePassword(ctx context.Context, username, passwordHash string) error {
	return r.updateFirst(ctx, username, "password change", func(a *Account) {
		a.PasswordHash = passwordHash
	})
}

func (r *FileRepository) UpdateRole(ctx context.Context, username string, role Role) error {
	return r.updateFirst(ctx, username, "role change", func(a *Account) {
		a.Role = role
	})
}

func (r *FileRepository) updateFirst(ctx context.Context, username, op string, mutate func(*Account)) error {
	unlock := r.locker.Lock(r.path)
	defer unlock()

	list, err := r.loadLocked(ctx)
	if err != nil {
		return err
	}

	for i := range list {
		if strings.EqualFold(list[i].Name, username) {
			mutate(&list[i])
			if err := r.saveLocked(list); err != nil {
				return err
			}
			r.log.Info(ctx, "account updated", "user", username, "op", op)
			return nil
		}
	}
	return fmt.Errorf("user %q: %w", username, common.ErrNotFound)
}
