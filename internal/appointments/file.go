package appointments

import (
	"context"
	"fmt"

	"github.com/lfanzott/schulmanager/internal/csvx"
	"github.com/lfanzott/schulmanager/internal/logging"
)

// FileRepository implements Repository over `;`-delimited line files.
// Malformed lines are skipped with a warning rather than failing the load.
type FileRepository struct {
	locker *csvx.PathLocker
	log    logging.Logger
}

func NewFileRepository(locker *csvx.PathLocker, log logging.Logger) *FileRepository {
	return &FileRepository{locker: locker, log: log}
}

func (r *FileRepository) loadLocked(ctx context.Context, path string) ([]Appointment, error) {
	lines, err := csvx.ReadLines(path)
	if err != nil {
		return nil, fmt.Errorf("loading appointments: %w", err)
	}

	list := make([]Appointment, 0, len(lines))
	for _, line := range lines {
		a, err := parseLine(line)
		if err != nil {
			r.log.Warn(ctx, "skipping malformed appointment record", "file", path, "err", err)
			continue
		}
		list = append(list, a)
	}
	return list, nil
}

func (r *FileRepository) saveLocked(list []Appointment, path string) error {
	lines := make([]string, 0, len(list))
	for _, a := range list {
		lines = append(lines, formatLine(a))
	}
	if err := csvx.WriteLines(path, lines); err != nil {
		return fmt.Errorf("saving appointments: %w", err)
	}
	return nil
}

func (r *FileRepository) LoadAll(ctx context.Context, path string) ([]Appointment, error) {
	unlock := r.locker.Lock(path)
	defer unlock()
	return r.loadLocked(ctx, path)
}

func (r *FileRepository) SaveAll(ctx context.Context, list []Appointment, path string) error {
	unlock := r.locker.Lock(path)
	defer unlock()
	return r.saveLocked(list, path)
}

func (r *FileRepository) MergeImport(ctx context.Context, externalPath, ownPath string) (int, error) {
	external, err := r.LoadAll(ctx, externalPath)
	if err != nil {
		return 0, err
	}

	unlock := r.locker.Lock(ownPath)
	defer unlock()

	own, err := r.loadLocked(ctx, ownPath)
	if err != nil {
		return 0, err
	}

	seen := make(map[key]struct{}, len(own))
	for _, a := range own {
		seen[a.key()] = struct{}{}
	}

	added := 0
	for _, a := range external {
		k := a.key()
		if _, ok := seen[k]; ok {
			continue
		}
		seen[k] = struct{}{}
		own = append(own, a)
		added++
	}

	if err := r.saveLocked(own, ownPath); err != nil {
		return 0, err
	}

	r.log.Info(ctx, "appointments imported", "from", externalPath, "to", ownPath,
		"added", added, "skipped", len(external)-added)
	return added, nil
}
