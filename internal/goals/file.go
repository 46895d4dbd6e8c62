package goals

import (
	"context"
	"fmt"

	"github.com/lfanzott/schulmanager/internal/csvx"
	"github.com/lfanzott/schulmanager/internal/logging"
)

// FileRepository implements Repository over `;`-delimited line files.
// Malformed lines are skipped with a warning, the same lenient policy as
// the appointment store.
type FileRepository struct {
	locker *csvx.PathLocker
	log    logging.Logger
}

func NewFileRepository(locker *csvx.PathLocker, log logging.Logger) *FileRepository {
	return &FileRepository{locker: locker, log: log}
}

func (r *FileRepository) loadLocked(ctx context.Context, path string) ([]Goal, error) {
	lines, err := csvx.ReadLines(path)
	if err != nil {
		return nil, fmt.Errorf("loading goals: %w", err)
	}

	list := make([]Goal, 0, len(lines))
	for _, line := range lines {
		g, err := parseLine(line)
		if err != nil {
			r.log.Warn(ctx, "skipping malformed goal record", "file", path, "err", err)
			continue
		}
		list = append(list, g)
	}
	return list, nil
}

func (r *FileRepository) saveLocked(list []Goal, path string) error {
	lines := make([]string, 0, len(list))
	for _, g := range list {
		lines = append(lines, formatLine(g))
	}
	if err := csvx.WriteLines(path, lines); err != nil {
		return fmt.Errorf("saving goals: %w", err)
	}
	return nil
}

func (r *FileRepository) LoadAll(ctx context.Context, path string) ([]Goal, error) {
	unlock := r.locker.Lock(path)
	defer unlock()
	return r.loadLocked(ctx, path)
}

func (r *FileRepository) SaveAll(ctx context.Context, list []Goal, path string) error {
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

	seen := make(map[string]struct{}, len(own))
	for _, g := range own {
		seen[g.Text] = struct{}{}
	}

	added := 0
	for _, g := range external {
		if _, ok := seen[g.Text]; ok {
			continue
		}
		seen[g.Text] = struct{}{}
		own = append(own, g)
		added++
	}

	if err := r.saveLocked(own, ownPath); err != nil {
		return 0, err
	}

	r.log.Info(ctx, "goals imported", "from", externalPath, "to", ownPath,
		"added", added, "skipped", len(external)-added)
	return added, nil
}
