// Package paths resolves per-user data file locations. Each user's
// appointment and goal files live under the configured data root by default;
// an explicit binding can redirect either one to an arbitrary location, and
// bindings survive restarts via a small on-disk table.
package paths

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"sync"

	"github.com/lfanzott/schulmanager/internal/csvx"
	"github.com/lfanzott/schulmanager/internal/logging"
)

// binding holds one user's overrides. An empty field means the default
// location for that slot.
type binding struct {
	appointmentPath string
	goalPath        string
}

// Registry is the path-binding table. Construct one at startup, call Load,
// and pass it to whichever component needs path resolution. All mutating
// operations persist the whole table immediately.
type Registry struct {
	mu       sync.Mutex
	file     string
	dataRoot string
	bindings map[string]binding
	log      logging.Logger
}

// NewRegistry returns a Registry backed by the binding file at file, with
// per-user defaults computed under dataRoot.
func NewRegistry(file, dataRoot string, log logging.Logger) *Registry {
	return &Registry{
		file:     file,
		dataRoot: dataRoot,
		bindings: make(map[string]binding),
		log:      log,
	}
}

// Load reads the binding table from disk, replacing the in-memory state.
// A missing file leaves the table empty (defaults apply to everyone) and is
// not an error. Malformed lines are skipped. Idempotent.
func (r *Registry) Load(ctx context.Context) error {
	lines, err := csvx.ReadLines(r.file)
	if err != nil {
		return fmt.Errorf("loading binding table: %w", err)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.bindings = make(map[string]binding, len(lines))
	for _, line := range lines {
		parts := strings.Split(line, csvx.Delimiter)
		if len(parts) != 3 || parts[0] == "" {
			continue
		}
		r.bindings[parts[0]] = binding{appointmentPath: parts[1], goalPath: parts[2]}
	}

	r.log.Debug(ctx, "binding table loaded", "file", r.file, "bindings", len(r.bindings))
	return nil
}

// Persist rewrites the entire binding table to disk.
func (r *Registry) Persist(ctx context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.persistLocked(ctx)
}

func (r *Registry) persistLocked(ctx context.Context) error {
	lines := make([]string, 0, len(r.bindings))
	for user, b := range r.bindings {
		lines = append(lines, strings.Join([]string{user, b.appointmentPath, b.goalPath}, csvx.Delimiter))
	}

	if err := csvx.WriteLines(r.file, lines); err != nil {
		return fmt.Errorf("persisting binding table: %w", err)
	}

	r.log.Debug(ctx, "binding table persisted", "file", r.file, "bindings", len(lines))
	return nil
}

// DefaultAppointmentPath computes the unbound appointment file location.
func (r *Registry) DefaultAppointmentPath(username string) string {
	return filepath.Join(r.dataRoot, username+"_termine.csv")
}

// DefaultGoalPath computes the unbound goal file location.
func (r *Registry) DefaultGoalPath(username string) string {
	return filepath.Join(r.dataRoot, username+"_ziele.csv")
}

// AppointmentPath returns the bound appointment path for username, or the
// computed default when no binding exists.
func (r *Registry) AppointmentPath(username string) string {
	r.mu.Lock()
	defer r.mu.Unlock()
	if b, ok := r.bindings[username]; ok && b.appointmentPath != "" {
		return b.appointmentPath
	}
	return r.DefaultAppointmentPath(username)
}

// GoalPath returns the bound goal path for username, or the default.
func (r *Registry) GoalPath(username string) string {
	r.mu.Lock()
	defer r.mu.Unlock()
	if b, ok := r.bindings[username]; ok && b.goalPath != "" {
		return b.goalPath
	}
	return r.DefaultGoalPath(username)
}

// PrefsPath returns the per-user preference file location. Preferences have
// no binding slot; the path is always under the data root.
func (r *Registry) PrefsPath(username string) string {
	return filepath.Join(r.dataRoot, username+"_config.properties")
}

// SetAppointmentPath records an appointment-path override and persists the
// table. Moving the underlying file is the caller's job.
func (r *Registry) SetAppointmentPath(ctx context.Context, username, path string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	b := r.bindings[username]
	b.appointmentPath = path
	r.bindings[username] = b

	return r.persistLocked(ctx)
}

// SetGoalPath records a goal-path override and persists the table.
func (r *Registry) SetGoalPath(ctx context.Context, username, path string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	b := r.bindings[username]
	b.goalPath = path
	r.bindings[username] = b

	return r.persistLocked(ctx)
}

// Reset removes both overrides for username and persists the table. Callers
// must physically relocate the files back to the defaults beforehand; the
// registry never touches file contents.
func (r *Registry) Reset(ctx context.Context, username string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.bindings, username)
	return r.persistLocked(ctx)
}

// RenameUser rekeys any binding from oldName to newName, preserving the
// paths unchanged, and persists the table. Renaming the underlying files is
// the caller's job.
func (r *Registry) RenameUser(ctx context.Context, oldName, newName string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if b, ok := r.bindings[oldName]; ok {
		delete(r.bindings, oldName)
		r.bindings[newName] = b
	}
	return r.persistLocked(ctx)
}
