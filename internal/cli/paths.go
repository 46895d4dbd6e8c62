package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/lfanzott/schulmanager/internal/prefs"
)

// moveFile relocates a data file, creating the destination's parent
// directories and replacing an existing destination. A missing source is a
// no-op (nothing to move yet).
func moveFile(from, to string) error {
	if from == to {
		return nil
	}
	if _, err := os.Stat(from); os.IsNotExist(err) {
		return nil
	}
	if err := os.MkdirAll(filepath.Dir(to), 0o770); err != nil {
		return fmt.Errorf("mkdir %s: %w", filepath.Dir(to), err)
	}
	if err := os.Rename(from, to); err != nil {
		return fmt.Errorf("move %s to %s: %w", from, to, err)
	}
	return nil
}

// PathInfo prints the resolved storage locations for the current user.
func (a *App) PathInfo(ctx context.Context) error {
	fmt.Fprintln(a.out, "Appointments:", a.registry.AppointmentPath(a.userName))
	fmt.Fprintln(a.out, "Goals:       ", a.registry.GoalPath(a.userName))
	fmt.Fprintln(a.out, "Preferences: ", a.registry.PrefsPath(a.userName))
	return nil
}

// SetTerminPath moves the appointment file to a new location and records the
// binding.
func (a *App) SetTerminPath(ctx context.Context) error {
	newPath, err := getSimpleText(a.reader, "New appointment file path", a.out)
	if err != nil {
		return err
	}
	if newPath == "" {
		return fmt.Errorf("path must not be empty")
	}

	if err := moveFile(a.registry.AppointmentPath(a.userName), newPath); err != nil {
		return err
	}
	if err := a.registry.SetAppointmentPath(ctx, a.userName, newPath); err != nil {
		return err
	}

	fmt.Fprintln(a.out, "Appointment file now at", newPath)
	return nil
}

// SetZielPath moves the goal file to a new location and records the binding.
func (a *App) SetZielPath(ctx context.Context) error {
	newPath, err := getSimpleText(a.reader, "New goal file path", a.out)
	if err != nil {
		return err
	}
	if newPath == "" {
		return fmt.Errorf("path must not be empty")
	}

	if err := moveFile(a.registry.GoalPath(a.userName), newPath); err != nil {
		return err
	}
	if err := a.registry.SetGoalPath(ctx, a.userName, newPath); err != nil {
		return err
	}

	fmt.Fprintln(a.out, "Goal file now at", newPath)
	return nil
}

// ResetPaths moves both data files back to their default locations and drops
// the bindings.
func (a *App) ResetPaths(ctx context.Context) error {
	if err := moveFile(a.registry.AppointmentPath(a.userName), a.registry.DefaultAppointmentPath(a.userName)); err != nil {
		return err
	}
	if err := moveFile(a.registry.GoalPath(a.userName), a.registry.DefaultGoalPath(a.userName)); err != nil {
		return err
	}
	if err := a.registry.Reset(ctx, a.userName); err != nil {
		return err
	}

	fmt.Fprintln(a.out, "Storage paths reset to defaults.")
	return nil
}

// ResetAll deletes all of the user's appointments and goals after an
// explicit confirmation, and resets the storage paths.
func (a *App) ResetAll(ctx context.Context) error {
	ok, err := GetConfirmation(a.reader,
		"Really reset EVERYTHING? All appointments and goals will be deleted.", a.out)
	if err != nil {
		return err
	}
	if !ok {
		fmt.Fprintln(a.out, "Cancelled.")
		return nil
	}

	if err := a.ResetPaths(ctx); err != nil {
		return err
	}
	for _, p := range []string{
		a.registry.DefaultAppointmentPath(a.userName),
		a.registry.DefaultGoalPath(a.userName),
	} {
		if err := os.Remove(p); err != nil && !os.IsNotExist(err) {
			return fmt.Errorf("remove %s: %w", p, err)
		}
	}

	a.log.Warn(ctx, "user data reset", "user", a.userName)
	fmt.Fprintln(a.out, "All appointments and goals deleted.")
	return nil
}

// ToggleDarkMode flips the persisted dark-mode preference.
func (a *App) ToggleDarkMode(ctx context.Context) error {
	store := prefs.NewStore(a.registry.PrefsPath(a.userName))

	on, err := store.DarkMode()
	if err != nil {
		return err
	}
	if err := store.SetDarkMode(!on); err != nil {
		return err
	}

	if on {
		fmt.Fprintln(a.out, "Dark mode disabled.")
	} else {
		fmt.Fprintln(a.out, "Dark mode enabled.")
	}
	return nil
}
