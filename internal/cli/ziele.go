package cli

import (
	"context"
	"fmt"

	"github.com/lfanzott/schulmanager/internal/goals"
)

// ListZiele prints the user's goals in file order.
func (a *App) ListZiele(ctx context.Context) error {
	path := a.registry.GoalPath(a.userName)
	list, err := a.ziele.LoadAll(ctx, path)
	if err != nil {
		return err
	}

	if len(list) == 0 {
		fmt.Fprintln(a.out, "No goals.")
		return nil
	}
	for i, g := range list {
		mark := " "
		if g.Done {
			mark = "x"
		}
		fmt.Fprintf(a.out, "%3d  [%s]  %s\n", i+1, mark, g.Text)
	}
	return nil
}

// AddZiel prompts for a goal text and appends an open goal.
func (a *App) AddZiel(ctx context.Context) error {
	text, err := getSimpleText(a.reader, "Goal text", a.out)
	if err != nil {
		return err
	}
	if text == "" {
		return fmt.Errorf("goal text must not be empty")
	}

	path := a.registry.GoalPath(a.userName)
	list, err := a.ziele.LoadAll(ctx, path)
	if err != nil {
		return err
	}

	list = append(list, goals.Goal{Done: false, Text: text})
	if err := a.ziele.SaveAll(ctx, list, path); err != nil {
		return err
	}

	fmt.Fprintln(a.out, "Goal saved.")
	return nil
}

// ToggleZiel flips the done flag of one goal.
func (a *App) ToggleZiel(ctx context.Context) error {
	path := a.registry.GoalPath(a.userName)
	list, err := a.ziele.LoadAll(ctx, path)
	if err != nil {
		return err
	}
	if len(list) == 0 {
		fmt.Fprintln(a.out, "No goals.")
		return nil
	}

	idx, err := a.promptIndex("Goal number to toggle", len(list))
	if err != nil {
		return err
	}

	list[idx].Done = !list[idx].Done
	if err := a.ziele.SaveAll(ctx, list, path); err != nil {
		return err
	}

	state := "open"
	if list[idx].Done {
		state = "done"
	}
	fmt.Fprintf(a.out, "Goal %q is now %s.\n", list[idx].Text, state)
	return nil
}

// DeleteZiel prompts for a list position and removes that goal.
func (a *App) DeleteZiel(ctx context.Context) error {
	path := a.registry.GoalPath(a.userName)
	list, err := a.ziele.LoadAll(ctx, path)
	if err != nil {
		return err
	}
	if len(list) == 0 {
		fmt.Fprintln(a.out, "No goals.")
		return nil
	}

	idx, err := a.promptIndex("Goal number to delete", len(list))
	if err != nil {
		return err
	}

	removed := list[idx]
	list = append(list[:idx], list[idx+1:]...)
	if err := a.ziele.SaveAll(ctx, list, path); err != nil {
		return err
	}

	fmt.Fprintf(a.out, "Deleted %q.\n", removed.Text)
	return nil
}

// ImportZiele merges an external goal file into the user's own, dropping
// goals whose text already exists.
func (a *App) ImportZiele(ctx context.Context) error {
	source, err := getSimpleText(a.reader, "Path of the file to import", a.out)
	if err != nil {
		return err
	}

	added, err := a.ziele.MergeImport(ctx, source, a.registry.GoalPath(a.userName))
	if err != nil {
		return err
	}

	fmt.Fprintf(a.out, "Imported %d new goal(s).\n", added)
	return nil
}
