package cli

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/lfanzott/schulmanager/internal/appointments"
)

// ListTermine prints the user's appointments in file order.
func (a *App) ListTermine(ctx context.Context) error {
	path := a.registry.AppointmentPath(a.userName)
	list, err := a.termine.LoadAll(ctx, path)
	if err != nil {
		return err
	}

	if len(list) == 0 {
		fmt.Fprintln(a.out, "No appointments.")
		return nil
	}
	for i, t := range list {
		fmt.Fprintf(a.out, "%3d  %-10s  %-8s  %s", i+1, t.Date.Format(appointments.DateLayout), t.Category, t.Title)
		if t.Note != "" {
			fmt.Fprintf(a.out, "  (%s)", t.Note)
		}
		fmt.Fprintln(a.out)
	}
	return nil
}

// AddTermin prompts for the appointment fields and appends the record.
// Free-text category input is normalized into the closed set.
func (a *App) AddTermin(ctx context.Context) error {
	title, err := getSimpleText(a.reader, "Title", a.out)
	if err != nil {
		return err
	}
	if title == "" {
		return fmt.Errorf("title must not be empty")
	}

	dateStr, err := getSimpleText(a.reader, "Date (YYYY-MM-DD)", a.out)
	if err != nil {
		return err
	}
	date, err := time.Parse(appointments.DateLayout, dateStr)
	if err != nil {
		return fmt.Errorf("invalid date %q, expected YYYY-MM-DD", dateStr)
	}

	rawCategory, err := getSimpleText(a.reader, "Category (Exam/Homework/Event/Other or free text)", a.out)
	if err != nil {
		return err
	}

	note, err := getSimpleText(a.reader, "Note (optional)", a.out)
	if err != nil {
		return err
	}

	path := a.registry.AppointmentPath(a.userName)
	list, err := a.termine.LoadAll(ctx, path)
	if err != nil {
		return err
	}

	list = append(list, appointments.Appointment{
		Title:    title,
		Date:     date,
		Category: appointments.Normalize(rawCategory),
		Note:     note,
	})
	if err := a.termine.SaveAll(ctx, list, path); err != nil {
		return err
	}

	fmt.Fprintln(a.out, "Appointment saved.")
	return nil
}

// DeleteTermin prompts for a list position and removes that appointment.
func (a *App) DeleteTermin(ctx context.Context) error {
	path := a.registry.AppointmentPath(a.userName)
	list, err := a.termine.LoadAll(ctx, path)
	if err != nil {
		return err
	}
	if len(list) == 0 {
		fmt.Fprintln(a.out, "No appointments.")
		return nil
	}

	idx, err := a.promptIndex("Appointment number to delete", len(list))
	if err != nil {
		return err
	}

	removed := list[idx]
	list = append(list[:idx], list[idx+1:]...)
	if err := a.termine.SaveAll(ctx, list, path); err != nil {
		return err
	}

	fmt.Fprintf(a.out, "Deleted %q.\n", removed.Title)
	return nil
}

// ImportTermine merges an external appointment file into the user's own,
// skipping records that already exist.
func (a *App) ImportTermine(ctx context.Context) error {
	source, err := getSimpleText(a.reader, "Path of the file to import", a.out)
	if err != nil {
		return err
	}

	added, err := a.termine.MergeImport(ctx, source, a.registry.AppointmentPath(a.userName))
	if err != nil {
		return err
	}

	fmt.Fprintf(a.out, "Imported %d new appointment(s).\n", added)
	return nil
}

// promptIndex reads a 1-based list position and returns the 0-based index.
func (a *App) promptIndex(prompt string, n int) (int, error) {
	s, err := getSimpleText(a.reader, prompt, a.out)
	if err != nil {
		return 0, err
	}
	idx, err := strconv.Atoi(s)
	if err != nil || idx < 1 || idx > n {
		return 0, fmt.Errorf("invalid number %q, expected 1..%d", s, n)
	}
	return idx - 1, nil
}
