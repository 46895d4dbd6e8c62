// Package stats aggregates counts over a loaded appointment list. It owns no
// persistence; callers load the list through the appointment repository.
package stats

import "github.com/lfanzott/schulmanager/internal/appointments"

// Total returns the number of appointments.
func Total(list []appointments.Appointment) int {
	return len(list)
}

// CountByCategory returns how many appointments carry the given category.
func CountByCategory(list []appointments.Appointment, c appointments.Category) int {
	n := 0
	for _, a := range list {
		if a.Category == c {
			n++
		}
	}
	return n
}

// Distribution returns the per-category counts. Every category of the closed
// set is present in the result, zero-valued when unused.
func Distribution(list []appointments.Appointment) map[appointments.Category]int {
	dist := make(map[appointments.Category]int, len(appointments.Categories))
	for _, c := range appointments.Categories {
		dist[c] = 0
	}
	for _, a := range list {
		dist[a.Category]++
	}
	return dist
}
