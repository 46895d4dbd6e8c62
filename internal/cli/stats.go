package cli

import (
	"context"
	"fmt"

	"github.com/lfanzott/schulmanager/internal/appointments"
	"github.com/lfanzott/schulmanager/internal/stats"
)

// Stats prints the total appointment count and the per-category distribution.
func (a *App) Stats(ctx context.Context) error {
	list, err := a.termine.LoadAll(ctx, a.registry.AppointmentPath(a.userName))
	if err != nil {
		return err
	}

	fmt.Fprintf(a.out, "Total appointments: %d\n", stats.Total(list))

	dist := stats.Distribution(list)
	for _, c := range appointments.Categories {
		fmt.Fprintf(a.out, "  %-8s %d\n", c, dist[c])
	}
	return nil
}
