package cli

import (
	"context"
	"flag"
	"fmt"

	"restaurant-admin/internal/domain"
)

func (a *app) runHost(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return usageError("host: missing subcommand")
	}
	switch args[0] {
	case "tables":
		return a.hostTables(ctx, args[1:])
	case "reservation":
		return a.hostReservation(ctx, args[1:])
	case "reservations":
		return a.hostReservations(ctx, args[1:])
	default:
		return usageError("host: unknown subcommand %q", args[0])
	}
}

func (a *app) hostTables(ctx context.Context, args []string) error {
	if len(args) != 2 {
		return usageError("host tables: expected <date> <time>")
	}
	date, slot := args[0], args[1]

	free, err := a.reservations.AvailableTables(ctx, date, slot)
	if err != nil {
		return err
	}
	if len(free) == 0 {
		fmt.Printf("no tables available for %s at %s\n", date, slot)
		return nil
	}

	rows := make([][]any, 0, len(free))
	for _, t := range free {
		rows = append(rows, []any{t.Number, t.Capacity, t.Location})
	}
	printTable(fmt.Sprintf("Available Tables - %s at %s", date, slot),
		[]string{"Table", "Capacity", "Location"}, rows)
	return nil
}

func (a *app) hostReservation(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("host reservation", flag.ContinueOnError)
	customer := fs.Int64("customer", 0, "customer ID")
	table := fs.Int64("table", 0, "table ID")
	date := fs.String("date", "", "reservation date (YYYY-MM-DD)")
	slot := fs.String("time", "", "reservation time (HH:MM)")
	party := fs.Int("party", 0, "number of guests")
	notes := fs.String("notes", "", "special requests")
	force := fs.Bool("force", false, "override capacity warnings")
	if err := fs.Parse(args); err != nil {
		return usageError("host reservation: %v", err)
	}
	if *customer == 0 || *table == 0 || *date == "" || *slot == "" {
		return usageError("host reservation: --customer, --table, --date and --time are required")
	}

	conf, err := a.reservations.Create(ctx, domain.ReservationRequest{
		CustomerID: *customer,
		TableID:    *table,
		Date:       *date,
		Time:       *slot,
		PartySize:  *party,
		Notes:      *notes,
		Force:      *force,
	})
	if err != nil {
		return err
	}

	lines := []string{
		fmt.Sprintf("Reservation ID: %d", conf.ID),
		"Customer: " + conf.CustomerName,
		"Table: " + conf.TableNumber,
		fmt.Sprintf("Date: %s at %s", conf.Date, conf.Time),
		fmt.Sprintf("Party Size: %d", conf.PartySize),
	}
	for _, w := range conf.Warnings {
		lines = append(lines, "Warning: "+w)
	}
	printPanel("New Reservation", lines...)
	return nil
}

func (a *app) hostReservations(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("host reservations", flag.ContinueOnError)
	date := fs.String("date", "", "filter by date (YYYY-MM-DD)")
	if err := fs.Parse(args); err != nil {
		return usageError("host reservations: %v", err)
	}

	list, err := a.reservations.Upcoming(ctx, *date)
	if err != nil {
		return err
	}
	if len(list) == 0 {
		fmt.Println("no upcoming reservations found")
		return nil
	}

	rows := make([][]any, 0, len(list))
	for _, r := range list {
		rows = append(rows, []any{r.ID, r.Date, r.Time, r.CustomerName, r.TableNumber, r.PartySize, r.Notes})
	}
	printTable("Upcoming Reservations",
		[]string{"ID", "Date", "Time", "Customer", "Table", "Party", "Notes"}, rows)
	return nil
}
