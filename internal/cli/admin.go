package cli

import (
	"context"
	"flag"
	"fmt"

	"restaurant-admin/internal/connections/database"
	"restaurant-admin/internal/seed"
)

func (a *app) runInit(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("init", flag.ContinueOnError)
	withSeed := fs.Bool("seed", false, "seed sample data after initializing")
	reset := fs.Bool("reset", false, "drop all tables first")
	if err := fs.Parse(args); err != nil {
		return usageError("init: %v", err)
	}

	if *reset {
		if err := database.Reset(ctx, a.db); err != nil {
			return err
		}
	} else if err := database.Migrate(ctx, a.db); err != nil {
		return err
	}
	fmt.Println("database initialized")

	if *withSeed {
		return a.runSeed(ctx)
	}
	return nil
}

func (a *app) runSeed(ctx context.Context) error {
	ok, err := database.Initialized(ctx, a.db)
	if err != nil {
		return err
	}
	if !ok {
		a.lg.Info().Msg("database not initialized, applying schema first")
		if err := database.Migrate(ctx, a.db); err != nil {
			return err
		}
	}

	counts, err := seed.Run(ctx, a.db, a.cfg.TaxRate, a.lg)
	if err != nil {
		return err
	}
	fmt.Printf("seeded %d categories, %d menu items, %d customers, %d employees, %d tables, %d shifts, %d reservations, %d orders (%d items)\n",
		counts.Categories, counts.MenuItems, counts.Customers, counts.Employees,
		counts.Tables, counts.Shifts, counts.Reservations, counts.Orders, counts.OrderItems)
	return nil
}

func (a *app) runStatus(ctx context.Context) error {
	ok, err := database.Initialized(ctx, a.db)
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("database not initialized, run 'restaurant-admin init' first")
	}

	counts, err := database.TableCounts(ctx, a.db)
	if err != nil {
		return err
	}

	rows := make([][]any, 0, len(database.Tables))
	for _, t := range database.Tables {
		rows = append(rows, []any{t, counts[t]})
	}
	printTable("Database Status", []string{"Table", "Records"}, rows)
	return nil
}
