// Package cli wires configuration, connections, and services together and
// dispatches role-grouped subcommands.
package cli

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"

	"github.com/rs/zerolog"

	"restaurant-admin/internal/common/logger"
	"restaurant-admin/internal/config"
	"restaurant-admin/internal/connections/database"
	"restaurant-admin/internal/connections/rabbitmq"
	"restaurant-admin/internal/domain"
	"restaurant-admin/internal/events"
	"restaurant-admin/internal/repository"
	"restaurant-admin/internal/service"
)

const usage = `Usage: restaurant-admin <command> [options]

Database:
  init [--seed] [--reset]        apply the schema
  seed                           load synthetic sample data
  status                         show row counts per table

Host:
  host tables <date> <time>      tables free at a slot
  host reservation [options]     create a reservation
  host reservations [--date]     list upcoming reservations

Server:
  server order [options]         open a new order
  server add-item [options]      add an item to an order
  server tip [options]           set the tip on a completed order
  server menu [--category]       show the menu (--categories lists categories)

Manager:
  manager report [options]       daily / category / server revenue
  manager popular [--limit]      most popular items
  manager customers              above-average customers
  manager employees              employee roster
  manager menu-add [options]     add a menu item
  manager menu-update [options]  update a menu item
`

type app struct {
	cfg          config.Config
	lg           zerolog.Logger
	db           *sql.DB
	reservations *service.ReservationService
	orders       *service.OrderService
	menu         *service.MenuService
	reports      *service.ReportService
}

// Run executes one command and returns the process exit code.
func Run(ctx context.Context, args []string) int {
	if len(args) == 0 {
		fmt.Fprint(os.Stderr, usage)
		return 2
	}

	cfg := config.Load()
	lg := logger.New("restaurant-admin", cfg.LogLevel)

	db, err := database.Connect(ctx, cfg.Database)
	if err != nil {
		lg.Error().Err(err).Msg("database connection failed")
		return 1
	}
	defer db.Close()

	var pub *events.Publisher
	if cfg.AmqpURL != "" {
		mq, err := rabbitmq.Dial(cfg.AmqpURL)
		if err != nil {
			lg.Warn().Err(err).Msg("broker unreachable, events disabled")
		} else {
			defer mq.Close()
			pub = events.NewPublisher(mq)
		}
	}

	a := newApp(cfg, lg, db, pub)

	err = a.dispatch(ctx, args)
	return exitCode(err)
}

func newApp(cfg config.Config, lg zerolog.Logger, db *sql.DB, pub *events.Publisher) *app {
	return &app{
		cfg:          cfg,
		lg:           lg,
		db:           db,
		reservations: service.NewReservationService(repository.NewReservationRepository(db), lg),
		orders:       service.NewOrderService(repository.NewOrderRepository(db), pub, cfg.TaxRate, lg),
		menu:         service.NewMenuService(repository.NewMenuRepository(db), lg),
		reports:      service.NewReportService(repository.NewReportRepository(db)),
	}
}

func (a *app) dispatch(ctx context.Context, args []string) error {
	switch args[0] {
	case "init":
		return a.runInit(ctx, args[1:])
	case "seed":
		return a.runSeed(ctx)
	case "status":
		return a.runStatus(ctx)
	case "host":
		return a.runHost(ctx, args[1:])
	case "server":
		return a.runServer(ctx, args[1:])
	case "manager":
		return a.runManager(ctx, args[1:])
	case "help", "-h", "--help":
		fmt.Print(usage)
		return nil
	default:
		return usageError("unknown command %q", args[0])
	}
}

// usageErr distinguishes bad invocations (exit 2) from operation failures
// (exit 1).
type usageErr struct{ msg string }

func (e *usageErr) Error() string { return e.msg }

func usageError(format string, args ...any) error {
	return &usageErr{msg: fmt.Sprintf(format, args...)}
}

func exitCode(err error) int {
	if err == nil {
		return 0
	}
	var ue *usageErr
	if errors.As(err, &ue) {
		fmt.Fprintln(os.Stderr, "error:", ue.msg)
		fmt.Fprint(os.Stderr, usage)
		return 2
	}
	var ov *domain.OverrideRequiredError
	if errors.As(err, &ov) {
		fmt.Fprintln(os.Stderr, "warning:", ov.Warning)
		fmt.Fprintln(os.Stderr, "re-run with --force to override")
		return 1
	}
	fmt.Fprintln(os.Stderr, "error:", err.Error())
	return 1
}


