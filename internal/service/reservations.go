package service

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"restaurant-admin/internal/domain"
	"restaurant-admin/internal/repository"
)

const (
	dateLayout = "2006-01-02"
	timeLayout = "15:04"
)

// conflictWindow is the symmetric overlap window: two reservations for the
// same table conflict when their times are at most this far apart,
// regardless of actual meal duration.
const conflictWindow = 60 * time.Minute

type ReservationService struct {
	repo repository.ReservationRepositoryInterface
	lg   zerolog.Logger
	now  func() time.Time
}

func NewReservationService(repo repository.ReservationRepositoryInterface, lg zerolog.Logger) *ReservationService {
	return &ReservationService{repo: repo, lg: lg, now: time.Now}
}

// Create validates the reservation request and inserts it. Preconditions
// run in order; the first hard failure aborts before any write.
func (s *ReservationService) Create(ctx context.Context, req domain.ReservationRequest) (domain.ReservationConfirmation, error) {
	var zero domain.ReservationConfirmation

	if _, err := time.Parse(dateLayout, req.Date); err != nil {
		return zero, domain.Validationf("invalid date %q, expected YYYY-MM-DD", req.Date)
	}
	if _, err := time.Parse(timeLayout, req.Time); err != nil {
		return zero, domain.Validationf("invalid time %q, expected HH:MM", req.Time)
	}
	if req.Date < s.now().Format(dateLayout) {
		return zero, domain.Validationf("cannot create a reservation for a past date")
	}
	if req.PartySize < 1 {
		return zero, domain.Validationf("party size must be at least 1")
	}

	customer, ok, err := s.repo.GetCustomer(ctx, req.CustomerID)
	if err != nil {
		return zero, domain.Storage("lookup customer", err)
	}
	if !ok {
		return zero, &domain.NotFoundError{Entity: "customer", ID: req.CustomerID}
	}

	table, ok, err := s.repo.GetTable(ctx, req.TableID)
	if err != nil {
		return zero, domain.Storage("lookup table", err)
	}
	if !ok {
		return zero, &domain.NotFoundError{Entity: "table", ID: req.TableID}
	}

	var warnings []string
	if req.PartySize > table.Capacity {
		warning := fmt.Sprintf("party size %d exceeds table %s capacity %d",
			req.PartySize, table.Number, table.Capacity)
		if !req.Force {
			return zero, &domain.OverrideRequiredError{Warning: warning}
		}
		s.lg.Warn().Str("table", table.Number).Int("party_size", req.PartySize).Msg(warning)
		warnings = append(warnings, warning)
	}

	blocking, err := s.repo.BlockingReservations(ctx, req.Date)
	if err != nil {
		return zero, domain.Storage("check reservation conflicts", err)
	}
	for _, b := range blocking {
		if b.TableID == req.TableID && timesConflict(req.Time, b.Time) {
			return zero, &domain.ConflictError{
				Reason: fmt.Sprintf("table %s is already reserved at %s on %s",
					table.Number, b.Time, req.Date),
			}
		}
	}

	id, err := s.repo.CreateReservation(ctx, req)
	if err != nil {
		return zero, domain.Storage("create reservation", err)
	}

	s.lg.Info().Int64("reservation_id", id).Str("date", req.Date).Str("time", req.Time).
		Msg("reservation created")

	return domain.ReservationConfirmation{
		ID:           id,
		CustomerName: customer.FullName(),
		TableNumber:  table.Number,
		Date:         req.Date,
		Time:         req.Time,
		PartySize:    req.PartySize,
		Warnings:     warnings,
	}, nil
}

// AvailableTables returns the active tables with no blocking reservation
// within the overlap window of the given slot.
func (s *ReservationService) AvailableTables(ctx context.Context, date, slot string) ([]domain.Table, error) {
	if _, err := time.Parse(dateLayout, date); err != nil {
		return nil, domain.Validationf("invalid date %q, expected YYYY-MM-DD", date)
	}
	if _, err := time.Parse(timeLayout, slot); err != nil {
		return nil, domain.Validationf("invalid time %q, expected HH:MM", slot)
	}

	tables, err := s.repo.ListActiveTables(ctx)
	if err != nil {
		return nil, domain.Storage("list tables", err)
	}
	blocking, err := s.repo.BlockingReservations(ctx, date)
	if err != nil {
		return nil, domain.Storage("check reservation conflicts", err)
	}

	taken := make(map[int64]bool)
	for _, b := range blocking {
		if timesConflict(slot, b.Time) {
			taken[b.TableID] = true
		}
	}

	var free []domain.Table
	for _, t := range tables {
		if !taken[t.ID] {
			free = append(free, t)
		}
	}
	return free, nil
}

// Upcoming lists reservations from today forward, optionally filtered to a
// single date.
func (s *ReservationService) Upcoming(ctx context.Context, date string) ([]domain.ReservationRow, error) {
	if date != "" {
		if _, err := time.Parse(dateLayout, date); err != nil {
			return nil, domain.Validationf("invalid date %q, expected YYYY-MM-DD", date)
		}
	}
	rows, err := s.repo.Upcoming(ctx)
	if err != nil {
		return nil, domain.Storage("list reservations", err)
	}
	if date == "" {
		return rows, nil
	}
	var filtered []domain.ReservationRow
	for _, r := range rows {
		if r.Date == date {
			filtered = append(filtered, r)
		}
	}
	return filtered, nil
}

// timesConflict applies the closed ±window rule to two HH:MM times on the
// same date.
func timesConflict(a, b string) bool {
	am, aerr := minuteOfDay(a)
	bm, berr := minuteOfDay(b)
	if aerr != nil || berr != nil {
		return false
	}
	diff := am - bm
	if diff < 0 {
		diff = -diff
	}
	return time.Duration(diff)*time.Minute <= conflictWindow
}

func minuteOfDay(hhmm string) (int, error) {
	t, err := time.Parse(timeLayout, hhmm)
	if err != nil {
		return 0, err
	}
	return t.Hour()*60 + t.Minute(), nil
}
