package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"

	"restaurant-admin/internal/domain"
)

type reservationRepoStub struct {
	customer   domain.Customer
	customerOK bool
	table      domain.Table
	tableOK    bool
	blocking   []domain.BlockingReservation
	tables     []domain.Table
	upcoming   []domain.ReservationRow

	created []domain.ReservationRequest
}

func (s *reservationRepoStub) GetCustomer(ctx context.Context, id int64) (domain.Customer, bool, error) {
	return s.customer, s.customerOK, nil
}

func (s *reservationRepoStub) GetTable(ctx context.Context, id int64) (domain.Table, bool, error) {
	return s.table, s.tableOK, nil
}

func (s *reservationRepoStub) BlockingReservations(ctx context.Context, date string) ([]domain.BlockingReservation, error) {
	return s.blocking, nil
}

func (s *reservationRepoStub) CreateReservation(ctx context.Context, req domain.ReservationRequest) (int64, error) {
	s.created = append(s.created, req)
	return int64(len(s.created)), nil
}

func (s *reservationRepoStub) Upcoming(ctx context.Context) ([]domain.ReservationRow, error) {
	return s.upcoming, nil
}

func (s *reservationRepoStub) ListActiveTables(ctx context.Context) ([]domain.Table, error) {
	return s.tables, nil
}

func newReservationFixture() (*ReservationService, *reservationRepoStub) {
	repo := &reservationRepoStub{
		customer:   domain.Customer{ID: 7, FirstName: "Dana", LastName: "Reed"},
		customerOK: true,
		table:      domain.Table{ID: 3, Number: "T01", Capacity: 4, Active: true},
		tableOK:    true,
	}
	svc := NewReservationService(repo, zerolog.Nop())
	svc.now = func() time.Time {
		return time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	}
	return svc, repo
}

func validRequest() domain.ReservationRequest {
	return domain.ReservationRequest{
		CustomerID: 7,
		TableID:    3,
		Date:       "2025-06-01",
		Time:       "18:00",
		PartySize:  2,
	}
}

func TestCreateReservationValidation(t *testing.T) {
	t.Run("malformed date", func(t *testing.T) {
		svc, repo := newReservationFixture()
		req := validRequest()
		req.Date = "06/01/2025"
		_, err := svc.Create(context.Background(), req)
		var verr *domain.ValidationError
		assert.True(t, errors.As(err, &verr))
		assert.Empty(t, repo.created)
	})

	t.Run("past date", func(t *testing.T) {
		svc, repo := newReservationFixture()
		req := validRequest()
		req.Date = "2025-05-31"
		_, err := svc.Create(context.Background(), req)
		var verr *domain.ValidationError
		assert.True(t, errors.As(err, &verr))
		assert.Empty(t, repo.created)
	})

	t.Run("party size below one", func(t *testing.T) {
		svc, repo := newReservationFixture()
		req := validRequest()
		req.PartySize = 0
		_, err := svc.Create(context.Background(), req)
		var verr *domain.ValidationError
		assert.True(t, errors.As(err, &verr))
		assert.Empty(t, repo.created)
	})

	t.Run("unknown customer", func(t *testing.T) {
		svc, repo := newReservationFixture()
		repo.customerOK = false
		_, err := svc.Create(context.Background(), validRequest())
		var nf *domain.NotFoundError
		assert.True(t, errors.As(err, &nf))
		assert.Equal(t, "customer", nf.Entity)
	})

	t.Run("unknown table", func(t *testing.T) {
		svc, repo := newReservationFixture()
		repo.tableOK = false
		_, err := svc.Create(context.Background(), validRequest())
		var nf *domain.NotFoundError
		assert.True(t, errors.As(err, &nf))
		assert.Equal(t, "table", nf.Entity)
	})
}

func TestCreateReservationCapacityWarning(t *testing.T) {
	t.Run("aborts without override", func(t *testing.T) {
		svc, repo := newReservationFixture()
		req := validRequest()
		req.PartySize = 6
		_, err := svc.Create(context.Background(), req)
		var ov *domain.OverrideRequiredError
		assert.True(t, errors.As(err, &ov))
		assert.Empty(t, repo.created)
	})

	t.Run("proceeds with override and reports warning", func(t *testing.T) {
		svc, repo := newReservationFixture()
		req := validRequest()
		req.PartySize = 6
		req.Force = true
		conf, err := svc.Create(context.Background(), req)
		assert.NoError(t, err)
		assert.Len(t, repo.created, 1)
		assert.Len(t, conf.Warnings, 1)
	})
}

func TestCreateReservationConflictWindow(t *testing.T) {
	existing := domain.BlockingReservation{
		ID: 11, TableID: 3, Time: "18:00", Status: domain.ReservationConfirmed,
	}

	t.Run("45 minutes apart conflicts", func(t *testing.T) {
		svc, repo := newReservationFixture()
		repo.blocking = []domain.BlockingReservation{existing}
		req := validRequest()
		req.Time = "18:45"
		_, err := svc.Create(context.Background(), req)
		var conflict *domain.ConflictError
		assert.True(t, errors.As(err, &conflict))
		assert.Empty(t, repo.created, "no row may be inserted on conflict")
	})

	t.Run("70 minutes apart succeeds", func(t *testing.T) {
		svc, repo := newReservationFixture()
		repo.blocking = []domain.BlockingReservation{existing}
		req := validRequest()
		req.Time = "19:10"
		conf, err := svc.Create(context.Background(), req)
		assert.NoError(t, err)
		assert.Len(t, repo.created, 1)
		assert.Equal(t, "Dana Reed", conf.CustomerName)
		assert.Equal(t, "T01", conf.TableNumber)
	})

	t.Run("other table does not conflict", func(t *testing.T) {
		svc, repo := newReservationFixture()
		repo.blocking = []domain.BlockingReservation{
			{ID: 12, TableID: 99, Time: "18:00", Status: domain.ReservationSeated},
		}
		_, err := svc.Create(context.Background(), validRequest())
		assert.NoError(t, err)
		assert.Len(t, repo.created, 1)
	})
}

func TestAvailableTables(t *testing.T) {
	svc, repo := newReservationFixture()
	repo.tables = []domain.Table{
		{ID: 1, Number: "T01", Capacity: 2, Active: true},
		{ID: 2, Number: "T02", Capacity: 4, Active: true},
		{ID: 3, Number: "T03", Capacity: 6, Active: true},
	}
	repo.blocking = []domain.BlockingReservation{
		{ID: 1, TableID: 2, Time: "18:30", Status: domain.ReservationConfirmed},
		{ID: 2, TableID: 3, Time: "20:00", Status: domain.ReservationSeated},
	}

	free, err := svc.AvailableTables(context.Background(), "2025-06-01", "18:00")
	assert.NoError(t, err)

	var numbers []string
	for _, tb := range free {
		numbers = append(numbers, tb.Number)
	}
	assert.Equal(t, []string{"T01", "T03"}, numbers)
}

func TestUpcomingIsStableAcrossReads(t *testing.T) {
	svc, repo := newReservationFixture()
	repo.upcoming = []domain.ReservationRow{
		{ID: 1, Date: "2025-06-01", Time: "18:00", CustomerName: "Dana Reed", TableNumber: "T01", PartySize: 2},
		{ID: 2, Date: "2025-06-02", Time: "19:00", CustomerName: "Ken Ito", TableNumber: "T02", PartySize: 4},
	}

	first, err := svc.Upcoming(context.Background(), "")
	assert.NoError(t, err)
	second, err := svc.Upcoming(context.Background(), "")
	assert.NoError(t, err)
	assert.Equal(t, first, second)

	filtered, err := svc.Upcoming(context.Background(), "2025-06-02")
	assert.NoError(t, err)
	assert.Len(t, filtered, 1)
	assert.Equal(t, int64(2), filtered[0].ID)
}

func TestTimesConflict(t *testing.T) {
	cases := []struct {
		a, b string
		want bool
	}{
		{"18:00", "18:00", true},
		{"18:00", "18:45", true},
		{"18:00", "19:00", true}, // closed interval: exactly 60 min conflicts
		{"18:00", "19:01", false},
		{"18:00", "19:10", false},
		{"19:10", "18:00", false}, // symmetric
		{"17:00", "18:00", true},
	}
	for _, c := range cases {
		if got := timesConflict(c.a, c.b); got != c.want {
			t.Errorf("timesConflict(%s, %s) = %v, want %v", c.a, c.b, got, c.want)
		}
	}
}
