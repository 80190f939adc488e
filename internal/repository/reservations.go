package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"restaurant-admin/internal/domain"
)

type ReservationRepositoryInterface interface {
	GetCustomer(ctx context.Context, id int64) (domain.Customer, bool, error)
	GetTable(ctx context.Context, id int64) (domain.Table, bool, error)
	BlockingReservations(ctx context.Context, date string) ([]domain.BlockingReservation, error)
	CreateReservation(ctx context.Context, req domain.ReservationRequest) (int64, error)
	Upcoming(ctx context.Context) ([]domain.ReservationRow, error)
	ListActiveTables(ctx context.Context) ([]domain.Table, error)
}

type ReservationRepository struct {
	db *sql.DB
}

func NewReservationRepository(db *sql.DB) ReservationRepositoryInterface {
	return &ReservationRepository{db: db}
}

func (r *ReservationRepository) GetCustomer(ctx context.Context, id int64) (domain.Customer, bool, error) {
	var c domain.Customer
	err := r.db.QueryRowContext(ctx, `
		SELECT customer_id, first_name, last_name, COALESCE(phone,''), COALESCE(email,'')
		FROM customers WHERE customer_id = $1
	`, id).Scan(&c.ID, &c.FirstName, &c.LastName, &c.Phone, &c.Email)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.Customer{}, false, nil
	}
	if err != nil {
		return domain.Customer{}, false, fmt.Errorf("get customer: %w", err)
	}
	return c, true, nil
}

func (r *ReservationRepository) GetTable(ctx context.Context, id int64) (domain.Table, bool, error) {
	var t domain.Table
	err := r.db.QueryRowContext(ctx, `
		SELECT table_id, table_number, capacity, location, is_active
		FROM tables WHERE table_id = $1
	`, id).Scan(&t.ID, &t.Number, &t.Capacity, &t.Location, &t.Active)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.Table{}, false, nil
	}
	if err != nil {
		return domain.Table{}, false, fmt.Errorf("get table: %w", err)
	}
	return t, true, nil
}

// BlockingReservations returns every reservation on the given date whose
// status occupies its table slot. The overlap-window rule itself lives in
// the workflow layer.
func (r *ReservationRepository) BlockingReservations(ctx context.Context, date string) ([]domain.BlockingReservation, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT reservation_id, table_id, to_char(reservation_time, 'HH24:MI'), status
		FROM reservations
		WHERE reservation_date = $1::date AND status IN ('Confirmed','Seated')
	`, date)
	if err != nil {
		return nil, fmt.Errorf("blocking reservations: %w", err)
	}
	defer rows.Close()

	var out []domain.BlockingReservation
	for rows.Next() {
		var b domain.BlockingReservation
		var status string
		if err := rows.Scan(&b.ID, &b.TableID, &b.Time, &status); err != nil {
			return nil, err
		}
		b.Status = domain.ReservationStatus(status)
		out = append(out, b)
	}
	return out, rows.Err()
}

func (r *ReservationRepository) CreateReservation(ctx context.Context, req domain.ReservationRequest) (int64, error) {
	var id int64
	err := r.db.QueryRowContext(ctx, `
		INSERT INTO reservations
		    (customer_id, table_id, reservation_date, reservation_time, party_size, special_requests)
		VALUES ($1, $2, $3::date, $4::time, $5, NULLIF($6, ''))
		RETURNING reservation_id
	`, req.CustomerID, req.TableID, req.Date, req.Time, req.PartySize, req.Notes).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("insert reservation: %w", err)
	}
	return id, nil
}

func (r *ReservationRepository) Upcoming(ctx context.Context) ([]domain.ReservationRow, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT r.reservation_id,
		       to_char(r.reservation_date, 'YYYY-MM-DD'),
		       to_char(r.reservation_time, 'HH24:MI'),
		       cu.first_name || ' ' || cu.last_name,
		       t.table_number,
		       r.party_size,
		       r.status,
		       COALESCE(r.special_requests, '')
		FROM reservations r
		JOIN customers cu ON cu.customer_id = r.customer_id
		JOIN tables t ON t.table_id = r.table_id
		WHERE r.reservation_date >= CURRENT_DATE
		  AND r.status IN ('Confirmed','Seated')
		ORDER BY r.reservation_date, r.reservation_time
	`)
	if err != nil {
		return nil, fmt.Errorf("upcoming reservations: %w", err)
	}
	defer rows.Close()

	var out []domain.ReservationRow
	for rows.Next() {
		var row domain.ReservationRow
		var status string
		if err := rows.Scan(&row.ID, &row.Date, &row.Time, &row.CustomerName,
			&row.TableNumber, &row.PartySize, &status, &row.Notes); err != nil {
			return nil, err
		}
		row.Status = domain.ReservationStatus(status)
		out = append(out, row)
	}
	return out, rows.Err()
}

func (r *ReservationRepository) ListActiveTables(ctx context.Context) ([]domain.Table, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT table_id, table_number, capacity, location, is_active
		FROM tables
		WHERE is_active
		ORDER BY location, capacity
	`)
	if err != nil {
		return nil, fmt.Errorf("list tables: %w", err)
	}
	defer rows.Close()

	var out []domain.Table
	for rows.Next() {
		var t domain.Table
		if err := rows.Scan(&t.ID, &t.Number, &t.Capacity, &t.Location, &t.Active); err != nil {
			return nil, err
		}
		out = append(out, t)
	}
	return out, rows.Err()
}
