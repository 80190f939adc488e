// Package seed populates the database with deterministic synthetic data
// for local development and demos.
package seed

import (
	"context"
	"database/sql"
	"fmt"
	"math"
	"math/rand"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

const randSeed = 42

// Counts reports how many rows Run inserted per table.
type Counts struct {
	Categories   int
	MenuItems    int
	Customers    int
	Employees    int
	Tables       int
	Shifts       int
	Reservations int
	Orders       int
	OrderItems   int
}

type seeder struct {
	tx  *sql.Tx
	rng *rand.Rand
	lg  zerolog.Logger
}

// Run inserts the full synthetic dataset in one transaction. taxRate is
// used to precompute order totals consistently with the workflow layer.
func Run(ctx context.Context, db *sql.DB, taxRate float64, lg zerolog.Logger) (Counts, error) {
	var counts Counts

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return counts, fmt.Errorf("begin transaction: %w", err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	s := &seeder{tx: tx, rng: rand.New(rand.NewSource(randSeed)), lg: lg}

	itemIDs, itemPrices, err := s.menu(ctx, &counts)
	if err != nil {
		return counts, err
	}
	customerIDs, err := s.customers(ctx, &counts)
	if err != nil {
		return counts, err
	}
	serverIDs, allEmployeeIDs, err := s.employees(ctx, &counts)
	if err != nil {
		return counts, err
	}
	tableIDs, tableCaps, err := s.tables(ctx, &counts)
	if err != nil {
		return counts, err
	}
	if err = s.shifts(ctx, allEmployeeIDs, &counts); err != nil {
		return counts, err
	}
	if err = s.reservations(ctx, customerIDs, tableIDs, tableCaps, &counts); err != nil {
		return counts, err
	}
	if err = s.orders(ctx, customerIDs, serverIDs, tableIDs, itemIDs, itemPrices, taxRate, &counts); err != nil {
		return counts, err
	}

	if err = tx.Commit(); err != nil {
		return counts, fmt.Errorf("commit transaction: %w", err)
	}
	s.lg.Info().Int("orders", counts.Orders).Int("customers", counts.Customers).
		Msg("seed data inserted")
	return counts, nil
}

func (s *seeder) menu(ctx context.Context, counts *Counts) ([]int64, map[int64]float64, error) {
	var itemIDs []int64
	prices := make(map[int64]float64)

	for _, cat := range menuData {
		var catID int64
		err := s.tx.QueryRowContext(ctx, `
			INSERT INTO categories (name, description) VALUES ($1, $2)
			RETURNING category_id
		`, cat.Name, "Our selection of "+cat.Name).Scan(&catID)
		if err != nil {
			return nil, nil, fmt.Errorf("insert category %s: %w", cat.Name, err)
		}
		counts.Categories++

		for _, item := range cat.Items {
			var itemID int64
			err := s.tx.QueryRowContext(ctx, `
				INSERT INTO menu_items (name, description, price, category_id)
				VALUES ($1, $2, $3, $4)
				RETURNING item_id
			`, item.Name, item.Description, item.Price, catID).Scan(&itemID)
			if err != nil {
				return nil, nil, fmt.Errorf("insert menu item %s: %w", item.Name, err)
			}
			itemIDs = append(itemIDs, itemID)
			prices[itemID] = item.Price
			counts.MenuItems++
		}
	}
	return itemIDs, prices, nil
}

func (s *seeder) customers(ctx context.Context, counts *Counts) ([]int64, error) {
	const total = 50
	var ids []int64

	for i := 0; i < total; i++ {
		first := firstNames[s.rng.Intn(len(firstNames))]
		last := lastNames[s.rng.Intn(len(lastNames))]
		email := fmt.Sprintf("%s.%s.%d@example.com", strings.ToLower(first), strings.ToLower(last), i)
		phone := fmt.Sprintf("555-%04d", s.rng.Intn(10000))

		var id int64
		err := s.tx.QueryRowContext(ctx, `
			INSERT INTO customers (first_name, last_name, phone, email)
			VALUES ($1, $2, $3, $4)
			RETURNING customer_id
		`, first, last, phone, email).Scan(&id)
		if err != nil {
			return nil, fmt.Errorf("insert customer: %w", err)
		}
		ids = append(ids, id)
		counts.Customers++
	}
	return ids, nil
}

type wageRange struct{ lo, hi float64 }

var wageRanges = map[string]wageRange{
	"Manager":   {25.00, 35.00},
	"Host":      {12.00, 15.00},
	"Server":    {2.13, 5.00}, // tipped minimum
	"Bartender": {7.50, 12.00},
	"Cook":      {14.00, 22.00},
}

func (s *seeder) employees(ctx context.Context, counts *Counts) (serverIDs, allIDs []int64, err error) {
	roles := []string{
		"Manager", "Manager", "Host", "Host",
		"Server", "Server", "Server", "Server", "Server", "Server", "Server", "Server",
		"Bartender", "Bartender", "Bartender",
		"Cook", "Cook", "Cook", "Cook", "Cook",
	}

	var managerIDs []int64
	for i, role := range roles {
		first := firstNames[s.rng.Intn(len(firstNames))]
		last := lastNames[s.rng.Intn(len(lastNames))]
		email := fmt.Sprintf("%s.%s.%d@restaurant.example", strings.ToLower(first), strings.ToLower(last), i)
		wr := wageRanges[role]
		wage := round2(wr.lo + s.rng.Float64()*(wr.hi-wr.lo))
		hire := time.Now().AddDate(0, 0, -s.rng.Intn(1500)).Format("2006-01-02")

		var managerID any
		if role != "Manager" && len(managerIDs) > 0 {
			managerID = managerIDs[s.rng.Intn(len(managerIDs))]
		}

		var id int64
		err := s.tx.QueryRowContext(ctx, `
			INSERT INTO employees (first_name, last_name, role, email, hire_date, hourly_wage, manager_id)
			VALUES ($1, $2, $3, $4, $5::date, $6, $7)
			RETURNING employee_id
		`, first, last, role, email, hire, wage, managerID).Scan(&id)
		if err != nil {
			return nil, nil, fmt.Errorf("insert employee: %w", err)
		}
		allIDs = append(allIDs, id)
		counts.Employees++

		switch role {
		case "Manager":
			managerIDs = append(managerIDs, id)
		case "Server", "Bartender":
			serverIDs = append(serverIDs, id)
		}
	}
	return serverIDs, allIDs, nil
}

func (s *seeder) tables(ctx context.Context, counts *Counts) ([]int64, map[int64]int, error) {
	capacities := []int{2, 2, 2, 4, 4, 4, 4, 6, 6, 6, 8, 8}
	var ids []int64
	caps := make(map[int64]int)

	for i, capacity := range capacities {
		number := fmt.Sprintf("T%02d", i+1)
		location := tableLocations[s.rng.Intn(len(tableLocations))]

		var id int64
		err := s.tx.QueryRowContext(ctx, `
			INSERT INTO tables (table_number, capacity, location)
			VALUES ($1, $2, $3)
			RETURNING table_id
		`, number, capacity, location).Scan(&id)
		if err != nil {
			return nil, nil, fmt.Errorf("insert table %s: %w", number, err)
		}
		ids = append(ids, id)
		caps[id] = capacity
		counts.Tables++
	}
	return ids, caps, nil
}

func (s *seeder) shifts(ctx context.Context, employeeIDs []int64, counts *Counts) error {
	starts := []string{"10:00", "11:00", "16:00", "17:00"}

	for _, empID := range employeeIDs {
		for day := 0; day < 14; day++ {
			if s.rng.Float64() > 0.4 { // roughly 5-6 shifts per two weeks
				continue
			}
			date := time.Now().AddDate(0, 0, day).Format("2006-01-02")
			start := starts[s.rng.Intn(len(starts))]
			startMin := mustMinute(start)
			end := fmt.Sprintf("%02d:%02d", (startMin/60+8)%24, startMin%60)

			_, err := s.tx.ExecContext(ctx, `
				INSERT INTO shifts (employee_id, shift_date, start_time, end_time)
				VALUES ($1, $2::date, $3::time, $4::time)
			`, empID, date, start, end)
			if err != nil {
				return fmt.Errorf("insert shift: %w", err)
			}
			counts.Shifts++
		}
	}
	return nil
}

func (s *seeder) reservations(ctx context.Context, customerIDs, tableIDs []int64, tableCaps map[int64]int, counts *Counts) error {
	times := []string{"17:00", "17:30", "18:00", "18:30", "19:00", "19:30", "20:00", "20:30"}
	statuses := []string{"Confirmed", "Confirmed", "Confirmed", "Seated", "Cancelled", "No-Show"}
	requests := []string{"", "", "", "Window seat please", "Birthday celebration", "High chair needed", "Anniversary"}

	for day := 0; day < 14; day++ {
		date := time.Now().AddDate(0, 0, day).Format("2006-01-02")
		used := make(map[string]bool)

		for i := 0; i < 6; i++ {
			tableID := tableIDs[s.rng.Intn(len(tableIDs))]
			slot := times[s.rng.Intn(len(times))]
			key := fmt.Sprintf("%d@%s", tableID, slot)
			if used[key] {
				continue
			}
			used[key] = true

			capacity := tableCaps[tableID]
			party := 1 + s.rng.Intn(capacity)

			_, err := s.tx.ExecContext(ctx, `
				INSERT INTO reservations
				    (customer_id, table_id, reservation_date, reservation_time, party_size, status, special_requests)
				VALUES ($1, $2, $3::date, $4::time, $5, $6, NULLIF($7, ''))
			`, customerIDs[s.rng.Intn(len(customerIDs))], tableID, date, slot, party,
				statuses[s.rng.Intn(len(statuses))], requests[s.rng.Intn(len(requests))])
			if err != nil {
				return fmt.Errorf("insert reservation: %w", err)
			}
			counts.Reservations++
		}
	}
	return nil
}

func (s *seeder) orders(ctx context.Context, customerIDs, serverIDs, tableIDs, itemIDs []int64,
	itemPrices map[int64]float64, taxRate float64, counts *Counts) error {

	const total = 150
	orderTypes := []string{
		"Dine-In", "Dine-In", "Dine-In", "Dine-In", "Dine-In", "Dine-In", "Dine-In",
		"Takeout", "Takeout", "Bar",
	}
	orderTimes := []string{
		"11:30", "12:00", "12:30", "13:00",
		"17:30", "18:00", "18:30", "19:00", "19:30", "20:00", "20:30", "21:00",
	}

	for i := 0; i < total; i++ {
		daysAgo := s.rng.Intn(91)
		date := time.Now().AddDate(0, 0, -daysAgo).Format("2006-01-02")
		orderType := orderTypes[s.rng.Intn(len(orderTypes))]

		status := "Completed"
		if daysAgo <= 1 {
			status = []string{"Open", "In Progress", "Completed"}[s.rng.Intn(3)]
		}

		var customerID any
		if s.rng.Float64() > 0.3 {
			customerID = customerIDs[s.rng.Intn(len(customerIDs))]
		}
		var tableID any
		if orderType == "Dine-In" {
			tableID = tableIDs[s.rng.Intn(len(tableIDs))]
		}

		// line items drawn up front so totals can be computed with the insert
		numItems := 2 + s.rng.Intn(5)
		var subtotal float64
		type line struct {
			itemID int64
			qty    int
			price  float64
		}
		var lines []line
		for j := 0; j < numItems; j++ {
			itemID := itemIDs[s.rng.Intn(len(itemIDs))]
			qty := 1 + s.rng.Intn(3)
			price := itemPrices[itemID]
			lines = append(lines, line{itemID: itemID, qty: qty, price: price})
			subtotal += float64(qty) * price
		}
		subtotal = round2(subtotal)
		tax := round2(subtotal * taxRate)
		var tip float64
		if status == "Completed" {
			tip = round2(subtotal * (0.15 + s.rng.Float64()*0.10))
		}
		orderTotal := round2(subtotal + tax + tip)

		var orderID int64
		err := s.tx.QueryRowContext(ctx, `
			INSERT INTO orders
			    (customer_id, employee_id, table_id, order_type, status, order_date, order_time,
			     subtotal, tax, tip, total)
			VALUES ($1, $2, $3, $4, $5, $6::date, $7::time, $8, $9, $10, $11)
			RETURNING order_id
		`, customerID, serverIDs[s.rng.Intn(len(serverIDs))], tableID, orderType, status,
			date, orderTimes[s.rng.Intn(len(orderTimes))], subtotal, tax, tip, orderTotal).Scan(&orderID)
		if err != nil {
			return fmt.Errorf("insert order: %w", err)
		}
		counts.Orders++

		for _, ln := range lines {
			_, err := s.tx.ExecContext(ctx, `
				INSERT INTO order_items (order_id, item_id, quantity, unit_price)
				VALUES ($1, $2, $3, $4)
			`, orderID, ln.itemID, ln.qty, ln.price)
			if err != nil {
				return fmt.Errorf("insert order item: %w", err)
			}
			counts.OrderItems++
		}
	}
	return nil
}

func round2(v float64) float64 { return math.Round(v*100) / 100 }

func mustMinute(hhmm string) int {
	t, err := time.Parse("15:04", hhmm)
	if err != nil {
		return 0
	}
	return t.Hour()*60 + t.Minute()
}
