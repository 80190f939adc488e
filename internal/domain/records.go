package domain

// Input records consumed by the workflow layer and output records produced
// by it. Query results cross this boundary as typed structs, never as raw
// column maps.

type ReservationRequest struct {
	CustomerID int64
	TableID    int64
	Date       string // YYYY-MM-DD
	Time       string // HH:MM
	PartySize  int
	Notes      string
	Force      bool // override soft warnings
}

type ReservationConfirmation struct {
	ID           int64
	CustomerName string
	TableNumber  string
	Date         string
	Time         string
	PartySize    int
	Warnings     []string
}

type ReservationRow struct {
	ID           int64
	Date         string
	Time         string
	CustomerName string
	TableNumber  string
	PartySize    int
	Status       ReservationStatus
	Notes        string
}

// BlockingReservation is an existing reservation considered by the
// slot-conflict check.
type BlockingReservation struct {
	ID      int64
	TableID int64
	Time    string // HH:MM
	Status  ReservationStatus
}

type OrderCreateRequest struct {
	EmployeeID int64
	TableID    *int64
	CustomerID *int64
	Type       OrderType
}

type OrderConfirmation struct {
	ID         int64
	ServerName string
	Type       OrderType
	Status     OrderStatus
	Warnings   []string
}

type OrderItemRequest struct {
	OrderID  int64
	ItemID   int64
	Quantity int
	Notes    string
	Force    bool
}

type OrderItemResult struct {
	ItemName      string
	Quantity      int
	UnitPrice     float64
	ItemTotal     float64
	NewOrderTotal float64
	Warnings      []string
}

type MenuItemCreateRequest struct {
	Name        string
	Description string
	Price       float64
	CategoryID  int64
}

type MenuItemUpdateRequest struct {
	ItemID      int64
	Price       *float64
	Available   *bool
	Description *string
}

// MenuItemRecord is a menu item joined with its category name.
type MenuItemRecord struct {
	ID          int64
	Name        string
	Description string
	Price       float64
	Category    string
	Available   bool
}

// Report rows, one struct per aggregation query.

type DailyRevenueRow struct {
	Date       string
	OrderCount int
	Subtotal   float64
	Tax        float64
	Tips       float64
	Total      float64
}

type CategoryRevenueRow struct {
	Category   string
	OrderCount int
	ItemsSold  int
	Revenue    float64
}

type ServerRevenueRow struct {
	ServerName  string
	Role        Role
	OrderCount  int
	GrossSales  float64
	TotalTips   float64
	TotalRevenue float64
}

type PopularItemRow struct {
	ItemName     string
	Category     string
	TimesOrdered int
	Revenue      float64
}

type CustomerSpendingRow struct {
	CustomerID   int64
	CustomerName string
	Email        string
	OrderCount   int
	TotalSpent   float64
}

// AboveAverageCustomer annotates a spending row with the computed average
// it was compared against.
type AboveAverageCustomer struct {
	CustomerSpendingRow
	AverageSpending float64
}

type EmployeeRow struct {
	ID          int64
	Name        string
	Role        Role
	HourlyWage  float64
	ManagerName string
}
