package domain

// Role is an employee role. Roles constrain which workflows an employee
// normally participates in; violations are warned about, not rejected.
type Role string

const (
	RoleManager   Role = "Manager"
	RoleHost      Role = "Host"
	RoleServer    Role = "Server"
	RoleBartender Role = "Bartender"
	RoleCook      Role = "Cook"
)

// CanTakeOrders reports whether the role is expected to open orders.
func (r Role) CanTakeOrders() bool {
	return r == RoleServer || r == RoleBartender || r == RoleManager
}

type OrderType string

const (
	OrderDineIn  OrderType = "Dine-In"
	OrderTakeout OrderType = "Takeout"
	OrderBar     OrderType = "Bar"
)

func (t OrderType) Valid() bool {
	return t == OrderDineIn || t == OrderTakeout || t == OrderBar
}

type OrderStatus string

const (
	OrderOpen       OrderStatus = "Open"
	OrderInProgress OrderStatus = "In Progress"
	OrderCompleted  OrderStatus = "Completed"
	OrderCancelled  OrderStatus = "Cancelled"
)

// Closed reports whether the order no longer accepts item additions.
func (s OrderStatus) Closed() bool {
	return s == OrderCompleted || s == OrderCancelled
}

type ReservationStatus string

const (
	ReservationConfirmed ReservationStatus = "Confirmed"
	ReservationSeated    ReservationStatus = "Seated"
	ReservationCancelled ReservationStatus = "Cancelled"
	ReservationNoShow    ReservationStatus = "No-Show"
)

// Blocks reports whether a reservation in this status occupies its table slot.
func (s ReservationStatus) Blocks() bool {
	return s == ReservationConfirmed || s == ReservationSeated
}

type Customer struct {
	ID        int64
	FirstName string
	LastName  string
	Phone     string
	Email     string
}

func (c Customer) FullName() string { return c.FirstName + " " + c.LastName }

type Employee struct {
	ID         int64
	FirstName  string
	LastName   string
	Role       Role
	Phone      string
	Email      string
	HireDate   string
	HourlyWage float64
	ManagerID  *int64
}

func (e Employee) FullName() string { return e.FirstName + " " + e.LastName }

type Table struct {
	ID       int64
	Number   string
	Capacity int
	Location string
	Active   bool
}

type Category struct {
	ID          int64
	Name        string
	Description string
}

type MenuItem struct {
	ID          int64
	Name        string
	Description string
	Price       float64
	CategoryID  int64
	Available   bool
}

type Order struct {
	ID         int64
	CustomerID *int64
	EmployeeID int64
	TableID    *int64
	Type       OrderType
	Status     OrderStatus
	Date       string
	Time       string
	Subtotal   float64
	Tax        float64
	Tip        float64
	Total      float64
}

type OrderItem struct {
	ID           int64
	OrderID      int64
	ItemID       int64
	Quantity     int
	UnitPrice    float64
	Instructions string
}
