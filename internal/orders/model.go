package orders

import "time"

type OrderStatus string

const (
	OrderPending        OrderStatus = "Pending"
	OrderPreparing      OrderStatus = "Preparing"
	OrderOutForDelivery OrderStatus = "Out for Delivery"
	OrderDelivered      OrderStatus = "Delivered"
	OrderCancelled      OrderStatus = "Cancelled"
)

func (s OrderStatus) IsValid() bool {
	switch s {
	case OrderPending, OrderPreparing, OrderOutForDelivery, OrderDelivered, OrderCancelled:
		return true
	}
	return false
}

// Active reports whether the order still needs kitchen or driver attention.
func (s OrderStatus) Active() bool {
	switch s {
	case OrderPending, OrderPreparing, OrderOutForDelivery:
		return true
	}
	return false
}

type Order struct {
	ID           string      `json:"id"`
	CustomerName string      `json:"customerName"`
	PizzaType    string      `json:"pizzaType"`
	Quantity     int         `json:"quantity"`
	OrderDate    string      `json:"orderDate"`
	Status       OrderStatus `json:"status"`
}

type ActivityType string

const (
	ActivityOrder    ActivityType = "order"
	ActivityCustomer ActivityType = "customer"
	ActivityDelivery ActivityType = "delivery"
	ActivitySystem   ActivityType = "system"
	ActivityPayment  ActivityType = "payment"
)

func (t ActivityType) IsValid() bool {
	switch t {
	case ActivityOrder, ActivityCustomer, ActivityDelivery, ActivitySystem, ActivityPayment:
		return true
	}
	return false
}

type ActivityStatus string

const (
	ActivitySuccess ActivityStatus = "success"
	ActivityWarning ActivityStatus = "warning"
	ActivityError   ActivityStatus = "error"
	ActivityInfo    ActivityStatus = "info"
)

func (s ActivityStatus) IsValid() bool {
	switch s {
	case ActivitySuccess, ActivityWarning, ActivityError, ActivityInfo:
		return true
	}
	return false
}

type Activity struct {
	ID          string         `json:"id"`
	Type        ActivityType   `json:"type"`
	Action      string         `json:"action"`
	Description string         `json:"description"`
	Timestamp   time.Time      `json:"timestamp"`
	User        string         `json:"user,omitempty"`
	OrderID     string         `json:"orderId,omitempty"`
	CustomerID  string         `json:"customerId,omitempty"`
	Status      ActivityStatus `json:"status"`
	Metadata    map[string]any `json:"metadata,omitempty"`
}

type DeliveryStatus string

const (
	DeliveryScheduled  DeliveryStatus = "scheduled"
	DeliveryInProgress DeliveryStatus = "in-progress"
	DeliveryCompleted  DeliveryStatus = "completed"
	DeliveryDelayed    DeliveryStatus = "delayed"
)

type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

func (p Priority) IsValid() bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh:
		return true
	}
	return false
}

type Delivery struct {
	ID                string         `json:"id"`
	OrderID           string         `json:"orderId"`
	CustomerName      string         `json:"customerName"`
	CustomerPhone     string         `json:"customerPhone"`
	Address           string         `json:"address"`
	ScheduledTime     time.Time      `json:"scheduledTime"`
	EstimatedDuration int            `json:"estimatedDuration"`
	Status            DeliveryStatus `json:"status"`
	DriverName        string         `json:"driverName"`
	Priority          Priority       `json:"priority"`
	Items             []string       `json:"items"`
	Notes             string         `json:"notes,omitempty"`
}
