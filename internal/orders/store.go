package orders

import (
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"
)

// Store keeps the dashboard's orders, activity log and delivery schedule in
// memory. Reads hand out copies so callers can't mutate shared state.
type Store struct {
	mu         sync.RWMutex
	orders     []Order
	activities []Activity
	deliveries []Delivery
	drivers    []string

	now func() time.Time
}

func NewStore() *Store {
	return &Store{
		drivers: []string{
			"Mike Johnson",
			"Sarah Martinez",
			"Alex Rodriguez",
			"Lisa Chen",
			"David Wilson",
		},
		now: time.Now,
	}
}

// Orders returns orders matching the optional status and free-text query.
// The query matches the customer name, pizza type and order ID.
func (s *Store) Orders(status OrderStatus, query string) []Order {
	s.mu.RLock()
	defer s.mu.RUnlock()

	query = strings.ToLower(query)
	out := make([]Order, 0, len(s.orders))
	for _, o := range s.orders {
		if status != "" && o.Status != status {
			continue
		}
		if query != "" &&
			!strings.Contains(strings.ToLower(o.CustomerName), query) &&
			!strings.Contains(strings.ToLower(o.PizzaType), query) &&
			!strings.Contains(strings.ToLower(o.ID), query) {
			continue
		}
		out = append(out, o)
	}
	return out
}

type OrderStats struct {
	Total     int `json:"total"`
	Active    int `json:"active"`
	Completed int `json:"completed"`
	Cancelled int `json:"cancelled"`
}

func (s *Store) OrderStats() OrderStats {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var stats OrderStats
	stats.Total = len(s.orders)
	for _, o := range s.orders {
		switch {
		case o.Status.Active():
			stats.Active++
		case o.Status == OrderDelivered:
			stats.Completed++
		case o.Status == OrderCancelled:
			stats.Cancelled++
		}
	}
	return stats
}

// ActivityFilter narrows the activity log. Zero values mean "no filter";
// a non-zero Since keeps only activities at or after that instant.
type ActivityFilter struct {
	Type   ActivityType
	Status ActivityStatus
	Query  string
	Since  time.Time
}

// Activities returns matching log entries, newest first.
func (s *Store) Activities(f ActivityFilter) []Activity {
	s.mu.RLock()
	defer s.mu.RUnlock()

	query := strings.ToLower(f.Query)
	out := make([]Activity, 0, len(s.activities))
	for _, a := range s.activities {
		if f.Type != "" && a.Type != f.Type {
			continue
		}
		if f.Status != "" && a.Status != f.Status {
			continue
		}
		if !f.Since.IsZero() && a.Timestamp.Before(f.Since) {
			continue
		}
		if query != "" && !activityMatches(&a, query) {
			continue
		}
		out = append(out, copyActivity(&a))
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].Timestamp.After(out[j].Timestamp)
	})
	return out
}

func activityMatches(a *Activity, query string) bool {
	return strings.Contains(strings.ToLower(a.Description), query) ||
		strings.Contains(strings.ToLower(a.Action), query) ||
		strings.Contains(strings.ToLower(a.User), query) ||
		strings.Contains(strings.ToLower(a.OrderID), query)
}

type ActivityStats struct {
	Total   int `json:"total"`
	Success int `json:"success"`
	Warning int `json:"warning"`
	Error   int `json:"error"`
	Info    int `json:"info"`
}

func SummarizeActivities(activities []Activity) ActivityStats {
	stats := ActivityStats{Total: len(activities)}
	for _, a := range activities {
		switch a.Status {
		case ActivitySuccess:
			stats.Success++
		case ActivityWarning:
			stats.Warning++
		case ActivityError:
			stats.Error++
		case ActivityInfo:
			stats.Info++
		}
	}
	return stats
}

// RecordActivity appends a log entry, assigning the next ACT ID.
func (s *Store) RecordActivity(a Activity) Activity {
	s.mu.Lock()
	defer s.mu.Unlock()

	a.ID = fmt.Sprintf("ACT%03d", len(s.activities)+1)
	if a.Timestamp.IsZero() {
		a.Timestamp = s.now()
	}
	s.activities = append(s.activities, a)
	return copyActivity(&a)
}

// Deliveries returns the schedule for the calendar day containing day,
// ordered by scheduled time.
func (s *Store) Deliveries(day time.Time) []Delivery {
	s.mu.RLock()
	defer s.mu.RUnlock()

	start := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, day.Location())
	end := start.AddDate(0, 0, 1)

	out := make([]Delivery, 0, len(s.deliveries))
	for _, d := range s.deliveries {
		t := d.ScheduledTime.In(day.Location())
		if t.Before(start) || !t.Before(end) {
			continue
		}
		out = append(out, copyDelivery(&d))
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].ScheduledTime.Before(out[j].ScheduledTime)
	})
	return out
}

type DeliveryStats struct {
	Total      int `json:"total"`
	Scheduled  int `json:"scheduled"`
	InProgress int `json:"inProgress"`
	Completed  int `json:"completed"`
	Delayed    int `json:"delayed"`
}

func SummarizeDeliveries(deliveries []Delivery) DeliveryStats {
	stats := DeliveryStats{Total: len(deliveries)}
	for _, d := range deliveries {
		switch d.Status {
		case DeliveryScheduled:
			stats.Scheduled++
		case DeliveryInProgress:
			stats.InProgress++
		case DeliveryCompleted:
			stats.Completed++
		case DeliveryDelayed:
			stats.Delayed++
		}
	}
	return stats
}

func (s *Store) Drivers() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]string, len(s.drivers))
	copy(out, s.drivers)
	return out
}

func (s *Store) HasDriver(name string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, d := range s.drivers {
		if d == name {
			return true
		}
	}
	return false
}

type ScheduleRequest struct {
	OrderID           string
	CustomerName      string
	CustomerPhone     string
	Address           string
	ScheduledTime     time.Time
	EstimatedDuration int
	DriverName        string
	Priority          Priority
	Items             []string
	Notes             string
}

// ScheduleDelivery adds a new scheduled delivery and records it in the
// activity log. Validation happens at the HTTP layer.
func (s *Store) ScheduleDelivery(req ScheduleRequest) Delivery {
	s.mu.Lock()

	d := Delivery{
		ID:                fmt.Sprintf("DEL%03d", len(s.deliveries)+1),
		OrderID:           req.OrderID,
		CustomerName:      req.CustomerName,
		CustomerPhone:     req.CustomerPhone,
		Address:           req.Address,
		ScheduledTime:     req.ScheduledTime,
		EstimatedDuration: req.EstimatedDuration,
		Status:            DeliveryScheduled,
		DriverName:        req.DriverName,
		Priority:          req.Priority,
		Items:             append([]string(nil), req.Items...),
		Notes:             req.Notes,
	}
	s.deliveries = append(s.deliveries, d)
	s.mu.Unlock()

	s.RecordActivity(Activity{
		Type:        ActivityDelivery,
		Action:      "Delivery Scheduled",
		Description: fmt.Sprintf("Delivery %s scheduled for %s with driver %s", d.ID, d.CustomerName, d.DriverName),
		User:        "System",
		OrderID:     d.OrderID,
		Status:      ActivityInfo,
	})

	return copyDelivery(&d)
}

func copyActivity(a *Activity) Activity {
	out := *a
	if a.Metadata != nil {
		out.Metadata = make(map[string]any, len(a.Metadata))
		for k, v := range a.Metadata {
			out.Metadata[k] = v
		}
	}
	return out
}

func copyDelivery(d *Delivery) Delivery {
	out := *d
	out.Items = append([]string(nil), d.Items...)
	return out
}
