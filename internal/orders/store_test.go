package orders

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSeededStore(clock time.Time) *Store {
	s := NewStore()
	s.now = func() time.Time { return clock }
	SeedDemo(s)
	return s
}

func TestOrderStatsFromSeed(t *testing.T) {
	s := newSeededStore(time.Date(2024, 3, 15, 12, 0, 0, 0, time.UTC))

	stats := s.OrderStats()
	assert.Equal(t, 20, stats.Total)
	assert.Equal(t, 13, stats.Active)
	assert.Equal(t, 5, stats.Completed)
	assert.Equal(t, 2, stats.Cancelled)
}

func TestOrdersFilter(t *testing.T) {
	s := newSeededStore(time.Date(2024, 3, 15, 12, 0, 0, 0, time.UTC))

	assert.Len(t, s.Orders(OrderDelivered, ""), 5)
	assert.Len(t, s.Orders(OrderCancelled, ""), 2)

	byQuery := s.Orders("", "hawaiian")
	require.Len(t, byQuery, 4)
	for _, o := range byQuery {
		assert.Equal(t, "Hawaiian", o.PizzaType)
	}

	byID := s.Orders("", "pza001")
	require.Len(t, byID, 1)
	assert.Equal(t, "John Smith", byID[0].CustomerName)

	assert.Len(t, s.Orders(OrderDelivered, "hawaiian"), 1)
}

func TestActivitiesNewestFirst(t *testing.T) {
	s := newSeededStore(time.Date(2024, 3, 15, 12, 0, 0, 0, time.UTC))

	list := s.Activities(ActivityFilter{})
	require.Len(t, list, 20)
	for i := 1; i < len(list); i++ {
		assert.False(t, list[i-1].Timestamp.Before(list[i].Timestamp))
	}
}

func TestActivitiesFilters(t *testing.T) {
	clock := time.Date(2024, 3, 15, 12, 0, 0, 0, time.UTC)
	s := newSeededStore(clock)

	today := time.Date(clock.Year(), clock.Month(), clock.Day(), 0, 0, 0, 0, clock.Location())
	assert.Len(t, s.Activities(ActivityFilter{Since: today}), 10)

	assert.Len(t, s.Activities(ActivityFilter{Type: ActivityPayment}), 2)
	assert.Len(t, s.Activities(ActivityFilter{Status: ActivityError}), 3)
	assert.Len(t, s.Activities(ActivityFilter{Type: ActivityDelivery, Status: ActivityError}), 1)

	byQuery := s.Activities(ActivityFilter{Query: "pza025"})
	assert.Len(t, byQuery, 2)
}

func TestActivityStatsFromSeed(t *testing.T) {
	s := newSeededStore(time.Date(2024, 3, 15, 12, 0, 0, 0, time.UTC))

	stats := SummarizeActivities(s.Activities(ActivityFilter{}))
	assert.Equal(t, 20, stats.Total)
	assert.Equal(t, 9, stats.Success)
	assert.Equal(t, 3, stats.Warning)
	assert.Equal(t, 3, stats.Error)
	assert.Equal(t, 5, stats.Info)
}

func TestRecordActivityAssignsNextID(t *testing.T) {
	s := newSeededStore(time.Date(2024, 3, 15, 12, 0, 0, 0, time.UTC))

	a := s.RecordActivity(Activity{
		Type:        ActivityOrder,
		Action:      "Order Created",
		Description: "New order PZA026 created",
		Status:      ActivitySuccess,
	})
	assert.Equal(t, "ACT021", a.ID)
	assert.False(t, a.Timestamp.IsZero())
	assert.Len(t, s.Activities(ActivityFilter{}), 21)
}

func TestDeliveriesForDay(t *testing.T) {
	clock := time.Date(2024, 3, 15, 12, 0, 0, 0, time.UTC)
	s := newSeededStore(clock)

	today := s.Deliveries(clock)
	require.Len(t, today, 10)
	for i := 1; i < len(today); i++ {
		assert.False(t, today[i].ScheduledTime.Before(today[i-1].ScheduledTime))
	}

	assert.Empty(t, s.Deliveries(clock.AddDate(0, 0, -1)))
	assert.Empty(t, s.Deliveries(clock.AddDate(0, 0, 1)))
}

func TestDeliveryStatsFromSeed(t *testing.T) {
	clock := time.Date(2024, 3, 15, 12, 0, 0, 0, time.UTC)
	s := newSeededStore(clock)

	stats := SummarizeDeliveries(s.Deliveries(clock))
	assert.Equal(t, 10, stats.Total)
	assert.Equal(t, 6, stats.Scheduled)
	assert.Equal(t, 2, stats.InProgress)
	assert.Equal(t, 1, stats.Completed)
	assert.Equal(t, 1, stats.Delayed)
}

func TestScheduleDelivery(t *testing.T) {
	clock := time.Date(2024, 3, 15, 12, 0, 0, 0, time.UTC)
	s := newSeededStore(clock)

	created := s.ScheduleDelivery(ScheduleRequest{
		OrderID:           "PZA026",
		CustomerName:      "Nina Patel",
		CustomerPhone:     "+1 (555) 321-7654",
		Address:           "852 Fifth Ave, Manhattan, NY 10065",
		ScheduledTime:     clock.Add(2 * time.Hour),
		EstimatedDuration: 30,
		DriverName:        "David Wilson",
		Priority:          PriorityMedium,
		Items:             []string{"Large Margherita Pizza"},
	})

	assert.Equal(t, "DEL011", created.ID)
	assert.Equal(t, DeliveryScheduled, created.Status)
	assert.Len(t, s.Deliveries(clock), 11)

	logged := s.Activities(ActivityFilter{Query: created.ID})
	require.Len(t, logged, 1)
	assert.Equal(t, "Delivery Scheduled", logged[0].Action)
	assert.Equal(t, "PZA026", logged[0].OrderID)
}

func TestReadsReturnCopies(t *testing.T) {
	clock := time.Date(2024, 3, 15, 12, 0, 0, 0, time.UTC)
	s := newSeededStore(clock)

	acts := s.Activities(ActivityFilter{Query: "pza025"})
	require.NotEmpty(t, acts)
	for k := range acts[0].Metadata {
		acts[0].Metadata[k] = "tampered"
	}
	fresh := s.Activities(ActivityFilter{Query: "pza025"})
	assert.NotEqual(t, "tampered", fresh[0].Metadata["amount"])

	dels := s.Deliveries(clock)
	require.NotEmpty(t, dels)
	dels[0].Items[0] = "tampered"
	fresh2 := s.Deliveries(clock)
	assert.NotEqual(t, "tampered", fresh2[0].Items[0])
}
