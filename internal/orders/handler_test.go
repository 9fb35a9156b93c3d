package orders

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/redmonkez12/pizza-dashboard/internal/logging"
)

func newTestHandler(clock time.Time) (*Handler, *Store) {
	s := newSeededStore(clock)
	h := NewHandler(s, func() int { return 18 }, logging.NewLogger(true))
	return h, s
}

func TestStatsEndpoint(t *testing.T) {
	h, _ := newTestHandler(time.Date(2024, 3, 15, 12, 0, 0, 0, time.UTC))

	rec := httptest.NewRecorder()
	h.Stats(rec, httptest.NewRequest(http.MethodGet, "/dashboard/stats", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	var stats DashboardStats
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&stats))
	assert.Equal(t, 20, stats.TotalOrders)
	assert.Equal(t, 13, stats.ActiveOrders)
	assert.Equal(t, 18, stats.TotalCustomers)
}

func TestListOrdersRejectsUnknownStatus(t *testing.T) {
	h, _ := newTestHandler(time.Date(2024, 3, 15, 12, 0, 0, 0, time.UTC))

	rec := httptest.NewRecorder()
	h.ListOrders(rec, httptest.NewRequest(http.MethodGet, "/dashboard/orders?status=Eaten", nil))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestScheduleDeliveryEndpoint(t *testing.T) {
	h, s := newTestHandler(time.Date(2024, 3, 15, 12, 0, 0, 0, time.UTC))

	body, _ := json.Marshal(ScheduleDeliveryRequest{
		OrderID:           "PZA026",
		CustomerName:      "Nina Patel",
		CustomerPhone:     "+1 (555) 321-7654",
		Address:           "852 Fifth Ave, Manhattan, NY 10065",
		ScheduledDate:     "2024-03-15",
		ScheduledTime:     "18:30",
		EstimatedDuration: 30,
		DriverName:        "David Wilson",
		Priority:          PriorityMedium,
		Items:             []string{"Large Margherita Pizza"},
	})

	rec := httptest.NewRecorder()
	h.ScheduleDelivery(rec, httptest.NewRequest(http.MethodPost, "/dashboard/schedule", bytes.NewReader(body)))

	require.Equal(t, http.StatusCreated, rec.Code)
	var created Delivery
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&created))
	assert.Equal(t, "DEL011", created.ID)
	assert.Equal(t, DeliveryScheduled, created.Status)

	var found bool
	for _, d := range s.Deliveries(created.ScheduledTime) {
		if d.ID == created.ID {
			found = true
		}
	}
	assert.True(t, found)
}

func TestScheduleDeliveryValidation(t *testing.T) {
	h, _ := newTestHandler(time.Date(2024, 3, 15, 12, 0, 0, 0, time.UTC))

	valid := func() ScheduleDeliveryRequest {
		return ScheduleDeliveryRequest{
			OrderID:           "PZA026",
			CustomerName:      "Nina Patel",
			CustomerPhone:     "+1 (555) 321-7654",
			Address:           "852 Fifth Ave, Manhattan, NY 10065",
			ScheduledDate:     "2024-03-15",
			ScheduledTime:     "18:30",
			EstimatedDuration: 30,
			DriverName:        "David Wilson",
			Priority:          PriorityMedium,
			Items:             []string{"Large Margherita Pizza"},
		}
	}

	tests := []struct {
		name   string
		mutate func(*ScheduleDeliveryRequest)
	}{
		{"missing order id", func(r *ScheduleDeliveryRequest) { r.OrderID = "" }},
		{"short name", func(r *ScheduleDeliveryRequest) { r.CustomerName = "N" }},
		{"bad phone", func(r *ScheduleDeliveryRequest) { r.CustomerPhone = "call me" }},
		{"short address", func(r *ScheduleDeliveryRequest) { r.Address = "5th Ave" }},
		{"duration too short", func(r *ScheduleDeliveryRequest) { r.EstimatedDuration = 5 }},
		{"duration too long", func(r *ScheduleDeliveryRequest) { r.EstimatedDuration = 180 }},
		{"unknown driver", func(r *ScheduleDeliveryRequest) { r.DriverName = "Nobody Real" }},
		{"bad priority", func(r *ScheduleDeliveryRequest) { r.Priority = "urgent" }},
		{"no items", func(r *ScheduleDeliveryRequest) { r.Items = nil }},
		{"bad date", func(r *ScheduleDeliveryRequest) { r.ScheduledDate = "" }},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			req := valid()
			tc.mutate(&req)
			body, _ := json.Marshal(req)

			rec := httptest.NewRecorder()
			h.ScheduleDelivery(rec, httptest.NewRequest(http.MethodPost, "/dashboard/schedule", bytes.NewReader(body)))
			assert.Equal(t, http.StatusBadRequest, rec.Code)
		})
	}
}
