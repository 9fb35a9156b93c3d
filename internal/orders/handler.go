package orders

import (
	"encoding/json"
	"fmt"
	"net/http"
	"regexp"
	"time"
	"unicode/utf8"

	"github.com/redmonkez12/pizza-dashboard/internal/httputil"
	"github.com/redmonkez12/pizza-dashboard/internal/logging"
)

var phonePattern = regexp.MustCompile(`^\+?[\d\s\-()]+$`)

// Handler contains HTTP handlers for the dashboard views: order listing,
// the activity log and the delivery schedule.
type Handler struct {
	store         *Store
	customerCount func() int
	logger        *logging.Logger
}

func NewHandler(store *Store, customerCount func() int, logger *logging.Logger) *Handler {
	return &Handler{store: store, customerCount: customerCount, logger: logger}
}

// DashboardStats is the summary shown on the dashboard landing page
type DashboardStats struct {
	TotalOrders     int `json:"totalOrders"`
	ActiveOrders    int `json:"activeOrders"`
	CompletedOrders int `json:"completedOrders"`
	CancelledOrders int `json:"cancelledOrders"`
	TotalCustomers  int `json:"totalCustomers"`
}

// Stats handles the dashboard summary
// @Summary      Dashboard stats
// @Description  Order and customer counts for the dashboard landing page
// @Tags         dashboard
// @Produce      json
// @Security     BearerAuth
// @Success      200 {object} DashboardStats
// @Router       /dashboard/stats [get]
func (h *Handler) Stats(w http.ResponseWriter, r *http.Request) {
	orderStats := h.store.OrderStats()
	httputil.RespondJSON(w, DashboardStats{
		TotalOrders:     orderStats.Total,
		ActiveOrders:    orderStats.Active,
		CompletedOrders: orderStats.Completed,
		CancelledOrders: orderStats.Cancelled,
		TotalCustomers:  h.customerCount(),
	}, http.StatusOK)
}

// OrdersResponse wraps an order listing
type OrdersResponse struct {
	Orders []Order    `json:"orders"`
	Stats  OrderStats `json:"stats"`
}

// ListOrders handles the order listing
// @Summary      List orders
// @Description  List pizza orders, optionally filtered by status or search query
// @Tags         dashboard
// @Produce      json
// @Security     BearerAuth
// @Param        status query string false "Status filter (Pending, Preparing, Out for Delivery, Delivered, Cancelled)"
// @Param        q query string false "Search query (customer, pizza type, id)"
// @Success      200 {object} OrdersResponse
// @Failure      400 {object} httputil.ErrorResponse "Unknown status"
// @Router       /dashboard/orders [get]
func (h *Handler) ListOrders(w http.ResponseWriter, r *http.Request) {
	status := OrderStatus(r.URL.Query().Get("status"))
	if status != "" && !status.IsValid() {
		httputil.RespondErrorWithCode(w, "unknown order status", httputil.CodeValidationFailed, http.StatusBadRequest)
		return
	}

	list := h.store.Orders(status, r.URL.Query().Get("q"))
	httputil.RespondJSON(w, OrdersResponse{Orders: list, Stats: h.store.OrderStats()}, http.StatusOK)
}

// ActivityResponse wraps an activity log listing
type ActivityResponse struct {
	Activities []Activity    `json:"activities"`
	Stats      ActivityStats `json:"stats"`
}

// ListActivity handles the activity log
// @Summary      Activity log
// @Description  List system activities, filtered by type, status, period and search query
// @Tags         dashboard
// @Produce      json
// @Security     BearerAuth
// @Param        type query string false "Type filter (order, customer, delivery, system, payment)"
// @Param        status query string false "Status filter (success, warning, error, info)"
// @Param        period query string false "Time window (today, week, month, all)" default(all)
// @Param        q query string false "Search query"
// @Success      200 {object} ActivityResponse
// @Failure      400 {object} httputil.ErrorResponse "Bad filter value"
// @Router       /dashboard/activity [get]
func (h *Handler) ListActivity(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	filter := ActivityFilter{
		Type:   ActivityType(q.Get("type")),
		Status: ActivityStatus(q.Get("status")),
		Query:  q.Get("q"),
	}
	if filter.Type != "" && !filter.Type.IsValid() {
		httputil.RespondErrorWithCode(w, "unknown activity type", httputil.CodeValidationFailed, http.StatusBadRequest)
		return
	}
	if filter.Status != "" && !filter.Status.IsValid() {
		httputil.RespondErrorWithCode(w, "unknown activity status", httputil.CodeValidationFailed, http.StatusBadRequest)
		return
	}

	now := time.Now()
	switch period := q.Get("period"); period {
	case "", "all":
	case "today":
		filter.Since = time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	case "week":
		filter.Since = now.AddDate(0, 0, -7)
	case "month":
		filter.Since = now.AddDate(0, 0, -30)
	default:
		httputil.RespondErrorWithCode(w, "unknown period", httputil.CodeValidationFailed, http.StatusBadRequest)
		return
	}

	list := h.store.Activities(filter)
	httputil.RespondJSON(w, ActivityResponse{Activities: list, Stats: SummarizeActivities(list)}, http.StatusOK)
}

// ScheduleResponse wraps the delivery schedule for one day
type ScheduleResponse struct {
	Deliveries []Delivery    `json:"deliveries"`
	Stats      DeliveryStats `json:"stats"`
	Drivers    []string      `json:"drivers"`
}

// ListSchedule handles the delivery schedule view
// @Summary      Delivery schedule
// @Description  List scheduled deliveries for a day (default today) with driver roster
// @Tags         dashboard
// @Produce      json
// @Security     BearerAuth
// @Param        date query string false "Day to show (YYYY-MM-DD)"
// @Success      200 {object} ScheduleResponse
// @Failure      400 {object} httputil.ErrorResponse "Bad date"
// @Router       /dashboard/schedule [get]
func (h *Handler) ListSchedule(w http.ResponseWriter, r *http.Request) {
	day := time.Now()
	if raw := r.URL.Query().Get("date"); raw != "" {
		parsed, err := time.ParseInLocation("2006-01-02", raw, day.Location())
		if err != nil {
			httputil.RespondErrorWithCode(w, "date must be YYYY-MM-DD", httputil.CodeValidationFailed, http.StatusBadRequest)
			return
		}
		day = parsed
	}

	list := h.store.Deliveries(day)
	httputil.RespondJSON(w, ScheduleResponse{
		Deliveries: list,
		Stats:      SummarizeDeliveries(list),
		Drivers:    h.store.Drivers(),
	}, http.StatusOK)
}

// ScheduleDeliveryRequest represents the schedule-delivery form
type ScheduleDeliveryRequest struct {
	OrderID           string   `json:"orderId"`
	CustomerName      string   `json:"customerName"`
	CustomerPhone     string   `json:"customerPhone"`
	Address           string   `json:"address"`
	ScheduledDate     string   `json:"scheduledDate"`
	ScheduledTime     string   `json:"scheduledTime"`
	EstimatedDuration int      `json:"estimatedDuration"`
	DriverName        string   `json:"driverName"`
	Priority          Priority `json:"priority"`
	Items             []string `json:"items"`
	Notes             string   `json:"notes"`
}

// ScheduleDelivery handles adding a delivery to the schedule
// @Summary      Schedule delivery
// @Description  Schedule a new delivery with driver assignment
// @Tags         dashboard
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body ScheduleDeliveryRequest true "Delivery details"
// @Success      201 {object} Delivery
// @Failure      400 {object} httputil.ErrorResponse "Validation error"
// @Router       /dashboard/schedule [post]
func (h *Handler) ScheduleDelivery(w http.ResponseWriter, r *http.Request) {
	logger := logging.GetLoggerFromContext(r.Context())

	var req ScheduleDeliveryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httputil.RespondErrorWithCode(w, "invalid request body", httputil.CodeInvalidRequestBody, http.StatusBadRequest)
		return
	}

	if msg := h.validateSchedule(&req); msg != "" {
		logger.Warn("delivery validation failed", "reason", msg)
		httputil.RespondErrorWithCode(w, msg, httputil.CodeValidationFailed, http.StatusBadRequest)
		return
	}

	scheduledAt, err := time.ParseInLocation("2006-01-02 15:04",
		fmt.Sprintf("%s %s", req.ScheduledDate, req.ScheduledTime), time.Now().Location())
	if err != nil {
		httputil.RespondErrorWithCode(w, "scheduled date and time must be YYYY-MM-DD and HH:MM", httputil.CodeValidationFailed, http.StatusBadRequest)
		return
	}

	created := h.store.ScheduleDelivery(ScheduleRequest{
		OrderID:           req.OrderID,
		CustomerName:      req.CustomerName,
		CustomerPhone:     req.CustomerPhone,
		Address:           req.Address,
		ScheduledTime:     scheduledAt,
		EstimatedDuration: req.EstimatedDuration,
		DriverName:        req.DriverName,
		Priority:          req.Priority,
		Items:             req.Items,
		Notes:             req.Notes,
	})

	logger.Info("delivery scheduled", "deliveryId", created.ID, "driver", created.DriverName)
	httputil.RespondJSON(w, created, http.StatusCreated)
}

func (h *Handler) validateSchedule(req *ScheduleDeliveryRequest) string {
	if req.OrderID == "" {
		return "order ID is required"
	}
	if utf8.RuneCountInString(req.CustomerName) < 2 {
		return "customer name must be at least 2 characters"
	}
	if req.CustomerPhone == "" || !phonePattern.MatchString(req.CustomerPhone) {
		return "please enter a valid phone number"
	}
	if utf8.RuneCountInString(req.Address) < 10 {
		return "please enter a complete address"
	}
	if req.ScheduledDate == "" {
		return "scheduled date is required"
	}
	if req.ScheduledTime == "" {
		return "scheduled time is required"
	}
	if req.EstimatedDuration < 10 {
		return "duration must be at least 10 minutes"
	}
	if req.EstimatedDuration > 120 {
		return "duration cannot exceed 120 minutes"
	}
	if req.DriverName == "" {
		return "please select a driver"
	}
	if !h.store.HasDriver(req.DriverName) {
		return "unknown driver"
	}
	if !req.Priority.IsValid() {
		return "please select a priority level"
	}
	if len(req.Items) == 0 {
		return "at least one item is required"
	}
	return ""
}
