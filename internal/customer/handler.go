package customer

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/mail"
	"regexp"
	"unicode"

	"github.com/redmonkez12/pizza-dashboard/internal/httputil"
	"github.com/redmonkez12/pizza-dashboard/internal/logging"
)

var (
	namePattern  = regexp.MustCompile(`^[a-zA-Z0-9\s\-\.']+$`)
	phonePattern = regexp.MustCompile(`^\+?[\d\s\-()]+$`)
)

// Handler contains HTTP handlers for the customer directory
type Handler struct {
	repo   *Repository
	logger *logging.Logger
}

func NewHandler(repo *Repository, logger *logging.Logger) *Handler {
	return &Handler{repo: repo, logger: logger}
}

// CreateRequest represents the add-customer form
type CreateRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
	Status  Status `json:"status"`
	Notes   string `json:"notes"`
}

// UpdateBody represents a customer update; nil fields are left unchanged
type UpdateBody struct {
	ID      string  `json:"id"`
	Name    *string `json:"name"`
	Email   *string `json:"email"`
	Phone   *string `json:"phone"`
	Address *string `json:"address"`
	Status  *Status `json:"status"`
	Notes   *string `json:"notes"`
}

// ListResponse wraps a customer listing
type ListResponse struct {
	Customers []*Customer `json:"customers"`
	Count     int         `json:"count"`
}

// List handles customer listing, search, and status filtering
// @Summary      List customers
// @Description  List all customers, optionally filtered by search query or status
// @Tags         customers
// @Produce      json
// @Security     BearerAuth
// @Param        q query string false "Search query (name, email, phone, id)"
// @Param        status query string false "Status filter (active, inactive, vip)"
// @Success      200 {object} ListResponse
// @Router       /customers [get]
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("q")
	status := Status(r.URL.Query().Get("status"))

	var customers []*Customer
	switch {
	case query != "":
		customers = h.repo.Search(query)
	case status != "":
		customers = h.repo.ByStatus(status)
	default:
		customers = h.repo.All()
	}

	httputil.RespondJSON(w, ListResponse{Customers: customers, Count: len(customers)}, http.StatusOK)
}

// Create handles adding a new customer
// @Summary      Create customer
// @Description  Add a new customer to the directory
// @Tags         customers
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body CreateRequest true "Customer details"
// @Success      201 {object} Customer
// @Failure      400 {object} httputil.ErrorResponse "Validation error"
// @Failure      409 {object} httputil.ErrorResponse "Email already exists"
// @Router       /customers [post]
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	logger := logging.GetLoggerFromContext(r.Context())

	var req CreateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httputil.RespondErrorWithCode(w, "invalid request body", httputil.CodeInvalidRequestBody, http.StatusBadRequest)
		return
	}

	if msg := validateCreate(&req); msg != "" {
		logger.Warn("customer validation failed", "reason", msg)
		httputil.RespondErrorWithCode(w, msg, httputil.CodeValidationFailed, http.StatusBadRequest)
		return
	}

	created, err := h.repo.Create(req.Name, req.Email, req.Phone, req.Address, req.Status, req.Notes)
	if err != nil {
		if errors.Is(err, ErrDuplicateEmail) {
			logger.Warn("customer creation failed: duplicate email", "email", req.Email)
			httputil.RespondErrorWithCode(w, "customer with this email already exists", httputil.CodeCustomerExists, http.StatusConflict)
			return
		}
		logger.Error("customer creation failed", "error", err.Error())
		httputil.RespondErrorWithCode(w, "failed to create customer", httputil.CodeInternalError, http.StatusInternalServerError)
		return
	}

	logger.Info("customer created", "customer_id", created.ID)
	httputil.RespondJSON(w, created, http.StatusCreated)
}

// Update handles customer updates
// @Summary      Update customer
// @Description  Update an existing customer; omitted fields are left unchanged
// @Tags         customers
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body UpdateBody true "Customer ID and fields to change"
// @Success      200 {object} Customer
// @Failure      400 {object} httputil.ErrorResponse "Validation error"
// @Failure      404 {object} httputil.ErrorResponse "Customer not found"
// @Router       /customers [put]
func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	logger := logging.GetLoggerFromContext(r.Context())

	var body UpdateBody
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		httputil.RespondErrorWithCode(w, "invalid request body", httputil.CodeInvalidRequestBody, http.StatusBadRequest)
		return
	}
	if body.ID == "" {
		httputil.RespondErrorWithCode(w, "customer ID is required", httputil.CodeCustomerIDRequired, http.StatusBadRequest)
		return
	}

	if msg := validateUpdate(&body); msg != "" {
		logger.Warn("customer validation failed", "reason", msg)
		httputil.RespondErrorWithCode(w, msg, httputil.CodeValidationFailed, http.StatusBadRequest)
		return
	}

	updated, err := h.repo.Update(body.ID, UpdateRequest{
		Name:    body.Name,
		Email:   body.Email,
		Phone:   body.Phone,
		Address: body.Address,
		Status:  body.Status,
		Notes:   body.Notes,
	})
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			httputil.RespondErrorWithCode(w, "customer not found", httputil.CodeCustomerNotFound, http.StatusNotFound)
			return
		}
		if errors.Is(err, ErrDuplicateEmail) {
			httputil.RespondErrorWithCode(w, "customer with this email already exists", httputil.CodeCustomerExists, http.StatusConflict)
			return
		}
		logger.Error("customer update failed", "error", err.Error())
		httputil.RespondErrorWithCode(w, "failed to update customer", httputil.CodeInternalError, http.StatusInternalServerError)
		return
	}

	logger.Info("customer updated", "customer_id", updated.ID)
	httputil.RespondJSON(w, updated, http.StatusOK)
}

// Delete handles customer deletion
// @Summary      Delete customer
// @Description  Remove a customer from the directory
// @Tags         customers
// @Produce      json
// @Security     BearerAuth
// @Param        id query string true "Customer ID"
// @Success      200 {object} map[string]string
// @Failure      404 {object} httputil.ErrorResponse "Customer not found"
// @Router       /customers [delete]
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	logger := logging.GetLoggerFromContext(r.Context())

	id := r.URL.Query().Get("id")
	if id == "" {
		httputil.RespondErrorWithCode(w, "customer ID is required", httputil.CodeCustomerIDRequired, http.StatusBadRequest)
		return
	}

	if err := h.repo.Delete(id); err != nil {
		httputil.RespondErrorWithCode(w, "customer not found", httputil.CodeCustomerNotFound, http.StatusNotFound)
		return
	}

	logger.Info("customer deleted", "customer_id", id)
	httputil.RespondJSON(w, map[string]string{"message": "customer deleted successfully"}, http.StatusOK)
}

// validateCreate mirrors the dashboard's add-customer form rules
func validateCreate(req *CreateRequest) string {
	if msg := validateName(req.Name); msg != "" {
		return msg
	}
	if _, err := mail.ParseAddress(req.Email); err != nil {
		return "please enter a valid email address"
	}
	if msg := validatePhone(req.Phone); msg != "" {
		return msg
	}
	if msg := validateAddress(req.Address); msg != "" {
		return msg
	}
	if !req.Status.IsValid() {
		return "please select a customer status"
	}
	if len(req.Notes) > 500 {
		return "notes must be less than 500 characters"
	}
	return ""
}

func validateUpdate(body *UpdateBody) string {
	if body.Name != nil {
		if msg := validateName(*body.Name); msg != "" {
			return msg
		}
	}
	if body.Email != nil {
		if _, err := mail.ParseAddress(*body.Email); err != nil {
			return "please enter a valid email address"
		}
	}
	if body.Phone != nil {
		if msg := validatePhone(*body.Phone); msg != "" {
			return msg
		}
	}
	if body.Address != nil {
		if msg := validateAddress(*body.Address); msg != "" {
			return msg
		}
	}
	if body.Status != nil && !body.Status.IsValid() {
		return "please select a customer status"
	}
	if body.Notes != nil && len(*body.Notes) > 500 {
		return "notes must be less than 500 characters"
	}
	return ""
}

func validateName(name string) string {
	if len(name) < 2 || len(name) > 50 {
		return "customer name must be 2-50 characters"
	}
	if !namePattern.MatchString(name) {
		return "name can only contain letters, numbers, spaces, hyphens, periods, and apostrophes"
	}
	return ""
}

func validatePhone(phone string) string {
	var digits int
	for _, r := range phone {
		if unicode.IsDigit(r) {
			digits++
		}
	}
	if digits < 10 || !phonePattern.MatchString(phone) {
		return "please enter a valid phone number"
	}
	return ""
}

func validateAddress(address string) string {
	if len(address) < 10 || len(address) > 200 {
		return "please enter a complete address"
	}
	return ""
}
