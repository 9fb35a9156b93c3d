package customer

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/redmonkez12/pizza-dashboard/internal/httputil"
	"github.com/redmonkez12/pizza-dashboard/internal/logging"
)

func newTestHandler(t *testing.T) (*Handler, *Repository) {
	t.Helper()
	repo := NewRepository()
	return NewHandler(repo, logging.NewLogger(true)), repo
}

func validCreateRequest() CreateRequest {
	return CreateRequest{
		Name:    "John Smith",
		Email:   "john.smith@example.com",
		Phone:   "+1 (555) 123-4567",
		Address: "123 Main St, New York, NY 10001",
		Status:  StatusActive,
	}
}

func postJSON(t *testing.T, h http.HandlerFunc, target string, body any) *httptest.ResponseRecorder {
	t.Helper()
	payload, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, target, bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	h(rec, req)
	return rec
}

func errorCode(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	var body httputil.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body.Code
}

func TestCreateCustomer(t *testing.T) {
	h, _ := newTestHandler(t)

	rec := postJSON(t, h.Create, "/customers", validCreateRequest())

	require.Equal(t, http.StatusCreated, rec.Code)

	var created Customer
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))
	assert.NotEmpty(t, created.ID)
	assert.Equal(t, "John Smith", created.Name)
	assert.Equal(t, StatusActive, created.Status)
}

func TestCreateCustomerInvalidBody(t *testing.T) {
	h, _ := newTestHandler(t)

	req := httptest.NewRequest(http.MethodPost, "/customers", bytes.NewReader([]byte("{not json")))
	rec := httptest.NewRecorder()
	h.Create(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, httputil.CodeInvalidRequestBody, errorCode(t, rec))
}

func TestCreateCustomerValidation(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*CreateRequest)
	}{
		{"name too short", func(r *CreateRequest) { r.Name = "J" }},
		{"name with bad characters", func(r *CreateRequest) { r.Name = "John <script>" }},
		{"invalid email", func(r *CreateRequest) { r.Email = "not-an-email" }},
		{"phone too short", func(r *CreateRequest) { r.Phone = "555-1234" }},
		{"phone with letters", func(r *CreateRequest) { r.Phone = "call 5551234567x" }},
		{"address too short", func(r *CreateRequest) { r.Address = "Main St" }},
		{"unknown status", func(r *CreateRequest) { r.Status = "platinum" }},
		{"notes too long", func(r *CreateRequest) { r.Notes = string(bytes.Repeat([]byte("x"), 501)) }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, _ := newTestHandler(t)

			req := validCreateRequest()
			tt.mutate(&req)

			rec := postJSON(t, h.Create, "/customers", req)

			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.Equal(t, httputil.CodeValidationFailed, errorCode(t, rec))
		})
	}
}

func TestCreateCustomerDuplicateEmail(t *testing.T) {
	h, _ := newTestHandler(t)

	rec := postJSON(t, h.Create, "/customers", validCreateRequest())
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = postJSON(t, h.Create, "/customers", validCreateRequest())

	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Equal(t, httputil.CodeCustomerExists, errorCode(t, rec))
}

func TestListCustomers(t *testing.T) {
	h, repo := newTestHandler(t)
	require.NoError(t, SeedDemo(repo))

	req := httptest.NewRequest(http.MethodGet, "/customers", nil)
	rec := httptest.NewRecorder()
	h.List(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp ListResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, len(resp.Customers), resp.Count)
	assert.NotEmpty(t, resp.Customers)
}

func TestListCustomersStatusFilter(t *testing.T) {
	h, repo := newTestHandler(t)
	require.NoError(t, SeedDemo(repo))

	req := httptest.NewRequest(http.MethodGet, "/customers?status=vip", nil)
	rec := httptest.NewRecorder()
	h.List(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp ListResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.NotEmpty(t, resp.Customers)
	for _, c := range resp.Customers {
		assert.Equal(t, StatusVIP, c.Status)
	}
}

func TestUpdateCustomer(t *testing.T) {
	h, repo := newTestHandler(t)

	created, err := repo.Create("John Smith", "john@example.com", "+1 (555) 123-4567", "123 Main St, New York, NY 10001", StatusActive, "")
	require.NoError(t, err)

	newName := "John A. Smith"
	rec := postJSON(t, h.Update, "/customers", UpdateBody{ID: created.ID, Name: &newName})

	require.Equal(t, http.StatusOK, rec.Code)

	var updated Customer
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &updated))
	assert.Equal(t, newName, updated.Name)
}

func TestUpdateCustomerMissingID(t *testing.T) {
	h, _ := newTestHandler(t)

	rec := postJSON(t, h.Update, "/customers", UpdateBody{})

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, httputil.CodeCustomerIDRequired, errorCode(t, rec))
}

func TestUpdateCustomerNotFound(t *testing.T) {
	h, _ := newTestHandler(t)

	name := "John Smith"
	rec := postJSON(t, h.Update, "/customers", UpdateBody{ID: "CUST999", Name: &name})

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, httputil.CodeCustomerNotFound, errorCode(t, rec))
}

func TestUpdateCustomerDuplicateEmail(t *testing.T) {
	h, repo := newTestHandler(t)

	_, err := repo.Create("John Smith", "john@example.com", "+1 (555) 123-4567", "123 Main St, New York, NY 10001", StatusActive, "")
	require.NoError(t, err)
	second, err := repo.Create("Jane Smith", "jane@example.com", "+1 (555) 987-6543", "456 Oak Ave, Brooklyn, NY 11201", StatusActive, "")
	require.NoError(t, err)

	taken := "john@example.com"
	rec := postJSON(t, h.Update, "/customers", UpdateBody{ID: second.ID, Email: &taken})

	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Equal(t, httputil.CodeCustomerExists, errorCode(t, rec))
}

func TestDeleteCustomer(t *testing.T) {
	h, repo := newTestHandler(t)

	created, err := repo.Create("John Smith", "john@example.com", "+1 (555) 123-4567", "123 Main St, New York, NY 10001", StatusActive, "")
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodDelete, fmt.Sprintf("/customers?id=%s", created.ID), nil)
	rec := httptest.NewRecorder()
	h.Delete(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 0, repo.Count())
}

func TestDeleteCustomerNotFound(t *testing.T) {
	h, _ := newTestHandler(t)

	req := httptest.NewRequest(http.MethodDelete, "/customers?id=CUST999", nil)
	rec := httptest.NewRecorder()
	h.Delete(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, httputil.CodeCustomerNotFound, errorCode(t, rec))
}
