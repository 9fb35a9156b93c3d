package customer

import (
	"errors"
	"fmt"
	"math/rand"
	"sort"
	"strings"
	"sync"
	"time"
)

var (
	ErrNotFound       = errors.New("customer not found")
	ErrDuplicateEmail = errors.New("customer with this email already exists")
)

// Spending past this promotes a customer to vip on their next order
const vipSpendThreshold = 500

// UpdateRequest names the fields Update may change. Nil fields are left
// untouched.
type UpdateRequest struct {
	Name    *string
	Email   *string
	Phone   *string
	Address *string
	Status  *Status
	Notes   *string
}

// Repository is the in-memory customer store with a unique email index.
type Repository struct {
	mu      sync.RWMutex
	byID    map[string]*Customer
	byEmail map[string]string

	now func() time.Time
}

func NewRepository() *Repository {
	return &Repository{
		byID:    make(map[string]*Customer),
		byEmail: make(map[string]string),
		now:     time.Now,
	}
}

// Create stores a new customer; the email must be unique.
func (r *Repository) Create(name, email, phone, address string, status Status, notes string) (*Customer, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byEmail[email]; exists {
		return nil, ErrDuplicateEmail
	}
	if status == "" {
		status = StatusActive
	}

	c := &Customer{
		ID:            r.generateIDLocked(),
		Name:          name,
		Email:         email,
		Phone:         phone,
		Address:       address,
		Status:        status,
		JoinDate:      r.now().Format("2006-01-02"),
		FavoriteItems: []string{},
		Notes:         notes,
	}

	r.byID[c.ID] = c
	r.byEmail[email] = c.ID

	return copyCustomer(c), nil
}

func (r *Repository) GetByID(id string) (*Customer, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	c, ok := r.byID[id]
	if !ok {
		return nil, ErrNotFound
	}
	return copyCustomer(c), nil
}

func (r *Repository) GetByEmail(email string) (*Customer, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	id, ok := r.byEmail[email]
	if !ok {
		return nil, ErrNotFound
	}
	return copyCustomer(r.byID[id]), nil
}

// Update applies the non-nil fields of req. An email change repoints the
// unique email index atomically.
func (r *Repository) Update(id string, req UpdateRequest) (*Customer, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	c, ok := r.byID[id]
	if !ok {
		return nil, ErrNotFound
	}

	if req.Email != nil && *req.Email != c.Email {
		if other, taken := r.byEmail[*req.Email]; taken && other != id {
			return nil, ErrDuplicateEmail
		}
		delete(r.byEmail, c.Email)
		r.byEmail[*req.Email] = id
		c.Email = *req.Email
	}
	if req.Name != nil {
		c.Name = *req.Name
	}
	if req.Phone != nil {
		c.Phone = *req.Phone
	}
	if req.Address != nil {
		c.Address = *req.Address
	}
	if req.Status != nil {
		c.Status = *req.Status
	}
	if req.Notes != nil {
		c.Notes = *req.Notes
	}

	return copyCustomer(c), nil
}

// Delete removes a customer and its email index entry
func (r *Repository) Delete(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	c, ok := r.byID[id]
	if !ok {
		return ErrNotFound
	}
	delete(r.byID, id)
	delete(r.byEmail, c.Email)
	return nil
}

// All returns every customer, sorted by ID for stable listings
func (r *Repository) All() []*Customer {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]*Customer, 0, len(r.byID))
	for _, c := range r.byID {
		result = append(result, copyCustomer(c))
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })
	return result
}

// Search matches the query against name, email, phone, and ID
func (r *Repository) Search(query string) []*Customer {
	r.mu.RLock()
	defer r.mu.RUnlock()

	q := strings.ToLower(query)
	var result []*Customer
	for _, c := range r.byID {
		if strings.Contains(strings.ToLower(c.Name), q) ||
			strings.Contains(strings.ToLower(c.Email), q) ||
			strings.Contains(c.Phone, query) ||
			strings.Contains(strings.ToLower(c.ID), q) {
			result = append(result, copyCustomer(c))
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })
	return result
}

// ByStatus returns customers with the given status
func (r *Repository) ByStatus(status Status) []*Customer {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var result []*Customer
	for _, c := range r.byID {
		if c.Status == status {
			result = append(result, copyCustomer(c))
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })
	return result
}

// Count returns the number of stored customers
func (r *Repository) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.byID)
}

// AddOrder records an order against a customer: totals and last-order
// date are refreshed, new items merge into favorites, spending past the
// vip threshold promotes the customer, and the rating grows with order
// count up to 5.
func (r *Repository) AddOrder(id string, orderValue float64, items []string) (*Customer, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	c, ok := r.byID[id]
	if !ok {
		return nil, ErrNotFound
	}

	c.TotalOrders++
	c.TotalSpent += orderValue
	last := r.now().Format("2006-01-02")
	c.LastOrder = &last

	for _, item := range items {
		if !contains(c.FavoriteItems, item) {
			c.FavoriteItems = append(c.FavoriteItems, item)
		}
	}

	if c.TotalSpent > vipSpendThreshold {
		c.Status = StatusVIP
	} else if c.TotalOrders > 0 {
		c.Status = StatusActive
	}

	c.Rating = min(5, 3+float64(c.TotalOrders)*0.1)

	return copyCustomer(c), nil
}

// generateIDLocked picks a free CUSTxxx ID; caller must hold the lock.
func (r *Repository) generateIDLocked() string {
	for {
		id := fmt.Sprintf("CUST%03d", rand.Intn(900)+100)
		if _, taken := r.byID[id]; !taken {
			return id
		}
	}
}

func contains(items []string, item string) bool {
	for _, existing := range items {
		if existing == item {
			return true
		}
	}
	return false
}

func copyCustomer(c *Customer) *Customer {
	out := *c
	out.FavoriteItems = append([]string(nil), c.FavoriteItems...)
	if c.LastOrder != nil {
		last := *c.LastOrder
		out.LastOrder = &last
	}
	return &out
}
