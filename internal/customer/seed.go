package customer

import "fmt"

// SeedDemo loads the demo customers the dashboard ships with.
func SeedDemo(r *Repository) error {
	demo := []struct {
		name    string
		email   string
		phone   string
		address string
		status  Status
		notes   string
	}{
		{"John Smith", "john.smith@email.com", "+1 (555) 123-4567", "123 Main St, New York, NY 10001", StatusVIP, "Loyal customer since 2023"},
		{"Sarah Johnson", "sarah.j@email.com", "+1 (555) 234-5678", "456 Oak Ave, Brooklyn, NY 11201", StatusActive, "Prefers vegetarian options"},
		{"Mike Davis", "mike.davis@email.com", "+1 (555) 345-6789", "789 Pine St, Queens, NY 11375", StatusActive, ""},
	}

	for _, d := range demo {
		if _, err := r.Create(d.name, d.email, d.phone, d.address, d.status, d.notes); err != nil {
			return fmt.Errorf("failed to seed customer %s: %w", d.email, err)
		}
	}
	return nil
}
