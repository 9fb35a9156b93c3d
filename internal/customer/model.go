package customer

// Status classifies a customer for filtering and perks
type Status string

const (
	StatusActive   Status = "active"
	StatusInactive Status = "inactive"
	StatusVIP      Status = "vip"
)

func (s Status) IsValid() bool {
	switch s {
	case StatusActive, StatusInactive, StatusVIP:
		return true
	}
	return false
}

type Customer struct {
	ID            string   `json:"id"`
	Name          string   `json:"name"`
	Email         string   `json:"email"`
	Phone         string   `json:"phone"`
	Address       string   `json:"address"`
	TotalOrders   int      `json:"totalOrders"`
	TotalSpent    float64  `json:"totalSpent"`
	LastOrder     *string  `json:"lastOrder"` // YYYY-MM-DD, nil before the first order
	Status        Status   `json:"status"`
	JoinDate      string   `json:"joinDate"` // YYYY-MM-DD
	FavoriteItems []string `json:"favoriteItems"`
	Rating        float64  `json:"rating"`
	Notes         string   `json:"notes,omitempty"`
}
