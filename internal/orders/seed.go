package orders

import "time"

// SeedDemo loads the demo dataset: a batch of historical orders plus an
// activity log and delivery schedule anchored to the current time, so the
// dashboard shows live-looking data on a fresh start.
func SeedDemo(s *Store) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.orders = demoOrders()

	now := s.now()
	s.activities = demoActivities(now)
	s.deliveries = demoDeliveries(now)
}

func demoOrders() []Order {
	return []Order{
		{ID: "PZA001", CustomerName: "John Smith", PizzaType: "Margherita", Quantity: 2, OrderDate: "2024-01-15 14:30", Status: OrderDelivered},
		{ID: "PZA002", CustomerName: "Sarah Johnson", PizzaType: "Pepperoni", Quantity: 1, OrderDate: "2024-01-15 15:45", Status: OrderOutForDelivery},
		{ID: "PZA003", CustomerName: "Mike Davis", PizzaType: "Veggie Supreme", Quantity: 3, OrderDate: "2024-01-15 16:20", Status: OrderPreparing},
		{ID: "PZA004", CustomerName: "Emily Wilson", PizzaType: "Hawaiian", Quantity: 1, OrderDate: "2024-01-15 17:10", Status: OrderPending},
		{ID: "PZA005", CustomerName: "David Brown", PizzaType: "BBQ Chicken", Quantity: 2, OrderDate: "2024-01-15 18:00", Status: OrderDelivered},
		{ID: "PZA006", CustomerName: "Lisa Anderson", PizzaType: "Margherita", Quantity: 1, OrderDate: "2024-01-15 19:15", Status: OrderCancelled},
		{ID: "PZA007", CustomerName: "Robert Taylor", PizzaType: "Pepperoni", Quantity: 4, OrderDate: "2024-01-16 12:30", Status: OrderPreparing},
		{ID: "PZA008", CustomerName: "Jennifer Martinez", PizzaType: "Veggie Supreme", Quantity: 2, OrderDate: "2024-01-16 13:45", Status: OrderOutForDelivery},
		{ID: "PZA009", CustomerName: "Christopher Lee", PizzaType: "Hawaiian", Quantity: 1, OrderDate: "2024-01-16 14:20", Status: OrderDelivered},
		{ID: "PZA010", CustomerName: "Amanda White", PizzaType: "BBQ Chicken", Quantity: 3, OrderDate: "2024-01-16 15:10", Status: OrderPending},
		{ID: "PZA011", CustomerName: "Kevin Garcia", PizzaType: "Margherita", Quantity: 2, OrderDate: "2024-01-16 16:00", Status: OrderPreparing},
		{ID: "PZA012", CustomerName: "Michelle Rodriguez", PizzaType: "Pepperoni", Quantity: 1, OrderDate: "2024-01-16 17:30", Status: OrderOutForDelivery},
		{ID: "PZA013", CustomerName: "James Wilson", PizzaType: "Veggie Supreme", Quantity: 2, OrderDate: "2024-01-16 18:45", Status: OrderDelivered},
		{ID: "PZA014", CustomerName: "Nicole Thompson", PizzaType: "Hawaiian", Quantity: 1, OrderDate: "2024-01-16 19:20", Status: OrderCancelled},
		{ID: "PZA015", CustomerName: "Daniel Moore", PizzaType: "BBQ Chicken", Quantity: 3, OrderDate: "2024-01-17 11:15", Status: OrderPending},
		{ID: "PZA016", CustomerName: "Rachel Clark", PizzaType: "Margherita", Quantity: 2, OrderDate: "2024-01-17 12:30", Status: OrderPreparing},
		{ID: "PZA017", CustomerName: "Steven Lewis", PizzaType: "Pepperoni", Quantity: 1, OrderDate: "2024-01-17 13:45", Status: OrderOutForDelivery},
		{ID: "PZA018", CustomerName: "Laura Walker", PizzaType: "Veggie Supreme", Quantity: 4, OrderDate: "2024-01-17 14:20", Status: OrderDelivered},
		{ID: "PZA019", CustomerName: "Mark Hall", PizzaType: "Hawaiian", Quantity: 2, OrderDate: "2024-01-17 15:10", Status: OrderPreparing},
		{ID: "PZA020", CustomerName: "Jessica Allen", PizzaType: "BBQ Chicken", Quantity: 1, OrderDate: "2024-01-17 16:00", Status: OrderPending},
	}
}

func demoActivities(now time.Time) []Activity {
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	yesterday := today.AddDate(0, 0, -1)
	twoDaysAgo := today.AddDate(0, 0, -2)
	threeDaysAgo := today.AddDate(0, 0, -3)

	return []Activity{
		{
			ID: "ACT001", Type: ActivityOrder, Action: "Order Created",
			Description: "New order PZA025 created by Michael Chen",
			Timestamp:   now.Add(-15 * time.Minute),
			User:        "System", OrderID: "PZA025", CustomerID: "CUST008", Status: ActivitySuccess,
			Metadata: map[string]any{"amount": 28.99, "items": 3, "pizzaType": "Large Pepperoni"},
		},
		{
			ID: "ACT002", Type: ActivityPayment, Action: "Payment Processed",
			Description: "Payment of $28.99 processed for order PZA025",
			Timestamp:   now.Add(-10 * time.Minute),
			User:        "Payment Gateway", OrderID: "PZA025", Status: ActivitySuccess,
			Metadata: map[string]any{"amount": 28.99, "method": "Credit Card", "last4": "8765"},
		},
		{
			ID: "ACT003", Type: ActivityOrder, Action: "Order Status Updated",
			Description: `Order PZA024 status changed to "Out for Delivery"`,
			Timestamp:   now.Add(-5 * time.Minute),
			User:        "Kitchen Staff", OrderID: "PZA024", Status: ActivityInfo,
			Metadata: map[string]any{"previousStatus": "Preparing", "newStatus": "Out for Delivery"},
		},
		{
			ID: "ACT004", Type: ActivityDelivery, Action: "Delivery Started",
			Description: "Driver Sarah Martinez started delivery for order PZA024",
			Timestamp:   now.Add(-3 * time.Minute),
			User:        "Sarah Martinez", OrderID: "PZA024", Status: ActivityInfo,
			Metadata: map[string]any{"estimatedTime": 25, "vehicleType": "Motorcycle"},
		},
		{
			ID: "ACT005", Type: ActivitySystem, Action: "Inventory Update",
			Description: "Pepperoni stock replenished - 50 units added",
			Timestamp:   now.Add(-30 * time.Minute),
			User:        "Inventory System", Status: ActivitySuccess,
			Metadata: map[string]any{"item": "Pepperoni", "addedStock": 50, "newTotal": 125},
		},
		{
			ID: "ACT006", Type: ActivityCustomer, Action: "Customer Registered",
			Description: "New customer Jessica Rodriguez registered",
			Timestamp:   now.Add(-45 * time.Minute),
			User:        "System", CustomerID: "CUST009", Status: ActivitySuccess,
			Metadata: map[string]any{"email": "jessica.rodriguez@email.com", "source": "Mobile App"},
		},
		{
			ID: "ACT007", Type: ActivityOrder, Action: "Order Created",
			Description: "New order PZA023 created by David Kim",
			Timestamp:   now.Add(-time.Hour),
			User:        "System", OrderID: "PZA023", CustomerID: "CUST007", Status: ActivitySuccess,
			Metadata: map[string]any{"amount": 35.50, "items": 4},
		},
		{
			ID: "ACT008", Type: ActivityDelivery, Action: "Delivery Completed",
			Description: "Order PZA022 successfully delivered to Amanda Wilson",
			Timestamp:   now.Add(-90 * time.Minute),
			User:        "Mike Johnson", OrderID: "PZA022", CustomerID: "CUST006", Status: ActivitySuccess,
			Metadata: map[string]any{"deliveryTime": 28, "rating": 5, "tip": 5.00},
		},
		{
			ID: "ACT009", Type: ActivitySystem, Action: "System Alert",
			Description: "High order volume detected - peak hours active",
			Timestamp:   now.Add(-2 * time.Hour),
			User:        "Monitoring System", Status: ActivityWarning,
			Metadata: map[string]any{"currentOrders": 15, "averageOrders": 8, "threshold": 12},
		},
		{
			ID: "ACT010", Type: ActivityOrder, Action: "Order Modified",
			Description: "Order PZA021 modified - changed pizza size from Medium to Large",
			Timestamp:   now.Add(-150 * time.Minute),
			User:        "Customer Service", OrderID: "PZA021", Status: ActivityInfo,
			Metadata: map[string]any{"originalSize": "Medium", "newSize": "Large", "priceDifference": 4.00},
		},
		{
			ID: "ACT011", Type: ActivityDelivery, Action: "Delivery Delayed",
			Description: "Delivery for order PZA020 delayed due to weather conditions",
			Timestamp:   yesterday.Add(20 * time.Hour),
			User:        "Alex Rodriguez", OrderID: "PZA020", Status: ActivityError,
			Metadata: map[string]any{"reason": "Heavy rain", "compensation": "Free dessert"},
		},
		{
			ID: "ACT012", Type: ActivityPayment, Action: "Payment Failed",
			Description: "Payment failed for order PZA019 - insufficient funds",
			Timestamp:   yesterday.Add(18 * time.Hour),
			User:        "Payment Gateway", OrderID: "PZA019", Status: ActivityError,
			Metadata: map[string]any{"amount": 22.50, "errorCode": "INSUFFICIENT_FUNDS", "retryAttempts": 2},
		},
		{
			ID: "ACT013", Type: ActivityCustomer, Action: "Customer Updated Profile",
			Description: "Customer John Smith updated delivery address",
			Timestamp:   yesterday.Add(16 * time.Hour),
			User:        "John Smith", CustomerID: "CUST001", Status: ActivityInfo,
			Metadata: map[string]any{"field": "address", "oldValue": "123 Main St", "newValue": "456 Oak Ave"},
		},
		{
			ID: "ACT014", Type: ActivityOrder, Action: "Order Cancelled",
			Description: "Order PZA018 cancelled - customer changed mind",
			Timestamp:   yesterday.Add(14 * time.Hour),
			User:        "Customer Service", OrderID: "PZA018", Status: ActivityWarning,
			Metadata: map[string]any{"refundAmount": 19.99},
		},
		{
			ID: "ACT015", Type: ActivitySystem, Action: "Database Backup",
			Description: "Daily database backup completed successfully",
			Timestamp:   yesterday.Add(2 * time.Hour),
			User:        "System", Status: ActivitySuccess,
			Metadata: map[string]any{"backupSize": "2.3 GB", "duration": "15 minutes"},
		},
		{
			ID: "ACT016", Type: ActivityOrder, Action: "Bulk Order Created",
			Description: "Corporate order for 25 pizzas created by TechCorp Inc",
			Timestamp:   twoDaysAgo.Add(15 * time.Hour),
			User:        "System", OrderID: "PZA017", CustomerID: "CORP001", Status: ActivitySuccess,
			Metadata: map[string]any{"amount": 425.00, "items": 25},
		},
		{
			ID: "ACT017", Type: ActivitySystem, Action: "System Maintenance",
			Description: "Scheduled system maintenance completed - performance optimizations",
			Timestamp:   twoDaysAgo.Add(3 * time.Hour),
			User:        "IT Team", Status: ActivitySuccess,
			Metadata: map[string]any{"duration": "2 hours", "downtime": "0 minutes"},
		},
		{
			ID: "ACT018", Type: ActivityCustomer, Action: "Customer Complaint",
			Description: "Customer reported cold pizza delivery - order PZA015",
			Timestamp:   threeDaysAgo.Add(19 * time.Hour),
			User:        "Customer Service", OrderID: "PZA015", CustomerID: "CUST003", Status: ActivityError,
			Metadata: map[string]any{"issue": "Cold food", "resolution": "Full refund + free pizza"},
		},
		{
			ID: "ACT019", Type: ActivitySystem, Action: "Security Alert",
			Description: "Multiple failed login attempts detected from IP 192.168.1.100",
			Timestamp:   threeDaysAgo.Add(10 * time.Hour),
			User:        "Security System", Status: ActivityWarning,
			Metadata: map[string]any{"attempts": 5, "sourceIP": "192.168.1.100", "action": "IP temporarily blocked"},
		},
		{
			ID: "ACT020", Type: ActivityDelivery, Action: "Driver Shift Started",
			Description: "Driver Lisa Chen started evening shift",
			Timestamp:   threeDaysAgo.Add(17 * time.Hour),
			User:        "Lisa Chen", Status: ActivityInfo,
			Metadata: map[string]any{"shiftStart": "17:00", "shiftEnd": "23:00", "zone": "Downtown"},
		},
	}
}

func demoDeliveries(now time.Time) []Delivery {
	return []Delivery{
		{
			ID: "DEL001", OrderID: "PZA025", CustomerName: "Michael Chen",
			CustomerPhone: "+1 (555) 123-4567", Address: "123 Broadway, New York, NY 10001",
			ScheduledTime: now.Add(15 * time.Minute), EstimatedDuration: 25,
			Status: DeliveryScheduled, DriverName: "Sarah Martinez", Priority: PriorityHigh,
			Items: []string{"Large Pepperoni Pizza", "Garlic Bread", "Coke"},
			Notes: "Customer prefers contactless delivery",
		},
		{
			ID: "DEL002", OrderID: "PZA024", CustomerName: "Jessica Rodriguez",
			CustomerPhone: "+1 (555) 234-5678", Address: "456 Oak Ave, Brooklyn, NY 11201",
			ScheduledTime: now.Add(5 * time.Minute), EstimatedDuration: 30,
			Status: DeliveryInProgress, DriverName: "Mike Johnson", Priority: PriorityHigh,
			Items: []string{"Medium Margherita Pizza", "Caesar Salad"},
			Notes: "Ring doorbell twice",
		},
		{
			ID: "DEL003", OrderID: "PZA023", CustomerName: "David Kim",
			CustomerPhone: "+1 (555) 345-6789", Address: "789 Pine St, Queens, NY 11375",
			ScheduledTime: now.Add(45 * time.Minute), EstimatedDuration: 35,
			Status: DeliveryScheduled, DriverName: "Alex Rodriguez", Priority: PriorityMedium,
			Items: []string{"Large Hawaiian Pizza", "Buffalo Wings", "Sprite"},
			Notes: "Apartment 4B, use side entrance",
		},
		{
			ID: "DEL004", OrderID: "PZA022", CustomerName: "Amanda Wilson",
			CustomerPhone: "+1 (555) 456-7890", Address: "321 Elm St, Manhattan, NY 10002",
			ScheduledTime: now.Add(-30 * time.Minute), EstimatedDuration: 20,
			Status: DeliveryCompleted, DriverName: "Lisa Chen", Priority: PriorityLow,
			Items: []string{"Small Veggie Pizza", "Diet Coke"},
		},
		{
			ID: "DEL005", OrderID: "PZA021", CustomerName: "Robert Taylor",
			CustomerPhone: "+1 (555) 567-8901", Address: "654 Maple Dr, Bronx, NY 10451",
			ScheduledTime: now.Add(30 * time.Minute), EstimatedDuration: 40,
			Status: DeliveryScheduled, DriverName: "Sarah Martinez", Priority: PriorityMedium,
			Items: []string{"Large Meat Lovers Pizza", "Chicken Wings", "Pepsi"},
			Notes: "Call when arriving - gated community",
		},
		{
			ID: "DEL006", OrderID: "PZA020", CustomerName: "Emily Davis",
			CustomerPhone: "+1 (555) 678-9012", Address: "987 Cedar Ave, Staten Island, NY 10301",
			ScheduledTime: now.Add(time.Hour), EstimatedDuration: 45,
			Status: DeliveryScheduled, DriverName: "Mike Johnson", Priority: PriorityLow,
			Items: []string{"Medium BBQ Chicken Pizza", "Mozzarella Sticks"},
			Notes: "Leave at door if no answer",
		},
		{
			ID: "DEL007", OrderID: "PZA019", CustomerName: "Christopher Lee",
			CustomerPhone: "+1 (555) 789-0123", Address: "147 Park Ave, Manhattan, NY 10016",
			ScheduledTime: now.Add(90 * time.Minute), EstimatedDuration: 25,
			Status: DeliveryScheduled, DriverName: "Alex Rodriguez", Priority: PriorityHigh,
			Items: []string{"Large Supreme Pizza", "Garlic Knots", "Orange Soda"},
			Notes: "Office building - ask for Christopher at reception",
		},
		{
			ID: "DEL008", OrderID: "PZA018", CustomerName: "Maria Gonzalez",
			CustomerPhone: "+1 (555) 890-1234", Address: "258 First Ave, Brooklyn, NY 11215",
			ScheduledTime: now.Add(-10 * time.Minute), EstimatedDuration: 35,
			Status: DeliveryInProgress, DriverName: "Lisa Chen", Priority: PriorityMedium,
			Items: []string{"Medium Mushroom Pizza", "Greek Salad", "Water"},
			Notes: "Third floor, apartment 3C",
		},
		{
			ID: "DEL009", OrderID: "PZA017", CustomerName: "James Wilson",
			CustomerPhone: "+1 (555) 901-2345", Address: "369 Second St, Queens, NY 11101",
			ScheduledTime: now.Add(2 * time.Hour), EstimatedDuration: 30,
			Status: DeliveryScheduled, DriverName: "Sarah Martinez", Priority: PriorityLow,
			Items: []string{"Large White Pizza", "Chicken Caesar Wrap"},
			Notes: "House with red door",
		},
		{
			ID: "DEL010", OrderID: "PZA016", CustomerName: "Lisa Thompson",
			CustomerPhone: "+1 (555) 012-3456", Address: "741 Third Ave, Bronx, NY 10456",
			ScheduledTime: now.Add(20 * time.Minute), EstimatedDuration: 50,
			Status: DeliveryDelayed, DriverName: "Mike Johnson", Priority: PriorityHigh,
			Items: []string{"Large Quattro Stagioni Pizza", "Tiramisu", "Iced Tea"},
			Notes: "Traffic delay reported - customer notified",
		},
	}
}
