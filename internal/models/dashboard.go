package models

// DashboardMetrics is the summary block of the dashboard view.
type DashboardMetrics struct {
	TotalProperties         int     `json:"totalProperties"`
	OccupiedProperties      int     `json:"occupiedProperties"`
	TotalTenants            int     `json:"totalTenants"`
	ActiveLeases            int     `json:"activeLeases"`
	PendingPayments         int     `json:"pendingPayments"`
	OpenMaintenanceRequests int     `json:"openMaintenanceRequests"`
	OccupancyRate           int     `json:"occupancyRate"`
	TotalMonthlyIncome      float64 `json:"totalMonthlyIncome"`
}

// PaymentTenant is the tenant-name fragment embedded in enriched payments.
type PaymentTenant struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
}

// PaymentProperty is the property-name fragment embedded in enriched payments.
type PaymentProperty struct {
	Name string `json:"name"`
}

// EnrichedPayment is a payment joined with its tenant and property names
// for display. Either fragment is null when the foreign key dangles.
type EnrichedPayment struct {
	Payment
	Tenant   *PaymentTenant   `json:"tenant"`
	Property *PaymentProperty `json:"property"`
}

// Dashboard is the full aggregate view returned by GET /dashboard.
type Dashboard struct {
	Metrics          DashboardMetrics  `json:"metrics"`
	RecentPayments   []EnrichedPayment `json:"recentPayments"`
	UpcomingPayments []EnrichedPayment `json:"upcomingPayments"`
}
