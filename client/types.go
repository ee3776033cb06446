package client

import "time"

// Property is a rental unit under management.
type Property struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Address     string    `json:"address"`
	City        string    `json:"city"`
	State       string    `json:"state"`
	ZipCode     string    `json:"zipCode"`
	Type        string    `json:"type"`
	Bedrooms    int       `json:"bedrooms"`
	Bathrooms   float64   `json:"bathrooms"`
	SquareFeet  int       `json:"squareFeet"`
	Description string    `json:"description"`
	ImageURL    *string   `json:"imageUrl"`
	RentAmount  float64   `json:"rentAmount"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// CreatePropertyRequest is the payload for creating a property.
type CreatePropertyRequest struct {
	Name        string  `json:"name"`
	Address     string  `json:"address"`
	City        string  `json:"city,omitempty"`
	State       string  `json:"state,omitempty"`
	ZipCode     string  `json:"zipCode,omitempty"`
	Type        string  `json:"type,omitempty"`
	Bedrooms    int     `json:"bedrooms,omitempty"`
	Bathrooms   float64 `json:"bathrooms,omitempty"`
	SquareFeet  int     `json:"squareFeet,omitempty"`
	Description string  `json:"description,omitempty"`
	RentAmount  float64 `json:"rentAmount,omitempty"`
	Status      string  `json:"status,omitempty"`
}

// UpdatePropertyRequest is the payload for updating a property. Nil fields
// are left unchanged.
type UpdatePropertyRequest struct {
	Name        *string  `json:"name,omitempty"`
	Address     *string  `json:"address,omitempty"`
	City        *string  `json:"city,omitempty"`
	State       *string  `json:"state,omitempty"`
	ZipCode     *string  `json:"zipCode,omitempty"`
	Type        *string  `json:"type,omitempty"`
	Bedrooms    *int     `json:"bedrooms,omitempty"`
	Bathrooms   *float64 `json:"bathrooms,omitempty"`
	SquareFeet  *int     `json:"squareFeet,omitempty"`
	Description *string  `json:"description,omitempty"`
	RentAmount  *float64 `json:"rentAmount,omitempty"`
	Status      *string  `json:"status,omitempty"`
}

// Tenant is a renter known to the system.
type Tenant struct {
	ID                    string    `json:"id"`
	FirstName             string    `json:"firstName"`
	LastName              string    `json:"lastName"`
	Email                 string    `json:"email"`
	Phone                 string    `json:"phone"`
	EmergencyContactName  string    `json:"emergencyContactName"`
	EmergencyContactPhone string    `json:"emergencyContactPhone"`
	Notes                 string    `json:"notes"`
	CreatedAt             time.Time `json:"createdAt"`
	UpdatedAt             time.Time `json:"updatedAt"`
}

// CreateTenantRequest is the payload for creating a tenant.
type CreateTenantRequest struct {
	FirstName             string `json:"firstName"`
	LastName              string `json:"lastName"`
	Email                 string `json:"email"`
	Phone                 string `json:"phone,omitempty"`
	EmergencyContactName  string `json:"emergencyContactName,omitempty"`
	EmergencyContactPhone string `json:"emergencyContactPhone,omitempty"`
	Notes                 string `json:"notes,omitempty"`
}

// UpdateTenantRequest is the payload for updating a tenant.
type UpdateTenantRequest struct {
	FirstName             *string `json:"firstName,omitempty"`
	LastName              *string `json:"lastName,omitempty"`
	Email                 *string `json:"email,omitempty"`
	Phone                 *string `json:"phone,omitempty"`
	EmergencyContactName  *string `json:"emergencyContactName,omitempty"`
	EmergencyContactPhone *string `json:"emergencyContactPhone,omitempty"`
	Notes                 *string `json:"notes,omitempty"`
}

// Lease binds a tenant to a property for a date range. Date fields use the
// "YYYY-MM-DD" wire format.
type Lease struct {
	ID              string    `json:"id"`
	TenantID        string    `json:"tenantId"`
	PropertyID      string    `json:"propertyId"`
	StartDate       string    `json:"startDate"`
	EndDate         string    `json:"endDate"`
	MonthlyRent     float64   `json:"monthlyRent"`
	SecurityDeposit float64   `json:"securityDeposit"`
	Status          string    `json:"status"`
	Notes           string    `json:"notes"`
	Payments        []Payment `json:"payments,omitempty"`
	PaymentCount    int       `json:"paymentCount,omitempty"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
}

// CreateLeaseRequest is the payload for creating a lease.
type CreateLeaseRequest struct {
	TenantID         string  `json:"tenantId"`
	PropertyID       string  `json:"propertyId"`
	StartDate        string  `json:"startDate"`
	EndDate          string  `json:"endDate"`
	MonthlyRent      float64 `json:"monthlyRent"`
	SecurityDeposit  float64 `json:"securityDeposit,omitempty"`
	Status           string  `json:"status,omitempty"`
	Notes            string  `json:"notes,omitempty"`
	GeneratePayments *bool   `json:"generatePayments,omitempty"`
}

// UpdateLeaseRequest is the payload for updating a lease.
type UpdateLeaseRequest struct {
	TenantID        *string  `json:"tenantId,omitempty"`
	PropertyID      *string  `json:"propertyId,omitempty"`
	StartDate       *string  `json:"startDate,omitempty"`
	EndDate         *string  `json:"endDate,omitempty"`
	MonthlyRent     *float64 `json:"monthlyRent,omitempty"`
	SecurityDeposit *float64 `json:"securityDeposit,omitempty"`
	Status          *string  `json:"status,omitempty"`
	Notes           *string  `json:"notes,omitempty"`
}

// Payment is a single scheduled or recorded payment on a lease.
type Payment struct {
	ID        string    `json:"id"`
	LeaseID   string    `json:"leaseId"`
	TenantID  string    `json:"tenantId"`
	Amount    float64   `json:"amount"`
	Type      string    `json:"type"`
	Status    string    `json:"status"`
	DueDate   string    `json:"dueDate"`
	PaidDate  *string   `json:"paidDate"`
	Method    *string   `json:"method"`
	Notes     string    `json:"notes"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// CreatePaymentRequest is the payload for creating a payment.
type CreatePaymentRequest struct {
	LeaseID  string  `json:"leaseId"`
	TenantID string  `json:"tenantId"`
	Amount   float64 `json:"amount"`
	Type     string  `json:"type,omitempty"`
	Status   string  `json:"status,omitempty"`
	DueDate  string  `json:"dueDate"`
	PaidDate *string `json:"paidDate,omitempty"`
	Method   *string `json:"method,omitempty"`
	Notes    string  `json:"notes,omitempty"`
}

// UpdatePaymentRequest is the payload for updating a payment.
type UpdatePaymentRequest struct {
	Amount   *float64 `json:"amount,omitempty"`
	Type     *string  `json:"type,omitempty"`
	Status   *string  `json:"status,omitempty"`
	DueDate  *string  `json:"dueDate,omitempty"`
	PaidDate *string  `json:"paidDate,omitempty"`
	Method   *string  `json:"method,omitempty"`
	Notes    *string  `json:"notes,omitempty"`
}

// MaintenanceRequest is a repair or service ticket against a property.
type MaintenanceRequest struct {
	ID            string    `json:"id"`
	PropertyID    string    `json:"propertyId"`
	TenantID      *string   `json:"tenantId"`
	Title         string    `json:"title"`
	Description   string    `json:"description"`
	Category      string    `json:"category"`
	Priority      string    `json:"priority"`
	Status        string    `json:"status"`
	AssignedTo    *string   `json:"assignedTo"`
	EstimatedCost *float64  `json:"estimatedCost"`
	ActualCost    *float64  `json:"actualCost"`
	RequestedDate string    `json:"requestedDate"`
	ScheduledDate *string   `json:"scheduledDate"`
	CompletedDate *string   `json:"completedDate"`
	Notes         string    `json:"notes"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

// CreateMaintenanceRequest is the payload for creating a maintenance request.
type CreateMaintenanceRequest struct {
	PropertyID    string   `json:"propertyId"`
	TenantID      *string  `json:"tenantId,omitempty"`
	Title         string   `json:"title"`
	Description   string   `json:"description,omitempty"`
	Category      string   `json:"category,omitempty"`
	Priority      string   `json:"priority,omitempty"`
	Status        string   `json:"status,omitempty"`
	AssignedTo    *string  `json:"assignedTo,omitempty"`
	EstimatedCost *float64 `json:"estimatedCost,omitempty"`
	RequestedDate string   `json:"requestedDate,omitempty"`
	ScheduledDate *string  `json:"scheduledDate,omitempty"`
	Notes         string   `json:"notes,omitempty"`
}

// UpdateMaintenanceRequest is the payload for updating a maintenance request.
type UpdateMaintenanceRequest struct {
	Title         *string  `json:"title,omitempty"`
	Description   *string  `json:"description,omitempty"`
	Category      *string  `json:"category,omitempty"`
	Priority      *string  `json:"priority,omitempty"`
	Status        *string  `json:"status,omitempty"`
	AssignedTo    *string  `json:"assignedTo,omitempty"`
	EstimatedCost *float64 `json:"estimatedCost,omitempty"`
	ActualCost    *float64 `json:"actualCost,omitempty"`
	ScheduledDate *string  `json:"scheduledDate,omitempty"`
	CompletedDate *string  `json:"completedDate,omitempty"`
	Notes         *string  `json:"notes,omitempty"`
}

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

// PaymentTenant is the tenant-name fragment on enriched payments.
type PaymentTenant struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
}

// PaymentProperty is the property-name fragment on enriched payments.
type PaymentProperty struct {
	Name string `json:"name"`
}

// EnrichedPayment is a payment joined with tenant and property names.
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

// SyncResponse is the result of a property status sync.
type SyncResponse struct {
	Success bool   `json:"success"`
	Changed int    `json:"changed"`
	Message string `json:"message"`
}

// User is an application login.
type User struct {
	ID        string     `json:"id"`
	Email     string     `json:"email"`
	FirstName string     `json:"firstName"`
	LastName  string     `json:"lastName"`
	Role      string     `json:"role"`
	Company   string     `json:"company"`
	Phone     string     `json:"phone"`
	IsActive  bool       `json:"isActive"`
	CreatedAt time.Time  `json:"createdAt"`
	LastLogin *time.Time `json:"lastLogin,omitempty"`
}

// LoginResponse is the payload returned by a successful login.
type LoginResponse struct {
	User    User   `json:"user"`
	Token   string `json:"token"`
	Message string `json:"message"`
}

// HealthResponse is the liveness check payload.
type HealthResponse struct {
	Status        string   `json:"status"`
	Version       string   `json:"version"`
	UptimeSeconds float64  `json:"uptime_seconds"`
	DataDir       string   `json:"data_dir"`
	DataDirExists bool     `json:"data_dir_exists"`
	DataFiles     []string `json:"data_files"`
}
