package api

import (
	"context"

	"github.com/rentdesk/rentdesk/internal/models"
)

// PropertyRepository defines property operations used by PropertyHandler.
type PropertyRepository interface {
	ListProperties(ctx context.Context) []models.Property
	GetProperty(ctx context.Context, id string) (*models.Property, error)
	CreateProperty(ctx context.Context, req models.CreatePropertyRequest) (*models.Property, error)
	UpdateProperty(ctx context.Context, id string, req models.UpdatePropertyRequest) (*models.Property, error)
	DeleteProperty(ctx context.Context, id string) error
}

// TenantRepository defines tenant operations used by TenantHandler.
type TenantRepository interface {
	ListTenants(ctx context.Context) []models.Tenant
	GetTenant(ctx context.Context, id string) (*models.Tenant, error)
	CreateTenant(ctx context.Context, req models.CreateTenantRequest) (*models.Tenant, error)
	UpdateTenant(ctx context.Context, id string, req models.UpdateTenantRequest) (*models.Tenant, error)
	DeleteTenant(ctx context.Context, id string) error
}

// LeaseRepository defines lease operations used by LeaseHandler.
type LeaseRepository interface {
	ListLeases(ctx context.Context) []models.Lease
	GetLease(ctx context.Context, id string) (*models.Lease, error)
	CreateLease(ctx context.Context, req models.CreateLeaseRequest) (*models.Lease, error)
	UpdateLease(ctx context.Context, id string, req models.UpdateLeaseRequest) (*models.Lease, error)
	DeleteLease(ctx context.Context, id string) error
}

// PaymentRepository defines payment operations used by PaymentHandler.
type PaymentRepository interface {
	ListPayments(ctx context.Context) []models.Payment
	GetPayment(ctx context.Context, id string) (*models.Payment, error)
	CreatePayment(ctx context.Context, req models.CreatePaymentRequest) (*models.Payment, error)
	UpdatePayment(ctx context.Context, id string, req models.UpdatePaymentRequest) (*models.Payment, error)
	DeletePayment(ctx context.Context, id string) error
}

// MaintenanceRepository defines maintenance operations used by MaintenanceHandler.
type MaintenanceRepository interface {
	ListMaintenance(ctx context.Context) []models.MaintenanceRequest
	GetMaintenance(ctx context.Context, id string) (*models.MaintenanceRequest, error)
	CreateMaintenance(ctx context.Context, req models.CreateMaintenanceRequest) (*models.MaintenanceRequest, error)
	UpdateMaintenance(ctx context.Context, id string, req models.UpdateMaintenanceRequest) (*models.MaintenanceRequest, error)
	DeleteMaintenance(ctx context.Context, id string) error
}

// DashboardAggregator defines the read-model aggregation used by DashboardHandler.
type DashboardAggregator interface {
	Aggregate(ctx context.Context) (*models.Dashboard, error)
}

// StatusSyncer defines the reconciliation operation used by SyncHandler.
type StatusSyncer interface {
	SyncPropertyStatuses(ctx context.Context) (int, error)
}

// AuthProvider defines login/session operations used by AuthHandler.
type AuthProvider interface {
	Login(ctx context.Context, email, password string) (*models.User, string, error)
	Logout(ctx context.Context, token string)
	UserByToken(ctx context.Context, token string) (*models.User, error)
}
