package api_test

import (
	"context"

	"github.com/rentdesk/rentdesk/internal/models"
)

// mockPropertyRepo implements api.PropertyRepository for testing.
type mockPropertyRepo struct {
	listFn   func(ctx context.Context) []models.Property
	getFn    func(ctx context.Context, id string) (*models.Property, error)
	createFn func(ctx context.Context, req models.CreatePropertyRequest) (*models.Property, error)
	updateFn func(ctx context.Context, id string, req models.UpdatePropertyRequest) (*models.Property, error)
	deleteFn func(ctx context.Context, id string) error
}

func (m *mockPropertyRepo) ListProperties(ctx context.Context) []models.Property {
	return m.listFn(ctx)
}

func (m *mockPropertyRepo) GetProperty(ctx context.Context, id string) (*models.Property, error) {
	return m.getFn(ctx, id)
}

func (m *mockPropertyRepo) CreateProperty(ctx context.Context, req models.CreatePropertyRequest) (*models.Property, error) {
	return m.createFn(ctx, req)
}

func (m *mockPropertyRepo) UpdateProperty(ctx context.Context, id string, req models.UpdatePropertyRequest) (*models.Property, error) {
	return m.updateFn(ctx, id, req)
}

func (m *mockPropertyRepo) DeleteProperty(ctx context.Context, id string) error {
	return m.deleteFn(ctx, id)
}

// mockLeaseRepo implements api.LeaseRepository for testing.
type mockLeaseRepo struct {
	listFn   func(ctx context.Context) []models.Lease
	getFn    func(ctx context.Context, id string) (*models.Lease, error)
	createFn func(ctx context.Context, req models.CreateLeaseRequest) (*models.Lease, error)
	updateFn func(ctx context.Context, id string, req models.UpdateLeaseRequest) (*models.Lease, error)
	deleteFn func(ctx context.Context, id string) error
}

func (m *mockLeaseRepo) ListLeases(ctx context.Context) []models.Lease {
	return m.listFn(ctx)
}

func (m *mockLeaseRepo) GetLease(ctx context.Context, id string) (*models.Lease, error) {
	return m.getFn(ctx, id)
}

func (m *mockLeaseRepo) CreateLease(ctx context.Context, req models.CreateLeaseRequest) (*models.Lease, error) {
	return m.createFn(ctx, req)
}

func (m *mockLeaseRepo) UpdateLease(ctx context.Context, id string, req models.UpdateLeaseRequest) (*models.Lease, error) {
	return m.updateFn(ctx, id, req)
}

func (m *mockLeaseRepo) DeleteLease(ctx context.Context, id string) error {
	return m.deleteFn(ctx, id)
}

// mockAggregator implements api.DashboardAggregator for testing.
type mockAggregator struct {
	aggregateFn func(ctx context.Context) (*models.Dashboard, error)
}

func (m *mockAggregator) Aggregate(ctx context.Context) (*models.Dashboard, error) {
	return m.aggregateFn(ctx)
}

// mockSyncer implements api.StatusSyncer for testing.
type mockSyncer struct {
	syncFn func(ctx context.Context) (int, error)
}

func (m *mockSyncer) SyncPropertyStatuses(ctx context.Context) (int, error) {
	return m.syncFn(ctx)
}

// mockAuth implements api.AuthProvider for testing.
type mockAuth struct {
	loginFn       func(ctx context.Context, email, password string) (*models.User, string, error)
	logoutFn      func(ctx context.Context, token string)
	userByTokenFn func(ctx context.Context, token string) (*models.User, error)
}

func (m *mockAuth) Login(ctx context.Context, email, password string) (*models.User, string, error) {
	return m.loginFn(ctx, email, password)
}

func (m *mockAuth) Logout(ctx context.Context, token string) {
	if m.logoutFn != nil {
		m.logoutFn(ctx, token)
	}
}

func (m *mockAuth) UserByToken(ctx context.Context, token string) (*models.User, error) {
	return m.userByTokenFn(ctx, token)
}
