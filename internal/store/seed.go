package store

import (
	"time"

	"github.com/rentdesk/rentdesk/internal/models"
)

// SeedDemoData writes the built-in demo dataset into every collection.
// Intended for fresh installs; callers should check Empty first to avoid
// clobbering real data.
func (s *Store) SeedDemoData() error {
	now := time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC)

	method := func(m string) *string { return &m }

	properties := []models.Property{
		{
			ID: "prop-demo-1", Name: "Sunset Apartments Unit 1A",
			Address: "123 Main Street, Unit 1A", City: "Springfield", State: "IL", ZipCode: "62701",
			Type: models.PropertyApartment, Bedrooms: 2, Bathrooms: 1.5, SquareFeet: 950,
			Description: "Beautiful 2-bedroom apartment with modern amenities",
			RentAmount:  1200, Status: models.PropertyOccupied,
			CreatedAt: now, UpdatedAt: now,
		},
		{
			ID: "prop-demo-2", Name: "Oak Hill House",
			Address: "456 Oak Street", City: "Springfield", State: "IL", ZipCode: "62702",
			Type: models.PropertyHouse, Bedrooms: 3, Bathrooms: 2, SquareFeet: 1500,
			Description: "Spacious family home with backyard",
			RentAmount:  1800, Status: models.PropertyAvailable,
			CreatedAt: now, UpdatedAt: now,
		},
		{
			ID: "prop-demo-3", Name: "Downtown Studio",
			Address: "789 City Center Blvd", City: "Springfield", State: "IL", ZipCode: "62703",
			Type: models.PropertyStudio, Bedrooms: 0, Bathrooms: 1, SquareFeet: 600,
			Description: "Modern studio in the heart of downtown",
			RentAmount:  900, Status: models.PropertyMaintenance,
			CreatedAt: now, UpdatedAt: now,
		},
	}

	tenants := []models.Tenant{
		{
			ID: "tenant-demo-1", FirstName: "John", LastName: "Smith",
			Email: "john.smith@email.com", Phone: "(555) 123-4567",
			EmergencyContactName: "Mary Smith", EmergencyContactPhone: "(555) 123-9999",
			CreatedAt: now, UpdatedAt: now,
		},
		{
			ID: "tenant-demo-2", FirstName: "Sarah", LastName: "Johnson",
			Email: "sarah.johnson@email.com", Phone: "(555) 987-6543",
			EmergencyContactName: "Tom Johnson", EmergencyContactPhone: "(555) 987-1111",
			CreatedAt: now, UpdatedAt: now,
		},
	}

	leases := []models.Lease{
		{
			ID: "lease-demo-1", TenantID: "tenant-demo-1", PropertyID: "prop-demo-1",
			StartDate: models.NewDate(2025, time.January, 1), EndDate: models.NewDate(2025, time.December, 31),
			MonthlyRent: 1200, SecurityDeposit: 1200, Status: models.LeaseActive,
			CreatedAt: now, UpdatedAt: now,
		},
	}

	paid := models.NewDate(2025, time.January, 2)
	payments := []models.Payment{
		{
			ID: "payment-demo-1", LeaseID: "lease-demo-1", TenantID: "tenant-demo-1",
			Amount: 1200, Type: models.PaymentRent, Status: models.PaymentPaid,
			DueDate: models.NewDate(2025, time.January, 1), PaidDate: &paid,
			Method: method("BANK_TRANSFER"), Notes: "January rent payment",
			CreatedAt: now, UpdatedAt: now,
		},
		{
			ID: "payment-demo-2", LeaseID: "lease-demo-1", TenantID: "tenant-demo-1",
			Amount: 1200, Type: models.PaymentRent, Status: models.PaymentPending,
			DueDate: models.NewDate(2025, time.February, 1), Notes: "February rent payment",
			CreatedAt: now, UpdatedAt: now,
		},
	}

	cost := 150.0
	maintenance := []models.MaintenanceRequest{
		{
			ID: "maint-demo-1", PropertyID: "prop-demo-1", TenantID: &tenants[0].ID,
			Title:       "Leaky Faucet in Kitchen",
			Description: "The kitchen faucet has been dripping constantly for the past week.",
			Category:    "PLUMBING", Priority: models.PriorityMedium, Status: models.MaintenanceOpen,
			EstimatedCost: &cost, RequestedDate: models.NewDate(2025, time.January, 15),
			CreatedAt: now, UpdatedAt: now,
		},
	}

	if err := s.SaveProperties(properties); err != nil {
		return err
	}

	if err := s.SaveTenants(tenants); err != nil {
		return err
	}

	if err := s.SaveLeases(leases); err != nil {
		return err
	}

	if err := s.SavePayments(payments); err != nil {
		return err
	}

	return s.SaveMaintenance(maintenance)
}
