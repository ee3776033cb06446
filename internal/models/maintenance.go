package models

import "time"

// MaintenanceStatus is the workflow state of a maintenance request.
type MaintenanceStatus string

// Maintenance statuses.
const (
	MaintenanceOpen       MaintenanceStatus = "OPEN"
	MaintenanceInProgress MaintenanceStatus = "IN_PROGRESS"
	MaintenanceScheduled  MaintenanceStatus = "SCHEDULED"
	MaintenanceCompleted  MaintenanceStatus = "COMPLETED"
	MaintenanceCancelled  MaintenanceStatus = "CANCELLED"
)

// MaintenancePriority is the urgency of a maintenance request.
type MaintenancePriority string

// Maintenance priorities.
const (
	PriorityLow    MaintenancePriority = "LOW"
	PriorityMedium MaintenancePriority = "MEDIUM"
	PriorityHigh   MaintenancePriority = "HIGH"
)

// MaintenanceRequest is a repair or service request against a property.
// TenantID is optional; owner-initiated requests have none.
type MaintenanceRequest struct {
	ID            string              `json:"id"`
	PropertyID    string              `json:"propertyId"`
	TenantID      *string             `json:"tenantId"`
	Title         string              `json:"title"`
	Description   string              `json:"description"`
	Category      string              `json:"category"`
	Priority      MaintenancePriority `json:"priority"`
	Status        MaintenanceStatus   `json:"status"`
	AssignedTo    *string             `json:"assignedTo"`
	EstimatedCost *float64            `json:"estimatedCost"`
	ActualCost    *float64            `json:"actualCost"`
	RequestedDate Date                `json:"requestedDate"`
	ScheduledDate *Date               `json:"scheduledDate"`
	CompletedDate *Date               `json:"completedDate"`
	Notes         string              `json:"notes"`
	CreatedAt     time.Time           `json:"createdAt"`
	UpdatedAt     time.Time           `json:"updatedAt"`
}

func validMaintenanceStatus(s MaintenanceStatus) bool {
	switch s {
	case MaintenanceOpen, MaintenanceInProgress, MaintenanceScheduled, MaintenanceCompleted, MaintenanceCancelled:
		return true
	}

	return false
}

func validMaintenancePriority(p MaintenancePriority) bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh:
		return true
	}

	return false
}

// CreateMaintenanceRequest is the payload for creating a maintenance request.
type CreateMaintenanceRequest struct {
	PropertyID    string              `json:"propertyId"`
	TenantID      *string             `json:"tenantId,omitempty"`
	Title         string              `json:"title"`
	Description   string              `json:"description"`
	Category      string              `json:"category"`
	Priority      MaintenancePriority `json:"priority,omitempty"`
	Status        MaintenanceStatus   `json:"status,omitempty"`
	AssignedTo    *string             `json:"assignedTo,omitempty"`
	EstimatedCost *float64            `json:"estimatedCost,omitempty"`
	RequestedDate Date                `json:"requestedDate"`
	ScheduledDate *Date               `json:"scheduledDate,omitempty"`
	Notes         string              `json:"notes"`
}

// Validate checks required fields and defaults priority to MEDIUM and
// status to OPEN.
func (r *CreateMaintenanceRequest) Validate() error {
	if r.PropertyID == "" {
		return ErrMissingField("propertyId")
	}

	if r.Title == "" {
		return ErrMissingField("title")
	}

	if r.Priority == "" {
		r.Priority = PriorityMedium
	}

	if !validMaintenancePriority(r.Priority) {
		return ErrInvalidEnum("priority", string(r.Priority))
	}

	if r.Status == "" {
		r.Status = MaintenanceOpen
	}

	if !validMaintenanceStatus(r.Status) {
		return ErrInvalidEnum("status", string(r.Status))
	}

	return nil
}

// UpdateMaintenanceRequest is the payload for updating a maintenance
// request. Nil fields are left unchanged.
type UpdateMaintenanceRequest struct {
	Title         *string              `json:"title,omitempty"`
	Description   *string              `json:"description,omitempty"`
	Category      *string              `json:"category,omitempty"`
	Priority      *MaintenancePriority `json:"priority,omitempty"`
	Status        *MaintenanceStatus   `json:"status,omitempty"`
	AssignedTo    *string              `json:"assignedTo,omitempty"`
	EstimatedCost *float64             `json:"estimatedCost,omitempty"`
	ActualCost    *float64             `json:"actualCost,omitempty"`
	ScheduledDate *Date                `json:"scheduledDate,omitempty"`
	CompletedDate *Date                `json:"completedDate,omitempty"`
	Notes         *string              `json:"notes,omitempty"`
}

// Validate checks UpdateMaintenanceRequest fields.
func (r *UpdateMaintenanceRequest) Validate() error {
	if r.Title != nil && *r.Title == "" {
		return ErrMissingField("title")
	}

	if r.Priority != nil && !validMaintenancePriority(*r.Priority) {
		return ErrInvalidEnum("priority", string(*r.Priority))
	}

	if r.Status != nil && !validMaintenanceStatus(*r.Status) {
		return ErrInvalidEnum("status", string(*r.Status))
	}

	return nil
}

// Apply copies the non-nil request fields onto m.
func (r *UpdateMaintenanceRequest) Apply(m *MaintenanceRequest) {
	if r.Title != nil {
		m.Title = *r.Title
	}
	if r.Description != nil {
		m.Description = *r.Description
	}
	if r.Category != nil {
		m.Category = *r.Category
	}
	if r.Priority != nil {
		m.Priority = *r.Priority
	}
	if r.Status != nil {
		m.Status = *r.Status
	}
	if r.AssignedTo != nil {
		m.AssignedTo = r.AssignedTo
	}
	if r.EstimatedCost != nil {
		m.EstimatedCost = r.EstimatedCost
	}
	if r.ActualCost != nil {
		m.ActualCost = r.ActualCost
	}
	if r.ScheduledDate != nil {
		m.ScheduledDate = r.ScheduledDate
	}
	if r.CompletedDate != nil {
		m.CompletedDate = r.CompletedDate
	}
	if r.Notes != nil {
		m.Notes = *r.Notes
	}
}
