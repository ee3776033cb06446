package models

import "time"

// PaymentStatus is the collection state of a payment.
type PaymentStatus string

// Payment statuses.
const (
	PaymentPending   PaymentStatus = "PENDING"
	PaymentPaid      PaymentStatus = "PAID"
	PaymentOverdue   PaymentStatus = "OVERDUE"
	PaymentCancelled PaymentStatus = "CANCELLED"
)

// PaymentType is the kind of charge a payment covers.
type PaymentType string

// Payment types.
const (
	PaymentRent    PaymentType = "RENT"
	PaymentLateFee PaymentType = "LATE_FEE"
	PaymentDeposit PaymentType = "DEPOSIT"
	PaymentUtility PaymentType = "UTILITY"
	PaymentOther   PaymentType = "OTHER"
)

// Payment is a single charge against a lease. TenantID duplicates the
// lease's tenant for cheap lookup.
type Payment struct {
	ID        string        `json:"id"`
	LeaseID   string        `json:"leaseId"`
	TenantID  string        `json:"tenantId"`
	Amount    float64       `json:"amount"`
	Type      PaymentType   `json:"type"`
	Status    PaymentStatus `json:"status"`
	DueDate   Date          `json:"dueDate"`
	PaidDate  *Date         `json:"paidDate"`
	Method    *string       `json:"method"`
	Notes     string        `json:"notes"`
	CreatedAt time.Time     `json:"createdAt"`
	UpdatedAt time.Time     `json:"updatedAt"`
}

// validPaymentStatus reports whether s is a known payment status.
func validPaymentStatus(s PaymentStatus) bool {
	switch s {
	case PaymentPending, PaymentPaid, PaymentOverdue, PaymentCancelled:
		return true
	}

	return false
}

// validPaymentType reports whether t is a known payment type.
func validPaymentType(t PaymentType) bool {
	switch t {
	case PaymentRent, PaymentLateFee, PaymentDeposit, PaymentUtility, PaymentOther:
		return true
	}

	return false
}

// CreatePaymentRequest is the payload for creating a payment.
type CreatePaymentRequest struct {
	LeaseID  string        `json:"leaseId"`
	TenantID string        `json:"tenantId"`
	Amount   float64       `json:"amount"`
	Type     PaymentType   `json:"type,omitempty"`
	Status   PaymentStatus `json:"status,omitempty"`
	DueDate  Date          `json:"dueDate"`
	PaidDate *Date         `json:"paidDate,omitempty"`
	Method   *string       `json:"method,omitempty"`
	Notes    string        `json:"notes"`
}

// Validate checks required fields and defaults type to RENT and status
// to PENDING.
func (r *CreatePaymentRequest) Validate() error {
	if r.LeaseID == "" {
		return ErrMissingField("leaseId")
	}

	if r.TenantID == "" {
		return ErrMissingField("tenantId")
	}

	if r.Amount <= 0 {
		return ErrMissingField("amount")
	}

	if r.DueDate.IsZero() {
		return ErrMissingField("dueDate")
	}

	if r.Type == "" {
		r.Type = PaymentRent
	}

	if !validPaymentType(r.Type) {
		return ErrInvalidEnum("type", string(r.Type))
	}

	if r.Status == "" {
		r.Status = PaymentPending
	}

	if !validPaymentStatus(r.Status) {
		return ErrInvalidEnum("status", string(r.Status))
	}

	return nil
}

// UpdatePaymentRequest is the payload for updating a payment. Nil fields
// are left unchanged.
type UpdatePaymentRequest struct {
	Amount   *float64       `json:"amount,omitempty"`
	Type     *PaymentType   `json:"type,omitempty"`
	Status   *PaymentStatus `json:"status,omitempty"`
	DueDate  *Date          `json:"dueDate,omitempty"`
	PaidDate *Date          `json:"paidDate,omitempty"`
	Method   *string        `json:"method,omitempty"`
	Notes    *string        `json:"notes,omitempty"`
}

// Validate checks UpdatePaymentRequest fields.
func (r *UpdatePaymentRequest) Validate() error {
	if r.Amount != nil && *r.Amount <= 0 {
		return ErrInvalidEnum("amount", "not positive")
	}

	if r.Type != nil && !validPaymentType(*r.Type) {
		return ErrInvalidEnum("type", string(*r.Type))
	}

	if r.Status != nil && !validPaymentStatus(*r.Status) {
		return ErrInvalidEnum("status", string(*r.Status))
	}

	return nil
}

// Apply copies the non-nil request fields onto p.
func (r *UpdatePaymentRequest) Apply(p *Payment) {
	if r.Amount != nil {
		p.Amount = *r.Amount
	}
	if r.Type != nil {
		p.Type = *r.Type
	}
	if r.Status != nil {
		p.Status = *r.Status
	}
	if r.DueDate != nil {
		p.DueDate = *r.DueDate
	}
	if r.PaidDate != nil {
		p.PaidDate = r.PaidDate
	}
	if r.Method != nil {
		p.Method = r.Method
	}
	if r.Notes != nil {
		p.Notes = *r.Notes
	}
}
