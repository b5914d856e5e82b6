package domain

import "time"

type PaymentStatus string

const (
	PaymentStatusPending  PaymentStatus = "PENDING"
	PaymentStatusPaid     PaymentStatus = "PAID"
	PaymentStatusOverdue  PaymentStatus = "OVERDUE"
	PaymentStatusRefunded PaymentStatus = "REFUNDED"
	PaymentStatusFailed   PaymentStatus = "FAILED"
)

// Payment is rent owed by a tenant for a booking.
type Payment struct {
	ID            int32         `json:"id"`
	TenantID      int32         `json:"tenant_id"`
	PropertyID    int32         `json:"property_id"`
	BookingID     *int32        `json:"booking_id,omitempty"`
	AmountCents   int32         `json:"amount_cents"`
	DueDate       time.Time     `json:"due_date"`
	PaymentDate   *time.Time    `json:"payment_date,omitempty"`
	PaymentMethod string        `json:"payment_method"`
	Status        PaymentStatus `json:"status"`
	CreatedOn     time.Time     `json:"created_on"`
}

// WorkerPayment is a tenant paying a worker for a service.
type WorkerPayment struct {
	ID            int32         `json:"id"`
	TenantID      int32         `json:"tenant_id"`
	WorkerID      int32         `json:"worker_id"`
	AmountCents   int32         `json:"amount_cents"`
	PaymentDate   time.Time     `json:"payment_date"`
	PaymentMethod string        `json:"payment_method"`
	Status        PaymentStatus `json:"status"`
	TransactionID string        `json:"transaction_id"`
	ReceiptURL    string        `json:"receipt_url,omitempty"`
	CreatedOn     time.Time     `json:"created_on"`
}
