package domain

import (
	"context"
	"time"
)

// Registration is a class sign-up submitted from the public site.
// swagger:model Registration
type Registration struct {
	ID            int64     `json:"id"`
	SessionID     int64     `json:"sessionId"`
	ParentName    string    `json:"parentName"`
	ParentEmail   string    `json:"parentEmail"`
	StudentName   string    `json:"studentName"`
	StudentAge    int       `json:"studentAge"`
	PaymentStatus string    `json:"paymentStatus"`
	CreatedAt     time.Time `json:"createdAt"`
}

// RegistrationRepository defines the interface for registration storage
type RegistrationRepository interface {
	Create(ctx context.Context, reg *Registration) error
	List(ctx context.Context) ([]*Registration, error)
}
