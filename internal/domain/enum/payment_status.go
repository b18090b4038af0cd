package enum

import (
	"database/sql/driver"
	"fmt"
)

// PaymentStatus represents the stored payment state of an invoice.
// "overdue" is never stored; it is derived from the due date at read time.
type PaymentStatus string

const (
	PaymentStatusPending PaymentStatus = "pending"
	PaymentStatusPartial PaymentStatus = "partial"
	PaymentStatusPaid    PaymentStatus = "paid"
)

// ParsePaymentStatus validates a raw string and returns the typed status.
func ParsePaymentStatus(s string) (PaymentStatus, error) {
	switch status := PaymentStatus(s); status {
	case PaymentStatusPending, PaymentStatusPartial, PaymentStatusPaid:
		return status, nil
	default:
		return "", fmt.Errorf("unknown payment status %q", s)
	}
}

// IsValid reports whether the status is one of the storable states.
func (s PaymentStatus) IsValid() bool {
	_, err := ParsePaymentStatus(string(s))
	return err == nil
}

func (s PaymentStatus) String() string {
	return string(s)
}

func (s PaymentStatus) Value() (driver.Value, error) {
	return string(s), nil
}

func (s *PaymentStatus) Scan(value interface{}) error {
	if value == nil {
		*s = PaymentStatusPending
		return nil
	}
	switch v := value.(type) {
	case string:
		*s = PaymentStatus(v)
	case []byte:
		*s = PaymentStatus(v)
	default:
		return fmt.Errorf("cannot scan %T into PaymentStatus", value)
	}
	return nil
}
