package utils

import (
	"fmt"

	"github.com/google/uuid"
)

// NewUUID generates a new UUID
func NewUUID() uuid.UUID {
	return uuid.New()
}

// ParseUUID parses a string into a UUID
func ParseUUID(s string) (uuid.UUID, error) {
	return uuid.Parse(s)
}

// QuoteNumber formats a sequential quote number, e.g. "QT-000042".
func QuoteNumber(seq int) string {
	return fmt.Sprintf("QT-%06d", seq)
}

// InvoiceNumber formats a sequential invoice number, e.g. "INV-000042".
func InvoiceNumber(seq int) string {
	return fmt.Sprintf("INV-%06d", seq)
}
