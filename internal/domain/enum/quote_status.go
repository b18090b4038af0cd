package enum

import (
	"database/sql/driver"
	"fmt"
)

// QuoteStatus represents the lifecycle status of a quote
type QuoteStatus string

const (
	QuoteStatusDraft    QuoteStatus = "draft"
	QuoteStatusSent     QuoteStatus = "sent"
	QuoteStatusApproved QuoteStatus = "approved"
	QuoteStatusRejected QuoteStatus = "rejected"
	QuoteStatusInvoiced QuoteStatus = "invoiced"
)

// quoteTransitions is the single source of truth for legal status changes.
// Every mutating entry point consults this table instead of duplicating
// string comparisons in route handlers.
var quoteTransitions = map[QuoteStatus][]QuoteStatus{
	QuoteStatusDraft:    {QuoteStatusSent},
	QuoteStatusSent:     {QuoteStatusApproved, QuoteStatusRejected},
	QuoteStatusApproved: {QuoteStatusInvoiced},
	QuoteStatusRejected: {},
	QuoteStatusInvoiced: {},
}

// ParseQuoteStatus validates a raw string and returns the typed status.
func ParseQuoteStatus(s string) (QuoteStatus, error) {
	status := QuoteStatus(s)
	if !status.IsValid() {
		return "", fmt.Errorf("unknown quote status %q", s)
	}
	return status, nil
}

// IsValid reports whether the status is one of the known lifecycle states.
func (s QuoteStatus) IsValid() bool {
	_, ok := quoteTransitions[s]
	return ok
}

// CanTransitionTo reports whether moving from s to target is a legal transition.
func (s QuoteStatus) CanTransitionTo(target QuoteStatus) bool {
	for _, next := range quoteTransitions[s] {
		if next == target {
			return true
		}
	}
	return false
}

// IsTerminal reports whether no further transitions are possible.
func (s QuoteStatus) IsTerminal() bool {
	return len(quoteTransitions[s]) == 0
}

// IsEditable reports whether the quote's contents may still be modified.
// Once a quote is approved or beyond, its financial snapshot is locked.
func (s QuoteStatus) IsEditable() bool {
	return s == QuoteStatusDraft || s == QuoteStatusSent
}

func (s QuoteStatus) String() string {
	return string(s)
}

func (s QuoteStatus) Value() (driver.Value, error) {
	return string(s), nil
}

func (s *QuoteStatus) Scan(value interface{}) error {
	if value == nil {
		*s = QuoteStatusDraft
		return nil
	}
	switch v := value.(type) {
	case string:
		*s = QuoteStatus(v)
	case []byte:
		*s = QuoteStatus(v)
	default:
		return fmt.Errorf("cannot scan %T into QuoteStatus", value)
	}
	return nil
}
