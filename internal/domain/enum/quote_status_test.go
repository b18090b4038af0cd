package enum

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestQuoteStatusTransitions(t *testing.T) {
	cases := []struct {
		from    QuoteStatus
		to      QuoteStatus
		allowed bool
	}{
		{QuoteStatusDraft, QuoteStatusSent, true},
		{QuoteStatusSent, QuoteStatusApproved, true},
		{QuoteStatusSent, QuoteStatusRejected, true},
		{QuoteStatusApproved, QuoteStatusInvoiced, true},

		// one-directional: nothing moves backwards
		{QuoteStatusSent, QuoteStatusDraft, false},
		{QuoteStatusApproved, QuoteStatusSent, false},
		{QuoteStatusInvoiced, QuoteStatusApproved, false},

		// no shortcuts
		{QuoteStatusDraft, QuoteStatusApproved, false},
		{QuoteStatusDraft, QuoteStatusInvoiced, false},
		{QuoteStatusSent, QuoteStatusInvoiced, false},

		// terminal states go nowhere
		{QuoteStatusRejected, QuoteStatusSent, false},
		{QuoteStatusRejected, QuoteStatusApproved, false},
		{QuoteStatusInvoiced, QuoteStatusInvoiced, false},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.allowed, tc.from.CanTransitionTo(tc.to),
			"%s -> %s", tc.from, tc.to)
	}
}

func TestQuoteStatusTerminal(t *testing.T) {
	assert.True(t, QuoteStatusRejected.IsTerminal())
	assert.True(t, QuoteStatusInvoiced.IsTerminal())
	assert.False(t, QuoteStatusDraft.IsTerminal())
	assert.False(t, QuoteStatusSent.IsTerminal())
	assert.False(t, QuoteStatusApproved.IsTerminal())
}

func TestQuoteStatusEditable(t *testing.T) {
	assert.True(t, QuoteStatusDraft.IsEditable())
	assert.True(t, QuoteStatusSent.IsEditable())
	assert.False(t, QuoteStatusApproved.IsEditable())
	assert.False(t, QuoteStatusRejected.IsEditable())
	assert.False(t, QuoteStatusInvoiced.IsEditable())
}

func TestParseQuoteStatus(t *testing.T) {
	status, err := ParseQuoteStatus("approved")
	assert.NoError(t, err)
	assert.Equal(t, QuoteStatusApproved, status)

	_, err = ParseQuoteStatus("archived")
	assert.Error(t, err)
}

func TestParsePaymentMethod(t *testing.T) {
	for _, raw := range []string{"bank_transfer", "credit_card", "debit_card", "check", "cash", "upi", "other"} {
		m, err := ParsePaymentMethod(raw)
		assert.NoError(t, err)
		assert.Equal(t, raw, m.String())
	}

	_, err := ParsePaymentMethod("barter")
	assert.Error(t, err)
}
