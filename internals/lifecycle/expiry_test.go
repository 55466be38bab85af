package lifecycle

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func ts(s string) time.Time {
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		panic(err)
	}
	return t
}

func TestEffectiveStatus_InvoiceOverdue(t *testing.T) {
	due := ts("2024-01-01T00:00:00Z")

	got := EffectiveStatus(EntityInvoice, InvoicePending, &due, ts("2024-01-15T00:00:00Z"))
	assert.Equal(t, InvoiceOverdue, got)

	got = EffectiveStatus(EntityInvoice, InvoicePending, &due, ts("2023-12-31T00:00:00Z"))
	assert.Equal(t, InvoicePending, got)
}

func TestEffectiveStatus_StoredStatusWinsOverDeadline(t *testing.T) {
	due := ts("2024-01-01T00:00:00Z")
	farFuture := ts("2030-06-01T00:00:00Z")

	// a paid invoice never reverts to overdue, no matter how late "now" is
	for _, stored := range []Status{InvoicePaid, InvoiceCanceled, InvoiceRefunded} {
		got := EffectiveStatus(EntityInvoice, stored, &due, farFuture)
		assert.Equal(t, stored, got, "stored=%s", stored)
	}
}

func TestEffectiveStatus_ConsentExpiry(t *testing.T) {
	expires := ts("2024-03-10T12:00:00Z")

	assert.Equal(t, ConsentExpired,
		EffectiveStatus(EntityConsent, ConsentPending, &expires, ts("2024-03-11T00:00:00Z")))
	assert.Equal(t, ConsentPending,
		EffectiveStatus(EntityConsent, ConsentPending, &expires, ts("2024-03-10T11:59:59Z")))

	// decided consents ignore the deadline entirely
	assert.Equal(t, ConsentApproved,
		EffectiveStatus(EntityConsent, ConsentApproved, &expires, ts("2025-01-01T00:00:00Z")))
	assert.Equal(t, ConsentDenied,
		EffectiveStatus(EntityConsent, ConsentDenied, &expires, ts("2025-01-01T00:00:00Z")))
}

func TestEffectiveStatus_NilDeadline(t *testing.T) {
	assert.Equal(t, ConsentPending,
		EffectiveStatus(EntityConsent, ConsentPending, nil, time.Now()))
}

func TestEffectiveStatus_Idempotent(t *testing.T) {
	due := ts("2024-01-01T00:00:00Z")
	now := ts("2024-02-01T00:00:00Z")

	once := EffectiveStatus(EntityInvoice, InvoicePending, &due, now)
	twice := EffectiveStatus(EntityInvoice, once, &due, now)
	assert.Equal(t, once, twice)
}
