package lifecycle

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassify_ClosedSets(t *testing.T) {
	for _, e := range []Entity{
		EntityConsent, EntitySubscription, EntityInvoice,
		EntityPrintRequest, EntityStudentDocument, EntityMonthlyTransfer,
	} {
		for _, s := range Statuses(e) {
			got, info, err := Classify(e, string(s))
			require.NoError(t, err, "%s/%s", e, s)
			assert.Equal(t, s, got)
			assert.NotEmpty(t, info.Label, "%s/%s needs a label", e, s)
		}
	}
}

func TestClassify_Idempotent(t *testing.T) {
	first, _, err := Classify(EntityConsent, " PENDING ")
	require.NoError(t, err)

	second, _, err := Classify(EntityConsent, string(first))
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestClassify_UnknownStatusRejected(t *testing.T) {
	cases := []string{"", "unknown", "aprovado", "PAID_LATE", "pending2"}
	for _, raw := range cases {
		_, _, err := Classify(EntitySubscription, raw)
		require.Error(t, err, "raw=%q", raw)
		assert.Equal(t, CodeUnknownStatus, CodeOf(err))
	}
}

func TestClassify_StatusFromAnotherEntityRejected(t *testing.T) {
	// "overdue" is an invoice status, never a consent status
	_, _, err := Classify(EntityConsent, "overdue")
	require.Error(t, err)
	assert.Equal(t, CodeUnknownStatus, CodeOf(err))
}

func TestClassifyAll_MultiFilter(t *testing.T) {
	got, err := ClassifyAll(EntityInvoice, []string{"pending", "OVERDUE"})
	require.NoError(t, err)
	assert.Equal(t, []Status{InvoicePending, InvoiceOverdue}, got)

	_, err = ClassifyAll(EntityInvoice, []string{"pending", "nope"})
	require.Error(t, err)
	assert.Equal(t, CodeUnknownStatus, CodeOf(err))
}

func TestTerminalFlags(t *testing.T) {
	assert.True(t, IsTerminal(EntityConsent, ConsentApproved))
	assert.True(t, IsTerminal(EntityConsent, ConsentDenied))
	assert.True(t, IsTerminal(EntityConsent, ConsentExpired))
	assert.False(t, IsTerminal(EntityConsent, ConsentPending))

	// canceled is deliberately NOT terminal while reactivation is offered
	assert.False(t, IsTerminal(EntitySubscription, SubscriptionCanceled))
	assert.True(t, IsTerminal(EntityInvoice, InvoicePaid))
	assert.True(t, IsTerminal(EntityInvoice, InvoiceRefunded))
}
