package lifecycle

import (
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	guardian = uuid.New()
	stranger = uuid.New()
)

func adminInput(e Entity, current Status, action Action) Input {
	return Input{
		Entity:     e,
		Current:    current,
		Action:     action,
		ActorID:    uuid.New(),
		ActorRoles: []string{"admin"},
	}
}

func TestDecide_ConsentApprove(t *testing.T) {
	d, err := Decide(Input{
		Entity:        EntityConsent,
		Current:       ConsentPending,
		Action:        ActionApprove,
		ActorID:       guardian,
		ResponsibleID: guardian,
	})
	require.NoError(t, err)
	assert.False(t, d.NoOp)
	assert.Equal(t, ConsentApproved, d.To)
	assert.Equal(t, "approved_at", d.Stamp)
}

func TestDecide_ApproveRetryIsNoOp(t *testing.T) {
	d, err := Decide(Input{
		Entity:        EntityConsent,
		Current:       ConsentApproved,
		Action:        ActionApprove,
		ActorID:       guardian,
		ResponsibleID: guardian,
	})
	require.NoError(t, err)
	assert.True(t, d.NoOp)
	assert.Equal(t, ConsentApproved, d.To)
}

func TestDecide_RetryNoOpStillChecksActor(t *testing.T) {
	// a stranger repeating approve on an already-approved consent must get
	// the actor error, not a silent success
	_, err := Decide(Input{
		Entity:        EntityConsent,
		Current:       ConsentApproved,
		Action:        ActionApprove,
		ActorID:       stranger,
		ResponsibleID: guardian,
	})
	require.Error(t, err)
	assert.Equal(t, CodeUnauthorizedActor, CodeOf(err))

	// same for system-only actions retried by a request actor
	_, err = Decide(Input{
		Entity:        EntityConsent,
		Current:       ConsentExpired,
		Action:        ActionExpire,
		ActorID:       guardian,
		ResponsibleID: guardian,
	})
	require.Error(t, err)
	assert.Equal(t, CodeUnauthorizedActor, CodeOf(err))
}

func TestDecide_DenyAlreadyDeniedRejected(t *testing.T) {
	_, err := Decide(Input{
		Entity:        EntityConsent,
		Current:       ConsentDenied,
		Action:        ActionDeny,
		ActorID:       guardian,
		ResponsibleID: guardian,
	})
	require.Error(t, err)
	assert.Equal(t, CodeInvalidSourceState, CodeOf(err))
}

func TestDecide_DenyAfterApproveRejected(t *testing.T) {
	_, err := Decide(Input{
		Entity:        EntityConsent,
		Current:       ConsentApproved,
		Action:        ActionDeny,
		ActorID:       guardian,
		ResponsibleID: guardian,
	})
	require.Error(t, err)
	assert.Equal(t, CodeInvalidSourceState, CodeOf(err))
}

func TestDecide_ConsentWrongActor(t *testing.T) {
	_, err := Decide(Input{
		Entity:        EntityConsent,
		Current:       ConsentPending,
		Action:        ActionApprove,
		ActorID:       stranger,
		ResponsibleID: guardian,
	})
	require.Error(t, err)
	assert.Equal(t, CodeUnauthorizedActor, CodeOf(err))
}

func TestDecide_ExpireIsSystemOnly(t *testing.T) {
	_, err := Decide(Input{
		Entity:        EntityConsent,
		Current:       ConsentPending,
		Action:        ActionExpire,
		ActorID:       guardian,
		ResponsibleID: guardian,
	})
	require.Error(t, err)
	assert.Equal(t, CodeUnauthorizedActor, CodeOf(err))

	d, err := Decide(Input{
		Entity:  EntityConsent,
		Current: ConsentPending,
		Action:  ActionExpire,
		System:  true,
	})
	require.NoError(t, err)
	assert.Equal(t, ConsentExpired, d.To)
}

func TestDecide_RejectWithoutFeedback(t *testing.T) {
	in := adminInput(EntityPrintRequest, PrintRequested, ActionReject)

	_, err := Decide(in)
	require.Error(t, err)
	assert.Equal(t, CodeMissingField, CodeOf(err))

	in.Payload = map[string]any{"feedback": "   "}
	_, err = Decide(in)
	require.Error(t, err, "blank feedback is still missing")
	assert.Equal(t, CodeMissingField, CodeOf(err))

	in.Payload = map[string]any{"feedback": "blurry scan, resend"}
	d, err := Decide(in)
	require.NoError(t, err)
	assert.Equal(t, PrintRejected, d.To)
	assert.Equal(t, "rejected_at", d.Stamp)
}

func TestDecide_DocumentRejectRequiresReason(t *testing.T) {
	in := adminInput(EntityStudentDocument, DocumentPending, ActionReject)
	_, err := Decide(in)
	require.Error(t, err)
	assert.Equal(t, CodeMissingField, CodeOf(err))

	in.Payload = map[string]any{"rejection_reason": "expired vaccination card"}
	d, err := Decide(in)
	require.NoError(t, err)
	assert.Equal(t, DocumentRejected, d.To)
	assert.Equal(t, "reviewed_at", d.Stamp)
}

func TestDecide_PrintLifecycle(t *testing.T) {
	// requested → review → requested → approved → printed
	d, err := Decide(adminInput(EntityPrintRequest, PrintRequested, ActionReview))
	require.NoError(t, err)
	assert.Equal(t, PrintReview, d.To)

	requester := uuid.New()
	d, err = Decide(Input{
		Entity: EntityPrintRequest, Current: PrintReview, Action: ActionResubmit,
		ActorID: requester, ResponsibleID: requester,
	})
	require.NoError(t, err)
	assert.Equal(t, PrintRequested, d.To)

	d, err = Decide(adminInput(EntityPrintRequest, PrintRequested, ActionApprove))
	require.NoError(t, err)
	assert.Equal(t, PrintApproved, d.To)

	d, err = Decide(adminInput(EntityPrintRequest, PrintApproved, ActionMarkPrinted))
	require.NoError(t, err)
	assert.Equal(t, PrintPrinted, d.To)

	// printed only from approved
	_, err = Decide(adminInput(EntityPrintRequest, PrintRequested, ActionMarkPrinted))
	require.Error(t, err)
	assert.Equal(t, CodeInvalidSourceState, CodeOf(err))
}

func TestDecide_SubscriptionMatrix(t *testing.T) {
	cases := []struct {
		name    string
		current Status
		action  Action
		system  bool
		want    Status
		wantErr ErrorCode
	}{
		{"trial activates on first payment", SubscriptionTrial, ActionActivate, true, SubscriptionActive, ""},
		{"past_due recovers on payment", SubscriptionPastDue, ActionActivate, true, SubscriptionActive, ""},
		{"active pauses", SubscriptionActive, ActionPause, false, SubscriptionPaused, ""},
		{"active cancels", SubscriptionActive, ActionCancel, false, SubscriptionCanceled, ""},
		{"paused reactivates", SubscriptionPaused, ActionReactivate, false, SubscriptionActive, ""},
		{"active goes past_due", SubscriptionActive, ActionMarkPastDue, true, SubscriptionPastDue, ""},
		{"past_due blocks after grace", SubscriptionPastDue, ActionBlock, true, SubscriptionBlocked, ""},
		{"blocked cannot pause", SubscriptionBlocked, ActionPause, false, "", CodeInvalidSourceState},
		{"past_due is system-imposed", SubscriptionActive, ActionMarkPastDue, false, "", CodeUnauthorizedActor},
		{"trial cannot cancel", SubscriptionTrial, ActionCancel, false, "", CodeInvalidSourceState},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			in := adminInput(EntitySubscription, tc.current, tc.action)
			in.System = tc.system
			d, err := Decide(in)
			if tc.wantErr != "" {
				require.Error(t, err)
				assert.Equal(t, tc.wantErr, CodeOf(err))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, d.To)
		})
	}
}

func TestDecide_ReactivateCanceledIsSwitchable(t *testing.T) {
	in := adminInput(EntitySubscription, SubscriptionCanceled, ActionReactivate)

	AllowReactivateCanceled = true
	d, err := Decide(in)
	require.NoError(t, err)
	assert.Equal(t, SubscriptionActive, d.To)

	AllowReactivateCanceled = false
	defer func() { AllowReactivateCanceled = true }()
	_, err = Decide(in)
	require.Error(t, err)
	assert.Equal(t, CodeInvalidSourceState, CodeOf(err))
}

func TestDecide_InvoiceMatrix(t *testing.T) {
	d, err := Decide(adminInput(EntityInvoice, InvoiceOverdue, ActionMarkPaid))
	require.NoError(t, err, "stored overdue must still accept payment")
	assert.Equal(t, InvoicePaid, d.To)
	assert.Equal(t, "paid_at", d.Stamp)

	d, err = Decide(adminInput(EntityInvoice, InvoicePaid, ActionRefund))
	require.NoError(t, err)
	assert.Equal(t, InvoiceRefunded, d.To)

	_, err = Decide(adminInput(EntityInvoice, InvoicePending, ActionRefund))
	require.Error(t, err)
	assert.Equal(t, CodeInvalidSourceState, CodeOf(err))

	_, err = Decide(adminInput(EntityInvoice, InvoicePaid, ActionCancel))
	require.Error(t, err, "paid invoices are immutable except refund")
	assert.Equal(t, CodeInvalidSourceState, CodeOf(err))
}

func TestDecide_UnknownStoredStatus(t *testing.T) {
	in := adminInput(EntityInvoice, Status("weird"), ActionMarkPaid)
	_, err := Decide(in)
	require.Error(t, err)
	assert.Equal(t, CodeUnknownStatus, CodeOf(err))
}

// =========================================================
// Concurrent approve/deny against one pending consent: the
// guard plus a compare-and-swap apply step must let exactly
// one writer through.
// =========================================================

type casRow struct {
	mu     sync.Mutex
	status Status
}

// compareAndSwap mirrors the UPDATE ... WHERE status = <read> the services
// issue; it reports whether the row was still in expected state.
func (r *casRow) compareAndSwap(expected, next Status) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.status != expected {
		return false
	}
	r.status = next
	return true
}

func (r *casRow) read() Status {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.status
}

func TestConcurrentApproveDeny_OneWinner(t *testing.T) {
	for i := 0; i < 200; i++ {
		row := &casRow{status: ConsentPending}

		apply := func(action Action) error {
			current := row.read()
			d, err := Decide(Input{
				Entity:        EntityConsent,
				Current:       current,
				Action:        action,
				ActorID:       guardian,
				ResponsibleID: guardian,
			})
			if err != nil {
				return err
			}
			if d.NoOp {
				return nil
			}
			if !row.compareAndSwap(current, d.To) {
				return ErrConflict()
			}
			return nil
		}

		var wg sync.WaitGroup
		errs := make([]error, 2)
		wg.Add(2)
		go func() { defer wg.Done(); errs[0] = apply(ActionApprove) }()
		go func() { defer wg.Done(); errs[1] = apply(ActionDeny) }()
		wg.Wait()

		final := row.read()
		require.Contains(t, []Status{ConsentApproved, ConsentDenied}, final)

		winners := 0
		for _, err := range errs {
			if err == nil {
				winners++
			} else {
				code := CodeOf(err)
				assert.Contains(t, []ErrorCode{CodeConflict, CodeInvalidSourceState}, code)
			}
		}
		assert.Equal(t, 1, winners, "exactly one of approve/deny wins")
	}
}
