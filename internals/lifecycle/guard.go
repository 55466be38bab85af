// file: internals/lifecycle/guard.go
package lifecycle

import (
	"strings"

	"github.com/google/uuid"
)

// =========================================================
// ACTIONS
// =========================================================

type Action string

const (
	// consent
	ActionApprove Action = "approve"
	ActionDeny    Action = "deny"
	ActionExpire  Action = "expire"

	// subscription
	ActionActivate    Action = "activate"
	ActionPause       Action = "pause"
	ActionCancel      Action = "cancel"
	ActionReactivate  Action = "reactivate"
	ActionMarkPastDue Action = "mark_past_due"
	ActionBlock       Action = "block"

	// invoice
	ActionMarkPaid    Action = "mark_paid"
	ActionMarkOverdue Action = "mark_overdue"
	ActionRefund      Action = "refund"

	// print request
	ActionReject      Action = "reject"
	ActionReview      Action = "review"
	ActionResubmit    Action = "resubmit"
	ActionMarkPrinted Action = "mark_printed"

	// monthly transfer
	ActionProcess  Action = "process"
	ActionComplete Action = "complete"
	ActionFail     Action = "fail"
)

// =========================================================
// ACTOR RULES
// =========================================================

type ActorRule int

const (
	ActorAny ActorRule = iota
	// ActorResponsible: only the designated user on the entity
	// (consent's responsável, print request's requester).
	ActorResponsible
	// ActorAdmin: administrative staff of the tenant.
	ActorAdmin
	// ActorSystem: sweeps and billing events only, never a request actor.
	ActorSystem
)

// =========================================================
// RULE TABLE
// =========================================================

type Rule struct {
	From    []Status
	To      Status
	Require []string // payload fields that must be present and non-empty
	Actor   ActorRule
	// Stamp names the timestamp to set atomically with the status write
	// ("approved_at", "paid_at", ...). Empty means status-only.
	Stamp string
	// RetryNoOp: retrying this action against a row already in To is a
	// successful no-op (confirmation-style actions). Reversal-style actions
	// (deny, reject, refund) never get this, a repeat there is a guard error.
	RetryNoOp bool
}

// AllowReactivateCanceled gates subscription canceled→active. The dashboards
// offer "Reativar" from both paused and canceled, which conflicts with
// canceled being terminal; product has not settled this, so the guard keeps
// it explicit and switchable instead of hard-coding either reading.
var AllowReactivateCanceled = true

var transitions = map[Entity]map[Action]Rule{
	EntityConsent: {
		ActionApprove: {From: []Status{ConsentPending}, To: ConsentApproved, Actor: ActorResponsible, Stamp: "approved_at", RetryNoOp: true},
		ActionDeny:    {From: []Status{ConsentPending}, To: ConsentDenied, Actor: ActorResponsible, Stamp: "denied_at"},
		ActionExpire:  {From: []Status{ConsentPending}, To: ConsentExpired, Actor: ActorSystem, RetryNoOp: true},
	},
	EntitySubscription: {
		ActionActivate:    {From: []Status{SubscriptionTrial, SubscriptionPastDue}, To: SubscriptionActive, Actor: ActorSystem, RetryNoOp: true},
		ActionPause:       {From: []Status{SubscriptionActive}, To: SubscriptionPaused, Actor: ActorAdmin, Stamp: "paused_at"},
		ActionCancel:      {From: []Status{SubscriptionActive}, To: SubscriptionCanceled, Actor: ActorAdmin, Stamp: "canceled_at"},
		ActionReactivate:  {From: []Status{SubscriptionPaused}, To: SubscriptionActive, Actor: ActorAdmin, RetryNoOp: true},
		ActionMarkPastDue: {From: []Status{SubscriptionActive}, To: SubscriptionPastDue, Actor: ActorSystem, RetryNoOp: true},
		ActionBlock:       {From: []Status{SubscriptionPastDue}, To: SubscriptionBlocked, Actor: ActorSystem, RetryNoOp: true},
	},
	EntityInvoice: {
		ActionMarkPaid:    {From: []Status{InvoicePending, InvoiceOverdue}, To: InvoicePaid, Actor: ActorAdmin, Stamp: "paid_at", RetryNoOp: true},
		ActionMarkOverdue: {From: []Status{InvoicePending}, To: InvoiceOverdue, Actor: ActorSystem, RetryNoOp: true},
		ActionCancel:      {From: []Status{InvoicePending, InvoiceOverdue}, To: InvoiceCanceled, Actor: ActorAdmin},
		ActionRefund:      {From: []Status{InvoicePaid}, To: InvoiceRefunded, Actor: ActorAdmin, Stamp: "refunded_at"},
	},
	EntityPrintRequest: {
		ActionApprove:     {From: []Status{PrintRequested}, To: PrintApproved, Actor: ActorAdmin, Stamp: "approved_at", RetryNoOp: true},
		ActionReject:      {From: []Status{PrintRequested}, To: PrintRejected, Actor: ActorAdmin, Require: []string{"feedback"}, Stamp: "rejected_at"},
		ActionReview:      {From: []Status{PrintRequested}, To: PrintReview, Actor: ActorAdmin},
		ActionResubmit:    {From: []Status{PrintReview}, To: PrintRequested, Actor: ActorResponsible},
		ActionMarkPrinted: {From: []Status{PrintApproved}, To: PrintPrinted, Actor: ActorAdmin, Stamp: "printed_at", RetryNoOp: true},
	},
	EntityStudentDocument: {
		ActionApprove: {From: []Status{DocumentPending}, To: DocumentApproved, Actor: ActorAdmin, Stamp: "reviewed_at", RetryNoOp: true},
		ActionReject:  {From: []Status{DocumentPending}, To: DocumentRejected, Actor: ActorAdmin, Require: []string{"rejection_reason"}, Stamp: "reviewed_at"},
	},
	EntityMonthlyTransfer: {
		ActionProcess:  {From: []Status{TransferPending}, To: TransferProcessing, Actor: ActorSystem, RetryNoOp: true},
		ActionComplete: {From: []Status{TransferProcessing}, To: TransferCompleted, Actor: ActorAdmin, Stamp: "completed_at", RetryNoOp: true},
		ActionFail:     {From: []Status{TransferProcessing}, To: TransferFailed, Actor: ActorSystem},
	},
}

func lookupRule(e Entity, a Action) (Rule, bool) {
	r, ok := transitions[e][a]
	if !ok {
		return Rule{}, false
	}
	if e == EntitySubscription && a == ActionReactivate && AllowReactivateCanceled {
		r.From = append(append([]Status(nil), r.From...), SubscriptionCanceled)
	}
	return r, true
}

// Actions lists the defined actions for an entity (route wiring, docs).
func Actions(e Entity) []Action {
	out := make([]Action, 0, len(transitions[e]))
	for a := range transitions[e] {
		out = append(out, a)
	}
	return out
}

// =========================================================
// DECIDE
// =========================================================

// Input is everything the guard needs; the caller supplies the row state it
// just read (and must CAS against that same state when applying).
type Input struct {
	Entity  Entity
	Current Status
	Action  Action
	Payload map[string]any

	ActorID    uuid.UUID
	ActorRoles []string
	// ResponsibleID is the designated user on the entity, when the rule
	// demands one.
	ResponsibleID uuid.UUID
	// System marks sweep/billing-event callers.
	System bool
}

type Decision struct {
	NoOp  bool
	To    Status
	Stamp string
}

// Decide validates a proposed transition. It never mutates anything; the
// caller applies Decision with a compare-and-swap on Current.
func Decide(in Input) (Decision, error) {
	current, _, err := Classify(in.Entity, string(in.Current))
	if err != nil {
		return Decision{}, err
	}

	rule, ok := lookupRule(in.Entity, in.Action)
	if !ok {
		return Decision{}, ErrInvalidSourceState(in.Entity, in.Action, current)
	}

	// actor rules bind even on an idempotent retry; an unauthorized caller
	// never learns whether the transition already happened
	if err := checkActor(rule, in); err != nil {
		return Decision{}, err
	}

	// idempotent retry of confirmation-style transitions
	if rule.RetryNoOp && current == rule.To {
		return Decision{NoOp: true, To: current}, nil
	}

	if !statusIn(current, rule.From) {
		return Decision{}, ErrInvalidSourceState(in.Entity, in.Action, current)
	}

	for _, field := range rule.Require {
		if !payloadHas(in.Payload, field) {
			return Decision{}, ErrMissingField(field)
		}
	}

	return Decision{To: rule.To, Stamp: rule.Stamp}, nil
}

func checkActor(rule Rule, in Input) error {
	switch rule.Actor {
	case ActorSystem:
		if !in.System {
			return ErrUnauthorizedActor(in.Action)
		}
	case ActorResponsible:
		if in.ActorID == uuid.Nil || in.ActorID != in.ResponsibleID {
			return ErrUnauthorizedActor(in.Action)
		}
	case ActorAdmin:
		if in.System {
			return nil
		}
		for _, r := range in.ActorRoles {
			switch strings.ToLower(r) {
			case "owner", "admin", "staff":
				return nil
			}
		}
		return ErrUnauthorizedActor(in.Action)
	}
	return nil
}

func statusIn(s Status, set []Status) bool {
	for _, v := range set {
		if v == s {
			return true
		}
	}
	return false
}

func payloadHas(p map[string]any, field string) bool {
	if p == nil {
		return false
	}
	v, ok := p[field]
	if !ok || v == nil {
		return false
	}
	if s, isStr := v.(string); isStr {
		return strings.TrimSpace(s) != ""
	}
	return true
}
