// file: internals/lifecycle/vocabulary.go
package lifecycle

import "strings"

// =========================================================
// ENTITIES
// =========================================================

type Entity string

const (
	EntityConsent         Entity = "consent"
	EntitySubscription    Entity = "subscription"
	EntityInvoice         Entity = "invoice"
	EntityPrintRequest    Entity = "print_request"
	EntityStudentDocument Entity = "student_document"
	EntityMonthlyTransfer Entity = "monthly_transfer"
)

// entityOrder fixes iteration order for dashboards and docs.
var entityOrder = []Entity{
	EntityConsent,
	EntitySubscription,
	EntityInvoice,
	EntityPrintRequest,
	EntityStudentDocument,
	EntityMonthlyTransfer,
}

// Entities returns every lifecycle entity in declaration order.
func Entities() []Entity {
	return append([]Entity(nil), entityOrder...)
}

// ParseEntity validates a raw entity name.
func ParseEntity(raw string) (Entity, error) {
	e := Entity(strings.ToLower(strings.TrimSpace(raw)))
	if _, ok := vocabulary[e]; !ok {
		return "", ErrUnknownStatus(e, raw)
	}
	return e, nil
}

// =========================================================
// STATUS — closed sets per entity. Persisted values outside
// the set are rejected as UNKNOWN_STATUS, never echoed back.
// =========================================================

type Status string

// Consent
const (
	ConsentPending  Status = "pending"
	ConsentApproved Status = "approved"
	ConsentDenied   Status = "denied"
	ConsentExpired  Status = "expired"
)

// Subscription
const (
	SubscriptionTrial    Status = "trial"
	SubscriptionActive   Status = "active"
	SubscriptionPastDue  Status = "past_due"
	SubscriptionBlocked  Status = "blocked"
	SubscriptionCanceled Status = "canceled"
	SubscriptionPaused   Status = "paused"
)

// Invoice
const (
	InvoicePending  Status = "pending"
	InvoicePaid     Status = "paid"
	InvoiceOverdue  Status = "overdue"
	InvoiceCanceled Status = "canceled"
	InvoiceRefunded Status = "refunded"
)

// PrintRequest
const (
	PrintRequested Status = "requested"
	PrintApproved  Status = "approved"
	PrintRejected  Status = "rejected"
	PrintPrinted   Status = "printed"
	PrintReview    Status = "review"
)

// StudentDocument
const (
	DocumentPending  Status = "pending"
	DocumentApproved Status = "approved"
	DocumentRejected Status = "rejected"
)

// MonthlyTransfer
const (
	TransferPending    Status = "pending"
	TransferProcessing Status = "processing"
	TransferCompleted  Status = "completed"
	TransferFailed     Status = "failed"
)

// =========================================================
// INFO — per-status classification
// =========================================================

type Info struct {
	Label    string
	Terminal bool // no transition leaves this status
	Derived  bool // reachable by time, not by user action
	System   bool // written by sweeps/billing events, not by users
}

var vocabulary = map[Entity]map[Status]Info{
	EntityConsent: {
		ConsentPending:  {Label: "Pendente"},
		ConsentApproved: {Label: "Aprovado", Terminal: true},
		ConsentDenied:   {Label: "Negado", Terminal: true},
		ConsentExpired:  {Label: "Expirado", Terminal: true, Derived: true, System: true},
	},
	EntitySubscription: {
		SubscriptionTrial:    {Label: "Teste"},
		SubscriptionActive:   {Label: "Ativa"},
		SubscriptionPastDue:  {Label: "Em atraso", System: true},
		SubscriptionBlocked:  {Label: "Bloqueada", System: true},
		SubscriptionCanceled: {Label: "Cancelada"},
		SubscriptionPaused:   {Label: "Pausada"},
	},
	EntityInvoice: {
		InvoicePending:  {Label: "Pendente"},
		InvoicePaid:     {Label: "Paga", Terminal: true},
		InvoiceOverdue:  {Label: "Vencida", Derived: true, System: true},
		InvoiceCanceled: {Label: "Cancelada", Terminal: true},
		InvoiceRefunded: {Label: "Reembolsada", Terminal: true},
	},
	EntityPrintRequest: {
		PrintRequested: {Label: "Solicitada"},
		PrintApproved:  {Label: "Aprovada"},
		PrintRejected:  {Label: "Rejeitada", Terminal: true},
		PrintPrinted:   {Label: "Impressa", Terminal: true},
		PrintReview:    {Label: "Em revisão"},
	},
	EntityStudentDocument: {
		DocumentPending:  {Label: "Pendente"},
		DocumentApproved: {Label: "Aprovado", Terminal: true},
		DocumentRejected: {Label: "Rejeitado", Terminal: true},
	},
	EntityMonthlyTransfer: {
		TransferPending:    {Label: "Pendente"},
		TransferProcessing: {Label: "Processando", System: true},
		TransferCompleted:  {Label: "Concluído", Terminal: true},
		TransferFailed:     {Label: "Falhou", Terminal: true, System: true},
	},
}

// declaration order, for stable iteration in dashboards
var statusOrder = map[Entity][]Status{
	EntityConsent:         {ConsentPending, ConsentApproved, ConsentDenied, ConsentExpired},
	EntitySubscription:    {SubscriptionTrial, SubscriptionActive, SubscriptionPastDue, SubscriptionBlocked, SubscriptionCanceled, SubscriptionPaused},
	EntityInvoice:         {InvoicePending, InvoicePaid, InvoiceOverdue, InvoiceCanceled, InvoiceRefunded},
	EntityPrintRequest:    {PrintRequested, PrintApproved, PrintRejected, PrintPrinted, PrintReview},
	EntityStudentDocument: {DocumentPending, DocumentApproved, DocumentRejected},
	EntityMonthlyTransfer: {TransferPending, TransferProcessing, TransferCompleted, TransferFailed},
}

// =========================================================
// CLASSIFY
// =========================================================

// Classify validates a raw persisted/requested value against the closed set.
// Classifying an already-classified status is idempotent.
func Classify(e Entity, raw string) (Status, Info, error) {
	set, ok := vocabulary[e]
	if !ok {
		return "", Info{}, ErrUnknownStatus(e, raw)
	}
	s := Status(strings.ToLower(strings.TrimSpace(raw)))
	info, ok := set[s]
	if !ok {
		return "", Info{}, ErrUnknownStatus(e, raw)
	}
	return s, info, nil
}

// ClassifyAll validates a status multi-filter; the first unknown value fails
// the whole set.
func ClassifyAll(e Entity, raw []string) ([]Status, error) {
	out := make([]Status, 0, len(raw))
	for _, r := range raw {
		s, _, err := Classify(e, r)
		if err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, nil
}

// Statuses returns the closed set in declaration order.
func Statuses(e Entity) []Status {
	return append([]Status(nil), statusOrder[e]...)
}

func IsTerminal(e Entity, s Status) bool {
	return vocabulary[e][s].Terminal
}

func Label(e Entity, s Status) string {
	return vocabulary[e][s].Label
}
