package model

import "time"

// TransactionType distinguishes money in from money out.
type TransactionType string

// Transaction types.
const (
	TypeIncome  TransactionType = "income"
	TypeExpense TransactionType = "expense"
)

// Provenance records which source ultimately supplied a field's value.
type Provenance string

// Field provenance values.
const (
	ProvenanceText        Provenance = "text"
	ProvenanceOCR         Provenance = "ocr"
	ProvenanceMerchant    Provenance = "merchant"
	ProvenancePassthrough Provenance = "passthrough"
)

// RawEntitySet holds the unvalidated substrings located in one clause of
// text. Empty fields mean the entity was not found; no normalization has
// happened yet.
type RawEntitySet struct {
	AmountText   string
	CategoryText string
	DateText     string
}

// TransactionCandidate is a fully validated transaction extracted from a
// message and/or receipt. Candidates are immutable once assembled: they are
// passed around by value and never modified.
type TransactionCandidate struct {
	Date            time.Time
	FieldProvenance map[string]Provenance
	Type            TransactionType
	Category        string
	Description     string
	Amount          int64
	Confidence      float64
}

// RejectionReason is a typed code explaining why no candidate was produced.
type RejectionReason string

// Rejection reasons.
const (
	RejectMissingAmount   RejectionReason = "MissingAmount"
	RejectMissingCategory RejectionReason = "MissingCategory"
	RejectAmbiguousSplit  RejectionReason = "AmbiguousSplit"
	RejectUnrecognized    RejectionReason = "Unrecognized"
)

// Rejection is returned instead of candidates when a message could not be
// turned into any valid transaction. Callers translate the reason into a
// user-facing message.
type Rejection struct {
	Reason RejectionReason
}

// MaintenanceKind identifies a non-transaction action requested by the user.
type MaintenanceKind string

// Maintenance and query actions. Edit/delete are consumed by the persistence
// collaborator; history/help are answered directly by the host.
const (
	MaintenanceEditLast   MaintenanceKind = "edit.last"
	MaintenanceDeleteLast MaintenanceKind = "delete.last"
	QueryHistory          MaintenanceKind = "query.history"
	QueryHelp             MaintenanceKind = "general.help"
)

// MaintenanceAction signals that the message requested a maintenance or
// query action rather than a new transaction. Candidate assembly is bypassed
// entirely for these.
type MaintenanceAction struct {
	Kind MaintenanceKind
}
