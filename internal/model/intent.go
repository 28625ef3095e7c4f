package model

// Intent is the discrete action a message requests.
type Intent string

// Recognized intents.
const (
	IntentExpenseSingle   Intent = "expense.single"
	IntentIncomeSingle    Intent = "income.single"
	IntentExpenseMultiple Intent = "expense.multiple"
	IntentEditLast        Intent = "edit.last"
	IntentDeleteLast      Intent = "delete.last"
	IntentQueryHistory    Intent = "query.history"
	IntentHelp            Intent = "general.help"
	IntentUnrecognized    Intent = "query.unrecognized"
)

// ClassifiedIntent is the result of running a message through a classifier.
type ClassifiedIntent struct {
	Intent     Intent
	Confidence float64
}

// IsTransaction reports whether the intent should produce transaction
// candidates (as opposed to maintenance or query signals).
func (i Intent) IsTransaction() bool {
	switch i {
	case IntentExpenseSingle, IntentIncomeSingle, IntentExpenseMultiple:
		return true
	default:
		return false
	}
}

// IsSingleTransaction reports whether the intent describes exactly one
// transaction. Clauses of a multi-transaction message must classify to one
// of these on their own.
func (i Intent) IsSingleTransaction() bool {
	return i == IntentExpenseSingle || i == IntentIncomeSingle
}

// TransactionType maps an intent to the candidate type it produces. Income
// intents map to income; everything else in the transaction family is an
// expense.
func (i Intent) TransactionType() TransactionType {
	if i == IntentIncomeSingle {
		return TypeIncome
	}
	return TypeExpense
}
