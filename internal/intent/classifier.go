// Package intent classifies chat messages into a fixed set of intents.
//
// Two interchangeable implementations exist behind the Classifier interface:
// a deterministic rule table and a trainable scorer. Tests pin exact
// behavior against the rule table.
package intent

import (
	"strings"

	"github.com/duitbot/duitbot/internal/model"
)

// Conjunction is the literal clause separator for multi-transaction
// messages.
const Conjunction = " dan "

// DefaultThreshold is the confidence floor below which a classification is
// routed to the unrecognized intent.
const DefaultThreshold = 0.6

// Classifier turns raw message text into a classified intent.
type Classifier interface {
	Classify(text string) model.ClassifiedIntent
}

// classifyMultiple applies the multi-transaction tie rule: a message is
// expense.multiple when and only when the conjunction literal is present and
// splitting yields at least two clauses that each classify as a single
// transaction on their own. The reported confidence is the weakest clause.
func classifyMultiple(text string, classifyClause func(string) model.ClassifiedIntent) (model.ClassifiedIntent, bool) {
	if !strings.Contains(strings.ToLower(text), Conjunction) {
		return model.ClassifiedIntent{}, false
	}

	clauses := SplitClauses(text)
	if len(clauses) < 2 {
		return model.ClassifiedIntent{}, false
	}

	confidence := 1.0
	singles := 0
	for _, clause := range clauses {
		result := classifyClause(clause)
		if !result.Intent.IsSingleTransaction() {
			continue
		}
		singles++
		if result.Confidence < confidence {
			confidence = result.Confidence
		}
	}
	if singles < 2 {
		return model.ClassifiedIntent{}, false
	}

	return model.ClassifiedIntent{Intent: model.IntentExpenseMultiple, Confidence: confidence}, true
}

// SplitClauses splits a message on the conjunction literal into ordered,
// trimmed clauses. Empty clauses are dropped.
func SplitClauses(text string) []string {
	parts := strings.Split(strings.ToLower(strings.TrimSpace(text)), Conjunction)
	clauses := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			clauses = append(clauses, trimmed)
		}
	}
	return clauses
}
