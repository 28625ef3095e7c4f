package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIntent_Predicates(t *testing.T) {
	tests := []struct {
		name       string
		intent     Intent
		wantTxn    bool
		wantSingle bool
	}{
		{name: "expense single", intent: IntentExpenseSingle, wantTxn: true, wantSingle: true},
		{name: "income single", intent: IntentIncomeSingle, wantTxn: true, wantSingle: true},
		{name: "expense multiple", intent: IntentExpenseMultiple, wantTxn: true, wantSingle: false},
		{name: "edit last", intent: IntentEditLast, wantTxn: false, wantSingle: false},
		{name: "delete last", intent: IntentDeleteLast, wantTxn: false, wantSingle: false},
		{name: "query history", intent: IntentQueryHistory, wantTxn: false, wantSingle: false},
		{name: "help", intent: IntentHelp, wantTxn: false, wantSingle: false},
		{name: "unrecognized", intent: IntentUnrecognized, wantTxn: false, wantSingle: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.wantTxn, tt.intent.IsTransaction())
			assert.Equal(t, tt.wantSingle, tt.intent.IsSingleTransaction())
		})
	}
}

func TestIntent_TransactionType(t *testing.T) {
	assert.Equal(t, TypeIncome, IntentIncomeSingle.TransactionType())
	assert.Equal(t, TypeExpense, IntentExpenseSingle.TransactionType())
	assert.Equal(t, TypeExpense, IntentExpenseMultiple.TransactionType())
}
