package pipeline

import (
	"github.com/duitbot/duitbot/internal/model"
)

// assemble validates fused fields and packages them into an immutable
// candidate. Callers never receive a partially-filled record: validation
// failure yields a typed rejection instead.
func (p *Pipeline) assemble(fused fusedFields) (model.TransactionCandidate, *model.Rejection) {
	if fused.amount <= 0 {
		return model.TransactionCandidate{}, &model.Rejection{Reason: model.RejectMissingAmount}
	}
	if fused.category == "" {
		return model.TransactionCandidate{}, &model.Rejection{Reason: model.RejectMissingCategory}
	}

	return model.TransactionCandidate{
		Type:            fused.intent.TransactionType(),
		Amount:          fused.amount,
		Category:        fused.category,
		Date:            fused.date,
		Description:     fused.description,
		Confidence:      fused.confidence,
		FieldProvenance: fused.provenance,
	}, nil
}
