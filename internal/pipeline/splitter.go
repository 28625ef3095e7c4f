package pipeline

import (
	"log/slog"

	"github.com/duitbot/duitbot/internal/intent"
	"github.com/duitbot/duitbot/internal/model"
	"github.com/duitbot/duitbot/internal/ocr"
)

// processMultiple segments a multi-transaction message into clauses and runs
// each one through the single-transaction flow independently. Clauses that
// fail to yield both a valid amount and category are discarded; the relative
// order of the survivors is preserved.
func (p *Pipeline) processMultiple(text string, receipt ocr.Extract, hadText bool) (Result, error) {
	clauses := intent.SplitClauses(text)
	if len(clauses) < 2 {
		return reject(model.RejectAmbiguousSplit), nil
	}

	candidates := make([]model.TransactionCandidate, 0, len(clauses))
	for i, clause := range clauses {
		classified := p.classifier.Classify(clause)
		if !classified.Intent.IsSingleTransaction() {
			slog.Debug("Discarding clause with non-single intent", "clause", clause, "intent", classified.Intent)
			continue
		}

		entities := p.extractor.Extract(clause, classified.Intent)

		// Positional fill: a clause without its own amount borrows the
		// receipt amount at the same index. This matches by position, not
		// content, and is a best-effort heuristic.
		clauseReceipt := ocr.Extract{}
		if entities.AmountText == "" && i < len(receipt.Amounts) {
			clauseReceipt.Amounts = receipt.Amounts[i : i+1]
		}

		fused := p.fuse(entities, classified, clauseReceipt, hadText, clause)
		candidate, rejection := p.assemble(fused)
		if rejection != nil {
			slog.Debug("Discarding clause", "clause", clause, "reason", rejection.Reason)
			continue
		}
		candidates = append(candidates, candidate)
	}

	if len(candidates) == 0 {
		return reject(model.RejectAmbiguousSplit), nil
	}
	return Result{Candidates: candidates}, nil
}
