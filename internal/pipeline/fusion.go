package pipeline

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/duitbot/duitbot/internal/extract"
	"github.com/duitbot/duitbot/internal/model"
	"github.com/duitbot/duitbot/internal/ocr"
)

// fusedFields holds the per-field values resolved by the fusion rules,
// before validation packages them into a candidate.
type fusedFields struct {
	date        time.Time
	provenance  map[string]model.Provenance
	category    string
	description string
	intent      model.Intent
	amount      int64
	confidence  float64
}

// fuse merges text-derived entities with the OCR extract. For each field the
// first applicable rule wins: text beats receipt, receipt fills gaps. When
// the message carried no real text (hadText false), text-derived values came
// from a synthesized directive and the receipt is treated as the source of
// truth for every field.
func (p *Pipeline) fuse(entities model.RawEntitySet, classified model.ClassifiedIntent, receipt ocr.Extract, hadText bool, originalText string) fusedFields {
	fused := fusedFields{
		intent:     classified.Intent,
		confidence: classified.Confidence,
		provenance: make(map[string]model.Provenance),
	}

	// Amount: text first, then the max-amount receipt-total proxy.
	if hadText && entities.AmountText != "" {
		if amount, err := extract.NormalizeAmount(entities.AmountText); err == nil {
			fused.amount = amount
			fused.provenance["amount"] = model.ProvenanceText
		} else {
			slog.Debug("Amount token did not normalize", "token", entities.AmountText, "error", err)
		}
	}
	if fused.amount == 0 {
		if maxAmount := receipt.MaxAmount(); maxAmount > 0 {
			fused.amount = maxAmount
			fused.provenance["amount"] = model.ProvenanceOCR
		}
	}

	// Date: text first, then the receipt's first date, then today.
	if hadText && entities.DateText != "" {
		if date, err := extract.NormalizeDate(entities.DateText, p.now()); err == nil {
			fused.date = date
			fused.provenance["date"] = model.ProvenanceText
		}
	}
	if fused.date.IsZero() && len(receipt.Dates) > 0 {
		fused.date = receipt.Dates[0]
		fused.provenance["date"] = model.ProvenanceOCR
	}
	if fused.date.IsZero() {
		fused.date = truncateToDay(p.now())
	}

	// Category: text path first, then merchant inference, then whatever the
	// directive carried for a receipt without a merchant line.
	if hadText && entities.CategoryText != "" {
		normalized := p.categories.NormalizeText(entities.CategoryText)
		fused.category = normalized.Category
		fused.provenance["category"] = normalized.Provenance
	}
	if fused.category == "" && len(receipt.Merchants) > 0 {
		inferred := p.categories.InferFromMerchant(receipt.Merchants[0])
		fused.category = inferred.Category
		fused.provenance["category"] = inferred.Provenance
	}
	if fused.category == "" && !hadText && entities.CategoryText != "" {
		normalized := p.categories.NormalizeText(entities.CategoryText)
		fused.category = normalized.Category
		fused.provenance["category"] = model.ProvenanceOCR
	}

	fused.description = buildDescription(originalText, receipt)
	if strings.TrimSpace(originalText) != "" {
		fused.provenance["description"] = model.ProvenanceText
	} else if fused.description != "" {
		fused.provenance["description"] = model.ProvenanceOCR
	}

	return fused
}

// buildDescription concatenates the typed text with synthesized merchant and
// item lines, omitting empty parts.
func buildDescription(originalText string, receipt ocr.Extract) string {
	var parts []string
	if trimmed := strings.TrimSpace(originalText); trimmed != "" {
		parts = append(parts, trimmed)
	}
	if len(receipt.Merchants) > 0 {
		parts = append(parts, fmt.Sprintf("Merchant: %s", receipt.Merchants[0]))
	}
	if len(receipt.Items) > 0 {
		parts = append(parts, fmt.Sprintf("Items: %s", strings.Join(receipt.Items, ", ")))
	}
	return strings.Join(parts, "\n")
}

func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
