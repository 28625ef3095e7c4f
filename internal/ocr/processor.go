// Package ocr defines the contract with the external OCR collaborator and
// parses recognized receipt text into structured candidates.
package ocr

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/duitbot/duitbot/internal/common"
	"github.com/duitbot/duitbot/internal/model"
)

// Processor is the external OCR collaborator. The image-to-text recognition
// step lives behind this interface; the pipeline only consumes its
// structured output.
type Processor interface {
	ProcessImage(ctx context.Context, media model.Media) (Result, error)
}

// Result is the collaborator's response for one image.
type Result struct {
	RawText   string
	Extracted Extract
	Success   bool
}

// Extract holds the ordered candidate lists recognized on a receipt. It is
// read-only input to the fusion resolver.
type Extract struct {
	Amounts   []int64
	Dates     []time.Time
	Merchants []string
	Items     []string
}

// Empty reports whether OCR found nothing usable.
func (e Extract) Empty() bool {
	return len(e.Amounts) == 0 && len(e.Dates) == 0 && len(e.Merchants) == 0 && len(e.Items) == 0
}

// MaxAmount returns the largest recognized amount. Receipts commonly list
// subtotal lines plus a total; the maximum is the best single-field proxy
// for the total. Returns 0 when no amounts were recognized.
func (e Extract) MaxAmount() int64 {
	var maxAmount int64
	for _, a := range e.Amounts {
		if a > maxAmount {
			maxAmount = a
		}
	}
	return maxAmount
}

// ValidateExtract checks that a collaborator-supplied extract matches the
// declared shape. A malformed extract is the one condition that propagates
// as a hard error rather than being silently coerced.
func ValidateExtract(e Extract) error {
	for i, amount := range e.Amounts {
		if amount < 0 {
			return fmt.Errorf("%w: negative amount %d at index %d", common.ErrMalformedExtract, amount, i)
		}
	}
	for i, date := range e.Dates {
		if date.IsZero() {
			return fmt.Errorf("%w: zero date at index %d", common.ErrMalformedExtract, i)
		}
	}
	for i, merchant := range e.Merchants {
		if strings.TrimSpace(merchant) == "" {
			return fmt.Errorf("%w: blank merchant at index %d", common.ErrMalformedExtract, i)
		}
	}
	for i, item := range e.Items {
		if strings.TrimSpace(item) == "" {
			return fmt.Errorf("%w: blank item at index %d", common.ErrMalformedExtract, i)
		}
	}
	return nil
}
