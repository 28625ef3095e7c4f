// Package pipeline orchestrates the text-and-receipt-to-transaction
// extraction flow: classification, entity extraction, normalization,
// multi-transaction splitting, OCR fusion and candidate assembly.
package pipeline

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/duitbot/duitbot/internal/category"
	"github.com/duitbot/duitbot/internal/common"
	"github.com/duitbot/duitbot/internal/config"
	"github.com/duitbot/duitbot/internal/extract"
	"github.com/duitbot/duitbot/internal/intent"
	"github.com/duitbot/duitbot/internal/model"
	"github.com/duitbot/duitbot/internal/ocr"
)

// Result is the outcome of one pipeline run. Exactly one of Candidates,
// Rejection or Maintenance is populated.
type Result struct {
	Rejection   *model.Rejection
	Maintenance *model.MaintenanceAction
	Candidates  []model.TransactionCandidate
}

// Pipeline runs the whole extraction flow. It holds no per-message state:
// the classifier, tables and extractor are built once and are read-only, so
// one Pipeline value serves unlimited concurrent messages.
type Pipeline struct {
	cfg        *config.Config
	classifier intent.Classifier
	extractor  *extract.Extractor
	categories *category.Normalizer
	processor  ocr.Processor
}

// New builds a pipeline from the given configuration. The OCR processor may
// be nil when no receipt channel exists; messages with media then fuse
// against an empty extract.
func New(cfg *config.Config, processor ocr.Processor) (*Pipeline, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	var classifier intent.Classifier
	switch cfg.Classifier {
	case config.ClassifierBayes:
		classifier = intent.NewBayesClassifier(cfg.Corpus, cfg.IntentThreshold)
	default:
		ruleClassifier, err := intent.NewRuleClassifier(cfg.Rules, cfg.IntentThreshold)
		if err != nil {
			return nil, fmt.Errorf("failed to build rule classifier: %w", err)
		}
		classifier = ruleClassifier
	}

	normalizer, err := category.NewNormalizer(cfg.Synonyms, cfg.MerchantPatterns)
	if err != nil {
		return nil, fmt.Errorf("failed to build category normalizer: %w", err)
	}

	return &Pipeline{
		cfg:        cfg,
		classifier: classifier,
		extractor:  extract.NewExtractor(),
		categories: normalizer,
		processor:  processor,
	}, nil
}

// Process runs one inbound message through the pipeline. Awaiting the OCR
// collaborator is the only suspension point; everything else is pure
// computation. A failed message never affects any other message.
func (p *Pipeline) Process(ctx context.Context, msg model.Message) (Result, error) {
	receipt, err := p.awaitOCR(ctx, msg)
	if err != nil {
		return Result{}, err
	}

	text := strings.TrimSpace(msg.Body)
	hadText := text != ""

	if !hadText {
		if receipt.Empty() {
			return reject(model.RejectUnrecognized), nil
		}
		if len(receipt.Amounts) == 0 {
			return reject(model.RejectMissingAmount), nil
		}
		// OCR-only receipts traverse the identical pipeline: synthesize a
		// directive and re-enter the classifier instead of special-casing.
		text = synthesizeDirective(receipt)
		slog.Debug("Synthesized OCR directive", "directive", text)
	}

	classified := p.classifier.Classify(text)
	slog.Debug("Classified message", "intent", classified.Intent, "confidence", classified.Confidence)

	switch classified.Intent {
	case model.IntentEditLast:
		return maintain(model.MaintenanceEditLast), nil
	case model.IntentDeleteLast:
		return maintain(model.MaintenanceDeleteLast), nil
	case model.IntentQueryHistory:
		return maintain(model.QueryHistory), nil
	case model.IntentHelp:
		return maintain(model.QueryHelp), nil
	case model.IntentUnrecognized:
		if hadText && len(receipt.Amounts) > 0 {
			// A receipt with an unparseable caption still describes a
			// purchase; fall back to the OCR-only directive flow.
			directive := synthesizeDirective(receipt)
			if reclassified := p.classifier.Classify(directive); reclassified.Intent.IsSingleTransaction() {
				return p.processClause(directive, reclassified, receipt, false, msg.Body)
			}
		}
		return reject(model.RejectUnrecognized), nil
	case model.IntentExpenseMultiple:
		return p.processMultiple(text, receipt, hadText)
	default:
		return p.processClause(text, classified, receipt, hadText, msg.Body)
	}
}

// processClause handles one single-transaction clause end to end.
func (p *Pipeline) processClause(text string, classified model.ClassifiedIntent, receipt ocr.Extract, hadText bool, originalText string) (Result, error) {
	entities := p.extractor.Extract(text, classified.Intent)
	fused := p.fuse(entities, classified, receipt, hadText, originalText)
	candidate, rejection := p.assemble(fused)
	if rejection != nil {
		return Result{Rejection: rejection}, nil
	}
	return Result{Candidates: []model.TransactionCandidate{candidate}}, nil
}

// awaitOCR runs the external collaborator when media is present. OCR
// failure degrades to an empty extract; a malformed extract is a hard error.
func (p *Pipeline) awaitOCR(ctx context.Context, msg model.Message) (ocr.Extract, error) {
	if !msg.HasMedia || !msg.Media.IsImage() || p.processor == nil {
		return ocr.Extract{}, nil
	}

	var result ocr.Result
	err := common.WithRetry(ctx, func() error {
		var opErr error
		result, opErr = p.processor.ProcessImage(ctx, *msg.Media)
		return opErr
	}, p.cfg.OCRRetry)
	if err != nil {
		if ctx.Err() != nil {
			return ocr.Extract{}, ctx.Err()
		}
		slog.Warn("OCR collaborator failed, continuing without receipt data", "error", err)
		return ocr.Extract{}, nil
	}
	if !result.Success {
		slog.Warn("OCR reported failure, continuing without receipt data", "error", common.ErrOCRFailed)
		return ocr.Extract{}, nil
	}

	if err := ocr.ValidateExtract(result.Extracted); err != nil {
		return ocr.Extract{}, err
	}
	return result.Extracted, nil
}

// synthesizeDirective builds the canonical expense sentence for a receipt
// that arrived without any caption text.
func synthesizeDirective(receipt ocr.Extract) string {
	subject := "belanja"
	if len(receipt.Merchants) > 0 {
		subject = strings.ToLower(receipt.Merchants[0])
	}
	return fmt.Sprintf("catat pengeluaran %d untuk %s", receipt.Amounts[0], subject)
}

func (p *Pipeline) now() time.Time {
	return p.cfg.Clock()
}

func reject(reason model.RejectionReason) Result {
	return Result{Rejection: &model.Rejection{Reason: reason}}
}

func maintain(kind model.MaintenanceKind) Result {
	return Result{Maintenance: &model.MaintenanceAction{Kind: kind}}
}
