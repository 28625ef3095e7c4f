package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/duitbot/duitbot/internal/cli"
	"github.com/duitbot/duitbot/internal/common"
	"github.com/duitbot/duitbot/internal/config"
	"github.com/duitbot/duitbot/internal/model"
	"github.com/duitbot/duitbot/internal/ocr"
	"github.com/duitbot/duitbot/internal/pipeline"
)

func parseCmd() *cobra.Command {
	var (
		file        string
		receiptText string
	)

	cmd := &cobra.Command{
		Use:   "parse [message]",
		Short: "Parse a message (and optionally a recognized receipt) into transactions",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if file != "" {
				return runBatch(cmd.Context(), file)
			}

			message := ""
			if len(args) > 0 {
				message = args[0]
			}
			if message == "" && receiptText == "" {
				return fmt.Errorf("provide a message argument, --file, or --receipt-text")
			}
			return runSingle(cmd.Context(), message, receiptText)
		},
	}

	cmd.Flags().StringVar(&file, "file", "", "parse one message per line from a file")
	cmd.Flags().StringVar(&receiptText, "receipt-text", "", "file with recognized receipt text to fuse with the message")
	return cmd
}

func runSingle(ctx context.Context, message, receiptText string) error {
	pipe, err := buildParserPipeline(receiptText)
	if err != nil {
		return err
	}

	msg := model.Message{Body: message}
	if receiptText != "" {
		msg.HasMedia = true
		msg.Media = &model.Media{Mimetype: "image/jpeg"}
	}

	result, err := pipe.Process(ctx, msg)
	if err != nil {
		return common.NewUserError("Gagal memproses pesan, silakan coba lagi", err)
	}

	switch {
	case result.Maintenance != nil:
		fmt.Println(cli.FormatSuccess(string(result.Maintenance.Kind)))
	case result.Rejection != nil:
		fmt.Println(cli.RenderRejection(*result.Rejection))
	default:
		for _, candidate := range result.Candidates {
			fmt.Println(cli.RenderCandidate(candidate))
		}
	}
	return nil
}

func runBatch(ctx context.Context, path string) error {
	pipe, err := buildPipeline()
	if err != nil {
		return err
	}

	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer func() { _ = f.Close() }()

	var lines []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		if line := strings.TrimSpace(scanner.Text()); line != "" {
			lines = append(lines, line)
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("failed to read %s: %w", path, err)
	}

	bar := progressbar.Default(int64(len(lines)), "parsing")
	accepted, rejected := 0, 0
	for _, line := range lines {
		result, err := pipe.Process(ctx, model.Message{Body: line})
		if err != nil {
			return fmt.Errorf("pipeline failed on %q: %w", line, err)
		}
		if result.Rejection != nil {
			rejected++
		} else {
			accepted += len(result.Candidates)
		}
		_ = bar.Add(1)
	}

	fmt.Println(cli.FormatSuccess(fmt.Sprintf("%d candidates extracted, %d messages rejected", accepted, rejected)))
	return nil
}

// buildParserPipeline wires an OCR stand-in that serves pre-recognized
// receipt text, so receipt fusion can be exercised without the external
// recognizer.
func buildParserPipeline(receiptText string) (*pipeline.Pipeline, error) {
	cfg := config.Default()
	if kind := viper.GetString("pipeline.classifier"); kind != "" {
		cfg.Classifier = kind
	}
	if threshold := viper.GetFloat64("pipeline.intent_threshold"); threshold > 0 {
		cfg.IntentThreshold = threshold
	}

	var processor ocr.Processor
	if receiptText != "" {
		raw, err := os.ReadFile(receiptText)
		if err != nil {
			return nil, fmt.Errorf("failed to read receipt text: %w", err)
		}
		processor = &recognizedTextProcessor{raw: string(raw), clock: cfg.Clock}
	}

	return pipeline.New(&cfg, processor)
}

// recognizedTextProcessor is an ocr.Processor fed by already-recognized
// text.
type recognizedTextProcessor struct {
	clock func() time.Time
	raw   string
}

func (p *recognizedTextProcessor) ProcessImage(_ context.Context, _ model.Media) (ocr.Result, error) {
	return ocr.Result{
		Success:   true,
		RawText:   p.raw,
		Extracted: ocr.ParseReceiptText(p.raw, p.clock),
	}, nil
}
