// Package cli provides styled terminal output using lipgloss.
package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/duitbot/duitbot/internal/model"
	"github.com/duitbot/duitbot/internal/reply"
)

var (
	// SuccessColor indicates successful operations.
	SuccessColor = lipgloss.Color("#4ECDC4")
	// WarningColor indicates warnings or caution messages.
	WarningColor = lipgloss.Color("#FFE66D")
	// ErrorColor indicates errors or failure messages.
	ErrorColor = lipgloss.Color("#FF6B6B")
	// SubtleColor indicates less prominent UI elements.
	SubtleColor = lipgloss.Color("#666666")

	// TitleStyle is used for section titles.
	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(SuccessColor).
			MarginBottom(1)

	// SuccessStyle formats success messages.
	SuccessStyle = lipgloss.NewStyle().
			Foreground(SuccessColor)

	// WarningStyle formats warning messages.
	WarningStyle = lipgloss.NewStyle().
			Foreground(WarningColor)

	// ErrorStyle formats error messages.
	ErrorStyle = lipgloss.NewStyle().
			Foreground(ErrorColor)

	// SubtleStyle formats less prominent text.
	SubtleStyle = lipgloss.NewStyle().
			Foreground(SubtleColor)

	// BoxStyle is used for bordered content boxes.
	BoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#333")).
			Padding(0, 2)
)

// RenderCandidate renders one assembled transaction candidate.
func RenderCandidate(c model.TransactionCandidate) string {
	flow := "Pengeluaran"
	style := ErrorStyle
	if c.Type == model.TypeIncome {
		flow = "Pemasukan"
		style = SuccessStyle
	}

	lines := []string{
		style.Render(fmt.Sprintf("%s Rp%s", flow, reply.FormatRupiah(c.Amount))),
		fmt.Sprintf("Kategori: %s", c.Category),
		fmt.Sprintf("Tanggal: %s", c.Date.Format("2006-01-02")),
		SubtleStyle.Render(fmt.Sprintf("Keyakinan: %.2f", c.Confidence)),
	}
	for _, field := range []string{"amount", "category", "date"} {
		if prov, ok := c.FieldProvenance[field]; ok {
			lines = append(lines, SubtleStyle.Render(fmt.Sprintf("  %s ← %s", field, prov)))
		}
	}
	return BoxStyle.Render(strings.Join(lines, "\n"))
}

// RenderRejection renders a rejection with its reason code.
func RenderRejection(r model.Rejection) string {
	return WarningStyle.Render(fmt.Sprintf("✗ %s", r.Reason)) + "\n" + reply.FormatRejection(r)
}

// FormatSuccess formats a success message with icon.
func FormatSuccess(message string) string {
	return SuccessStyle.Render("✓ " + message)
}

// FormatError formats an error message with icon.
func FormatError(message string) string {
	return ErrorStyle.Render("✗ " + message)
}
