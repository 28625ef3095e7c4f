// Package reply renders pipeline outcomes as Indonesian chat messages.
package reply

import (
	"fmt"
	"strings"

	"github.com/duitbot/duitbot/internal/model"
	"github.com/duitbot/duitbot/internal/pipeline"
)

// FormatResult renders one pipeline result as the message sent back to the
// user.
func FormatResult(result pipeline.Result) string {
	switch {
	case result.Maintenance != nil:
		return formatMaintenance(result.Maintenance.Kind)
	case result.Rejection != nil:
		return FormatRejection(*result.Rejection)
	case len(result.Candidates) > 0:
		return formatCandidates(result.Candidates)
	default:
		return "Maaf, saya tidak mengerti permintaan Anda. Ketik \"bantuan\" untuk melihat panduan penggunaan."
	}
}

func formatCandidates(candidates []model.TransactionCandidate) string {
	var b strings.Builder
	b.WriteString("✅ Transaksi berhasil dicatat!\n")
	for _, c := range candidates {
		flow := "Pengeluaran"
		if c.Type == model.TypeIncome {
			flow = "Pemasukan"
		}
		fmt.Fprintf(&b, "\n%s: Rp%s\nKategori: %s\n", flow, FormatRupiah(c.Amount), c.Category)
	}
	return b.String()
}

// FormatRejection translates a rejection reason into user guidance.
func FormatRejection(rejection model.Rejection) string {
	switch rejection.Reason {
	case model.RejectMissingAmount:
		return "Jumlah tidak ditemukan. Contoh: \"catat pengeluaran 50000 untuk makan\""
	case model.RejectMissingCategory:
		return "Kategori tidak ditemukan. Contoh: \"catat pengeluaran 50000 untuk makan\""
	case model.RejectAmbiguousSplit:
		return "Terjadi kesalahan dalam memproses transaksi ganda."
	default:
		return "Maaf, saya tidak mengerti permintaan Anda. Ketik \"bantuan\" untuk melihat panduan penggunaan."
	}
}

func formatMaintenance(kind model.MaintenanceKind) string {
	switch kind {
	case model.MaintenanceEditLast:
		return "Silakan masukkan detail baru untuk transaksi terakhir."
	case model.MaintenanceDeleteLast:
		return "Transaksi terakhir akan dihapus."
	case model.QueryHistory:
		return "Mengambil riwayat transaksi Anda..."
	case model.QueryHelp:
		return helpText
	default:
		return "Permintaan diterima."
	}
}

const helpText = `Panduan penggunaan:
- catat pengeluaran 50000 untuk makan
- p50k makan (singkatan pengeluaran)
- m1juta gaji (singkatan pemasukan)
- catat pengeluaran 50000 untuk makan dan 30000 untuk transport
- edit transaksi terakhir / hapus transaksi terakhir
- kirim foto struk untuk pencatatan otomatis`

// FormatRupiah renders a whole rupiah value with dot thousand grouping.
func FormatRupiah(amount int64) string {
	digits := fmt.Sprintf("%d", amount)
	if len(digits) <= 3 {
		return digits
	}
	var b strings.Builder
	lead := len(digits) % 3
	if lead > 0 {
		b.WriteString(digits[:lead])
	}
	for i := lead; i < len(digits); i += 3 {
		if b.Len() > 0 {
			b.WriteString(".")
		}
		b.WriteString(digits[i : i+3])
	}
	return b.String()
}
