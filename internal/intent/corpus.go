package intent

import "github.com/duitbot/duitbot/internal/model"

// TrainingDocument is one labeled utterance. The %amount%, %category% and
// %date% placeholders mark entity slots.
type TrainingDocument struct {
	Text   string
	Intent model.Intent
}

// DefaultCorpus returns the built-in labeled utterances used to train the
// Bayes classifier.
func DefaultCorpus() []TrainingDocument {
	return []TrainingDocument{
		// Expenses
		{Text: "catat pengeluaran %amount% untuk %category%", Intent: model.IntentExpenseSingle},
		{Text: "keluar %amount% buat %category%", Intent: model.IntentExpenseSingle},
		{Text: "bayar %amount% untuk %category%", Intent: model.IntentExpenseSingle},
		{Text: "beli %category% %amount%", Intent: model.IntentExpenseSingle},
		{Text: "%amount% untuk %category%", Intent: model.IntentExpenseSingle},
		{Text: "pengeluaran %amount% %category%", Intent: model.IntentExpenseSingle},

		// Multi-transaction
		{Text: "catat pengeluaran %amount% untuk %category% dan %amount% untuk %category%", Intent: model.IntentExpenseMultiple},
		{Text: "beli %category% %amount% dan %category% %amount%", Intent: model.IntentExpenseMultiple},

		// Income
		{Text: "catat pemasukan %amount% dari %category%", Intent: model.IntentIncomeSingle},
		{Text: "terima uang %amount% dari %category%", Intent: model.IntentIncomeSingle},
		{Text: "dapat %amount% dari %category%", Intent: model.IntentIncomeSingle},
		{Text: "masuk %amount% dari %category%", Intent: model.IntentIncomeSingle},
		{Text: "pemasukan %amount% %category%", Intent: model.IntentIncomeSingle},

		// Maintenance
		{Text: "edit transaksi terakhir", Intent: model.IntentEditLast},
		{Text: "ubah transaksi terakhir", Intent: model.IntentEditLast},
		{Text: "hapus transaksi terakhir", Intent: model.IntentDeleteLast},

		// Queries
		{Text: "lihat transaksi", Intent: model.IntentQueryHistory},
		{Text: "riwayat transaksi", Intent: model.IntentQueryHistory},
		{Text: "transaksi bulan ini", Intent: model.IntentQueryHistory},
		{Text: "transaksi hari ini", Intent: model.IntentQueryHistory},
		{Text: "transaksi minggu ini", Intent: model.IntentQueryHistory},

		// Help
		{Text: "bantuan", Intent: model.IntentHelp},
		{Text: "cara pakai", Intent: model.IntentHelp},
		{Text: "menu", Intent: model.IntentHelp},
		{Text: "status", Intent: model.IntentHelp},
	}
}
