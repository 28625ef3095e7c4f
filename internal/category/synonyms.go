package category

// SynonymEntry maps one raw category word to its canonical category. The
// table is an ordered slice rather than a map so fuzzy-match ties always
// resolve to the first entry, keeping normalization reproducible.
type SynonymEntry struct {
	Synonym   string
	Canonical string
}

// Canonical category names.
const (
	Makanan      = "makanan"
	Transportasi = "transportasi"
	Komunikasi   = "komunikasi"
	Utilitas     = "utilitas"
	Shopping     = "shopping"
	Pendapatan   = "pendapatan"
	Kesehatan    = "kesehatan"
	Lainnya      = "lainnya"
)

// DefaultSynonyms returns the default synonym table.
func DefaultSynonyms() []SynonymEntry {
	return []SynonymEntry{
		// Food & beverage
		{Synonym: "makan", Canonical: Makanan},
		{Synonym: "minum", Canonical: Makanan},
		{Synonym: "food", Canonical: Makanan},
		{Synonym: "snack", Canonical: Makanan},
		{Synonym: "sarapan", Canonical: Makanan},
		{Synonym: "mcd", Canonical: Makanan},
		{Synonym: "kfc", Canonical: Makanan},
		{Synonym: "resto", Canonical: Makanan},
		{Synonym: "warung", Canonical: Makanan},
		{Synonym: "kopi", Canonical: Makanan},

		// Transportation
		{Synonym: "transport", Canonical: Transportasi},
		{Synonym: "bensin", Canonical: Transportasi},
		{Synonym: "bbm", Canonical: Transportasi},
		{Synonym: "grab", Canonical: Transportasi},
		{Synonym: "gojek", Canonical: Transportasi},
		{Synonym: "taxi", Canonical: Transportasi},
		{Synonym: "tol", Canonical: Transportasi},
		{Synonym: "parkir", Canonical: Transportasi},
		{Synonym: "busway", Canonical: Transportasi},
		{Synonym: "ojek", Canonical: Transportasi},

		// Communication
		{Synonym: "pulsa", Canonical: Komunikasi},
		{Synonym: "internet", Canonical: Komunikasi},
		{Synonym: "data", Canonical: Komunikasi},
		{Synonym: "wifi", Canonical: Komunikasi},
		{Synonym: "telepon", Canonical: Komunikasi},
		{Synonym: "kuota", Canonical: Komunikasi},

		// Utilities
		{Synonym: "listrik", Canonical: Utilitas},
		{Synonym: "air", Canonical: Utilitas},
		{Synonym: "pln", Canonical: Utilitas},
		{Synonym: "pdam", Canonical: Utilitas},
		{Synonym: "gas", Canonical: Utilitas},
		{Synonym: "sampah", Canonical: Utilitas},
		{Synonym: "maintenance", Canonical: Utilitas},

		// Shopping
		{Synonym: "belanja", Canonical: Shopping},
		{Synonym: "baju", Canonical: Shopping},
		{Synonym: "sepatu", Canonical: Shopping},
		{Synonym: "tas", Canonical: Shopping},
		{Synonym: "aksesoris", Canonical: Shopping},
		{Synonym: "mall", Canonical: Shopping},

		// Health
		{Synonym: "obat", Canonical: Kesehatan},
		{Synonym: "dokter", Canonical: Kesehatan},
		{Synonym: "apotek", Canonical: Kesehatan},

		// Income
		{Synonym: "gaji", Canonical: Pendapatan},
		{Synonym: "salary", Canonical: Pendapatan},
		{Synonym: "bonus", Canonical: Pendapatan},
		{Synonym: "freelance", Canonical: Pendapatan},
		{Synonym: "proyek", Canonical: Pendapatan},
		{Synonym: "investasi", Canonical: Pendapatan},
		{Synonym: "dividen", Canonical: Pendapatan},
		{Synonym: "bunga", Canonical: Pendapatan},
	}
}
