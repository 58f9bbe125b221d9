package money

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// FormatRupiah formatea un monto entero con separadores de miles indonesios: "Rp 25.000.000".
func FormatRupiah(amount int64) string {
	p := message.NewPrinter(language.Indonesian)
	if amount < 0 {
		return p.Sprintf("-Rp %d", -amount)
	}
	return p.Sprintf("Rp %d", amount)
}
