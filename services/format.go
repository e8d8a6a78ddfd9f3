package services

import (
	"fmt"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

var idPrinter = message.NewPrinter(language.Indonesian)

// MonthNames are the Indonesian month names, index 0 = Januari.
var MonthNames = [12]string{
	"Januari", "Februari", "Maret", "April", "Mei", "Juni",
	"Juli", "Agustus", "September", "Oktober", "November", "Desember",
}

// FormatIDR formats an amount as Indonesian Rupiah with locale grouping
// and no decimal digits, e.g. "Rp 1.234.567". Negative amounts keep the
// sign in front of the currency marker.
func FormatIDR(amount float64) string {
	negative := amount < 0
	if negative {
		amount = -amount
	}
	formatted := idPrinter.Sprintf("%v", number.Decimal(amount, number.MaxFractionDigits(0)))
	if negative {
		return "-Rp " + formatted
	}
	return "Rp " + formatted
}

// FormatCompact shortens an amount for chart axes: 1500000 becomes "1.5M",
// 2300 becomes "2K".
func FormatCompact(amount float64) string {
	switch {
	case amount >= 1e9:
		return fmt.Sprintf("%.1fB", amount/1e9)
	case amount >= 1e6:
		return fmt.Sprintf("%.1fM", amount/1e6)
	case amount >= 1e3:
		return fmt.Sprintf("%.0fK", amount/1e3)
	}
	return fmt.Sprintf("%.0f", amount)
}

// FormatDate renders a time as an Indonesian long date, e.g.
// "17 Agustus 2025". The zero time renders as a dash.
func FormatDate(t time.Time) string {
	if t.IsZero() {
		return "-"
	}
	return fmt.Sprintf("%d %s %d", t.Day(), MonthNames[int(t.Month())-1], t.Year())
}
