package i18n

import (
	"math"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

var brlPrinter = message.NewPrinter(language.BrazilianPortuguese)

// FormatBRL renders an amount the way pt-BR shows Brazilian reais.
// Examples:
//
//	FormatBRL(350000)     → "R$ 350.000,00"
//	FormatBRL(1234.5)     → "R$ 1.234,50"
//	FormatBRL(-99.999)    → "-R$ 100,00"
func FormatBRL(amount float64) string {
	rounded := math.Round(math.Abs(amount)*100) / 100
	sign := ""
	if amount < 0 && rounded > 0 {
		sign = "-"
	}
	return sign + brlPrinter.Sprintf("R$ %v", number.Decimal(rounded,
		number.MinFractionDigits(2),
		number.MaxFractionDigits(2),
	))
}

// FormatDecimal renders v with lang's separators and at most two decimals,
// e.g. 1250.5 → "1.250,5" in pt and "1,250.5" in en.
func FormatDecimal(v float64, lang string) string {
	return Printer(lang).Sprint(number.Decimal(v, number.MaxFractionDigits(2)))
}
