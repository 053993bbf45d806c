package importer

import (
	"strconv"
	"strings"

	"despesas/internal/core"
)

// Banco Inter exports: Portuguese headers, DD/MM/YYYY dates, amounts like
// "R$ 89,90" with a comma decimal separator, installment annotation in the
// optional Tipo column.
var interFormat = format{
	bank:      core.Inter,
	signature: []string{"Data", "Lançamento", "Valor"},
	columns: columnMapping{
		date:        "Data",
		item:        "Lançamento",
		amount:      "Valor",
		installment: "Tipo",
	},
	amount: parseInterAmount,
}

// parseInterAmount strips the currency symbol, trims whitespace and swaps
// the decimal comma for a period before parsing. Thousands separators are
// not cleaned: "R$ 1.234,56" becomes "1.234.56" and surfaces as a row
// error.
func parseInterAmount(s string) (float64, error) {
	s = strings.ReplaceAll(s, "R$", "")
	s = strings.TrimSpace(s)
	s = strings.ReplaceAll(s, ",", ".")
	return strconv.ParseFloat(s, 64)
}
