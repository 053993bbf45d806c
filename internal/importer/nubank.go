package importer

import (
	"strconv"
	"strings"

	"despesas/internal/core"
)

// Nubank credit card exports: lowercase english headers, ISO or slash
// dates, period-decimal amounts with no currency symbol, installment
// annotation embedded in the title.
var nubankFormat = format{
	bank:      core.Nubank,
	signature: []string{"date", "title", "amount"},
	columns: columnMapping{
		date:        "date",
		item:        "title",
		amount:      "amount",
		installment: "title",
	},
	amount: parseNubankAmount,
}

func parseNubankAmount(s string) (float64, error) {
	return strconv.ParseFloat(strings.TrimSpace(s), 64)
}
