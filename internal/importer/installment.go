package importer

import (
	"regexp"
	"strconv"
)

// Installment annotations appear in free text as "Parcela 2/6".
var installmentPattern = regexp.MustCompile(`(?i)Parcela (\d+)/(\d+)`)

// extractInstallment scans free text for an installment annotation and
// returns the (current, total) pair. No match, or empty input, means a
// single full payment: (1, 1). The capture groups are digit runs, so
// Atoi cannot fail on them.
func extractInstallment(text string) (current, total int) {
	m := installmentPattern.FindStringSubmatch(text)
	if m == nil {
		return 1, 1
	}
	current, _ = strconv.Atoi(m[1])
	total, _ = strconv.Atoi(m[2])
	return current, total
}
