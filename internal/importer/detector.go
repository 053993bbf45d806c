package importer

import "despesas/internal/core"

// format pairs a bank's header signature with the column mapping and
// amount cleaner its normalizer needs. Adding a bank means appending one
// entry to formats; detection control flow never changes.
type format struct {
	bank      core.Bank
	signature []string // headers that must all be present
	columns   columnMapping
	amount    amountCleaner
}

// columnMapping names the statement columns a format reads each canonical
// field from. installment may be empty when the format carries no
// installment annotation column of its own.
type columnMapping struct {
	date        string
	item        string
	amount      string
	installment string
}

// amountCleaner converts a format's raw amount string to a float.
type amountCleaner func(string) (float64, error)

// formats is the registered detection list, checked in order. Signatures
// must stay mutually exclusive; TestSignaturesMutuallyExclusive guards
// that.
var formats = []format{nubankFormat, interFormat}

// Detect classifies a header set as one of the known bank formats, or
// Unknown when no signature matches. Unknown is not an error by itself.
func Detect(headers []string) core.Bank {
	bank, _ := detect(headers)
	return bank
}

func detect(headers []string) (core.Bank, format) {
	set := make(map[string]struct{}, len(headers))
	for _, h := range headers {
		set[h] = struct{}{}
	}
	for _, f := range formats {
		if containsAll(set, f.signature) {
			return f.bank, f
		}
	}
	return core.Unknown, format{}
}

func containsAll(set map[string]struct{}, required []string) bool {
	for _, h := range required {
		if _, ok := set[h]; !ok {
			return false
		}
	}
	return true
}
