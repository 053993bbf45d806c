package importer

import "testing"

func TestExtractInstallment(t *testing.T) {
	tests := []struct {
		name        string
		text        string
		wantCurrent int
		wantTotal   int
	}{
		{name: "match", text: "Compra Parcela 2/6", wantCurrent: 2, wantTotal: 6},
		{name: "case insensitive", text: "notebook PARCELA 3/10", wantCurrent: 3, wantTotal: 10},
		{name: "lowercase", text: "parcela 1/12", wantCurrent: 1, wantTotal: 12},
		{name: "no annotation", text: "Supermercado", wantCurrent: 1, wantTotal: 1},
		{name: "empty", text: "", wantCurrent: 1, wantTotal: 1},
		{name: "digits required", text: "Parcela x/y", wantCurrent: 1, wantTotal: 1},
		{name: "multi digit", text: "Parcela 11/24", wantCurrent: 11, wantTotal: 24},
		{name: "embedded", text: "Loja ABC Parcela 4/5 cartão", wantCurrent: 4, wantTotal: 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			current, total := extractInstallment(tt.text)
			if current != tt.wantCurrent || total != tt.wantTotal {
				t.Errorf("extractInstallment(%q) = (%d, %d), want (%d, %d)",
					tt.text, current, total, tt.wantCurrent, tt.wantTotal)
			}
		})
	}
}
