package importer

import "testing"

func TestParseInterAmount(t *testing.T) {
	tests := []struct {
		input   string
		want    float64
		wantErr bool
	}{
		{input: "R$ 89,90", want: 89.90},
		{input: "89,90", want: 89.90},
		{input: " R$ 1200,00 ", want: 1200.00},
		{input: "R$ -45,50", want: -45.50},
		{input: "", wantErr: true},
		// Thousands grouping is not cleaned and fails the row.
		{input: "R$ 1.234,56", wantErr: true},
	}

	for _, tt := range tests {
		got, err := parseInterAmount(tt.input)
		if tt.wantErr {
			if err == nil {
				t.Errorf("parseInterAmount(%q) = %v, expected error", tt.input, got)
			}
			continue
		}
		if err != nil {
			t.Errorf("parseInterAmount(%q): %v", tt.input, err)
			continue
		}
		if got != tt.want {
			t.Errorf("parseInterAmount(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}
