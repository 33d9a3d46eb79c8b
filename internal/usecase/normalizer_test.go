package usecase

import "testing"

func TestNormalizeName(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "lowercases and strips punctuation",
			input: "Britannia White Bread!!",
			want:  "britannia white bread",
		},
		{
			name:  "collapses whitespace runs",
			input: "  Harvest   Gold\tBread  ",
			want:  "harvest gold bread",
		},
		{
			name:  "keeps digits",
			input: "Milk Bread 400g",
			want:  "milk bread 400g",
		},
		{
			name:  "strips currency and symbols",
			input: "Bonn Bread @ ₹30 (offer)",
			want:  "bonn bread 30 offer",
		},
		{
			name:  "empty input yields empty output",
			input: "",
			want:  "",
		},
		{
			name:  "punctuation-only input yields empty output",
			input: "!!!---...",
			want:  "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NormalizeName(tt.input)
			if got != tt.want {
				t.Errorf("NormalizeName(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestNormalizeNameIdempotent(t *testing.T) {
	inputs := []string{
		"Britannia White Bread!!",
		"  Multi   Space  ",
		"already normalized",
		"",
	}

	for _, input := range inputs {
		once := NormalizeName(input)
		twice := NormalizeName(once)
		if once != twice {
			t.Errorf("NormalizeName not idempotent for %q: %q != %q", input, once, twice)
		}
	}
}

func TestNormalizeWeight(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "grams", input: "250 G", want: "250g"},
		{name: "grams without space", input: "400g", want: "400g"},
		{name: "gm alias", input: "400 gm", want: "400g"},
		{name: "gram alias", input: "500 gram", want: "500g"},
		{name: "kilograms", input: "1 Kg", want: "1kg"},
		{name: "decimal kilograms", input: "1.5 kg", want: "1.5kg"},
		{name: "pieces", input: "2 pcs", want: "2pc"},
		{name: "piece alias", input: "6 pieces", want: "6pc"},
		// ml and l are recognized but not rewritten; the lower-cased
		// original passes through unchanged
		{name: "millilitres pass through", input: "500 ml", want: "500 ml"},
		{name: "litres pass through", input: "1 L", want: "1 l"},
		{name: "no quantity passes through lowercased", input: "Family Pack", want: "family pack"},
		{name: "empty input", input: "", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NormalizeWeight(tt.input)
			if got != tt.want {
				t.Errorf("NormalizeWeight(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestCleanPrice(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  float64
	}{
		{name: "rupee symbol", input: "₹45", want: 45},
		{name: "symbol with space", input: "₹ 38.50", want: 38.5},
		{name: "thousands separator", input: "₹1,050.75", want: 1050.75},
		{name: "plain number", input: "52", want: 52},
		{name: "text prefix", input: "Rs. 62", want: 62},
		{name: "unparseable text", input: "price on request", want: 0},
		{name: "empty input", input: "", want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CleanPrice(tt.input)
			if got != tt.want {
				t.Errorf("CleanPrice(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestExtractBrand(t *testing.T) {
	knownBrands := []string{"Britannia", "Harvest Gold", "English Oven"}

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "known brand", input: "Britannia White Bread", want: "Britannia"},
		{name: "case insensitive match", input: "BRITANNIA brown bread", want: "Britannia"},
		{name: "multi-word brand", input: "Fresh Harvest Gold Loaf", want: "Harvest Gold"},
		{name: "first match wins", input: "Britannia English Oven Combo", want: "Britannia"},
		{name: "falls back to first token", input: "Wonder White Bread", want: "Wonder"},
		{name: "empty name falls back to Unknown", input: "", want: "Unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ExtractBrand(tt.input, knownBrands)
			if got != tt.want {
				t.Errorf("ExtractBrand(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}

	t.Run("empty brand list falls back to first token", func(t *testing.T) {
		if got := ExtractBrand("Modern Bread", nil); got != "Modern" {
			t.Errorf("ExtractBrand() = %q, want Modern", got)
		}
	})
}
