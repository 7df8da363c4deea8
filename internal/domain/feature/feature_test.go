package feature

import (
	"slices"
	"testing"

	"github.com/kailas-cloud/laptopprice/internal/domain/laptop"
)

func macbook(t *testing.T) laptop.Spec {
	t.Helper()
	s, err := laptop.New(laptop.Input{
		Brand:      "Apple",
		Type:       "Ultrabook",
		OS:         "macOS",
		RAM:        16,
		Weight:     1.2,
		CPU:        "Intel Core i5",
		GPU:        "Intel",
		ScreenSize: 13.3,
		Resolution: "2560x1600",
		Storage:    "512GB SSD",
	})
	if err != nil {
		t.Fatalf("laptop.New: %v", err)
	}
	return s
}

func TestIndicatorName(t *testing.T) {
	tests := []struct {
		prefix Prefix
		value  string
		want   string
	}{
		{PrefixCompany, "Apple", "Company_Apple"},
		{PrefixCPU, "Intel Core i5", "Cpu_Intel Core i5"},
		{PrefixMemory, "128GB SSD + 1TB HDD", "Memory_128GB SSD + 1TB HDD"},
		{PrefixResolution, "1920x1080", "ScreenResolution_1920x1080"},
	}
	for _, tc := range tests {
		if got := IndicatorName(tc.prefix, tc.value); got != tc.want {
			t.Errorf("IndicatorName(%q, %q) = %q, want %q", tc.prefix, tc.value, got, tc.want)
		}
	}
}

func TestEncode_Macbook(t *testing.T) {
	row := Encode(macbook(t))

	want := Row{
		"Inches":                     13.3,
		"Ram":                        16,
		"Weight":                     1.2,
		"Company_Apple":              1,
		"TypeName_Ultrabook":         1,
		"OpSys_macOS":                1,
		"Cpu_Intel Core i5":          1,
		"Memory_512GB SSD":           1,
		"ScreenResolution_2560x1600": 1,
	}
	if len(row) != len(want) {
		t.Fatalf("row has %d columns, want %d: %v", len(row), len(want), row)
	}
	for k, v := range want {
		if row[k] != v {
			t.Errorf("row[%q] = %v, want %v", k, row[k], v)
		}
	}
}

func TestEncode_GPUIgnored(t *testing.T) {
	row := Encode(macbook(t))
	for col := range row {
		if col == "Gpu_Intel" {
			t.Fatalf("GPU must not be encoded, found %q", col)
		}
	}
}

func TestIndicators_CoverEncodedFields(t *testing.T) {
	want := []Prefix{PrefixCompany, PrefixTypeName, PrefixOpSys, PrefixCPU, PrefixMemory, PrefixResolution}
	got := make([]Prefix, len(Indicators))
	for i, ind := range Indicators {
		got[i] = ind.Prefix
	}
	if !slices.Equal(got, want) {
		t.Errorf("prefixes = %v, want %v", got, want)
	}
}
