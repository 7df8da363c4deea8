package estimate

import (
	"context"
	"errors"
	"slices"
	"testing"

	"github.com/kailas-cloud/laptopprice/internal/domain"
	"github.com/kailas-cloud/laptopprice/internal/domain/laptop"
)

// --- Mocks ---

type mockModel struct {
	columns []string
	out     float64
	err     error
	lastRow []float64
	calls   int
}

func (m *mockModel) ExpectedColumns() []string { return slices.Clone(m.columns) }

func (m *mockModel) Predict(_ context.Context, row []float64) (float64, error) {
	m.calls++
	m.lastRow = slices.Clone(row)
	return m.out, m.err
}

var schema = []string{
	"Inches", "Ram", "Weight",
	"Company_Apple", "Company_Dell",
	"TypeName_Notebook", "TypeName_Ultrabook",
	"OpSys_Windows 10", "OpSys_macOS",
	"Cpu_Intel Core i5", "Cpu_Intel Core i7",
	"Memory_256GB SSD", "Memory_512GB SSD",
	"ScreenResolution_1920x1080", "ScreenResolution_2560x1600",
}

func macbook(t *testing.T) laptop.Spec {
	t.Helper()
	s, err := laptop.New(laptop.Input{
		Brand: "Apple", Type: "Ultrabook", OS: "macOS", RAM: 16, Weight: 1.2,
		CPU: "Intel Core i5", GPU: "Intel", ScreenSize: 13.3,
		Resolution: "2560x1600", Storage: "512GB SSD",
	})
	if err != nil {
		t.Fatalf("laptop.New: %v", err)
	}
	return s
}

// --- Tests ---

func TestEstimate_EndToEnd(t *testing.T) {
	m := &mockModel{columns: schema, out: 7.0}
	svc := New(m)

	res, err := svc.Estimate(context.Background(), macbook(t))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	wantRow := []float64{13.3, 16, 1.2, 1, 0, 0, 1, 0, 1, 1, 0, 0, 1, 0, 1}
	if !slices.Equal(m.lastRow, wantRow) {
		t.Errorf("model row = %v, want %v", m.lastRow, wantRow)
	}
	if !slices.Equal(res.Features.Columns(), schema) {
		t.Errorf("features not aligned to schema: %v", res.Features.Columns())
	}
	if res.LogPrice != 7.0 {
		t.Errorf("LogPrice = %v, want 7", res.LogPrice)
	}
	if got := res.Price.String(); got != "€1,095.63" {
		t.Errorf("Price = %q, want €1,095.63", got)
	}
}

func TestEstimate_ZeroOutputIsZeroPrice(t *testing.T) {
	svc := New(&mockModel{columns: schema, out: 0})
	res, err := svc.Estimate(context.Background(), macbook(t))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Price.String() != "€0.00" {
		t.Errorf("Price = %q, want €0.00", res.Price.String())
	}
}

func TestEstimate_Idempotent(t *testing.T) {
	m := &mockModel{columns: schema, out: 6.25}
	svc := New(m)
	spec := macbook(t)

	first, err := svc.Estimate(context.Background(), spec)
	if err != nil {
		t.Fatalf("first: %v", err)
	}
	firstRow := m.lastRow
	second, err := svc.Estimate(context.Background(), spec)
	if err != nil {
		t.Fatalf("second: %v", err)
	}

	if first.Price != second.Price || first.LogPrice != second.LogPrice {
		t.Errorf("results differ: %v vs %v", first.Price, second.Price)
	}
	if !slices.Equal(firstRow, m.lastRow) {
		t.Errorf("rows differ: %v vs %v", firstRow, m.lastRow)
	}
}

func TestEstimate_Boundaries(t *testing.T) {
	svc := New(&mockModel{columns: schema, out: 7})
	for _, in := range []laptop.Input{
		func() laptop.Input { d := laptop.Defaults(); d.Weight, d.ScreenSize = 0.5, 10.0; return d }(),
		func() laptop.Input { d := laptop.Defaults(); d.Weight, d.ScreenSize = 5.0, 18.4; return d }(),
	} {
		spec, err := laptop.New(in)
		if err != nil {
			t.Fatalf("laptop.New(%+v): %v", in, err)
		}
		res, err := svc.Estimate(context.Background(), spec)
		if err != nil {
			t.Fatalf("Estimate: %v", err)
		}
		if w, _ := res.Features.Get("Weight"); w != in.Weight {
			t.Errorf("Weight = %v, want %v", w, in.Weight)
		}
		if s, _ := res.Features.Get("Inches"); s != in.ScreenSize {
			t.Errorf("Inches = %v, want %v", s, in.ScreenSize)
		}
	}
}

func TestEstimate_NoModel(t *testing.T) {
	svc := New(nil)
	if svc.Available() {
		t.Error("Available() = true without a model")
	}
	if svc.Schema() != nil {
		t.Error("Schema() should be nil without a model")
	}
	_, err := svc.Estimate(context.Background(), macbook(t))
	if !errors.Is(err, domain.ErrModelUnavailable) {
		t.Errorf("expected ErrModelUnavailable, got %v", err)
	}
}

func TestEstimate_PredictError(t *testing.T) {
	boom := errors.New("boom")
	svc := New(&mockModel{columns: schema, err: boom})
	_, err := svc.Estimate(context.Background(), macbook(t))
	if !errors.Is(err, boom) {
		t.Errorf("expected wrapped predict error, got %v", err)
	}
}

func TestEstimate_Overflow(t *testing.T) {
	svc := New(&mockModel{columns: schema, out: 1e6})
	_, err := svc.Estimate(context.Background(), macbook(t))
	if !errors.Is(err, domain.ErrPriceOverflow) {
		t.Errorf("expected ErrPriceOverflow, got %v", err)
	}
}
