package feature

import (
	"slices"
	"testing"

	"github.com/kailas-cloud/laptopprice/internal/domain/laptop"
)

// trainedSchema mimics the column set of a trained model: it knows some but
// not all form values, and carries columns the form never produces.
var trainedSchema = []string{
	"Inches", "Ram", "Weight",
	"Company_Apple", "Company_Dell", "Company_HP", "Company_Lenovo",
	"TypeName_Gaming", "TypeName_Notebook", "TypeName_Ultrabook",
	"OpSys_Windows 10", "OpSys_macOS", "OpSys_Linux",
	"Cpu_Intel Core i5", "Cpu_Intel Core i7", "Cpu_AMD Ryzen",
	"Memory_256GB SSD", "Memory_512GB SSD", "Memory_1TB HDD",
	"ScreenResolution_1920x1080", "ScreenResolution_2560x1600",
	"Gpu_Nvidia GeForce GTX 1050",
}

func TestReindex_MacbookScenario(t *testing.T) {
	v := Reindex(Encode(macbook(t)), trainedSchema)

	if !slices.Equal(v.Columns(), trainedSchema) {
		t.Fatalf("columns = %v, want schema order", v.Columns())
	}

	ones := map[string]bool{
		"Company_Apple": true, "TypeName_Ultrabook": true, "OpSys_macOS": true,
		"Cpu_Intel Core i5": true, "Memory_512GB SSD": true, "ScreenResolution_2560x1600": true,
	}
	for i, col := range v.Columns() {
		val := v.Values()[i]
		switch {
		case col == "Inches":
			if val != 13.3 {
				t.Errorf("Inches = %v, want 13.3", val)
			}
		case col == "Ram":
			if val != 16 {
				t.Errorf("Ram = %v, want 16", val)
			}
		case col == "Weight":
			if val != 1.2 {
				t.Errorf("Weight = %v, want 1.2", val)
			}
		case ones[col]:
			if val != 1 {
				t.Errorf("%s = %v, want 1", col, val)
			}
		default:
			if val != 0 {
				t.Errorf("%s = %v, want 0", col, val)
			}
		}
	}
}

func TestReindex_DropsUnknownColumns(t *testing.T) {
	s, err := laptop.New(laptop.Input{
		Brand: "Huawei", Type: "Workstation", OS: "Windows 10 S", RAM: 64, Weight: 5.0,
		CPU: "Intel Xeon", GPU: "AMD", ScreenSize: 18.4, Resolution: "3840x2160",
		Storage: "256GB SSD + 1TB HDD",
	})
	if err != nil {
		t.Fatalf("laptop.New: %v", err)
	}

	v := Reindex(Encode(s), trainedSchema)
	if v.Len() != len(trainedSchema) {
		t.Fatalf("Len = %d, want %d", v.Len(), len(trainedSchema))
	}
	if _, ok := v.Get("Company_Huawei"); ok {
		t.Error("column outside schema must be dropped")
	}
	active := v.Active()
	if !slices.Equal(active, []string{"Inches", "Ram", "Weight"}) {
		t.Errorf("Active = %v, want only numeric columns", active)
	}
}

func TestReindex_EveryCatalogCombinationFitsSchema(t *testing.T) {
	c := laptop.GetCatalog()
	for _, brand := range c.Brands {
		for _, storage := range c.Storage {
			in := laptop.Defaults()
			in.Brand = brand
			in.Storage = storage
			s, err := laptop.New(in)
			if err != nil {
				t.Fatalf("laptop.New: %v", err)
			}
			v := Reindex(Encode(s), trainedSchema)
			if !slices.Equal(v.Columns(), trainedSchema) {
				t.Fatalf("%s/%s: columns differ from schema", brand, storage)
			}

			// one indicator per encoded field when, and only when, the column exists
			for _, ind := range Indicators {
				col := IndicatorName(ind.Prefix, ind.Value(s))
				val, ok := v.Get(col)
				if ok != slices.Contains(trainedSchema, col) {
					t.Fatalf("%s: presence mismatch", col)
				}
				if ok && val != 1 {
					t.Errorf("%s = %v, want 1", col, val)
				}
				for _, other := range ind.Vocabulary(c) {
					if other == ind.Value(s) {
						continue
					}
					if val, _ := v.Get(IndicatorName(ind.Prefix, other)); val != 0 {
						t.Errorf("%s = %v, want 0", IndicatorName(ind.Prefix, other), val)
					}
				}
			}
		}
	}
}

func TestReindex_EmptySchema(t *testing.T) {
	v := Reindex(Encode(macbook(t)), nil)
	if v.Len() != 0 || len(v.Active()) != 0 {
		t.Errorf("expected empty vector, got %v", v.Columns())
	}
}

func TestVector_ValuesAreCopies(t *testing.T) {
	v := Reindex(Row{"Ram": 8}, []string{"Ram"})
	vals := v.Values()
	vals[0] = 99
	if got, _ := v.Get("Ram"); got != 8 {
		t.Errorf("vector mutated through Values(): %v", got)
	}
}
