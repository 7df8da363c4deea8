// Package feature turns a laptop specification into the column layout the
// price model was trained on.
//
// Indicator columns follow the training pipeline's one-hot naming:
// "<Prefix>_<value>", e.g. "Company_Apple" or "Memory_128GB SSD + 1TB HDD".
package feature

import "github.com/kailas-cloud/laptopprice/internal/domain/laptop"

// Direct numeric columns.
const (
	ColumnInches = "Inches"
	ColumnRAM    = "Ram"
	ColumnWeight = "Weight"
)

// Prefix is the category part of an indicator column name.
type Prefix string

// Indicator prefixes produced by the training pipeline.
const (
	PrefixCompany    Prefix = "Company"
	PrefixTypeName   Prefix = "TypeName"
	PrefixOpSys      Prefix = "OpSys"
	PrefixCPU        Prefix = "Cpu"
	PrefixMemory     Prefix = "Memory"
	PrefixResolution Prefix = "ScreenResolution"
	// PrefixGPU is never encoded; it is only looked for in model schemas.
	PrefixGPU Prefix = "Gpu"
)

// Indicator binds a prefix to the specification field it encodes.
type Indicator struct {
	Prefix Prefix
	// Field is the laptop.Field* name of the source field.
	Field string
	Value func(laptop.Spec) string
	// Vocabulary returns every value the form can submit for this field.
	Vocabulary func(laptop.Catalog) []string
}

// Indicators is the one table mapping specification fields to indicator columns.
var Indicators = []Indicator{
	{PrefixCompany, laptop.FieldBrand, laptop.Spec.Brand, func(c laptop.Catalog) []string { return c.Brands }},
	{PrefixTypeName, laptop.FieldType, laptop.Spec.Type, func(c laptop.Catalog) []string { return c.Types }},
	{PrefixOpSys, laptop.FieldOS, laptop.Spec.OS, func(c laptop.Catalog) []string { return c.OperatingSystems }},
	{PrefixCPU, laptop.FieldCPU, laptop.Spec.CPU, func(c laptop.Catalog) []string { return c.CPUs }},
	{PrefixMemory, laptop.FieldStorage, laptop.Spec.Storage, func(c laptop.Catalog) []string { return c.Storage }},
	{PrefixResolution, laptop.FieldResolution, laptop.Spec.Resolution, func(c laptop.Catalog) []string { return c.Resolutions }},
}

// IndicatorName joins a prefix and a raw category value into a column name.
func IndicatorName(p Prefix, value string) string {
	return string(p) + "_" + value
}

// Row is a sparse feature row keyed by column name.
type Row map[string]float64

// Encode builds the sparse row for s: the three numeric columns verbatim and
// one indicator column set to 1 per encoded category.
func Encode(s laptop.Spec) Row {
	row := Row{
		ColumnInches: s.ScreenSize(),
		ColumnRAM:    float64(s.RAM()),
		ColumnWeight: s.Weight(),
	}
	for _, ind := range Indicators {
		row[IndicatorName(ind.Prefix, ind.Value(s))] = 1
	}
	return row
}
