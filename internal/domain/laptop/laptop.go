package laptop

import (
	"math"
	"slices"
	"strconv"

	"github.com/kailas-cloud/laptopprice/internal/domain"
)

// Field names used in validation errors; they match the form and JSON keys.
const (
	FieldBrand      = "brand"
	FieldType       = "type"
	FieldOS         = "os"
	FieldRAM        = "ram"
	FieldWeight     = "weight"
	FieldCPU        = "cpu"
	FieldGPU        = "gpu"
	FieldScreenSize = "screen_size"
	FieldResolution = "resolution"
	FieldStorage    = "storage"
)

// gridTolerance absorbs float noise such as 13.3/0.1 = 132.99999999999997.
const gridTolerance = 1e-6

// Input holds raw user selections before validation.
type Input struct {
	Brand      string  `json:"brand"`
	Type       string  `json:"type"`
	OS         string  `json:"os"`
	RAM        int     `json:"ram"`
	Weight     float64 `json:"weight"`
	CPU        string  `json:"cpu"`
	GPU        string  `json:"gpu"`
	ScreenSize float64 `json:"screen_size"`
	Resolution string  `json:"resolution"`
	Storage    string  `json:"storage"`
}

// Spec is an immutable, validated laptop specification.
type Spec struct {
	brand      string
	typeName   string
	os         string
	ram        int
	weight     float64
	cpu        string
	gpu        string
	screenSize float64
	resolution string
	storage    string
}

// New validates every field of in against the catalog and creates a Spec.
func New(in Input) (Spec, error) {
	enums := []struct {
		field   string
		value   string
		allowed []string
	}{
		{FieldBrand, in.Brand, brands},
		{FieldType, in.Type, types},
		{FieldOS, in.OS, operatingSystems},
		{FieldCPU, in.CPU, cpus},
		{FieldGPU, in.GPU, gpus},
		{FieldResolution, in.Resolution, resolutions},
		{FieldStorage, in.Storage, storage},
	}
	for _, e := range enums {
		if !slices.Contains(e.allowed, e.value) {
			return Spec{}, domain.NewFieldError(e.field, e.value, "not an allowed value")
		}
	}

	if !slices.Contains(ramSizes, in.RAM) {
		return Spec{}, domain.NewFieldError(FieldRAM, strconv.Itoa(in.RAM), "not an allowed value")
	}
	if err := checkRange(FieldWeight, in.Weight, weightRange); err != nil {
		return Spec{}, err
	}
	if err := checkRange(FieldScreenSize, in.ScreenSize, screenSizeRange); err != nil {
		return Spec{}, err
	}

	return Spec{
		brand:      in.Brand,
		typeName:   in.Type,
		os:         in.OS,
		ram:        in.RAM,
		weight:     in.Weight,
		cpu:        in.CPU,
		gpu:        in.GPU,
		screenSize: in.ScreenSize,
		resolution: in.Resolution,
		storage:    in.Storage,
	}, nil
}

func checkRange(field string, v float64, r Range) error {
	raw := strconv.FormatFloat(v, 'f', -1, 64)
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return domain.NewFieldError(field, raw, "must be a finite number")
	}
	if v < r.Min-gridTolerance || v > r.Max+gridTolerance {
		return domain.NewFieldError(field, raw, "out of range ["+
			strconv.FormatFloat(r.Min, 'f', 1, 64)+", "+
			strconv.FormatFloat(r.Max, 'f', 1, 64)+"]")
	}
	steps := (v - r.Min) / r.Step
	if math.Abs(steps-math.Round(steps)) > gridTolerance {
		return domain.NewFieldError(field, raw, "must be a multiple of "+strconv.FormatFloat(r.Step, 'f', -1, 64))
	}
	return nil
}

// Brand returns the manufacturer.
func (s Spec) Brand() string { return s.brand }

// Type returns the form factor, e.g. "Ultrabook".
func (s Spec) Type() string { return s.typeName }

// OS returns the operating system.
func (s Spec) OS() string { return s.os }

// RAM returns the memory size in gigabytes.
func (s Spec) RAM() int { return s.ram }

// Weight returns the weight in kilograms.
func (s Spec) Weight() float64 { return s.weight }

// CPU returns the processor family.
func (s Spec) CPU() string { return s.cpu }

// GPU returns the graphics vendor. It is collected but not used for pricing.
func (s Spec) GPU() string { return s.gpu }

// ScreenSize returns the diagonal in inches.
func (s Spec) ScreenSize() float64 { return s.screenSize }

// Resolution returns the screen resolution as "WxH".
func (s Spec) Resolution() string { return s.resolution }

// Storage returns the primary storage configuration, e.g. "128GB SSD + 1TB HDD".
func (s Spec) Storage() string { return s.storage }

// Input returns the raw selections the Spec was built from.
func (s Spec) Input() Input {
	return Input{
		Brand:      s.brand,
		Type:       s.typeName,
		OS:         s.os,
		RAM:        s.ram,
		Weight:     s.weight,
		CPU:        s.cpu,
		GPU:        s.gpu,
		ScreenSize: s.screenSize,
		Resolution: s.resolution,
		Storage:    s.storage,
	}
}
