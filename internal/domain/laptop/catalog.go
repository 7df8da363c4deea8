package laptop

import "slices"

// Range describes a bounded numeric input with a fixed step.
type Range struct {
	Min     float64 `json:"min"`
	Max     float64 `json:"max"`
	Step    float64 `json:"step"`
	Default float64 `json:"default"`
}

// Catalog lists every allowed value of the specification form, in display order.
type Catalog struct {
	Brands           []string `json:"brands"`
	Types            []string `json:"types"`
	OperatingSystems []string `json:"operating_systems"`
	RAM              []int    `json:"ram_gb"`
	Weight           Range    `json:"weight_kg"`
	CPUs             []string `json:"cpus"`
	GPUs             []string `json:"gpus"`
	ScreenSize       Range    `json:"screen_size_in"`
	Resolutions      []string `json:"resolutions"`
	Storage          []string `json:"storage"`
}

var (
	brands = []string{
		"Apple", "HP", "Dell", "Lenovo", "Asus", "Acer", "MSI", "Toshiba",
		"Samsung", "Razer", "Mediacom", "Microsoft", "Xiaomi", "Vero",
		"Chuwi", "Google", "Fujitsu", "LG", "Huawei",
	}
	types = []string{
		"Notebook", "Gaming", "Ultrabook", "2 in 1 Convertible", "Workstation", "Netbook",
	}
	operatingSystems = []string{
		"Windows 10", "Windows 7", "Mac OS X", "macOS", "Linux", "Chrome OS", "No OS", "Windows 10 S",
	}
	ramSizes = []int{2, 4, 6, 8, 12, 16, 24, 32, 64}
	cpus     = []string{
		"Intel Core i7", "Intel Core i5", "Intel Core i3", "Intel Celeron", "AMD Ryzen", "Intel Xeon",
	}
	gpus        = []string{"Intel", "Nvidia", "AMD"}
	resolutions = []string{
		"1920x1080", "1366x768", "1600x900", "3840x2160", "3200x1800",
		"2880x1800", "2560x1600", "2560x1440", "2304x1440",
	}
	storage = []string{
		"128GB SSD", "256GB SSD", "512GB SSD", "1TB SSD", "500GB HDD", "1TB HDD",
		"128GB SSD + 1TB HDD", "256GB SSD + 1TB HDD",
	}

	weightRange     = Range{Min: 0.5, Max: 5.0, Step: 0.1, Default: 1.5}
	screenSizeRange = Range{Min: 10.0, Max: 18.4, Step: 0.1, Default: 15.6}
)

// GetCatalog returns a copy of the allowed values; callers may modify it freely.
func GetCatalog() Catalog {
	return Catalog{
		Brands:           slices.Clone(brands),
		Types:            slices.Clone(types),
		OperatingSystems: slices.Clone(operatingSystems),
		RAM:              slices.Clone(ramSizes),
		Weight:           weightRange,
		CPUs:             slices.Clone(cpus),
		GPUs:             slices.Clone(gpus),
		ScreenSize:       screenSizeRange,
		Resolutions:      slices.Clone(resolutions),
		Storage:          slices.Clone(storage),
	}
}

// Defaults returns the initial form selections: the first option of every
// enumeration and the default of every range.
func Defaults() Input {
	return Input{
		Brand:      brands[0],
		Type:       types[0],
		OS:         operatingSystems[0],
		RAM:        ramSizes[0],
		Weight:     weightRange.Default,
		CPU:        cpus[0],
		GPU:        gpus[0],
		ScreenSize: screenSizeRange.Default,
		Resolution: resolutions[0],
		Storage:    storage[0],
	}
}
