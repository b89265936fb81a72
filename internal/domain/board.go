package domain

// BuildSection holds the compiler-facing part of a board configuration
type BuildSection struct {
	Core        string     `json:"core" yaml:"core"`
	CPU         string     `json:"cpu" yaml:"cpu"`
	ExtraFlags  string     `json:"extra_flags" yaml:"extra_flags"`
	FCPU        string     `json:"f_cpu" yaml:"f_cpu"`
	HWIDs       [][]string `json:"hwids" yaml:"hwids"`
	MCU         string     `json:"mcu" yaml:"mcu"`
	ProductLine string     `json:"product_line" yaml:"product_line"`
	Variant     string     `json:"variant" yaml:"variant"`
	// Peripherals and Features carry extraction metadata through to the
	// emitted board file; downstream tooling ignores unknown keys.
	Peripherals map[string]int `json:"peripherals,omitempty" yaml:"peripherals,omitempty"`
	Features    []string       `json:"features,omitempty" yaml:"features,omitempty"`
}

// DebugSection holds debug-probe target identifiers
type DebugSection struct {
	JLinkDevice   string `json:"jlink_device" yaml:"jlink_device"`
	OpenOCDTarget string `json:"openocd_target" yaml:"openocd_target"`
	SVDPath       string `json:"svd_path" yaml:"svd_path"`
}

// UploadSection holds flash/RAM limits and supported upload protocols
type UploadSection struct {
	MaximumRAMSize int      `json:"maximum_ram_size" yaml:"maximum_ram_size"`
	MaximumSize    int      `json:"maximum_size" yaml:"maximum_size"`
	Protocol       string   `json:"protocol" yaml:"protocol"`
	Protocols      []string `json:"protocols" yaml:"protocols"`
}

// BoardConfig is a PlatformIO-style board configuration record. It is
// produced fresh on every synthesis call and has no identity beyond its
// serialized form.
type BoardConfig struct {
	Build BuildSection `json:"build" yaml:"build"`
	// Connectivity tags are present only when the corresponding
	// peripheral was extracted with a count greater than zero.
	Connectivity []string     `json:"connectivity,omitempty" yaml:"connectivity,omitempty"`
	Debug        DebugSection `json:"debug" yaml:"debug"`
	// Frameworks order is significant: the vendor low-level framework
	// comes first, downstream tooling treats list order as priority.
	Frameworks []string      `json:"frameworks" yaml:"frameworks"`
	Name       string        `json:"name" yaml:"name"`
	Upload     UploadSection `json:"upload" yaml:"upload"`
	URL        string        `json:"url" yaml:"url"`
	Vendor     string        `json:"vendor" yaml:"vendor"`
}
