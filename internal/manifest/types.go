package manifest

// FileName is the name of the project manifest file.
const FileName = "package.json"

// PackageJSON is the subset of package.json consulted for detection.
// A nil map behaves as empty. Values are never mutated after loading.
type PackageJSON struct {
	Name            string
	Version         string
	License         string
	Type            string
	Dependencies    map[string]string
	DevDependencies map[string]string
	Scripts         map[string]string

	// HasBin and HasBrowser record the presence of the bin and browser
	// fields, whatever shape their values take.
	HasBin     bool
	HasBrowser bool

	// Overrides holds explicit option values from the "foundry" key.
	Overrides Overrides

	// rawOverrides keeps the undecoded "foundry" object for schema validation.
	rawOverrides []byte
}

// Overrides lists options a project pins explicitly. A nil field means
// "not specified"; any non-nil value, including false or an empty list,
// is used as-is instead of detection.
type Overrides struct {
	Language     *string   `json:"language,omitempty"`
	Environments *[]string `json:"environments,omitempty"`
	Frameworks   *[]string `json:"frameworks,omitempty"`
	Plugins      *[]string `json:"plugins,omitempty"`
	OpenSource   *bool     `json:"openSource,omitempty"`

	// Customize maps a tool name to a config fragment merged over the
	// generated config of that tool.
	Customize map[string]map[string]any `json:"customize,omitempty"`
}

// Merge returns a copy of o with every non-nil field of other applied on top.
func (o Overrides) Merge(other Overrides) Overrides {
	if other.Language != nil {
		o.Language = other.Language
	}
	if other.Environments != nil {
		o.Environments = other.Environments
	}
	if other.Frameworks != nil {
		o.Frameworks = other.Frameworks
	}
	if other.Plugins != nil {
		o.Plugins = other.Plugins
	}
	if other.OpenSource != nil {
		o.OpenSource = other.OpenSource
	}
	if other.Customize != nil {
		o.Customize = other.Customize
	}
	return o
}
