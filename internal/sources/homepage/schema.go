package homepage

// ServicesConfig represents the top-level structure of a Homepage
// services.yaml. Homepage uses dynamic keys, so we parse as
// []map[group][]map[name]ServiceProps.
type ServicesConfig []map[string][]map[string]ServiceProps

// ServiceProps contains the properties of one Homepage service entry.
type ServiceProps struct {
	Href        string `yaml:"href"`
	Icon        string `yaml:"icon,omitempty"`
	Description string `yaml:"description,omitempty"`
}
