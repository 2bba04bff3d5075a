package domain

// CurrentSchemaVersion is written into every bootstrapped document.
// Documents without a version field (legacy exports) are still accepted.
const CurrentSchemaVersion = 1

// AppLogoID is the reserved icon basename for the application logo.
const AppLogoID = "app-logo"

// DashboardConfig is the whole configuration document persisted on disk.
//
// Invariants after every committed write:
//   - Category IDs are unique.
//   - Service IDs are unique.
//   - Every Service.CategoryID references an existing category.
//   - Slice order is the authoritative display order.
type DashboardConfig struct {
	Version    int         `json:"version,omitempty"`
	AppTitle   string      `json:"appTitle,omitempty"`
	AppLogo    *IconConfig `json:"appLogo,omitempty"`
	Categories []Category  `json:"categories"`
	Services   []Service   `json:"services"`
}

// NewDashboardConfig returns an empty document ready to be persisted.
func NewDashboardConfig() *DashboardConfig {
	return &DashboardConfig{
		Version:    CurrentSchemaVersion,
		Categories: []Category{},
		Services:   []Service{},
	}
}

// CategoryIndex returns the position of the category with the given id,
// or -1 when absent.
func (d *DashboardConfig) CategoryIndex(id string) int {
	for i := range d.Categories {
		if d.Categories[i].ID == id {
			return i
		}
	}
	return -1
}

// ServiceIndex returns the position of the service with the given id,
// or -1 when absent.
func (d *DashboardConfig) ServiceIndex(id string) int {
	for i := range d.Services {
		if d.Services[i].ID == id {
			return i
		}
	}
	return -1
}

// HasCategory reports whether a category with the given id exists.
func (d *DashboardConfig) HasCategory(id string) bool {
	return d.CategoryIndex(id) >= 0
}

// HasService reports whether a service with the given id exists.
func (d *DashboardConfig) HasService(id string) bool {
	return d.ServiceIndex(id) >= 0
}

// ServicesInCategory returns the services referencing the given
// category, in document order.
func (d *DashboardConfig) ServicesInCategory(categoryID string) []Service {
	var out []Service
	for _, svc := range d.Services {
		if svc.CategoryID == categoryID {
			out = append(out, svc)
		}
	}
	return out
}

// CountServicesInCategory returns how many services reference the
// given category. Used to block category deletion.
func (d *DashboardConfig) CountServicesInCategory(categoryID string) int {
	n := 0
	for _, svc := range d.Services {
		if svc.CategoryID == categoryID {
			n++
		}
	}
	return n
}
