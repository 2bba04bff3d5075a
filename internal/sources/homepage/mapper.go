package homepage

import (
	"fmt"
	"net/url"
	"sort"
)

// Entry is one importable service with its owning group name.
type Entry struct {
	Group       string
	Name        string
	Description string
	URL         string
}

// Mapper flattens a parsed ServicesConfig into importable entries.
type Mapper struct{}

// NewMapper returns a mapper instance.
func NewMapper() *Mapper {
	return &Mapper{}
}

// Map converts the dynamic-key structure into a flat entry list.
// File order is preserved across list items; yaml decodes each item's
// keys into an unordered map, so items carrying several keys (unusual,
// the format is one key per item) are walked in sorted key order to
// keep the result deterministic. Entries without a usable absolute
// href are skipped.
func (m *Mapper) Map(config ServicesConfig) ([]Entry, error) {
	var entries []Entry

	for _, groupMap := range config {
		for _, groupName := range sortedKeys(groupMap) {
			for _, serviceMap := range groupMap[groupName] {
				for _, serviceName := range sortedKeys(serviceMap) {
					props := serviceMap[serviceName]
					if props.Href == "" {
						continue
					}
					parsed, err := url.Parse(props.Href)
					if err != nil || !parsed.IsAbs() || parsed.Host == "" {
						continue
					}
					entries = append(entries, Entry{
						Group:       groupName,
						Name:        serviceName,
						Description: props.Description,
						URL:         props.Href,
					})
				}
			}
		}
	}

	if len(entries) == 0 {
		return nil, fmt.Errorf("no valid services found in homepage config")
	}

	return entries, nil
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
