package validate

import (
	"sort"
	"strings"
)

// iconNames is the fixed table of symbolic icon names. Values are the
// canonical stored form; user input is matched case-insensitively.
var iconNames = []string{
	"Activity",
	"AlarmClock",
	"Archive",
	"BarChart",
	"Bell",
	"Book",
	"BookOpen",
	"Bookmark",
	"Box",
	"Briefcase",
	"Bug",
	"Calendar",
	"Camera",
	"Cast",
	"Check",
	"Clapperboard",
	"Clock",
	"Cloud",
	"CloudDownload",
	"Code",
	"Cog",
	"Compass",
	"Cpu",
	"CreditCard",
	"Database",
	"Download",
	"Film",
	"Flame",
	"Folder",
	"FolderOpen",
	"Gamepad",
	"Gauge",
	"Gift",
	"Globe",
	"HardDrive",
	"Headphones",
	"Heart",
	"Home",
	"Image",
	"Inbox",
	"Key",
	"Laptop",
	"Library",
	"Lightbulb",
	"Link",
	"Lock",
	"Mail",
	"Map",
	"Mic",
	"Monitor",
	"Moon",
	"Music",
	"Network",
	"Newspaper",
	"Package",
	"Phone",
	"PieChart",
	"Play",
	"Plug",
	"Printer",
	"Radio",
	"Rocket",
	"Router",
	"Rss",
	"Search",
	"Server",
	"Settings",
	"Shield",
	"ShieldCheck",
	"ShoppingCart",
	"Signal",
	"Smartphone",
	"Speaker",
	"Star",
	"Sun",
	"Tag",
	"Terminal",
	"Thermometer",
	"Tv",
	"Upload",
	"User",
	"Users",
	"Video",
	"Wallet",
	"Wifi",
	"Wrench",
	"Zap",
}

// iconLookup maps lowercase name to canonical name.
var iconLookup = func() map[string]string {
	m := make(map[string]string, len(iconNames))
	for _, name := range iconNames {
		m[strings.ToLower(name)] = name
	}
	return m
}()

// ResolveIconName resolves a user-supplied icon name case-insensitively
// to its canonical form. Resolving an already canonical name returns it
// unchanged, so resolution is idempotent.
func ResolveIconName(name string) (string, bool) {
	canonical, ok := iconLookup[strings.ToLower(strings.TrimSpace(name))]
	return canonical, ok
}

// IsValidIconName reports whether name resolves against the icon table.
func IsValidIconName(name string) bool {
	_, ok := ResolveIconName(name)
	return ok
}

// IconNames returns the canonical icon names in sorted order.
func IconNames() []string {
	out := make([]string, len(iconNames))
	copy(out, iconNames)
	sort.Strings(out)
	return out
}
