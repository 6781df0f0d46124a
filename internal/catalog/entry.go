package catalog

import "fmt"

// DefaultIconPackage is the package name used in icon references.
const DefaultIconPackage = "go-gitmoji"

// Entry is a display-ready suggestion derived from a gitmoji record.
type Entry struct {
	Label     string `json:"label"`
	ShortDesc string `json:"short_desc"`
	Target    string `json:"target"`
	Glyph     string `json:"glyph,omitempty"`
	Icon      string `json:"icon,omitempty"`
}

// IconRef returns the resource reference for a gitmoji icon. Resolving it to
// an image is up to the host.
func IconRef(pkg, name string) string {
	if name == "" {
		return ""
	}
	return fmt.Sprintf("res://%s/icons/%s.png", pkg, name)
}
