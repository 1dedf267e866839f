// Package generator produces a complete frontend project from a Settings
// record. It is deterministic and performs no I/O: the only output is a
// FileMapping the caller can write out or archive.
package generator

import (
	"strings"

	"sitegen_server/internal/types"
)

// Generate renders the project skeleton selected by settings.Framework.
// It never fails for well-formed settings; an empty page list is replaced
// by a single "Home" page rather than rejected.
func Generate(settings types.Settings) types.FileMapping {
	if strings.TrimSpace(settings.Title) == "" {
		settings.Title = "My Site"
	}

	switch settings.Framework {
	case types.FrameworkReactTailwind:
		return generateReactProject(settings)
	default:
		return generateStaticSite(settings)
	}
}
