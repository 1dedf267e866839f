package types

import "strings"

// Framework selects which project skeleton the generator produces.
type Framework string

const (
	FrameworkStaticHTML    Framework = "static-html"
	FrameworkReactTailwind Framework = "react-tailwind"
)

// Theme selects the color scheme baked into the generated site.
type Theme string

const (
	ThemeLight  Theme = "light"
	ThemeDark   Theme = "dark"
	ThemeCustom Theme = "custom"
)

// Settings holds every choice collected by the questionnaire. It is built
// up step by step while the wizard runs and handed to the generator once,
// after which it is never mutated again.
type Settings struct {
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
	Framework   Framework `json:"framework"`

	Navbar      bool   `json:"navbar"`
	NavbarColor string `json:"navbarColor"` // "#RRGGBB" or a symbolic class name
	Sidebar     bool   `json:"sidebar"`

	Pages []string `json:"pages"`

	Footer  bool `json:"footer"`
	Login   bool `json:"login"`
	Charts  bool `json:"charts"`
	Contact bool `json:"contact"`
	About   bool `json:"about"`

	Theme       Theme  `json:"theme"`
	CustomColor string `json:"customColor,omitempty"` // meaningful only when Theme == ThemeCustom
}

// DefaultSettings returns the baseline choices a fresh wizard session
// starts from.
func DefaultSettings() Settings {
	return Settings{
		Title:       "My Site",
		Framework:   FrameworkStaticHTML,
		Navbar:      true,
		NavbarColor: "bg-gray-900",
		Pages:       []string{"Home"},
		Theme:       ThemeLight,
	}
}

// FileMapping is the universal output shape of both the template
// generator and the LLM output parser: relative path -> file content.
type FileMapping map[string]string

// GeneratedFile is the per-file record returned to API callers, carrying
// a display type alongside the content.
type GeneratedFile struct {
	Filename string `json:"filename"`
	Type     string `json:"type"` // e.g., "TSX", "CSS", "JSON"
	Content  string `json:"content"`
}

// NormalizedPages returns the page list with every implied page present
// exactly once: login -> "Login", contact -> "Contact", about -> "About".
// Pages already in the list keep their position; implied pages that are
// missing get appended. An empty list falls back to a single "Home" page.
func (s Settings) NormalizedPages() []string {
	pages := make([]string, 0, len(s.Pages)+3)
	seen := make(map[string]bool, len(s.Pages)+3)
	for _, p := range s.Pages {
		key := strings.ToLower(strings.TrimSpace(p))
		if key == "" || seen[key] {
			continue
		}
		seen[key] = true
		pages = append(pages, strings.TrimSpace(p))
	}

	implied := []struct {
		enabled bool
		name    string
	}{
		{s.Login, "Login"},
		{s.Contact, "Contact"},
		{s.About, "About"},
	}
	for _, imp := range implied {
		if imp.enabled && !seen[strings.ToLower(imp.name)] {
			seen[strings.ToLower(imp.name)] = true
			pages = append(pages, imp.name)
		}
	}

	if len(pages) == 0 {
		pages = append(pages, "Home")
	}
	return pages
}
