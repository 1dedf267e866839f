package prompts

import (
	"fmt"
	"strings"

	"sitegen_server/internal/types"
)

// SystemPrompt pins the output contract: delimited file blocks only, so
// the response can be parsed mechanically.
const SystemPrompt = `You are a frontend site generator. You output only code blocks with file markers, no commentary.

For every file in the project, emit exactly this structure:

--- relative/file/path ---
<full file content>
--- end ---

Repeat the structure for each file. Never put anything outside these blocks.`

// SiteGenerationPrompt builds the user message: a natural-language
// description of every collected choice plus a reminder of the required
// file-block format.
func SiteGenerationPrompt(settings types.Settings) string {
	var b strings.Builder

	b.WriteString("Create a complete frontend project for the following website:\n\n")
	fmt.Fprintf(&b, "- Title: %s\n", settings.Title)
	if strings.TrimSpace(settings.Description) != "" {
		fmt.Fprintf(&b, "- Description: %s\n", strings.TrimSpace(settings.Description))
	}
	switch settings.Framework {
	case types.FrameworkReactTailwind:
		b.WriteString("- Framework: React with TailwindCSS (Vite project, JSX)\n")
	default:
		b.WriteString("- Framework: plain HTML, CSS and JavaScript\n")
	}
	fmt.Fprintf(&b, "- Pages: %s\n", strings.Join(settings.NormalizedPages(), ", "))
	if settings.Navbar {
		fmt.Fprintf(&b, "- Navbar: yes, color %q\n", settings.NavbarColor)
	} else {
		b.WriteString("- Navbar: no\n")
	}
	fmt.Fprintf(&b, "- Sidebar: %s\n", yesNo(settings.Sidebar))
	fmt.Fprintf(&b, "- Footer: %s\n", yesNo(settings.Footer))
	fmt.Fprintf(&b, "- Login page: %s\n", yesNo(settings.Login))
	fmt.Fprintf(&b, "- Contact page: %s\n", yesNo(settings.Contact))
	fmt.Fprintf(&b, "- About page: %s\n", yesNo(settings.About))
	fmt.Fprintf(&b, "- Charts/cards: %s\n", yesNo(settings.Charts))
	if settings.Theme == types.ThemeCustom && strings.TrimSpace(settings.CustomColor) != "" {
		fmt.Fprintf(&b, "- Theme: custom, primary color %s\n", strings.TrimSpace(settings.CustomColor))
	} else {
		fmt.Fprintf(&b, "- Theme: %s\n", settings.Theme)
	}

	b.WriteString(`
Rules:
- Keep files reasonable in size; avoid embedding large assets.
- Ensure imports are included in JSX files.
- Respond with one delimited block per file:

--- relative/file/path ---
<full file content>
--- end ---
`)

	return b.String()
}

func yesNo(v bool) string {
	if v {
		return "yes"
	}
	return "no"
}
