package generator

import (
	"fmt"
	"strings"
)

// PagePath maps a page name to its route path. "Home" (any casing) is the
// root path; every other name is lower-cased with internal whitespace
// collapsed to hyphens, e.g. "Sign Up" -> "/sign-up".
func PagePath(name string) string {
	trimmed := strings.TrimSpace(name)
	if strings.EqualFold(trimmed, "home") {
		return "/"
	}
	return "/" + strings.Join(strings.Fields(strings.ToLower(trimmed)), "-")
}

// ComponentName maps a page name to a component identifier by
// capitalizing each whitespace-separated word and concatenating,
// e.g. "about us" -> "AboutUs".
func ComponentName(name string) string {
	var b strings.Builder
	for _, word := range strings.Fields(name) {
		runes := []rune(word)
		b.WriteString(strings.ToUpper(string(runes[0])))
		b.WriteString(string(runes[1:]))
	}
	if b.Len() == 0 {
		return "Page"
	}
	return b.String()
}

// anchorID derives the in-page anchor for the static branch from the
// route path ("/" -> "home", "/sign-up" -> "sign-up").
func anchorID(name string) string {
	path := PagePath(name)
	if path == "/" {
		return "home"
	}
	return strings.TrimPrefix(path, "/")
}

// navbarJSXAttrs renders the attribute list for the React navbar. A
// leading '#' means a literal color and gets an inline background style;
// anything else is treated as a style class applied next to white text.
func navbarJSXAttrs(color string) string {
	if strings.HasPrefix(color, "#") {
		return fmt.Sprintf(`className="text-white px-6 py-4" style={{ backgroundColor: '%s' }}`, color)
	}
	return fmt.Sprintf(`className="%s text-white px-6 py-4"`, color)
}

// navbarHTMLAttrs is the plain-HTML twin of navbarJSXAttrs, used by the
// static branch and the preview document.
func navbarHTMLAttrs(color string) string {
	if strings.HasPrefix(color, "#") {
		return fmt.Sprintf(`class="navbar" style="background: %s; color: #fff"`, color)
	}
	return fmt.Sprintf(`class="navbar %s"`, color)
}
