package generator

import (
	"fmt"
	"strings"
	"text/template"
	"time"

	"sitegen_server/internal/types"
)

// The generated sources contain JSX-style double braces, so every
// template in this package uses [[ ]] delimiters instead.
var staticIndexTmpl = template.Must(template.New("static-index").Delims("[[", "]]").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
  <meta charset="UTF-8">
  <meta name="viewport" content="width=device-width, initial-scale=1.0">
  <title>[[.Title]]</title>
  <link rel="stylesheet" href="style.css">
</head>
<body>
  <header [[.NavbarAttrs]]>
    <h1>[[.Title]]</h1>
[[- if .Navbar]]
    <nav>
[[- range .Pages]]
      <a href="#[[.Anchor]]">[[.Name]]</a>
[[- end]]
    </nav>
[[- end]]
  </header>
  <main>
[[- range .Pages]]
    <section id="[[.Anchor]]">
      <h2>[[.Name]]</h2>
      <p>This is the [[.Name]] section of [[.Title]].[[if .Blurb]] [[.Blurb]][[end]]</p>
    </section>
[[- end]]
  </main>
[[- if .Footer]]
  <footer>&copy; [[.Year]] [[.Title]]</footer>
[[- end]]
</body>
</html>
`))

type staticPage struct {
	Name   string
	Anchor string
	Title  string
	Blurb  string
}

type staticIndexContext struct {
	Title       string
	Navbar      bool
	NavbarAttrs string
	Pages       []staticPage
	Footer      bool
	Year        int
}

// generateStaticSite renders the static-HTML branch: exactly one markup
// document with a section per page, plus a stylesheet.
func generateStaticSite(settings types.Settings) types.FileMapping {
	pages := settings.NormalizedPages()

	navbarAttrs := `class="navbar"`
	if settings.Navbar {
		navbarAttrs = navbarHTMLAttrs(settings.NavbarColor)
	}
	ctx := staticIndexContext{
		Title:       settings.Title,
		Navbar:      settings.Navbar,
		NavbarAttrs: navbarAttrs,
		Footer:      settings.Footer,
		Year:        time.Now().Year(),
	}
	for i, name := range pages {
		page := staticPage{Name: name, Anchor: anchorID(name), Title: settings.Title}
		// The site description reads best on the landing section.
		if i == 0 && strings.TrimSpace(settings.Description) != "" {
			page.Blurb = strings.TrimSpace(settings.Description)
		}
		ctx.Pages = append(ctx.Pages, page)
	}

	var markup strings.Builder
	if err := staticIndexTmpl.Execute(&markup, ctx); err != nil {
		// The template is fixed at compile time; execution over plain
		// string fields cannot fail.
		panic(fmt.Sprintf("static index template: %v", err))
	}

	return types.FileMapping{
		"index.html": markup.String(),
		"style.css":  staticStylesheet(settings),
	}
}

func staticStylesheet(settings types.Settings) string {
	background, text := "#f9fafb", "#111827"
	accent := "#1a73e8"
	switch settings.Theme {
	case types.ThemeDark:
		background, text = "#111827", "#f9fafb"
	case types.ThemeCustom:
		if strings.TrimSpace(settings.CustomColor) != "" {
			accent = strings.TrimSpace(settings.CustomColor)
		}
	}

	return fmt.Sprintf(`* { box-sizing: border-box; }
body {
  margin: 0;
  font-family: Inter, Arial, sans-serif;
  background: %s;
  color: %s;
}
header h1 { margin: 0 0 0.5rem; }
header nav a {
  color: inherit;
  margin-right: 1rem;
  text-decoration: none;
}
header nav a:hover { color: %s; }
.navbar { padding: 1rem; }
main { padding: 1.5rem; }
section { margin-bottom: 2rem; }
section h2 { border-bottom: 2px solid %s; padding-bottom: 0.25rem; }
footer { padding: 1rem; border-top: 1px solid #e5e7eb; }
`, background, text, accent, accent)
}
