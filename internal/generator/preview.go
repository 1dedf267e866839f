package generator

import (
	"fmt"
	"strings"
	"text/template"

	"sitegen_server/internal/types"
)

var previewTmpl = template.Must(template.New("preview").Delims("[[", "]]").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
  <meta charset="UTF-8">
  <title>[[.Title]] — preview</title>
  <style>
    body { margin: 0; font-family: Inter, Arial, sans-serif; background: [[.Background]]; color: [[.Text]]; }
    .navbar { padding: 1rem 1.5rem; color: #fff; }
    .layout { display: flex; }
    .sidebar { width: 12rem; border-right: 1px solid #e5e7eb; padding: 1rem; }
    .sidebar ul { list-style: none; margin: 0; padding: 0; }
    .sidebar li { margin-bottom: 0.5rem; }
    main { flex: 1; padding: 1.5rem; }
    .card { border: 1px dashed #d1d5db; border-radius: 0.5rem; padding: 2rem; text-align: center; color: #9ca3af; margin-top: 1rem; }
  </style>
</head>
<body>
[[- if .Navbar]]
  <nav [[.NavbarAttrs]]>
    <strong>[[.Title]]</strong>
  </nav>
[[- end]]
  <div class="layout">
[[- if .Sidebar]]
    <aside class="sidebar">
      <ul>
[[- range .Pages]]
        <li>[[.]]</li>
[[- end]]
      </ul>
    </aside>
[[- end]]
    <main>
      <h1>[[.Title]]</h1>
      <p>Static preview of the generated project. Run the setup script for the full app.</p>
[[- if .Charts]]
      <div class="card">Chart placeholder</div>
[[- end]]
[[- if .Login]]
      <div class="card">Login page included</div>
[[- end]]
    </main>
  </div>
</body>
</html>
`))

type previewContext struct {
	Title       string
	Background  string
	Text        string
	Navbar      bool
	NavbarAttrs string
	Sidebar     bool
	Pages       []string
	Charts      bool
	Login       bool
}

// renderPreview builds the standalone preview document shown in-app
// without requiring a Vite build.
func renderPreview(settings types.Settings, pages []string) string {
	background, text := "#f9fafb", "#111827"
	switch settings.Theme {
	case types.ThemeDark:
		background, text = "#111827", "#f9fafb"
	case types.ThemeCustom:
		if color := strings.TrimSpace(settings.CustomColor); color != "" {
			background = color
		}
	}

	ctx := previewContext{
		Title:       settings.Title,
		Background:  background,
		Text:        text,
		Navbar:      settings.Navbar,
		NavbarAttrs: navbarHTMLAttrs(settings.NavbarColor),
		Sidebar:     settings.Sidebar,
		Pages:       pages,
		Charts:      settings.Charts,
		Login:       settings.Login,
	}

	var b strings.Builder
	if err := previewTmpl.Execute(&b, ctx); err != nil {
		panic(fmt.Sprintf("preview template: %v", err))
	}
	return b.String()
}
