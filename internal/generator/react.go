package generator

import (
	"fmt"
	"strings"
	"text/template"
	"time"

	"sitegen_server/internal/types"
)

// Pages that get a chart placeholder block when charts are enabled.
var chartPages = map[string]bool{
	"home":      true,
	"dashboard": true,
	"analytics": true,
}

// appComposition carries the four substitution points of the root
// application module, assembled before rendering so App.jsx is built from
// named fields rather than ad-hoc string replacement.
type appComposition struct {
	Imports      string
	WrapperClass string
	WrapperStyle string
	NavbarBlock  string
	SidebarBlock string
	RoutesBlock  string
	FooterBlock  string
}

var appTmpl = template.Must(template.New("app").Delims("[[", "]]").Parse(`import React from 'react';
import { Routes, Route, Link } from 'react-router-dom';
[[.Imports]]import './App.css';

function App() {
  return (
    <div className="[[.WrapperClass]]"[[.WrapperStyle]]>
[[.NavbarBlock]]      <div className="flex">
[[.SidebarBlock]]        <main className="flex-1 p-6">
          <Routes>
[[.RoutesBlock]]          </Routes>
        </main>
      </div>
[[.FooterBlock]]    </div>
  );
}

export default App;
`))

var pageTmpl = template.Must(template.New("page").Delims("[[", "]]").Parse(`import React from 'react';

function [[.Component]]() {
  return (
    <div className="space-y-4">
      <h1 className="text-3xl font-bold">[[.Name]]</h1>
      <p className="text-gray-500">Welcome to the [[.Name]] page.</p>
[[- if .Chart]]
      <div className="rounded-lg border border-dashed border-gray-300 p-8 text-center text-gray-400">
        Chart placeholder
      </div>
[[- end]]
    </div>
  );
}

export default [[.Component]];
`))

type pageContext struct {
	Component string
	Name      string
	Chart     bool
}

// generateReactProject renders the React + Tailwind (Vite) branch.
func generateReactProject(settings types.Settings) types.FileMapping {
	pages := settings.NormalizedPages()

	files := types.FileMapping{
		"package.json":       packageManifest(settings.Title),
		"index.html":         viteIndexHTML(settings.Title),
		"tailwind.config.js": tailwindConfig,
		"postcss.config.js":  postcssConfig,
		"src/index.css":      globalStylesheet,
		"src/main.jsx":       bootstrapModule,
		"src/App.jsx":        renderApp(settings, pages),
		"src/App.css":        fallbackStylesheet,
		"README.md":          readme(settings, pages),
		"setup.sh":           setupShell,
		"setup.bat":          setupBatch,
		"preview.html":       renderPreview(settings, pages),
	}

	for _, name := range pages {
		component := ComponentName(name)
		path := "src/pages/" + component + ".jsx"
		switch strings.ToLower(strings.TrimSpace(name)) {
		case "contact":
			files[path] = contactPageModule
		case "login":
			files[path] = loginPageModule
		default:
			files[path] = renderPage(pageContext{
				Component: component,
				Name:      name,
				Chart:     settings.Charts && chartPages[strings.ToLower(strings.TrimSpace(name))],
			})
		}
	}

	return files
}

func renderPage(ctx pageContext) string {
	var b strings.Builder
	if err := pageTmpl.Execute(&b, ctx); err != nil {
		panic(fmt.Sprintf("page template: %v", err))
	}
	return b.String()
}

func renderApp(settings types.Settings, pages []string) string {
	comp := appComposition{
		WrapperClass: "min-h-screen bg-gray-50 text-gray-900",
	}

	switch settings.Theme {
	case types.ThemeDark:
		comp.WrapperClass = "min-h-screen bg-gray-900 text-gray-100"
	case types.ThemeCustom:
		if color := strings.TrimSpace(settings.CustomColor); color != "" {
			comp.WrapperClass = "min-h-screen text-gray-900"
			comp.WrapperStyle = fmt.Sprintf(" style={{ backgroundColor: '%s' }}", color)
		}
	}

	var imports strings.Builder
	for _, name := range pages {
		fmt.Fprintf(&imports, "import %s from './pages/%s';\n", ComponentName(name), ComponentName(name))
	}
	comp.Imports = imports.String()

	if settings.Navbar {
		var nav strings.Builder
		fmt.Fprintf(&nav, "      <nav %s>\n", navbarJSXAttrs(settings.NavbarColor))
		nav.WriteString("        <div className=\"flex items-center gap-6\">\n")
		fmt.Fprintf(&nav, "          <span className=\"text-lg font-bold\">%s</span>\n", settings.Title)
		for _, name := range pages {
			fmt.Fprintf(&nav, "          <Link className=\"hover:underline\" to=\"%s\">%s</Link>\n", PagePath(name), name)
		}
		nav.WriteString("        </div>\n      </nav>\n")
		comp.NavbarBlock = nav.String()
	}

	if settings.Sidebar {
		var side strings.Builder
		side.WriteString("        <aside className=\"w-48 shrink-0 border-r border-gray-200 p-4\">\n")
		side.WriteString("          <ul className=\"space-y-2\">\n")
		for _, name := range pages {
			fmt.Fprintf(&side, "            <li><Link className=\"hover:underline\" to=\"%s\">%s</Link></li>\n", PagePath(name), name)
		}
		side.WriteString("          </ul>\n        </aside>\n")
		comp.SidebarBlock = side.String()
	}

	var routes strings.Builder
	for _, name := range pages {
		fmt.Fprintf(&routes, "            <Route path=\"%s\" element={<%s />} />\n", PagePath(name), ComponentName(name))
	}
	comp.RoutesBlock = routes.String()

	if settings.Footer {
		comp.FooterBlock = fmt.Sprintf(
			"      <footer className=\"border-t border-gray-200 p-4 text-sm text-gray-500\">&copy; %d %s</footer>\n",
			time.Now().Year(), settings.Title)
	}

	var b strings.Builder
	if err := appTmpl.Execute(&b, comp); err != nil {
		panic(fmt.Sprintf("app template: %v", err))
	}
	return b.String()
}

func packageManifest(title string) string {
	return fmt.Sprintf(`{
  "name": "%s",
  "private": true,
  "version": "0.1.0",
  "scripts": {
    "start": "vite",
    "dev": "vite",
    "build": "vite build"
  },
  "dependencies": {
    "react": "^18.3.1",
    "react-dom": "^18.3.1",
    "react-router-dom": "^6.26.0"
  },
  "devDependencies": {
    "@vitejs/plugin-react": "^4.3.1",
    "autoprefixer": "^10.4.20",
    "postcss": "^8.4.41",
    "tailwindcss": "^3.4.10",
    "vite": "^5.4.2"
  }
}
`, packageName(title))
}

// packageName derives an npm-safe package name from the site title.
func packageName(title string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(strings.TrimSpace(title)) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9', r == '-', r == '_':
			b.WriteRune(r)
		default:
			b.WriteRune('-')
		}
	}
	if b.Len() == 0 {
		return "my-site"
	}
	return b.String()
}

func viteIndexHTML(title string) string {
	return fmt.Sprintf(`<!DOCTYPE html>
<html lang="en">
  <head>
    <meta charset="UTF-8" />
    <meta name="viewport" content="width=device-width, initial-scale=1.0" />
    <title>%s</title>
  </head>
  <body>
    <div id="root"></div>
    <script type="module" src="/src/main.jsx"></script>
  </body>
</html>
`, title)
}

const tailwindConfig = `/** @type {import('tailwindcss').Config} */
export default {
  content: ['./index.html', './src/**/*.{js,jsx}'],
  theme: {
    extend: {},
  },
  plugins: [],
};
`

const postcssConfig = `export default {
  plugins: {
    tailwindcss: {},
    autoprefixer: {},
  },
};
`

const globalStylesheet = `@tailwind base;
@tailwind components;
@tailwind utilities;
`

const bootstrapModule = `import React from 'react';
import ReactDOM from 'react-dom/client';
import { BrowserRouter } from 'react-router-dom';
import App from './App';
import './index.css';

ReactDOM.createRoot(document.getElementById('root')).render(
  <React.StrictMode>
    <BrowserRouter>
      <App />
    </BrowserRouter>
  </React.StrictMode>
);
`

const fallbackStylesheet = `/* Plain fallback styles for environments without Tailwind. */
body {
  margin: 0;
  font-family: Inter, Arial, sans-serif;
}
nav a,
aside a {
  color: inherit;
}
main {
  padding: 1.5rem;
}
`

const contactPageModule = `import React, { useState } from 'react';

function Contact() {
  const [name, setName] = useState('');
  const [email, setEmail] = useState('');
  const [message, setMessage] = useState('');
  const [sent, setSent] = useState(false);

  const handleSubmit = (event) => {
    event.preventDefault();
    setSent(true);
    setName('');
    setEmail('');
    setMessage('');
  };

  return (
    <div className="max-w-lg space-y-4">
      <h1 className="text-3xl font-bold">Contact</h1>
      {sent && <p className="text-green-600">Thanks for reaching out! We will get back to you soon.</p>}
      <form onSubmit={handleSubmit} className="space-y-4">
        <input
          className="w-full rounded border border-gray-300 p-2"
          placeholder="Your name"
          value={name}
          onChange={(event) => setName(event.target.value)}
          required
        />
        <input
          className="w-full rounded border border-gray-300 p-2"
          type="email"
          placeholder="Your email"
          value={email}
          onChange={(event) => setEmail(event.target.value)}
          required
        />
        <textarea
          className="w-full rounded border border-gray-300 p-2"
          rows="5"
          placeholder="Your message"
          value={message}
          onChange={(event) => setMessage(event.target.value)}
          required
        />
        <button className="rounded bg-blue-600 px-4 py-2 text-white" type="submit">
          Send
        </button>
      </form>
    </div>
  );
}

export default Contact;
`

const loginPageModule = `import React, { useState } from 'react';

function Login() {
  const [username, setUsername] = useState('');
  const [password, setPassword] = useState('');

  // Purely cosmetic: no authentication happens here.
  const handleSubmit = (event) => {
    event.preventDefault();
  };

  return (
    <div className="max-w-sm space-y-4">
      <h1 className="text-3xl font-bold">Login</h1>
      <form onSubmit={handleSubmit} className="space-y-4">
        <input
          className="w-full rounded border border-gray-300 p-2"
          placeholder="Username"
          value={username}
          onChange={(event) => setUsername(event.target.value)}
        />
        <input
          className="w-full rounded border border-gray-300 p-2"
          type="password"
          placeholder="Password"
          value={password}
          onChange={(event) => setPassword(event.target.value)}
        />
        <button className="rounded bg-blue-600 px-4 py-2 text-white" type="submit">
          Sign in
        </button>
      </form>
    </div>
  );
}

export default Login;
`

const setupShell = `#!/usr/bin/env sh
set -e
npm install
npm run start
`

const setupBatch = `@echo off
call npm install
call npm run start
`

func readme(settings types.Settings, pages []string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# %s\n\n", settings.Title)
	if strings.TrimSpace(settings.Description) != "" {
		fmt.Fprintf(&b, "%s\n\n", strings.TrimSpace(settings.Description))
	}
	b.WriteString("A React + Tailwind (Vite) project generated from your answers.\n\n")
	b.WriteString("## Getting started\n\n")
	b.WriteString("```sh\nnpm install\nnpm run dev\n```\n\n")
	b.WriteString("Or run `./setup.sh` (macOS/Linux) / `setup.bat` (Windows).\n\n")
	b.WriteString("## Pages\n\n")
	for _, name := range pages {
		fmt.Fprintf(&b, "- %s (`%s`)\n", name, PagePath(name))
	}
	return b.String()
}
