package http

import (
	"embed"
	"fmt"
	"html/template"
	"io"
	"io/fs"
	"path"
	"strings"
	"sync"

	"github.com/spec-kit/campus-portal/internal/domain"
)

//go:embed templates/*.html
var templateFS embed.FS

const layoutFile = "templates/layout.html"

// Views renders the embedded page templates inside the shared layout.
// It satisfies fiber.Views.
type Views struct {
	once  sync.Once
	err   error
	pages map[string]*template.Template
}

// NewViews returns an unloaded view set; Fiber calls Load on startup.
func NewViews() *Views {
	return &Views{}
}

// Load parses every page together with the layout.
func (v *Views) Load() error {
	v.once.Do(func() {
		v.err = v.parse()
	})
	return v.err
}

func (v *Views) parse() error {
	files, err := fs.Glob(templateFS, "templates/*.html")
	if err != nil {
		return fmt.Errorf("list templates: %w", err)
	}

	pages := make(map[string]*template.Template, len(files))
	for _, file := range files {
		if file == layoutFile {
			continue
		}
		name := strings.TrimSuffix(path.Base(file), ".html")
		tmpl, err := template.New(name).Funcs(viewFuncs).ParseFS(templateFS, layoutFile, file)
		if err != nil {
			return fmt.Errorf("parse template %s: %w", name, err)
		}
		pages[name] = tmpl
	}
	v.pages = pages
	return nil
}

// Render writes page name. Layout arguments are ignored; every page uses the shared layout.
func (v *Views) Render(w io.Writer, name string, data interface{}, _ ...string) error {
	if err := v.Load(); err != nil {
		return err
	}
	tmpl, ok := v.pages[name]
	if !ok {
		return fmt.Errorf("view %q not found", name)
	}
	return tmpl.ExecuteTemplate(w, "layout", data)
}

var viewFuncs = template.FuncMap{
	"capitalize": domain.Capitalize,
	"department": func(code string) string { return domain.DisplayName(domain.Departments, code) },
	"year":       func(code string) string { return domain.DisplayName(domain.Years, code) },
}
