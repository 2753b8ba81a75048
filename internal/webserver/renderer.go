package webserver

import (
	"embed"
	"fmt"
	"html/template"
	"io"
	"io/fs"
	"path"
	"time"

	"github.com/labstack/echo/v4"
)

//go:embed templates/*.html
var templatesFS embed.FS

var templateFuncs = template.FuncMap{
	"price": func(v float64) string {
		return fmt.Sprintf("%.2f", v)
	},
}

// TemplateRenderer renders embedded pages. Every page template defines a
// "content" block that the shared layout wraps.
type TemplateRenderer struct {
	pages map[string]*template.Template
}

func NewTemplateRenderer() *TemplateRenderer {
	pages := make(map[string]*template.Template)
	entries, err := fs.Glob(templatesFS, "templates/*.html")
	if err != nil {
		panic(err)
	}
	for _, entry := range entries {
		name := path.Base(entry)
		if name == "layout.html" {
			continue
		}
		pages[name] = template.Must(
			template.New(name).Funcs(templateFuncs).
				ParseFS(templatesFS, "templates/layout.html", entry))
	}
	return &TemplateRenderer{pages: pages}
}

func (r *TemplateRenderer) Render(w io.Writer, name string, data interface{}, c echo.Context) error {
	tpl, ok := r.pages[name]
	if !ok {
		return fmt.Errorf("template not found: %s", name)
	}
	return tpl.ExecuteTemplate(w, "layout.html", data)
}

// RenderPage renders a page with the flash queue and footer year injected.
func RenderPage(c echo.Context, name string, data echo.Map) error {
	if data == nil {
		data = echo.Map{}
	}
	data["Flashes"] = Flashes(c)
	data["Year"] = time.Now().UTC().Year()
	return c.Render(200, name, data)
}
