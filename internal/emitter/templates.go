package emitter

import (
	"bytes"
	"embed"
	"fmt"
	"text/template"
)

//go:embed templates/*.tmpl
var templateFS embed.FS

var templates = template.Must(template.ParseFS(templateFS, "templates/*.tmpl"))

// Gunicorn renders the process manager config of the web application.
func Gunicorn(enableStdioInheritance bool) ([]byte, error) {
	return render("gunicorn.py.tmpl", struct{ EnableStdioInheritance bool }{enableStdioInheritance})
}

// Nginx renders the reverse proxy config serving serverName.
func Nginx(serverName string) ([]byte, error) {
	return render("nginx.conf.tmpl", struct{ ServerName string }{serverName})
}

func render(name string, data any) ([]byte, error) {
	var buf bytes.Buffer
	if err := templates.ExecuteTemplate(&buf, name, data); err != nil {
		return nil, fmt.Errorf("rendering %s: %w", name, err)
	}

	return buf.Bytes(), nil
}
