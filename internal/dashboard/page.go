package dashboard

import (
	"bytes"
	"embed"
	"html/template"
	"io"
)

//go:embed web/templates/*.html
var templateFS embed.FS

var templates = template.Must(template.New("").ParseFS(templateFS, "web/templates/*.html"))

type pageData struct {
	View  *View
	Error *ErrorView
}

// WritePage renders the dashboard page. The template is executed into a
// buffer first so a failure never leaves half a page on w.
func WritePage(w io.Writer, v *View) error {
	var buf bytes.Buffer
	if err := templates.ExecuteTemplate(&buf, "index.html", pageData{View: v}); err != nil {
		return err
	}
	_, err := buf.WriteTo(w)
	return err
}

// WriteErrorPage renders the page shell with only the error panel inside
// the container.
func WriteErrorPage(w io.Writer, ev ErrorView) error {
	return templates.ExecuteTemplate(w, "index.html", pageData{Error: &ev})
}

// RenderPage writes the dashboard, or the error page when err is set or the
// dashboard itself fails to render. It returns the error that was shown.
func RenderPage(w io.Writer, v *View, err error) error {
	if err == nil {
		if err = WritePage(w, v); err == nil {
			return nil
		}
	}
	if werr := WriteErrorPage(w, NewErrorView(err)); werr != nil {
		return werr
	}
	return err
}
