package web

import (
	"embed"
	"html/template"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

//go:embed templates/*.tmpl
var templatesFS embed.FS

// Templates parses every page template together with the shared partials
func Templates() *template.Template {
	return template.Must(template.New("").Funcs(template.FuncMap{
		"linebreaks": linebreaks,
	}).ParseFS(templatesFS, "templates/*.tmpl"))
}

func linebreaks(s string) template.HTML {
	lines := strings.Split(template.HTMLEscapeString(s), "\n")
	return template.HTML(strings.Join(lines, "<br>"))
}

// Render writes the page with the named template, or its view-model when ?format=json is asked for
func Render(c *gin.Context, status int, name string, page any) {
	if c.Query("format") == "json" {
		c.JSON(status, page)
		return
	}
	c.HTML(status, name, page)
}

func NotFound(c *gin.Context, viewer *UserView) {
	Render(c, http.StatusNotFound, "404.tmpl", MessagePage{
		Base:    Base{Title: "Page not found", Viewer: viewer},
		Message: "The page you are looking for does not exist.",
		Path:    c.Request.URL.Path,
	})
	c.Abort()
}

func ServerError(c *gin.Context, viewer *UserView) {
	Render(c, http.StatusInternalServerError, "500.tmpl", MessagePage{
		Base:    Base{Title: "Server error", Viewer: viewer},
		Message: "Something went wrong on our side.",
		Path:    c.Request.URL.Path,
	})
	c.Abort()
}
