package api

import (
	"bytes"
	"embed"
	"html/template"
	"net/http"

	"github.com/labstack/echo/v4"
)

//go:embed dashboard.html
var pageFS embed.FS

var pageTmpl = template.Must(template.ParseFS(pageFS, "dashboard.html"))

type pageData struct {
	Title         string
	KeyConfigured bool
}

// Dashboard renders the single-page shell. All data arrives through the
// JSON API after load, so an upstream outage still renders the page with
// an error banner instead of a blank response.
func (h *Handler) Dashboard(c echo.Context) error {
	var buf bytes.Buffer
	err := pageTmpl.Execute(&buf, pageData{
		Title:         "Sladrehank — Unemployment in Norway (2015–2024)",
		KeyConfigured: h.apiKey != "",
	})
	if err != nil {
		return err
	}
	return c.HTMLBlob(http.StatusOK, buf.Bytes())
}
