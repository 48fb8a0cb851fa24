package httpapi

import (
	"bytes"
	_ "embed"
	"html/template"

	"github.com/gofiber/fiber/v2"

	"github.com/i474232898/mood-weather/internal/mood"
	"github.com/i474232898/mood-weather/internal/session"
)

//go:embed templates/index.html
var indexHTML string

var indexTmpl = template.Must(template.New("index").Funcs(template.FuncMap{
	"temp": mood.FormatTemp,
}).Parse(indexHTML))

type pageData struct {
	session.View
	Moods []mood.Entry
}

func renderIndex(c *fiber.Ctx, v session.View) error {
	var buf bytes.Buffer
	if err := indexTmpl.Execute(&buf, pageData{View: v, Moods: mood.Entries()}); err != nil {
		return err
	}
	c.Type("html", "utf-8")
	return c.Send(buf.Bytes())
}
