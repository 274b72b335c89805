// Package templates holds the embedded HTML pages and the helpers they use.
package templates

import (
	"bytes"
	"embed"
	"html/template"
	"log"
	"time"
	"yatube/utils"

	"github.com/dustin/go-humanize"
	"github.com/microcosm-cc/bluemonday"
	"github.com/pkg/errors"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/renderer/html"
)

//go:embed *.tmpl
var templatesFS embed.FS

var (
	markdown = goldmark.New(goldmark.WithRendererOptions(html.WithHardWraps()))
	sanitize = bluemonday.UGCPolicy()
)

// Load parses every page together with the shared partials
func Load() (*template.Template, error) {
	tmpl, err := template.New("").Funcs(Funcs()).ParseFS(templatesFS, "*.tmpl")
	if err != nil {
		return nil, errors.Wrap(err, "parse templates")
	}
	return tmpl, nil
}

func Funcs() template.FuncMap {
	return template.FuncMap{
		"naturaltime": NaturalTime,
		"date":        utils.FormatDate,
		"linebreaks":  Linebreaks,
		"media":       MediaURL,
		"add":         func(a, b int) int { return a + b },
		"sub":         func(a, b int) int { return a - b },
	}
}

// NaturalTime renders a unix timestamp as "3 minutes ago"
func NaturalTime(ts int64) string {
	return humanize.Time(time.Unix(ts, 0))
}

// Linebreaks renders post text as sanitized markdown, single newlines become <br>
func Linebreaks(text string) template.HTML {
	var buf bytes.Buffer
	if err := markdown.Convert([]byte(text), &buf); err != nil {
		log.Printf("Markdown render: %v", err)
		return template.HTML(template.HTMLEscapeString(text))
	}
	return template.HTML(sanitize.SanitizeBytes(buf.Bytes()))
}

func MediaURL(path string) string {
	if path == "" {
		return ""
	}
	return "/media/" + path
}
