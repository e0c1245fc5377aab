package format

import (
	"html/template"
	"io"
	"time"

	"github.com/fwojciec/pagefeed"
)

var htmlTemplate = template.Must(template.New("feed").Funcs(template.FuncMap{
	"published": func(t time.Time) string { return t.Format("January 02, 2006") },
}).Parse(`<!DOCTYPE html>
<html>
<head>
  <meta charset="utf-8">
  <title>{{.Title}}</title>
  <style>
    body { font-family: Arial, sans-serif; margin: 40px; }
    .item { margin-bottom: 30px; padding: 20px; border: 1px solid #ddd; }
    .title { font-size: 18px; font-weight: bold; margin-bottom: 10px; }
    .description { margin-bottom: 10px; }
    .meta { color: #666; font-size: 14px; }
  </style>
</head>
<body>
  <h1>{{.Title}}</h1>
  <p class="description">{{.Description}}</p>
{{- range .Items}}
  <div class="item">
    <div class="title">{{.Title}}</div>
    <div class="meta">
      {{- if .Link}}<a href="{{.Link}}">Read more</a>{{end}}
      {{- if not .PublishedAt.IsZero}} | Published: {{published .PublishedAt}}{{end}}
    </div>
  </div>
{{- end}}
</body>
</html>
`))

type htmlPage struct {
	Title       string
	Description string
	Items       []pagefeed.FeedItem
}

// WriteHTML writes result as a standalone, styled HTML page.
func WriteHTML(w io.Writer, sourceURL string, result *pagefeed.FeedResult) error {
	page := htmlPage{
		Title:       result.Title(sourceURL),
		Description: result.Description(sourceURL),
		Items:       result.Items,
	}
	if err := htmlTemplate.Execute(w, page); err != nil {
		return pagefeed.Errorf(pagefeed.EINTERNAL, "rendering HTML feed: %v", err)
	}
	return nil
}
