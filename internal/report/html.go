package report

import (
	"bytes"
	"fmt"
	"html"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
)

var markdown = goldmark.New(goldmark.WithExtensions(extension.Table))

// HTML renders the report as a standalone HTML page.
func (r *Report) HTML() ([]byte, error) {
	body, err := RenderMarkdown(r.Markdown())
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	title := html.EscapeString(fmt.Sprintf("LeaseScore Report: %s", r.Result.Score.DealRating))
	buf.WriteString("<!DOCTYPE html>\n<html lang=\"en\">\n<head>\n<meta charset=\"utf-8\">\n")
	buf.WriteString("<title>" + title + "</title>\n")
	buf.WriteString("<style>" + pageStyle + "</style>\n</head>\n")
	buf.WriteString("<body class=\"deal-" + string(r.Result.Score.DealClass) + "\">\n")
	buf.Write(body)
	buf.WriteString("</body>\n</html>\n")
	return buf.Bytes(), nil
}

// RenderMarkdown converts Markdown (with tables) to an HTML fragment.
func RenderMarkdown(src string) ([]byte, error) {
	var buf bytes.Buffer
	if err := markdown.Convert([]byte(src), &buf); err != nil {
		return nil, fmt.Errorf("render markdown: %w", err)
	}
	return buf.Bytes(), nil
}

const pageStyle = `
body { font-family: -apple-system, "Segoe UI", Helvetica, Arial, sans-serif; max-width: 960px; margin: 2rem auto; color: #1f2933; }
h2 { border-bottom: 2px solid #d9e2ec; padding-bottom: .3rem; margin-top: 2.5rem; }
table { border-collapse: collapse; width: 100%; margin: 1rem 0; }
th, td { border: 1px solid #d9e2ec; padding: .4rem .6rem; text-align: left; }
th { background: #f0f4f8; }
body.deal-good h1 { color: #1d7a46; }
body.deal-neutral h1 { color: #b7791f; }
body.deal-bad h1 { color: #c53030; }
@media print { h2 { page-break-before: always; } }
`
