// Package report assembles the seven-page deal report from an evaluation result and renders it
// as Markdown, HTML or CSV.
package report

import (
	"bytes"
	"encoding/json"
	"fmt"
	"time"

	"leasescore/internal/analysis"
	"leasescore/internal/benchmark"
	"leasescore/internal/model"
)

// Report is everything a rendered report shows.
type Report struct {
	GeneratedAt time.Time                 `json:"generated_at"`
	Result      *model.EvaluationResult   `json:"result"`
	Analysis    analysis.Analysis         `json:"analysis"`
	Market      []benchmark.MetricVerdict `json:"market"`
}

// Assembler builds reports. The clock is injected so that evaluation stays deterministic and
// only the report header carries a timestamp.
type Assembler struct {
	now func() time.Time
}

// NewAssembler returns an Assembler using now for report timestamps. A nil now uses time.Now.
func NewAssembler(now func() time.Time) *Assembler {
	if now == nil {
		now = time.Now
	}
	return &Assembler{now: now}
}

// Build computes the presentation figures for res.
func (a *Assembler) Build(res *model.EvaluationResult) *Report {
	return &Report{
		GeneratedAt: a.now(),
		Result:      res,
		Analysis:    analysis.Analyze(res),
		Market:      benchmark.Verdicts(res.Inputs, res.Benchmark),
	}
}

// Format is an output format for a report.
type Format string

const (
	FormatMarkdown Format = "md"
	FormatHTML     Format = "html"
	FormatCSV      Format = "csv"
	FormatJSON     Format = "json"
)

// ContentType returns the MIME type for f.
func (f Format) ContentType() string {
	switch f {
	case FormatHTML:
		return "text/html; charset=utf-8"
	case FormatCSV:
		return "text/csv; charset=utf-8"
	case FormatJSON:
		return "application/json; charset=utf-8"
	default:
		return "text/markdown; charset=utf-8"
	}
}

// ParseFormat accepts md, markdown, html, csv and json. Empty means Markdown.
func ParseFormat(s string) (Format, bool) {
	switch s {
	case "", "md", "markdown":
		return FormatMarkdown, true
	case "html":
		return FormatHTML, true
	case "csv":
		return FormatCSV, true
	case "json":
		return FormatJSON, true
	}
	return "", false
}

// Render renders the report in format f.
func (r *Report) Render(f Format) ([]byte, error) {
	switch f {
	case FormatHTML:
		return r.HTML()
	case FormatCSV:
		var buf bytes.Buffer
		if err := r.WriteCSV(&buf); err != nil {
			return nil, fmt.Errorf("write csv: %w", err)
		}
		return buf.Bytes(), nil
	case FormatJSON:
		b, err := json.MarshalIndent(r, "", "  ")
		if err != nil {
			return nil, fmt.Errorf("encode report: %w", err)
		}
		return b, nil
	default:
		return []byte(r.Markdown()), nil
	}
}
