// internal/report/report.go
package report

import (
	"bytes"
	"fmt"
	"html/template"
	"io"
	"strings"

	"github.com/mwiater/benchpage/internal/benchdata"
)

const (
	// KeyGenLabel names the table built from dkg- measurements.
	KeyGenLabel = "DKLs23-KeyGen"
	// SignLabel names the table built from dsg- measurements.
	SignLabel = "DKLs23-Sign"

	pageTitle = "Latest Benchmark Results"
)

// Columns are the table header cells, in display order.
var Columns = []string{"Setting", "Time"}

// Page is the view model of the whole HTML document.
type Page struct {
	Title     string
	Timestamp string
	URL       string
	Tables    []Table
}

// Href renders the href attribute of the commit link. The URL is written as
// given, so link text and target match; only unsafe schemes are replaced.
func (p Page) Href() template.HTMLAttr {
	target := p.URL
	if !safeLink(target) {
		target = unsafeLink
	}
	return template.HTMLAttr(`href="` + template.HTMLEscapeString(target) + `"`)
}

const unsafeLink = "#ZgotmplZ"

// safeLink accepts relative links and the http, https and mailto schemes.
func safeLink(u string) bool {
	i := strings.IndexRune(u, ':')
	if i < 0 || strings.ContainsRune(u[:i], '/') {
		return true
	}
	switch strings.ToLower(u[:i]) {
	case "http", "https", "mailto":
		return true
	}
	return false
}

// Table is the view model of one benchmark group.
type Table struct {
	Label   string
	Heading string
	Columns []string
	Rows    []Row
}

// Row is one measurement converted to milliseconds.
type Row struct {
	Setting string
	Time    string
}

// NewTable converts measurements into a table labelled label. Values are
// divided by 1e6 to go from nanoseconds to milliseconds.
func NewTable(label string, benches []benchdata.Measurement) Table {
	rows := make([]Row, 0, len(benches))
	for _, m := range benches {
		rows = append(rows, Row{
			Setting: m.BenchName(),
			Time:    FormatMillis(m.Millis()),
		})
	}
	return Table{
		Label:   label,
		Heading: strings.ToUpper(label) + " Benchmarks (ms)",
		Columns: Columns,
		Rows:    rows,
	}
}

// NewPage builds the document for the latest run: commit metadata followed
// by the key generation table and then the signing table.
func NewPage(entry benchdata.CommitEntry, groups benchdata.Groups) Page {
	return Page{
		Title:     pageTitle,
		Timestamp: entry.Timestamp(),
		URL:       entry.URL(),
		Tables: []Table{
			NewTable(KeyGenLabel, groups.KeyGen),
			NewTable(SignLabel, groups.Sign),
		},
	}
}

// renderTable writes a single table, or a placeholder paragraph when the
// table has no rows.
func renderTable(w io.Writer, table Table) error {
	if err := pageTemplate.ExecuteTemplate(w, "table", table); err != nil {
		return fmt.Errorf("render table %s: %w", table.Label, err)
	}
	return nil
}

// RenderPage renders the complete HTML document: the commit header, each
// table in order, then the closing tags.
func RenderPage(page Page) (string, error) {
	var buf bytes.Buffer
	if err := pageTemplate.ExecuteTemplate(&buf, "header", page); err != nil {
		return "", fmt.Errorf("render page: %w", err)
	}
	for _, table := range page.Tables {
		if err := renderTable(&buf, table); err != nil {
			return "", err
		}
	}
	if err := pageTemplate.ExecuteTemplate(&buf, "footer", page); err != nil {
		return "", fmt.Errorf("render page: %w", err)
	}
	return buf.String(), nil
}

var pageTemplate = template.Must(template.Must(template.New("benchmark-page").Parse(pageTemplateHTML)).Parse(tableTemplateHTML))

const pageTemplateHTML = `{{ define "header" }}<!DOCTYPE html>
<html>
<head>
<meta charset="UTF-8">
<title>{{ .Title }}</title>
<style>
    body { font-family: 'Arial', sans-serif; margin: 20px; }
    .header { text-align: center; margin-bottom: 20px; }
</style>
</head>
<body>
<div class="header">
    <p><strong>Last Timestamp:</strong> {{ .Timestamp }}</p>
    <p><strong>Commit URL:</strong> <a {{ .Href }}>{{ .URL }}</a></p>
</div>
{{ end }}{{ define "footer" }}</body>
</html>
{{ end }}`

const tableTemplateHTML = `{{ define "table" }}{{ if .Rows -}}
<h2 style='text-align: center; color: #3366cc;'>{{ .Heading }}</h2>
<table style='width: 80%; margin: 20px auto; border-collapse: collapse; box-shadow: 0 4px 8px rgba(0, 0, 0, 0.1);'>
<thead style='background-color: #f0f8ff;'>
<tr>
{{ range .Columns }}<th style='padding: 12px; text-align: left; border-bottom: 2px solid #ddd;'>{{ . }}</th>
{{ end }}</tr>
</thead>
<tbody>
{{ range .Rows }}<tr>
<td style='padding: 10px; border-bottom: 1px solid #eee;'>{{ .Setting }}</td>
<td style='padding: 10px; border-bottom: 1px solid #eee;'>{{ .Time }}</td>
</tr>
{{ end }}</tbody>
</table>
{{ else -}}
<p style='text-align: center; font-style: italic;'>No data for {{ .Label }}.</p>
{{ end }}{{ end }}`
