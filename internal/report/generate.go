package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/k0kubun/pp"
	"github.com/mwiater/benchpage/internal/benchdata"
	"github.com/mwiater/benchpage/internal/logging"
	"github.com/mwiater/benchpage/internal/tui"
	"github.com/mwiater/benchpage/internal/util"
)

// OutputFile is where the report is written, relative to the working directory.
const OutputFile = "index.html"

// Options captures the inputs for generating the benchmark page.
type Options struct {
	InputPath  string
	OutputPath string
	Summary    bool
}

// Generate loads the benchmark history at opts.InputPath, dumps it to out,
// and writes the HTML page for the latest Rust benchmark run. A missing or
// empty suite is reported on out and is not an error.
func Generate(opts Options, out io.Writer) error {
	if opts.OutputPath == "" {
		opts.OutputPath = OutputFile
	}

	ds, err := benchdata.Load(opts.InputPath)
	if err != nil {
		return err
	}
	logging.LogEvent("loaded benchmark history from %s", opts.InputPath)

	dump, err := ds.Dump()
	if err != nil {
		return err
	}
	fmt.Fprintln(out, string(dump))

	latest, err := ds.Latest()
	if err != nil {
		return err
	}
	if latest == nil {
		logging.LogDebug("suites present: %s", strings.Join(ds.Suites(), ", "))
		fmt.Fprintf(out, "No '%s' entries found.\n", benchdata.SuiteName)
		return nil
	}
	logging.LogDebug("latest entry: %s", pp.Sprint(latest))

	if len(latest.Benches) == 0 {
		fmt.Fprintln(out, "No benches data found in the last entry.")
	}

	groups, err := benchdata.Partition(latest.Benches)
	if err != nil {
		return err
	}
	logging.LogEvent("latest run %s: %d keygen, %d sign, %d ignored",
		latest.Timestamp(), len(groups.KeyGen), len(groups.Sign), len(latest.Benches)-groups.Len())

	page := NewPage(*latest, groups)
	html, err := RenderPage(page)
	if err != nil {
		return err
	}

	if err := WritePage(opts.OutputPath, html); err != nil {
		return err
	}
	tui.Success(out, "HTML tables created and saved to %s", opts.OutputPath)

	if opts.Summary {
		fmt.Fprint(out, tui.RenderSummary(summaryTables(page.Tables)))
	}
	return nil
}

// WritePage overwrites path with the rendered document.
func WritePage(path, html string) error {
	if err := util.WriteFile(path, []byte(html)); err != nil {
		return fmt.Errorf("unable to write HTML report %s: %w", path, err)
	}
	logging.LogEvent("report written to %s (%d bytes)", path, len(html))
	return nil
}

func summaryTables(tables []Table) []tui.SummaryTable {
	out := make([]tui.SummaryTable, 0, len(tables))
	for _, table := range tables {
		rows := make([]tui.SummaryRow, 0, len(table.Rows))
		for _, row := range table.Rows {
			rows = append(rows, tui.SummaryRow{Name: row.Setting, Value: row.Time + " ms"})
		}
		out = append(out, tui.SummaryTable{Title: table.Heading, Label: table.Label, Rows: rows})
	}
	return out
}
