package report

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/mwiater/benchpage/internal/benchdata"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func bench(name string, ns float64) benchdata.Measurement {
	return benchdata.Measurement{Name: &name, Value: &ns}
}

func jsonString(t *testing.T, s string) json.RawMessage {
	t.Helper()
	raw, err := json.Marshal(s)
	require.NoError(t, err)
	return raw
}

func entry(t *testing.T, ts, url string) benchdata.CommitEntry {
	return benchdata.CommitEntry{Commit: &benchdata.Commit{Timestamp: jsonString(t, ts), URL: jsonString(t, url)}}
}

func TestNewTable(t *testing.T) {
	table := NewTable(KeyGenLabel, []benchdata.Measurement{
		bench("dkg-3x2", 5_000_000),
		bench("dkg-5x3", 308165460),
	})

	assert.Equal(t, "DKLS23-KEYGEN Benchmarks (ms)", table.Heading)
	assert.Equal(t, []string{"Setting", "Time"}, table.Columns)
	assert.Equal(t, []Row{
		{Setting: "dkg-3x2", Time: "5.0"},
		{Setting: "dkg-5x3", Time: "308.16546"},
	}, table.Rows)
}

func TestRenderTable(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, renderTable(&buf, NewTable(SignLabel, []benchdata.Measurement{
		bench("dsg-3x2", 1_000_000),
		bench("dsg-5x3", 2_500_000),
	})))
	html := buf.String()

	assert.Contains(t, html, "<h2 style='text-align: center; color: #3366cc;'>DKLS23-SIGN Benchmarks (ms)</h2>")
	assert.Equal(t, 1, strings.Count(html, "<thead"))
	assert.Equal(t, 3, strings.Count(html, "<tr>"), "one header row plus one row per measurement")
	assert.Contains(t, html, ">Setting</th>")
	assert.Contains(t, html, ">Time</th>")
	assert.Less(t, strings.Index(html, ">Setting</th>"), strings.Index(html, ">Time</th>"))
	assert.Less(t, strings.Index(html, ">dsg-3x2</td>"), strings.Index(html, ">dsg-5x3</td>"))
	assert.Contains(t, html, ">1.0</td>")
	assert.Contains(t, html, ">2.5</td>")
	assert.NotContains(t, html, "No data for")
}

func TestRenderTableEmpty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, renderTable(&buf, NewTable(KeyGenLabel, nil)))

	assert.Equal(t, "<p style='text-align: center; font-style: italic;'>No data for DKLs23-KeyGen.</p>\n", buf.String())
}

func TestRenderTableEscapesNames(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, renderTable(&buf, NewTable(KeyGenLabel, []benchdata.Measurement{bench("dkg-<b>", 1)})))

	assert.Contains(t, buf.String(), "dkg-&lt;b&gt;")
	assert.NotContains(t, buf.String(), "dkg-<b>")
}

func TestRenderPage(t *testing.T) {
	groups := benchdata.Groups{
		KeyGen: []benchdata.Measurement{bench("dkg-3x2", 5_000_000)},
		Sign:   []benchdata.Measurement{bench("dsg-3x2", 1_000_000)},
	}
	html, err := RenderPage(NewPage(entry(t, "2025-04-15T16:06:46Z", "https://example.com/commit/abc"), groups))
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(html, "<!DOCTYPE html>"))
	assert.Contains(t, html, "<title>Latest Benchmark Results</title>")
	assert.Contains(t, html, "<p><strong>Last Timestamp:</strong> 2025-04-15T16:06:46Z</p>")
	assert.Contains(t, html, `<a href="https://example.com/commit/abc">https://example.com/commit/abc</a>`)
	assert.Less(t, strings.Index(html, "DKLS23-KEYGEN"), strings.Index(html, "DKLS23-SIGN"))
	assert.True(t, strings.HasSuffix(html, "</body>\n</html>\n"))
}

func TestRenderPageFallbacksAndPlaceholders(t *testing.T) {
	html, err := RenderPage(NewPage(benchdata.CommitEntry{}, benchdata.Groups{}))
	require.NoError(t, err)

	assert.Contains(t, html, "Timestamp not found")
	assert.Contains(t, html, `<a href="URL not found">URL not found</a>`)
	assert.Contains(t, html, "No data for DKLs23-KeyGen.")
	assert.Contains(t, html, "No data for DKLs23-Sign.")
	assert.NotContains(t, html, "<table")
	assert.Less(t, strings.Index(html, "No data for DKLs23-KeyGen."), strings.Index(html, "No data for DKLs23-Sign."))
}

func TestRenderPageIsDeterministic(t *testing.T) {
	page := NewPage(entry(t, "t", "u"), benchdata.Groups{KeyGen: []benchdata.Measurement{bench("dkg-a", 7)}})
	first, err := RenderPage(page)
	require.NoError(t, err)
	second, err := RenderPage(page)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestRenderPageCommitLink(t *testing.T) {
	tests := []struct {
		name string
		url  string
		want string
	}{
		{name: "https", url: "https://example.com/commit/abc?x=1&y=2", want: `<a href="https://example.com/commit/abc?x=1&amp;y=2">`},
		{name: "relative with spaces", url: "commits/a b", want: `<a href="commits/a b">`},
		{name: "quote escaped", url: `https://example.com/"x`, want: `<a href="https://example.com/&#34;x">`},
		{name: "unsafe scheme", url: "javascript:alert(1)", want: `<a href="#ZgotmplZ">`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			html, err := RenderPage(NewPage(entry(t, "t", tt.url), benchdata.Groups{}))
			require.NoError(t, err)
			assert.Contains(t, html, tt.want)
		})
	}
}
