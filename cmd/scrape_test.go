package cmd

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/gaurav-prasanna/nhsmeds/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var site = map[string]string{
	"/medicines/": `<ul class="nhsuk-list"><li><a href="#A">A</a></li><li><a href="/medicines/aspirin/">Aspirin</a></li></ul>`,
	"/medicines/aspirin/": `<div class="nhsuk-u-reading-width"><ul>
<li><a href="/medicines/aspirin/about-aspirin/">About aspirin</a></li></ul></div>`,
	"/medicines/aspirin/about-aspirin/": `<section><p>Aspirin is a...</p></section>`,
}

func TestScrapeCommandWritesCatalog(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, ok := site[r.URL.Path]
		if !ok {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		_, _ = w.Write([]byte("<html><body>" + body + "</body></html>"))
	}))
	defer srv.Close()

	dir := t.TempDir()
	out := filepath.Join(dir, "medicine-details.json")
	metricsFile := filepath.Join(dir, "nhsmeds.prom")

	var stdout bytes.Buffer
	rootCmd.SetOut(&stdout)
	rootCmd.SetArgs([]string{"scrape",
		"--engine", "http",
		"--base_url", srv.URL,
		"--output", out,
		"--metrics_file", metricsFile,
		"--log_level", "error",
	})
	require.NoError(t, rootCmd.ExecuteContext(context.Background()))

	assert.Equal(t, "Scraping NHS medicines...\nJSON bundle has been created: medicine-details.json\n", stdout.String())

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.JSONEq(t, `{"Aspirin":{"link":"/medicines/aspirin/","details":{"About":{
		"link":"/medicines/aspirin/about-aspirin/",
		"AboutData":{"paragraphs":["Aspirin is a..."],"listItems":[]},
		"KeyFacts":[]}}}}`, string(data))

	prom, err := os.ReadFile(metricsFile)
	require.NoError(t, err)
	assert.Contains(t, string(prom), "nhsmeds_navigations_total")
}

func TestSelectRenderer(t *testing.T) {
	for format, ext := range map[string]string{
		config.FormatJSON:     ".json",
		config.FormatMarkdown: ".md",
		config.FormatPDF:      ".pdf",
	} {
		r, err := selectRenderer(format)
		require.NoError(t, err, format)
		assert.Equal(t, ext, r.Extension())
	}

	_, err := selectRenderer("embeddings")
	require.Error(t, err)
}
