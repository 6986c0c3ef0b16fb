package browser

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os/exec"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// requireChrome skips the test when no Chrome binary is on PATH.
func requireChrome(t *testing.T) {
	t.Helper()
	for _, name := range []string{"google-chrome", "google-chrome-stable", "chromium", "chromium-browser", "headless-shell"} {
		if _, err := exec.LookPath(name); err == nil {
			return
		}
	}
	t.Skip("no Chrome binary found")
}

func TestPage(t *testing.T) {
	requireChrome(t)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		_, _ = w.Write([]byte(`<html><body>
<section><h2>Who can take it</h2><p>Adults.</p><ul><li>one</li><li>two</li></ul></section>
<script>
  const ul = document.createElement('ul');
  ul.className = 'nhsuk-list';
  ul.innerHTML = '<li><a href="/medicines/aspirin/">Aspirin</a></li>';
  document.body.appendChild(ul);
</script>
</body></html>`))
	}))
	defer srv.Close()

	ctx := context.Background()
	page, err := Launch(ctx, Options{Headless: true, Timeout: 20 * time.Second})
	require.NoError(t, err)
	defer page.Close()

	require.NoError(t, page.Navigate(ctx, srv.URL+"/medicines/"))
	assert.Equal(t, srv.URL+"/medicines/", page.URL())

	require.NoError(t, page.WaitFor(ctx, ".nhsuk-list li a"))

	doc, err := page.Document(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Aspirin", doc.Find(".nhsuk-list li a").Text())

	text, found, err := page.InnerText(ctx, "section")
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, "Who can take it\n\nAdults.\n\none\ntwo", text)

	_, found, err = page.InnerText(ctx, "article")
	require.NoError(t, err)
	assert.False(t, found)
}
