// Package browser implements core.Page on a headless Chrome tab driven
// through chromedp. One browser process and one tab are used for the
// whole run; every call blocks until the browser has answered.
package browser

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/chromedp/chromedp"
	"github.com/gaurav-prasanna/nhsmeds/core"
)

const defaultTimeout = 30 * time.Second

var _ core.Page = (*Page)(nil)

// Options configures the browser launch.
type Options struct {
	Headless  bool
	Timeout   time.Duration // per navigation or DOM call
	UserAgent string
}

// Page is a single Chrome tab.
type Page struct {
	tabCtx      context.Context
	tabCancel   context.CancelFunc
	allocCancel context.CancelFunc
	timeout     time.Duration
	url         string
}

// Launch starts Chrome and opens the tab. The returned Page must be closed.
func Launch(ctx context.Context, opts Options) (*Page, error) {
	if opts.Timeout <= 0 {
		opts.Timeout = defaultTimeout
	}

	allocOpts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.Flag("headless", opts.Headless),
		chromedp.Flag("disable-gpu", true),
		chromedp.Flag("disable-dev-shm-usage", true),
	)
	if opts.UserAgent != "" {
		allocOpts = append(allocOpts, chromedp.UserAgent(opts.UserAgent))
	}

	allocCtx, allocCancel := chromedp.NewExecAllocator(context.WithoutCancel(ctx), allocOpts...)
	tabCtx, tabCancel := chromedp.NewContext(allocCtx,
		chromedp.WithLogf(logf(slog.LevelDebug)),
		chromedp.WithErrorf(logf(slog.LevelDebug)),
	)

	// An empty Run starts the browser so launch failures surface here.
	if err := chromedp.Run(tabCtx); err != nil {
		tabCancel()
		allocCancel()
		return nil, fmt.Errorf("launching browser: %w", err)
	}

	return &Page{
		tabCtx:      tabCtx,
		tabCancel:   tabCancel,
		allocCancel: allocCancel,
		timeout:     opts.Timeout,
	}, nil
}

// run executes actions on the tab, bounded by both ctx and the timeout.
func (p *Page) run(ctx context.Context, actions ...chromedp.Action) error {
	runCtx, cancel := context.WithTimeout(p.tabCtx, p.timeout)
	defer cancel()
	stop := context.AfterFunc(ctx, cancel)
	defer stop()

	if err := chromedp.Run(runCtx, actions...); err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}
		return err
	}
	return nil
}

// Navigate loads url and waits for the load event.
func (p *Page) Navigate(ctx context.Context, url string) error {
	slog.Debug("navigating", "url", url)
	if err := p.run(ctx, chromedp.Navigate(url)); err != nil {
		return fmt.Errorf("navigating to %s: %w", url, err)
	}
	p.url = url
	return nil
}

// URL returns the last URL navigated to.
func (p *Page) URL() string {
	return p.url
}

// Document snapshots the live DOM as parsed HTML.
func (p *Page) Document(ctx context.Context) (*goquery.Document, error) {
	var html string
	if err := p.run(ctx, chromedp.OuterHTML("html", &html, chromedp.ByQuery)); err != nil {
		return nil, fmt.Errorf("reading DOM: %w", err)
	}
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, fmt.Errorf("parsing DOM: %w", err)
	}
	return doc, nil
}

type innerTextResult struct {
	Found bool   `json:"found"`
	Text  string `json:"text"`
}

// InnerText evaluates element.innerText in the page.
func (p *Page) InnerText(ctx context.Context, selector string) (string, bool, error) {
	quoted, err := json.Marshal(selector)
	if err != nil {
		return "", false, err
	}
	script := fmt.Sprintf(`(() => {
	const el = document.querySelector(%s);
	return el ? {found: true, text: el.innerText} : {found: false, text: ""};
})()`, quoted)

	var res innerTextResult
	if err := p.run(ctx, chromedp.Evaluate(script, &res)); err != nil {
		return "", false, fmt.Errorf("evaluating innerText of %q: %w", selector, err)
	}
	return res.Text, res.Found, nil
}

// WaitFor blocks until selector is present in the DOM.
func (p *Page) WaitFor(ctx context.Context, selector string) error {
	if err := p.run(ctx, chromedp.WaitReady(selector, chromedp.ByQuery)); err != nil {
		return fmt.Errorf("waiting for %q: %w", selector, err)
	}
	return nil
}

// Close shuts the tab and the browser process.
func (p *Page) Close() error {
	err := chromedp.Cancel(p.tabCtx)
	p.tabCancel()
	p.allocCancel()
	return err
}

func logf(level slog.Level) func(string, ...any) {
	return func(format string, args ...any) {
		slog.Log(context.Background(), level, fmt.Sprintf(format, args...), "source", "chromedp")
	}
}
