package source

import (
	"context"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/chromedp/cdproto/cdp"
	"github.com/chromedp/cdproto/network"
	"github.com/chromedp/chromedp"

	"github.com/scrapsterhq/scrapster/pkg/candidate"
	"github.com/scrapsterhq/scrapster/pkg/httpcache"
	"github.com/scrapsterhq/scrapster/pkg/profile"
)

// apiPathMarkers identify structured API responses worth intercepting.
var apiPathMarkers = []string{"/voyager/", "/api/", "/graphql"}

// sectionTextJS gathers the text of up to ten profile-like sections,
// skipping shared chrome like headers and footers.
const sectionTextJS = `(() => {
	const nodes = document.querySelectorAll(
		'section, div[class*="profile"], div[class*="about"], div[class*="contact"]');
	return Array.from(nodes).slice(0, 10).map(n => n.innerText || "").join("\n");
})()`

// shadowTextJS walks every shadow root on the page and returns the
// concatenated shadow content, which innerText never reaches.
const shadowTextJS = `(() => {
	const parts = [];
	const walk = (node) => {
		if (node.shadowRoot) {
			parts.push(node.shadowRoot.innerHTML);
			node.shadowRoot.querySelectorAll('*').forEach(walk);
		}
		node.querySelectorAll('*').forEach(walk);
	};
	walk(document.body);
	return parts.join("\n");
})()`

// openContactModalJS clicks the first contact or message button it finds.
// Returns whether anything was clicked; failures are swallowed because
// most pages simply have no such button.
const openContactModalJS = `(() => {
	const selectors = [
		'button[aria-label*="Contact"]',
		'button[aria-label*="Message"]',
		'button[aria-label*="Connect"]',
		'a[href*="message"]',
	];
	for (const sel of selectors) {
		try {
			const btn = document.querySelector(sel);
			if (btn) { btn.click(); return true; }
		} catch (e) {}
	}
	return false;
})()`

// BrowserSource drives a headless browser to see what plain HTTP cannot:
// script-rendered text, shadow DOM content, contact modals, and the
// structured API responses the page loads.
type BrowserSource struct {
	logger   *slog.Logger
	timeout  time.Duration
	headless bool
}

// BrowserOption configures a BrowserSource.
type BrowserOption func(*BrowserSource)

// WithHeadful shows the browser window, which helps when a site refuses
// headless sessions.
func WithHeadful() BrowserOption {
	return func(s *BrowserSource) { s.headless = false }
}

// WithTimeout bounds a single page visit.
func WithTimeout(d time.Duration) BrowserOption {
	return func(s *BrowserSource) { s.timeout = d }
}

// NewBrowserSource creates a browser-backed candidate source.
func NewBrowserSource(logger *slog.Logger, opts ...BrowserOption) *BrowserSource {
	if logger == nil {
		logger = slog.Default()
	}
	s := &BrowserSource{
		logger:   logger,
		timeout:  45 * time.Second,
		headless: true,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Name implements Source.
func (*BrowserSource) Name() string { return "browser" }

// Produce visits the profile URL in a browser and extracts candidates
// from the rendered page, profile sections, shadow DOM, a contact modal
// if one opens, and intercepted API responses.
func (s *BrowserSource) Produce(ctx context.Context, pc profile.Context) ([]candidate.Candidate, error) {
	opts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.UserAgent(httpcache.UserAgent),
		chromedp.Flag("headless", s.headless),
	)

	allocCtx, cancelAlloc := chromedp.NewExecAllocator(ctx, opts...)
	defer cancelAlloc()

	browserCtx, cancelBrowser := chromedp.NewContext(allocCtx)
	defer cancelBrowser()

	browserCtx, cancelTimeout := context.WithTimeout(browserCtx, s.timeout)
	defer cancelTimeout()

	var intercepted strings.Builder
	var interceptMu sync.Mutex
	s.listenForAPIResponses(browserCtx, &interceptMu, &intercepted)

	var pageText, sectionText, shadowText, modalText string
	err := chromedp.Run(browserCtx,
		network.Enable(),
		chromedp.Navigate(pc.URL),
		chromedp.Sleep(2*time.Second),
		chromedp.Evaluate(`document.body ? document.body.innerText : ""`, &pageText),
		chromedp.Evaluate(sectionTextJS, &sectionText),
		chromedp.Evaluate(shadowTextJS, &shadowText),
		chromedp.Evaluate(openContactModalJS, nil),
		chromedp.Sleep(2*time.Second),
		chromedp.Evaluate(`document.body ? document.body.innerText : ""`, &modalText),
	)
	if err != nil {
		return nil, err
	}

	var cands []candidate.Candidate
	cands = append(cands, candidate.Extract(pageText, candidate.PageText)...)
	cands = append(cands, candidate.Extract(sectionText, candidate.SectionText)...)
	cands = append(cands, candidate.Extract(shadowText, candidate.ShadowDOM)...)
	// Only count modal text that was not already visible on the page.
	if modalText != pageText {
		cands = append(cands, candidate.Extract(modalText, candidate.Modal)...)
	}

	interceptMu.Lock()
	api := intercepted.String()
	interceptMu.Unlock()
	cands = append(cands, candidate.Extract(api, candidate.NetworkIntercept)...)

	return cands, nil
}

// listenForAPIResponses captures the bodies of API responses as the page
// loads them. Bodies are fetched asynchronously because the event handler
// must not block the browser event loop.
func (s *BrowserSource) listenForAPIResponses(ctx context.Context, mu *sync.Mutex, out *strings.Builder) {
	c := chromedp.FromContext(ctx)

	chromedp.ListenTarget(ctx, func(ev any) {
		resp, ok := ev.(*network.EventResponseReceived)
		if !ok || resp.Response.Status != 200 {
			return
		}
		url := resp.Response.URL
		if !containsAny(url, apiPathMarkers) {
			return
		}

		requestID := resp.RequestID
		go func() {
			body, err := network.GetResponseBody(requestID).Do(cdp.WithExecutor(ctx, c.Target))
			if err != nil {
				s.logger.Debug("failed to read intercepted response", "url", url, "error", err)
				return
			}
			mu.Lock()
			out.Write(body)
			out.WriteByte('\n')
			mu.Unlock()
			s.logger.Debug("intercepted API response", "url", url, "bytes", len(body))
		}()
	})
}

func containsAny(s string, subs []string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}
