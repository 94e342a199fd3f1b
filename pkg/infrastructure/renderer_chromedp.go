package infrastructure

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/log"
	"github.com/chromedp/cdproto/page"
	"github.com/chromedp/cdproto/runtime"
	"github.com/chromedp/chromedp"
)

// DefaultRenderTimeout bounds one browser session when no timeout is set.
const DefaultRenderTimeout = 60 * time.Second

// ChromedpRenderer prints HTML documents to PDF with headless Chrome. Every
// call launches its own browser, so concurrent calls never share a session.
type ChromedpRenderer struct {
	execPath string
	timeout  time.Duration
	logger   *log.Logger
}

// NewChromedpRenderer returns a renderer using the Chrome binary at execPath,
// or the one chromedp finds on PATH when execPath is empty.
func NewChromedpRenderer(execPath string, timeout time.Duration, logger *log.Logger) *ChromedpRenderer {
	if timeout <= 0 {
		timeout = DefaultRenderTimeout
	}
	if logger == nil {
		logger = log.Default()
	}
	return &ChromedpRenderer{execPath: execPath, timeout: timeout, logger: logger.WithPrefix("chromedp")}
}

// RenderHTMLToPDF loads html into a blank page and prints it. The document is
// injected directly, so nothing is fetched over the network.
func (r *ChromedpRenderer) RenderHTMLToPDF(ctx context.Context, html string, opts PageOptions) ([]byte, error) {
	width, height, err := opts.PaperInches()
	if err != nil {
		return nil, err
	}
	margin := opts.MarginInches()

	allocOpts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.Flag("headless", true),
		chromedp.Flag("no-sandbox", true),
		chromedp.Flag("disable-gpu", true),
		chromedp.Flag("disable-dev-shm-usage", true),
	)
	if r.execPath != "" {
		allocOpts = append(allocOpts, chromedp.ExecPath(r.execPath))
	}

	allocCtx, cancel := chromedp.NewExecAllocator(ctx, allocOpts...)
	defer cancel()

	cctx, cancelCtx := chromedp.NewContext(allocCtx)
	defer cancelCtx()

	runCtx, cancelRun := context.WithTimeout(cctx, r.timeout)
	defer cancelRun()

	start := time.Now()
	var pdfBuf []byte
	var fontsReady bool
	err = chromedp.Run(runCtx,
		chromedp.Navigate("about:blank"),
		chromedp.ActionFunc(func(ctx context.Context) error {
			tree, err := page.GetFrameTree().Do(ctx)
			if err != nil {
				return fmt.Errorf("frame tree: %w", err)
			}
			return page.SetDocumentContent(tree.Frame.ID, html).Do(ctx)
		}),
		chromedp.WaitReady("body", chromedp.ByQuery),
		chromedp.Evaluate(`document.fonts.ready.then(() => true)`, &fontsReady,
			func(p *runtime.EvaluateParams) *runtime.EvaluateParams { return p.WithAwaitPromise(true) }),
		chromedp.ActionFunc(func(ctx context.Context) error {
			var err error
			pdfBuf, _, err = page.PrintToPDF().
				WithPrintBackground(true).
				WithPaperWidth(width).
				WithPaperHeight(height).
				WithMarginTop(margin).
				WithMarginBottom(margin).
				WithMarginLeft(margin).
				WithMarginRight(margin).
				WithPreferCSSPageSize(false).
				Do(ctx)
			return err
		}),
	)
	if err != nil {
		return nil, err
	}

	r.logger.Debug("printed pdf", "size", opts.Size, "bytes", len(pdfBuf), "took", time.Since(start).Round(time.Millisecond))
	return pdfBuf, nil
}
