package services

import (
	"context"

	"github.com/chromedp/cdproto/page"
	"github.com/chromedp/chromedp"
)

// A4 with the centre's filing margins (20mm top/bottom, 15mm sides),
// expressed in inches for the CDP print call.
const (
	pageWidthInches      = 8.27
	pageHeightInches     = 11.69
	marginTopBottomInches = 0.79
	marginLeftRightInches = 0.59
)

// RenderPDF flattens the rendered report HTML into a PDF through a
// headless browser.
func RenderPDF(ctx context.Context, htmlContent string) ([]byte, error) {
	ctx, cancel := chromedp.NewContext(ctx)
	defer cancel()

	var pdfBuffer []byte
	err := chromedp.Run(ctx,
		chromedp.Navigate("about:blank"),
		chromedp.ActionFunc(func(ctx context.Context) error {
			frameTree, err := page.GetFrameTree().Do(ctx)
			if err != nil {
				return err
			}
			return page.SetDocumentContent(frameTree.Frame.ID, htmlContent).Do(ctx)
		}),
		chromedp.ActionFunc(func(ctx context.Context) error {
			pdf, _, err := page.PrintToPDF().
				WithPrintBackground(true).
				WithPaperWidth(pageWidthInches).
				WithPaperHeight(pageHeightInches).
				WithMarginTop(marginTopBottomInches).
				WithMarginBottom(marginTopBottomInches).
				WithMarginLeft(marginLeftRightInches).
				WithMarginRight(marginLeftRightInches).
				Do(ctx)
			if err != nil {
				return err
			}
			pdfBuffer = pdf
			return nil
		}),
	)
	if err != nil {
		return nil, err
	}
	return pdfBuffer, nil
}
