package layout

import "fmt"

// Fixed layout constants in pt. Band drops are measured in mm from the
// bottom edge of the title band, matching the page geometry inputs.
const (
	titleStartSize   = 72
	titleMinSize     = 36
	titleSizeStep    = 2
	subtitleSize     = 32
	authorsSize      = 26
	affiliationsSize = 24
	footerSize       = 20

	titleGap           = 8 // below a section title
	sectionGap         = 18
	columnSlack        = 60
	lineHeightFactor   = 1.25
	paragraphGapFactor = 0.6

	logoHeightCap  = 70
	logoWidthCap   = 2000
	logoSpacing    = 10
	imageHeightCap = 4000
	imageGap       = 6
	imageBottomPad = 24
	captionAdvance = 18
	captionMinSize = 16

	affiliationsDrop = 14
	footerDrop       = 10

	bandTitleRiseMM    = 30
	bandSubtitleRiseMM = 55
	bandAuthorsRiseMM  = 85
	bandLogoRiseMM     = 20
)

// Measurer is the text measurement capability the wrapping and fitting
// code depends on. Widths are returned in pt.
type Measurer interface {
	TextWidth(text string, font Font, size float64) float64
}

// ImageInfo reports the intrinsic size of a resolved image, in pixels.
type ImageInfo struct {
	Width  float64
	Height float64
}

// Renderer is the draw capability the engine writes to. The coordinate
// origin is the bottom-left corner of the page with y increasing
// upward; text anchors at the baseline. The fill color is explicit
// state set before each dependent draw call. A failed ResolveImage is
// the renderer's way of saying "skip this image" and is never treated
// as fatal by the engine.
type Renderer interface {
	Measurer
	SetFillColor(c Color)
	DrawRect(x, y, w, h float64)
	DrawText(x, y float64, text string, font Font, size float64)
	DrawTextRight(x, y float64, text string, font Font, size float64)
	ResolveImage(ref string) (ImageInfo, error)
	DrawImage(x, y, w, h float64, ref string)
	NewPage()
	Close() error
}

// Render lays the poster out onto r: background and title band first,
// then every section flowed through the column grid, then the footer
// on the last page. Only configuration errors are returned; overflow
// and unreadable images are absorbed by the flow itself.
func Render(c *Content, r Renderer) error {
	if err := c.Validate(); err != nil {
		return err
	}
	f := c.frame()
	pal := c.Theme.Palette()

	paintChrome := func() {
		r.SetFillColor(pal.Background)
		r.DrawRect(0, 0, f.w, f.h)
		drawTitleBand(r, c, f, pal)
	}
	paintChrome()

	pg := newPaginator(r, f, c.Typography, func() {
		r.NewPage()
		paintChrome()
	})
	for i := range c.Sections {
		pg.place(&c.Sections[i])
	}

	if c.Footer != "" {
		r.SetFillColor(Color{R: 0, G: 0, B: 0})
		r.DrawTextRight(f.right, f.bottom-footerDrop, c.Footer, FontBody, footerSize)
	}
	if err := r.Close(); err != nil {
		return fmt.Errorf("layout: closing renderer: %w", err)
	}
	return nil
}

// drawTitleBand paints the band strip, the auto-fit title, subtitle,
// authorship lines and the right-aligned logo row. It is repainted on
// every page.
func drawTitleBand(r Renderer, c *Content, f frame, pal Palette) {
	r.SetFillColor(pal.Band)
	r.DrawRect(0, f.h-f.band, f.w, f.band)

	// rise converts a mm offset above the band bottom into a page y.
	rise := func(mm float64) float64 { return f.h - f.band + mm*MmToPt }

	r.SetFillColor(pal.Foreground)
	size := FitTitle(r, c.Title, FontBold, f.w-2*f.margin, titleStartSize, titleMinSize, titleSizeStep)
	r.DrawText(f.left, rise(bandTitleRiseMM), c.Title, FontBold, size)

	if c.Subtitle != "" {
		r.DrawText(f.left, rise(bandSubtitleRiseMM), c.Subtitle, FontBody, subtitleSize)
	}

	authorsY := rise(bandAuthorsRiseMM)
	r.DrawText(f.left, authorsY, c.Authors, FontBody, authorsSize)
	if c.Affiliations != "" {
		r.DrawText(f.left, authorsY-affiliationsDrop, c.Affiliations, FontItalic, affiliationsSize)
	}

	// Logos run right to left from the page margin. A logo that fails
	// to resolve is skipped without blocking the ones after it.
	x := f.right
	logoTop := rise(bandLogoRiseMM)
	for _, ref := range c.Logos {
		info, err := r.ResolveImage(ref)
		if err != nil {
			continue
		}
		w, h, err := FitImage(info.Width, info.Height, logoWidthCap, logoHeightCap)
		if err != nil {
			continue
		}
		x -= w
		r.DrawImage(x, logoTop-h, w, h, ref)
		x -= logoSpacing
	}
}
