package canvasrenderer

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"os"
	"path/filepath"
	"sync"
	"unicode/utf8"

	"github.com/tdewolff/canvas"
	"github.com/tdewolff/canvas/renderers/pdf"

	"github.com/ByLCY/affiche/layout"
	"github.com/ByLCY/affiche/renderer"
)

// systemFontQuery is tried when no font resource was injected for a
// face slot.
const systemFontQuery = "Helvetica, Arial, DejaVu Sans, sans-serif"

// Renderer draws the poster via github.com/tdewolff/canvas and encodes
// the pages as PDF on Close. The engine hands it pt coordinates with a
// bottom-left origin; canvas natively uses the same orientation in mm,
// so only the unit changes at this boundary.
type Renderer struct {
	baseDir      string
	pageW, pageH float64 // mm

	pages []*canvas.Canvas
	ctx   *canvas.Context
	fill  color.Color

	fontRes map[layout.Font]Resource
	fontMu  sync.Mutex
	faces   map[layout.Font]*fontEntry

	imageBlobs map[string][]byte
	images     map[string]image.Image

	out    []byte
	closed bool
}

var _ renderer.Renderer = (*Renderer)(nil)

type fontEntry struct {
	family *canvas.FontFamily
	style  canvas.FontStyle
	err    error
}

// Resource can be provided either by Bytes or by Path.
type Resource struct {
	Bytes []byte
	Path  string
}

// Options configures the canvas renderer. PageWidth and PageHeight are
// in pt, matching the engine's unit.
type Options struct {
	BaseDir    string
	PageWidth  float64
	PageHeight float64
	Fonts      map[layout.Font]Resource // per face slot; system fonts otherwise
	Images     map[string][]byte        // preloaded image blobs by reference
}

// NewRenderer creates a canvas-backed renderer with the first page
// already open.
func NewRenderer(opts Options) *Renderer {
	r := &Renderer{
		baseDir:    opts.BaseDir,
		pageW:      opts.PageWidth * layout.PtToMm,
		pageH:      opts.PageHeight * layout.PtToMm,
		fill:       canvas.Black,
		fontRes:    map[layout.Font]Resource{},
		faces:      map[layout.Font]*fontEntry{},
		imageBlobs: map[string][]byte{},
		images:     map[string]image.Image{},
	}
	for slot, res := range opts.Fonts {
		r.fontRes[slot] = res
	}
	for name, blob := range opts.Images {
		if name != "" && len(blob) > 0 {
			r.imageBlobs[name] = blob
		}
	}
	r.openPage()
	return r
}

func (r *Renderer) openPage() {
	c := canvas.New(r.pageW, r.pageH)
	r.pages = append(r.pages, c)
	r.ctx = canvas.NewContext(c)
}

// TextWidth measures text in pt. When the face cannot be loaded the
// width falls back to a character-count estimate so layout can still
// proceed; the draw calls for that face are skipped later.
func (r *Renderer) TextWidth(text string, font layout.Font, size float64) float64 {
	face, err := r.face(font, size)
	if err != nil {
		return size * 0.55 * float64(utf8.RuneCountInString(text)+1)
	}
	return face.TextWidth(text) * layout.MmToPt
}

func (r *Renderer) SetFillColor(c layout.Color) {
	r.fill = canvas.RGBA(float64(c.R)/255.0, float64(c.G)/255.0, float64(c.B)/255.0, 1.0)
}

func (r *Renderer) DrawRect(x, y, w, h float64) {
	r.ctx.SetFillColor(r.fill)
	r.ctx.SetStrokeColor(canvas.Transparent)
	r.ctx.DrawPath(x*layout.PtToMm, y*layout.PtToMm, canvas.Rectangle(w*layout.PtToMm, h*layout.PtToMm))
}

func (r *Renderer) DrawText(x, y float64, text string, font layout.Font, size float64) {
	r.drawText(x, y, text, font, size, canvas.Left)
}

func (r *Renderer) DrawTextRight(x, y float64, text string, font layout.Font, size float64) {
	r.drawText(x, y, text, font, size, canvas.Right)
}

func (r *Renderer) drawText(x, y float64, text string, font layout.Font, size float64, align canvas.TextAlign) {
	if text == "" {
		return
	}
	face, err := r.face(font, size)
	if err != nil {
		return
	}
	line := canvas.NewTextLine(face, text, align)
	r.ctx.DrawText(x*layout.PtToMm, y*layout.PtToMm, line)
}

// ResolveImage decodes the referenced image once and reports its pixel
// size. Failures are returned to the engine, which skips the image.
func (r *Renderer) ResolveImage(ref string) (layout.ImageInfo, error) {
	img, err := r.loadImage(ref)
	if err != nil {
		return layout.ImageInfo{}, err
	}
	b := img.Bounds()
	return layout.ImageInfo{Width: float64(b.Dx()), Height: float64(b.Dy())}, nil
}

func (r *Renderer) DrawImage(x, y, w, h float64, ref string) {
	img, err := r.loadImage(ref)
	if err != nil {
		return
	}
	wMM := w * layout.PtToMm
	if wMM <= 0 {
		return
	}
	dpmm := float64(img.Bounds().Dx()) / wMM
	r.ctx.DrawImage(x*layout.PtToMm, y*layout.PtToMm, img, canvas.DPMM(dpmm))
}

func (r *Renderer) loadImage(ref string) (image.Image, error) {
	if ref == "" {
		return nil, fmt.Errorf("canvas: empty image reference")
	}
	if img, ok := r.images[ref]; ok {
		return img, nil
	}
	var (
		img image.Image
		err error
	)
	if blob, ok := r.imageBlobs[ref]; ok {
		img, _, err = image.Decode(bytes.NewReader(blob))
		if err != nil {
			return nil, fmt.Errorf("canvas: decoding image %s: %w", ref, err)
		}
	} else {
		path := ref
		if !filepath.IsAbs(path) {
			path = filepath.Join(r.baseDir, path)
		}
		file, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("canvas: reading image %s: %w", ref, err)
		}
		img, _, err = image.Decode(file)
		file.Close()
		if err != nil {
			return nil, fmt.Errorf("canvas: decoding image %s: %w", ref, err)
		}
	}
	r.images[ref] = img
	return img, nil
}

func (r *Renderer) NewPage() {
	r.openPage()
}

// Close encodes every page as PDF. Further draw calls are invalid.
func (r *Renderer) Close() error {
	if r.closed {
		return nil
	}
	var buf bytes.Buffer
	writer := pdf.New(&buf, r.pageW, r.pageH, nil)
	for i, page := range r.pages {
		if i > 0 {
			writer.NewPage(r.pageW, r.pageH)
		}
		page.RenderTo(writer)
	}
	if err := writer.Close(); err != nil {
		return fmt.Errorf("canvas: writing PDF: %w", err)
	}
	r.out = buf.Bytes()
	r.closed = true
	return nil
}

// Bytes returns the encoded PDF after Close.
func (r *Renderer) Bytes() ([]byte, error) {
	if !r.closed {
		return nil, fmt.Errorf("canvas: renderer not closed")
	}
	return r.out, nil
}

func (r *Renderer) face(slot layout.Font, size float64) (*canvas.FontFace, error) {
	entry := r.ensureFamily(slot)
	if entry.err != nil {
		return nil, entry.err
	}
	return entry.family.Face(size, r.fill, entry.style, canvas.FontNormal), nil
}

func (r *Renderer) ensureFamily(slot layout.Font) *fontEntry {
	r.fontMu.Lock()
	defer r.fontMu.Unlock()

	if entry, ok := r.faces[slot]; ok {
		return entry
	}
	style := fontStyle(slot)
	family := canvas.NewFontFamily(string(slot))
	entry := &fontEntry{family: family, style: style}

	res := r.fontRes[slot]
	switch {
	case len(res.Bytes) > 0:
		entry.err = family.LoadFont(res.Bytes, 0, style)
	case res.Path != "":
		path := res.Path
		if !filepath.IsAbs(path) {
			path = filepath.Join(r.baseDir, path)
		}
		entry.err = family.LoadFontFile(path, style)
	default:
		entry.err = family.LoadSystemFont(systemFontQuery, style)
	}
	r.faces[slot] = entry
	return entry
}

func fontStyle(slot layout.Font) canvas.FontStyle {
	switch slot {
	case layout.FontBold:
		return canvas.FontBold
	case layout.FontItalic:
		return canvas.FontItalic
	default:
		return canvas.FontRegular
	}
}
