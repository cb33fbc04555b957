package layout

import (
	"fmt"
	"unicode/utf8"
)

// Op kinds recorded by Recorder, in draw order.
const (
	OpFillColor = "fill-color"
	OpRect      = "rect"
	OpText      = "text"
	OpTextRight = "text-right"
	OpImage     = "image"
	OpNewPage   = "new-page"
	OpClose     = "close"
)

// Op is one recorded draw command.
type Op struct {
	Kind  string  `json:"kind"`
	X     float64 `json:"x,omitempty"`
	Y     float64 `json:"y,omitempty"`
	W     float64 `json:"w,omitempty"`
	H     float64 `json:"h,omitempty"`
	Text  string  `json:"text,omitempty"`
	Font  Font    `json:"font,omitempty"`
	Size  float64 `json:"size,omitempty"`
	Ref   string  `json:"ref,omitempty"`
	Color *Color  `json:"color,omitempty"`
}

// Recorder is a stateless-backend Renderer that captures the ordered
// draw command stream instead of painting. It backs the CLI debug
// output and the layout tests: two renders of the same content must
// record identical op sequences.
type Recorder struct {
	Ops []Op

	// Measure overrides text measurement; when nil a character-count
	// estimate is used so recording needs no font system.
	Measure func(text string, font Font, size float64) float64

	// Images supplies intrinsic sizes by reference. Resolve, when set,
	// is consulted for references not present in Images. A reference
	// neither map nor func can satisfy resolves to an error.
	Images  map[string]ImageInfo
	Resolve func(ref string) (ImageInfo, error)
}

var _ Renderer = (*Recorder)(nil)

func (r *Recorder) TextWidth(text string, font Font, size float64) float64 {
	if r.Measure != nil {
		return r.Measure(text, font, size)
	}
	return size * 0.55 * float64(utf8.RuneCountInString(text)+1)
}

func (r *Recorder) SetFillColor(c Color) {
	r.Ops = append(r.Ops, Op{Kind: OpFillColor, Color: &c})
}

func (r *Recorder) DrawRect(x, y, w, h float64) {
	r.Ops = append(r.Ops, Op{Kind: OpRect, X: x, Y: y, W: w, H: h})
}

func (r *Recorder) DrawText(x, y float64, text string, font Font, size float64) {
	r.Ops = append(r.Ops, Op{Kind: OpText, X: x, Y: y, Text: text, Font: font, Size: size})
}

func (r *Recorder) DrawTextRight(x, y float64, text string, font Font, size float64) {
	r.Ops = append(r.Ops, Op{Kind: OpTextRight, X: x, Y: y, Text: text, Font: font, Size: size})
}

func (r *Recorder) ResolveImage(ref string) (ImageInfo, error) {
	if info, ok := r.Images[ref]; ok {
		return info, nil
	}
	if r.Resolve != nil {
		return r.Resolve(ref)
	}
	return ImageInfo{}, fmt.Errorf("layout: image %q not available", ref)
}

func (r *Recorder) DrawImage(x, y, w, h float64, ref string) {
	r.Ops = append(r.Ops, Op{Kind: OpImage, X: x, Y: y, W: w, H: h, Ref: ref})
}

func (r *Recorder) NewPage() {
	r.Ops = append(r.Ops, Op{Kind: OpNewPage})
}

func (r *Recorder) Close() error {
	r.Ops = append(r.Ops, Op{Kind: OpClose})
	return nil
}

// Pages returns how many pages the recorded stream spans.
func (r *Recorder) Pages() int {
	pages := 1
	for _, op := range r.Ops {
		if op.Kind == OpNewPage {
			pages++
		}
	}
	return pages
}
