package layout

import (
	"fmt"

	"github.com/ByLCY/affiche/binding"
)

// This file defines the poster content model. All records are built
// once, validated up front, and consumed read-only by the engine.

// Font selects one of the three face slots a renderer provides.
type Font string

const (
	FontBody   Font = "body"
	FontBold   Font = "bold"
	FontItalic Font = "italic"
)

// Color holds 0-255 RGB values.
type Color struct {
	R int `json:"r"`
	G int `json:"g"`
	B int `json:"b"`
}

// Theme is a binary color mode. It selects the palette and has no
// structural effect on layout.
type Theme string

const (
	ThemeLight Theme = "light"
	ThemeDark  Theme = "dark"
)

// Palette carries the three colors a theme resolves to.
type Palette struct {
	Background Color
	Band       Color
	Foreground Color
}

// Palette resolves the theme colors. Unknown themes fall back to light.
func (t Theme) Palette() Palette {
	if t == ThemeDark {
		return Palette{
			Background: Color{R: 0, G: 0, B: 0},
			Band:       Color{R: 169, G: 169, B: 169},
			Foreground: Color{R: 245, G: 245, B: 245},
		}
	}
	return Palette{
		Background: Color{R: 255, G: 255, B: 255},
		Band:       Color{R: 245, G: 245, B: 245},
		Foreground: Color{R: 0, G: 0, B: 0},
	}
}

// Geometry describes the column grid of a page: margin, gutter and the
// fixed-height title band at the top.
type Geometry struct {
	Columns   int    `json:"columns"`
	Margin    Length `json:"margin"`
	Gutter    Length `json:"gutter"`
	TitleBand Length `json:"titleBand"`
}

// Typography holds the document-wide font sizes in pt. The caption
// size is derived from the body size.
type Typography struct {
	SectionTitleSize float64 `json:"sectionTitleSize"`
	BodySize         float64 `json:"bodySize"`
	BulletIndent     Length  `json:"bulletIndent"`
}

// CaptionSize derives the caption size from the body size, clamped to
// a readable minimum.
func (t Typography) CaptionSize() float64 {
	size := float64(int(t.BodySize * 0.7))
	if size < captionMinSize {
		size = captionMinSize
	}
	return size
}

// LineHeight is the vertical advance for one body line.
func (t Typography) LineHeight() float64 {
	return t.BodySize * lineHeightFactor
}

// ImageRef points at image content by path. Resolution is the
// renderer's concern; an unreadable image is skipped, never fatal.
type ImageRef struct {
	Path    string `json:"path"`
	Caption string `json:"caption,omitempty"`
}

// Section is one titled content block: body text (explicit line breaks
// separate paragraphs), bullets and images, rendered strictly in order.
type Section struct {
	Title   string     `json:"title"`
	Body    string     `json:"body"`
	Bullets []string   `json:"bullets,omitempty"`
	Images  []ImageRef `json:"images,omitempty"`
}

// Content is the full poster description, immutable for the duration
// of one render.
type Content struct {
	PageWidth    Length     `json:"pageWidth"`
	PageHeight   Length     `json:"pageHeight"`
	Title        string     `json:"title"`
	Subtitle     string     `json:"subtitle,omitempty"`
	Authors      string     `json:"authors,omitempty"`
	Affiliations string     `json:"affiliations,omitempty"`
	Logos        []string   `json:"logos,omitempty"`
	Theme        Theme      `json:"theme,omitempty"`
	Geometry     Geometry   `json:"geometry"`
	Typography   Typography `json:"typography"`
	Sections     []Section  `json:"sections"`
	Footer       string     `json:"footer,omitempty"`
}

// Validate rejects malformed content before any drawing begins.
// Violations here are configuration errors, not runtime failures.
func (c *Content) Validate() error {
	if c.Title == "" {
		return fmt.Errorf("layout: content is missing a title")
	}
	if c.PageWidth.ToPT() <= 0 || c.PageHeight.ToPT() <= 0 {
		return fmt.Errorf("layout: page size must be positive")
	}
	if c.Geometry.Columns < 1 {
		return fmt.Errorf("layout: column count must be at least 1, got %d", c.Geometry.Columns)
	}
	if c.Typography.BodySize <= 0 || c.Typography.SectionTitleSize <= 0 {
		return fmt.Errorf("layout: font sizes must be positive")
	}
	f := c.frame()
	if f.colWidth <= 0 {
		return fmt.Errorf("layout: %d columns with margin %g and gutter %g leave no column width on a %g wide page",
			c.Geometry.Columns, f.margin, f.gutter, f.w)
	}
	if f.top <= f.bottom {
		return fmt.Errorf("layout: title band and margins leave no content area")
	}
	return nil
}

// Bind returns a copy of the content with every ${path.to.value}
// placeholder interpolated from data. A nil data document returns the
// receiver unchanged.
func (c *Content) Bind(data any) *Content {
	if data == nil {
		return c
	}
	out := *c
	out.Title = binding.Interpolate(c.Title, data)
	out.Subtitle = binding.Interpolate(c.Subtitle, data)
	out.Authors = binding.Interpolate(c.Authors, data)
	out.Affiliations = binding.Interpolate(c.Affiliations, data)
	out.Footer = binding.Interpolate(c.Footer, data)
	if len(c.Logos) > 0 {
		out.Logos = make([]string, len(c.Logos))
		for i, logo := range c.Logos {
			out.Logos[i] = binding.Interpolate(logo, data)
		}
	}
	if len(c.Sections) > 0 {
		out.Sections = make([]Section, len(c.Sections))
		for i, sec := range c.Sections {
			bound := sec
			bound.Title = binding.Interpolate(sec.Title, data)
			bound.Body = binding.Interpolate(sec.Body, data)
			if len(sec.Bullets) > 0 {
				bound.Bullets = make([]string, len(sec.Bullets))
				for j, b := range sec.Bullets {
					bound.Bullets[j] = binding.Interpolate(b, data)
				}
			}
			if len(sec.Images) > 0 {
				bound.Images = make([]ImageRef, len(sec.Images))
				for j, img := range sec.Images {
					bound.Images[j] = ImageRef{
						Path:    binding.Interpolate(img.Path, data),
						Caption: binding.Interpolate(img.Caption, data),
					}
				}
			}
			out.Sections[i] = bound
		}
	}
	return &out
}

// frame is the page geometry resolved to pt: the content area between
// the title band and the bottom margin, split into columns.
type frame struct {
	w, h     float64
	margin   float64
	band     float64
	gutter   float64
	left     float64
	right    float64
	top      float64
	bottom   float64
	colWidth float64
	columns  int
}

func (c *Content) frame() frame {
	f := frame{
		w:       c.PageWidth.ToPT(),
		h:       c.PageHeight.ToPT(),
		margin:  c.Geometry.Margin.ToPT(),
		band:    c.Geometry.TitleBand.ToPT(),
		gutter:  c.Geometry.Gutter.ToPT(),
		columns: c.Geometry.Columns,
	}
	f.left = f.margin
	f.right = f.w - f.margin
	f.bottom = f.margin
	f.top = f.h - f.band - f.margin
	usable := f.right - f.left
	f.colWidth = (usable - float64(f.columns-1)*f.gutter) / float64(f.columns)
	return f
}
