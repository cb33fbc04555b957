package layout

import (
	"encoding/json"
	"fmt"
	"io"
)

// JSON content description. The schema mirrors the classic poster
// description format: page size and layout distances in mm, font
// sizes in pt, sections in render order.
//
//	{
//	  "page_mm": [1800, 1200],
//	  "title": "...", "subtitle": "...", "authors": "...",
//	  "affiliations": "...", "logos": ["acme.png"],
//	  "theme": "light",
//	  "layout": {"columns": 3, "margins_mm": 25, "gutter_mm": 16,
//	             "titleband_mm": 120, "section_title_size": 44,
//	             "body_size": 28, "bullet_indent_mm": 8},
//	  "sections": [{"title": "...", "body": "...",
//	                "bullets": ["..."],
//	                "images": [{"path": "fig.png", "caption": "..."}]}],
//	  "footer": "..."
//	}

type contentJSON struct {
	PageMM       []float64     `json:"page_mm"`
	Title        string        `json:"title"`
	Subtitle     string        `json:"subtitle"`
	Authors      string        `json:"authors"`
	Affiliations string        `json:"affiliations"`
	Logos        []string      `json:"logos"`
	Theme        string        `json:"theme"`
	Layout       *gridJSON     `json:"layout"`
	Sections     []sectionJSON `json:"sections"`
	Footer       string        `json:"footer"`
}

type gridJSON struct {
	Columns          *int     `json:"columns"`
	MarginsMM        *float64 `json:"margins_mm"`
	GutterMM         *float64 `json:"gutter_mm"`
	TitleBandMM      *float64 `json:"titleband_mm"`
	SectionTitleSize *float64 `json:"section_title_size"`
	BodySize         *float64 `json:"body_size"`
	BulletIndentMM   *float64 `json:"bullet_indent_mm"`
}

type sectionJSON struct {
	Title   string      `json:"title"`
	Body    string      `json:"body"`
	Bullets []string    `json:"bullets"`
	Images  []imageJSON `json:"images"`
}

type imageJSON struct {
	Path    string `json:"path"`
	Caption string `json:"caption"`
}

// DefaultContent returns a content skeleton with the default page
// size, grid and typography applied.
func DefaultContent() *Content {
	return &Content{
		PageWidth:  MM(1800),
		PageHeight: MM(1200),
		Theme:      ThemeLight,
		Geometry: Geometry{
			Columns:   3,
			Margin:    MM(25),
			Gutter:    MM(16),
			TitleBand: MM(120),
		},
		Typography: Typography{
			SectionTitleSize: 44,
			BodySize:         28,
			BulletIndent:     MM(8),
		},
	}
}

// DecodeContent reads a JSON content description, applying the
// defaults for every omitted field. The result is not yet validated;
// Render does that before drawing.
func DecodeContent(r io.Reader) (*Content, error) {
	var raw contentJSON
	dec := json.NewDecoder(r)
	if err := dec.Decode(&raw); err != nil {
		return nil, fmt.Errorf("layout: decoding content: %w", err)
	}

	c := DefaultContent()
	if len(raw.PageMM) >= 2 {
		c.PageWidth = MM(raw.PageMM[0])
		c.PageHeight = MM(raw.PageMM[1])
	}
	c.Title = raw.Title
	c.Subtitle = raw.Subtitle
	c.Authors = raw.Authors
	c.Affiliations = raw.Affiliations
	c.Logos = raw.Logos
	c.Footer = raw.Footer
	if raw.Theme != "" {
		c.Theme = Theme(raw.Theme)
	}

	if g := raw.Layout; g != nil {
		if g.Columns != nil {
			c.Geometry.Columns = *g.Columns
		}
		if g.MarginsMM != nil {
			c.Geometry.Margin = MM(*g.MarginsMM)
		}
		if g.GutterMM != nil {
			c.Geometry.Gutter = MM(*g.GutterMM)
		}
		if g.TitleBandMM != nil {
			c.Geometry.TitleBand = MM(*g.TitleBandMM)
		}
		if g.SectionTitleSize != nil {
			c.Typography.SectionTitleSize = *g.SectionTitleSize
		}
		if g.BodySize != nil {
			c.Typography.BodySize = *g.BodySize
		}
		if g.BulletIndentMM != nil {
			c.Typography.BulletIndent = MM(*g.BulletIndentMM)
		}
	}

	for _, sec := range raw.Sections {
		s := Section{Title: sec.Title, Body: sec.Body, Bullets: sec.Bullets}
		for _, img := range sec.Images {
			s.Images = append(s.Images, ImageRef{Path: img.Path, Caption: img.Caption})
		}
		c.Sections = append(c.Sections, s)
	}
	return c, nil
}
