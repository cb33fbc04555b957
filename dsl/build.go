package dsl

import (
	"fmt"
	"strings"

	"github.com/ByLCY/affiche/layout"
)

// BuildContent converts a parsed poster document into the content
// record the layout engine consumes, applying the same defaults as the
// JSON path. Unknown assignment keys are ignored.
func BuildContent(doc *Document) (*layout.Content, error) {
	if doc == nil {
		return nil, fmt.Errorf("dsl: document is empty")
	}
	c := layout.DefaultContent()
	c.Title = string(doc.Title)

	for _, b := range doc.Blocks {
		switch {
		case b.Meta != nil:
			applyMeta(c, b.Meta.Entries)
		case b.Page != nil:
			if err := applyPage(c, b.Page); err != nil {
				return nil, err
			}
		case b.Type != nil:
			applyType(c, b.Type.Entries)
		case b.Logo != nil:
			c.Logos = append(c.Logos, string(b.Logo.Path))
		case b.Section != nil:
			c.Sections = append(c.Sections, buildSection(b.Section))
		}
	}
	return c, nil
}

func applyMeta(c *layout.Content, entries []*Assignment) {
	for _, e := range entries {
		switch strings.ToLower(e.Key) {
		case "subtitle":
			c.Subtitle = e.Value.Text()
		case "authors":
			c.Authors = e.Value.Text()
		case "affiliations":
			c.Affiliations = e.Value.Text()
		case "theme":
			c.Theme = layout.Theme(strings.ToLower(e.Value.Text()))
		case "footer":
			c.Footer = e.Value.Text()
		}
	}
}

func applyPage(c *layout.Content, page *PageBlock) error {
	w := layout.ParseLength(page.Width).WithDefaultUnit(layout.UnitMM)
	h := layout.ParseLength(page.Height).WithDefaultUnit(layout.UnitMM)
	if w.ToPT() <= 0 || h.ToPT() <= 0 {
		return fmt.Errorf("dsl: invalid page size %q x %q", page.Width, page.Height)
	}
	c.PageWidth = w
	c.PageHeight = h

	for _, e := range page.Entries {
		switch strings.ToLower(e.Key) {
		case "columns":
			if n, ok := e.Value.Int(); ok {
				c.Geometry.Columns = n
			}
		case "margin":
			if l := pageLength(e.Value); !l.IsZero() {
				c.Geometry.Margin = l
			}
		case "gutter":
			if l := pageLength(e.Value); !l.IsZero() {
				c.Geometry.Gutter = l
			}
		case "titleband":
			if l := pageLength(e.Value); !l.IsZero() {
				c.Geometry.TitleBand = l
			}
		}
	}
	return nil
}

func applyType(c *layout.Content, entries []*Assignment) {
	for _, e := range entries {
		switch strings.ToLower(e.Key) {
		case "section-title":
			if size := fontSize(e.Value); size > 0 {
				c.Typography.SectionTitleSize = size
			}
		case "body":
			if size := fontSize(e.Value); size > 0 {
				c.Typography.BodySize = size
			}
		case "bullet-indent":
			if l := pageLength(e.Value); !l.IsZero() {
				c.Typography.BulletIndent = l
			}
		}
	}
}

func buildSection(block *SectionBlock) layout.Section {
	sec := layout.Section{Title: string(block.Title)}
	var paras []string
	for _, item := range block.Items {
		switch {
		case item.Bullet != nil:
			sec.Bullets = append(sec.Bullets, string(*item.Bullet))
		case item.Image != nil:
			img := layout.ImageRef{Path: string(item.Image.Path)}
			if item.Image.Caption != nil {
				img.Caption = string(*item.Image.Caption)
			}
			sec.Images = append(sec.Images, img)
		case item.Para != nil:
			paras = append(paras, string(*item.Para))
		}
	}
	// A blank line between paragraphs turns into the paragraph gap
	// during wrapping.
	sec.Body = strings.Join(paras, "\n\n")
	return sec
}

// pageLength parses a distance value, defaulting bare numbers to mm.
func pageLength(v *Value) layout.Length {
	return layout.ParseLength(v.Text()).WithDefaultUnit(layout.UnitMM)
}

// fontSize parses a size value in pt, defaulting bare numbers to pt.
func fontSize(v *Value) float64 {
	return layout.ParseLength(v.Text()).WithDefaultUnit(layout.UnitPT).ToPT()
}
