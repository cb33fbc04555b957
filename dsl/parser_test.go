package dsl

import (
	"testing"

	"github.com/ByLCY/affiche/layout"
)

const samplePoster = `
poster "Scaling Gophers" {
	meta {
		subtitle: "How far does a goroutine go"
		authors: "A. Author, B. Author"
		affiliations: "Example University"
		theme: dark
		footer: "GopherCon 2026"
	}

	page 1000 600mm {
		columns: 4
		margin: 20
		gutter: 12mm
		titleband: 110
	}

	type {
		section-title: 40
		body: 24pt
		bullet-indent: 6
	}

	logo "uni.png"
	logo "lab.png"

	# sections flow in declaration order
	section "Introduction" {
		"First paragraph."
		"Second paragraph."
		bullet "fast"
		bullet "small"
	}

	section "Results" {
		"Numbers went up."
		image "fig.png" caption "Figure 1: throughput"
	}
}
`

func TestParseAndBuildContent(t *testing.T) {
	doc, err := ParseString(samplePoster)
	if err != nil {
		t.Fatalf("ParseString: %v", err)
	}
	c, err := BuildContent(doc)
	if err != nil {
		t.Fatalf("BuildContent: %v", err)
	}

	if c.Title != "Scaling Gophers" {
		t.Fatalf("title %q", c.Title)
	}
	if c.Subtitle != "How far does a goroutine go" || c.Authors != "A. Author, B. Author" {
		t.Fatalf("meta not applied: %+v", c)
	}
	if c.Theme != layout.ThemeDark {
		t.Fatalf("theme %q", c.Theme)
	}
	if c.Footer != "GopherCon 2026" {
		t.Fatalf("footer %q", c.Footer)
	}

	if c.PageWidth != layout.MM(1000) || c.PageHeight != layout.MM(600) {
		t.Fatalf("page size %+v x %+v", c.PageWidth, c.PageHeight)
	}
	if c.Geometry.Columns != 4 || c.Geometry.Margin != layout.MM(20) || c.Geometry.Gutter != layout.MM(12) || c.Geometry.TitleBand != layout.MM(110) {
		t.Fatalf("geometry %+v", c.Geometry)
	}
	if c.Typography.SectionTitleSize != 40 || c.Typography.BodySize != 24 || c.Typography.BulletIndent != layout.MM(6) {
		t.Fatalf("typography %+v", c.Typography)
	}
	if len(c.Logos) != 2 || c.Logos[0] != "uni.png" {
		t.Fatalf("logos %v", c.Logos)
	}

	if len(c.Sections) != 2 {
		t.Fatalf("sections %d", len(c.Sections))
	}
	intro := c.Sections[0]
	if intro.Title != "Introduction" {
		t.Fatalf("section title %q", intro.Title)
	}
	if intro.Body != "First paragraph.\n\nSecond paragraph." {
		t.Fatalf("paragraphs not joined with a blank line: %q", intro.Body)
	}
	if len(intro.Bullets) != 2 || intro.Bullets[1] != "small" {
		t.Fatalf("bullets %v", intro.Bullets)
	}
	results := c.Sections[1]
	if len(results.Images) != 1 {
		t.Fatalf("images %+v", results.Images)
	}
	if img := results.Images[0]; img.Path != "fig.png" || img.Caption != "Figure 1: throughput" {
		t.Fatalf("image %+v", img)
	}
}

func TestParseMinimalPoster(t *testing.T) {
	doc, err := ParseString(`poster "Tiny" {}`)
	if err != nil {
		t.Fatalf("ParseString: %v", err)
	}
	c, err := BuildContent(doc)
	if err != nil {
		t.Fatalf("BuildContent: %v", err)
	}
	if c.Title != "Tiny" {
		t.Fatalf("title %q", c.Title)
	}
	// everything else keeps the defaults
	if c.Geometry.Columns != 3 || c.PageWidth != layout.MM(1800) {
		t.Fatalf("defaults not applied: %+v", c)
	}
}

func TestParseComments(t *testing.T) {
	src := `
poster "Commented" {
	// line comment
	# hash comment
	/* block
	   comment */
	section "S" {
		"body" // trailing
	}
}
`
	doc, err := ParseString(src)
	if err != nil {
		t.Fatalf("ParseString: %v", err)
	}
	if len(doc.Blocks) != 1 || doc.Blocks[0].Section == nil {
		t.Fatalf("blocks %+v", doc.Blocks)
	}
}

func TestParseRejectsGarbage(t *testing.T) {
	for _, src := range []string{
		``,
		`poster {`,
		`poster "X" { section }`,
		`poster "X" { page abc def }`,
	} {
		if _, err := ParseString(src); err == nil {
			t.Errorf("ParseString(%q) should fail", src)
		}
	}
}

func TestBuildContentRejectsBadPageSize(t *testing.T) {
	doc, err := ParseString(`poster "X" { page 0 600 }`)
	if err != nil {
		t.Fatalf("ParseString: %v", err)
	}
	if _, err := BuildContent(doc); err == nil {
		t.Fatalf("zero page width should be rejected")
	}
}

func TestBuildContentNilDocument(t *testing.T) {
	if _, err := BuildContent(nil); err == nil {
		t.Fatalf("nil document should be rejected")
	}
}
