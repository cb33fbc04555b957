package dsl

import (
	"fmt"
	"io"
	"strconv"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
)

var (
	posterLexer = lexer.MustSimple([]lexer.SimpleRule{
		{Name: "Whitespace", Pattern: `[ \t\r]+`},
		{Name: "Newline", Pattern: `\n+`},
		{Name: "BlockComment", Pattern: `/\*[^*]*\*+(?:[^/*][^*]*\*+)*/`},
		{Name: "LineComment", Pattern: `//[^\n]*`},
		{Name: "HashComment", Pattern: `#[^\n]*`},
		{Name: "Number", Pattern: `(?:\d+\.\d+|\d+)(?:pt|mm|cm|in)?`},
		{Name: "String", Pattern: `"(?:\\.|[^"])*"`},
		{Name: "Ident", Pattern: `[A-Za-z_][A-Za-z0-9_-]*`},
		{Name: "Symbol", Pattern: `[][(),.=+\-*/%<>!?;:]`},
		{Name: "LBrace", Pattern: `{`},
		{Name: "RBrace", Pattern: `}`},
	})

	posterParser = participle.MustBuild[Document](
		participle.Lexer(posterLexer),
		participle.Elide("Whitespace", "LineComment", "BlockComment", "HashComment"),
	)
)

// Document is the root AST node for a .poster file.
type Document struct {
	Pos    lexer.Position `parser:"" json:"-"`
	Title  StringLiteral  `parser:"Newline* 'poster' @String"`
	Blocks []*Block       `parser:"Newline* '{' Newline* ( @@ ( ';' | Newline )* )* '}' Newline*"`
}

// Block is one top-level declaration inside the poster body.
type Block struct {
	Meta    *MetaBlock    `parser:"  @@"`
	Page    *PageBlock    `parser:"| @@"`
	Type    *TypeBlock    `parser:"| @@"`
	Logo    *LogoDecl     `parser:"| @@"`
	Section *SectionBlock `parser:"| @@"`
}

// MetaBlock collects document metadata assignments (subtitle, authors,
// affiliations, theme, footer).
type MetaBlock struct {
	Entries []*Assignment `parser:"'meta' Newline* '{' Newline* ( @@ ( ';' | Newline )* )* '}'"`
}

// PageBlock declares the page size and optionally the column grid.
type PageBlock struct {
	Width   string        `parser:"'page' @Number"`
	Height  string        `parser:"@Number"`
	Entries []*Assignment `parser:"( Newline* '{' Newline* ( @@ ( ';' | Newline )* )* '}' )?"`
}

// TypeBlock overrides document typography (section-title, body,
// bullet-indent).
type TypeBlock struct {
	Entries []*Assignment `parser:"'type' Newline* '{' Newline* ( @@ ( ';' | Newline )* )* '}'"`
}

// LogoDecl adds one logo image to the title band, in declaration order.
type LogoDecl struct {
	Path StringLiteral `parser:"'logo' @String"`
}

// SectionBlock is one poster section: bare strings are body
// paragraphs, bullet and image items keep their declaration order.
type SectionBlock struct {
	Title StringLiteral  `parser:"'section' @String"`
	Items []*SectionItem `parser:"Newline* '{' Newline* ( @@ ( ';' | Newline )* )* '}'"`
}

// SectionItem is a single statement within a section block.
type SectionItem struct {
	Bullet *StringLiteral `parser:"  'bullet' @String"`
	Image  *ImageDecl     `parser:"| @@"`
	Para   *StringLiteral `parser:"| @String"`
}

// ImageDecl references an image with an optional caption.
type ImageDecl struct {
	Path    StringLiteral  `parser:"'image' @String"`
	Caption *StringLiteral `parser:"( 'caption' @String )?"`
}

// Assignment uses colon syntax (key: value).
type Assignment struct {
	Key   string `parser:"@Ident"`
	Value *Value `parser:"':' Newline* @@"`
}

// Value is a scalar property value.
type Value struct {
	String *StringLiteral `parser:"  @String"`
	Number *string        `parser:"| @Number"`
	Ident  *string        `parser:"| @Ident"`
}

// Text returns the raw textual form of a value.
func (v *Value) Text() string {
	switch {
	case v == nil:
		return ""
	case v.String != nil:
		return string(*v.String)
	case v.Number != nil:
		return *v.Number
	case v.Ident != nil:
		return *v.Ident
	default:
		return ""
	}
}

// Int parses the value as an integer, returning ok=false when it is
// not a plain number.
func (v *Value) Int() (int, bool) {
	if v == nil || v.Number == nil {
		return 0, false
	}
	n, err := strconv.Atoi(*v.Number)
	if err != nil {
		return 0, false
	}
	return n, true
}

// StringLiteral unquotes Go-style strings on capture.
type StringLiteral string

// Capture implements participle.Capture.
func (s *StringLiteral) Capture(values []string) error {
	if len(values) == 0 {
		return fmt.Errorf("string literal capture requires value")
	}
	val, err := strconv.Unquote(values[0])
	if err != nil {
		return err
	}
	*s = StringLiteral(val)
	return nil
}

// Parse parses poster DSL content from an io.Reader.
func Parse(r io.Reader) (*Document, error) {
	return posterParser.Parse("", r)
}

// ParseString parses poster DSL content from a string.
func ParseString(input string) (*Document, error) {
	return posterParser.ParseString("", input)
}
