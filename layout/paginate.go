package layout

// paginator owns the column/page cursor for one render. It places
// sections at the cursor, decides after each placement whether the
// section fit, and advances columns and pages when it did not. State
// is single-owner and single-pass; nothing else mutates it.
type paginator struct {
	r   Renderer
	f   frame
	typ Typography

	col  int // 0-based, always < f.columns
	page int // 0-based
	y    float64

	// onPageBreak starts a new renderer page and repaints the page
	// chrome (background and title band).
	onPageBreak func()
}

func newPaginator(r Renderer, f frame, typ Typography, onPageBreak func()) *paginator {
	return &paginator{r: r, f: f, typ: typ, y: f.top, onPageBreak: onPageBreak}
}

func (p *paginator) colX() float64 {
	return p.f.left + float64(p.col)*(p.f.colWidth+p.f.gutter)
}

// place flows sec at the current cursor. A section whose flow ends
// within the slack margin of the column bottom is treated as not
// having fit: the cursor advances to the next column (or page) and the
// same section is re-flowed once from the fresh column top. A section
// too tall even for a full column overflows past the boundary into the
// next section's space; that is the accepted policy, not a bug to
// paper over here.
func (p *paginator) place(sec *Section) {
	yAfter := flowSection(p.r, sec, p.typ, p.colX(), p.f.bottom, p.f.colWidth, p.y)
	if yAfter < p.f.bottom+columnSlack {
		p.advance()
		yAfter = flowSection(p.r, sec, p.typ, p.colX(), p.f.bottom, p.f.colWidth, p.y)
	}
	p.y = yAfter - sectionGap
}

// advance moves the cursor to the top of the next column, starting a
// new page when the current one has no columns left.
func (p *paginator) advance() {
	p.col++
	if p.col >= p.f.columns {
		p.col = 0
		p.page++
		if p.onPageBreak != nil {
			p.onPageBreak()
		}
	}
	p.y = p.f.top
}
