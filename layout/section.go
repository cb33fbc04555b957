package layout

// flowSection renders one section top-down from startY: title, wrapped
// body lines, bullets, then images with captions. Before each draw the
// cursor is checked against areaBottom; the first time content would
// cross it, flow stops and the cursor is returned as-is. Callers read
// a cursor near or below areaBottom as "did not fully fit". Content
// drawn before the stop stays on the page; there is no rollback.
func flowSection(r Renderer, sec *Section, typ Typography, areaX, areaBottom, areaWidth, startY float64) float64 {
	y := startY

	r.SetFillColor(Color{R: 0, G: 0, B: 0})
	r.DrawText(areaX, y, sec.Title, FontBold, typ.SectionTitleSize)
	y -= typ.SectionTitleSize + titleGap

	lineHeight := typ.LineHeight()
	for _, line := range WrapText(r, sec.Body, FontBody, typ.BodySize, areaWidth) {
		if y < areaBottom {
			return y
		}
		if line == "" {
			// paragraph gap
			y -= lineHeight * paragraphGapFactor
			continue
		}
		r.DrawText(areaX, y, line, FontBody, typ.BodySize)
		y -= lineHeight
	}

	indent := typ.BulletIndent.ToPT()
	for _, bullet := range sec.Bullets {
		if y < areaBottom {
			return y
		}
		wrapped := WrapText(r, bullet, FontBody, typ.BodySize, areaWidth-indent)
		r.DrawText(areaX, y, "•", FontBody, typ.BodySize)
		r.DrawText(areaX+indent, y, wrapped[0], FontBody, typ.BodySize)
		y -= lineHeight
		for _, line := range wrapped[1:] {
			if y < areaBottom {
				return y
			}
			r.DrawText(areaX+indent, y, line, FontBody, typ.BodySize)
			y -= lineHeight
		}
	}

	for _, img := range sec.Images {
		if y < areaBottom {
			return y
		}
		info, err := r.ResolveImage(img.Path)
		if err != nil {
			continue
		}
		w, h, err := FitImage(info.Width, info.Height, areaWidth, imageHeightCap)
		if err != nil {
			continue
		}
		if y-h-imageBottomPad < areaBottom {
			return y
		}
		r.DrawImage(areaX, y-h, w, h, img.Path)
		y -= h + imageGap
		if img.Caption != "" {
			r.DrawText(areaX, y, img.Caption, FontItalic, typ.CaptionSize())
			y -= captionAdvance
		}
	}

	return y
}
