package layout

import "strings"

// WrapText splits text into lines no wider than maxWidth, measured
// through m. Explicit line breaks split the text into paragraphs
// first; within a paragraph, words are packed greedily. A blank
// paragraph yields a single empty line so vertical spacing intent
// survives wrapping. A word wider than maxWidth is still placed alone
// on its line; the overflow is visual, not an error.
func WrapText(m Measurer, text string, font Font, size, maxWidth float64) []string {
	var lines []string
	for _, para := range strings.Split(text, "\n") {
		para = strings.TrimSpace(para)
		if para == "" {
			lines = append(lines, "")
			continue
		}
		words := strings.Fields(para)
		line := words[0]
		for _, word := range words[1:] {
			joined := line + " " + word
			if m.TextWidth(joined, font, size) <= maxWidth {
				line = joined
				continue
			}
			lines = append(lines, line)
			line = word
		}
		lines = append(lines, line)
	}
	return lines
}
