package renderer

import "github.com/ByLCY/affiche/layout"

// Renderer is a draw backend that additionally exposes the finished
// document, for example as PDF bytes after Close.
type Renderer interface {
	layout.Renderer
	Bytes() ([]byte, error)
}
