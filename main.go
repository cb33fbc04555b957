package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/ByLCY/affiche/dsl"
	"github.com/ByLCY/affiche/layout"
	canvasrenderer "github.com/ByLCY/affiche/renderer/canvas"
)

func main() {
	input := flag.String("in", "examples/demo.poster", "poster description (.poster or .json)")
	output := flag.String("out", "output/poster.pdf", "PDF output path")
	debug := flag.String("debug", "", "draw command debug JSON output path")
	dataJSON := flag.String("data", "", "JSON data bound into ${...} placeholders")
	flag.Parse()

	var data any
	if *dataJSON != "" {
		if err := json.Unmarshal([]byte(*dataJSON), &data); err != nil {
			log.Fatalf("parsing data JSON: %v", err)
		}
	}

	if err := run(*input, *output, *debug, data); err != nil {
		log.Fatalf("rendering poster: %v", err)
	}
	fmt.Printf("wrote %s\n", *output)
}

// run chains loading, binding, layout and rendering.
func run(inputPath, outputPath, debugPath string, data any) error {
	content, err := loadContent(inputPath)
	if err != nil {
		return err
	}
	content = content.Bind(data)

	r := canvasrenderer.NewRenderer(canvasrenderer.Options{
		BaseDir:    filepath.Dir(inputPath),
		PageWidth:  content.PageWidth.ToPT(),
		PageHeight: content.PageHeight.ToPT(),
	})

	if debugPath != "" {
		rec := &layout.Recorder{Measure: r.TextWidth, Resolve: r.ResolveImage}
		if err := layout.Render(content, rec); err != nil {
			return err
		}
		if err := os.MkdirAll(filepath.Dir(debugPath), 0o755); err != nil {
			return fmt.Errorf("creating debug directory: %w", err)
		}
		if err := layout.WriteDebugJSON(rec, debugPath); err != nil {
			return fmt.Errorf("writing debug JSON: %w", err)
		}
	}

	if err := layout.Render(content, r); err != nil {
		return err
	}
	pdfBytes, err := r.Bytes()
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(outputPath), 0o755); err != nil {
		return fmt.Errorf("creating output directory: %w", err)
	}
	if err := os.WriteFile(outputPath, pdfBytes, 0o644); err != nil {
		return fmt.Errorf("writing PDF: %w", err)
	}
	return nil
}

func loadContent(path string) (*layout.Content, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	defer file.Close()

	if strings.EqualFold(filepath.Ext(path), ".json") {
		return layout.DecodeContent(file)
	}
	doc, err := dsl.Parse(file)
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return dsl.BuildContent(doc)
}
