package layout

import (
	"math"
	"testing"
)

// widthPerSize reports a width proportional to the font size only,
// which makes the fitting threshold explicit.
type widthPerSize struct{ factor float64 }

func (w widthPerSize) TextWidth(text string, font Font, size float64) float64 {
	return size * w.factor
}

func TestFitTitleChoosesLargestFittingSize(t *testing.T) {
	// width = size*10, so the text fits exactly at sizes <= 50.
	m := widthPerSize{factor: 10}
	got := FitTitle(m, "x", FontBold, 500, 72, 36, 2)
	if got != 50 {
		t.Fatalf("expected size 50, got %g", got)
	}
}

func TestFitTitleKeepsStartSizeWhenItFits(t *testing.T) {
	m := widthPerSize{factor: 1}
	if got := FitTitle(m, "x", FontBold, 500, 72, 36, 2); got != 72 {
		t.Fatalf("expected start size 72, got %g", got)
	}
}

func TestFitTitleStopsAtMinSize(t *testing.T) {
	m := widthPerSize{factor: 1e6}
	if got := FitTitle(m, "x", FontBold, 500, 72, 36, 2); got != 36 {
		t.Fatalf("expected min size 36 even when overflowing, got %g", got)
	}
}

func TestFitTitleDescendsInSteps(t *testing.T) {
	m := widthPerSize{factor: 10}
	got := FitTitle(m, "x", FontBold, 450, 72, 36, 2)
	if got < 36 || got > 72 {
		t.Fatalf("size %g out of [36, 72]", got)
	}
	if diff := 72 - got; math.Mod(diff, 2) != 0 {
		t.Fatalf("size %g is not reachable from 72 in steps of 2", got)
	}
	if m.TextWidth("x", FontBold, got) > 450 {
		t.Fatalf("chosen size %g still overflows", got)
	}
}

func TestFitImagePreservesAspectRatio(t *testing.T) {
	cases := []struct {
		iw, ih, maxW, maxH float64
	}{
		{800, 600, 400, 4000},
		{600, 800, 400, 4000},
		{100, 100, 2000, 70},
		{1920, 1080, 500, 500},
	}
	for _, tc := range cases {
		w, h, err := FitImage(tc.iw, tc.ih, tc.maxW, tc.maxH)
		if err != nil {
			t.Fatalf("FitImage(%g,%g,%g,%g): %v", tc.iw, tc.ih, tc.maxW, tc.maxH, err)
		}
		if w > tc.maxW+1e-9 || h > tc.maxH+1e-9 {
			t.Fatalf("FitImage(%g,%g,%g,%g) = %g x %g exceeds bounds", tc.iw, tc.ih, tc.maxW, tc.maxH, w, h)
		}
		if diff := math.Abs(w/h - tc.iw/tc.ih); diff > 1e-9 {
			t.Fatalf("aspect ratio drifted by %g for %g x %g", diff, tc.iw, tc.ih)
		}
	}
}

func TestFitImageRejectsInvalidIntrinsicSize(t *testing.T) {
	for _, dims := range [][2]float64{{0, 100}, {100, 0}, {-5, 100}, {100, -5}} {
		if _, _, err := FitImage(dims[0], dims[1], 100, 100); err == nil {
			t.Fatalf("expected error for intrinsic size %gx%g", dims[0], dims[1])
		}
	}
}
