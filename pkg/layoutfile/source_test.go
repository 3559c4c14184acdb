package layoutfile

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestGenerate(t *testing.T) {
	for _, src := range Sources() {
		t.Run(src, func(t *testing.T) {
			pts := Generate(src, 40, 3, 1)
			if len(pts) != 40 {
				t.Fatalf("len = %d, want 40", len(pts))
			}
			for i, pt := range pts {
				if math.IsNaN(pt.Y) || math.IsInf(pt.Y, 0) {
					t.Fatalf("point %d = %v", i, pt)
				}
			}
			if diff := cmp.Diff(pts, Generate(src, 40, 3, 1)); diff != "" {
				t.Errorf("not reproducible:\n%s", diff)
			}
		})
	}
}

func TestGeneratePeriodicBounds(t *testing.T) {
	for _, src := range []string{SourceSine, SourceCosine, SourceSquare, SourceSawtooth} {
		for _, pt := range Generate(src, 100, 7, 0) {
			if pt.Y < -1 || pt.Y > 1 {
				t.Errorf("%s: y = %v out of [-1, 1]", src, pt.Y)
			}
		}
	}
}

func TestWalkScrolls(t *testing.T) {
	a := Generate(SourceWalk, 10, 0, 42)
	b := Generate(SourceWalk, 10, 1, 42)
	if diff := cmp.Diff(a[1:], b[:9]); diff != "" {
		t.Errorf("walk did not scroll by one sample:\n%s", diff)
	}
}

func TestBars(t *testing.T) {
	got := bars(Generate(SourceSquare, 3, 0, 0), []string{"a", "b"})
	if got[0].Label != "a" || got[1].Label != "b" || got[2].Label != "3" {
		t.Errorf("labels = %q %q %q", got[0].Label, got[1].Label, got[2].Label)
	}
	for _, b := range got {
		if b.Value != 1 {
			t.Errorf("square bar value = %v, want 1", b.Value)
		}
	}
}
