package layout

import (
	"bytes"
	"strings"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/termgrid/pkg/element"
	"github.com/matzehuels/termgrid/pkg/errors"
)

func TestRender(t *testing.T) {
	spec := NewSpec(
		Row{Panel(newFake(6, dec(element.KeyTitle, "A"))), Panel(newFake(6))},
		Row{Panel(newFake(6), WithHeight(Fixed(3)))},
	)

	out, err := Render(spec, Size{Cols: 82, Rows: 30})
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	lines := strings.Split(out, "\n")

	// Row 0: title + borders + canvas + labels; row 1 is fixed at 3.
	// Row 0 height = 30 - (3 + 4) - 1 - 5 = 17.
	if want := (1 + 17 + 4) + (3 + 4); len(lines) != want {
		t.Errorf("got %d lines, want %d", len(lines), want)
	}
	if lines[0] != "A"+strings.Repeat(" ", 39)+"  +"+strings.Repeat("-", 38)+"+" {
		t.Errorf("first line = %q", lines[0])
	}
	for i, l := range lines {
		if w := VisibleWidth(l); w > 82 {
			t.Errorf("line %d is %d columns wide", i, w)
		}
	}
}

func TestRenderDeterministic(t *testing.T) {
	build := func() Spec {
		return NewSpec(Row{Panel(newFake(6)), Panel(newFake(2), WithWidth(Fixed(12)))})
	}
	a, err := Render(build(), Size{Cols: 100, Rows: 20})
	if err != nil {
		t.Fatal(err)
	}
	b, err := Render(build(), Size{Cols: 100, Rows: 20})
	if err != nil {
		t.Fatal(err)
	}
	if a != b {
		t.Error("Render is not deterministic")
	}

	cached, err := RenderCached(NewRenderCache(), build(), Size{Cols: 100, Rows: 20})
	if err != nil {
		t.Fatal(err)
	}
	if cached != a {
		t.Error("first cached frame differs from a stateless render")
	}
}

func TestRenderStatelessAlwaysProbes(t *testing.T) {
	rec := record(t)
	spec := NewSpec(Row{Panel(newFake(6))})
	for range 3 {
		if _, err := Render(spec, Size{Cols: 80, Rows: 24}); err != nil {
			t.Fatal(err)
		}
	}
	if rec.probes != 3 {
		t.Errorf("probes = %d, want 3", rec.probes)
	}
	if ev := rec.take(); len(ev) != 0 {
		t.Errorf("stateless render reported cache events %v", ev)
	}
}

func TestRenderDoesNotTruncate(t *testing.T) {
	spec := NewSpec(Row{Panel(newFake(6), WithWidth(Fixed(50)))})
	out, err := Render(spec, Size{Cols: 20, Rows: 24})
	if err != nil {
		t.Fatal(err)
	}
	if w := VisibleWidth(strings.Split(out, "\n")[0]); w != 56 {
		t.Errorf("width = %d, want 56", w)
	}
}

func TestRenderEmptySpec(t *testing.T) {
	out, err := Render(NewSpec(), Size{Cols: 80, Rows: 24})
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	if out != "" {
		t.Errorf("Render() = %q, want empty", out)
	}
}

func TestRenderConfigurationErrors(t *testing.T) {
	tests := []struct {
		name string
		spec Spec
		code errors.Code
	}{
		{"empty row", NewSpec(Row{}), errors.ErrCodeInvalidLayout},
		{"nil factory", NewSpec(Row{{}}), errors.ErrCodeInvalidElement},
		{"zero fixed width", NewSpec(Row{Panel(newFake(6), WithWidth(Fixed(0)))}), errors.ErrCodeInvalidPolicy},
		{"negative fixed height", NewSpec(Row{Panel(newFake(6), WithHeight(Fixed(-1)))}), errors.ErrCodeInvalidPolicy},
		{"malformed probe", NewSpec(Row{Panel(&lineFactory{})}), errors.ErrCodeInvalidElement},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rc := NewRenderCache()
			_, err := RenderCached(rc, tt.spec, Size{Cols: 80, Rows: 24})
			if err == nil {
				t.Fatal("expected error")
			}
			if !errors.Is(err, tt.code) {
				t.Errorf("error code = %q, want %q (%v)", errors.GetCode(err), tt.code, err)
			}
			if !errors.IsConfiguration(err) {
				t.Errorf("IsConfiguration(%v) = false", err)
			}
		})
	}
}

func TestRenderCachedNilCache(t *testing.T) {
	if _, err := RenderCached(nil, NewSpec(), Size{Cols: 80, Rows: 24}); err == nil {
		t.Error("expected error for nil cache")
	}
}

func TestRendererLogs(t *testing.T) {
	var buf bytes.Buffer
	logger := log.NewWithOptions(&buf, log.Options{Level: log.DebugLevel})
	r := NewRenderer(logger)

	rc := NewRenderCache(WithLogger(logger))
	if _, err := r.RenderCached(rc, NewSpec(Row{Panel(newFake(6))}), Size{Cols: 80, Rows: 24}); err != nil {
		t.Fatal(err)
	}

	out := buf.String()
	for _, want := range []string{"negotiated row width", "negotiated heights", "rendered frame", rc.ID()} {
		if !strings.Contains(out, want) {
			t.Errorf("log output missing %q:\n%s", want, out)
		}
	}
}
