package layout

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/matzehuels/termgrid/pkg/element"
)

func TestNegotiateHeights(t *testing.T) {
	titled := func(opts ...RequestOption) Request {
		return Panel(newFake(6, dec(element.KeyTitle, "Titled")), opts...)
	}
	plain := func(opts ...RequestOption) Request {
		return Panel(newFake(6), opts...)
	}

	tests := []struct {
		name       string
		rows       []Row
		termHeight int
		want       []int
	}{
		{
			name:       "single titled row",
			rows:       []Row{{titled(), plain()}},
			termHeight: 24,
			want:       []int{19}, // 24 - (4 + 1)
		},
		{
			name:       "single untitled row",
			rows:       []Row{{plain()}},
			termHeight: 24,
			want:       []int{20},
		},
		{
			name:       "two auto rows share evenly",
			rows:       []Row{{plain()}, {plain()}},
			termHeight: 41,
			want:       []int{16, 16}, // (41 - 1) / 2 - 4
		},
		{
			name: "fixed row settled first",
			rows: []Row{
				{plain(WithHeight(Fixed(6))), plain()},
				{titled()},
			},
			termHeight: 40,
			want:       []int{6, 24}, // 40 - (6 + 4) - 1 - 5
		},
		{
			name: "tallest fixed height wins",
			rows: []Row{
				{plain(WithHeight(Fixed(6))), plain(WithHeight(Fixed(9))), plain()},
			},
			termHeight: 40,
			want:       []int{9},
		},
		{
			name: "all fixed",
			rows: []Row{
				{plain(WithHeight(Fixed(3)))},
				{plain(WithHeight(Fixed(7)))},
			},
			termHeight: 10,
			want:       []int{3, 7},
		},
		{
			name:       "short terminal clamps to floor",
			rows:       []Row{{plain()}, {plain()}, {plain()}},
			termHeight: 12,
			want:       []int{MinCanvasHeight, MinCanvasHeight, MinCanvasHeight},
		},
		{
			name:       "empty grid",
			rows:       nil,
			termHeight: 24,
			want:       []int{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NegotiateHeights(tt.rows, tt.termHeight)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("NegotiateHeights() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestRowHeightOverhead(t *testing.T) {
	if got := rowHeightOverhead(Row{Panel(newFake(6))}); got != BaseHeightOverhead {
		t.Errorf("untitled overhead = %d, want %d", got, BaseHeightOverhead)
	}
	row := Row{Panel(newFake(6)), Panel(newFake(6), WithTitle("t"))}
	if got := rowHeightOverhead(row); got != BaseHeightOverhead+1 {
		t.Errorf("titled overhead = %d, want %d", got, BaseHeightOverhead+1)
	}
}
