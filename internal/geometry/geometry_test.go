package geometry

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestRect_Intersection(t *testing.T) {
	tests := []struct {
		name string
		a, b Rect
		want Rect
	}{
		{
			name: "partial overlap",
			a:    Rect{X: 0, Y: 0, Width: 100, Height: 100},
			b:    Rect{X: 50, Y: 50, Width: 100, Height: 100},
			want: Rect{X: 50, Y: 50, Width: 50, Height: 50},
		},
		{
			name: "contained",
			a:    Rect{X: 0, Y: 0, Width: 100, Height: 100},
			b:    Rect{X: 10, Y: 10, Width: 20, Height: 20},
			want: Rect{X: 10, Y: 10, Width: 20, Height: 20},
		},
		{
			name: "disjoint",
			a:    Rect{X: 0, Y: 0, Width: 10, Height: 10},
			b:    Rect{X: 20, Y: 20, Width: 10, Height: 10},
			want: Rect{},
		},
		{
			name: "edge-adjacent is empty",
			a:    Rect{X: 0, Y: 0, Width: 10, Height: 10},
			b:    Rect{X: 10, Y: 0, Width: 10, Height: 10},
			want: Rect{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.a.Intersection(tt.b); got != tt.want {
				t.Fatalf("Intersection = %+v, want %+v", got, tt.want)
			}
			// Intersection is symmetric.
			if got := tt.b.Intersection(tt.a); got != tt.want {
				t.Fatalf("reversed Intersection = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestRect_Union_EmptyOperandDoesNotGrow(t *testing.T) {
	r := Rect{X: 5, Y: 5, Width: 10, Height: 10}
	if got := r.Union(Rect{}); got != r {
		t.Fatalf("Union with empty = %+v, want %+v", got, r)
	}
	if got := (Rect{}).Union(r); got != r {
		t.Fatalf("empty Union r = %+v, want %+v", got, r)
	}
}

func TestRect_Contains(t *testing.T) {
	r := Rect{X: 10, Y: 10, Width: 10, Height: 10}

	if !r.Contains(Point{X: 10, Y: 10}) {
		t.Fatalf("origin should be contained")
	}
	// The far edge is exclusive.
	if r.Contains(Point{X: 20, Y: 10}) {
		t.Fatalf("right edge should be exclusive")
	}
	if r.Contains(Point{X: 10, Y: 20}) {
		t.Fatalf("bottom edge should be exclusive")
	}
}

func TestCoalesce_MergesOverlappingAndTouching(t *testing.T) {
	tests := []struct {
		name string
		in   []Rect
		want []Rect
	}{
		{
			name: "overlapping pair merges",
			in: []Rect{
				{X: 0, Y: 0, Width: 10, Height: 10},
				{X: 5, Y: 5, Width: 10, Height: 10},
			},
			want: []Rect{{X: 0, Y: 0, Width: 15, Height: 15}},
		},
		{
			name: "touching pair merges",
			in: []Rect{
				{X: 0, Y: 0, Width: 10, Height: 10},
				{X: 10, Y: 0, Width: 10, Height: 10},
			},
			want: []Rect{{X: 0, Y: 0, Width: 20, Height: 10}},
		},
		{
			name: "disjoint stay separate",
			in: []Rect{
				{X: 0, Y: 0, Width: 10, Height: 10},
				{X: 100, Y: 100, Width: 10, Height: 10},
			},
			want: []Rect{
				{X: 0, Y: 0, Width: 10, Height: 10},
				{X: 100, Y: 100, Width: 10, Height: 10},
			},
		},
		{
			name: "bridge joins previously disjoint entries",
			in: []Rect{
				{X: 0, Y: 0, Width: 10, Height: 10},
				{X: 30, Y: 0, Width: 10, Height: 10},
				{X: 8, Y: 0, Width: 24, Height: 10},
			},
			want: []Rect{{X: 0, Y: 0, Width: 40, Height: 10}},
		},
		{
			name: "empty rects dropped",
			in: []Rect{
				{},
				{X: 0, Y: 0, Width: 10, Height: 10},
				{X: 5, Y: 5, Width: 0, Height: 7},
			},
			want: []Rect{{X: 0, Y: 0, Width: 10, Height: 10}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Coalesce(tt.in)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Fatalf("Coalesce mismatch (-want +got):\n%s", diff)
			}
		})
	}
}
