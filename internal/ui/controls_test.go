package ui

import (
	"testing"

	"lifegrid/pkg/life"
)

func TestViewScreenMapping(t *testing.T) {
	v := View{W: 640, H: 480, OriginX: -10, OriginY: 4.5, CellPx: 8}

	if got := v.ScreenX(-10); got != 0 {
		t.Fatalf("origin column should land at pixel 0, got %f", got)
	}
	if got := v.ScreenX(0); got != 80 {
		t.Fatalf("board x=0 should land at pixel 80, got %f", got)
	}
	if got := v.ScreenY(4.5); got != 0 {
		t.Fatalf("origin row should land at pixel 0, got %f", got)
	}
	if got := v.ScreenY(6); got != 12 {
		t.Fatalf("board y=6 should land at pixel 12, got %f", got)
	}
}

func TestViewScreenMappingTracksZoom(t *testing.T) {
	v := View{OriginX: 2, OriginY: 2, CellPx: 4}
	coarse := v.ScreenX(10)
	v.CellPx = 16
	fine := v.ScreenX(10)
	if fine != coarse*4 {
		t.Fatalf("quadrupling the zoom should quadruple offsets: %f vs %f", fine, coarse)
	}
}

func TestViewCarriesBounds(t *testing.T) {
	r := life.Rect{Min: life.Point{X: -3, Y: -2}, Max: life.Point{X: 5, Y: 9}}
	v := View{Bounds: r, HasBounds: true}
	if !v.HasBounds || v.Bounds != r {
		t.Fatalf("view should carry the live-cell bounds unchanged, got %+v", v.Bounds)
	}
}
