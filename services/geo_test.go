package services

import (
	"testing"

	"github.com/paulmach/orb"
)

var makassarCenter = orb.Point{119.4327, -5.1477}

func TestViewport_NoLocations(t *testing.T) {
	projects := []Project{{Name: "A"}, {Name: "B"}}

	vp := Viewport(projects, makassarCenter)
	if vp.HasMarkers {
		t.Error("expected HasMarkers to be false")
	}
	if vp.Center != makassarCenter {
		t.Errorf("Center = %v, want fallback %v", vp.Center, makassarCenter)
	}
}

func TestViewport_SingleLocation(t *testing.T) {
	projects := []Project{
		{Name: "A", Location: &Location{Lat: -5.15, Lng: 119.43}},
	}

	vp := Viewport(projects, makassarCenter)
	if !vp.HasMarkers {
		t.Fatal("expected HasMarkers to be true")
	}
	if !almostEqual(vp.Center[0], 119.43) || !almostEqual(vp.Center[1], -5.15) {
		t.Errorf("Center = %v, want the single marker position", vp.Center)
	}
	if !almostEqual(vp.Bound.Min[0], vp.Bound.Max[0]) || !almostEqual(vp.Bound.Min[1], vp.Bound.Max[1]) {
		t.Errorf("single marker bound should be degenerate, got %v", vp.Bound)
	}
}

func TestViewport_MultipleLocations(t *testing.T) {
	projects := []Project{
		{Name: "A", Location: &Location{Lat: -5.10, Lng: 119.40}},
		{Name: "B"},
		{Name: "C", Location: &Location{Lat: -5.20, Lng: 119.50}},
	}

	vp := Viewport(projects, makassarCenter)
	if !vp.HasMarkers {
		t.Fatal("expected HasMarkers to be true")
	}
	if !almostEqual(vp.Bound.Min[0], 119.40) || !almostEqual(vp.Bound.Max[0], 119.50) {
		t.Errorf("bound longitudes = %v..%v, want 119.40..119.50", vp.Bound.Min[0], vp.Bound.Max[0])
	}
	if !almostEqual(vp.Bound.Min[1], -5.20) || !almostEqual(vp.Bound.Max[1], -5.10) {
		t.Errorf("bound latitudes = %v..%v, want -5.20..-5.10", vp.Bound.Min[1], vp.Bound.Max[1])
	}
	if !almostEqual(vp.Center[0], 119.45) || !almostEqual(vp.Center[1], -5.15) {
		t.Errorf("Center = %v, want midpoint (119.45, -5.15)", vp.Center)
	}
}
