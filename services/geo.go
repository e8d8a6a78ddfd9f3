package services

import "github.com/paulmach/orb"

// MapViewport is the initial framing of the dashboard map: either the
// bounding box of the placed project markers or a fallback center when no
// project has a location yet.
type MapViewport struct {
	Center     orb.Point
	Bound      orb.Bound
	HasMarkers bool
}

// Viewport computes the map viewport for a set of projects. fallback is
// the configured default center (lng, lat order, as orb points are).
func Viewport(projects []Project, fallback orb.Point) MapViewport {
	var points orb.MultiPoint
	for _, p := range projects {
		if p.Location == nil {
			continue
		}
		points = append(points, orb.Point{p.Location.Lng, p.Location.Lat})
	}

	if len(points) == 0 {
		return MapViewport{Center: fallback}
	}

	bound := points.Bound()
	return MapViewport{
		Center:     bound.Center(),
		Bound:      bound,
		HasMarkers: true,
	}
}
