// Package model builds immediate-mode meshes and submits them to the fixed-function pipeline.
package model

import (
	"math"

	"github.com/Carmen-Shannon/oxy-gl/engine/gl"
)

// Sphere tessellates a UV sphere of the given radius centered at the origin.
//
// For every latitude band i in [0, lats] the strip spans latitude indices i-1 and i,
// and for every longitude step j in [0, lons] the angle is taken at j-1. This yields
// lats+1 strips of 2*(lons+1) vertices; the poles are left as degenerate strips of
// radius 0 and the first strip reaches below the south pole.
//
// Parameters:
//   - radius: the sphere radius
//   - lats: number of latitude slices
//   - lons: number of longitude slices
//
// Returns:
//   - []QuadStrip: the strips in bottom-to-top order, or nil if lats or lons is not positive
func Sphere(radius float32, lats, lons int) []QuadStrip {
	if lats <= 0 || lons <= 0 {
		return nil
	}

	strips := make([]QuadStrip, 0, lats+1)
	for i := 0; i <= lats; i++ {
		z0, zr0 := latitude(i-1, radius, lats)
		z1, zr1 := latitude(i, radius, lats)

		vertices := make([]Vertex, 0, 2*(lons+1))
		for j := 0; j <= lons; j++ {
			lon := 2 * math.Pi * float64(j-1) / float64(lons)
			x := float32(math.Cos(lon))
			y := float32(math.Sin(lon))

			lower := [3]float32{x * zr0, y * zr0, z0}
			upper := [3]float32{x * zr1, y * zr1, z1}
			vertices = append(vertices,
				Vertex{Position: lower, Normal: lower},
				Vertex{Position: upper, Normal: upper},
			)
		}
		strips = append(strips, QuadStrip{Vertices: vertices})
	}
	return strips
}

// latitude returns the z height and the ring radius of latitude boundary index.
func latitude(index int, radius float32, lats int) (z, zr float32) {
	angle := math.Pi * (-0.5 + float64(index)/float64(lats))
	return radius * float32(math.Sin(angle)), radius * float32(math.Cos(angle))
}

// DrawQuadStrips submits strips as GL_QUAD_STRIP primitives, one Begin/End pair per strip.
//
// Parameters:
//   - openGL: the GL entry points, with a current context
//   - strips: the strips to draw
func DrawQuadStrips(openGL gl.OpenGL, strips []QuadStrip) {
	for _, s := range strips {
		openGL.Begin(gl.QuadStrip)
		for _, v := range s.Vertices {
			openGL.Normal3f(v.Normal[0], v.Normal[1], v.Normal[2])
			openGL.Vertex3f(v.Position[0], v.Position[1], v.Position[2])
		}
		openGL.End()
	}
}
