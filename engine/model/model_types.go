package model

// Vertex is a single immediate-mode vertex with its normal.
type Vertex struct {
	// Position is the object-space vertex position.
	Position [3]float32

	// Normal is the vertex normal. For a sphere centered at the origin this equals Position.
	Normal [3]float32
}

// QuadStrip is an ordered list of vertices forming connected quadrilaterals.
// Vertices alternate between the lower and the upper boundary of the strip.
type QuadStrip struct {
	Vertices []Vertex
}

// VertexCount returns the total number of vertices across strips.
//
// Parameters:
//   - strips: the strips to count
//
// Returns:
//   - int: the sum of len(Vertices) over all strips
func VertexCount(strips []QuadStrip) int {
	n := 0
	for _, s := range strips {
		n += len(s.Vertices)
	}
	return n
}
