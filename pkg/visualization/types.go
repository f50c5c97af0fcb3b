// Package visualization projects the co-purchase aggregate into a drawable
// subgraph and computes node positions for it. Rendering itself belongs to
// the consumer; this package only produces geometry and weights.
package visualization

// Position represents a 2D coordinate
type Position struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Node is one drawable item: sized by purchase frequency.
type Node struct {
	Item      string `json:"item"`
	Frequency int    `json:"frequency"`
}

// Edge is one drawable relationship: weighted by co-purchase count. Each
// undirected edge appears once, canonicalized A < B.
type Edge struct {
	A      string `json:"a"`
	B      string `json:"b"`
	Weight int    `json:"weight"`
}

// Projection is the top-N subgraph handed to a renderer.
type Projection struct {
	Nodes []Node `json:"nodes"`
	Edges []Edge `json:"edges"`
}

// LayoutConfig configures layout parameters
type LayoutConfig struct {
	Width      float64 // Canvas width
	Height     float64 // Canvas height
	Iterations int     // Number of iterations for iterative algorithms
	Padding    float64 // Padding from edges
	Seed       int64   // Seed for the force layout's initial placement
}

// Layout computes a position per projected item.
type Layout interface {
	ComputeLayout(p *Projection) map[string]Position
}
