package visualization

import (
	"math"
)

// CircularLayout arranges items in a circle
type CircularLayout struct {
	config *LayoutConfig
}

// NewCircularLayout creates a new circular layout
func NewCircularLayout(config *LayoutConfig) *CircularLayout {
	if config.Padding == 0 {
		config.Padding = 50
	}
	return &CircularLayout{config: config}
}

// ComputeLayout arranges the projected items in a circle, in node order.
func (cl *CircularLayout) ComputeLayout(p *Projection) map[string]Position {
	positions := make(map[string]Position)

	if len(p.Nodes) == 0 {
		return positions
	}

	centerX := cl.config.Width / 2
	centerY := cl.config.Height / 2
	radius := math.Min(centerX, centerY) - cl.config.Padding

	angleStep := 2 * math.Pi / float64(len(p.Nodes))

	for i, node := range p.Nodes {
		angle := float64(i) * angleStep
		positions[node.Item] = Position{
			X: centerX + radius*math.Cos(angle),
			Y: centerY + radius*math.Sin(angle),
		}
	}

	return positions
}
