package visualization

import (
	"math"
	"math/rand"
)

// ForceDirectedLayout implements force-directed graph layout
type ForceDirectedLayout struct {
	config *LayoutConfig
}

// NewForceDirectedLayout creates a new force-directed layout
func NewForceDirectedLayout(config *LayoutConfig) *ForceDirectedLayout {
	if config.Iterations == 0 {
		config.Iterations = 50
	}
	if config.Padding == 0 {
		config.Padding = 50
	}
	return &ForceDirectedLayout{config: config}
}

// ComputeLayout computes positions using a force-directed algorithm.
// Heavier edges pull harder, so frequently co-purchased items cluster.
// The initial placement is seeded, so the same projection and seed always
// produce the same picture.
func (fdl *ForceDirectedLayout) ComputeLayout(p *Projection) map[string]Position {
	if len(p.Nodes) == 0 {
		return make(map[string]Position)
	}

	// Single node - center it
	if len(p.Nodes) == 1 {
		return map[string]Position{
			p.Nodes[0].Item: {
				X: fdl.config.Width / 2,
				Y: fdl.config.Height / 2,
			},
		}
	}

	rng := rand.New(rand.NewSource(fdl.config.Seed))

	items := make([]string, 0, len(p.Nodes))
	positions := make(map[string]Position, len(p.Nodes))
	for _, node := range p.Nodes {
		items = append(items, node.Item)
		positions[node.Item] = Position{
			X: rng.Float64()*(fdl.config.Width-2*fdl.config.Padding) + fdl.config.Padding,
			Y: rng.Float64()*(fdl.config.Height-2*fdl.config.Padding) + fdl.config.Padding,
		}
	}

	maxWeight := 1
	for _, edge := range p.Edges {
		if edge.Weight > maxWeight {
			maxWeight = edge.Weight
		}
	}

	k := math.Sqrt((fdl.config.Width * fdl.config.Height) / float64(len(items))) // Optimal distance
	temperature := fdl.config.Width / 10.0

	for iter := 0; iter < fdl.config.Iterations; iter++ {
		forces := make(map[string]Position, len(items))
		for _, item := range items {
			forces[item] = Position{X: 0, Y: 0}
		}

		// Repulsion between all nodes
		for i, a := range items {
			for j := i + 1; j < len(items); j++ {
				b := items[j]
				dx := positions[a].X - positions[b].X
				dy := positions[a].Y - positions[b].Y
				dist := math.Sqrt(dx*dx + dy*dy)

				if dist < 0.01 {
					dist = 0.01
				}

				force := (k * k) / dist
				fx := (dx / dist) * force
				fy := (dy / dist) * force

				forces[a] = Position{X: forces[a].X + fx, Y: forces[a].Y + fy}
				forces[b] = Position{X: forces[b].X - fx, Y: forces[b].Y - fy}
			}
		}

		// Attraction along edges, scaled by relative weight. Iterating the
		// edge slice (not an adjacency map) keeps force accumulation order,
		// and therefore the layout, reproducible.
		for _, edge := range p.Edges {
			a, b := edge.A, edge.B
			dx := positions[a].X - positions[b].X
			dy := positions[a].Y - positions[b].Y
			dist := math.Sqrt(dx*dx + dy*dy)

			if dist < 0.01 {
				continue
			}

			force := (dist * dist) / k * (float64(edge.Weight) / float64(maxWeight))
			fx := (dx / dist) * force
			fy := (dy / dist) * force

			forces[a] = Position{X: forces[a].X - fx, Y: forces[a].Y - fy}
			forces[b] = Position{X: forces[b].X + fx, Y: forces[b].Y + fy}
		}

		// Apply forces with cooling
		cool := 1.0 - float64(iter)/float64(fdl.config.Iterations)
		for _, item := range items {
			fx := forces[item].X
			fy := forces[item].Y
			force := math.Sqrt(fx*fx + fy*fy)

			if force > 0 {
				dx := (fx / force) * math.Min(force, temperature) * cool
				dy := (fy / force) * math.Min(force, temperature) * cool

				positions[item] = Position{
					X: positions[item].X + dx,
					Y: positions[item].Y + dy,
				}
			}
		}

		temperature *= 0.95
	}

	return normalizePositions(positions, fdl.config.Width, fdl.config.Height, fdl.config.Padding)
}
