package model

import "fmt"

// validate requires children to sit after their parent, which also rules out cycles.
func (t Tree) validate(numFeatures int) error {
	if len(t.Nodes) == 0 {
		return fmt.Errorf("no nodes")
	}
	for i, n := range t.Nodes {
		if n.isLeaf() {
			continue
		}
		if n.Feature < 0 || n.Feature >= numFeatures {
			return fmt.Errorf("node %d: feature index %d out of range", i, n.Feature)
		}
		for _, child := range []int{n.Left, n.Right} {
			if child <= i || child >= len(t.Nodes) {
				return fmt.Errorf("node %d: child index %d invalid", i, child)
			}
		}
	}
	return nil
}

func (t Tree) eval(row []float64) float64 {
	i := 0
	for {
		n := t.Nodes[i]
		if n.isLeaf() {
			return n.Value
		}
		if row[n.Feature] <= n.Threshold {
			i = n.Left
		} else {
			i = n.Right
		}
	}
}

func cloneTrees(trees []Tree) []Tree {
	out := make([]Tree, len(trees))
	for i, t := range trees {
		out[i] = Tree{Nodes: append([]Node(nil), t.Nodes...)}
	}
	return out
}

// boosted sums tree outputs scaled by the learning rate on top of the initial estimate.
func boosted(init, rate float64, trees []Tree) func([]float64) float64 {
	return func(row []float64) float64 {
		y := init
		for _, t := range trees {
			y += rate * t.eval(row)
		}
		return y
	}
}

// forest averages tree outputs.
func forest(trees []Tree) func([]float64) float64 {
	return func(row []float64) float64 {
		var sum float64
		for _, t := range trees {
			sum += t.eval(row)
		}
		return sum / float64(len(trees))
	}
}
