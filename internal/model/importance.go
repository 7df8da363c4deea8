package model

import (
	"cmp"
	"math"
	"slices"
)

// Importance is the relative weight of one feature column.
type Importance struct {
	Column string  `json:"column"`
	Score  float64 `json:"score"`
}

// Importances ranks the model's columns, highest score first. Linear models
// score by |coefficient|, tree ensembles by the share of split nodes using
// the column. Scores sum to 1 unless every score is zero.
func (m *Model) Importances() []Importance {
	out := make([]Importance, len(m.columns))
	for i, c := range m.columns {
		out[i] = Importance{Column: c, Score: m.scores[i]}
	}
	slices.SortStableFunc(out, func(a, b Importance) int {
		return cmp.Compare(b.Score, a.Score)
	})
	return out
}

func linearScores(coef []float64) []float64 {
	scores := make([]float64, len(coef))
	for i, c := range coef {
		scores[i] = math.Abs(c)
	}
	return normalize(scores)
}

func splitScores(trees []Tree, numFeatures int) []float64 {
	scores := make([]float64, numFeatures)
	for _, t := range trees {
		for _, n := range t.Nodes {
			if !n.isLeaf() {
				scores[n.Feature]++
			}
		}
	}
	return normalize(scores)
}

func normalize(scores []float64) []float64 {
	var sum float64
	for _, s := range scores {
		sum += s
	}
	if sum == 0 {
		return scores
	}
	for i := range scores {
		scores[i] /= sum
	}
	return scores
}
