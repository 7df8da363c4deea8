// Package model loads the frozen price model artifact and evaluates it.
package model

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/kailas-cloud/laptopprice/internal/domain"
)

// Type identifies the estimator family stored in an artifact.
type Type string

// Supported estimator families.
const (
	TypeLinear           Type = "linear"
	TypeGradientBoosting Type = "gradient_boosting"
	TypeRandomForest     Type = "random_forest"
)

// TransformLog1p marks a model trained on log(1 + price).
const TransformLog1p = "log1p"

// Artifact is the serialized form of a trained regressor.
type Artifact struct {
	ModelType       Type      `json:"model_type" yaml:"model_type"`
	Version         string    `json:"version" yaml:"version"`
	TargetTransform string    `json:"target_transform" yaml:"target_transform"`
	FeatureNames    []string  `json:"feature_names" yaml:"feature_names"`
	Intercept       float64   `json:"intercept" yaml:"intercept"`
	Coefficients    []float64 `json:"coefficients" yaml:"coefficients"`
	Init            float64   `json:"init" yaml:"init"`
	LearningRate    float64   `json:"learning_rate" yaml:"learning_rate"`
	Trees           []Tree    `json:"trees" yaml:"trees"`
}

// Tree is a binary regression tree in sklearn export layout.
type Tree struct {
	Nodes []Node `json:"nodes" yaml:"nodes"`
}

// Node is a split or, when Left < 0, a leaf.
type Node struct {
	Feature   int     `json:"feature" yaml:"feature"`
	Threshold float64 `json:"threshold" yaml:"threshold"`
	Left      int     `json:"left" yaml:"left"`
	Right     int     `json:"right" yaml:"right"`
	Value     float64 `json:"value" yaml:"value"`
}

func (n Node) isLeaf() bool { return n.Left < 0 }

// Model is a loaded, read-only regressor.
type Model struct {
	name    string
	typ     Type
	columns []string
	scores  []float64
	predict func(row []float64) float64
}

// LoadFile reads an artifact from path. The format is chosen by extension:
// .yaml/.yml are YAML, anything else JSON.
func LoadFile(path string) (*Model, error) {
	data, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("read model artifact %s: %w", path, err)
	}

	var a Artifact
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		err = dec.Decode(&a)
	default:
		dec := json.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		err = dec.Decode(&a)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: parse %s: %w", domain.ErrInvalidArtifact, path, err)
	}

	m, err := New(a)
	if err != nil {
		return nil, err
	}
	m.name = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	return m, nil
}

// New validates a and builds a Model from it.
func New(a Artifact) (*Model, error) {
	if err := a.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrInvalidArtifact, err)
	}

	m := &Model{
		name:    string(a.ModelType),
		typ:     a.ModelType,
		columns: slices.Clone(a.FeatureNames),
	}
	switch a.ModelType {
	case TypeLinear:
		m.predict = linear(a.Intercept, slices.Clone(a.Coefficients))
		m.scores = linearScores(a.Coefficients)
	case TypeGradientBoosting:
		m.predict = boosted(a.Init, a.LearningRate, cloneTrees(a.Trees))
		m.scores = splitScores(a.Trees, len(a.FeatureNames))
	case TypeRandomForest:
		m.predict = forest(cloneTrees(a.Trees))
		m.scores = splitScores(a.Trees, len(a.FeatureNames))
	}
	return m, nil
}

// Validate checks the artifact for structural consistency.
func (a *Artifact) Validate() error {
	if len(a.FeatureNames) == 0 {
		return fmt.Errorf("feature_names is required")
	}
	seen := make(map[string]struct{}, len(a.FeatureNames))
	for _, f := range a.FeatureNames {
		if f == "" {
			return fmt.Errorf("feature_names contains an empty name")
		}
		if _, dup := seen[f]; dup {
			return fmt.Errorf("duplicate feature name %q", f)
		}
		seen[f] = struct{}{}
	}
	if a.TargetTransform != "" && a.TargetTransform != TransformLog1p {
		return fmt.Errorf("unsupported target_transform %q (want %q)", a.TargetTransform, TransformLog1p)
	}

	switch a.ModelType {
	case TypeLinear:
		if len(a.Coefficients) != len(a.FeatureNames) {
			return fmt.Errorf("linear model has %d coefficients for %d features",
				len(a.Coefficients), len(a.FeatureNames))
		}
	case TypeGradientBoosting, TypeRandomForest:
		if len(a.Trees) == 0 {
			return fmt.Errorf("%s model has no trees", a.ModelType)
		}
		if a.ModelType == TypeGradientBoosting && a.LearningRate <= 0 {
			return fmt.Errorf("learning_rate must be positive, got %v", a.LearningRate)
		}
		for i, t := range a.Trees {
			if err := t.validate(len(a.FeatureNames)); err != nil {
				return fmt.Errorf("tree %d: %w", i, err)
			}
		}
	case "":
		return fmt.Errorf("model_type is required")
	default:
		return fmt.Errorf("unsupported model_type %q", a.ModelType)
	}
	return nil
}

// Name returns a human-readable identifier of the model.
func (m *Model) Name() string { return m.name }

// Type returns the estimator family.
func (m *Model) Type() Type { return m.typ }

// ExpectedColumns returns the feature names the model was fit on, in order.
func (m *Model) ExpectedColumns() []string { return slices.Clone(m.columns) }

// Predict evaluates one row aligned to ExpectedColumns. The output is on the
// log1p price scale.
func (m *Model) Predict(_ context.Context, row []float64) (float64, error) {
	if len(row) != len(m.columns) {
		return 0, fmt.Errorf("%w: row has %d values, model expects %d",
			domain.ErrSchemaMismatch, len(row), len(m.columns))
	}
	return m.predict(row), nil
}
