// Package strategy defines the immutable imbalance-handling configurations
// compared by the experiment, and the fixed registry of the eight variants.
//
// Each Config is fully specified at construction and never mutated, so no
// strategy can inherit stray settings from a previously run one.
package strategy

import (
	"github.com/YuminosukeSato/imblearn/dataset"
	"github.com/YuminosukeSato/imblearn/pkg/errors"
	"github.com/YuminosukeSato/imblearn/resample"
)

// SelectionMetric is the objective used to pick the best hyperparameter
// candidate across cross-validation folds.
type SelectionMetric int

const (
	// Accuracy selects the candidate with the highest mean CV accuracy.
	Accuracy SelectionMetric = iota
	// Kappa selects the candidate with the highest mean CV Cohen's kappa,
	// which rewards chance-corrected agreement on imbalanced data.
	Kappa
)

// String returns the metric name.
func (m SelectionMetric) String() string {
	switch m {
	case Accuracy:
		return "Accuracy"
	case Kappa:
		return "Kappa"
	default:
		return "Unknown"
	}
}

// Config is one immutable imbalance-handling strategy: a model-selection
// metric plus at most one of {instance weights, cost matrix}, plus an
// independent resampling method.
type Config struct {
	// Name is the strategy's registry name, used in the comparison table.
	Name string

	// SelectionMetric is the CV model-selection objective.
	SelectionMetric SelectionMetric

	// InstanceWeights maps each label to a per-record fitting weight.
	// Nil means uniform weights. Mutually exclusive with CostMatrix.
	InstanceWeights map[dataset.Label]float64

	// CostMatrix is the asymmetric misclassification loss.
	// Nil means symmetric loss. Mutually exclusive with InstanceWeights.
	CostMatrix *CostMatrix

	// Resampling names the resampling transform applied to fold-training
	// data. Independent of the weight/cost choice.
	Resampling resample.Method
}

// Validate checks the structural invariants of a configuration.
func (c Config) Validate() error {
	if c.Name == "" {
		return errors.NewValidationError("Name", "strategy name must not be empty", c.Name)
	}
	if c.InstanceWeights != nil && c.CostMatrix != nil {
		return errors.NewValidationError("InstanceWeights/CostMatrix",
			"instance weights and cost matrix are mutually exclusive", c.Name)
	}
	return nil
}

// ExpandWeights turns the label-to-weight mapping into one weight per record
// of ds, aligned with record order. Returns nil when the configuration does
// not use instance weights.
func (c Config) ExpandWeights(ds *dataset.Dataset) []float64 {
	if c.InstanceWeights == nil {
		return nil
	}
	weights := make([]float64, ds.Len())
	for i, label := range ds.Labels() {
		w, ok := c.InstanceWeights[label]
		if !ok {
			w = 1.0
		}
		weights[i] = w
	}
	return weights
}
