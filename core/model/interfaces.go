// Package model provides the collaborator interfaces and base types shared
// across the experiment pipeline.
//
// The classifier itself is an external collaborator: imblearn specifies how
// it is configured and invoked (per-record weights, asymmetric cost matrix,
// hyperparameter candidates) but not its induction internals. Any type
// satisfying Learner can be driven by the training harness.
package model

import (
	"github.com/YuminosukeSato/imblearn/dataset"
	"github.com/YuminosukeSato/imblearn/strategy"
)

// FitOptions carries the optional imbalance-handling inputs into a single
// classifier fit. At most one of Weights and CostMatrix is non-nil for any
// strategy configuration; the training harness enforces this before fitting.
type FitOptions struct {
	// Weights holds one fitting weight per record of the training sample,
	// aligned with record order. Nil means uniform weights.
	Weights []float64

	// CostMatrix replaces the classifier's default symmetric
	// misclassification loss in its split/pruning criterion. Nil means
	// symmetric loss.
	CostMatrix *strategy.CostMatrix
}

// Learner is the classifier collaborator: it induces a model from a training
// sample at one hyperparameter setting.
//
// Implementations must be deterministic: identical inputs must produce an
// identical model. The harness relies on this for the end-to-end
// reproducibility contract.
type Learner interface {
	// Fit induces a classifier on train using the given complexity
	// hyperparameter and options. It must return an error (not a silently
	// degenerate model) when it cannot fit, e.g. on a single-class sample.
	Fit(train *dataset.Dataset, complexity float64, opts FitOptions) (Model, error)
}

// Model is a fitted classifier. It is immutable: Predict must not change
// the model's state.
type Model interface {
	// Predict returns the label for a single record.
	Predict(rec dataset.Record) (dataset.Label, error)
}
