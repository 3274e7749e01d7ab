// Package imblearn provides an experiment harness for binary classification
// on imbalanced data, designed for reproducible model comparison in Go.
//
// imblearn takes a labeled tabular dataset with a skewed binary outcome
// (for example employee attrition, where "Yes" is rare) and compares several
// variants of one base classifier under different imbalance-handling
// strategies: alternative selection metrics, instance weighting,
// asymmetric misclassification costs, and resampling.
//
// # Features
//
// - Stratified, seeded train/test splitting
// - A fixed registry of eight imbalance-handling strategy configurations
// - Repeated stratified k-fold cross-validation for model selection
// - Confusion-matrix metrics: accuracy, precision, recall, specificity, kappa
// - Deterministic end to end: one seed reproduces the whole comparison table
//
// # Installation
//
// Install imblearn using go get:
//
//	go get github.com/YuminosukeSato/imblearn
//
// # Quick Start
//
// A minimal run over all eight strategies:
//
//	package main
//
//	import (
//	    "fmt"
//	    "log"
//
//	    "github.com/YuminosukeSato/imblearn/experiment"
//	)
//
//	func main() {
//	    ds := loadAttrition() // your dataset source
//
//	    runner := experiment.NewRunner(myLearner,
//	        experiment.WithResamplers(myResamplers),
//	        experiment.WithSeed(42),
//	    )
//
//	    table, err := runner.Run(ds)
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//	    fmt.Println(table)
//	}
//
// # Packages
//
//   - dataset: records, datasets and the stratified train/test splitter
//   - strategy: the eight strategy configurations and cost matrices
//   - resample: resampler collaborator contract (Down, SMOTE)
//   - harness: cross-validated training and held-out evaluation
//   - metrics: confusion matrix and derived classification metrics
//   - report: comparison-table aggregation
//   - experiment: the sequential and parallel pipeline runners
//   - preprocessing: categorical feature encoding
//   - core/model: collaborator interfaces and base estimator state
//   - core/parallel: parallel processing utilities
//
// # Collaborators
//
// The classifier and the resamplers are external collaborators: imblearn
// specifies how they are configured and invoked (weights, cost matrices,
// hyperparameter candidates, per-fold resampling) but does not induce
// decision trees or synthesize SMOTE samples itself. Any implementation of
// model.Learner and resample.Resampler can be plugged in.
//
// # License
//
// imblearn is released under the MIT License.
package imblearn
