// Package log defines standard attribute keys for experiment operations.
//
// Using these keys consistently enables structured analysis of experiment
// logs: which strategy a record belongs to, which CV fold produced it, and
// what the resulting metric values were. Keys follow a hierarchical naming
// convention (e.g. "strategy.name", "cv.fold") for filtering.
package log

// Strategy and Operation Context
// These attributes identify the strategy and pipeline stage being executed.
const (
	// StrategyKey identifies the imbalance-handling strategy by registry name.
	// Examples: "Original", "Kappa", "Weighted", "Cost FN", "Down", "SMOTE"
	StrategyKey = "strategy.name"

	// OperationKey specifies the pipeline operation being performed.
	// Standard values: "split", "train", "resample", "evaluate", "aggregate"
	OperationKey = "pipeline.operation"

	// ComponentKey identifies which package is performing the operation.
	// Examples: "dataset", "harness", "experiment"
	ComponentKey = "pipeline.component"

	// SelectionMetricKey records the CV model-selection objective.
	// Values: "Accuracy", "Kappa"
	SelectionMetricKey = "strategy.selection_metric"

	// ResamplingKey records the resampling method in effect.
	// Values: "None", "Down", "SMOTE"
	ResamplingKey = "strategy.resampling"
)

// Cross-Validation Context
const (
	// FoldKey records the zero-based fold index within a repeat.
	FoldKey = "cv.fold"

	// RepeatKey records the zero-based repeat index of repeated k-fold CV.
	RepeatKey = "cv.repeat"

	// CandidateKey records the hyperparameter candidate being scored.
	CandidateKey = "cv.candidate"

	// CVMeanKey records the mean cross-validation score of a candidate.
	CVMeanKey = "cv.mean_score"

	// CVStdKey records the standard deviation of per-fold CV scores.
	CVStdKey = "cv.std_score"
)

// Data Shape and Characteristics
const (
	// SamplesKey indicates the number of records in the dataset being processed.
	SamplesKey = "data.samples"

	// FeaturesKey indicates the number of features per record.
	FeaturesKey = "data.features"

	// PositiveFractionKey records the fraction of positive-label records.
	// For attrition data this is the "Yes" proportion, typically around 0.16.
	PositiveFractionKey = "data.positive_fraction"

	// TrainSamplesKey / TestSamplesKey record split sizes.
	TrainSamplesKey = "data.train_samples"
	TestSamplesKey  = "data.test_samples"
)

// Evaluation Metrics
const (
	// AccuracyKey records held-out accuracy. Range [0.0, 1.0].
	AccuracyKey = "metrics.accuracy"

	// PrecisionKey records held-out precision for the positive label.
	PrecisionKey = "metrics.precision"

	// RecallKey records held-out recall (sensitivity) for the positive label.
	RecallKey = "metrics.recall"

	// SpecificityKey records held-out specificity (true negative rate).
	SpecificityKey = "metrics.specificity"

	// KappaKey records Cohen's kappa, the chance-corrected agreement.
	KappaKey = "metrics.kappa"
)

// Performance
const (
	// DurationMsKey records the execution time of an operation in milliseconds.
	DurationMsKey = "perf.duration_ms"
)

// Configuration
const (
	// RandomSeedKey records the random seed for reproducibility.
	// Essential for debugging: a seed plus a dataset reproduces a whole table.
	RandomSeedKey = "config.random_seed"

	// TrainFractionKey records the stratified split's training fraction.
	TrainFractionKey = "config.train_fraction"
)

// Standard attribute value constants for common operations.
const (
	OperationSplit     = "split"
	OperationTrain     = "train"
	OperationResample  = "resample"
	OperationEvaluate  = "evaluate"
	OperationAggregate = "aggregate"
)
