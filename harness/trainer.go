package harness

import (
	"math"
	"time"

	"gonum.org/v1/gonum/stat"

	"github.com/YuminosukeSato/imblearn/core/model"
	"github.com/YuminosukeSato/imblearn/dataset"
	"github.com/YuminosukeSato/imblearn/metrics"
	"github.com/YuminosukeSato/imblearn/pkg/errors"
	"github.com/YuminosukeSato/imblearn/pkg/log"
	"github.com/YuminosukeSato/imblearn/resample"
	"github.com/YuminosukeSato/imblearn/strategy"
)

// DefaultCandidates is the standard complexity-parameter grid searched
// during model selection.
var DefaultCandidates = []float64{0.001, 0.005, 0.01, 0.05, 0.1}

// Trainer drives the classifier collaborator through repeated
// cross-validated model selection under one strategy configuration at a
// time. A Trainer is stateless between Train calls and safe for concurrent
// use as long as its collaborators are.
type Trainer struct {
	learner    model.Learner
	resamplers map[resample.Method]resample.Resampler
	candidates []float64
	cv         CVSpec
	logger     log.Logger
}

// TrainerOption configures a Trainer.
type TrainerOption func(*Trainer)

// WithResampler registers the resampler collaborator for one method.
func WithResampler(method resample.Method, r resample.Resampler) TrainerOption {
	return func(t *Trainer) {
		t.resamplers[method] = r
	}
}

// WithResamplers registers resampler collaborators for several methods.
func WithResamplers(resamplers map[resample.Method]resample.Resampler) TrainerOption {
	return func(t *Trainer) {
		for m, r := range resamplers {
			t.resamplers[m] = r
		}
	}
}

// WithCandidates replaces the hyperparameter candidate grid.
func WithCandidates(candidates []float64) TrainerOption {
	return func(t *Trainer) {
		t.candidates = append([]float64(nil), candidates...)
	}
}

// WithCV replaces the cross-validation layout.
func WithCV(cv CVSpec) TrainerOption {
	return func(t *Trainer) {
		t.cv = cv
	}
}

// WithLogger replaces the trainer's logger.
func WithLogger(logger log.Logger) TrainerOption {
	return func(t *Trainer) {
		t.logger = logger
	}
}

// NewTrainer creates a Trainer around the classifier collaborator. The
// default layout is 10-fold CV with 5 repeats at seed 0; set the run's seed
// through WithCV.
func NewTrainer(learner model.Learner, opts ...TrainerOption) *Trainer {
	t := &Trainer{
		learner:    learner,
		resamplers: make(map[resample.Method]resample.Resampler),
		candidates: DefaultCandidates,
		cv:         DefaultCVSpec(0),
		logger:     log.GetLoggerWithName("harness"),
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// FittedModel is the opaque result of training one strategy: the refit
// classifier plus the CV-selected hyperparameter and its CV score summary.
// It is never mutated after creation.
type FittedModel struct {
	Model      model.Model
	Strategy   string
	Complexity float64
	CVMean     float64
	CVStd      float64
}

// Train fits the classifier under the given strategy configuration.
//
// For every hyperparameter candidate it scores the configuration's selection
// metric on each validation fold, training on the fold's remaining records
// (resampled first when the strategy asks for it; validation folds are never
// resampled). The candidate with the best mean CV score is then refit on the
// full training set, again after any resampling.
//
// Identical (trainSet, cfg, CVSpec) inputs produce an identical FittedModel,
// provided the collaborators honor their determinism contracts.
//
// Any collaborator failure is returned as a TrainingFailedError naming the
// strategy and, when applicable, the repeat and fold that failed.
func (t *Trainer) Train(trainSet *dataset.Dataset, cfg strategy.Config) (fitted *FittedModel, err error) {
	defer errors.Recover(&err, "Trainer.Train")

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if err := t.cv.Validate(); err != nil {
		return nil, err
	}
	if trainSet == nil || trainSet.Len() == 0 {
		return nil, errors.WithStack(errors.ErrEmptyDataset)
	}
	if len(t.candidates) == 0 {
		return nil, errors.NewValidationError("candidates", "need at least one hyperparameter candidate", t.candidates)
	}

	resampler, err := t.resamplerFor(cfg)
	if err != nil {
		return nil, err
	}

	start := time.Now()
	logger := t.logger.With(
		log.StrategyKey, cfg.Name,
		log.SelectionMetricKey, cfg.SelectionMetric.String(),
		log.ResamplingKey, cfg.Resampling.String(),
	)
	logger.Info("cross-validated training started",
		log.OperationKey, log.OperationTrain,
		log.SamplesKey, trainSet.Len(),
		log.RandomSeedKey, t.cv.Seed,
	)

	// The fold layout depends only on the labels and the CV spec, so every
	// strategy trained on the same TrainSet sees the same folds.
	repeats := t.cv.Split(trainSet.Labels())

	scores := make([][]float64, len(t.candidates))
	for ri, folds := range repeats {
		for fi, fold := range folds {
			foldTrain := trainSet.Subset(fold.TrainIndices)
			if resampler != nil {
				foldTrain, err = resampler.Resample(foldTrain, foldSeed(t.cv.Seed, ri, fi))
				if err != nil {
					return nil, errors.NewTrainingFailedError(cfg.Name, ri, fi, err)
				}
			}
			foldVal := trainSet.Subset(fold.ValIndices)

			opts := model.FitOptions{
				Weights:    cfg.ExpandWeights(foldTrain),
				CostMatrix: cfg.CostMatrix,
			}

			for ci, candidate := range t.candidates {
				m, ferr := t.learner.Fit(foldTrain, candidate, opts)
				if ferr != nil {
					return nil, errors.NewTrainingFailedError(cfg.Name, ri, fi, ferr)
				}
				score, serr := t.scoreFold(m, foldVal, cfg.SelectionMetric)
				if serr != nil {
					return nil, errors.NewTrainingFailedError(cfg.Name, ri, fi, serr)
				}
				scores[ci] = append(scores[ci], score)
			}
		}
	}

	bestIdx, bestMean, bestStd := selectBest(scores)
	bestCandidate := t.candidates[bestIdx]

	// Refit on the full training set with the winning candidate.
	refitSet := trainSet
	if resampler != nil {
		refitSet, err = resampler.Resample(trainSet, t.cv.Seed)
		if err != nil {
			return nil, errors.NewTrainingFailedError(cfg.Name, -1, -1, err)
		}
	}
	opts := model.FitOptions{
		Weights:    cfg.ExpandWeights(refitSet),
		CostMatrix: cfg.CostMatrix,
	}
	final, err := t.learner.Fit(refitSet, bestCandidate, opts)
	if err != nil {
		return nil, errors.NewTrainingFailedError(cfg.Name, -1, -1, err)
	}

	logger.Info("cross-validated training finished",
		log.CandidateKey, bestCandidate,
		log.CVMeanKey, bestMean,
		log.CVStdKey, bestStd,
		log.DurationMsKey, time.Since(start).Milliseconds(),
	)

	return &FittedModel{
		Model:      final,
		Strategy:   cfg.Name,
		Complexity: bestCandidate,
		CVMean:     bestMean,
		CVStd:      bestStd,
	}, nil
}

// resamplerFor resolves the configured resampling method to a registered
// collaborator. Returns nil when the strategy does not resample.
func (t *Trainer) resamplerFor(cfg strategy.Config) (resample.Resampler, error) {
	if cfg.Resampling == resample.None {
		return nil, nil
	}
	r, ok := t.resamplers[cfg.Resampling]
	if !ok {
		return nil, errors.NewValidationError("Resampling",
			"no resampler registered for method", cfg.Resampling.String())
	}
	return r, nil
}

// scoreFold computes the selection metric of a candidate model on one
// validation fold.
func (t *Trainer) scoreFold(m model.Model, foldVal *dataset.Dataset, metric strategy.SelectionMetric) (float64, error) {
	actual := foldVal.Labels()
	predicted := make([]dataset.Label, foldVal.Len())
	for i := 0; i < foldVal.Len(); i++ {
		p, err := m.Predict(foldVal.Record(i))
		if err != nil {
			return 0, err
		}
		predicted[i] = p
	}

	cm, err := metrics.NewConfusionMatrix(actual, predicted, dataset.Yes)
	if err != nil {
		return 0, err
	}
	if metric == strategy.Kappa {
		return cm.Kappa(), nil
	}
	return cm.Accuracy(), nil
}

// selectBest picks the candidate with the highest mean fold score. NaN
// means (all folds undefined) lose to any defined mean; ties go to the
// earlier candidate so selection stays deterministic.
func selectBest(scores [][]float64) (idx int, mean, std float64) {
	idx = 0
	mean = math.NaN()
	std = math.NaN()
	for ci, folds := range scores {
		m := stat.Mean(folds, nil)
		if math.IsNaN(m) {
			continue
		}
		if math.IsNaN(mean) || m > mean {
			idx = ci
			mean = m
			std = stat.StdDev(folds, nil)
		}
	}
	if math.IsNaN(mean) && len(scores) > 0 {
		// Every candidate was undefined; keep the first for determinism.
		mean = stat.Mean(scores[0], nil)
		std = stat.StdDev(scores[0], nil)
	}
	return idx, mean, std
}

// foldSeed derives a per-fold resampling seed from the run seed so parallel
// strategies never share mutable random state.
func foldSeed(seed uint64, repeat, fold int) uint64 {
	return seed + uint64(repeat)*1000003 + uint64(fold) + 1
}
