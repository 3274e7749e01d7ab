// Package experiment wires the full pipeline together: one stratified split,
// eight cross-validated training runs, eight held-out evaluations, one
// comparison table.
package experiment

import (
	"time"

	"github.com/YuminosukeSato/imblearn/core/model"
	"github.com/YuminosukeSato/imblearn/core/parallel"
	"github.com/YuminosukeSato/imblearn/dataset"
	"github.com/YuminosukeSato/imblearn/harness"
	"github.com/YuminosukeSato/imblearn/metrics"
	"github.com/YuminosukeSato/imblearn/pkg/errors"
	"github.com/YuminosukeSato/imblearn/pkg/log"
	"github.com/YuminosukeSato/imblearn/report"
	"github.com/YuminosukeSato/imblearn/resample"
	"github.com/YuminosukeSato/imblearn/strategy"
)

// StrategyResult is the outcome of one strategy: either a fitted model with
// its held-out metrics, or the error that aborted it. A failed strategy
// contributes no row to the comparison table but never aborts its siblings.
type StrategyResult struct {
	Config strategy.Config
	Fitted *harness.FittedModel
	Row    metrics.Row
	Err    error
}

// Runner executes the eight-strategy experiment on a dataset.
type Runner struct {
	learner       model.Learner
	resamplers    map[resample.Method]resample.Resampler
	candidates    []float64
	folds         int
	repeats       int
	trainFraction float64
	seed          uint64
	positive      dataset.Label
	logger        log.Logger
}

// Option configures a Runner.
type Option func(*Runner)

// WithResampler registers the resampler collaborator for one method.
func WithResampler(method resample.Method, r resample.Resampler) Option {
	return func(run *Runner) {
		run.resamplers[method] = r
	}
}

// WithResamplers registers resampler collaborators for several methods.
func WithResamplers(resamplers map[resample.Method]resample.Resampler) Option {
	return func(run *Runner) {
		for m, r := range resamplers {
			run.resamplers[m] = r
		}
	}
}

// WithCandidates replaces the hyperparameter candidate grid.
func WithCandidates(candidates []float64) Option {
	return func(run *Runner) {
		run.candidates = append([]float64(nil), candidates...)
	}
}

// WithCV replaces the cross-validation layout (default 10 folds, 5 repeats).
func WithCV(folds, repeats int) Option {
	return func(run *Runner) {
		run.folds = folds
		run.repeats = repeats
	}
}

// WithTrainFraction replaces the stratified split's training fraction
// (default 0.8).
func WithTrainFraction(fraction float64) Option {
	return func(run *Runner) {
		run.trainFraction = fraction
	}
}

// WithSeed sets the run seed. One seed determines the split, every
// strategy's fold assignment, and all resampling draws.
func WithSeed(seed uint64) Option {
	return func(run *Runner) {
		run.seed = seed
	}
}

// WithPositiveLabel replaces the positive label (default dataset.Yes).
func WithPositiveLabel(positive dataset.Label) Option {
	return func(run *Runner) {
		run.positive = positive
	}
}

// WithLogger replaces the runner's logger.
func WithLogger(logger log.Logger) Option {
	return func(run *Runner) {
		run.logger = logger
	}
}

// NewRunner creates a Runner around the classifier collaborator.
func NewRunner(learner model.Learner, opts ...Option) *Runner {
	run := &Runner{
		learner:       learner,
		resamplers:    make(map[resample.Method]resample.Resampler),
		candidates:    harness.DefaultCandidates,
		folds:         10,
		repeats:       5,
		trainFraction: 0.8,
		seed:          42,
		positive:      dataset.Yes,
		logger:        log.GetLoggerWithName("experiment"),
	}
	for _, opt := range opts {
		opt(run)
	}
	return run
}

// Run executes the whole pipeline sequentially: split, then train and
// evaluate each registry strategy in order, then aggregate.
//
// The returned table holds one row per successful strategy, in registry
// order. If any strategy failed, the combined error names each failed
// strategy and its cause; the table is still returned with the surviving
// rows so the comparison stays as complete as possible.
func (run *Runner) Run(ds *dataset.Dataset) (*report.Table, error) {
	return run.execute(ds, false)
}

// RunParallel is Run with the eight mutually independent training runs
// distributed across worker goroutines. Every worker derives its own seed
// state, results are worker-local until aggregation, and the final table is
// in registry order, not completion order. Output is identical to Run for
// the same inputs.
func (run *Runner) RunParallel(ds *dataset.Dataset) (*report.Table, error) {
	return run.execute(ds, true)
}

// Results runs the pipeline and returns the per-strategy outcomes, including
// fitted models and confusion matrices, for callers that render more than
// the summary table.
func (run *Runner) Results(ds *dataset.Dataset) ([]StrategyResult, error) {
	train, test, err := dataset.Split(ds, run.trainFraction, run.seed)
	if err != nil {
		return nil, err
	}
	return run.runStrategies(train, test, false), nil
}

func (run *Runner) execute(ds *dataset.Dataset, inParallel bool) (*report.Table, error) {
	start := time.Now()

	train, test, err := dataset.Split(ds, run.trainFraction, run.seed)
	if err != nil {
		return nil, err
	}
	run.logger.Info("dataset split",
		log.OperationKey, log.OperationSplit,
		log.TrainFractionKey, run.trainFraction,
		log.RandomSeedKey, run.seed,
		log.TrainSamplesKey, train.Len(),
		log.TestSamplesKey, test.Len(),
		log.PositiveFractionKey, ds.LabelFraction(run.positive),
	)

	results := run.runStrategies(train, test, inParallel)

	table := report.NewTable()
	var errs error
	for _, res := range results {
		if res.Err != nil {
			errs = errors.CombineErrors(errs, res.Err)
			continue
		}
		table.Append(res.Config.Name, res.Row)
	}

	run.logger.Info("experiment finished",
		log.OperationKey, log.OperationAggregate,
		"strategies", len(results),
		"rows", table.Len(),
		log.DurationMsKey, time.Since(start).Milliseconds(),
	)
	return table, errs
}

// runStrategies trains and evaluates every registry strategy. Results are
// indexed by registry position regardless of execution order.
func (run *Runner) runStrategies(train, test *dataset.Dataset, inParallel bool) []StrategyResult {
	configs := strategy.Registry(train)
	results := make([]StrategyResult, len(configs))

	runOne := func(i int) {
		results[i] = run.runStrategy(train, test, configs[i])
	}

	if inParallel {
		parallel.Parallelize(len(configs), func(start, end int) {
			for i := start; i < end; i++ {
				runOne(i)
			}
		})
	} else {
		for i := range configs {
			runOne(i)
		}
	}
	return results
}

func (run *Runner) runStrategy(train, test *dataset.Dataset, cfg strategy.Config) StrategyResult {
	res := StrategyResult{Config: cfg}

	// Each strategy gets its own Trainer so seed state is never shared
	// between workers.
	trainer := harness.NewTrainer(run.learner,
		harness.WithResamplers(run.resamplers),
		harness.WithCandidates(run.candidates),
		harness.WithCV(harness.CVSpec{Folds: run.folds, Repeats: run.repeats, Seed: run.seed}),
		harness.WithLogger(run.logger),
	)

	fitted, err := trainer.Train(train, cfg)
	if err != nil {
		run.logger.Error("strategy aborted", log.StrategyKey, cfg.Name, log.ErrAttrKey, err)
		res.Err = err
		return res
	}
	res.Fitted = fitted

	row, err := harness.Evaluate(fitted.Model, test, run.positive)
	if err != nil {
		run.logger.Error("evaluation aborted", log.StrategyKey, cfg.Name, log.ErrAttrKey, err)
		res.Err = errors.Wrapf(err, "evaluation failed for strategy %q", cfg.Name)
		return res
	}
	res.Row = row

	run.logger.Info("strategy evaluated",
		log.OperationKey, log.OperationEvaluate,
		log.StrategyKey, cfg.Name,
		log.AccuracyKey, row.Accuracy,
		log.PrecisionKey, row.Precision,
		log.RecallKey, row.Recall,
		log.SpecificityKey, row.Specificity,
		log.KappaKey, row.Kappa,
	)
	return res
}
