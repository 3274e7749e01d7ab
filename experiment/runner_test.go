package experiment

import (
	"testing"

	"gonum.org/v1/gonum/mat"

	"github.com/YuminosukeSato/imblearn/core/model"
	"github.com/YuminosukeSato/imblearn/dataset"
	"github.com/YuminosukeSato/imblearn/pkg/errors"
	"github.com/YuminosukeSato/imblearn/pkg/log"
	"github.com/YuminosukeSato/imblearn/resample"
)

// makeDataset builds an imbalanced dataset: yes positives followed by no
// negatives, with a cyclic second feature the fake learner keys off.
func makeDataset(t *testing.T, yes, no int) *dataset.Dataset {
	t.Helper()

	n := yes + no
	x := mat.NewDense(n, 2, nil)
	labels := make([]dataset.Label, n)
	for i := 0; i < n; i++ {
		x.Set(i, 0, float64(i))
		x.Set(i, 1, float64(i%7))
		if i < yes {
			labels[i] = dataset.Yes
		} else {
			labels[i] = dataset.No
		}
	}

	ds, err := dataset.New([]string{"id", "tenure"}, x, labels)
	if err != nil {
		t.Fatalf("dataset.New() failed: %v", err)
	}
	return ds
}

func quietLogger(t *testing.T) log.Logger {
	t.Helper()
	logger, _ := log.NewTestLogger(log.LevelError)
	return logger
}

// featureModel predicts Yes when the second feature is under the cutoff,
// which yields mixed predictions and a full confusion matrix.
type featureModel struct {
	cutoff float64
}

func (m featureModel) Predict(rec dataset.Record) (dataset.Label, error) {
	if rec.Values[1] < m.cutoff {
		return dataset.Yes, nil
	}
	return dataset.No, nil
}

// featureLearner is a deterministic stand-in classifier that accepts every
// strategy configuration.
type featureLearner struct{}

func (featureLearner) Fit(train *dataset.Dataset, _ float64, _ model.FitOptions) (model.Model, error) {
	if train.Len() == 0 {
		return nil, errors.New("empty training sample")
	}
	return featureModel{cutoff: 2}, nil
}

// identityResampler returns the training sample unchanged.
type identityResampler struct{}

func (identityResampler) Resample(train *dataset.Dataset, _ uint64) (*dataset.Dataset, error) {
	return train, nil
}

func allResamplers() map[resample.Method]resample.Resampler {
	return map[resample.Method]resample.Resampler{
		resample.Down:  identityResampler{},
		resample.SMOTE: identityResampler{},
	}
}

var registryOrder = []string{"Original", "Kappa", "Weighted", "Cost FN", "Cost FP", "Down", "SMOTE", "All"}

func newTestRunner(t *testing.T, opts ...Option) *Runner {
	t.Helper()
	base := []Option{
		WithCV(4, 2),
		WithCandidates([]float64{0.01, 0.05}),
		WithSeed(42),
		WithLogger(quietLogger(t)),
	}
	return NewRunner(featureLearner{}, append(base, opts...)...)
}

func TestRunAllStrategies(t *testing.T) {
	ds := makeDataset(t, 20, 80)
	runner := newTestRunner(t, WithResamplers(allResamplers()))

	table, err := runner.Run(ds)
	if err != nil {
		t.Fatalf("Run() failed: %v", err)
	}

	if table.Len() != len(registryOrder) {
		t.Fatalf("table has %d rows, want %d", table.Len(), len(registryOrder))
	}
	for i, row := range table.Rows() {
		if row.Name != registryOrder[i] {
			t.Errorf("row %d = %q, want %q", i, row.Name, registryOrder[i])
		}
	}
}

func TestRunDeterministic(t *testing.T) {
	ds := makeDataset(t, 20, 80)

	run := func() string {
		table, err := newTestRunner(t, WithResamplers(allResamplers())).Run(ds)
		if err != nil {
			t.Fatalf("Run() failed: %v", err)
		}
		return table.String()
	}

	if first, second := run(), run(); first != second {
		t.Errorf("identical runs rendered different tables:\n%s\nvs\n%s", first, second)
	}
}

func TestRunParallelMatchesRun(t *testing.T) {
	ds := makeDataset(t, 20, 80)

	sequential, err := newTestRunner(t, WithResamplers(allResamplers())).Run(ds)
	if err != nil {
		t.Fatalf("Run() failed: %v", err)
	}
	parallel, err := newTestRunner(t, WithResamplers(allResamplers())).RunParallel(ds)
	if err != nil {
		t.Fatalf("RunParallel() failed: %v", err)
	}

	if sequential.String() != parallel.String() {
		t.Errorf("parallel table differs from sequential:\n%s\nvs\n%s",
			sequential.String(), parallel.String())
	}
}

// Without registered resamplers the three resampling strategies fail, the
// other five still make it into the table, in registry order.
func TestRunSurvivesStrategyFailures(t *testing.T) {
	ds := makeDataset(t, 20, 80)
	runner := newTestRunner(t)

	table, err := runner.Run(ds)
	if err == nil {
		t.Fatal("Run() reported no error despite missing resamplers")
	}

	wantRows := []string{"Original", "Kappa", "Weighted", "Cost FN", "Cost FP"}
	if table.Len() != len(wantRows) {
		t.Fatalf("table has %d rows, want %d:\n%s", table.Len(), len(wantRows), table)
	}
	for i, row := range table.Rows() {
		if row.Name != wantRows[i] {
			t.Errorf("row %d = %q, want %q", i, row.Name, wantRows[i])
		}
	}

	var verr *errors.ValidationError
	if !errors.As(err, &verr) {
		t.Errorf("combined error does not expose the missing-resampler cause: %v", err)
	}
}

func TestResults(t *testing.T) {
	ds := makeDataset(t, 20, 80)
	runner := newTestRunner(t)

	results, err := runner.Results(ds)
	if err != nil {
		t.Fatalf("Results() failed: %v", err)
	}
	if len(results) != len(registryOrder) {
		t.Fatalf("got %d results, want %d", len(results), len(registryOrder))
	}

	failing := map[string]bool{"Down": true, "SMOTE": true, "All": true}
	for i, res := range results {
		if res.Config.Name != registryOrder[i] {
			t.Errorf("result %d strategy = %q, want %q", i, res.Config.Name, registryOrder[i])
		}
		if failing[res.Config.Name] {
			if res.Err == nil {
				t.Errorf("strategy %q should fail without a resampler", res.Config.Name)
			}
			if res.Fitted != nil {
				t.Errorf("failed strategy %q carries a fitted model", res.Config.Name)
			}
			continue
		}
		if res.Err != nil {
			t.Errorf("strategy %q failed: %v", res.Config.Name, res.Err)
		}
		if res.Fitted == nil {
			t.Errorf("strategy %q has no fitted model", res.Config.Name)
			continue
		}
		if res.Fitted.Strategy != res.Config.Name {
			t.Errorf("fitted model names strategy %q, want %q", res.Fitted.Strategy, res.Config.Name)
		}
		if res.Row.Matrix.Total() == 0 {
			t.Errorf("strategy %q has an empty evaluation matrix", res.Config.Name)
		}
	}
}

func TestRunInvalidSplit(t *testing.T) {
	ds := makeDataset(t, 20, 80)
	runner := newTestRunner(t, WithTrainFraction(1.5))

	if _, err := runner.Run(ds); err == nil {
		t.Error("invalid train fraction accepted")
	}

	var ferr *errors.InvalidFractionError
	_, err := runner.Run(ds)
	if !errors.As(err, &ferr) {
		t.Errorf("error type = %T, want *errors.InvalidFractionError", err)
	}
}
