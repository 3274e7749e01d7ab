package harness

import (
	"github.com/YuminosukeSato/imblearn/core/model"
	"github.com/YuminosukeSato/imblearn/dataset"
	"github.com/YuminosukeSato/imblearn/metrics"
	"github.com/YuminosukeSato/imblearn/pkg/errors"
)

// Evaluate predicts a label for every record of testSet and derives the
// metrics row from the resulting confusion matrix, with rows and columns
// ordered {positive, negative}.
//
// Undefined metrics (zero denominators) surface as NaN sentinels inside the
// row rather than as errors, so the comparison table always gets a complete
// row per surviving strategy. Neither m nor testSet is mutated, and
// re-running Evaluate on the same inputs yields a bit-identical row.
func Evaluate(m model.Model, testSet *dataset.Dataset, positive dataset.Label) (metrics.Row, error) {
	if m == nil {
		return metrics.Row{}, errors.NewValueError("Evaluate", "nil model")
	}
	if testSet == nil || testSet.Len() == 0 {
		return metrics.Row{}, errors.WithStack(errors.ErrEmptyDataset)
	}

	actual := testSet.Labels()
	predicted := make([]dataset.Label, testSet.Len())
	for i := 0; i < testSet.Len(); i++ {
		p, err := m.Predict(testSet.Record(i))
		if err != nil {
			return metrics.Row{}, errors.Wrapf(err, "Evaluate: prediction failed at record %d", i)
		}
		predicted[i] = p
	}

	cm, err := metrics.NewConfusionMatrix(actual, predicted, positive)
	if err != nil {
		return metrics.Row{}, err
	}
	return metrics.NewRow(cm), nil
}
