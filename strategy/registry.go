package strategy

import (
	"github.com/YuminosukeSato/imblearn/dataset"
	"github.com/YuminosukeSato/imblearn/resample"
)

// Registry returns the fixed, ordered list of the eight imbalance-handling
// strategies. The order is the evaluation and reporting order of the
// comparison table.
//
// The Weighted strategy's positive-class weight is computed from the given
// training set: weight = count(No) / count(Yes), applied to every "Yes"
// record, with "No" records weighted 1.0. This upweights the minority
// positive class in proportion to its scarcity.
func Registry(train *dataset.Dataset) []Config {
	return []Config{
		{
			Name:            "Original",
			SelectionMetric: Accuracy,
			Resampling:      resample.None,
		},
		{
			Name:            "Kappa",
			SelectionMetric: Kappa,
			Resampling:      resample.None,
		},
		{
			Name:            "Weighted",
			SelectionMetric: Accuracy,
			InstanceWeights: map[dataset.Label]float64{
				dataset.Yes: PositiveWeight(train),
				dataset.No:  1.0,
			},
			Resampling: resample.None,
		},
		{
			Name:            "Cost FN",
			SelectionMetric: Accuracy,
			CostMatrix:      NewCostMatrix(1, 4),
			Resampling:      resample.None,
		},
		{
			Name:            "Cost FP",
			SelectionMetric: Accuracy,
			CostMatrix:      NewCostMatrix(4, 1),
			Resampling:      resample.None,
		},
		{
			Name:            "Down",
			SelectionMetric: Accuracy,
			Resampling:      resample.Down,
		},
		{
			Name:            "SMOTE",
			SelectionMetric: Accuracy,
			Resampling:      resample.SMOTE,
		},
		{
			Name:            "All",
			SelectionMetric: Kappa,
			Resampling:      resample.Down,
		},
	}
}

// PositiveWeight computes the Weighted strategy's minority-class weight,
// count(No) / count(Yes), from the given training set. A training set with
// no positive records gets weight 1.0; training on such a set fails later
// with a degenerate-sample error anyway.
func PositiveWeight(train *dataset.Dataset) float64 {
	countYes := train.CountLabel(dataset.Yes)
	if countYes == 0 {
		return 1.0
	}
	return float64(train.CountLabel(dataset.No)) / float64(countYes)
}
