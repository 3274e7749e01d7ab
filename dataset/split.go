package dataset

import (
	"math/rand/v2"
	"sort"

	"github.com/YuminosukeSato/imblearn/pkg/errors"
)

// Split partitions ds into disjoint train and test subsets, stratified by
// label: each label stratum is sampled independently so both subsets
// approximate the full dataset's label proportions.
//
// The partition is fully determined by (ds, trainFraction, seed). Record
// order inside each subset follows the original dataset order, so two calls
// with identical inputs yield identical subsets, contents and ordering both.
//
// Errors:
//   - InvalidFractionError if trainFraction is not in the open interval (0, 1)
//   - ErrEmptyDataset if ds holds no records
func Split(ds *Dataset, trainFraction float64, seed uint64) (train, test *Dataset, err error) {
	if trainFraction <= 0 || trainFraction >= 1 {
		return nil, nil, errors.NewInvalidFractionError("Split", trainFraction)
	}
	if ds == nil || ds.Len() == 0 {
		return nil, nil, errors.WithStack(errors.ErrEmptyDataset)
	}

	// Group record indices per label, strata ordered by first appearance so
	// the stratum iteration order is a function of the dataset alone.
	var strataOrder []Label
	strata := make(map[Label][]int)
	for i, label := range ds.labels {
		if _, seen := strata[label]; !seen {
			strataOrder = append(strataOrder, label)
		}
		strata[label] = append(strata[label], i)
	}

	rng := rand.New(rand.NewPCG(seed, seed))

	var trainIdx, testIdx []int
	for _, label := range strataOrder {
		indices := strata[label]
		rng.Shuffle(len(indices), func(i, j int) {
			indices[i], indices[j] = indices[j], indices[i]
		})

		trainCount := int(float64(len(indices))*trainFraction + 0.5)
		// Keep both sides of the partition non-degenerate per stratum.
		if trainCount == 0 {
			trainCount = 1
		}
		if trainCount == len(indices) && len(indices) > 1 {
			trainCount--
		}

		trainIdx = append(trainIdx, indices[:trainCount]...)
		testIdx = append(testIdx, indices[trainCount:]...)
	}

	sort.Ints(trainIdx)
	sort.Ints(testIdx)

	return ds.Subset(trainIdx), ds.Subset(testIdx), nil
}
