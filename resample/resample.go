// Package resample defines the resampler collaborator contract used by the
// training harness to rebalance fold-training data.
//
// The transforms themselves (random majority down-sampling, SMOTE synthesis)
// are external collaborators; this package only names the methods a strategy
// can request and the interface an implementation must satisfy.
package resample

import (
	"github.com/YuminosukeSato/imblearn/dataset"
)

// Method identifies a resampling transform.
type Method int

const (
	// None leaves the training data untouched.
	None Method = iota
	// Down randomly discards majority-label records until both labels have
	// equal count.
	Down
	// SMOTE synthesizes minority-label records by feature-space
	// interpolation between nearest same-label neighbors, combined with some
	// majority down-sampling, until classes are approximately balanced.
	SMOTE
)

// String returns the method name as used in strategy configurations.
func (m Method) String() string {
	switch m {
	case None:
		return "None"
	case Down:
		return "Down"
	case SMOTE:
		return "SMOTE"
	default:
		return "Unknown"
	}
}

// Resampler rebalances a training sample. Implementations must be
// deterministic for a fixed (train, seed) pair and must not mutate train.
//
// The harness only ever applies a Resampler to the training portion of a CV
// fold or to the final training set, never to validation or test data.
type Resampler interface {
	Resample(train *dataset.Dataset, seed uint64) (*dataset.Dataset, error)
}
