// Package harness implements the training and evaluation harnesses: the
// policy that turns an imbalance-handling strategy into a reproducible,
// cross-validated training run, and the held-out evaluation that turns a
// fitted model into comparable metrics.
package harness

import (
	"math/rand/v2"

	"github.com/YuminosukeSato/imblearn/dataset"
	"github.com/YuminosukeSato/imblearn/pkg/errors"
)

// CVSpec fixes the repeated k-fold cross-validation layout used for model
// selection. The same spec (including Seed) is used for every strategy in a
// run, so all strategies see identical fold assignments.
type CVSpec struct {
	Folds   int
	Repeats int
	Seed    uint64
}

// DefaultCVSpec returns the experiment's standard layout: 10 folds, 5
// repeats.
func DefaultCVSpec(seed uint64) CVSpec {
	return CVSpec{Folds: 10, Repeats: 5, Seed: seed}
}

// Validate checks the layout's structural invariants.
func (spec CVSpec) Validate() error {
	if spec.Folds < 2 {
		return errors.NewValidationError("Folds", "need at least 2 folds", spec.Folds)
	}
	if spec.Repeats < 1 {
		return errors.NewValidationError("Repeats", "need at least 1 repeat", spec.Repeats)
	}
	return nil
}

// Fold is one train/validation index split within a repeat.
type Fold struct {
	TrainIndices []int
	ValIndices   []int
}

// Split generates stratified fold assignments for every repeat. Within each
// repeat every record appears in exactly one validation set; labels are
// distributed across folds so each fold approximates the overall label
// ratio.
//
// The assignment is fully determined by (labels, spec): repeat r uses a PCG
// stream seeded with (spec.Seed, r), so identical inputs give identical
// folds.
func (spec CVSpec) Split(labels []dataset.Label) [][]Fold {
	nSamples := len(labels)

	// Group indices by label, strata ordered by first appearance.
	var strataOrder []dataset.Label
	strata := make(map[dataset.Label][]int)
	for i, label := range labels {
		if _, seen := strata[label]; !seen {
			strataOrder = append(strataOrder, label)
		}
		strata[label] = append(strata[label], i)
	}

	repeats := make([][]Fold, spec.Repeats)
	for r := 0; r < spec.Repeats; r++ {
		rng := rand.New(rand.NewPCG(spec.Seed, uint64(r)))

		folds := make([]Fold, spec.Folds)

		// Distribute each stratum across the folds.
		for _, label := range strataOrder {
			indices := append([]int(nil), strata[label]...)
			rng.Shuffle(len(indices), func(i, j int) {
				indices[i], indices[j] = indices[j], indices[i]
			})

			nClass := len(indices)
			foldSize := nClass / spec.Folds
			remainder := nClass % spec.Folds

			current := 0
			for f := 0; f < spec.Folds; f++ {
				valSize := foldSize
				if f < remainder {
					valSize++
				}
				folds[f].ValIndices = append(folds[f].ValIndices, indices[current:current+valSize]...)
				current += valSize
			}
		}

		// Train sets are the complements of the validation sets, in
		// original record order.
		for f := 0; f < spec.Folds; f++ {
			inVal := make(map[int]bool, len(folds[f].ValIndices))
			for _, idx := range folds[f].ValIndices {
				inVal[idx] = true
			}
			train := make([]int, 0, nSamples-len(folds[f].ValIndices))
			for i := 0; i < nSamples; i++ {
				if !inVal[i] {
					train = append(train, i)
				}
			}
			folds[f].TrainIndices = train
		}

		repeats[r] = folds
	}

	return repeats
}
