package strategy

import (
	"github.com/YuminosukeSato/imblearn/dataset"
)

// CostMatrix assigns a loss to each (predicted, actual) label pair. It is
// passed to the classifier collaborator as an asymmetric misclassification
// loss, replacing the default symmetric one. Correct predictions always cost
// zero.
type CostMatrix struct {
	// indexed by (predicted, actual); 0 = positive ("Yes"), 1 = negative ("No")
	cells [2][2]float64
}

// NewCostMatrix builds a cost matrix from the two off-diagonal losses: the
// cost of a false positive (predicted Yes, actual No) and of a false
// negative (predicted No, actual Yes).
func NewCostMatrix(fpCost, fnCost float64) *CostMatrix {
	cm := &CostMatrix{}
	cm.cells[0][1] = fpCost
	cm.cells[1][0] = fnCost
	return cm
}

// At returns the loss for the given (predicted, actual) pair.
func (c *CostMatrix) At(predicted, actual dataset.Label) float64 {
	return c.cells[labelIndex(predicted)][labelIndex(actual)]
}

// FalsePositiveCost returns the loss of predicting Yes for an actual No.
func (c *CostMatrix) FalsePositiveCost() float64 {
	return c.cells[0][1]
}

// FalseNegativeCost returns the loss of predicting No for an actual Yes.
func (c *CostMatrix) FalseNegativeCost() float64 {
	return c.cells[1][0]
}

func labelIndex(l dataset.Label) int {
	if l == dataset.Yes {
		return 0
	}
	return 1
}
