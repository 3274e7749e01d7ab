// Package dataset provides the record, dataset and stratified splitting
// primitives for imbalanced binary classification experiments.
package dataset

import (
	"gonum.org/v1/gonum/mat"

	"github.com/YuminosukeSato/imblearn/pkg/errors"
)

// Label is the binary outcome attached to every record.
type Label string

const (
	// Yes is the positive (minority) outcome, e.g. an employee who left.
	Yes Label = "Yes"
	// No is the negative (majority) outcome.
	No Label = "No"
)

// Record is one immutable row of a dataset: encoded feature values plus the
// outcome label. Values are aligned with the owning Dataset's feature names.
type Record struct {
	Values []float64
	Label  Label
}

// Dataset is an ordered collection of records sharing one schema.
// It is immutable after construction: accessors return copies or read-only
// views, and Subset produces a new Dataset.
type Dataset struct {
	names  []string
	x      *mat.Dense // nil when the dataset is empty
	labels []Label
}

// New creates a Dataset from a feature matrix and a label per row.
// The inputs are copied so later mutation of the arguments cannot affect the
// Dataset. A zero-row dataset is valid here; operations that cannot work on
// one (such as Split) reject it.
func New(names []string, x mat.Matrix, labels []Label) (*Dataset, error) {
	rows, cols := 0, len(names)
	if x != nil {
		rows, cols = x.Dims()
	}
	if x != nil && cols != len(names) {
		return nil, errors.NewDimensionError("dataset.New", len(names), cols, 1)
	}
	if rows != len(labels) {
		return nil, errors.NewDimensionError("dataset.New", rows, len(labels), 0)
	}

	ds := &Dataset{
		names:  append([]string(nil), names...),
		labels: append([]Label(nil), labels...),
	}
	if rows > 0 {
		ds.x = mat.DenseCopyOf(x)
	}
	return ds, nil
}

// FromRecords creates a Dataset from individual records. Every record must
// have exactly len(names) values.
func FromRecords(names []string, records []Record) (*Dataset, error) {
	if len(records) == 0 {
		return &Dataset{names: append([]string(nil), names...)}, nil
	}

	x := mat.NewDense(len(records), len(names), nil)
	labels := make([]Label, len(records))
	for i, rec := range records {
		if len(rec.Values) != len(names) {
			return nil, errors.NewDimensionError("dataset.FromRecords", len(names), len(rec.Values), 1)
		}
		x.SetRow(i, rec.Values)
		labels[i] = rec.Label
	}
	return New(names, x, labels)
}

// Len returns the number of records.
func (ds *Dataset) Len() int {
	return len(ds.labels)
}

// NumFeatures returns the number of features per record.
func (ds *Dataset) NumFeatures() int {
	return len(ds.names)
}

// FeatureNames returns a copy of the schema's feature names.
func (ds *Dataset) FeatureNames() []string {
	return append([]string(nil), ds.names...)
}

// Features returns the feature block as a matrix. Returns nil for an empty
// dataset. The returned matrix must be treated as read-only.
func (ds *Dataset) Features() mat.Matrix {
	if ds.x == nil {
		return nil
	}
	return ds.x
}

// Labels returns a copy of the label column.
func (ds *Dataset) Labels() []Label {
	return append([]Label(nil), ds.labels...)
}

// Record returns a copy of record i.
func (ds *Dataset) Record(i int) Record {
	values := make([]float64, len(ds.names))
	mat.Row(values, i, ds.x)
	return Record{Values: values, Label: ds.labels[i]}
}

// CountLabel returns the number of records carrying the given label.
func (ds *Dataset) CountLabel(l Label) int {
	n := 0
	for _, label := range ds.labels {
		if label == l {
			n++
		}
	}
	return n
}

// LabelFraction returns the proportion of records carrying the given label.
// Returns 0 for an empty dataset.
func (ds *Dataset) LabelFraction(l Label) float64 {
	if ds.Len() == 0 {
		return 0
	}
	return float64(ds.CountLabel(l)) / float64(ds.Len())
}

// Subset returns a new Dataset containing the rows at the given indices, in
// the given order. Rows are copied.
func (ds *Dataset) Subset(indices []int) *Dataset {
	sub := &Dataset{
		names:  append([]string(nil), ds.names...),
		labels: make([]Label, len(indices)),
	}
	if len(indices) == 0 {
		return sub
	}

	x := mat.NewDense(len(indices), len(ds.names), nil)
	row := make([]float64, len(ds.names))
	for i, idx := range indices {
		mat.Row(row, idx, ds.x)
		x.SetRow(i, row)
		sub.labels[i] = ds.labels[idx]
	}
	sub.x = x
	return sub
}
