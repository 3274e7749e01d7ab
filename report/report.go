// Package report assembles per-strategy metrics into one comparison table.
// It is pure data assembly: no metric is recomputed here, and row order is
// whatever order rows were appended in (the strategy registry order, for a
// pipeline run).
package report

import (
	"fmt"
	"strings"

	"github.com/YuminosukeSato/imblearn/metrics"
)

// Row is one named entry of the comparison table.
type Row struct {
	Name    string
	Metrics metrics.Row
}

// Table is the run's final output: an ordered list of per-strategy metric
// rows.
type Table struct {
	rows []Row
}

// NewTable returns an empty comparison table.
func NewTable() *Table {
	return &Table{}
}

// Aggregate builds a table from already-ordered rows.
func Aggregate(rows []Row) *Table {
	t := NewTable()
	for _, r := range rows {
		t.Append(r.Name, r.Metrics)
	}
	return t
}

// Append adds one strategy's metrics to the end of the table.
func (t *Table) Append(name string, m metrics.Row) {
	t.rows = append(t.rows, Row{Name: name, Metrics: m})
}

// Len returns the number of rows.
func (t *Table) Len() int {
	return len(t.rows)
}

// Rows returns a copy of the table's rows in append order.
func (t *Table) Rows() []Row {
	return append([]Row(nil), t.rows...)
}

// String renders a fixed-width text table for logs and quick inspection.
// Richer rendering is left to the caller.
func (t *Table) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%-12s %9s %10s %8s %12s %8s\n",
		"strategy", "accuracy", "precision", "recall", "specificity", "kappa")
	for _, r := range t.rows {
		fmt.Fprintf(&b, "%-12s %9.4f %10.4f %8.4f %12.4f %8.4f\n",
			r.Name,
			r.Metrics.Accuracy,
			r.Metrics.Precision,
			r.Metrics.Recall,
			r.Metrics.Specificity,
			r.Metrics.Kappa,
		)
	}
	return b.String()
}
