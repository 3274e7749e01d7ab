package dataset

import (
	"math"
	"testing"

	"github.com/YuminosukeSato/imblearn/pkg/errors"
)

func TestSplitInvalidFraction(t *testing.T) {
	ds := makeDataset(t, 10, 40)

	for _, fraction := range []float64{0, 1, -0.3, 1.7} {
		_, _, err := Split(ds, fraction, 1)
		if err == nil {
			t.Errorf("Split(fraction=%v) expected error", fraction)
			continue
		}
		var fracErr *errors.InvalidFractionError
		if !errors.As(err, &fracErr) {
			t.Errorf("Split(fraction=%v) error = %v, want InvalidFractionError", fraction, err)
		}
	}
}

func TestSplitEmptyDataset(t *testing.T) {
	ds, err := New([]string{"a"}, nil, nil)
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}

	_, _, err = Split(ds, 0.7, 1)
	if !errors.Is(err, errors.ErrEmptyDataset) {
		t.Errorf("Split on empty dataset error = %v, want ErrEmptyDataset", err)
	}
}

func TestSplitDeterminism(t *testing.T) {
	ds := makeDataset(t, 30, 170)

	train1, test1, err := Split(ds, 0.7, 42)
	if err != nil {
		t.Fatalf("Split() failed: %v", err)
	}
	train2, test2, err := Split(ds, 0.7, 42)
	if err != nil {
		t.Fatalf("Split() failed: %v", err)
	}

	assertEqualDatasets(t, train1, train2)
	assertEqualDatasets(t, test1, test2)
}

func TestSplitSeedChangesPartition(t *testing.T) {
	ds := makeDataset(t, 30, 170)

	train1, _, err := Split(ds, 0.7, 1)
	if err != nil {
		t.Fatalf("Split() failed: %v", err)
	}
	train2, _, err := Split(ds, 0.7, 2)
	if err != nil {
		t.Fatalf("Split() failed: %v", err)
	}

	if datasetsEqual(train1, train2) {
		t.Error("Different seeds produced the same partition")
	}
}

func TestSplitPartition(t *testing.T) {
	ds := makeDataset(t, 37, 163)

	train, test, err := Split(ds, 0.8, 7)
	if err != nil {
		t.Fatalf("Split() failed: %v", err)
	}

	if train.Len()+test.Len() != ds.Len() {
		t.Errorf("|train| + |test| = %d, want %d", train.Len()+test.Len(), ds.Len())
	}

	// Record identity via the unique first feature value.
	seen := make(map[float64]bool)
	for _, sub := range []*Dataset{train, test} {
		for i := 0; i < sub.Len(); i++ {
			id := sub.Record(i).Values[0]
			if seen[id] {
				t.Fatalf("record %v appears in both subsets", id)
			}
			seen[id] = true
		}
	}
	if len(seen) != ds.Len() {
		t.Errorf("partition covers %d records, want %d", len(seen), ds.Len())
	}
}

func TestSplitStratification(t *testing.T) {
	ds := makeDataset(t, 160, 840) // 16% positive, realistic size

	train, test, err := Split(ds, 0.75, 99)
	if err != nil {
		t.Fatalf("Split() failed: %v", err)
	}

	overall := ds.LabelFraction(Yes)
	const eps = 0.05
	if got := train.LabelFraction(Yes); math.Abs(got-overall) >= eps {
		t.Errorf("train positive fraction = %v, want within %v of %v", got, eps, overall)
	}
	if got := test.LabelFraction(Yes); math.Abs(got-overall) >= eps {
		t.Errorf("test positive fraction = %v, want within %v of %v", got, eps, overall)
	}
}

func TestSplitTinyStratum(t *testing.T) {
	// Two positives must not all land on one side when the fraction would
	// round a stratum to zero.
	ds := makeDataset(t, 2, 18)

	train, test, err := Split(ds, 0.9, 3)
	if err != nil {
		t.Fatalf("Split() failed: %v", err)
	}

	if train.CountLabel(Yes) == 0 {
		t.Error("train lost every positive record")
	}
	if train.Len()+test.Len() != 20 {
		t.Errorf("partition size = %d, want 20", train.Len()+test.Len())
	}
}

func assertEqualDatasets(t *testing.T, a, b *Dataset) {
	t.Helper()
	if !datasetsEqual(a, b) {
		t.Error("datasets differ in contents or ordering")
	}
}

func datasetsEqual(a, b *Dataset) bool {
	if a.Len() != b.Len() {
		return false
	}
	for i := 0; i < a.Len(); i++ {
		ra, rb := a.Record(i), b.Record(i)
		if ra.Label != rb.Label {
			return false
		}
		for j := range ra.Values {
			if ra.Values[j] != rb.Values[j] {
				return false
			}
		}
	}
	return true
}
