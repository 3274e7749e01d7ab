package metrics

import (
	"math"
	"testing"

	"github.com/YuminosukeSato/imblearn/dataset"
	"github.com/YuminosukeSato/imblearn/pkg/errors"
)

const epsilon = 1e-9

func TestNewConfusionMatrix(t *testing.T) {
	actual := []dataset.Label{
		dataset.Yes, dataset.Yes, dataset.No, dataset.No, dataset.Yes, dataset.No,
	}
	predicted := []dataset.Label{
		dataset.Yes, dataset.No, dataset.Yes, dataset.No, dataset.Yes, dataset.No,
	}

	cm, err := NewConfusionMatrix(actual, predicted, dataset.Yes)
	if err != nil {
		t.Fatalf("NewConfusionMatrix() failed: %v", err)
	}

	if cm.TP != 2 || cm.FP != 1 || cm.FN != 1 || cm.TN != 2 {
		t.Errorf("confusion matrix = TP=%d FP=%d FN=%d TN=%d, want TP=2 FP=1 FN=1 TN=2",
			cm.TP, cm.FP, cm.FN, cm.TN)
	}
	if cm.Total() != 6 {
		t.Errorf("Total() = %d, want 6", cm.Total())
	}
}

func TestNewConfusionMatrixValidation(t *testing.T) {
	_, err := NewConfusionMatrix(nil, nil, dataset.Yes)
	if err == nil {
		t.Error("empty label slice should be rejected")
	}

	_, err = NewConfusionMatrix(
		[]dataset.Label{dataset.Yes, dataset.No},
		[]dataset.Label{dataset.Yes},
		dataset.Yes,
	)
	if err == nil {
		t.Error("length mismatch should be rejected")
	}
	var dimErr *errors.DimensionError
	if !errors.As(err, &dimErr) {
		t.Errorf("length mismatch error = %T, want *errors.DimensionError", err)
	}
}

// TestMetricIdentities checks all five metrics against a hand-computed
// matrix: TP=10 FP=5 FN=3 TN=82 (total 100).
func TestMetricIdentities(t *testing.T) {
	cm := &ConfusionMatrix{TP: 10, FP: 5, FN: 3, TN: 82}

	tests := []struct {
		name string
		got  float64
		want float64
	}{
		{"accuracy", cm.Accuracy(), 0.92},
		{"precision", cm.Precision(), 10.0 / 15.0},
		{"recall", cm.Recall(), 10.0 / 13.0},
		{"specificity", cm.Specificity(), 82.0 / 87.0},
		// po=0.92, pe=(15*13+85*87)/10000=0.759, kappa=0.161/0.241
		{"kappa", cm.Kappa(), 0.161 / 0.241},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if math.Abs(tt.got-tt.want) > epsilon {
				t.Errorf("%s = %v, want %v", tt.name, tt.got, tt.want)
			}
		})
	}
}

func TestMetricsIdempotent(t *testing.T) {
	cm := &ConfusionMatrix{TP: 10, FP: 5, FN: 3, TN: 82}
	first := cm.Kappa()
	second := cm.Kappa()
	if first != second {
		t.Errorf("Kappa not idempotent: %v vs %v", first, second)
	}
}

func TestUndefinedMetricsReturnNaN(t *testing.T) {
	tests := []struct {
		name string
		cm   ConfusionMatrix
		eval func(*ConfusionMatrix) float64
	}{
		{"precision with no predicted positives", ConfusionMatrix{TN: 9, FN: 1}, (*ConfusionMatrix).Precision},
		{"recall with no actual positives", ConfusionMatrix{TN: 9, FP: 1}, (*ConfusionMatrix).Recall},
		{"specificity with no actual negatives", ConfusionMatrix{TP: 9, FN: 1}, (*ConfusionMatrix).Specificity},
		{"kappa with degenerate marginals", ConfusionMatrix{TP: 10}, (*ConfusionMatrix).Kappa},
		{"accuracy on empty matrix", ConfusionMatrix{}, (*ConfusionMatrix).Accuracy},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var captured error
			errors.SetWarningHandler(func(w error) { captured = w })
			defer errors.SetWarningHandler(nil)

			got := tt.eval(&tt.cm)
			if !math.IsNaN(got) {
				t.Errorf("metric = %v, want NaN", got)
			}
			if captured == nil {
				t.Fatal("no warning raised for undefined metric")
			}
			var warn *errors.UndefinedMetricWarning
			if !errors.As(captured, &warn) {
				t.Errorf("warning type = %T, want *errors.UndefinedMetricWarning", captured)
			}
		})
	}
}

func TestNewRow(t *testing.T) {
	cm := &ConfusionMatrix{TP: 10, FP: 5, FN: 3, TN: 82}
	row := NewRow(cm)

	if math.Abs(row.Accuracy-0.92) > epsilon {
		t.Errorf("row accuracy = %v, want 0.92", row.Accuracy)
	}
	if math.Abs(row.Kappa-0.161/0.241) > epsilon {
		t.Errorf("row kappa = %v, want %v", row.Kappa, 0.161/0.241)
	}
	if row.Matrix != *cm {
		t.Errorf("row matrix = %+v, want %+v", row.Matrix, *cm)
	}
}

// A row is always complete: undefined metrics stay NaN, the rest are real.
func TestNewRowWithNaN(t *testing.T) {
	errors.SetWarningHandler(func(error) {})
	defer errors.SetWarningHandler(nil)

	cm := &ConfusionMatrix{TN: 9, FN: 1} // no predicted positives
	row := NewRow(cm)

	if !math.IsNaN(row.Precision) {
		t.Errorf("precision = %v, want NaN", row.Precision)
	}
	if math.Abs(row.Accuracy-0.9) > epsilon {
		t.Errorf("accuracy = %v, want 0.9", row.Accuracy)
	}
}
