package preprocessing

import (
	"reflect"
	"testing"

	"github.com/YuminosukeSato/imblearn/pkg/errors"
)

func TestLabelEncoderFitTransform(t *testing.T) {
	enc := NewLabelEncoder()
	codes, err := enc.FitTransform([]string{"Sales", "R&D", "Sales", "HR", "R&D"})
	if err != nil {
		t.Fatalf("FitTransform() failed: %v", err)
	}

	// Codes reflect first-appearance order.
	want := []float64{0, 1, 0, 2, 1}
	if !reflect.DeepEqual(codes, want) {
		t.Errorf("codes = %v, want %v", codes, want)
	}
	if !reflect.DeepEqual(enc.Classes, []string{"Sales", "R&D", "HR"}) {
		t.Errorf("Classes = %v, want [Sales R&D HR]", enc.Classes)
	}
}

func TestLabelEncoderRoundTrip(t *testing.T) {
	enc := NewLabelEncoder()
	input := []string{"Yes", "No", "No", "Yes", "No"}

	codes, err := enc.FitTransform(input)
	if err != nil {
		t.Fatalf("FitTransform() failed: %v", err)
	}
	back, err := enc.InverseTransform(codes)
	if err != nil {
		t.Fatalf("InverseTransform() failed: %v", err)
	}
	if !reflect.DeepEqual(back, input) {
		t.Errorf("round trip = %v, want %v", back, input)
	}
}

func TestLabelEncoderDeterministic(t *testing.T) {
	input := []string{"c", "a", "b", "a", "c"}

	a := NewLabelEncoder()
	first, err := a.FitTransform(input)
	if err != nil {
		t.Fatalf("FitTransform() failed: %v", err)
	}
	b := NewLabelEncoder()
	second, err := b.FitTransform(input)
	if err != nil {
		t.Fatalf("FitTransform() failed: %v", err)
	}
	if !reflect.DeepEqual(first, second) {
		t.Errorf("same input encoded differently: %v vs %v", first, second)
	}
}

func TestLabelEncoderUnknownCategory(t *testing.T) {
	enc := NewLabelEncoder()
	if err := enc.Fit([]string{"a", "b"}); err != nil {
		t.Fatalf("Fit() failed: %v", err)
	}

	_, err := enc.Transform([]string{"a", "c"})
	var verr *errors.ValidationError
	if !errors.As(err, &verr) {
		t.Errorf("unknown category error = %T, want *errors.ValidationError", err)
	}
}

func TestLabelEncoderInverseUnknownCode(t *testing.T) {
	enc := NewLabelEncoder()
	if err := enc.Fit([]string{"a", "b"}); err != nil {
		t.Fatalf("Fit() failed: %v", err)
	}

	tests := []struct {
		name  string
		codes []float64
	}{
		{"out of range", []float64{5}},
		{"negative", []float64{-1}},
		{"fractional", []float64{0.5}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := enc.InverseTransform(tt.codes); err == nil {
				t.Errorf("InverseTransform(%v) accepted an unknown encoding", tt.codes)
			}
		})
	}
}

func TestLabelEncoderNotFitted(t *testing.T) {
	enc := NewLabelEncoder()

	_, err := enc.Transform([]string{"a"})
	var nfe *errors.NotFittedError
	if !errors.As(err, &nfe) {
		t.Errorf("Transform error = %T, want *errors.NotFittedError", err)
	}

	if _, err := enc.InverseTransform([]float64{0}); err == nil {
		t.Error("InverseTransform on unfitted encoder succeeded")
	}
}

func TestLabelEncoderEmptyInput(t *testing.T) {
	enc := NewLabelEncoder()
	if err := enc.Fit(nil); err == nil {
		t.Error("Fit(nil) succeeded")
	}
}

func TestLabelEncoderRefit(t *testing.T) {
	enc := NewLabelEncoder()
	if _, err := enc.FitTransform([]string{"a", "b", "c"}); err != nil {
		t.Fatalf("FitTransform() failed: %v", err)
	}

	// Refitting replaces the vocabulary completely.
	if err := enc.Fit([]string{"x", "y"}); err != nil {
		t.Fatalf("refit failed: %v", err)
	}
	if !reflect.DeepEqual(enc.Classes, []string{"x", "y"}) {
		t.Errorf("Classes after refit = %v, want [x y]", enc.Classes)
	}
	if _, err := enc.Transform([]string{"a"}); err == nil {
		t.Error("old vocabulary survived a refit")
	}
}
