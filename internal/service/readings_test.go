package service

import (
	"testing"

	"healthtrack/internal/models"
)

func TestValidateReading(t *testing.T) {
	cases := []struct {
		systolic  int
		diastolic int
		ok        bool
	}{
		{120, 80, true},
		{400, 300, true},
		{0, 80, false},
		{120, 0, false},
		{-5, 80, false},
		{401, 80, false},
		{120, 301, false},
		{80, 120, false}, // swapped values
		{90, 90, false},
	}

	for _, tc := range cases {
		err := validateReading(tc.systolic, tc.diastolic)
		if tc.ok && err != nil {
			t.Errorf("validateReading(%d, %d) = %v, want nil", tc.systolic, tc.diastolic, err)
		}
		if !tc.ok && err == nil {
			t.Errorf("validateReading(%d, %d) = nil, want error", tc.systolic, tc.diastolic)
		}
	}
}

func TestAnnotate(t *testing.T) {
	reading := &models.BloodPressureReading{Systolic: 135, Diastolic: 85}

	response := annotate(reading, "htnCanada2025")
	if response.Category != "hypertensionCanada" {
		t.Errorf("Category = %q, want hypertensionCanada", response.Category)
	}
	if response.CategoryLabel == "" || response.CategoryColor == "" {
		t.Errorf("metadata not attached: %+v", response)
	}
}

func TestAnnotate_UnknownGuideline(t *testing.T) {
	reading := &models.BloodPressureReading{Systolic: 135, Diastolic: 85}

	// Unknown scheme: category stays empty so the UI can suppress the badge
	// instead of showing a wrong tier.
	response := annotate(reading, "nonexistent")
	if response.Category != "" || response.CategoryLabel != "" {
		t.Errorf("expected no category, got %+v", response)
	}
}

func TestFlagMarkers(t *testing.T) {
	low := 4.0
	high := 6.0
	markers := flagMarkers([]models.BloodMarker{
		{Name: "in range", Value: 5, RefLow: &low, RefHigh: &high},
		{Name: "too high", Value: 7, RefLow: &low, RefHigh: &high},
		{Name: "too low", Value: 3, RefLow: &low, RefHigh: &high},
		{Name: "no bounds", Value: 100},
	})

	want := []bool{false, true, true, false}
	for i, m := range markers {
		if m.Flagged != want[i] {
			t.Errorf("%s: Flagged = %v, want %v", m.Name, m.Flagged, want[i])
		}
	}
}
