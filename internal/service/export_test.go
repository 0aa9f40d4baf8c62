package service

import (
	"strings"
	"testing"
	"time"

	"healthtrack/internal/analytics"
	"healthtrack/internal/models"
)

func TestFormatReadingsCSV(t *testing.T) {
	pulse := 62
	readings := []models.BloodPressureReading{
		{
			Systolic:   145,
			Diastolic:  95,
			Pulse:      &pulse,
			Notes:      "after coffee",
			MeasuredAt: time.Date(2025, 6, 1, 8, 30, 0, 0, time.UTC),
		},
		{
			Systolic:   110,
			Diastolic:  70,
			MeasuredAt: time.Date(2025, 6, 2, 8, 30, 0, 0, time.UTC),
		},
	}

	out, err := formatReadingsCSV(readings, "htnCanada2025")
	if err != nil {
		t.Fatalf("formatReadingsCSV: %v", err)
	}

	lines := strings.Split(strings.TrimSpace(string(out)), "\n")
	if len(lines) != 3 {
		t.Fatalf("got %d lines, want 3: %q", len(lines), string(out))
	}
	if lines[0] != "measured_at,systolic,diastolic,pulse,category,notes" {
		t.Errorf("header = %q", lines[0])
	}
	if !strings.Contains(lines[1], "145,95,62,hypertensionTreat,after coffee") {
		t.Errorf("row 1 = %q", lines[1])
	}
	if !strings.Contains(lines[2], "110,70,,normal,") {
		t.Errorf("row 2 = %q", lines[2])
	}
}

func TestFormatReadingsCSV_UnknownGuideline(t *testing.T) {
	readings := []models.BloodPressureReading{
		{Systolic: 120, Diastolic: 80, MeasuredAt: time.Now()},
	}

	out, err := formatReadingsCSV(readings, "nonexistent")
	if err != nil {
		t.Fatalf("formatReadingsCSV: %v", err)
	}
	// Category cell stays empty rather than guessing a scheme.
	if !strings.Contains(string(out), "120,80,,,") {
		t.Errorf("output = %q", string(out))
	}
}

func TestRenderReport(t *testing.T) {
	bpStats := &BPStatsResponse{
		Guideline:     "simple",
		GuidelineName: "Simplified",
		Summary: analytics.BPSummary{
			Count:            2,
			AvgSystolic:      125,
			AvgDiastolic:     82.5,
			AvgPulsePressure: 42.5,
			AvgMAP:           96.7,
		},
		Categories: []CategoryCount{
			{Category: "normal", Label: "Normal", Count: 1},
			{Category: "hypertension", Label: "Hypertension", Count: 1},
		},
	}
	sleep := &analytics.SleepSummary{Count: 3, AvgDuration: 7.2, AvgScore: 81.5}
	tests := []models.BloodTestResult{
		{
			TakenAt: time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC),
			Lab:     "CityLab",
			Markers: []models.BloodMarker{
				{Name: "Hemoglobin", Value: 14.2, Unit: "g/dL"},
				{Name: "Glucose", Value: 7.9, Unit: "mmol/L", Flagged: true},
			},
		},
	}

	from := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	report := string(renderReport(bpStats, sleep, tests, from, time.Time{}))

	for _, want := range []string{
		"# Health Report",
		"Period: 2025-06-01 - ...",
		"Guideline: Simplified",
		"| Average | 125.0/82.5 mmHg |",
		"- Hypertension: 1",
		"3 nights, average 7.2 h, average score 81.5/100.",
		"### 2025-06-10 (CityLab)",
		"- Glucose: 7.9 mmol/L (!)",
	} {
		if !strings.Contains(report, want) {
			t.Errorf("report missing %q\n%s", want, report)
		}
	}
}

func TestRenderReport_Empty(t *testing.T) {
	bpStats := &BPStatsResponse{GuidelineName: "Simplified"}
	report := string(renderReport(bpStats, &analytics.SleepSummary{}, nil, time.Time{}, time.Time{}))

	for _, want := range []string{
		"No readings in this period.",
		"No sleep entries in this period.",
		"No blood tests in this period.",
	} {
		if !strings.Contains(report, want) {
			t.Errorf("report missing %q", want)
		}
	}
}
