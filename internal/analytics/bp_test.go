package analytics

import (
	"testing"
	"time"

	"healthtrack/internal/bp"
	"healthtrack/internal/models"
)

func reading(systolic, diastolic int, at time.Time) models.BloodPressureReading {
	return models.BloodPressureReading{
		Systolic:   systolic,
		Diastolic:  diastolic,
		MeasuredAt: at,
	}
}

func TestPulsePressureAndMAP(t *testing.T) {
	if got := PulsePressure(120, 80); got != 40 {
		t.Errorf("PulsePressure = %d, want 40", got)
	}
	// MAP(120, 90) = 90 + 30/3 = 100.
	if got := MeanArterialPressure(120, 90); got != 100 {
		t.Errorf("MAP = %v, want 100", got)
	}
}

func TestCalculateBPSummary_Empty(t *testing.T) {
	summary := CalculateBPSummary(nil, bp.DefaultKey)
	if summary.Count != 0 {
		t.Errorf("Count = %d, want 0", summary.Count)
	}
	if len(summary.Distribution) != 0 {
		t.Errorf("Distribution = %v, want empty", summary.Distribution)
	}
}

func TestCalculateBPSummary_Averages(t *testing.T) {
	base := time.Date(2025, 6, 1, 8, 0, 0, 0, time.UTC)
	readings := []models.BloodPressureReading{
		reading(110, 70, base),
		reading(130, 90, base.AddDate(0, 0, 1)),
	}

	summary := CalculateBPSummary(readings, bp.DefaultKey)

	if summary.AvgSystolic != 120 || summary.AvgDiastolic != 80 {
		t.Errorf("averages = %v/%v, want 120/80", summary.AvgSystolic, summary.AvgDiastolic)
	}
	if summary.MinSystolic != 110 || summary.MaxSystolic != 130 {
		t.Errorf("systolic range = %v..%v", summary.MinSystolic, summary.MaxSystolic)
	}
	if summary.AvgPulsePressure != 40 {
		t.Errorf("AvgPulsePressure = %v, want 40", summary.AvgPulsePressure)
	}
	// MAP: (80+40/3 + ... ) averages to 93.3 for these two readings.
	if summary.AvgMAP != 93.3 {
		t.Errorf("AvgMAP = %v, want 93.3", summary.AvgMAP)
	}
}

func TestCalculateBPSummary_Distribution(t *testing.T) {
	base := time.Date(2025, 6, 1, 8, 0, 0, 0, time.UTC)
	readings := []models.BloodPressureReading{
		reading(110, 70, base),
		reading(115, 75, base.AddDate(0, 0, 1)),
		reading(145, 95, base.AddDate(0, 0, 2)),
	}

	summary := CalculateBPSummary(readings, "htnCanada2025")

	if summary.Distribution["normal"] != 2 {
		t.Errorf("normal count = %d, want 2", summary.Distribution["normal"])
	}
	if summary.Distribution["hypertensionTreat"] != 1 {
		t.Errorf("hypertensionTreat count = %d, want 1", summary.Distribution["hypertensionTreat"])
	}
}

func TestCalculateBPSummary_UnknownGuidelineSkipsDistribution(t *testing.T) {
	base := time.Date(2025, 6, 1, 8, 0, 0, 0, time.UTC)
	summary := CalculateBPSummary([]models.BloodPressureReading{reading(120, 80, base)}, "nonexistent")

	if len(summary.Distribution) != 0 {
		t.Errorf("Distribution = %v, want empty for unknown guideline", summary.Distribution)
	}
	// Числовая сводка от гайдлайна не зависит
	if summary.AvgSystolic != 120 {
		t.Errorf("AvgSystolic = %v, want 120", summary.AvgSystolic)
	}
}

func TestCalculateBPSummary_Trend(t *testing.T) {
	base := time.Date(2025, 6, 1, 8, 0, 0, 0, time.UTC)
	// Systolic climbs exactly 2 mmHg per day.
	readings := []models.BloodPressureReading{
		reading(120, 80, base),
		reading(122, 80, base.AddDate(0, 0, 1)),
		reading(124, 80, base.AddDate(0, 0, 2)),
	}

	summary := CalculateBPSummary(readings, bp.DefaultKey)

	if summary.SystolicTrend < 1.99 || summary.SystolicTrend > 2.01 {
		t.Errorf("SystolicTrend = %v, want 2", summary.SystolicTrend)
	}
	if summary.DiastolicTrend != 0 {
		t.Errorf("DiastolicTrend = %v, want 0", summary.DiastolicTrend)
	}
}
