package analytics

import (
	"testing"
	"time"

	"healthtrack/internal/models"
)

func sleepEntry(hours float64, quality, awakenings int) models.SleepEntry {
	bed := time.Date(2025, 6, 1, 23, 0, 0, 0, time.UTC)
	return models.SleepEntry{
		BedTime:    bed,
		WakeTime:   bed.Add(time.Duration(hours * float64(time.Hour))),
		Quality:    quality,
		Awakenings: awakenings,
	}
}

func TestSleepScore_PerfectNight(t *testing.T) {
	// 8 hours, best quality, uninterrupted: full marks.
	if got := SleepScore(sleepEntry(8, 5, 0)); got != 100 {
		t.Errorf("score = %d, want 100", got)
	}
}

func TestSleepScore_ShortNight(t *testing.T) {
	// 5 hours: duration component drops by 30.
	if got := SleepScore(sleepEntry(5, 5, 0)); got != 70 {
		t.Errorf("score = %d, want 70", got)
	}
}

func TestSleepScore_PoorQuality(t *testing.T) {
	if got := SleepScore(sleepEntry(8, 1, 0)); got != 70 {
		t.Errorf("score = %d, want 70", got)
	}
}

func TestSleepScore_Fragmented(t *testing.T) {
	if got := SleepScore(sleepEntry(8, 5, 2)); got != 90 {
		t.Errorf("score = %d, want 90", got)
	}
	// Penalty bottoms out at zero, never goes negative.
	if got := SleepScore(sleepEntry(8, 5, 10)); got != 80 {
		t.Errorf("score = %d, want 80", got)
	}
}

func TestSleepScore_InvalidDuration(t *testing.T) {
	entry := sleepEntry(8, 3, 0)
	entry.WakeTime = entry.BedTime
	if got := SleepScore(entry); got != 0 {
		t.Errorf("zero-length night score = %d, want 0", got)
	}
}

func TestCalculateSleepSummary(t *testing.T) {
	entries := []models.SleepEntry{
		sleepEntry(8, 5, 0),
		sleepEntry(6, 3, 2),
	}

	summary := CalculateSleepSummary(entries)

	if summary.Count != 2 {
		t.Fatalf("Count = %d, want 2", summary.Count)
	}
	if summary.AvgDuration != 7 {
		t.Errorf("AvgDuration = %v, want 7", summary.AvgDuration)
	}
	if summary.AvgQuality != 4 {
		t.Errorf("AvgQuality = %v, want 4", summary.AvgQuality)
	}
	// Scores: 100 and 30+15+10=55 -> avg 77.5.
	if summary.AvgScore != 77.5 {
		t.Errorf("AvgScore = %v, want 77.5", summary.AvgScore)
	}
}

func TestCalculateSleepSummary_Empty(t *testing.T) {
	summary := CalculateSleepSummary(nil)
	if summary.Count != 0 || summary.AvgScore != 0 {
		t.Errorf("empty summary = %+v", summary)
	}
}
