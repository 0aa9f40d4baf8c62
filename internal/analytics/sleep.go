package analytics

import (
	"math"

	"healthtrack/internal/models"
	"healthtrack/pkg/utils"
)

// SleepSummary агрегированная статистика по сну
type SleepSummary struct {
	Count         int     `json:"count"`
	AvgDuration   float64 `json:"avg_duration_hours"`
	AvgQuality    float64 `json:"avg_quality"`
	AvgAwakenings float64 `json:"avg_awakenings"`
	AvgScore      float64 `json:"avg_score"`
}

// SleepScore сводит ночь к скору 0-100: до 50 баллов за длительность
// (оптимум 8 часов, минус 10 за каждый час отклонения), до 30 за субъективное
// качество и до 20 за непрерывность сна.
func SleepScore(entry models.SleepEntry) int {
	hours := entry.Duration()
	if hours <= 0 {
		return 0
	}

	duration := 50.0 - 10.0*math.Abs(hours-8.0)
	if duration < 0 {
		duration = 0
	}

	quality := 7.5 * float64(entry.Quality-1)
	if quality < 0 {
		quality = 0
	}
	if quality > 30 {
		quality = 30
	}

	continuity := 20.0 - 5.0*float64(entry.Awakenings)
	if continuity < 0 {
		continuity = 0
	}

	score := int(math.Round(duration + quality + continuity))
	if score > 100 {
		score = 100
	}
	return score
}

// CalculateSleepSummary считает сводку по набору записей сна
func CalculateSleepSummary(entries []models.SleepEntry) SleepSummary {
	summary := SleepSummary{Count: len(entries)}
	if len(entries) == 0 {
		return summary
	}

	durations := make([]float64, 0, len(entries))
	qualities := make([]float64, 0, len(entries))
	awakenings := make([]float64, 0, len(entries))
	scores := make([]float64, 0, len(entries))

	for _, e := range entries {
		durations = append(durations, e.Duration())
		qualities = append(qualities, float64(e.Quality))
		awakenings = append(awakenings, float64(e.Awakenings))
		scores = append(scores, float64(SleepScore(e)))
	}

	summary.AvgDuration = utils.Round1(utils.SafeFloat(utils.Mean(durations)))
	summary.AvgQuality = utils.Round1(utils.SafeFloat(utils.Mean(qualities)))
	summary.AvgAwakenings = utils.Round1(utils.SafeFloat(utils.Mean(awakenings)))
	summary.AvgScore = utils.Round1(utils.SafeFloat(utils.Mean(scores)))

	return summary
}
