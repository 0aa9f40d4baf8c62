package analytics

import (
	"healthtrack/internal/bp"
	"healthtrack/internal/models"
	"healthtrack/pkg/utils"
)

// BPSummary агрегированная статистика по измерениям давления
type BPSummary struct {
	Count            int            `json:"count"`
	AvgSystolic      float64        `json:"avg_systolic"`
	AvgDiastolic     float64        `json:"avg_diastolic"`
	AvgPulse         float64        `json:"avg_pulse"`
	MinSystolic      float64        `json:"min_systolic"`
	MaxSystolic      float64        `json:"max_systolic"`
	MinDiastolic     float64        `json:"min_diastolic"`
	MaxDiastolic     float64        `json:"max_diastolic"`
	AvgPulsePressure float64        `json:"avg_pulse_pressure"`
	AvgMAP           float64        `json:"avg_map"`
	SystolicTrend    float64        `json:"systolic_trend"`  // мм рт.ст. в сутки
	DiastolicTrend   float64        `json:"diastolic_trend"` // мм рт.ст. в сутки
	Distribution     map[string]int `json:"distribution"`
}

// PulsePressure is systolic minus diastolic.
func PulsePressure(systolic, diastolic int) int {
	return systolic - diastolic
}

// MeanArterialPressure approximates MAP as diastolic + pulse pressure / 3.
func MeanArterialPressure(systolic, diastolic int) float64 {
	return float64(diastolic) + float64(systolic-diastolic)/3.0
}

// CalculateBPSummary считает сводку по набору измерений. Распределение по
// категориям строится резолвером для заданного гайдлайна; неклассифицируемые
// измерения в распределение не попадают.
func CalculateBPSummary(readings []models.BloodPressureReading, guidelineKey string) BPSummary {
	summary := BPSummary{
		Count:        len(readings),
		Distribution: make(map[string]int),
	}
	if len(readings) == 0 {
		return summary
	}

	systolic := make([]float64, 0, len(readings))
	diastolic := make([]float64, 0, len(readings))
	pulse := make([]float64, 0, len(readings))
	pp := make([]float64, 0, len(readings))
	maps := make([]float64, 0, len(readings))

	// Дни от первого измерения — ось X для трендовой прямой
	days := make([]float64, 0, len(readings))
	start := readings[0].MeasuredAt

	for _, r := range readings {
		systolic = append(systolic, float64(r.Systolic))
		diastolic = append(diastolic, float64(r.Diastolic))
		if r.Pulse != nil {
			pulse = append(pulse, float64(*r.Pulse))
		}
		pp = append(pp, float64(PulsePressure(r.Systolic, r.Diastolic)))
		maps = append(maps, MeanArterialPressure(r.Systolic, r.Diastolic))
		days = append(days, r.MeasuredAt.Sub(start).Hours()/24)

		if category := bp.Classify(r.Systolic, r.Diastolic, guidelineKey); category != "" {
			summary.Distribution[category]++
		}
	}

	summary.AvgSystolic = utils.Round1(utils.SafeFloat(utils.Mean(systolic)))
	summary.AvgDiastolic = utils.Round1(utils.SafeFloat(utils.Mean(diastolic)))
	summary.AvgPulse = utils.Round1(utils.SafeFloat(utils.Mean(pulse)))
	summary.MinSystolic = utils.SafeFloat(utils.Min(systolic))
	summary.MaxSystolic = utils.SafeFloat(utils.Max(systolic))
	summary.MinDiastolic = utils.SafeFloat(utils.Min(diastolic))
	summary.MaxDiastolic = utils.SafeFloat(utils.Max(diastolic))
	summary.AvgPulsePressure = utils.Round1(utils.SafeFloat(utils.Mean(pp)))
	summary.AvgMAP = utils.Round1(utils.SafeFloat(utils.Mean(maps)))

	sysSlope, _ := utils.LinearRegression(days, systolic)
	diaSlope, _ := utils.LinearRegression(days, diastolic)
	summary.SystolicTrend = utils.SafeFloat(sysSlope)
	summary.DiastolicTrend = utils.SafeFloat(diaSlope)

	return summary
}
