package service

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"strconv"
	"strings"
	"time"

	"healthtrack/internal/analytics"
	"healthtrack/internal/bp"
	"healthtrack/internal/models"
	"healthtrack/internal/repository"
)

type ExportService struct {
	readings   *repository.ReadingRepository
	sleep      *repository.SleepRepository
	bloodtests *repository.BloodTestRepository
	settings   *SettingsService
	stats      *StatsService
}

func NewExportService(
	readings *repository.ReadingRepository,
	sleep *repository.SleepRepository,
	bloodtests *repository.BloodTestRepository,
	settings *SettingsService,
	stats *StatsService,
) *ExportService {
	return &ExportService{
		readings:   readings,
		sleep:      sleep,
		bloodtests: bloodtests,
		settings:   settings,
		stats:      stats,
	}
}

// ReadingsCSV выгружает измерения давления за период в CSV
func (s *ExportService) ReadingsCSV(ctx context.Context, userID string, from, to time.Time) ([]byte, error) {
	readings, err := s.readings.ListByUser(ctx, userID, from, to, 0)
	if err != nil {
		return nil, err
	}

	guidelineKey := s.settings.ActiveGuidelineKey(ctx, userID)
	return formatReadingsCSV(readings, guidelineKey)
}

// Категория считается на каждую строку; неклассифицируемая строка
// получает пустую ячейку категории
func formatReadingsCSV(readings []models.BloodPressureReading, guidelineKey string) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	header := []string{"measured_at", "systolic", "diastolic", "pulse", "category", "notes"}
	if err := w.Write(header); err != nil {
		return nil, err
	}

	for _, r := range readings {
		pulse := ""
		if r.Pulse != nil {
			pulse = strconv.Itoa(*r.Pulse)
		}

		category := bp.Classify(r.Systolic, r.Diastolic, guidelineKey)

		record := []string{
			r.MeasuredAt.UTC().Format(time.RFC3339),
			strconv.Itoa(r.Systolic),
			strconv.Itoa(r.Diastolic),
			pulse,
			category,
			r.Notes,
		}
		if err := w.Write(record); err != nil {
			return nil, err
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Report собирает markdown-отчёт: сводка давления, распределение по
// категориям, сон и последние анализы крови
func (s *ExportService) Report(ctx context.Context, userID string, from, to time.Time) ([]byte, error) {
	bpStats, err := s.stats.BPStats(ctx, userID, from, to)
	if err != nil {
		return nil, err
	}

	sleepStats, err := s.stats.SleepStats(ctx, userID, from, to)
	if err != nil {
		return nil, err
	}

	tests, err := s.bloodtests.ListByUser(ctx, userID, from, to, 5)
	if err != nil {
		return nil, err
	}

	return renderReport(bpStats, &sleepStats.Summary, tests, from, to), nil
}

func renderReport(bpStats *BPStatsResponse, sleep *analytics.SleepSummary, tests []models.BloodTestResult, from, to time.Time) []byte {
	var b strings.Builder

	b.WriteString("# Health Report\n\n")

	if !from.IsZero() || !to.IsZero() {
		b.WriteString(fmt.Sprintf("Period: %s - %s\n\n", formatReportDate(from), formatReportDate(to)))
	}

	b.WriteString("## Blood Pressure\n\n")
	b.WriteString(fmt.Sprintf("Guideline: %s\n\n", bpStats.GuidelineName))

	if bpStats.Summary.Count == 0 {
		b.WriteString("No readings in this period.\n\n")
	} else {
		summary := bpStats.Summary
		b.WriteString("| Metric | Value |\n|---|---|\n")
		b.WriteString(fmt.Sprintf("| Readings | %d |\n", summary.Count))
		b.WriteString(fmt.Sprintf("| Average | %.1f/%.1f mmHg |\n", summary.AvgSystolic, summary.AvgDiastolic))
		b.WriteString(fmt.Sprintf("| Pulse pressure | %.1f mmHg |\n", summary.AvgPulsePressure))
		b.WriteString(fmt.Sprintf("| Mean arterial pressure | %.1f mmHg |\n", summary.AvgMAP))
		b.WriteString("\n### Category Distribution\n\n")
		for _, c := range bpStats.Categories {
			b.WriteString(fmt.Sprintf("- %s: %d\n", c.Label, c.Count))
		}
		b.WriteString("\n")
	}

	b.WriteString("## Sleep\n\n")
	if sleep.Count == 0 {
		b.WriteString("No sleep entries in this period.\n\n")
	} else {
		b.WriteString(fmt.Sprintf("%d nights, average %.1f h, average score %.1f/100.\n\n",
			sleep.Count, sleep.AvgDuration, sleep.AvgScore))
	}

	b.WriteString("## Blood Tests\n\n")
	if len(tests) == 0 {
		b.WriteString("No blood tests in this period.\n")
	} else {
		for _, t := range tests {
			b.WriteString(fmt.Sprintf("### %s", t.TakenAt.UTC().Format("2006-01-02")))
			if t.Lab != "" {
				b.WriteString(fmt.Sprintf(" (%s)", t.Lab))
			}
			b.WriteString("\n\n")
			for _, m := range t.Markers {
				flag := ""
				if m.Flagged {
					flag = " (!)"
				}
				b.WriteString(fmt.Sprintf("- %s: %g %s%s\n", m.Name, m.Value, m.Unit, flag))
			}
			b.WriteString("\n")
		}
	}

	return []byte(b.String())
}

func formatReportDate(t time.Time) string {
	if t.IsZero() {
		return "..."
	}
	return t.UTC().Format("2006-01-02")
}
