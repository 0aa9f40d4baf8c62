package bp

// ThresholdRow is one category of a guideline flattened for presentation:
// chart reference bands and threshold tables are rendered from these rows
// without touching resolver logic. Absent bounds mean unbounded.
type ThresholdRow struct {
	Category     string `json:"category"`
	Label        string `json:"label"`
	Color        string `json:"color"`
	SystolicMin  *int   `json:"systolic_min,omitempty"`
	SystolicMax  *int   `json:"systolic_max,omitempty"`
	DiastolicMin *int   `json:"diastolic_min,omitempty"`
	DiastolicMax *int   `json:"diastolic_max,omitempty"`
}

// Table returns the ordered threshold table for a guideline, least severe
// first. Returns nil for an unknown key.
func Table(guidelineKey string) []ThresholdRow {
	guideline, ok := Get(guidelineKey)
	if !ok {
		return nil
	}

	rows := make([]ThresholdRow, 0, len(guideline.Categories))
	for _, c := range guideline.Categories {
		info := Info(c.Key)
		row := ThresholdRow{
			Category: c.Key,
			Label:    info.Label,
			Color:    info.Color,
		}

		switch rule := c.Rule.(type) {
		case Baseline:
			row.SystolicMax = intPtr(rule.SystolicMax)
			row.DiastolicMax = intPtr(rule.DiastolicMax)
		case AsymmetricBand:
			row.SystolicMin = intPtr(rule.SystolicMin)
			row.SystolicMax = intPtr(rule.SystolicMax)
			row.DiastolicMax = intPtr(rule.DiastolicMax)
		case MinTrigger:
			row.SystolicMin = intPtr(rule.SystolicMin)
			row.DiastolicMin = intPtr(rule.DiastolicMin)
		}

		rows = append(rows, row)
	}
	return rows
}

func intPtr(v int) *int {
	return &v
}
