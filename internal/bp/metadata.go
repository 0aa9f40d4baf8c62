package bp

// CategoryInfo is display metadata for a category key. It is keyed
// independently of guidelines: the same key always renders identically no
// matter which scheme produced it.
type CategoryInfo struct {
	Key        string `json:"key"`
	Label      string `json:"label"`
	ShortLabel string `json:"short_label,omitempty"`
	Severity   int    `json:"severity"`
	Color      string `json:"color"`
}

var categoryInfo = map[string]CategoryInfo{
	"normal": {
		Key:      "normal",
		Label:    "Normal",
		Severity: 0,
		Color:    "#4caf50",
	},
	"elevated": {
		Key:      "elevated",
		Label:    "Elevated",
		Severity: 1,
		Color:    "#ffc107",
	},
	"hypertension1": {
		Key:        "hypertension1",
		Label:      "Hypertension Stage 1",
		ShortLabel: "Stage 1",
		Severity:   2,
		Color:      "#ff9800",
	},
	"hypertension2": {
		Key:        "hypertension2",
		Label:      "Hypertension Stage 2",
		ShortLabel: "Stage 2",
		Severity:   3,
		Color:      "#f44336",
	},
	"crisis": {
		Key:        "crisis",
		Label:      "Hypertensive Crisis",
		ShortLabel: "Crisis",
		Severity:   4,
		Color:      "#b71c1c",
	},
	"hypertension": {
		Key:        "hypertension",
		Label:      "Hypertension",
		ShortLabel: "HTN",
		Severity:   2,
		Color:      "#f44336",
	},
	"hypertensionCanada": {
		Key:        "hypertensionCanada",
		Label:      "Hypertension",
		ShortLabel: "HTN",
		Severity:   2,
		Color:      "#ff9800",
	},
	"hypertensionTreat": {
		Key:        "hypertensionTreat",
		Label:      "Hypertension, Treatment Threshold",
		ShortLabel: "Treat",
		Severity:   3,
		Color:      "#f44336",
	},
}

// Info returns display metadata for a category key. Unknown keys degrade to
// the normal category so rendering never breaks on a stale key.
func Info(key string) CategoryInfo {
	if info, ok := categoryInfo[key]; ok {
		return info
	}
	return categoryInfo["normal"]
}
