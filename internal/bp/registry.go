package bp

// DefaultKey is the guideline used when a user has no stored preference.
const DefaultKey = "acc2017"

var registryOrder = []string{"acc2017", "htnCanada2025", "simple"}

var registry = map[string]Guideline{
	"acc2017": {
		Key:         "acc2017",
		Name:        "ACC/AHA 2017",
		Description: "Multi-tier scheme from the 2017 ACC/AHA guideline",
		Categories: []CategoryRule{
			{Key: "normal", Rule: Baseline{SystolicMax: 119, DiastolicMax: 79}},
			{Key: "elevated", Rule: AsymmetricBand{SystolicMin: 120, SystolicMax: 129, DiastolicMax: 79}},
			{Key: "hypertension1", Rule: MinTrigger{SystolicMin: 130, DiastolicMin: 80}},
			{Key: "hypertension2", Rule: MinTrigger{SystolicMin: 140, DiastolicMin: 90}},
			{Key: "crisis", Rule: MinTrigger{SystolicMin: 180, DiastolicMin: 120}},
		},
	},
	"htnCanada2025": {
		Key:         "htnCanada2025",
		Name:        "Hypertension Canada 2025",
		Description: "Simplified Canadian scheme with a separate treatment threshold",
		Categories: []CategoryRule{
			{Key: "normal", Rule: Baseline{SystolicMax: 129, DiastolicMax: 79}},
			{Key: "hypertensionCanada", Rule: MinTrigger{SystolicMin: 130, DiastolicMin: 80}},
			{Key: "hypertensionTreat", Rule: MinTrigger{SystolicMin: 140, DiastolicMin: 90}},
		},
	},
	"simple": {
		Key:         "simple",
		Name:        "Simplified",
		Description: "Binary normal/hypertension split at 120/80",
		Categories: []CategoryRule{
			{Key: "normal", Rule: Baseline{SystolicMax: 119, DiastolicMax: 79}},
			{Key: "hypertension", Rule: MinTrigger{SystolicMin: 120, DiastolicMin: 80}},
		},
	},
}

// Get returns the guideline for key. The second result reports whether the key
// is known — callers decide how to handle a miss, the registry never
// substitutes a default on its own.
func Get(key string) (Guideline, bool) {
	g, ok := registry[key]
	return g, ok
}

// Keys returns guideline keys in presentation order.
func Keys() []string {
	keys := make([]string, len(registryOrder))
	copy(keys, registryOrder)
	return keys
}
