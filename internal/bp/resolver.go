package bp

// Classify maps a blood pressure reading to a category key under the named
// guideline.
//
// Returns "" when either value is non-positive (nothing to classify) or when
// the guideline key is unknown — an unknown scheme must surface to the caller
// instead of being silently swapped for the default, since a misapplied
// guideline would mislabel severity.
//
// Categories are evaluated most-severe-first and the first match wins. Bands
// may overlap at their edges, so severity has to win over declaration order.
func Classify(systolic, diastolic int, guidelineKey string) string {
	if systolic <= 0 || diastolic <= 0 {
		return ""
	}

	guideline, ok := Get(guidelineKey)
	if !ok {
		return ""
	}

	for i := len(guideline.Categories) - 1; i >= 0; i-- {
		c := guideline.Categories[i]
		if c.Rule.matches(systolic, diastolic) {
			return c.Key
		}
	}

	// A well-formed baseline has no lower bound, so this is unreachable for
	// the shipped guidelines. Kept as a safety net.
	return guideline.baselineKey()
}
