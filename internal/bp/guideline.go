package bp

// MatchRule decides whether a reading falls into a category.
// Exactly one of the three shapes below applies to any category.
type MatchRule interface {
	matches(systolic, diastolic int) bool
}

// Baseline is the least-severe, catch-all category. It matches only when both
// values are within normal limits.
type Baseline struct {
	SystolicMax  int
	DiastolicMax int
}

func (r Baseline) matches(systolic, diastolic int) bool {
	return systolic <= r.SystolicMax && diastolic <= r.DiastolicMax
}

// AsymmetricBand models tiers like "elevated": systolic sits inside its own
// band while diastolic must still be at or below normal. Diastolic has no min
// here — a raised diastolic is caught by a more severe tier first, because the
// resolver scans most-severe-first.
type AsymmetricBand struct {
	SystolicMin  int
	SystolicMax  int
	DiastolicMax int
}

func (r AsymmetricBand) matches(systolic, diastolic int) bool {
	return systolic >= r.SystolicMin && systolic <= r.SystolicMax && diastolic <= r.DiastolicMax
}

// MinTrigger matches when either value crosses its threshold. The worse of the
// two measurements determines the stage.
type MinTrigger struct {
	SystolicMin  int
	DiastolicMin int
}

func (r MinTrigger) matches(systolic, diastolic int) bool {
	return systolic >= r.SystolicMin || diastolic >= r.DiastolicMin
}

// CategoryRule binds a category key to its match rule.
type CategoryRule struct {
	Key  string
	Rule MatchRule
}

// Guideline is a named classification scheme. Categories are ordered from
// least to most severe; the first entry is the baseline category.
type Guideline struct {
	Key         string
	Name        string
	Description string
	Categories  []CategoryRule
}

func (g Guideline) baselineKey() string {
	return g.Categories[0].Key
}
