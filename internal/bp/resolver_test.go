package bp

import "testing"

func TestClassify_NormalReadings(t *testing.T) {
	// Strictly inside the baseline bounds of every guideline.
	for _, key := range Keys() {
		if got := Classify(110, 70, key); got != "normal" {
			t.Errorf("Classify(110, 70, %q) = %q, want normal", key, got)
		}
	}
}

func TestClassify_InvalidInputs(t *testing.T) {
	cases := []struct {
		systolic  int
		diastolic int
	}{
		{0, 80},
		{120, 0},
		{-10, 80},
		{120, -5},
		{0, 0},
	}

	for _, tc := range cases {
		if got := Classify(tc.systolic, tc.diastolic, DefaultKey); got != "" {
			t.Errorf("Classify(%d, %d) = %q, want empty", tc.systolic, tc.diastolic, got)
		}
	}
}

func TestClassify_UnknownGuideline(t *testing.T) {
	if got := Classify(120, 80, "nonexistent"); got != "" {
		t.Errorf("unknown guideline should be unclassifiable, got %q", got)
	}
}

func TestClassify_Acc2017Tiers(t *testing.T) {
	cases := []struct {
		systolic  int
		diastolic int
		want      string
	}{
		{115, 75, "normal"},
		{119, 79, "normal"},
		{120, 75, "elevated"},
		{129, 79, "elevated"},
		{125, 80, "hypertension1"}, // diastolic pushes out of the elevated band
		{130, 70, "hypertension1"},
		{135, 85, "hypertension1"},
		{140, 85, "hypertension2"},
		{135, 90, "hypertension2"},
		{180, 80, "crisis"},
		{150, 120, "crisis"},
	}

	for _, tc := range cases {
		if got := Classify(tc.systolic, tc.diastolic, "acc2017"); got != tc.want {
			t.Errorf("Classify(%d, %d, acc2017) = %q, want %q", tc.systolic, tc.diastolic, got, tc.want)
		}
	}
}

func TestClassify_Canada2025(t *testing.T) {
	cases := []struct {
		systolic  int
		diastolic int
		want      string
	}{
		{115, 75, "normal"},
		{135, 85, "hypertensionCanada"},
		{145, 95, "hypertensionTreat"},
	}

	for _, tc := range cases {
		if got := Classify(tc.systolic, tc.diastolic, "htnCanada2025"); got != tc.want {
			t.Errorf("Classify(%d, %d, htnCanada2025) = %q, want %q", tc.systolic, tc.diastolic, got, tc.want)
		}
	}
}

func TestClassify_SimpleBoundary(t *testing.T) {
	if got := Classify(119, 79, "simple"); got != "normal" {
		t.Errorf("Classify(119, 79, simple) = %q, want normal", got)
	}
	// Systolic-only trigger at the exact boundary; min bounds are inclusive.
	if got := Classify(120, 79, "simple"); got != "hypertension" {
		t.Errorf("Classify(120, 79, simple) = %q, want hypertension", got)
	}
	if got := Classify(119, 80, "simple"); got != "hypertension" {
		t.Errorf("Classify(119, 80, simple) = %q, want hypertension", got)
	}
}

func TestClassify_InclusiveMinBoundaries(t *testing.T) {
	// Every non-baseline min bound, hit exactly, must classify at that tier.
	for _, key := range Keys() {
		guideline, _ := Get(key)
		for _, c := range guideline.Categories[1:] {
			switch rule := c.Rule.(type) {
			case MinTrigger:
				if got := Classify(rule.SystolicMin, 1, key); got == "" {
					t.Errorf("%s/%s: systolic min %d unclassified", key, c.Key, rule.SystolicMin)
				} else if Info(got).Severity < Info(c.Key).Severity {
					t.Errorf("%s/%s: systolic min %d classified below tier: %q", key, c.Key, rule.SystolicMin, got)
				}
			case AsymmetricBand:
				if got := Classify(rule.SystolicMin, 1, key); got != c.Key {
					t.Errorf("%s/%s: band min %d -> %q", key, c.Key, rule.SystolicMin, got)
				}
			}
		}
	}
}

func TestClassify_MostSevereWins(t *testing.T) {
	// Systolic in a low tier, diastolic far into a high tier: the high tier
	// must win. A naive max-of-two-lookups would get the asymmetric elevated
	// band wrong, so this pins the reverse scan behavior.
	if got := Classify(122, 95, "acc2017"); got != "hypertension2" {
		t.Errorf("Classify(122, 95, acc2017) = %q, want hypertension2", got)
	}
	if got := Classify(110, 125, "acc2017"); got != "crisis" {
		t.Errorf("Classify(110, 125, acc2017) = %q, want crisis", got)
	}
	if got := Classify(110, 92, "htnCanada2025"); got != "hypertensionTreat" {
		t.Errorf("Classify(110, 92, htnCanada2025) = %q, want hypertensionTreat", got)
	}
}

func TestClassify_Idempotent(t *testing.T) {
	first := Classify(134, 82, "acc2017")
	for i := 0; i < 10; i++ {
		if got := Classify(134, 82, "acc2017"); got != first {
			t.Fatalf("result drifted on call %d: %q != %q", i, got, first)
		}
	}
}
