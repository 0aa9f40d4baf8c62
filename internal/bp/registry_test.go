package bp

import "testing"

func TestRegistry_KnownKeys(t *testing.T) {
	for _, key := range Keys() {
		guideline, ok := Get(key)
		if !ok {
			t.Fatalf("Keys() lists %q but Get misses it", key)
		}
		if guideline.Key != key {
			t.Errorf("guideline %q carries key %q", key, guideline.Key)
		}
		if len(guideline.Categories) < 2 {
			t.Errorf("guideline %q has %d categories", key, len(guideline.Categories))
		}
	}
}

func TestRegistry_UnknownKey(t *testing.T) {
	if _, ok := Get("nonexistent"); ok {
		t.Error("Get(nonexistent) reported found")
	}
	if _, ok := Get(""); ok {
		t.Error("Get(\"\") reported found")
	}
}

func TestRegistry_DefaultKeyExists(t *testing.T) {
	if _, ok := Get(DefaultKey); !ok {
		t.Fatalf("default guideline %q missing from registry", DefaultKey)
	}
}

// The first category of every guideline must be a Baseline (max bounds only),
// and every other category must carry min bounds. This is what guarantees the
// resolver's fallback is safe.
func TestRegistry_CategoryShapes(t *testing.T) {
	for _, key := range Keys() {
		guideline, _ := Get(key)

		if _, ok := guideline.Categories[0].Rule.(Baseline); !ok {
			t.Errorf("%s: first category %q is not a Baseline", key, guideline.Categories[0].Key)
		}

		for _, c := range guideline.Categories[1:] {
			switch rule := c.Rule.(type) {
			case Baseline:
				t.Errorf("%s: non-first category %q is a Baseline", key, c.Key)
			case AsymmetricBand:
				if rule.SystolicMin <= 0 || rule.SystolicMax < rule.SystolicMin {
					t.Errorf("%s/%s: bad band %+v", key, c.Key, rule)
				}
			case MinTrigger:
				if rule.SystolicMin <= 0 || rule.DiastolicMin <= 0 {
					t.Errorf("%s/%s: min trigger missing bounds %+v", key, c.Key, rule)
				}
			}
		}
	}
}

func TestRegistry_SeverityOrdering(t *testing.T) {
	for _, key := range Keys() {
		guideline, _ := Get(key)
		prev := -1
		for _, c := range guideline.Categories {
			severity := Info(c.Key).Severity
			if severity <= prev {
				t.Errorf("%s: category %q severity %d not increasing", key, c.Key, severity)
			}
			prev = severity
		}
	}
}

func TestInfo_EveryCategoryHasMetadata(t *testing.T) {
	for _, key := range Keys() {
		guideline, _ := Get(key)
		for _, c := range guideline.Categories {
			info := Info(c.Key)
			if info.Key != c.Key {
				t.Errorf("%s: category %q has no metadata of its own", key, c.Key)
			}
			if info.Label == "" || info.Color == "" {
				t.Errorf("%s: category %q metadata incomplete: %+v", key, c.Key, info)
			}
		}
	}
}

func TestInfo_UnknownKeyDegradesToNormal(t *testing.T) {
	info := Info("no-such-category")
	if info.Key != "normal" {
		t.Errorf("unknown key degraded to %q, want normal", info.Key)
	}
}

func TestTable_OrderedRows(t *testing.T) {
	for _, key := range Keys() {
		guideline, _ := Get(key)
		rows := Table(key)
		if len(rows) != len(guideline.Categories) {
			t.Fatalf("%s: %d rows for %d categories", key, len(rows), len(guideline.Categories))
		}
		for i, row := range rows {
			if row.Category != guideline.Categories[i].Key {
				t.Errorf("%s: row %d is %q, want %q", key, i, row.Category, guideline.Categories[i].Key)
			}
		}

		// Baseline row exposes only max bounds.
		if rows[0].SystolicMin != nil || rows[0].DiastolicMin != nil {
			t.Errorf("%s: baseline row carries min bounds", key)
		}
		if rows[0].SystolicMax == nil || rows[0].DiastolicMax == nil {
			t.Errorf("%s: baseline row missing max bounds", key)
		}
	}
}

func TestTable_UnknownGuideline(t *testing.T) {
	if rows := Table("nonexistent"); rows != nil {
		t.Errorf("Table(nonexistent) = %v, want nil", rows)
	}
}
