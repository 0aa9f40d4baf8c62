package service

import (
	"testing"

	"healthtrack/internal/bp"
)

func TestResolveGuidelineKey(t *testing.T) {
	// Валидная преференция проходит как есть
	if got := resolveGuidelineKey("simple"); got != "simple" {
		t.Errorf("resolveGuidelineKey(simple) = %q", got)
	}

	// Пустой и устаревший ключи сводятся к дефолту
	if got := resolveGuidelineKey(""); got != bp.DefaultKey {
		t.Errorf("resolveGuidelineKey(\"\") = %q, want %q", got, bp.DefaultKey)
	}
	if got := resolveGuidelineKey("retired2019"); got != bp.DefaultKey {
		t.Errorf("resolveGuidelineKey(retired2019) = %q, want %q", got, bp.DefaultKey)
	}
}
