package models

import (
	"sort"
	"testing"
)

func TestTemplateKeysSortedAndComplete(t *testing.T) {
	keys := TemplateKeys()
	if len(keys) != len(DhikrTemplates) {
		t.Fatalf("TemplateKeys() returned %d keys, want %d", len(keys), len(DhikrTemplates))
	}
	if !sort.StringsAreSorted(keys) {
		t.Errorf("TemplateKeys() not sorted: %v", keys)
	}
	for _, key := range keys {
		if _, ok := DhikrTemplates[key]; !ok {
			t.Errorf("key %q not in catalog", key)
		}
	}
}

func TestTemplatesAreWellFormed(t *testing.T) {
	for key, template := range DhikrTemplates {
		if template.Name == "" {
			t.Errorf("template %q has no name", key)
		}
		if len(template.Tasbihs) == 0 {
			t.Errorf("template %q has no entries", key)
		}
		for i, entry := range template.Tasbihs {
			if entry.Name == "" {
				t.Errorf("template %q entry %d has no name", key, i)
			}
			if entry.TargetCount < 1 {
				t.Errorf("template %q entry %d target = %d, want >= 1", key, i, entry.TargetCount)
			}
		}
	}
}
