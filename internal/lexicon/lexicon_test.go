package lexicon

import "testing"

func TestEnglish_PhrasesNormalized(t *testing.T) {
	for name, phrases := range english {
		if len(phrases) == 0 {
			t.Errorf("%s is empty", name)
		}
		for _, p := range phrases {
			if p != Normalize(p) {
				t.Errorf("%s: phrase %q is not normalized", name, p)
			}
		}
	}
}

func TestContainsBounded(t *testing.T) {
	tests := []struct {
		text, phrase string
		want         bool
	}{
		{"i'll take it.", "take it", true},
		{"we can't mistake it", "take it", false},
		{"yes", "yes", true},
		{"yesterday was fine", "yes", false},
		{"well, yes!", "yes", true},
		{"anything", "", false},
		{"not interested—thanks", "not interested", true},
		{"“yes”", "yes", true},
		{"cafés", "caf", false},
		{"naïve", "ve", false},
	}
	for _, tt := range tests {
		if got := ContainsBounded(tt.text, tt.phrase); got != tt.want {
			t.Errorf("ContainsBounded(%q, %q) = %v, want %v", tt.text, tt.phrase, got, tt.want)
		}
	}
}

func TestOverride(t *testing.T) {
	d := Override(nil, Table{ConversionNegative: {"nein"}})
	if got := d.Phrases(ConversionNegative); len(got) != 1 || got[0] != "nein" {
		t.Errorf("override = %q", got)
	}
	if len(d.Phrases(ConversionStrongPositive)) == 0 {
		t.Error("base list not inherited")
	}
}

func TestMatchHelpers(t *testing.T) {
	d := Table{"x": {"bill", "pay"}}
	text := Normalize("I want to PAY my bill, the bill is high")
	if n := Count(d, "x", text); n != 2 {
		t.Errorf("Count = %d", n)
	}
	if n := Occurrences(d, "x", text); n != 3 {
		t.Errorf("Occurrences = %d", n)
	}
	if m := Matches(d, "x", text); len(m) != 2 {
		t.Errorf("Matches = %q", m)
	}
	if !ContainsAny(d, "x", text) || ContainsAny(d, "missing", text) {
		t.Error("ContainsAny")
	}
}

func TestNormalizeAndWords(t *testing.T) {
	if got := Normalize("I’ll Sign “Today”"); got != `i'll sign "today"` {
		t.Errorf("Normalize = %q", got)
	}
	w := Words("i'll sign, today.")
	if len(w) != 3 || w[0] != "i'll" {
		t.Errorf("Words = %q", w)
	}
}
