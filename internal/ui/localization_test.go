package ui

import "testing"

func TestLocalizationDefaultsToEnglish(t *testing.T) {
	l := NewLocalization()

	if got := l.GetCurrentLanguage(); got != "en" {
		t.Errorf("Expected en, got %s", got)
	}
	if got := l.GetText(KeyWhoIsWatching); got != "Who's watching?" {
		t.Errorf("Unexpected text %q", got)
	}
}

func TestLocalizationSetLanguage(t *testing.T) {
	l := NewLocalization()

	l.SetLanguage("es")
	if got := l.GetText(KeyMyList); got != "Mi lista" {
		t.Errorf("Expected Spanish text, got %q", got)
	}

	// Unknown languages are ignored
	l.SetLanguage("xx")
	if got := l.GetCurrentLanguage(); got != "es" {
		t.Errorf("Expected es to stay active, got %s", got)
	}

	l.SetLanguage("system")
	if got := l.GetCurrentLanguage(); got != "en" {
		t.Errorf("Expected system to resolve to en, got %s", got)
	}
}

func TestLocalizationFallbacks(t *testing.T) {
	l := NewLocalization()
	l.SetLanguage("es")

	if got := l.GetText("missing_key"); got != "missing_key" {
		t.Errorf("Expected key fallback, got %q", got)
	}
}

func TestLocalizationLanguagesAreComplete(t *testing.T) {
	l := NewLocalization()
	english := l.texts["en"]

	for code := range l.GetAvailableLanguages() {
		texts, ok := l.texts[code]
		if !ok {
			t.Fatalf("No texts for %s", code)
		}
		for key := range english {
			if _, found := texts[key]; !found {
				t.Errorf("%s is missing %s", code, key)
			}
		}
	}
}
