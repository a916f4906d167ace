package ui

import "testing"

func TestLocalizationFallback(t *testing.T) {
	l := NewLocalization()

	if l.GetCurrentLanguage() != "en" {
		t.Errorf("Expected default language 'en', got '%s'", l.GetCurrentLanguage())
	}

	if text := l.GetText(KeyBookmarks); text != "Bookmarks" {
		t.Errorf("Expected 'Bookmarks', got '%s'", text)
	}

	// Unknown key falls back to the key itself.
	if text := l.GetText("no_such_key"); text != "no_such_key" {
		t.Errorf("Expected key fallback, got '%s'", text)
	}
}

func TestLocalizationSetLanguage(t *testing.T) {
	l := NewLocalization()

	l.SetLanguage("ru")
	if l.GetCurrentLanguage() != "ru" {
		t.Errorf("Expected language 'ru', got '%s'", l.GetCurrentLanguage())
	}
	if text := l.GetText(KeyHistory); text != "История" {
		t.Errorf("Expected Russian history label, got '%s'", text)
	}

	// Unknown languages are ignored.
	l.SetLanguage("xx")
	if l.GetCurrentLanguage() != "ru" {
		t.Errorf("Expected language to stay 'ru', got '%s'", l.GetCurrentLanguage())
	}

	// "system" simplifies to English.
	l.SetLanguage("system")
	if l.GetCurrentLanguage() != "en" {
		t.Errorf("Expected 'system' to resolve to 'en', got '%s'", l.GetCurrentLanguage())
	}
}

func TestGetAvailableLanguages(t *testing.T) {
	l := NewLocalization()

	languages := l.GetAvailableLanguages()
	for _, code := range []string{"en", "ru", "pt"} {
		if _, exists := languages[code]; !exists {
			t.Errorf("Expected language option '%s' to exist", code)
		}
	}
}
