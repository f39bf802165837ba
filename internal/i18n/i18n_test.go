package i18n

import (
	"testing"

	"golang.org/x/text/language"
)

func TestTranslateEnglish(t *testing.T) {
	tr := MustNew("en")

	if got := tr.T("welcome_title"); got != "Kids Arcade" {
		t.Errorf("T(welcome_title) = %q", got)
	}
	if got := tr.Translate("game_snake", "fallback"); got != "Snake" {
		t.Errorf("Translate(game_snake) = %q", got)
	}
}

func TestTranslateSpanish(t *testing.T) {
	tr := MustNew("es")

	if got := tr.Translate("game_snake", "Snake"); got != "Serpiente" {
		t.Errorf("Translate(game_snake) = %q, expected Serpiente", got)
	}
	if tr.Tag() != language.Spanish {
		t.Errorf("Tag() = %v", tr.Tag())
	}
}

func TestTranslateFallsBackToEnglish(t *testing.T) {
	tr := MustNew("fr")

	if got := tr.T("button_child"); got != "I'm a kid" {
		t.Errorf("T(button_child) for fr = %q, expected English text", got)
	}
}

func TestTranslateMissing(t *testing.T) {
	tr := MustNew("en")

	if got := tr.Translate("no_such_id", "Default"); got != "Default" {
		t.Errorf("Translate(missing) = %q, expected fallback", got)
	}
	if got := tr.T("no_such_id"); got != "no_such_id" {
		t.Errorf("T(missing) = %q, expected id", got)
	}
}

func TestTranslateWith(t *testing.T) {
	tr := MustNew("en")

	got := tr.TranslateWith("games_greeting", "Hi!", map[string]any{"Name": "Ada"})
	if got != "Hi, Ada!" {
		t.Errorf("TranslateWith(games_greeting) = %q", got)
	}
}

func TestNewInvalidLanguage(t *testing.T) {
	if _, err := New("not a tag!"); err == nil {
		t.Error("New() with invalid code should fail")
	}
}

func TestAvailable(t *testing.T) {
	got := Available()
	want := map[string]bool{"en": true, "es": true}
	if len(got) != len(want) {
		t.Fatalf("Available() = %v", got)
	}
	for _, code := range got {
		if !want[code] {
			t.Errorf("unexpected locale %q", code)
		}
	}
}
