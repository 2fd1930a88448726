package i18n

import (
	"testing"

	"golang.org/x/text/language"
)

func TestT_TranslatesKnownID(t *testing.T) {
	Init("en")
	if got := T("filter.apply"); got != "Apply" {
		t.Fatalf("T(filter.apply) = %q", got)
	}

	SetLang("de")
	if got := T("filter.apply"); got != "Anwenden" {
		t.Fatalf("T(filter.apply) in de = %q", got)
	}

	SetLang("en")
}

func TestT_FallsBackToMessageID(t *testing.T) {
	Init("en")
	if got := T("does.not.exist"); got != "does.not.exist" {
		t.Fatalf("unknown ID must echo, got %q", got)
	}
}

func TestLang_FollowsInit(t *testing.T) {
	Init("de")
	if Lang() != language.German {
		t.Fatalf("Lang() = %v", Lang())
	}
	Init("not-a-tag!")
	if Lang() != language.English {
		t.Fatalf("invalid language must fall back to English, got %v", Lang())
	}
	Init("en")
}
