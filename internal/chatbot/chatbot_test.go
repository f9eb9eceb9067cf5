package chatbot

import (
	"testing"

	"github.com/jrautos/go-dealer-backend/internal/i18n"
)

func TestOptions_CompleteAndOrdered(t *testing.T) {
	opts := Options(i18n.LangES)
	want := []string{"hours", "location", "inventory", "prices", "documents", "contact"}
	if len(opts) != len(want) {
		t.Fatalf("got %d options, want %d", len(opts), len(want))
	}
	for i, id := range want {
		if opts[i].ID != id {
			t.Fatalf("option %d = %q, want %q", i, opts[i].ID, id)
		}
		if opts[i].Label == "" || opts[i].Label == "chatbot.option."+id {
			t.Fatalf("option %q has no localized label", id)
		}
	}
}

func TestAnswer_EveryOptionHasBothLanguages(t *testing.T) {
	for _, o := range Options(i18n.LangES) {
		for _, lang := range []string{i18n.LangES, i18n.LangEN} {
			ans, ok := Answer(lang, o.ID)
			if !ok {
				t.Fatalf("Answer(%s, %s) reported unknown", lang, o.ID)
			}
			if ans == "" || ans == "chatbot.answer."+o.ID {
				t.Fatalf("Answer(%s, %s) not localized: %q", lang, o.ID, ans)
			}
		}
	}
}

func TestAnswer_UnknownID(t *testing.T) {
	if _, ok := Answer(i18n.LangES, "weather"); ok {
		t.Fatal("unexpected answer for unknown id")
	}
	if Unknown(i18n.LangES) == "" {
		t.Fatal("expected localized unknown text")
	}
}

func TestLocalization_DiffersByLanguage(t *testing.T) {
	es, _ := Answer(i18n.LangES, "hours")
	en, _ := Answer(i18n.LangEN, "hours")
	if es == en {
		t.Fatalf("expected distinct translations, both %q", es)
	}
}
