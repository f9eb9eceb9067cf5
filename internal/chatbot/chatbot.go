// Package chatbot implements the site's scripted FAQ assistant.
//
// The bot is a finite, enumerated mapping: a fixed menu of option ids, each
// with a canned localized answer. There is no free-text understanding and no
// conversation state; the set of ids below is the complete behavior. Text
// lives in internal/i18n so both languages stay in one place.
package chatbot

import "github.com/jrautos/go-dealer-backend/internal/i18n"

// Option is one entry of the FAQ menu.
type Option struct {
	ID    string `json:"id"`
	Label string `json:"label"`
}

// optionIDs fixes the menu contents and their display order.
var optionIDs = []string{
	"hours",
	"location",
	"inventory",
	"prices",
	"documents",
	"contact",
}

// Greeting returns the localized opening line shown with the menu.
func Greeting(lang string) string {
	return i18n.T(lang, "chatbot.greeting")
}

// Options returns the localized FAQ menu in display order.
func Options(lang string) []Option {
	out := make([]Option, 0, len(optionIDs))
	for _, id := range optionIDs {
		out = append(out, Option{
			ID:    id,
			Label: i18n.T(lang, "chatbot.option."+id),
		})
	}
	return out
}

// Answer returns the localized response for an option id. The boolean is
// false for ids outside the menu; callers decide how to surface that
// (the HTTP layer answers 404, a UI would show the localized unknown text).
func Answer(lang, id string) (string, bool) {
	if !known(id) {
		return "", false
	}
	return i18n.T(lang, "chatbot.answer."+id), true
}

// Unknown returns the localized fallback line for unrecognized input.
func Unknown(lang string) string {
	return i18n.T(lang, "chatbot.unknown")
}

// Bot is the injectable form of the package functions, for callers that
// take the FAQ behavior as a dependency.
type Bot struct{}

func (Bot) Greeting(lang string) string           { return Greeting(lang) }
func (Bot) Options(lang string) []Option          { return Options(lang) }
func (Bot) Answer(lang, id string) (string, bool) { return Answer(lang, id) }

func known(id string) bool {
	for _, o := range optionIDs {
		if o == id {
			return true
		}
	}
	return false
}
