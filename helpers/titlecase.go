// Package helpers provides small text transforms shared across marcup.
package helpers

import (
	"strings"
	"unicode"
)

// Words kept lowercase in a title unless they begin or end it.
var titleStopwords = map[string]bool{
	"A":    true,
	"And":  true,
	"As":   true,
	"At":   true,
	"But":  true,
	"By":   true,
	"Down": true,
	"For":  true,
	"From": true,
	"If":   true,
	"In":   true,
	"Into": true,
	"Like": true,
	"Near": true,
	"Nor":  true,
	"Of":   true,
	"Off":  true,
	"On":   true,
	"Once": true,
	"Onto": true,
	"Or":   true,
	"Over": true,
	"Past": true,
	"So":   true,
	"Than": true,
	"That": true,
	"The":  true,
	"To":   true,
	"Upon": true,
	"When": true,
	"With": true,
	"Yet":  true,
}

// TitleCase converts s to title case. The first letter of a word and any
// letter following a non-letter is capitalized, except right after an
// apostrophe, so contractions and possessives come out as "Wasn't" and
// "Smith's". Articles, conjunctions, and short prepositions stay lowercase
// unless they are the first or last word.
func TitleCase(s string) string {
	words := strings.Fields(s)
	last := len(words) - 1

	for i, word := range words {
		word = capitalize(word)
		if 0 < i && i < last && titleStopwords[word] {
			word = strings.ToLower(word)
		}
		words[i] = word
	}

	return strings.Join(words, " ")
}

func capitalize(word string) string {
	var b strings.Builder
	b.Grow(len(word))

	prevLetter := false
	for _, r := range word {
		switch {
		case !unicode.IsLetter(r):
			b.WriteRune(r)
			prevLetter = r == '\''
		case prevLetter:
			b.WriteRune(unicode.ToLower(r))
		default:
			b.WriteRune(unicode.ToTitle(r))
			prevLetter = true
		}
	}

	return b.String()
}
