package classifier

import "unicode/utf8"

const (
	// Only inputs longer than this are subject to the guard; short texts
	// typed into the app are always analyzed.
	guardLength = 2000

	guardMinWords = 30
)

// Legible reports whether text has enough real words to be worth scoring.
// Long inputs with almost no legible words usually come from image-only
// documents whose upstream extraction produced garbage.
func Legible(text string) bool {
	if utf8.RuneCountInString(text) <= guardLength {
		return true
	}
	return len(tokenize(text)) >= guardMinWords
}
