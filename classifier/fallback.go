package classifier

import (
	"sort"
	"unicode/utf8"
)

// fallbackScore is the placeholder used when no trained pipeline is
// loaded: monotonic in text length, capped at 1.0.
func fallbackScore(text string) float64 {
	p := float64(utf8.RuneCountInString(text)) / 1000.0
	if p > 1 {
		p = 1
	}
	return p
}

// fallbackWords keeps the response shape useful without a model: unique
// normalized tokens in lexical order, capped like the real top words.
func fallbackWords(text string) []string {
	seen := make(map[string]struct{})
	for _, tok := range tokenize(normalize(text)) {
		seen[tok] = struct{}{}
	}
	words := make([]string, 0, len(seen))
	for tok := range seen {
		words = append(words, tok)
	}
	sort.Strings(words)
	if len(words) > topK {
		words = words[:topK]
	}
	return words
}
