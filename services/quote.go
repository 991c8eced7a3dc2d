package services

import (
	"math/rand"
	"regexp"
	"strings"
)

// BlankMissingWord replaces every occurrence of the missing word in the quote
// text with the placeholder shown to the player.
func BlankMissingWord(text, word string) string {
	re, err := regexp.Compile(`(?i)\b` + regexp.QuoteMeta(word) + `\b`)
	if err != nil {
		return strings.ReplaceAll(text, word, "_____")
	}
	return re.ReplaceAllString(text, "_____")
}

// ShuffleOptions returns the options in random order so the correct answer
// does not sit at a fixed position.
func ShuffleOptions(options []string) []string {
	shuffled := make([]string, len(options))
	copy(shuffled, options)
	rand.Shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})
	return shuffled
}
