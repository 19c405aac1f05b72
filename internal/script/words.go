package script

import (
	"regexp"

	"github.com/podgen/podgen/podcast"
)

// wordRE matches maximal runs of word characters (unicode letters, digits, underscore)
var wordRE = regexp.MustCompile(`[\p{L}\p{N}_]+`)

// CountWords returns the number of word tokens in text. Punctuation-only or
// whitespace-only input counts as zero words.
func CountWords(text string) int {
	return len(wordRE.FindAllStringIndex(text, -1))
}

// TurnsWords sums CountWords over the text of every turn
func TurnsWords(turns []podcast.Turn) int {
	total := 0
	for _, turn := range turns {
		total += CountWords(turn.Text)
	}
	return total
}
