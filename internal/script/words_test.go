package script

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/podgen/podgen/podcast"
)

func TestCountWords(t *testing.T) {
	tests := []struct {
		name string
		text string
		want int
	}{
		{name: "empty", text: "", want: 0},
		{name: "spaces only", text: "   ", want: 0},
		{name: "simple", text: "a b  c", want: 3},
		{name: "punctuation only", text: "?!... --", want: 0},
		{name: "punctuation attached", text: "Hello, world!", want: 2},
		{name: "apostrophe splits", text: "don't", want: 2},
		{name: "underscore joins", text: "snake_case stays one", want: 3},
		{name: "digits count", text: "gpt 4 turbo", want: 3},
		{name: "unicode letters", text: "Привет мир", want: 2},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			assert.Equal(t, test.want, CountWords(test.text))
		})
	}
}

func TestTurnsWords(t *testing.T) {
	turns := []podcast.Turn{
		{Text: "Welcome to the show", Speaker: "Jay"},
		{Text: "", Speaker: "Nik"},
		{Text: "Thanks, glad to be here!", Speaker: "Nik"},
	}
	assert.Equal(t, 9, TurnsWords(turns))
	assert.Zero(t, TurnsWords(nil))
}
