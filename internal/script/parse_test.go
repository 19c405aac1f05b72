package script

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStripCodeFences(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "no fences", in: `{"a": 1}`, want: `{"a": 1}`},
		{name: "json fence", in: "```json\n{\"a\": 1}\n```", want: `{"a": 1}`},
		{name: "bare fence", in: "```\n{\"a\": 1}\n```", want: `{"a": 1}`},
		{name: "surrounding whitespace", in: "  \n```json\n{}\n```  \n", want: "{}"},
		{name: "fence without newlines", in: "```json{}```", want: "{}"},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			assert.Equal(t, test.want, StripCodeFences(test.in))
		})
	}
}

func TestParseScript(t *testing.T) {
	t.Run("single form", func(t *testing.T) {
		script, err := ParseScript(`{"multiSpeakerMarkup": {"turns": [{"text": "hi", "speaker": "Jay"}, {"text": "hey", "speaker": "Nik"}]}}`)
		require.NoError(t, err)
		require.NotNil(t, script.Markup)
		assert.Len(t, script.Markup.Turns, 2)
	})

	t.Run("chunked form with fences", func(t *testing.T) {
		raw := "```json\n{\"segments\": [{\"segmentId\": 1, \"multiSpeakerMarkup\": {\"turns\": [{\"text\": \"hi\", \"speaker\": \"Jay\"}, {\"text\": \"hey\", \"speaker\": \"Nik\"}]}}]}\n```"
		script, err := ParseScript(raw)
		require.NoError(t, err)
		require.Len(t, script.Segments, 1)
		assert.Equal(t, 1, script.Segments[0].ID)
	})

	t.Run("json array", func(t *testing.T) {
		_, err := ParseScript("[1, 2, 3]")
		require.Error(t, err)

		var schemaErr *SchemaError
		require.ErrorAs(t, err, &schemaErr)
		assert.Equal(t, "script is not a JSON object", schemaErr.Reason)
	})

	t.Run("plain text", func(t *testing.T) {
		_, err := ParseScript("Sorry, I cannot write that script.")
		require.Error(t, err)

		var schemaErr *SchemaError
		require.ErrorAs(t, err, &schemaErr)
		assert.Equal(t, "script is not a JSON object", schemaErr.Reason)
	})

	t.Run("malformed json", func(t *testing.T) {
		_, err := ParseScript(`{"multiSpeakerMarkup": {`)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to parse script JSON")
	})
}
