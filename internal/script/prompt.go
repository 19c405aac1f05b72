package script

import (
	"fmt"
	"strings"

	"github.com/podgen/podgen/podcast"
)

const scriptPromptTemplate = `Write a podcast dialogue about "%s".

The show has exactly two hosts, %s and %s. They talk like real people: short
reactions, follow-up questions, the occasional friendly disagreement. Open
with a one-line greeting and close with a short sign-off.

Target length: about %d words in total (the script is read aloud).

Respond with ONLY valid JSON, no markdown fences, no commentary, in exactly
this shape:
{"multiSpeakerMarkup": {"turns": [{"text": "...", "speaker": "%s"}, {"text": "...", "speaker": "%s"}]}}

Every "speaker" value must be exactly "%s" or "%s".`

const chunkedPromptTemplate = `Write a podcast dialogue about "%s", split into playback segments.

The show has exactly two hosts, %s and %s. They talk like real people: short
reactions, follow-up questions, the occasional friendly disagreement. Open
with a one-line greeting and close with a short sign-off.

Target length: about %d words in total (the script is read aloud).

Segmentation rules:
- the first segment must contain at least %d words (prefer %d-%d)
- every later segment should land near %d words (within 20%% either way)
- number segments with "segmentId" starting at 1, in order
- never cut a sentence across segments

Respond with ONLY valid JSON, no markdown fences, no commentary, in exactly
this shape:
{"segments": [{"segmentId": 1, "multiSpeakerMarkup": {"turns": [{"text": "...", "speaker": "%s"}, {"text": "...", "speaker": "%s"}]}}], "total_words": %d}

Every "speaker" value must be exactly "%s" or "%s".`

// buildScriptPrompt creates the instruction for a complete single-form script
func buildScriptPrompt(topic, context string, totalWords int, hosts podcast.Hosts) string {
	prompt := fmt.Sprintf(scriptPromptTemplate,
		topic, hosts[0].Name, hosts[1].Name, totalWords,
		hosts[0].Name, hosts[1].Name, hosts[0].Name, hosts[1].Name)
	return appendContext(prompt, context)
}

// buildChunkedPrompt creates the instruction for a script pre-split into
// segments, with a shorter first segment for faster playback start
func buildChunkedPrompt(topic, context string, totalWords, wordsPerChunk, firstMinWords int, hosts podcast.Hosts) string {
	prompt := fmt.Sprintf(chunkedPromptTemplate,
		topic, hosts[0].Name, hosts[1].Name, totalWords,
		firstMinWords, firstMinWords, firstMinWords+15, wordsPerChunk,
		hosts[0].Name, hosts[1].Name, totalWords,
		hosts[0].Name, hosts[1].Name)
	return appendContext(prompt, context)
}

// appendContext adds optional article material for the hosts to draw on
func appendContext(prompt, context string) string {
	context = strings.TrimSpace(context)
	if context == "" {
		return prompt
	}
	return prompt + "\n\nBase the discussion on this article:\n" + context
}
