package script

import "github.com/podgen/podgen/podcast"

// chunkPhase tracks whether the first chunk boundary has been crossed. It
// transitions exactly once, from awaiting to steady, when the first chunk
// closes and the regular word target takes over.
type chunkPhase int

const (
	phaseAwaitingFirstBoundary chunkPhase = iota
	phaseSteady
)

// ChunkTurns groups turns in order into word-bounded chunks. The first chunk
// targets firstWords when positive (a shorter teaser segment), every later
// chunk targets wordsPerChunk. Turns are atomic: a chunk closes before a turn
// that would push it past the target, and a single oversized turn still forms
// its own chunk. When firstMinWords is positive the first chunk borrows turns
// from the second until it reaches that floor.
func ChunkTurns(turns []podcast.Turn, wordsPerChunk, firstWords, firstMinWords int) [][]podcast.Turn {
	var chunks [][]podcast.Turn
	var current []podcast.Turn
	currentWords := 0

	target := wordsPerChunk
	if firstWords > 0 {
		target = firstWords
	}
	phase := phaseAwaitingFirstBoundary

	for _, turn := range turns {
		turnWords := CountWords(turn.Text)
		if len(current) > 0 && currentWords+turnWords > target {
			chunks = append(chunks, current)
			current = nil
			currentWords = 0
			if phase == phaseAwaitingFirstBoundary {
				phase = phaseSteady
				target = wordsPerChunk
			}
		}
		current = append(current, turn)
		currentWords += turnWords
	}
	if len(current) > 0 {
		chunks = append(chunks, current)
	}

	if firstMinWords > 0 {
		chunks = raiseFirstChunk(chunks, firstMinWords)
	}
	return chunks
}

// raiseFirstChunk moves the second chunk's head turn into the first chunk
// until the first chunk reaches minWords, the second chunk is down to its
// last turn, or only one chunk remains.
func raiseFirstChunk(chunks [][]podcast.Turn, minWords int) [][]podcast.Turn {
	for len(chunks) >= 2 && TurnsWords(chunks[0]) < minWords && len(chunks[1]) > 1 {
		chunks[0] = append(chunks[0], chunks[1][0])
		chunks[1] = chunks[1][1:]
		if len(chunks[1]) == 0 && len(chunks) > 2 {
			chunks = append(chunks[:1], chunks[2:]...)
			break
		}
	}
	return chunks
}
