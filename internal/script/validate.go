package script

import (
	"fmt"

	"github.com/podgen/podgen/podcast"
)

// SchemaError reports the first structural rule a generated script violates.
// The orchestrator recovers from it once by falling back to local chunking;
// anywhere else it surfaces to the caller as-is.
type SchemaError struct {
	Reason string
}

// Error returns the human-readable reason
func (e *SchemaError) Error() string { return e.Reason }

func schemaErrorf(format string, args ...any) *SchemaError {
	return &SchemaError{Reason: fmt.Sprintf(format, args...)}
}

// Validate checks a parsed script against the structural rules and returns a
// *SchemaError describing the first violation. A script with a segments list
// is checked in chunked form, anything else in single form.
func Validate(s *podcast.Script, hosts podcast.Hosts) error {
	if s == nil {
		return schemaErrorf("script is not a JSON object")
	}
	if s.Segments != nil {
		return validateSegments(s.Segments, hosts)
	}
	return validateSingle(s.Markup, hosts)
}

func validateSegments(segments []podcast.Segment, hosts podcast.Hosts) error {
	if len(segments) == 0 {
		return schemaErrorf("'segments' must be a non-empty list")
	}
	for i, seg := range segments {
		if seg.Markup == nil {
			return schemaErrorf("segment %d must contain 'multiSpeakerMarkup'", i)
		}
		if seg.Markup.Turns == nil {
			return schemaErrorf("segment %d multiSpeakerMarkup missing 'turns'", i)
		}
		if len(seg.Markup.Turns) < 2 {
			return schemaErrorf("segment %d 'turns' must be a list with at least two items", i)
		}
		for j, turn := range seg.Markup.Turns {
			if turn.Text == "" || turn.Speaker == "" {
				return schemaErrorf("segment %d, turn %d must contain 'text' and 'speaker' fields", i, j)
			}
			if !hosts.Allows(turn.Speaker) {
				return schemaErrorf("segment %d, turn %d has invalid speaker: %s", i, j, turn.Speaker)
			}
		}
	}
	return nil
}

func validateSingle(markup *podcast.Markup, hosts podcast.Hosts) error {
	if markup == nil || markup.Turns == nil {
		return schemaErrorf("missing 'multiSpeakerMarkup.turns' in script")
	}
	if len(markup.Turns) < 2 {
		return schemaErrorf("'turns' must be a list with at least two items")
	}
	for i, turn := range markup.Turns {
		if turn.Text == "" || turn.Speaker == "" {
			return schemaErrorf("turn %d must contain 'text' and 'speaker' fields", i)
		}
		if !hosts.Allows(turn.Speaker) {
			return schemaErrorf("turn %d has invalid speaker: %s", i, turn.Speaker)
		}
	}
	return nil
}
