package script

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/podgen/podgen/internal/script/mocks"
	"github.com/podgen/podgen/podcast"
)

func TestService_Generate(t *testing.T) {
	response := "```json\n" + `{"multiSpeakerMarkup": {"turns": [
		{"text": "Welcome back everyone", "speaker": "Jay"},
		{"text": "Today we talk quantum", "speaker": "Nik"}
	]}}` + "\n```"

	gen := &mocks.TextGeneratorMock{
		GenerateTextFunc: func(ctx context.Context, prompt string) (string, error) {
			return response, nil
		},
	}
	svc := NewService(gen, podcast.DefaultHosts(), Params{}, nil)

	script, err := svc.Generate(context.Background(), Request{Topic: "quantum computing", Minutes: 2})
	require.NoError(t, err)
	require.NotNil(t, script.Markup)
	assert.Len(t, script.Markup.Turns, 2)

	calls := gen.GenerateTextCalls()
	require.Len(t, calls, 1)
	assert.Contains(t, calls[0].Prompt, `"quantum computing"`)
	assert.Contains(t, calls[0].Prompt, "Jay")
	assert.Contains(t, calls[0].Prompt, "Nik")
	assert.Contains(t, calls[0].Prompt, "about 420 words")
}

func TestService_Generate_AppendsContext(t *testing.T) {
	gen := &mocks.TextGeneratorMock{
		GenerateTextFunc: func(ctx context.Context, prompt string) (string, error) {
			return `{"multiSpeakerMarkup": {"turns": [{"text": "a", "speaker": "Jay"}, {"text": "b", "speaker": "Nik"}]}}`, nil
		},
	}
	svc := NewService(gen, podcast.DefaultHosts(), Params{}, nil)

	req := Request{Topic: "ai", Context: "The article body to discuss.", Minutes: 1}
	_, err := svc.Generate(context.Background(), req)
	require.NoError(t, err)

	calls := gen.GenerateTextCalls()
	require.Len(t, calls, 1)
	assert.Contains(t, calls[0].Prompt, "The article body to discuss.")
}

func TestService_Generate_Errors(t *testing.T) {
	tests := []struct {
		name     string
		response string
		genErr   error
		want     string
	}{
		{
			name:   "generator failure",
			genErr: fmt.Errorf("model overloaded"),
			want:   "failed to generate script",
		},
		{
			name:     "plain text response",
			response: "Sorry, I cannot help with that.",
			want:     "script is not a JSON object",
		},
		{
			name:     "invalid speaker",
			response: `{"multiSpeakerMarkup": {"turns": [{"text": "a", "speaker": "Jay"}, {"text": "b", "speaker": "Bob"}]}}`,
			want:     "turn 1 has invalid speaker: Bob",
		},
		{
			name:     "single turn",
			response: `{"multiSpeakerMarkup": {"turns": [{"text": "a", "speaker": "Jay"}]}}`,
			want:     "'turns' must be a list with at least two items",
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			gen := &mocks.TextGeneratorMock{
				GenerateTextFunc: func(ctx context.Context, prompt string) (string, error) {
					return test.response, test.genErr
				},
			}
			svc := NewService(gen, podcast.DefaultHosts(), Params{}, nil)

			_, err := svc.Generate(context.Background(), Request{Topic: "ai", Minutes: 3})
			require.Error(t, err)
			assert.Contains(t, err.Error(), test.want)
		})
	}
}

func TestService_GenerateChunked_TrustsModelSegments(t *testing.T) {
	response := `{"segments": [{"segmentId": 3, "multiSpeakerMarkup": {"turns": [
		{"text": "Welcome to the show", "speaker": "Jay"},
		{"text": "Great to be here", "speaker": "Nik"}
	]}}], "total_words": 9999}`

	gen := &mocks.TextGeneratorMock{
		GenerateTextFunc: func(ctx context.Context, prompt string) (string, error) {
			return response, nil
		},
	}
	svc := NewService(gen, podcast.DefaultHosts(), Params{}, nil)

	res, err := svc.GenerateChunked(context.Background(), Request{Topic: "ai", Minutes: 3})
	require.NoError(t, err)
	require.Len(t, res.Segments, 1)

	// model segment ids are kept as-is, the claimed total is not
	assert.Equal(t, 3, res.Segments[0].ID)
	assert.Equal(t, 8, res.TotalWords)
	assert.Len(t, gen.GenerateTextCalls(), 1)
}

func TestService_GenerateChunked_FallsBackOnBadSegments(t *testing.T) {
	chunkedResponse := `{"segments": [{"segmentId": 1, "multiSpeakerMarkup": {}}]}`
	singleResponse := `{"multiSpeakerMarkup": {"turns": [
		{"text": "One two three four five", "speaker": "Jay"},
		{"text": "Six seven eight nine ten", "speaker": "Nik"},
		{"text": "Eleven twelve thirteen fourteen", "speaker": "Jay"},
		{"text": "Fifteen sixteen", "speaker": "Nik"}
	]}}`

	call := 0
	gen := &mocks.TextGeneratorMock{
		GenerateTextFunc: func(ctx context.Context, prompt string) (string, error) {
			call++
			if call == 1 {
				return chunkedResponse, nil
			}
			return singleResponse, nil
		},
	}

	params := Params{WordsPerChunk: 9, FirstChunkWords: 6, MinFirstChunkWords: 5}
	svc := NewService(gen, podcast.DefaultHosts(), params, nil)

	res, err := svc.GenerateChunked(context.Background(), Request{Topic: "ai", Minutes: 1})
	require.NoError(t, err)

	calls := gen.GenerateTextCalls()
	require.Len(t, calls, 2)
	assert.Contains(t, calls[0].Prompt, "segmentId")
	assert.NotContains(t, calls[1].Prompt, "segmentId")

	// locally chunked segments are numbered from 1 with no gaps
	require.Len(t, res.Segments, 3)
	for i, seg := range res.Segments {
		assert.Equal(t, i+1, seg.ID)
	}
	assert.Len(t, res.Segments[0].Markup.Turns, 1)
	assert.Len(t, res.Segments[1].Markup.Turns, 2)
	assert.Len(t, res.Segments[2].Markup.Turns, 1)
	assert.Equal(t, 16, res.TotalWords)

	// every turn survives in order
	var flat []string
	for _, seg := range res.Segments {
		for _, turn := range seg.Markup.Turns {
			flat = append(flat, turn.Text)
		}
	}
	assert.Equal(t, []string{
		"One two three four five",
		"Six seven eight nine ten",
		"Eleven twelve thirteen fourteen",
		"Fifteen sixteen",
	}, flat)
}

func TestService_GenerateChunked_FallsBackOnMissingSegments(t *testing.T) {
	// a single-form response to the chunked request must not be validated as
	// a single script in place; it goes through the fallback
	responses := []string{
		`{"multiSpeakerMarkup": {"turns": [{"text": "a", "speaker": "Jay"}, {"text": "b", "speaker": "Nik"}]}}`,
		`{"multiSpeakerMarkup": {"turns": [{"text": "a", "speaker": "Jay"}, {"text": "b", "speaker": "Nik"}]}}`,
	}
	call := 0
	gen := &mocks.TextGeneratorMock{
		GenerateTextFunc: func(ctx context.Context, prompt string) (string, error) {
			resp := responses[call]
			call++
			return resp, nil
		},
	}
	svc := NewService(gen, podcast.DefaultHosts(), Params{}, nil)

	res, err := svc.GenerateChunked(context.Background(), Request{Topic: "ai", Minutes: 1})
	require.NoError(t, err)
	assert.Len(t, gen.GenerateTextCalls(), 2)
	require.Len(t, res.Segments, 1)
	assert.Equal(t, 1, res.Segments[0].ID)
	assert.Equal(t, 2, res.TotalWords)
}

func TestService_GenerateChunked_FallbackFailureIsFatal(t *testing.T) {
	gen := &mocks.TextGeneratorMock{
		GenerateTextFunc: func(ctx context.Context, prompt string) (string, error) {
			return "still not json", nil
		},
	}
	svc := NewService(gen, podcast.DefaultHosts(), Params{}, nil)

	_, err := svc.GenerateChunked(context.Background(), Request{Topic: "ai", Minutes: 3})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "fallback script generation failed")
	assert.Len(t, gen.GenerateTextCalls(), 2)
}

func TestService_InputErrors(t *testing.T) {
	gen := &mocks.TextGeneratorMock{
		GenerateTextFunc: func(ctx context.Context, prompt string) (string, error) {
			return "", nil
		},
	}
	svc := NewService(gen, podcast.DefaultHosts(), Params{}, nil)

	tests := []struct {
		name    string
		req     Request
		wantErr error
	}{
		{name: "empty topic", req: Request{Topic: "", Minutes: 3}, wantErr: ErrEmptyTopic},
		{name: "whitespace topic", req: Request{Topic: "   ", Minutes: 3}, wantErr: ErrEmptyTopic},
		{name: "zero minutes", req: Request{Topic: "ai", Minutes: 0}, wantErr: ErrMinutesOutOfRange},
		{name: "too many minutes", req: Request{Topic: "ai", Minutes: 16}, wantErr: ErrMinutesOutOfRange},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			_, err := svc.Generate(context.Background(), test.req)
			require.ErrorIs(t, err, test.wantErr)

			_, err = svc.GenerateChunked(context.Background(), test.req)
			require.ErrorIs(t, err, test.wantErr)
		})
	}

	// input errors never reach the generator
	assert.Empty(t, gen.GenerateTextCalls())
}

func TestService_MinutesRangeMessage(t *testing.T) {
	gen := &mocks.TextGeneratorMock{}
	svc := NewService(gen, podcast.DefaultHosts(), Params{MaxMinutes: 15}, nil)

	_, err := svc.Generate(context.Background(), Request{Topic: "ai", Minutes: 20})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "between 1 and 15")
}
