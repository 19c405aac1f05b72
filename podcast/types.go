package podcast

import "time"

// Turn represents a single utterance by one of the two hosts
type Turn struct {
	Text    string `json:"text"`
	Speaker string `json:"speaker"`
}

// Markup is the multi-speaker dialogue body of a script
type Markup struct {
	Turns []Turn `json:"turns"`
}

// Segment is a contiguous group of turns sized as one playback unit
type Segment struct {
	ID     int     `json:"segmentId"`
	Markup *Markup `json:"multiSpeakerMarkup"`
}

// Script is a generated dialogue, either as one markup block or pre-split segments.
// A valid script carries exactly one of the two shapes.
type Script struct {
	Markup   *Markup   `json:"multiSpeakerMarkup,omitempty"`
	Segments []Segment `json:"segments,omitempty"`
}

// ChunkedScript is the segmented script returned to playback clients,
// with the total word count recomputed locally
type ChunkedScript struct {
	Segments   []Segment `json:"segments"`
	TotalWords int       `json:"total_words"`
}

// Host pairs a speaker name with its prebuilt TTS voice
type Host struct {
	Name  string
	Voice string
}

// Hosts are the exactly two speaker identities a script may use
type Hosts [2]Host

// DefaultHosts returns the standard host pair
func DefaultHosts() Hosts {
	return Hosts{
		{Name: "Jay", Voice: "Kore"},
		{Name: "Nik", Voice: "Puck"},
	}
}

// Allows reports whether speaker is one of the two host names
func (h Hosts) Allows(speaker string) bool {
	return speaker == h[0].Name || speaker == h[1].Name
}

// VoiceFor returns the TTS voice configured for the named host
func (h Hosts) VoiceFor(speaker string) (string, bool) {
	for _, host := range h {
		if host.Name == speaker {
			return host.Voice, true
		}
	}
	return "", false
}

// Episode is the stored metadata of a generated podcast
type Episode struct {
	ID          string    `json:"id"`
	Topic       string    `json:"topic"`
	Minutes     int       `json:"minutes"`
	DurationSec float64   `json:"duration_seconds"`
	Duration    string    `json:"duration"`
	WordCount   int       `json:"word_count"`
	AudioURL    string    `json:"audio_url"`
	AudioKey    string    `json:"audio_key"`
	ContentType string    `json:"content_type"`
	CreatedAt   time.Time `json:"created_at"`
	Plays       int       `json:"plays"`
	Likes       int       `json:"likes"`
}

// Feed is one page of stored podcasts
type Feed struct {
	Podcasts   []Episode `json:"podcasts"`
	TotalCount int       `json:"total_count"`
	Page       int       `json:"page"`
	PageSize   int       `json:"page_size"`
}
