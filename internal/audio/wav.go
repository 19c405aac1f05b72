package audio

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"io"

	goaudio "github.com/go-audio/audio"
	"github.com/go-audio/wav"
)

// fixed synthesis output format: 24 kHz mono 16-bit PCM
const (
	SampleRate     = 24000
	BitDepth       = 16
	Channels       = 1
	bytesPerSample = 2
)

// EncodePCM16 wraps little-endian 16-bit mono PCM samples in a WAV container.
// A non-positive sampleRate falls back to the fixed 24 kHz format.
func EncodePCM16(pcm []byte, sampleRate int) ([]byte, error) {
	if len(pcm)%bytesPerSample != 0 {
		return nil, fmt.Errorf("pcm data length %d is not a whole number of samples", len(pcm))
	}
	if sampleRate <= 0 {
		sampleRate = SampleRate
	}

	samples := make([]int, len(pcm)/bytesPerSample)
	for i := range samples {
		samples[i] = int(int16(binary.LittleEndian.Uint16(pcm[i*bytesPerSample:])))
	}

	var buf bytes.Buffer

	// wav.NewEncoder requires an io.WriteSeeker; bytes.Buffer is not one
	sw := &seekBuffer{buf: &buf}
	enc := wav.NewEncoder(sw, sampleRate, BitDepth, Channels, 1) // 1 = PCM

	pcmBuf := &goaudio.IntBuffer{
		Data:           samples,
		Format:         &goaudio.Format{SampleRate: sampleRate, NumChannels: Channels},
		SourceBitDepth: BitDepth,
	}

	if err := enc.Write(pcmBuf); err != nil {
		return nil, fmt.Errorf("failed to write PCM data: %w", err)
	}
	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("failed to finalize WAV encoding: %w", err)
	}

	return buf.Bytes(), nil
}

// Duration returns the approximate playback length in seconds of audio of
// byteLen bytes under the fixed mono 16-bit 24 kHz assumption
func Duration(byteLen int) float64 {
	return float64(byteLen) / float64(SampleRate*bytesPerSample)
}

// FormatDuration renders seconds as MM:SS, truncating fractions
func FormatDuration(seconds float64) string {
	total := int(seconds)
	return fmt.Sprintf("%02d:%02d", total/60, total%60)
}

// seekBuffer wraps a bytes.Buffer to satisfy io.WriteSeeker so the WAV
// encoder can rewind and patch the header sizes on Close
type seekBuffer struct {
	buf *bytes.Buffer
	pos int
}

func (s *seekBuffer) Write(p []byte) (int, error) {
	// appending at the end is the common case
	if s.pos == s.buf.Len() {
		n, err := s.buf.Write(p)
		s.pos += n
		return n, err
	}

	// writing in the middle overwrites existing bytes
	data := s.buf.Bytes()
	n := copy(data[s.pos:], p)
	if n < len(p) {
		data = append(data, p[n:]...)
		s.buf.Reset()
		s.buf.Write(data)
		n = len(p)
	}
	s.pos += n
	return n, nil
}

func (s *seekBuffer) Seek(offset int64, whence int) (int64, error) {
	var newPos int
	switch whence {
	case io.SeekStart:
		newPos = int(offset)
	case io.SeekCurrent:
		newPos = s.pos + int(offset)
	case io.SeekEnd:
		newPos = s.buf.Len() + int(offset)
	default:
		return 0, fmt.Errorf("invalid whence %d", whence)
	}
	if newPos < 0 {
		return 0, fmt.Errorf("seek before start")
	}
	s.pos = newPos
	return int64(newPos), nil
}
