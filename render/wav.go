package render

import (
	"fmt"
	"io"
	"math"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"

	"github.com/cwbudde/algo-classd/dsp/core"
)

const (
	wavBitDepth   = 16
	wavFormatPCM  = 1
	wavFullScale  = 1<<(wavBitDepth-1) - 1
	wavNumChannel = 1
)

// WAV writes s as 16-bit mono PCM. Values in [lo, hi] map linearly onto the
// full signed range; values outside are clipped.
func WAV(w io.WriteSeeker, sampleRate int, s core.Series, lo, hi float64) error {
	if s.Len() == 0 {
		return ErrEmptySeries
	}
	if sampleRate <= 0 {
		return fmt.Errorf("%w: %d", ErrInvalidSampleRate, sampleRate)
	}
	if !(hi > lo) || math.IsInf(lo, 0) || math.IsInf(hi, 0) {
		return fmt.Errorf("%w: [%v, %v]", ErrInvalidRange, lo, hi)
	}

	data := make([]int, s.Len())
	for i, v := range s.Values {
		u := core.Clamp(core.Rescale(v, lo, hi, -1, 1), -1, 1)
		if math.IsNaN(u) {
			u = 0
		}
		data[i] = int(math.Round(u * wavFullScale))
	}

	buf := &audio.IntBuffer{
		Format:         &audio.Format{NumChannels: wavNumChannel, SampleRate: sampleRate},
		Data:           data,
		SourceBitDepth: wavBitDepth,
	}

	enc := wav.NewEncoder(w, sampleRate, wavBitDepth, wavNumChannel, wavFormatPCM)
	if err := enc.Write(buf); err != nil {
		return fmt.Errorf("render: wav: %w", err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("render: wav: %w", err)
	}
	return nil
}
