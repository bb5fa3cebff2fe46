// Package sfx plays audio cues through the system speaker with gopxl/beep.
package sfx

import (
	"errors"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"sync/atomic"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
	"github.com/gopxl/beep/wav"

	"github.com/vovakirdan/flappy-ai/internal/audio"
)

// Options configures the speaker-backed player.
type Options struct {
	SampleRate int
	Volume     float64 // 0..1
	SoundsDir  string  // optional directory with <cue>.wav files
	Logger     *log.Logger
}

// tone is one note of a synthesized cue.
type tone struct {
	freq float64
	dur  time.Duration
}

// Synthesized fallbacks, used when no WAV file exists for a cue.
var cueTones = map[audio.Cue][]tone{
	audio.CueWing:   {{740, 45 * time.Millisecond}},
	audio.CuePoint:  {{988, 70 * time.Millisecond}, {1319, 140 * time.Millisecond}},
	audio.CueHit:    {{130, 110 * time.Millisecond}},
	audio.CueDie:    {{440, 120 * time.Millisecond}, {330, 120 * time.Millisecond}, {220, 220 * time.Millisecond}},
	audio.CueSwoosh: {{523, 50 * time.Millisecond}, {784, 80 * time.Millisecond}},
}

const (
	toneAmplitude = 0.4
	toneRelease   = 15 * time.Millisecond
)

// Beep plays cues through the system speaker.
type Beep struct {
	volume  float64
	buffers map[audio.Cue]*beep.Buffer
	playing map[audio.Cue]*atomic.Bool
}

// NewBeep decodes or synthesizes every cue and initializes the speaker.
func NewBeep(opts Options) (*Beep, error) {
	if opts.Logger == nil {
		opts.Logger = log.Default()
	}
	rate := beep.SampleRate(opts.SampleRate)

	buffers, err := LoadBuffers(rate, opts.SoundsDir, opts.Logger)
	if err != nil {
		return nil, err
	}

	if err := speaker.Init(rate, rate.N(time.Second/10)); err != nil {
		return nil, fmt.Errorf("sfx: init speaker: %w", err)
	}

	b := &Beep{
		volume:  opts.Volume,
		buffers: buffers,
		playing: make(map[audio.Cue]*atomic.Bool, len(buffers)),
	}
	for c := range buffers {
		b.playing[c] = &atomic.Bool{}
	}
	return b, nil
}

// NewPlayer returns a speaker-backed player, or Silent when audio is disabled
// or the device cannot be opened.
func NewPlayer(enabled bool, opts Options) audio.Player {
	if !enabled {
		return audio.Silent{}
	}
	b, err := NewBeep(opts)
	if err != nil {
		if opts.Logger != nil {
			opts.Logger.Warn("audio disabled", "err", err)
		}
		return audio.Silent{}
	}
	return b
}

// Play starts the cue unless it is already sounding.
func (b *Beep) Play(c audio.Cue) {
	buf, ok := b.buffers[c]
	if !ok {
		return
	}
	flag := b.playing[c]
	if !flag.CompareAndSwap(false, true) {
		return
	}

	s := withVolume(buf.Streamer(0, buf.Len()), b.volume)
	speaker.Play(beep.Seq(s, beep.Callback(func() {
		flag.Store(false)
	})))
}

// Close stops playback and releases the audio device.
func (b *Beep) Close() {
	speaker.Close()
}

// LoadBuffers returns a buffer per cue at the given rate. A <cue>.wav file in
// dir wins over the synthesized tone; unreadable files are logged and
// replaced by the tone.
func LoadBuffers(rate beep.SampleRate, dir string, logger *log.Logger) (map[audio.Cue]*beep.Buffer, error) {
	out := make(map[audio.Cue]*beep.Buffer, len(audio.Cues))
	for _, c := range audio.Cues {
		if dir != "" {
			path := filepath.Join(dir, string(c)+".wav")
			buf, err := decodeWAV(path, rate)
			if err == nil {
				out[c] = buf
				continue
			}
			if !errors.Is(err, os.ErrNotExist) && logger != nil {
				logger.Warn("falling back to synthesized cue", "cue", c, "err", err)
			}
		}

		buf, err := synthesize(rate, cueTones[c])
		if err != nil {
			return nil, fmt.Errorf("sfx: synthesize %s: %w", c, err)
		}
		out[c] = buf
	}
	return out, nil
}

func bufferFormat(rate beep.SampleRate) beep.Format {
	return beep.Format{SampleRate: rate, NumChannels: 2, Precision: 2}
}

func decodeWAV(path string, rate beep.SampleRate) (*beep.Buffer, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	s, format, err := wav.Decode(f)
	if err != nil {
		_ = f.Close()
		return nil, fmt.Errorf("sfx: decode %s: %w", path, err)
	}
	defer s.Close()

	var src beep.Streamer = s
	if format.SampleRate != rate {
		src = beep.Resample(4, format.SampleRate, rate, s)
	}
	buf := beep.NewBuffer(bufferFormat(rate))
	buf.Append(src)
	return buf, nil
}

func synthesize(rate beep.SampleRate, tones []tone) (*beep.Buffer, error) {
	buf := beep.NewBuffer(bufferFormat(rate))
	for _, t := range tones {
		sine, err := generators.SineTone(rate, t.freq)
		if err != nil {
			return nil, err
		}
		n := rate.N(t.dur)
		buf.Append(release(beep.Take(n, sine), n, rate.N(toneRelease)))
	}
	return buf, nil
}

// release scales s by toneAmplitude and fades its last rel samples out.
func release(s beep.Streamer, total, rel int) beep.Streamer {
	pos := 0
	return beep.StreamerFunc(func(samples [][2]float64) (int, bool) {
		n, ok := s.Stream(samples)
		for i := 0; i < n; i++ {
			gain := toneAmplitude
			if rem := total - pos; rel > 0 && rem < rel {
				gain *= float64(rem) / float64(rel)
			}
			samples[i][0] *= gain
			samples[i][1] *= gain
			pos++
		}
		return n, ok
	})
}

// withVolume maps a linear 0..1 volume onto effects.Volume.
func withVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol)}
}
