package sfx

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/wav"

	"github.com/vovakirdan/flappy-ai/internal/audio"
)

func TestSynthesizedCueLengths(t *testing.T) {
	rate := beep.SampleRate(44100)
	buffers, err := LoadBuffers(rate, "", nil)
	if err != nil {
		t.Fatalf("LoadBuffers() failed: %v", err)
	}

	for _, c := range audio.Cues {
		want := 0
		for _, tn := range cueTones[c] {
			want += rate.N(tn.dur)
		}
		buf, ok := buffers[c]
		if !ok {
			t.Errorf("missing buffer for %s", c)
			continue
		}
		if buf.Len() != want {
			t.Errorf("%s: length = %d samples, expected %d", c, buf.Len(), want)
		}
	}
}

func TestSynthesizedToneFadesOut(t *testing.T) {
	rate := beep.SampleRate(8000)
	buf, err := synthesize(rate, []tone{{440, 100 * time.Millisecond}})
	if err != nil {
		t.Fatal(err)
	}

	samples := make([][2]float64, buf.Len())
	n, _ := buf.Streamer(0, buf.Len()).Stream(samples)
	if n != buf.Len() {
		t.Fatalf("streamed %d samples, expected %d", n, buf.Len())
	}
	peak := 0.0
	for _, s := range samples {
		if s[0] > peak {
			peak = s[0]
		}
	}
	if peak > toneAmplitude+0.01 {
		t.Errorf("peak %.3f exceeds tone amplitude", peak)
	}
	if last := samples[n-1][0]; last > 0.05 || last < -0.05 {
		t.Errorf("tone does not fade out, last sample %.3f", last)
	}
}

func TestWAVOverridesTone(t *testing.T) {
	dir := t.TempDir()
	src := beep.SampleRate(22050)
	sine, err := generators.SineTone(src, 300)
	if err != nil {
		t.Fatal(err)
	}

	f, err := os.Create(filepath.Join(dir, "hit.wav"))
	if err != nil {
		t.Fatal(err)
	}
	format := beep.Format{SampleRate: src, NumChannels: 2, Precision: 2}
	if err := wav.Encode(f, beep.Take(src.N(time.Second/2), sine), format); err != nil {
		t.Fatalf("wav.Encode() failed: %v", err)
	}
	_ = f.Close()

	rate := beep.SampleRate(44100)
	buffers, err := LoadBuffers(rate, dir, nil)
	if err != nil {
		t.Fatalf("LoadBuffers() failed: %v", err)
	}

	// Half a second resampled to the output rate, not the 110ms tone.
	got, want := buffers[audio.CueHit].Len(), rate.N(time.Second/2)
	if got < want-int(rate)/50 || got > want+int(rate)/50 {
		t.Errorf("hit length = %d, expected about %d", got, want)
	}

	// Cues without a file keep their tone.
	if buffers[audio.CueWing].Len() != rate.N(cueTones[audio.CueWing][0].dur) {
		t.Error("wing cue should be synthesized")
	}
}

func TestNewPlayerDisabled(t *testing.T) {
	if _, ok := NewPlayer(false, Options{}).(audio.Silent); !ok {
		t.Error("disabled audio should yield the silent player")
	}
}
