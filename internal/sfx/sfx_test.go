package sfx

import (
	"bytes"
	"encoding/binary"
	"testing"
	"time"

	"github.com/gopxl/beep"

	"bomberman-classic/pkg/core"
)

const testRate = beep.SampleRate(44100)

func TestOscillatorWaveforms(t *testing.T) {
	for _, wave := range []WaveType{WaveSine, WaveSquare, WaveSaw, WaveNoise} {
		osc := NewOscillator(440, 10*time.Millisecond, wave, testRate)
		samples := make([][2]float64, 100)
		n, ok := osc.Stream(samples)
		if !ok || n != 100 {
			t.Fatalf("wave %d: n=%d ok=%v", wave, n, ok)
		}
		for i := 0; i < n; i++ {
			if samples[i][0] < -1 || samples[i][0] > 1 {
				t.Fatalf("wave %d: sample %d out of range: %f", wave, i, samples[i][0])
			}
			if samples[i][0] != samples[i][1] {
				t.Fatalf("wave %d: channels differ at %d", wave, i)
			}
		}
	}
}

func TestOscillatorDuration(t *testing.T) {
	want := testRate.N(10 * time.Millisecond)
	osc := NewOscillator(440, 10*time.Millisecond, WaveSine, testRate)

	total := 0
	buf := make([][2]float64, 128)
	for {
		n, ok := osc.Stream(buf)
		total += n
		if !ok {
			break
		}
	}
	if total != want {
		t.Errorf("samples = %d, want %d", total, want)
	}
}

func TestEnvelopeShape(t *testing.T) {
	// 常量 1 的流，方便观察包络
	constant := beep.StreamerFunc(func(samples [][2]float64) (int, bool) {
		for i := range samples {
			samples[i] = [2]float64{1, 1}
		}
		return len(samples), true
	})
	env := NewEnvelope(constant, 100*time.Millisecond, 10*time.Millisecond, 10*time.Millisecond, testRate)

	buf := make([][2]float64, testRate.N(100*time.Millisecond)+10)
	n, _ := env.Stream(buf)
	if n != testRate.N(100*time.Millisecond) {
		t.Fatalf("n = %d", n)
	}
	if buf[0][0] != 0 {
		t.Errorf("attack starts at %f, want 0", buf[0][0])
	}
	mid := n / 2
	if buf[mid][0] != 1 {
		t.Errorf("sustain = %f, want 1", buf[mid][0])
	}
	if last := buf[n-1][0]; last <= 0 || last > 0.01 {
		t.Errorf("release tail = %f", last)
	}
}

func TestForEvent(t *testing.T) {
	tests := []struct {
		kind core.EventKind
		want Sound
	}{
		{core.EventBombPlaced, SoundBombPlace},
		{core.EventBombExploded, SoundExplosion},
		{core.EventEnemyKilled, SoundEnemyDeath},
		{core.EventPlayerKilled, SoundPlayerDeath},
		{core.EventVictory, SoundVictory},
		{core.EventGameOver, SoundGameOver},
	}
	for _, tt := range tests {
		got, ok := ForEvent(tt.kind)
		if !ok || got != tt.want {
			t.Errorf("ForEvent(%v) = %v, %v; want %v", tt.kind, got, ok, tt.want)
		}
	}
	if _, ok := ForEvent(core.EventStateChanged); ok {
		t.Error("state change has a sound")
	}
}

func TestVolumes(t *testing.T) {
	for _, s := range Sounds() {
		want := 0.2
		if s == SoundPlayerDeath {
			want = 0.1
		}
		if s.Volume() != want {
			t.Errorf("%s volume = %v, want %v", s, s.Volume(), want)
		}
	}
}

func TestBankRendersEverySound(t *testing.T) {
	bank, err := NewBank(int(testRate), 1.0)
	if err != nil {
		t.Fatal(err)
	}
	if bank.SampleRate() != int(testRate) {
		t.Errorf("rate = %d", bank.SampleRate())
	}
	for _, s := range Sounds() {
		pcm := bank.PCM(s)
		if len(pcm) == 0 {
			t.Errorf("%s: empty pcm", s)
			continue
		}
		if len(pcm)%bytesPerFrame != 0 {
			t.Errorf("%s: %d bytes is not whole frames", s, len(pcm))
		}
	}
	if bank.PCM(soundCount) != nil {
		t.Error("out of range sound has pcm")
	}
}

func TestBankIsDeterministic(t *testing.T) {
	a, err := NewBank(int(testRate), 1.0)
	if err != nil {
		t.Fatal(err)
	}
	b, err := NewBank(int(testRate), 1.0)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(a.PCM(SoundExplosion), b.PCM(SoundExplosion)) {
		t.Error("explosion noise differs between renders")
	}
}

func TestMuteRendersSilence(t *testing.T) {
	bank, err := NewBank(int(testRate), 0)
	if err != nil {
		t.Fatal(err)
	}
	pcm := bank.PCM(SoundVictory)
	for i := 0; i < len(pcm); i += 2 {
		if v := int16(binary.LittleEndian.Uint16(pcm[i:])); v != 0 {
			t.Fatalf("sample %d = %d, want silence", i/2, v)
		}
	}
}

func TestNewBankRejectsBadRate(t *testing.T) {
	if _, err := NewBank(0, 1); err == nil {
		t.Error("zero sample rate accepted")
	}
}

func TestToInt16Limits(t *testing.T) {
	if got := toInt16(0.5); got != 16383 {
		t.Errorf("toInt16(0.5) = %d, want linear below the knee", got)
	}
	hot, hotter := toInt16(1.5), toInt16(50)
	if hot <= toInt16(0.8) || hotter <= hot {
		t.Errorf("limiter not monotonic: %d %d", hot, hotter)
	}
	if got := toInt16(-50); got != -hotter {
		t.Errorf("toInt16(-50) = %d, want %d", got, -hotter)
	}
}
